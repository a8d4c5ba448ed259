package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/wordscope/wordscope/internal/app"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	dir := t.TempDir()
	stopPath := filepath.Join(dir, "stopwords.txt")
	if err := os.WriteFile(stopPath, nil, 0o644); err != nil {
		t.Fatalf("write stopwords: %v", err)
	}
	fontPath := filepath.Join(dir, "font.ttf")
	if err := os.WriteFile(fontPath, []byte("placeholder"), 0o644); err != nil {
		t.Fatalf("write font: %v", err)
	}
	a, err := app.New(app.Config{
		ListenAddr:    app.DefaultListenAddr,
		StopwordsPath: stopPath,
		FontPath:      fontPath,
	})
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	t.Cleanup(a.Close)
	return New(a)
}

func pageServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func analyzeRequest(target, chartKind string) *http.Request {
	form := url.Values{"url": {target}, "chart": {chartKind}}
	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return string(b)
}

func TestIndex_ListsAllChartKinds(t *testing.T) {
	s := newTestServer(t)
	resp, err := s.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	body := readBody(t, resp)
	for _, label := range []string{"词云", "垂直条形图", "水平条形图", "饼图", "折线图", "散点图", "雷达图", "面积图"} {
		if !strings.Contains(body, label) {
			t.Fatalf("index missing chart option %q", label)
		}
	}
}

func TestAnalyze_MissingURL(t *testing.T) {
	s := newTestServer(t)
	req := analyzeRequest("", "bar")
	resp, err := s.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	if !strings.Contains(readBody(t, resp), "请输入") {
		t.Fatalf("expected prompt for missing URL")
	}
}

func TestAnalyze_BarChartPage(t *testing.T) {
	s := newTestServer(t)
	page := pageServer(t, "<html><body>数据分析 数据分析 测试</body></html>")

	resp, err := s.Test(analyzeRequest(page.URL, "bar"))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	body := readBody(t, resp)
	if !strings.Contains(body, "测试") {
		t.Fatalf("expected ranked listing in page")
	}
	if !strings.Contains(body, "<iframe") {
		t.Fatalf("expected embedded chart for bar kind")
	}
}

func TestAnalyze_UnknownKindRendersListingOnly(t *testing.T) {
	s := newTestServer(t)
	page := pageServer(t, "<html><body>数据分析 测试</body></html>")

	resp, err := s.Test(analyzeRequest(page.URL, "treemap"))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unknown chart kind must not be an error, got %d", resp.StatusCode)
	}
	body := readBody(t, resp)
	if strings.Contains(body, "<iframe") || strings.Contains(body, "data:image/png") {
		t.Fatalf("expected no chart for unknown kind")
	}
	if !strings.Contains(body, "测试") {
		t.Fatalf("expected ranked listing despite unknown kind")
	}
}

func TestAnalyze_RadarOnEmptyPage(t *testing.T) {
	s := newTestServer(t)
	page := pageServer(t, "<html><head></head><body></body></html>")

	resp, err := s.Test(analyzeRequest(page.URL, "radar"))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("empty radar must not be an error, got %d", resp.StatusCode)
	}
	body := readBody(t, resp)
	if strings.Contains(body, "<iframe") {
		t.Fatalf("expected no chart for empty table")
	}
	if !strings.Contains(body, "没有可统计的词语") {
		t.Fatalf("expected empty-result notice")
	}
}

func TestAnalyze_UpstreamFailureIsBadGateway(t *testing.T) {
	s := newTestServer(t)
	page := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer page.Close()

	resp, err := s.Test(analyzeRequest(page.URL, "bar"))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusBadGateway {
		t.Fatalf("expected 502 for upstream failure, got %d", resp.StatusCode)
	}
}

func TestHealthz(t *testing.T) {
	s := newTestServer(t)
	resp, err := s.Test(httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t)
	resp, err := s.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if !strings.Contains(readBody(t, resp), "go_goroutines") {
		t.Fatalf("expected prometheus exposition output")
	}
}
