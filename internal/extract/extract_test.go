package extract

import (
	"strings"
	"testing"
)

func TestBodyText_JoinsTextNodesWithLineBreaks(t *testing.T) {
	html := `<!doctype html>
	<html>
	  <head><title>标题不算</title></head>
	  <body>
	    <h1>数据分析</h1>
	    <p>第一段内容。</p>
	    <div><span>嵌套</span> 文本</div>
	  </body>
	</html>`

	text := BodyText(html)
	for _, want := range []string{"数据分析", "第一段内容。", "嵌套", "文本"} {
		if !strings.Contains(text, want) {
			t.Fatalf("expected %q in extracted text, got %q", want, text)
		}
	}
	if strings.Contains(text, "标题不算") {
		t.Fatalf("did not expect head title in body text")
	}
	if !strings.Contains(text, "数据分析\n第一段内容。") {
		t.Fatalf("expected line break between block text runs, got %q", text)
	}
}

func TestBodyText_EmptyWithoutBodyContent(t *testing.T) {
	if got := BodyText("<html><head><title>x</title></head></html>"); got != "" {
		t.Fatalf("expected empty string for body-less document, got %q", got)
	}
	if got := BodyText(""); got != "" {
		t.Fatalf("expected empty string for empty input, got %q", got)
	}
}

func TestBodyText_SkipsInvisibleSubtrees(t *testing.T) {
	html := `<html><body>
	  <script>var hidden = "脚本";</script>
	  <style>.x { color: red }</style>
	  <noscript>无脚本提示</noscript>
	  <p>可见内容</p>
	</body></html>`

	text := BodyText(html)
	if text != "可见内容" {
		t.Fatalf("expected only visible text, got %q", text)
	}
}

func TestBodyText_TrimsPerNode(t *testing.T) {
	text := BodyText("<html><body><p>   左右有空白   </p></body></html>")
	if text != "左右有空白" {
		t.Fatalf("expected trimmed node text, got %q", text)
	}
}

func TestBodyText_MalformedInputBestEffort(t *testing.T) {
	// The parser repairs unclosed tags; we only require no panic and the
	// visible text surviving.
	text := BodyText("<body><p>碎片 <b>加粗")
	if !strings.Contains(text, "碎片") || !strings.Contains(text, "加粗") {
		t.Fatalf("expected best-effort text from malformed input, got %q", text)
	}
}
