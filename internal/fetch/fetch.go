package fetch

import (
	"bytes"
	"compress/flate"
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/andybalholm/brotli"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DefaultUserAgent mirrors a current desktop Chrome so that pages which vary
// their markup by client serve the same document a browser would see.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"

// StatusError reports a non-success HTTP status for the requested URL.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("fetch %s: unexpected status %d", e.URL, e.StatusCode)
}

// Client performs the single page download at the head of the pipeline.
// One GET per analysis: no retries, no conditional requests, no caching.
type Client struct {
	HTTPClient *http.Client
	UserAgent  string
	// Timeout bounds each request when positive. Zero leaves the request
	// unbounded, which is the interactive default.
	Timeout time.Duration
	// MaxBodyBytes caps how much of the response body is read. Zero means
	// unlimited.
	MaxBodyBytes int64
}

// Get issues one GET with browser-like headers and returns the response body
// as UTF-8 text. The body is decompressed per Content-Encoding and decoded as
// UTF-8 regardless of the charset the server declared; invalid byte sequences
// become U+FFFD.
func (c *Client) Get(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("new request: %w", err)
	}
	if req.URL == nil || !isHTTPScheme(req.URL) {
		return "", fmt.Errorf("unsupported URL scheme: %q", rawURL)
	}
	ua := c.UserAgent
	if ua == "" {
		ua = DefaultUserAgent
	}
	req.Header.Set("User-Agent", ua)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "zh-CN,zh;q=0.9,en;q=0.8")
	// Setting Accept-Encoding by hand disables the transport's transparent
	// gzip, so decoding below handles every advertised encoding.
	req.Header.Set("Accept-Encoding", "gzip, deflate, br")

	httpClient := c.getHTTPClient()
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(req.Context(), c.Timeout)
		defer cancel()
		req = req.WithContext(ctx)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &StatusError{URL: rawURL, StatusCode: resp.StatusCode}
	}

	var reader io.Reader = resp.Body
	if c.MaxBodyBytes > 0 {
		reader = io.LimitReader(reader, c.MaxBodyBytes)
	}
	raw, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}

	body, err := decompress(resp.Header.Get("Content-Encoding"), raw)
	if err != nil {
		log.Warn().Err(err).Str("url", rawURL).Msg("decompress failed; using raw body")
		body = raw
	}
	return forceUTF8(body)
}

func (c *Client) getHTTPClient() *http.Client {
	if c.HTTPClient != nil {
		// Clone to attach our redirect policy without mutating caller's client
		base := *c.HTTPClient
		base.CheckRedirect = checkRedirect
		return &base
	}
	return &http.Client{Timeout: c.Timeout, CheckRedirect: checkRedirect}
}

func checkRedirect(req *http.Request, via []*http.Request) error {
	if len(via) >= 5 {
		return errors.New("too many redirects")
	}
	if req.URL == nil || !isHTTPScheme(req.URL) {
		return errors.New("redirect to unsupported scheme")
	}
	return nil
}

func isHTTPScheme(u *url.URL) bool {
	if u == nil {
		return false
	}
	scheme := strings.ToLower(u.Scheme)
	return scheme == "http" || scheme == "https"
}

// decompress decodes body per the Content-Encoding header. Identity and
// unknown encodings pass through unchanged; unknown ones are the caller's
// problem to warn about.
func decompress(encoding string, body []byte) ([]byte, error) {
	switch strings.ToLower(strings.TrimSpace(encoding)) {
	case "", "identity":
		return body, nil
	case "gzip":
		zr, err := gzip.NewReader(bytes.NewReader(body))
		if err != nil {
			return nil, fmt.Errorf("gzip: %w", err)
		}
		defer zr.Close()
		out, err := io.ReadAll(zr)
		if err != nil {
			return nil, fmt.Errorf("gzip read: %w", err)
		}
		return out, nil
	case "deflate":
		fr := flate.NewReader(bytes.NewReader(body))
		defer fr.Close()
		out, err := io.ReadAll(fr)
		if err != nil {
			return nil, fmt.Errorf("deflate read: %w", err)
		}
		return out, nil
	case "br":
		out, err := io.ReadAll(brotli.NewReader(bytes.NewReader(body)))
		if err != nil {
			return nil, fmt.Errorf("brotli read: %w", err)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unknown content encoding %q", encoding)
	}
}

// forceUTF8 reinterprets body as UTF-8, replacing invalid sequences with
// U+FFFD. Declared charsets are deliberately ignored.
func forceUTF8(body []byte) (string, error) {
	out, _, err := transform.Bytes(unicode.UTF8.NewDecoder(), body)
	if err != nil {
		return "", fmt.Errorf("decode utf-8: %w", err)
	}
	return string(out), nil
}
