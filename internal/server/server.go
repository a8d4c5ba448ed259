// Package server is the interactive front end: a form in, one analysis out.
package server

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/wordscope/wordscope/internal/app"
	"github.com/wordscope/wordscope/internal/chart"
	"github.com/wordscope/wordscope/internal/cloud"
)

// Server serves the analysis UI over HTTP.
type Server struct {
	app   *app.App
	fiber *fiber.App
}

func New(a *app.App) *Server {
	s := &Server{app: a}
	f := fiber.New(fiber.Config{DisableStartupMessage: true})

	f.Get("/", s.handleIndex)
	f.Post("/analyze", s.handleAnalyze)
	f.Post("/report.pdf", s.handleReport)
	f.Get("/healthz", s.handleHealth)
	f.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	s.fiber = f
	return s
}

// Listen blocks serving on addr until Shutdown or a listener error.
func (s *Server) Listen(addr string) error {
	return s.fiber.Listen(addr)
}

// Shutdown drains in-flight requests and stops the listener.
func (s *Server) Shutdown() error {
	return s.fiber.Shutdown()
}

// Test routes a request through the server without a network listener.
func (s *Server) Test(req *http.Request) (*http.Response, error) {
	return s.fiber.Test(req, -1)
}

type indexView struct {
	Kinds []chart.Option
}

type rankedEntry struct {
	Rank  int
	Token string
	Count int
}

type resultView struct {
	URL          string
	Top          []rankedEntry
	Distinct     int
	Total        int
	Elapsed      string
	CloudDataURL template.URL
	ChartHTML    string
}

func (s *Server) handleIndex(c *fiber.Ctx) error {
	return s.renderPage(c, fiber.StatusOK, indexTmpl, indexView{Kinds: chart.Kinds()})
}

func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.SendString("ok")
}

func (s *Server) handleAnalyze(c *fiber.Ctx) error {
	rawURL := strings.TrimSpace(c.FormValue("url"))
	if rawURL == "" {
		return s.renderError(c, fiber.StatusBadRequest, "请输入要分析的网址")
	}
	kind, known := chart.ParseKind(c.FormValue("chart"))
	if !known {
		log.Debug().Str("chart", c.FormValue("chart")).Msg("unrecognized chart selector; listing only")
	}

	res, err := s.app.Analyze(c.Context(), rawURL)
	if err != nil {
		return s.renderError(c, analyzeStatus(err), err.Error())
	}

	view := resultView{
		URL:      res.URL,
		Top:      ranked(res),
		Distinct: res.Table.Len(),
		Total:    res.Table.Total(),
		Elapsed:  res.Elapsed.Round(time.Millisecond).String(),
	}

	switch {
	case !known:
		// no chart for an unrecognized selector, but the listing still renders
	case kind == chart.KindWordCloud:
		img, err := s.app.RenderCloud(res)
		switch {
		case errors.Is(err, cloud.ErrNoWords):
			// empty page: listing (itself empty) without an image
		case err != nil:
			return s.renderError(c, fiber.StatusInternalServerError, err.Error())
		default:
			view.CloudDataURL = template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(img))
		}
	default:
		if ch := chart.Build(kind, res.Table); ch != nil {
			var buf bytes.Buffer
			if err := ch.Render(&buf); err != nil {
				return s.renderError(c, fiber.StatusInternalServerError, err.Error())
			}
			view.ChartHTML = buf.String()
		}
	}

	return s.renderPage(c, fiber.StatusOK, resultTmpl, view)
}

func (s *Server) handleReport(c *fiber.Ctx) error {
	rawURL := strings.TrimSpace(c.FormValue("url"))
	if rawURL == "" {
		return s.renderError(c, fiber.StatusBadRequest, "请输入要分析的网址")
	}

	res, err := s.app.Analyze(c.Context(), rawURL)
	if err != nil {
		return s.renderError(c, analyzeStatus(err), err.Error())
	}

	var buf bytes.Buffer
	if err := s.app.WriteReportPDF(&buf, res); err != nil {
		return s.renderError(c, fiber.StatusInternalServerError, err.Error())
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="wordscope-report.pdf"`)
	return c.Send(buf.Bytes())
}

func ranked(res *app.Result) []rankedEntry {
	out := make([]rankedEntry, 0, len(res.Top))
	for i, e := range res.Top {
		out = append(out, rankedEntry{Rank: i + 1, Token: e.Token, Count: e.Count})
	}
	return out
}

// analyzeStatus maps pipeline failures to HTTP statuses: upstream fetch
// problems are a bad gateway, missing local resources are our fault.
func analyzeStatus(err error) int {
	var mre *app.MissingResourceError
	if errors.As(err, &mre) {
		return fiber.StatusInternalServerError
	}
	return fiber.StatusBadGateway
}

type errorView struct {
	Message string
}

func (s *Server) renderError(c *fiber.Ctx, status int, msg string) error {
	return s.renderPage(c, status, errorTmpl, errorView{Message: msg})
}

func (s *Server) renderPage(c *fiber.Ctx, status int, tmpl *template.Template, data any) error {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("render %s: %w", tmpl.Name(), err)
	}
	c.Status(status)
	c.Set(fiber.HeaderContentType, "text/html; charset=utf-8")
	return c.Send(buf.Bytes())
}
