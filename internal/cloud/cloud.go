// Package cloud draws word-cloud PNG images for the most frequent tokens.
package cloud

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"image/png"
	"os"

	"github.com/psykhi/wordclouds"

	"github.com/wordscope/wordscope/internal/freq"
)

// ErrNoWords reports an empty frequency table. The caller shows the ranked
// listing without an image instead of failing the run.
var ErrNoWords = errors.New("no words to draw")

// MaxWords caps how many distinct tokens a cloud draws, regardless of any
// requested top-N.
const MaxWords = 200

// Renderer draws word clouds with one fixed TTF font for every render. The
// font must cover CJK glyphs.
type Renderer struct {
	FontPath string
	Width    int
	Height   int
}

func (r *Renderer) width() int {
	if r.Width > 0 {
		return r.Width
	}
	return 800
}

func (r *Renderer) height() int {
	if r.Height > 0 {
		return r.Height
	}
	return 400
}

// Render draws the most frequent tokens sized by count and returns the
// PNG-encoded image. A missing font file surfaces as an error wrapping the
// underlying fs error before any drawing starts.
func (r *Renderer) Render(t *freq.Table) ([]byte, error) {
	if _, err := os.Stat(r.FontPath); err != nil {
		return nil, fmt.Errorf("word cloud font %s: %w", r.FontPath, err)
	}
	words := wordList(t)
	if len(words) == 0 {
		return nil, ErrNoWords
	}
	wc := wordclouds.NewWordcloud(words,
		wordclouds.FontFile(r.FontPath),
		wordclouds.Width(r.width()),
		wordclouds.Height(r.height()),
		wordclouds.FontMaxSize(96),
		wordclouds.FontMinSize(12),
		wordclouds.BackgroundColor(color.White),
		wordclouds.Colors(palette()),
	)
	var buf bytes.Buffer
	if err := png.Encode(&buf, wc.Draw()); err != nil {
		return nil, fmt.Errorf("encode word cloud: %w", err)
	}
	return buf.Bytes(), nil
}

// wordList selects the token→count map handed to the drawing library,
// truncated to the MaxWords most frequent tokens.
func wordList(t *freq.Table) map[string]int {
	entries := t.TopN(MaxWords)
	words := make(map[string]int, len(entries))
	for _, e := range entries {
		words[e.Token] = e.Count
	}
	return words
}

func palette() []color.Color {
	return []color.Color{
		color.RGBA{R: 0x2f, G: 0x4f, B: 0x8f, A: 0xff},
		color.RGBA{R: 0xc0, G: 0x39, B: 0x2b, A: 0xff},
		color.RGBA{R: 0x1e, G: 0x84, B: 0x49, A: 0xff},
		color.RGBA{R: 0xd4, G: 0x8a, B: 0x1f, A: 0xff},
		color.RGBA{R: 0x5b, G: 0x2c, B: 0x6f, A: 0xff},
	}
}
