// Package segment wraps the gse dictionary segmenter used to split
// normalized text into word tokens.
package segment

import (
	"fmt"

	"github.com/go-ego/gse"
)

// Segmenter holds a loaded gse dictionary. The dictionary is immutable after
// New returns, so a single Segmenter is safe to share across concurrent
// analyses.
type Segmenter struct {
	seg gse.Segmenter
}

// New loads the default simplified-Chinese dictionary. Loading is the
// expensive part; construct one Segmenter at process start and reuse it.
func New() (*Segmenter, error) {
	// gse lowercases Latin tokens by default, which would merge "Go" and
	// "go" into one frequency key. Keep the original case.
	gse.ToLower = false
	s := &Segmenter{}
	if err := s.seg.LoadDict(); err != nil {
		return nil, fmt.Errorf("load segmenter dictionary: %w", err)
	}
	return s, nil
}

// Cut splits text into word tokens with the HMM model enabled, which also
// yields sensible boundaries for Latin-script runs embedded in CJK text.
// Tokens keep their original case. Deterministic for a fixed dictionary and
// input.
func (s *Segmenter) Cut(text string) []string {
	if text == "" {
		return nil
	}
	return s.seg.Cut(text, true)
}
