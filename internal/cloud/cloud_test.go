package cloud

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/wordscope/wordscope/internal/freq"
)

func TestRender_MissingFont(t *testing.T) {
	r := &Renderer{FontPath: filepath.Join(t.TempDir(), "absent.ttf")}
	table := freq.NewTable()
	table.Add("数据")

	_, err := r.Render(table)
	if err == nil {
		t.Fatalf("expected error for missing font")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected error to wrap os.ErrNotExist, got %v", err)
	}
}

func TestRender_EmptyTable(t *testing.T) {
	// The font is only stat'ed before the empty check, so a placeholder file
	// is enough to reach it.
	fontPath := filepath.Join(t.TempDir(), "font.ttf")
	if err := os.WriteFile(fontPath, []byte("placeholder"), 0o644); err != nil {
		t.Fatalf("write placeholder: %v", err)
	}

	r := &Renderer{FontPath: fontPath}
	_, err := r.Render(freq.NewTable())
	if !errors.Is(err, ErrNoWords) {
		t.Fatalf("expected ErrNoWords for empty table, got %v", err)
	}
}

func TestWordList_CappedAtMaxWords(t *testing.T) {
	table := freq.NewTable()
	// 250 distinct tokens with strictly descending counts, so the cut-off
	// between kept and dropped tokens is unambiguous.
	for i := 0; i < 250; i++ {
		token := fmt.Sprintf("w%d", i)
		for n := 0; n < 250-i; n++ {
			table.Add(token)
		}
	}

	words := wordList(table)
	if len(words) != MaxWords {
		t.Fatalf("expected %d words, got %d", MaxWords, len(words))
	}
	if _, ok := words["w0"]; !ok {
		t.Fatalf("most frequent token missing from selection")
	}
	if _, ok := words["w199"]; !ok {
		t.Fatalf("200th token must still be included")
	}
	if _, ok := words["w200"]; ok {
		t.Fatalf("tokens beyond the cap must be dropped")
	}
	if words["w0"] != 250 {
		t.Fatalf("counts must survive selection, got %d", words["w0"])
	}
}

func TestGeometryDefaults(t *testing.T) {
	r := &Renderer{}
	if r.width() != 800 || r.height() != 400 {
		t.Fatalf("expected 800x400 defaults, got %dx%d", r.width(), r.height())
	}
	r = &Renderer{Width: 1024, Height: 512}
	if r.width() != 1024 || r.height() != 512 {
		t.Fatalf("explicit geometry not honored")
	}
}
