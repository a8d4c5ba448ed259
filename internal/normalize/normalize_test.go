package normalize

import (
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"plain cjk", "数据分析", "数据分析"},
		{"punctuation to space", "数据，分析。测试", "数据 分析 测试"},
		{"mixed latin", "Go语言 rocks!", "Go语言 rocks"},
		{"digits dropped", "top10榜单2024", "top 榜单"},
		{"whitespace collapsed", "  a \t\n b  ", "a b"},
		{"leading trailing stripped", "！！数据！！", "数据"},
		{"only noise", "123 ?! …", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Normalize(tc.in); got != tc.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"数据分析 测试",
		"Hello, 世界! This is 混合 text 123.",
		"\t\n  乱七八糟 ~~ symbols #$%^&*()",
	}
	for _, in := range inputs {
		once := Normalize(in)
		if twice := Normalize(once); twice != once {
			t.Fatalf("not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestNormalize_OutputAlphabet(t *testing.T) {
	out := Normalize("【重要】Data-driven 分析：2024 年度报告 (draft_v2)")
	if strings.HasPrefix(out, " ") || strings.HasSuffix(out, " ") {
		t.Fatalf("output not trimmed: %q", out)
	}
	if strings.Contains(out, "  ") {
		t.Fatalf("output contains double space: %q", out)
	}
	for _, r := range out {
		ok := r == ' ' ||
			(r >= 0x4E00 && r <= 0x9FFF) ||
			(r >= 'a' && r <= 'z') ||
			(r >= 'A' && r <= 'Z')
		if !ok {
			t.Fatalf("unexpected rune %q in output %q", r, out)
		}
	}
}
