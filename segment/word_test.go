package segment

import "testing"

func TestIsWhitespace(t *testing.T) {
	if !isWhitespace(word("  \t", 0, 0, 1, 1)) {
		t.Error("expected whitespace-only word to be detected")
	}
	if isWhitespace(word("hi", 0, 0, 1, 1)) {
		t.Error("did not expect non-empty text to be whitespace")
	}
}

func TestDefaultLineGrouperSingleLine(t *testing.T) {
	words := []Word{
		word("two", 6, 0, 10, 5),
		word("one", 0, 0, 5, 5),
		word("three", 11, 0, 15, 5),
	}
	lines := DefaultLineGrouper(words)
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	got := []string{}
	for _, w := range lines[0].Words {
		got = append(got, w.Text())
	}
	want := []string{"one", "two", "three"}
	for i, text := range want {
		if got[i] != text {
			t.Errorf("word %d = %q, want %q (order: %v)", i, got[i], text, got)
		}
	}
}

func TestDefaultLineGrouperSeparatesRows(t *testing.T) {
	words := []Word{
		word("top", 0, 10, 5, 15),
		word("bottom", 0, 0, 5, 5),
	}
	lines := DefaultLineGrouper(words)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0].Words[0].Text() != "top" {
		t.Errorf("expected top row first, got %q", lines[0].Words[0].Text())
	}
}

func TestDefaultLineGrouperEmpty(t *testing.T) {
	if lines := DefaultLineGrouper(nil); lines != nil {
		t.Errorf("expected nil lines for empty input, got %v", lines)
	}
}
