package segment

import (
	"testing"
	"time"
)

func TestGetBlocksEmptyInput(t *testing.T) {
	blocks := GetBlocks(nil)
	if len(blocks) != 0 {
		t.Errorf("expected 0 blocks, got %d", len(blocks))
	}
}

func TestGetBlocksSingleton(t *testing.T) {
	w := word("hello", 0, 0, 5, 5)
	blocks := GetBlocks([]Word{w})
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	if len(blocks[0].Words) != 1 || !blocks[0].Words[0].Equal(w) {
		t.Errorf("expected block to contain the single word")
	}
}

// TestGetBlocksTwoColumnsThreeRows checks that a 2x3 grid of
// single-character words splits all the way down to one word per
// block.
func TestGetBlocksTwoColumnsThreeRows(t *testing.T) {
	a := word("A", 0, 20, 5, 25)
	b := word("B", 0, 10, 5, 15)
	c := word("C", 0, 0, 5, 5)
	dd := word("D", 10, 20, 15, 25)
	e := word("E", 10, 10, 15, 15)
	f := word("F", 10, 0, 15, 5)
	words := []Word{a, b, c, dd, e, f}

	blocks := GetBlocks(words, WithConstantThresholds(df(1), df(1)))
	if len(blocks) != 6 {
		t.Fatalf("expected 6 blocks, got %d", len(blocks))
	}
	for _, blk := range blocks {
		if len(blk.Words) != 1 {
			t.Errorf("expected single-word block, got %d words", len(blk.Words))
		}
	}
}

// TestGetBlocksJustifiedParagraph checks that five words in a single
// row with gaps under the dominant width merge into one block with
// one line.
func TestGetBlocksJustifiedParagraph(t *testing.T) {
	words := []Word{
		word("one", 0, 0, 5, 5),
		word("two", 6, 0, 10, 5),
		word("three", 11, 0, 15, 5),
		word("four", 16, 0, 20, 5),
		word("five", 21, 0, 25, 5),
	}
	blocks := GetBlocks(words, WithConstantThresholds(df(2), df(2)))
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	if len(blocks[0].Words) != 5 {
		t.Errorf("expected 5 words in block, got %d", len(blocks[0].Words))
	}
	if len(blocks[0].Lines) != 1 {
		t.Errorf("expected 1 line, got %d", len(blocks[0].Lines))
	}
}

// TestGetBlocksTwoParagraphsBlankLine checks that two rows separated
// by a vertical gap wider than the dominant height split into two
// blocks.
func TestGetBlocksTwoParagraphsBlankLine(t *testing.T) {
	rowA := []Word{
		word("top-one", 0, 10, 5, 15),
		word("top-two", 6, 10, 10, 15),
	}
	rowB := []Word{
		word("bot-one", 0, 0, 5, 5),
		word("bot-two", 6, 0, 10, 5),
	}
	words := append(append([]Word{}, rowA...), rowB...)

	blocks := GetBlocks(words, WithConstantThresholds(df(2), df(3)))
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(blocks))
	}
}

func TestGetBlocksWhitespaceInvariance(t *testing.T) {
	words := []Word{
		word("one", 0, 0, 5, 5),
		word("two", 6, 0, 10, 5),
		word("three", 11, 0, 15, 5),
	}
	withSpace := append(append([]Word{}, words...), whitespaceWord(100, 100, 105, 105))

	base := GetBlocks(words, WithConstantThresholds(df(2), df(2)))
	withWS := GetBlocks(withSpace, WithConstantThresholds(df(2), df(2)))

	if len(base) != len(withWS) {
		t.Fatalf("block count changed: %d vs %d", len(base), len(withWS))
	}
	for i := range base {
		if len(base[i].Words) != len(withWS[i].Words) {
			t.Errorf("block %d word count changed: %d vs %d", i, len(base[i].Words), len(withWS[i].Words))
		}
	}
}

func TestGetBlocksCoverageAndDisjointness(t *testing.T) {
	words := []Word{
		word("A", 0, 20, 5, 25),
		word("B", 0, 10, 5, 15),
		word("C", 0, 0, 5, 5),
		word("D", 10, 20, 15, 25),
		word("E", 10, 10, 15, 15),
		word("F", 10, 0, 15, 5),
		whitespaceWord(50, 50, 55, 55),
	}

	blocks := GetBlocks(words, WithConstantThresholds(df(1), df(1)))

	seen := map[string]int{}
	for _, blk := range blocks {
		for _, w := range blk.Words {
			seen[w.Text()]++
		}
	}
	for _, text := range []string{"A", "B", "C", "D", "E", "F"} {
		if seen[text] != 1 {
			t.Errorf("word %q appeared %d times, want exactly 1", text, seen[text])
		}
	}
	if _, ok := seen["   "]; ok {
		t.Error("whitespace-only word should never appear in output")
	}
}

func TestGetBlocksTerminatesWhenProjectionNeverSplits(t *testing.T) {
	// All words share an identical bounding box: the vertical and
	// horizontal projections never split, so the level guard in
	// horizontalCut must still terminate the recursion.
	words := []Word{
		word("a", 0, 0, 5, 5),
		word("b", 0, 0, 5, 5),
		word("c", 0, 0, 5, 5),
	}
	done := make(chan []TextBlock, 1)
	go func() {
		done <- GetBlocks(words, WithConstantThresholds(df(1), df(1)))
	}()
	select {
	case blocks := <-done:
		if len(blocks) != 1 {
			t.Errorf("expected 1 block, got %d", len(blocks))
		}
		if len(blocks[0].Words) != 3 {
			t.Errorf("expected 3 words in the single block, got %d", len(blocks[0].Words))
		}
	case <-time.After(time.Second):
		t.Fatal("GetBlocks did not terminate")
	}
}

func TestGetBlocksMinimumWidthSuppressesNarrowCuts(t *testing.T) {
	words := []Word{
		word("a", 0, 0, 5, 5),
		word("b", 100, 0, 105, 5),
	}
	narrow := GetBlocks(words, WithMinimumWidth(df(0)), WithConstantThresholds(df(1), df(1)))
	wide := GetBlocks(words, WithMinimumWidth(df(1000)), WithConstantThresholds(df(1), df(1)))

	if len(narrow) != 2 {
		t.Fatalf("expected 2 blocks with minimumWidth=0, got %d", len(narrow))
	}
	if len(wide) != 1 {
		t.Fatalf("expected 1 block with a large minimumWidth, got %d", len(wide))
	}
}
