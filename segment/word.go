package segment

import (
	"sort"
	"strings"

	"github.com/tsawler/xycut/geo"
)

// Letter is the external contract for a single recognized glyph. Width
// and height of GlyphRectangle may be negative — the sign encodes glyph
// orientation — so callers sampling font metrics take the absolute
// value.
type Letter interface {
	GlyphRectangle() geo.Rectangle
}

// Word is the external contract the segmenter consumes: an
// already-recognized word with its bounding box and constituent
// letters. BoundingBox must cover all of Letters; Text may be
// whitespace-only (such words are dropped at the top of every cut and
// never salvaged). Equal lets callers compare words by identity or
// value as the implementation sees fit; the segmenter itself tracks
// claimed words by index and never calls it.
type Word interface {
	Text() string
	BoundingBox() geo.Rectangle
	Letters() []Letter
	Equal(other Word) bool
}

// TextLine is a single line of words, grouped by vertical proximity.
type TextLine struct {
	Words []Word
}

// TextBlock is a leaf of the partition tree turned into output: a
// contiguous region of words, pre-grouped into lines.
type TextBlock struct {
	Words []Word
	Lines []TextLine
}

// LineGrouper converts a leaf's unordered words into ordered lines.
// It is caller-supplied: the segmenter only invokes whatever
// LineGrouper is configured and never inspects line structure itself.
type LineGrouper func(words []Word) []TextLine

// DefaultLineGrouper groups words into lines by vertical (Y) proximity,
// then sorts each line left to right. Two words fall on the same line
// when their vertical centers are within half the average of their
// heights.
func DefaultLineGrouper(words []Word) []TextLine {
	if len(words) == 0 {
		return nil
	}
	sorted := make([]Word, len(words))
	copy(sorted, words)
	sort.Slice(sorted, func(i, j int) bool {
		yi := center(sorted[i].BoundingBox())
		yj := center(sorted[j].BoundingBox())
		tol := lineTolerance(sorted[i].BoundingBox(), sorted[j].BoundingBox())
		if abs64(yi-yj) > tol {
			return yi > yj // higher on the page first
		}
		li, _ := sorted[i].BoundingBox().Left().Float64()
		lj, _ := sorted[j].BoundingBox().Left().Float64()
		return li < lj
	})

	var lines []TextLine
	var current []Word
	for _, w := range sorted {
		if len(current) == 0 {
			current = append(current, w)
			continue
		}
		last := current[len(current)-1]
		tol := lineTolerance(w.BoundingBox(), last.BoundingBox())
		if abs64(center(w.BoundingBox())-center(last.BoundingBox())) <= tol {
			current = append(current, w)
			continue
		}
		lines = append(lines, TextLine{Words: current})
		current = []Word{w}
	}
	if len(current) > 0 {
		lines = append(lines, TextLine{Words: current})
	}
	for i := range lines {
		sort.Slice(lines[i].Words, func(a, b int) bool {
			la, _ := lines[i].Words[a].BoundingBox().Left().Float64()
			lb, _ := lines[i].Words[b].BoundingBox().Left().Float64()
			return la < lb
		})
	}
	return lines
}

func center(r geo.Rectangle) float64 {
	bottom, _ := r.Bottom().Float64()
	top, _ := r.Top().Float64()
	return (bottom + top) / 2
}

func lineTolerance(a, b geo.Rectangle) float64 {
	ha, _ := a.Height().Float64()
	hb, _ := b.Height().Float64()
	return abs64(ha+hb) / 2 * 0.5
}

func abs64(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

func isWhitespace(w Word) bool {
	return strings.TrimSpace(w.Text()) == ""
}

// makeTextBlock converts a leaf's words into a TextBlock using grouper.
func makeTextBlock(words []Word, grouper LineGrouper) TextBlock {
	return TextBlock{Words: words, Lines: grouper(words)}
}
