// Package segment implements the recursive X-Y cut page segmenter: it
// partitions a page's words into a tree of rectangular regions by
// alternating vertical and horizontal cuts over projection profiles,
// using gap thresholds derived from the page's own dominant font
// metrics.
package segment

import (
	"sort"

	"github.com/tsawler/xycut/geo"
)

// Config holds the segmenter's adaptive knobs.
type Config struct {
	// MinimumWidth suppresses vertical cuts that would leave a band
	// narrower than this.
	MinimumWidth geo.D

	// DomWidthFn derives the horizontal-gap threshold from a sample of
	// letter widths.
	DomWidthFn FontStatFn

	// DomHeightFn derives the vertical-gap threshold from a sample of
	// letter heights.
	DomHeightFn FontStatFn

	// LineGrouper converts a leaf's words into lines for the resulting
	// TextBlock. It is an external collaborator: the segmenter never
	// inspects the lines it produces.
	LineGrouper LineGrouper
}

// DefaultConfig returns the segmenter's default configuration: no
// minimum width, dominant width from the mode of letter widths,
// dominant height from 1.5x the mode of letter heights.
func DefaultConfig() Config {
	return Config{
		MinimumWidth: geo.Zero,
		DomWidthFn:   Mode,
		DomHeightFn:  OnePointFiveMode,
		LineGrouper:  DefaultLineGrouper,
	}
}

// Option configures a Config.
type Option func(*Config)

// WithMinimumWidth sets the minimum vertical band width.
func WithMinimumWidth(w geo.D) Option {
	return func(c *Config) { c.MinimumWidth = w }
}

// WithConstantThresholds fixes the dominant width and height to
// constants, rather than deriving them per leaf from letter samples.
func WithConstantThresholds(domWidth, domHeight geo.D) Option {
	return func(c *Config) {
		c.DomWidthFn = Constant(domWidth)
		c.DomHeightFn = Constant(domHeight)
	}
}

// WithDominantFuncs sets the functions used to derive the horizontal-
// and vertical-gap thresholds from a leaf's letter samples.
func WithDominantFuncs(domWidthFn, domHeightFn FontStatFn) Option {
	return func(c *Config) {
		c.DomWidthFn = domWidthFn
		c.DomHeightFn = domHeightFn
	}
}

// WithLineGrouper overrides the default vertical-proximity line
// grouper used to build each TextBlock's Lines.
func WithLineGrouper(g LineGrouper) Option {
	return func(c *Config) { c.LineGrouper = g }
}

// GetBlocks decomposes words into TextBlocks by recursive X-Y cut,
// starting with a VerticalCut on the full word set. Empty input
// returns a nil, empty result — that is never an error for the
// segmenter. A single surviving word, or a leaf the cuts never manage
// to split, yields a single TextBlock holding every word.
func GetBlocks(words []Word, opts ...Option) []TextBlock {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if len(words) == 0 {
		return nil
	}
	root := verticalCut(leafNode(words), cfg, 0)
	leaves := collectLeaves(root)
	blocks := make([]TextBlock, 0, len(leaves))
	for _, leaf := range leaves {
		blocks = append(blocks, makeTextBlock(leaf.Words, cfg.LineGrouper))
	}
	return blocks
}

// interval is a [lo, hi] span of a projection profile.
type interval struct {
	Lo, Hi geo.D
}

func leftOf(w Word) geo.D   { return w.BoundingBox().Left() }
func rightOf(w Word) geo.D  { return w.BoundingBox().Right() }
func bottomOf(w Word) geo.D { return w.BoundingBox().Bottom() }
func topOf(w Word) geo.D    { return w.BoundingBox().Top() }

func filterWhitespace(words []Word) []Word {
	out := make([]Word, 0, len(words))
	for _, w := range words {
		if !isWhitespace(w) {
			out = append(out, w)
		}
	}
	return out
}

func leafWidth(words []Word) geo.D {
	minLeft := leftOf(words[0])
	maxRight := rightOf(words[0])
	for _, w := range words[1:] {
		if l := leftOf(w); l.Cmp(minLeft) < 0 {
			minLeft = l
		}
		if r := rightOf(w); r.Cmp(maxRight) > 0 {
			maxRight = r
		}
	}
	return maxRight.Sub(minLeft)
}

// dominants computes both the dominant font width and height from
// words' letters. Each cut recomputes these locally from its own
// surviving words, not from the page as a whole.
func dominants(words []Word, cfg Config) (domFontWidth, domFontHeight geo.D) {
	widthSamples := letterSamples(words, func(r geo.Rectangle) geo.D { return r.Width() })
	heightSamples := letterSamples(words, func(r geo.Rectangle) geo.D { return r.Height() })
	return cfg.DomWidthFn(widthSamples), cfg.DomHeightFn(heightSamples)
}

// buildIntervals builds the 1-D projection profile over [loOf, hiOf]
// for words already sorted ascending by loOf. applyMinWidthFallback
// enables the "still too narrow to cut" merge rule used on the
// vertical (width) axis only.
func buildIntervals(words []Word, threshold, minWidth geo.D, applyMinWidthFallback bool, loOf, hiOf func(Word) geo.D) []interval {
	n := len(words)
	cur := interval{Lo: loOf(words[0]), Hi: hiOf(words[0])}
	var intervals []interval
	for i := 1; i < n; i++ {
		w := words[i]
		wLo, wHi := loOf(w), hiOf(w)

		overlap := false
		if wLo.Cmp(cur.Lo) >= 0 && wLo.Cmp(cur.Hi) <= 0 {
			if wHi.Cmp(cur.Hi) > 0 {
				cur.Hi = wHi
			}
			overlap = true
		} else if wHi.Cmp(cur.Lo) >= 0 && wHi.Cmp(cur.Hi) <= 0 {
			// Not reached given the ascending sort on loOf (wLo >= cur.Lo,
			// so contained words take the branch above); kept for
			// fidelity with the source, which checks both ends.
			overlap = true
		}

		if !overlap {
			gap := wLo.Sub(cur.Hi)
			width := cur.Hi.Sub(cur.Lo)
			switch {
			case gap.Cmp(threshold) <= 0:
				cur.Hi = wHi
			case applyMinWidthFallback && width.Cmp(minWidth) < 0:
				cur.Hi = wHi
			default:
				intervals = append(intervals, cur)
				cur = interval{Lo: wLo, Hi: wHi}
			}
		}

		if i == n-1 {
			intervals = append(intervals, cur)
		}
	}
	if n == 1 {
		intervals = append(intervals, cur)
	}
	return intervals
}

// claimChildren assigns each word to the first interval whose [lo, hi]
// contains it, returning the claimed groups (in interval order) and a
// parallel claimed flag per word for the salvage step.
func claimChildren(words []Word, intervals []interval, loOf, hiOf func(Word) geo.D) ([][]Word, []bool) {
	claimed := make([]bool, len(words))
	var groups [][]Word
	for _, iv := range intervals {
		var group []Word
		for i, w := range words {
			if claimed[i] {
				continue
			}
			if loOf(w).Cmp(iv.Lo) >= 0 && hiOf(w).Cmp(iv.Hi) <= 0 {
				group = append(group, w)
				claimed[i] = true
			}
		}
		if len(group) > 0 {
			groups = append(groups, group)
		}
	}
	return groups, claimed
}

// salvage wraps every unclaimed word as a singleton leaf, preserving
// coverage when the projection profile fails to claim a word (for
// example a word whose box straddles an interval boundary after
// rounding).
func salvage(words []Word, claimed []bool) []*PartitionNode {
	var out []*PartitionNode
	for i, w := range words {
		if !claimed[i] {
			out = append(out, leafNode([]Word{w}))
		}
	}
	return out
}

// verticalCut partitions n by horizontal gaps between words sorted
// left to right.
func verticalCut(n *PartitionNode, cfg Config, level int) *PartitionNode {
	survivors := filterWhitespace(n.Words)
	if len(survivors) == 0 {
		return emptyNode()
	}
	sort.Slice(survivors, func(i, j int) bool {
		return leftOf(survivors[i]).Cmp(leftOf(survivors[j])) < 0
	})
	if len(survivors) <= 1 || leafWidth(survivors).Cmp(cfg.MinimumWidth) <= 0 {
		return leafNode(survivors)
	}

	domFontWidth, _ := dominants(survivors, cfg)
	intervals := buildIntervals(survivors, domFontWidth, cfg.MinimumWidth, true, leftOf, rightOf)
	groups, claimed := claimChildren(survivors, intervals, leftOf, rightOf)

	var children []*PartitionNode
	for _, group := range groups {
		children = append(children, horizontalCut(leafNode(group), cfg, level))
	}
	children = append(children, salvage(survivors, claimed)...)
	return internalNode(children)
}

// horizontalCut partitions n by vertical gaps between words sorted
// bottom to top. level guards against infinite mutual recursion when
// the vertical projection never splits: once a single-interval result
// recurs at level >= 1, the leaf is returned unchanged instead of
// recursing again.
func horizontalCut(n *PartitionNode, cfg Config, level int) *PartitionNode {
	survivors := filterWhitespace(n.Words)
	if len(survivors) == 0 {
		return emptyNode()
	}
	sort.Slice(survivors, func(i, j int) bool {
		return bottomOf(survivors[i]).Cmp(bottomOf(survivors[j])) < 0
	})
	if len(survivors) <= 1 {
		return leafNode(survivors)
	}

	_, domFontHeight := dominants(survivors, cfg)
	intervals := buildIntervals(survivors, domFontHeight, cfg.MinimumWidth, false, bottomOf, topOf)

	if len(intervals) == 1 {
		if level >= 1 {
			return leafNode(survivors)
		}
		level++
	}

	groups, claimed := claimChildren(survivors, intervals, bottomOf, topOf)
	var children []*PartitionNode
	for _, group := range groups {
		children = append(children, verticalCut(leafNode(group), cfg, level))
	}
	children = append(children, salvage(survivors, claimed)...)
	return internalNode(children)
}
