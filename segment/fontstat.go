package segment

import (
	"math"
	"strconv"

	"github.com/tsawler/xycut/geo"
	"github.com/woodsbury/decimal128"
)

// FontStatFn maps a sample of decimals — letter widths or heights
// drawn from a leaf's surviving words — to a single adaptive gap
// threshold.
type FontStatFn func(samples []geo.D) geo.D

// Mode returns the statistical mode of samples, rounded to three
// decimal places. Ties are broken by the first value encountered in
// samples. An empty sample returns zero.
func Mode(samples []geo.D) geo.D {
	if len(samples) == 0 {
		return geo.Zero
	}
	counts := make(map[string]int)
	values := make(map[string]float64)
	var order []string
	for _, s := range samples {
		f, _ := s.Float64()
		rounded := roundTo3(f)
		key := strconv.FormatFloat(rounded, 'f', 3, 64)
		if _, seen := counts[key]; !seen {
			order = append(order, key)
			values[key] = rounded
		}
		counts[key]++
	}
	best := order[0]
	for _, k := range order[1:] {
		if counts[k] > counts[best] {
			best = k
		}
	}
	return decimal128.FromFloat64(values[best])
}

// OnePointFiveMode returns 1.5 times the mode of samples, rounded to
// three decimal places. It is the default domHeightFn.
func OnePointFiveMode(samples []geo.D) geo.D {
	m := Mode(samples)
	f, _ := m.Float64()
	return decimal128.FromFloat64(roundTo3(f * 1.5))
}

// Constant returns a FontStatFn that ignores its sample and always
// returns value, for callers supplying fixed thresholds rather than
// font-derived ones.
func Constant(value geo.D) FontStatFn {
	return func([]geo.D) geo.D { return value }
}

func roundTo3(f float64) float64 {
	return math.Round(f*1000) / 1000
}

// letterSamples gathers abs(GlyphRectangle.Width) or abs(...Height)
// from every letter of every word in words.
func letterSamples(words []Word, axis func(geo.Rectangle) geo.D) []geo.D {
	var samples []geo.D
	for _, w := range words {
		for _, l := range w.Letters() {
			v := axis(l.GlyphRectangle())
			samples = append(samples, absD(v))
		}
	}
	return samples
}

func absD(d geo.D) geo.D {
	if d.Cmp(geo.Zero) < 0 {
		return geo.Zero.Sub(d)
	}
	return d
}
