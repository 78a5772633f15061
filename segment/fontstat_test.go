package segment

import (
	"testing"

	"github.com/tsawler/xycut/geo"
)

func TestModeReturnsMostFrequentValue(t *testing.T) {
	samples := []geo.D{df(10), df(10), df(12), df(10), df(12)}
	got := Mode(samples)
	if got.Cmp(df(10)) != 0 {
		t.Errorf("Mode = %v, want 10", got)
	}
}

func TestModeEmptySample(t *testing.T) {
	got := Mode(nil)
	if got.Cmp(df(0)) != 0 {
		t.Errorf("Mode(nil) = %v, want 0", got)
	}
}

func TestOnePointFiveMode(t *testing.T) {
	samples := []geo.D{df(2), df(2), df(3)}
	got := OnePointFiveMode(samples)
	if got.Cmp(df(3)) != 0 {
		t.Errorf("OnePointFiveMode = %v, want 3", got)
	}
}

func TestConstantIgnoresSample(t *testing.T) {
	fn := Constant(df(42))
	if got := fn([]geo.D{df(1), df(2)}); got.Cmp(df(42)) != 0 {
		t.Errorf("Constant fn = %v, want 42", got)
	}
	if got := fn(nil); got.Cmp(df(42)) != 0 {
		t.Errorf("Constant fn(nil) = %v, want 42", got)
	}
}

func TestLetterSamplesTakesAbsoluteValue(t *testing.T) {
	w := testWord{
		text: "x",
		bbox: rect(0, 0, 5, 5),
		letters: []Letter{
			testLetter{rect: rect(0, 0, -3, -2)}, // negative width/height
		},
	}
	widths := letterSamples([]Word{w}, func(r geo.Rectangle) geo.D { return r.Width() })
	if len(widths) != 1 {
		t.Fatalf("expected 1 sample, got %d", len(widths))
	}
	if widths[0].Cmp(df(3)) != 0 {
		t.Errorf("sample = %v, want 3 (absolute value)", widths[0])
	}
}
