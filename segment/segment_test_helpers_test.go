package segment

import "github.com/tsawler/xycut/geo"

// testWord and testLetter are minimal fixtures implementing the Word
// and Letter contracts for the tests in this package.
type testWord struct {
	text    string
	bbox    geo.Rectangle
	letters []Letter
}

func (w testWord) Text() string              { return w.text }
func (w testWord) BoundingBox() geo.Rectangle { return w.bbox }
func (w testWord) Letters() []Letter          { return w.letters }
func (w testWord) Equal(other Word) bool {
	o, ok := other.(testWord)
	if !ok {
		return false
	}
	return o.text == w.text && o.bbox.Equal(w.bbox)
}

type testLetter struct {
	rect geo.Rectangle
}

func (l testLetter) GlyphRectangle() geo.Rectangle { return l.rect }

func rect(left, bottom, right, top float64) geo.Rectangle {
	return geo.NewRectangle(df(left), df(bottom), df(right), df(top))
}

func df(f float64) geo.D {
	return geo.NewPoint(f, 0).X
}

func word(text string, left, bottom, right, top float64) testWord {
	return testWord{text: text, bbox: rect(left, bottom, right, top)}
}

func whitespaceWord(left, bottom, right, top float64) testWord {
	return word("   ", left, bottom, right, top)
}
