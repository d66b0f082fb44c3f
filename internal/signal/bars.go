package signal

import (
	"math"
	"strings"

	"widar.klederson.com/internal/config"
)

// Glyphs used by the bar indicator.
const (
	FilledGlyph   = '▃'
	UnfilledGlyph = '▁'
)

// BarCount is the number of glyph positions that represent the full signal
// range. It never drops below config.MinBars.
type BarCount struct {
	n int
}

// NewBarCount returns a BarCount, raising n to config.MinBars if needed.
func NewBarCount(n int) BarCount {
	if n < config.MinBars {
		n = config.MinBars
	}
	return BarCount{n: n}
}

// Int returns the number of positions. The zero value reports config.MinBars.
func (b BarCount) Int() int {
	if b.n < config.MinBars {
		return config.MinBars
	}
	return b.n
}

// Range is the dBm interval the bar scale is calibrated over.
type Range struct {
	Min int
	Max int
}

// DefaultRange returns [config.MinStrength, config.MaxStrength].
func DefaultRange() Range {
	return Range{Min: config.MinStrength, Max: config.MaxStrength}
}

// Degenerate reports whether the range cannot be normalized.
func (r Range) Degenerate() bool {
	return r.Min == r.Max
}

// Indicator is a rendered bar: Filled of Total positions.
type Indicator struct {
	Filled int
	Total  int
}

// String renders the filled prefix followed by the unfilled remainder.
func (i Indicator) String() string {
	var b strings.Builder
	b.Grow(i.Total * len(string(FilledGlyph)))
	for n := 0; n < i.Filled; n++ {
		b.WriteRune(FilledGlyph)
	}
	for n := i.Filled; n < i.Total; n++ {
		b.WriteRune(UnfilledGlyph)
	}
	return b.String()
}

// NewIndicator maps strength onto bars positions within r.
//
// A degenerate range renders every position filled. Readings below r.Min
// render empty and readings above r.Max render full. In between the filled
// count is interpolated linearly and rounded half away from zero, so the
// midpoint of [-100, -30] on 5 bars fills 3.
func NewIndicator(strength int, bars BarCount, r Range) Indicator {
	total := bars.Int()
	return Indicator{Filled: filled(strength, total, r), Total: total}
}

// Bar renders the indicator for strength as a glyph string.
func Bar(strength int, bars BarCount, r Range) string {
	return NewIndicator(strength, bars, r).String()
}

func filled(strength, total int, r Range) int {
	switch {
	case r.Degenerate():
		return total
	case strength < r.Min:
		return 0
	case strength > r.Max:
		return total
	}
	ratio := float64(strength-r.Min) / float64(r.Max-r.Min)
	return int(math.Round(ratio * float64(total)))
}
