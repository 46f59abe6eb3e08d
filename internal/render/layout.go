package render

import (
	"errors"
	"fmt"
)

// ErrInvalidLayout indicates a layout value out of range.
var ErrInvalidLayout = errors.New("invalid layout")

// Default layout values. Pages start every ten cards but show nine, so the
// tenth card of each group is never rendered.
const (
	DefaultPadding    = 10
	DefaultPageStep   = 10
	DefaultSliceWidth = 9
)

// MaxLayoutValue bounds each layout field.
const MaxLayoutValue = 1000

// Layout controls how card blocks are cut into pages.
type Layout struct {
	Padding    int // empty blocks appended after the last card
	PageStep   int // distance between page start offsets
	SliceWidth int // blocks shown per page
}

// DefaultLayout returns the layout of the original card sheets.
func DefaultLayout() Layout {
	return Layout{
		Padding:    DefaultPadding,
		PageStep:   DefaultPageStep,
		SliceWidth: DefaultSliceWidth,
	}
}

// Validate checks that every field is within range.
func (l Layout) Validate() error {
	if l.Padding < 0 || l.Padding > MaxLayoutValue {
		return fmt.Errorf("%w: padding must be between 0 and %d, got %d", ErrInvalidLayout, MaxLayoutValue, l.Padding)
	}
	if l.PageStep < 1 || l.PageStep > MaxLayoutValue {
		return fmt.Errorf("%w: page step must be between 1 and %d, got %d", ErrInvalidLayout, MaxLayoutValue, l.PageStep)
	}
	if l.SliceWidth < 1 || l.SliceWidth > MaxLayoutValue {
		return fmt.Errorf("%w: slice width must be between 1 and %d, got %d", ErrInvalidLayout, MaxLayoutValue, l.SliceWidth)
	}
	return nil
}

// Paginate pads cards and cuts them into pages. Start offsets step across
// the unpadded count; each page is the slice of SliceWidth blocks from its
// offset, clamped to the padded length. No cards means no pages.
func (l Layout) Paginate(cards []string) [][]string {
	padded := make([]string, len(cards), len(cards)+l.Padding)
	copy(padded, cards)
	for range l.Padding {
		padded = append(padded, "")
	}

	var pages [][]string
	for offset := 0; offset < len(cards); offset += l.PageStep {
		end := min(offset+l.SliceWidth, len(padded))
		pages = append(pages, padded[offset:end])
	}
	return pages
}
