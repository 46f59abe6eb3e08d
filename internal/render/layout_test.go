package render

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// cardsN returns n named card blocks c0..c{n-1}.
func cardsN(n int) []string {
	cards := make([]string, n)
	for i := range cards {
		cards[i] = fmt.Sprintf("c%d", i)
	}
	return cards
}

// blanks returns n empty blocks.
func blanks(n int) []string {
	return make([]string, n)
}

func TestLayout_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		layout  Layout
		wantErr error
	}{
		{name: "default", layout: DefaultLayout()},
		{name: "no padding", layout: Layout{Padding: 0, PageStep: 9, SliceWidth: 9}},
		{name: "negative padding", layout: Layout{Padding: -1, PageStep: 10, SliceWidth: 9}, wantErr: ErrInvalidLayout},
		{name: "zero page step", layout: Layout{Padding: 10, PageStep: 0, SliceWidth: 9}, wantErr: ErrInvalidLayout},
		{name: "zero slice width", layout: Layout{Padding: 10, PageStep: 10, SliceWidth: 0}, wantErr: ErrInvalidLayout},
		{name: "too large", layout: Layout{Padding: 10, PageStep: MaxLayoutValue + 1, SliceWidth: 9}, wantErr: ErrInvalidLayout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if err := tt.layout.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestLayout_Paginate - Padding, page offsets and slice width
// ---------------------------------------------------------------------------

func TestLayout_Paginate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		layout Layout
		cards  []string
		want   [][]string
	}{
		{
			name:   "no cards means no pages",
			layout: DefaultLayout(),
			cards:  nil,
			want:   nil,
		},
		{
			name:   "one card is followed by padding",
			layout: DefaultLayout(),
			cards:  cardsN(1),
			want:   [][]string{append([]string{"c0"}, blanks(8)...)},
		},
		{
			name:   "nine cards fill one page",
			layout: DefaultLayout(),
			cards:  cardsN(9),
			want:   [][]string{cardsN(9)},
		},
		{
			name:   "tenth card is never shown",
			layout: DefaultLayout(),
			cards:  cardsN(10),
			want:   [][]string{cardsN(9)},
		},
		{
			name:   "eleventh card starts page two",
			layout: DefaultLayout(),
			cards:  cardsN(11),
			want: [][]string{
				cardsN(9),
				append([]string{"c10"}, blanks(8)...),
			},
		},
		{
			name:   "twenty cards make two full pages",
			layout: DefaultLayout(),
			cards:  cardsN(20),
			want:   [][]string{cardsN(9), cardsN(19)[10:]},
		},
		{
			name:   "matching step and width keep every card",
			layout: Layout{Padding: 0, PageStep: 9, SliceWidth: 9},
			cards:  cardsN(10),
			want:   [][]string{cardsN(9), {"c9"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := tt.layout.Paginate(tt.cards)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Paginate() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLayout_Paginate_PageCount(t *testing.T) {
	t.Parallel()

	for n := 0; n <= 35; n++ {
		pages := DefaultLayout().Paginate(cardsN(n))
		want := (n + 9) / 10
		if len(pages) != want {
			t.Errorf("Paginate(%d cards) = %d pages, want %d", n, len(pages), want)
		}
		for i, p := range pages {
			if len(p) != DefaultSliceWidth {
				t.Errorf("Paginate(%d cards) page %d has %d slots, want %d", n, i, len(p), DefaultSliceWidth)
			}
		}
	}
}

func TestLayout_Paginate_DoesNotModifyInput(t *testing.T) {
	t.Parallel()

	cards := make([]string, 3, 20)
	copy(cards, []string{"a", "b", "c"})
	_ = DefaultLayout().Paginate(cards)

	if extended := cards[:4]; extended[3] != "" {
		t.Errorf("Paginate() wrote into the caller's backing array: %q", extended[3])
	}
}
