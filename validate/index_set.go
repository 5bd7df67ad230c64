package validate

import (
	"math"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/RoaringBitmap/roaring/v2/roaring64"
)

// indexSet records edge indices. The 32-bit bitmap covers every graph whose
// indices fit in uint32; larger ones use the 64-bit variant.
type indexSet interface {
	// CheckedAdd inserts i and reports whether it was absent.
	CheckedAdd(i int) bool
	Contains(i int) bool
}

func newIndexSet(m int) indexSet {
	if uint64(m) <= math.MaxUint32+1 {
		return narrowSet{roaring.New()}
	}

	return wideSet{roaring64.New()}
}

type narrowSet struct{ b *roaring.Bitmap }

func (s narrowSet) CheckedAdd(i int) bool { return s.b.CheckedAdd(uint32(i)) }
func (s narrowSet) Contains(i int) bool   { return s.b.Contains(uint32(i)) }

type wideSet struct{ b *roaring64.Bitmap }

func (s wideSet) CheckedAdd(i int) bool { return s.b.CheckedAdd(uint64(i)) }
func (s wideSet) Contains(i int) bool   { return s.b.Contains(uint64(i)) }
