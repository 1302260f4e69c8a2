package similarity

import (
	"testing"

	"github.com/fitz35/hyperast-go/mapping"
)

// CommonDescendants count test: src=[1,2,3], dst=[10,11,12],
// ms={1->10, 3->12} -> 2.
func TestCommonDescendants(t *testing.T) {
	ms := mapping.NewMonoMappingStore()
	ms.Topit(4, 13)
	if err := ms.Link(1, 10); err != nil {
		t.Fatal(err)
	}
	if err := ms.Link(3, 12); err != nil {
		t.Fatal(err)
	}

	got := CommonDescendants([]uint32{1, 2, 3}, []uint32{10, 11, 12}, ms)
	if got != 2 {
		t.Fatalf("CommonDescendants = %d, want 2", got)
	}
}

func TestDiceIdentity(t *testing.T) {
	if got := Dice(3, 3, 3); got != 1.0 {
		t.Fatalf("Dice(a,a) = %v, want 1.0", got)
	}
}

func TestJaccardEmptyConvention(t *testing.T) {
	if got := Jaccard(0, 0, 0); got != 0.0 {
		t.Fatalf("Jaccard(empty,empty) = %v, want 0.0", got)
	}
}

func TestChawatheLEOverlap(t *testing.T) {
	cases := []struct{ common, lenSrc, lenDst int }{
		{2, 5, 8},
		{0, 4, 9},
		{3, 3, 3},
		{1, 1, 10},
	}
	for _, c := range cases {
		chawathe := Chawathe(c.common, c.lenSrc, c.lenDst)
		overlap := Overlap(c.common, c.lenSrc, c.lenDst)
		if chawathe > overlap+1e-9 {
			t.Fatalf("chawathe(%v) = %v > overlap = %v", c, chawathe, overlap)
		}
		if overlap > 1.0+1e-9 {
			t.Fatalf("overlap(%v) = %v > 1", c, overlap)
		}
	}
}
