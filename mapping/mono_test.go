package mapping

import "testing"

func TestLinkEstablishesMonoInvariant(t *testing.T) {
	m := NewMonoMappingStore()
	m.Topit(5, 5)

	pairs := [][2]uint32{{0, 2}, {1, 0}, {4, 4}}
	for _, p := range pairs {
		if err := m.Link(p[0], p[1]); err != nil {
			t.Fatalf("Link(%d,%d): %v", p[0], p[1], err)
		}
		if !m.Has(p[0], p[1]) {
			t.Fatalf("Has(%d,%d) false right after Link", p[0], p[1])
		}
		dst, ok := m.GetDst(p[0])
		if !ok || dst != p[1] {
			t.Fatalf("GetDst(%d) = (%d,%v), want (%d,true)", p[0], dst, ok, p[1])
		}
		src, ok := m.GetSrc(p[1])
		if !ok || src != p[0] {
			t.Fatalf("GetSrc(%d) = (%d,%v), want (%d,true)", p[1], src, ok, p[0])
		}
	}
}

func TestLinkRejectsAlreadyMapped(t *testing.T) {
	m := NewMonoMappingStore()
	m.Topit(3, 3)
	if err := m.Link(0, 0); err != nil {
		t.Fatal(err)
	}
	if err := m.Link(0, 1); err == nil {
		t.Fatal("expected AlreadyMappedError linking an already-mapped src")
	}
	if err := m.Link(1, 0); err == nil {
		t.Fatal("expected AlreadyMappedError linking an already-mapped dst")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	m := NewMonoMappingStore()
	m.Topit(2, 2)
	if err := m.Link(0, 0); err != nil {
		t.Fatal(err)
	}
	c := m.Clone()
	if err := c.Link(1, 1); err != nil {
		t.Fatal(err)
	}
	if m.IsSrc(1) {
		t.Fatal("Link on clone mutated original")
	}
}

func TestGrowSrcExtendsUnmapped(t *testing.T) {
	m := NewMonoMappingStore()
	m.Topit(1, 1)
	m.GrowSrc(2)
	if m.IsSrc(1) || m.IsSrc(2) {
		t.Fatal("GrowSrc should add unmapped ids")
	}
	if err := m.Link(2, 0); err != nil {
		t.Fatalf("Link on grown id: %v", err)
	}
}
