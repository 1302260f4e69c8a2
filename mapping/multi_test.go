package mapping

import "testing"

func TestMultiMappingStoreManyToMany(t *testing.T) {
	m := NewMultiMappingStore()
	m.Link(1, 10)
	m.Link(1, 11)
	m.Link(2, 10)

	if !m.IsSrc(1) || !m.IsDst(10) {
		t.Fatal("expected 1 and 10 to be mapped")
	}
	if m.IsSrcUnique(1) {
		t.Fatal("src 1 maps to two destinations, should not be unique")
	}
	if m.IsDstUnique(10) {
		t.Fatal("dst 10 is mapped from two sources, should not be unique")
	}
	if !m.IsDstUnique(11) {
		t.Fatal("dst 11 has exactly one source, should be unique")
	}

	dsts := m.GetDsts(1)
	if len(dsts) != 2 {
		t.Fatalf("GetDsts(1) = %v, want 2 entries", dsts)
	}
	srcs := m.GetSrcs(10)
	if len(srcs) != 2 {
		t.Fatalf("GetSrcs(10) = %v, want 2 entries", srcs)
	}
	if m.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", m.Len())
	}
}
