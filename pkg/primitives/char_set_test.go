package primitives

import "testing"

func TestCharSetAddContains(t *testing.T) {
	var cs CharSet
	if cs.Count() != 0 {
		t.Fatalf("zero CharSet has count %d", cs.Count())
	}

	if err := cs.Add('a'); err != nil {
		t.Fatalf("Add('a'): %v", err)
	}
	if err := cs.Add('z'); err != nil {
		t.Fatalf("Add('z'): %v", err)
	}
	if err := cs.Add('a'); err != nil {
		t.Fatalf("re-Add('a'): %v", err)
	}

	if !cs.Contains('a') || !cs.Contains('z') {
		t.Errorf("set %v missing added letters", cs)
	}
	if cs.Contains('b') {
		t.Errorf("set %v contains un-added letter", cs)
	}
	if cs.Count() != 2 {
		t.Errorf("Count() = %d, want 2", cs.Count())
	}
}

func TestCharSetOutOfRange(t *testing.T) {
	var cs CharSet
	for _, r := range []rune{'A', '#', '.', ' ', '{'} {
		if err := cs.Add(r); err == nil {
			t.Errorf("Add(%q) accepted an out-of-range rune", r)
		}
		if cs.Contains(r) {
			t.Errorf("Contains(%q) = true for out-of-range rune", r)
		}
	}
	if cs.Count() != 0 {
		t.Errorf("failed Adds changed the set: %v", cs)
	}
}

func TestCharSetAddAll(t *testing.T) {
	var a, b CharSet
	_ = a.Add('c')
	_ = b.Add('c')
	_ = b.Add('d')

	a.AddAll(b)
	if a.Count() != 2 || !a.Contains('d') {
		t.Errorf("AddAll result %v, want letters c and d", a)
	}
}

func TestCharSetIsFull(t *testing.T) {
	var cs CharSet
	for r := 'a'; r <= 'z'; r++ {
		if cs.IsFull() {
			t.Fatalf("set full before adding %q", r)
		}
		_ = cs.Add(r)
	}
	if !cs.IsFull() {
		t.Errorf("set with every letter not reported full")
	}
	if cs.Count() != cs.Capacity() {
		t.Errorf("Count() = %d, Capacity() = %d", cs.Count(), cs.Capacity())
	}
}
