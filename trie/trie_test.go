package trie

import "testing"

func TestInsertAndHas(t *testing.T) {
	tr := New()
	tr.Insert("auto")
	tr.Insert("automobil")

	if !tr.Has("auto") {
		t.Error("Has(auto) = false, want true")
	}
	if tr.Has("aut") {
		t.Error("Has(aut) = true, want false (not inserted as whole word)")
	}
}

func TestHasPrefix(t *testing.T) {
	tr := New()
	tr.Insert("automobil")

	if !tr.HasPrefix("aut") {
		t.Error("HasPrefix(aut) = false, want true")
	}
	if tr.HasPrefix("bus") {
		t.Error("HasPrefix(bus) = true, want false")
	}
}

func TestDescendantsOrSelf(t *testing.T) {
	tr := New()
	for _, w := range []string{"auto", "autobus", "automobil", "autor", "kravata"} {
		tr.Insert(w)
	}

	got := tr.DescendantsOrSelf("auto")
	want := map[string]bool{"auto": true, "autobus": true, "automobil": true, "autor": true}

	if len(got) != len(want) {
		t.Fatalf("DescendantsOrSelf(auto) = %v, want %v", got, want)
	}
	for _, w := range got {
		if !want[w] {
			t.Errorf("DescendantsOrSelf(auto) returned unexpected word %q", w)
		}
	}
}

func TestDescendantsOrSelfIncludesSelf(t *testing.T) {
	tr := New()
	tr.Insert("auto")
	tr.Insert("autobus")

	got := tr.DescendantsOrSelf("auto")
	found := false
	for _, w := range got {
		if w == "auto" {
			found = true
		}
	}
	if !found {
		t.Errorf("DescendantsOrSelf(auto) = %v, want to include self", got)
	}
}

func TestDescendantsOrSelfUnknownPrefix(t *testing.T) {
	tr := New()
	tr.Insert("auto")

	if got := tr.DescendantsOrSelf("xyz"); got != nil {
		t.Errorf("DescendantsOrSelf(xyz) = %v, want nil", got)
	}
}

func TestDuplicateInsertSize(t *testing.T) {
	tr := New()
	tr.Insert("auto")
	tr.Insert("auto")

	if tr.Size() != 1 {
		t.Errorf("Size() = %d, want 1", tr.Size())
	}
}
