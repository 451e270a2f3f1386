package catalog

import (
	"testing"

	"github.com/pkg/errors"
)

func TestCanon(t *testing.T) {
	if len(Books) != 66 {
		t.Fatalf("expected 66 books, got %d", len(Books))
	}
	seen := map[string]bool{}
	total := 0
	for i, b := range Books {
		if b.ProviderID != i+1 {
			t.Errorf("%s has provider id %d, want %d", b.ID, b.ProviderID, i+1)
		}
		if seen[b.ID] {
			t.Errorf("duplicate id %s", b.ID)
		}
		seen[b.ID] = true
		if b.TotalChapters < 1 {
			t.Errorf("%s has no chapters", b.ID)
		}
		total += b.TotalChapters
	}
	if total != 1189 {
		t.Errorf("expected 1189 chapters in the canon, got %d", total)
	}
	if Books[DefaultBookIndex].ID != "JHN" {
		t.Errorf("default book is %s, want JHN", Books[DefaultBookIndex].ID)
	}
}

func TestLookupsAreTotal(t *testing.T) {
	if b := FindByID("ROM"); b.Name != "Romans" {
		t.Errorf("FindByID(ROM) = %s", b.Name)
	}
	if b := FindByID("XYZ"); b.ID != "GEN" {
		t.Errorf("FindByID on unknown id should give the first book, got %s", b.ID)
	}
	if n := ProviderIDOf("REV"); n != 66 {
		t.Errorf("ProviderIDOf(REV) = %d", n)
	}
	if n := ProviderIDOf(""); n != 1 {
		t.Errorf("ProviderIDOf on unknown id = %d, want 1", n)
	}
	if b := FindByProviderID(43); b.ID != "JHN" {
		t.Errorf("FindByProviderID(43) = %s", b.ID)
	}
	for _, n := range []int{0, -3, 67, 1000} {
		if b := FindByProviderID(n); b.ID != "GEN" {
			t.Errorf("FindByProviderID(%d) = %s, want GEN", n, b.ID)
		}
	}
}

func TestLookup(t *testing.T) {
	b, err := Lookup("PSA")
	if err != nil || b.TotalChapters != 150 {
		t.Fatalf("Lookup(PSA) = %+v, %v", b, err)
	}
	if _, err := Lookup("NOPE"); !errors.Is(err, ErrUnknownBook) {
		t.Fatalf("expected ErrUnknownBook, got %v", err)
	}
	if !ValidChapter(b, 150) || ValidChapter(b, 151) || ValidChapter(b, 0) {
		t.Errorf("ValidChapter bounds are wrong")
	}
}
