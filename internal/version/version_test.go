package version

import (
	"sort"
	"testing"
)

func TestVersionHelpers(t *testing.T) {
	if got := GetMinorVersion("0.2.7"); got != "0.2" {
		t.Errorf("GetMinorVersion = %s", got)
	}
	if got := GetSchemaVersion("1.10.3"); got != "1.10.0" {
		t.Errorf("GetSchemaVersion = %s", got)
	}
	if GetSchemaVersion("bad") != "" {
		t.Errorf("GetSchemaVersion should reject a bare word")
	}
	if !IsVersionGreaterThan("0.10.0", "0.9.0") {
		t.Errorf("0.10.0 should be greater than 0.9.0")
	}
	if IsVersionGreaterThan("0.2.0", "0.2.0") {
		t.Errorf("equal versions are not greater")
	}
	if !IsVersionGreaterOrEqualThan("0.2.0", "0.2.0") {
		t.Errorf("equal versions are greater or equal")
	}
}

func TestSortVersion(t *testing.T) {
	list := []string{"0.10", "0.2", "0.1", "1.0"}
	sort.Sort(SortVersion(list))
	want := []string{"0.1", "0.2", "0.10", "1.0"}
	for i := range want {
		if list[i] != want[i] {
			t.Fatalf("sorted = %v, want %v", list, want)
		}
	}
}
