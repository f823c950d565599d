package git

import (
	"reflect"
	"testing"
)

func TestPlan(t *testing.T) {
	want := [][]string{
		{"reset", "--hard", "HEAD"},
		{"clean", "-fd"},
		{"fetch", "--all"},
		{"reset", "--hard", "origin/main"},
		{"status"},
	}

	got := Plan("origin", "main")
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Plan() = %v, want %v", got, want)
	}
}

func TestPlan_CustomTarget(t *testing.T) {
	got := Plan("upstream", "develop")
	if len(got) != 5 {
		t.Fatalf("Plan() returned %d commands, want 5", len(got))
	}
	if !reflect.DeepEqual(got[3], []string{"reset", "--hard", "upstream/develop"}) {
		t.Errorf("fourth command = %v, want reset to upstream/develop", got[3])
	}
}

func TestPlan_Defaults(t *testing.T) {
	got := Plan("", "")
	if !reflect.DeepEqual(got[3], []string{"reset", "--hard", "origin/main"}) {
		t.Errorf("fourth command = %v, want reset to origin/main", got[3])
	}
}

func TestIsStatus(t *testing.T) {
	if !IsStatus([]string{"status"}) {
		t.Error("IsStatus([status]) = false")
	}
	if IsStatus([]string{"reset", "--hard", "HEAD"}) {
		t.Error("IsStatus([reset ...]) = true")
	}
	if IsStatus(nil) {
		t.Error("IsStatus(nil) = true")
	}
}
