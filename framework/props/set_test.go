package props_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/km-arc/go-dynprops/framework/props"
)

// ── Put ──────────────────────────────────────────────────────────────────────

func TestPut_LastWriteWins(t *testing.T) {
	s := props.NewSet()
	s.Put("first", "001")
	s.Put("first", "999")

	if got, _ := s.Get("first"); got != "999" {
		t.Errorf("first: got %q, want %q", got, "999")
	}
	if s.Len() != 1 {
		t.Errorf("Len: got %d, want 1", s.Len())
	}
}

func TestPut_OverwriteKeepsKeyPosition(t *testing.T) {
	s := props.NewSet()
	s.Put("a", "1")
	s.Put("b", "2")
	s.Put("a", "3") // overwrite must not move "a" to the end

	if diff := cmp.Diff([]string{"a", "b"}, s.Keys()); diff != "" {
		t.Errorf("Keys() order (-want +got):\n%s", diff)
	}
}

// ── Merge ────────────────────────────────────────────────────────────────────

func TestMerge_LaterEntriesWinWithinOneBag(t *testing.T) {
	s := props.NewSet()
	s.Merge(props.Of("key=first", "key=second"))

	if got, _ := s.Get("key"); got != "second" {
		t.Errorf("key: got %q, want %q", got, "second")
	}
}

func TestMerge_AcrossBags(t *testing.T) {
	s := props.NewSet()
	s.Merge(props.Of("first=001", "second=002"))
	s.Merge(props.Of("first=999", "third=003"))

	want := map[string]string{"first": "999", "second": "002", "third": "003"}
	if diff := cmp.Diff(want, s.Map()); diff != "" {
		t.Errorf("Map() (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"first", "second", "third"}, s.Keys()); diff != "" {
		t.Errorf("Keys() (-want +got):\n%s", diff)
	}
}

// ── Get / Map ────────────────────────────────────────────────────────────────

func TestGet_MissingKey(t *testing.T) {
	s := props.NewSet()
	if _, ok := s.Get("absent"); ok {
		t.Error("Get on missing key should report ok=false")
	}
}

func TestMap_ReturnsCopy(t *testing.T) {
	s := props.NewSet()
	s.Put("a", "1")

	m := s.Map()
	m["a"] = "mutated"

	if got, _ := s.Get("a"); got != "1" {
		t.Errorf("set was mutated through Map(): got %q, want %q", got, "1")
	}
}
