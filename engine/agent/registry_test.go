package agent

import (
	"errors"
	"testing"
)

// TestMakeIDsBijection verifies ids cover [offset, offset+k-skip) exactly once.
func TestMakeIDsBijection(t *testing.T) {
	keys := []int{40, 10, 30, 20, 50}
	for _, tt := range []struct{ offset, skip int }{{0, 0}, {1, 0}, {16, 2}, {3, 5}} {
		r := MakeIDs("test", keys, tt.offset, tt.skip)
		if r.Len() != len(keys)-tt.skip {
			t.Errorf("offset=%d skip=%d: Len = %d, want %d", tt.offset, tt.skip, r.Len(), len(keys)-tt.skip)
		}
		seen := make(map[int]bool)
		for i, k := range keys {
			id, err := r.Lookup(k)
			if i < tt.skip {
				if !errors.Is(err, ErrLookupMiss) {
					t.Errorf("skipped key %d: err = %v, want ErrLookupMiss", k, err)
				}
				continue
			}
			if err != nil {
				t.Fatalf("Lookup(%d): %v", k, err)
			}
			if want := tt.offset + i - tt.skip; id != want {
				t.Errorf("offset=%d skip=%d: Lookup(%d) = %d, want %d", tt.offset, tt.skip, k, id, want)
			}
			if seen[id] {
				t.Errorf("duplicate id %d", id)
			}
			seen[id] = true
		}
	}
}

// TestMakeIDsFromMapSorted verifies ids follow ascending key order.
func TestMakeIDsFromMapSorted(t *testing.T) {
	m := map[uint32]string{0x40: "d", 0x1: "a", 0x10: "c", 0x2: "b"}
	r := MakeIDsFromMap("sorted", m, 1, 1)
	want := map[uint32]int{0x2: 1, 0x10: 2, 0x40: 3}
	for k, w := range want {
		if got := r.MustLookup(k); got != w {
			t.Errorf("Lookup(%#x) = %d, want %d", k, got, w)
		}
	}
	if _, err := r.Lookup(0x1); !errors.Is(err, ErrLookupMiss) {
		t.Errorf("Lookup(skipped) err = %v, want ErrLookupMiss", err)
	}
}

func TestLookupErrorNamesKey(t *testing.T) {
	r := MakeIDs("race_to_id", []string{"a"}, 0, 0)
	_, err := r.Lookup("zzz")
	var le *LookupError
	if !errors.As(err, &le) || le.Table != "race_to_id" || le.Key != "zzz" {
		t.Fatalf("err = %#v, want LookupError{race_to_id, zzz}", err)
	}
	if got, want := err.Error(), "[race_to_id] cannot find id: zzz"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestMustLookupPanics(t *testing.T) {
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrLookupMiss) {
			t.Errorf("recover() = %v, want ErrLookupMiss", r)
		}
	}()
	MakeIDs("empty", []int{}, 0, 0).MustLookup(1)
}

func TestMakeIDsDuplicates(t *testing.T) {
	r := MakeIDs("dup", []int{5, 5, 6}, 0, 0)
	if r.Len() != 2 || r.MustLookup(5) != 0 || r.MustLookup(6) != 1 {
		t.Errorf("dup registry: len=%d ids=(%d,%d)", r.Len(), r.MustLookup(5), r.MustLookup(6))
	}
}
