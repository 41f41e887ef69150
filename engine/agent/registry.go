package agent

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
)

// ErrLookupMiss is returned when a key is outside a registry's closed domain.
// It always indicates a programming or data error.
var ErrLookupMiss = errors.New("lookup miss")

// LookupError names the table and the key that missed.
type LookupError struct {
	Table string
	Key   any
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("[%s] cannot find id: %v", e.Table, e.Key)
}

func (e *LookupError) Unwrap() error { return ErrLookupMiss }

// Registry maps a closed, ordered key domain onto dense ids.
// It is immutable after construction and safe for concurrent reads.
type Registry[K cmp.Ordered] struct {
	name   string
	keys   []K
	ids    map[K]int
	offset int
}

// MakeIDs assigns consecutive ids starting at offset to keys, in the given
// order, after dropping the first skip keys. Duplicate keys keep their first id.
func MakeIDs[K cmp.Ordered](name string, keys []K, offset, skip int) *Registry[K] {
	r := &Registry[K]{name: name, ids: make(map[K]int, len(keys)), offset: offset}
	if skip > len(keys) {
		skip = len(keys)
	}
	for _, k := range keys[skip:] {
		if _, dup := r.ids[k]; dup {
			continue
		}
		r.ids[k] = offset + len(r.keys)
		r.keys = append(r.keys, k)
	}
	return r
}

// MakeIDsFromMap is MakeIDs over the keys of m sorted ascending, which makes
// the id assignment independent of map iteration order.
func MakeIDsFromMap[K cmp.Ordered, V any](name string, m map[K]V, offset, skip int) *Registry[K] {
	return MakeIDs(name, SortedKeys(m), offset, skip)
}

// SortedKeys returns the keys of m in ascending order.
func SortedKeys[K cmp.Ordered, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Lookup returns the dense id of k, or a *LookupError.
func (r *Registry[K]) Lookup(k K) (int, error) {
	id, ok := r.ids[k]
	if !ok {
		return 0, &LookupError{Table: r.name, Key: k}
	}
	return id, nil
}

// MustLookup is Lookup for keys known to be in the domain. It panics on a miss.
func (r *Registry[K]) MustLookup(k K) int {
	id, err := r.Lookup(k)
	if err != nil {
		panic(err)
	}
	return id
}

// Len returns the number of registered keys.
func (r *Registry[K]) Len() int { return len(r.keys) }

// Offset returns the id of the first registered key.
func (r *Registry[K]) Offset() int { return r.offset }

// Name returns the table name used in lookup errors.
func (r *Registry[K]) Name() string { return r.name }
