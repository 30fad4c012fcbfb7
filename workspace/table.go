// Package workspace holds the session's named matrices.
//
// Names are case-sensitive and the last definition wins. The table owns its
// matrices by value: Define stores a clone and Lookup hands out a clone, so no
// caller can alias a stored matrix. All methods are safe for concurrent use.
package workspace

import (
	"errors"
	"sort"
	"sync"

	"github.com/katalvlaran/matcalc/matrix"
)

var (
	// ErrEmptyName indicates a definition without a name.
	ErrEmptyName = errors.New("workspace: empty name")

	// ErrNotFound indicates a lookup of an undefined name.
	ErrNotFound = errors.New("workspace: matrix not found")

	// ErrNilMatrix indicates an attempt to store a nil matrix.
	ErrNilMatrix = errors.New("workspace: nil matrix")
)

// Entry is a name with the shape of the matrix it refers to.
type Entry struct {
	Name string
	Rows int
	Cols int
}

// Table maps names to matrices of one element kind.
type Table[T matrix.Scalar] struct {
	mu   sync.RWMutex
	mats map[string]*matrix.Dense[T]
}

// New returns an empty table.
func New[T matrix.Scalar]() *Table[T] {
	return &Table[T]{mats: make(map[string]*matrix.Dense[T])}
}

// Define stores a copy of m under name, replacing any previous definition.
func (t *Table[T]) Define(name string, m *matrix.Dense[T]) error {
	if name == "" {
		return ErrEmptyName
	}
	if m == nil {
		return ErrNilMatrix
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.mats[name] = m.Clone()

	return nil
}

// Lookup returns a copy of the matrix stored under name.
func (t *Table[T]) Lookup(name string) (*matrix.Dense[T], error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	m, ok := t.mats[name]
	if !ok {
		return nil, ErrNotFound
	}

	return m.Clone(), nil
}

// Has reports whether name is defined.
func (t *Table[T]) Has(name string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.mats[name]

	return ok
}

// Delete removes name. It reports ErrNotFound when name was not defined.
func (t *Table[T]) Delete(name string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.mats[name]; !ok {
		return ErrNotFound
	}
	delete(t.mats, name)

	return nil
}

// Len returns the number of defined names.
func (t *Table[T]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.mats)
}

// Entries lists every definition sorted by name.
func (t *Table[T]) Entries() []Entry {
	t.mu.RLock()
	out := make([]Entry, 0, len(t.mats))
	for name, m := range t.mats {
		out = append(out, Entry{Name: name, Rows: m.Rows(), Cols: m.Cols()})
	}
	t.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out
}
