// Package names tracks the method names of a generated builder. Setters are
// named after optional parameters and the terminal is named by the author, so
// two sources may end up with one method name. A [Table] finds such collisions
// and renders them for diagnostics.
package names

import (
	"go/token"
	"iter"
)

// Kind is the kind of source which a builder method is named after.
type Kind int

const (
	Setter   Kind = iota // an optional parameter
	Terminal             // the terminal method
)

// Entry is a source of a builder method name.
type Entry struct {
	Name string // the parameter name or the terminal name
	Kind Kind
	Pos  token.Pos
}

func (e Entry) String() string { return e.Name }

// Table maps builder method names to their sources.
type Table struct {
	methods *multiMap[string, Entry]
}

// NewTable creates an empty [Table].
func NewTable() *Table {
	return &Table{methods: newMultiMap[string, Entry]()}
}

// Add records that the method is named after the entry.
func (t *Table) Add(method string, e Entry) {
	t.methods.Add(method, e)
}

// Owners returns the entries which the method is named after, in the order of
// [Table.Add] calls.
func (t *Table) Owners(method string) []Entry {
	return t.methods.Get(method)
}

// IsValid reports whether every method has exactly one owner.
func (t *Table) IsValid() bool {
	for range t.Collisions() {
		return false
	}
	return true
}

// Collisions iterates method names owned by more than one entry.
func (t *Table) Collisions() iter.Seq2[string, []Entry] {
	return func(yield func(string, []Entry) bool) {
		for method := range t.methods.Keys() {
			owners := t.Owners(method)
			if len(owners) < 2 {
				continue
			}
			if !yield(method, owners) {
				return
			}
		}
	}
}

// String renders the table by [visualize].
func (t *Table) String() string {
	return visualize(t)
}
