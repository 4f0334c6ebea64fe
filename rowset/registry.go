package rowset

import (
	"fmt"

	"github.com/google/btree"
)

type claim struct {
	Identifier string
	Row        *Row
}

// Registry is the identifier namespace of the rendered rows, the equivalent
// of element ids in the page. An identifier belongs to at most one row.
type Registry struct {
	tree *btree.BTreeG[claim]
}

func NewRegistry() *Registry {
	return &Registry{
		tree: btree.NewG(32, func(a, b claim) bool {
			return a.Identifier < b.Identifier
		}),
	}
}

func (r *Registry) Claim(identifier string, row *Row) error {
	if existing, found := r.tree.Get(claim{Identifier: identifier}); found && existing.Row != row {
		return fmt.Errorf("%w: '%s' is owned by row %d", ErrCollision, identifier, existing.Row.Index)
	}
	r.tree.ReplaceOrInsert(claim{Identifier: identifier, Row: row})
	return nil
}

func (r *Registry) Release(identifier string) {
	r.tree.Delete(claim{Identifier: identifier})
}

func (r *Registry) Lookup(identifier string) (*Row, bool) {
	c, found := r.tree.Get(claim{Identifier: identifier})
	if !found {
		return nil, false
	}
	return c.Row, true
}

// Rename moves an identifier to a new name. The new name must be free.
func (r *Registry) Rename(from, to string) error {

	if from == to {
		return nil
	}

	c, found := r.tree.Get(claim{Identifier: from})
	if !found {
		return fmt.Errorf("%w: identifier '%s'", ErrNotFound, from)
	}

	if existing, taken := r.tree.Get(claim{Identifier: to}); taken && existing.Row != c.Row {
		return fmt.Errorf("%w: rename '%s' to '%s', owned by row %d", ErrCollision, from, to, existing.Row.Index)
	}

	r.tree.Delete(c)
	c.Identifier = to
	r.tree.ReplaceOrInsert(c)

	return nil
}

func (r *Registry) Len() int {
	return r.tree.Len()
}

// Traverse iterates identifiers in ascending order until f returns false.
func (r *Registry) Traverse(f func(identifier string, row *Row) bool) {
	r.tree.Ascend(func(c claim) bool {
		return f(c.Identifier, c.Row)
	})
}
