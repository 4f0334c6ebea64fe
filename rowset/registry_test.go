package rowset

import (
	"errors"
	"testing"

	"github.com/fulldump/biff"
)

func TestRegistry(t *testing.T) {

	biff.Alternative("Registry", func(a *biff.A) {

		r := NewRegistry()
		first := &Row{Index: 0}
		second := &Row{Index: 1}

		biff.AssertNil(r.Claim("proofline_set-0", first))
		biff.AssertNil(r.Claim("proofline_set-1", second))
		biff.AssertEqual(r.Len(), 2)

		a.Alternative("Lookup", func(a *biff.A) {
			row, found := r.Lookup("proofline_set-1")
			biff.AssertTrue(found)
			biff.AssertEqual(row, second)

			_, found = r.Lookup("proofline_set-2")
			biff.AssertFalse(found)
		})

		a.Alternative("Claim collision", func(a *biff.A) {
			err := r.Claim("proofline_set-0", second)
			biff.AssertTrue(errors.Is(err, ErrCollision))

			// same owner is fine
			biff.AssertNil(r.Claim("proofline_set-0", first))
		})

		a.Alternative("Rename onto occupied identifier", func(a *biff.A) {
			err := r.Rename("proofline_set-0", "proofline_set-1")
			biff.AssertTrue(errors.Is(err, ErrCollision))

			row, _ := r.Lookup("proofline_set-1")
			biff.AssertEqual(row, second)
		})

		a.Alternative("Rename missing identifier", func(a *biff.A) {
			err := r.Rename("proofline_set-7", "proofline_set-8")
			biff.AssertTrue(errors.Is(err, ErrNotFound))
		})

		a.Alternative("Rename in order", func(a *biff.A) {
			biff.AssertNil(r.Rename("proofline_set-1", "proofline_set-2"))
			biff.AssertNil(r.Rename("proofline_set-0", "proofline_set-1"))

			identifiers := []string{}
			r.Traverse(func(identifier string, row *Row) bool {
				identifiers = append(identifiers, identifier)
				return true
			})
			biff.AssertEqual(identifiers, []string{"proofline_set-1", "proofline_set-2"})
		})

		a.Alternative("Release", func(a *biff.A) {
			r.Release("proofline_set-0")
			biff.AssertEqual(r.Len(), 1)
			biff.AssertNil(r.Claim("proofline_set-0", second))
		})
	})
}
