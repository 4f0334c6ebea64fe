package rowset

import (
	"errors"
	"math/rand"
	"testing"

	. "github.com/fulldump/biff"
)

func newTestRowSet(t *testing.T) *RowSet {
	t.Helper()

	s, err := New(nil)
	if err != nil {
		t.Fatalf("new row set: %v", err)
	}

	return s
}

// assertContiguous checks indices are [0, Count()) and every identifier of
// every row resolves to that row.
func assertContiguous(t *testing.T, s *RowSet) {
	t.Helper()

	if len(s.rows) != s.Count() {
		t.Fatalf("count %d does not match %d rows", s.Count(), len(s.rows))
	}

	for i, row := range s.rows {
		if row.Index != i {
			t.Fatalf("row at position %d has index %d", i, row.Index)
		}
		for _, identifier := range s.Identifiers(row) {
			owner, err := s.Resolve(identifier)
			if err != nil {
				t.Fatalf("resolve '%s': %v", identifier, err)
			}
			if owner != row {
				t.Fatalf("identifier '%s' owned by row %d, expected %d", identifier, owner.Index, i)
			}
		}
	}

	expectedIdentifiers := s.Count() * len(s.template.Patterns())
	if s.registry.Len() != expectedIdentifiers {
		t.Fatalf("registry holds %d identifiers, expected %d", s.registry.Len(), expectedIdentifiers)
	}
}

func ids(s *RowSet) []string {
	result := []string{}
	s.Traverse(func(row *Row) bool {
		result = append(result, row.ID)
		return true
	})
	return result
}

func TestInsertAt(t *testing.T) {

	s := newTestRowSet(t)
	AssertEqual(s.Count(), 0)

	first, err := s.InsertAt(0)
	AssertNil(err)
	AssertEqual(s.Count(), 1)
	AssertEqual(first.Index, 0)
	AssertTrue(first.IsNew)
	AssertFalse(first.Deleted)

	second, err := s.InsertAt(0)
	AssertNil(err)
	AssertEqual(s.Count(), 2)
	AssertEqual(second.Index, 0)
	AssertEqual(first.Index, 1)
	AssertTrue(second.IsNew)
	assertContiguous(t, s)

	err = s.RemoveNew(0)
	AssertNil(err)
	AssertEqual(s.Count(), 1)
	AssertEqual(first.Index, 0)
	AssertEqual(ids(s), []string{first.ID})
	assertContiguous(t, s)
}

func TestInsertAt_OutOfRange(t *testing.T) {

	s := newTestRowSet(t)

	_, err := s.InsertAt(1)
	AssertTrue(errors.Is(err, ErrInvalidState))

	_, err = s.InsertAt(-1)
	AssertTrue(errors.Is(err, ErrInvalidState))

	AssertEqual(s.Count(), 0)
}

func TestInsertAt_Middle(t *testing.T) {

	s := newTestRowSet(t)
	for i := 0; i < 3; i++ {
		s.InsertAt(i)
	}
	before := ids(s)

	row, err := s.InsertAt(1)
	AssertNil(err)
	AssertEqual(row.Index, 1)
	AssertEqual(ids(s), []string{before[0], row.ID, before[1], before[2]})
	assertContiguous(t, s)

	moved, err := s.Resolve("id_proofline_set-3-formula")
	AssertNil(err)
	AssertEqual(moved.ID, before[2])
}

func TestInsertThenRemove_RestoresSequence(t *testing.T) {

	s := newTestRowSet(t)
	for i := 0; i < 5; i++ {
		s.InsertAt(i)
	}

	for i := 0; i <= 5; i++ {
		before := ids(s)

		_, err := s.InsertAt(i)
		AssertNil(err)
		err = s.RemoveNew(i)
		AssertNil(err)

		AssertEqual(ids(s), before)
		assertContiguous(t, s)
	}
}

func TestRandomSequence_KeepsIndicesContiguous(t *testing.T) {

	s := newTestRowSet(t)
	r := rand.New(rand.NewSource(7))

	for n := 0; n < 500; n++ {
		if s.Count() == 0 || r.Intn(3) > 0 {
			_, err := s.InsertAt(r.Intn(s.Count() + 1))
			AssertNil(err)
		} else {
			err := s.RemoveNew(r.Intn(s.Count()))
			AssertNil(err)
		}
		assertContiguous(t, s)
	}
}

func TestMarkDeleted(t *testing.T) {

	s := newTestRowSet(t)
	s.InsertAt(0)
	s.InsertAt(1)
	s.InsertAt(2)
	before := ids(s)

	AssertNil(s.MarkPersisted(1))

	err := s.MarkDeleted(1)
	AssertNil(err)
	AssertEqual(s.Count(), 3)
	AssertEqual(ids(s), before)
	assertContiguous(t, s)

	row, _ := s.Get(1)
	AssertTrue(row.Deleted)

	visible := []string{}
	s.TraverseVisible(func(row *Row) bool {
		visible = append(visible, row.ID)
		return true
	})
	AssertEqual(visible, []string{before[0], before[2]})

	// idempotent
	AssertNil(s.MarkDeleted(1))
	AssertEqual(s.Count(), 3)
}

func TestMarkDeleted_NewRow(t *testing.T) {

	s := newTestRowSet(t)
	s.InsertAt(0)

	err := s.MarkDeleted(0)
	AssertTrue(errors.Is(err, ErrInvalidState))

	row, _ := s.Get(0)
	AssertFalse(row.Deleted)

	err = s.MarkDeleted(1)
	AssertTrue(errors.Is(err, ErrInvalidState))
}

func TestRemoveNew_PersistedRow(t *testing.T) {

	s := newTestRowSet(t)
	s.InsertAt(0)
	AssertNil(s.MarkPersisted(0))
	AssertNil(s.MarkDeleted(0))

	AssertEqual(s.Count(), 1)
	row, _ := s.Get(0)
	AssertTrue(row.Deleted)

	err := s.RemoveNew(0)
	AssertTrue(errors.Is(err, ErrInvalidState))
	AssertEqual(s.Count(), 1)
}

func TestRemoveNew_OutOfRange(t *testing.T) {

	s := newTestRowSet(t)

	err := s.RemoveNew(0)
	AssertTrue(errors.Is(err, ErrInvalidState))
}

func TestMarkPersisted_Twice(t *testing.T) {

	s := newTestRowSet(t)
	s.InsertAt(0)

	AssertNil(s.MarkPersisted(0))
	err := s.MarkPersisted(0)
	AssertTrue(errors.Is(err, ErrInvalidState))
}

func TestEnsureRow(t *testing.T) {

	s := newTestRowSet(t)

	row, err := s.EnsureRow()
	AssertNil(err)
	AssertNotNil(row)
	AssertEqual(s.Count(), 1)

	row, err = s.EnsureRow()
	AssertNil(err)
	AssertNil(row)
	AssertEqual(s.Count(), 1)
}

func TestAppendPersisted(t *testing.T) {

	s := newTestRowSet(t)

	row, err := s.AppendPersisted("17", map[string]string{
		"line_no": "1",
		"formula": `A \and B`,
		"rule":    "Premise",
	})
	AssertNil(err)
	AssertFalse(row.IsNew)
	AssertEqual(row.Field("formula").String(), "A ∧ B")
	AssertEqual(row.Fields(), map[string]any{
		"line_no": "1",
		"formula": "A ∧ B",
		"rule":    "Premise",
	})

	_, err = s.AppendPersisted("17", nil)
	AssertTrue(errors.Is(err, ErrInvalidState))

	_, err = s.AppendPersisted("18", map[string]string{"unknown": "x"})
	AssertTrue(errors.Is(err, ErrInvalidState))

	AssertEqual(s.Count(), 1)
	assertContiguous(t, s)
}

func TestIdentifiers(t *testing.T) {

	s := newTestRowSet(t)
	s.InsertAt(0)
	row, _ := s.InsertAt(1)

	AssertEqual(s.Identifiers(row), []string{
		"proofline_set-1",
		"id_proofline_set-1-id", "proofline_set-1-id",
		"id_proofline_set-1-DELETE", "proofline_set-1-DELETE",
		"id_proofline_set-1-line_no", "proofline_set-1-line_no",
		"id_proofline_set-1-formula", "proofline_set-1-formula",
		"id_proofline_set-1-rule", "proofline_set-1-rule",
		"id-form-btn-insert-row-1",
		"id-form-btn-delete-row-1",
	})
}

func TestButtons(t *testing.T) {

	s := newTestRowSet(t)
	first, _ := s.InsertAt(0)

	second, err := s.InsertAfter("id-form-btn-insert-row-0")
	AssertNil(err)
	AssertEqual(second.Index, 1)

	third, err := s.InsertAfter("id-form-btn-insert-row-0")
	AssertNil(err)
	AssertEqual(third.Index, 1)
	AssertEqual(second.Index, 2)
	AssertEqual(ids(s), []string{first.ID, third.ID, second.ID})

	err = s.RemoveNewByIdentifier("id-form-btn-delete-row-1")
	AssertNil(err)
	AssertEqual(ids(s), []string{first.ID, second.ID})

	AssertNil(s.MarkPersisted(0))
	err = s.MarkDeletedByIdentifier("id-form-btn-delete-row-0")
	AssertNil(err)
	AssertTrue(first.Deleted)

	_, err = s.InsertAfter("id-form-btn-insert-row-9")
	AssertTrue(errors.Is(err, ErrNotFound))

	assertContiguous(t, s)
}

func TestSetField(t *testing.T) {

	s := newTestRowSet(t)
	s.InsertAt(0)

	row, err := s.SetField(0, "formula", `\not A \implies B`)
	AssertNil(err)
	AssertEqual(row.Field("formula").String(), "¬ A → B")

	row, err = s.SetField(0, "rule", `\and`)
	AssertNil(err)
	AssertEqual(row.Field("rule").String(), `\and`)

	_, err = s.SetField(0, "DELETE", "on")
	AssertTrue(errors.Is(err, ErrInvalidState))

	_, err = s.SetField(0, "nope", "x")
	AssertTrue(errors.Is(err, ErrInvalidState))

	_, err = s.SetField(3, "rule", "x")
	AssertTrue(errors.Is(err, ErrInvalidState))
}

func TestGetByID(t *testing.T) {

	s := newTestRowSet(t)
	row, _ := s.InsertAt(0)

	found, err := s.GetByID(row.ID)
	AssertNil(err)
	AssertEqual(found, row)

	_, err = s.GetByID("missing")
	AssertTrue(errors.Is(err, ErrNotFound))
}

func TestNew_InvalidTemplate(t *testing.T) {

	template := DefaultTemplate()
	template.Extra = append(template.Extra, "button-without-placeholder")

	_, err := New(template)
	AssertNotNil(err)
}
