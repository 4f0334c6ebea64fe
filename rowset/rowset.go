package rowset

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"

	"github.com/google/uuid"

	"github.com/fulldump/prooflines/tokens"
)

// RowSet keeps an ordered sequence of rows whose indices are always the
// contiguous range [0, Count()). It is not safe for concurrent use.
type RowSet struct {
	template   *Template
	rows       []*Row
	registry   *Registry
	totalCount int
}

func New(template *Template) (*RowSet, error) {

	if template == nil {
		template = DefaultTemplate()
	}

	err := template.Validate()
	if err != nil {
		return nil, fmt.Errorf("validate template: %w", err)
	}

	return &RowSet{
		template: template,
		rows:     []*Row{},
		registry: NewRegistry(),
	}, nil
}

func (s *RowSet) Template() *Template {
	return s.template
}

// Count is the number of rows materialized, soft-deleted ones included.
func (s *RowSet) Count() int {
	return s.totalCount
}

func (s *RowSet) InsertAt(index int) (*Row, error) {

	if index < 0 || index > s.totalCount {
		return nil, fmt.Errorf("%w: insert at %d, count is %d", ErrInvalidState, index, s.totalCount)
	}

	payload, err := s.template.defaultPayload()
	if err != nil {
		return nil, err
	}

	row := &Row{
		ID:      uuid.NewString(),
		Index:   index,
		Payload: payload,
		IsNew:   true,
	}

	return row, s.place(row)
}

// AppendPersisted loads a row the host already stores at the end of the set.
func (s *RowSet) AppendPersisted(id string, fields map[string]string) (*Row, error) {

	if id == "" {
		id = uuid.NewString()
	}

	if _, err := s.GetByID(id); err == nil {
		return nil, fmt.Errorf("%w: row id '%s' already loaded", ErrInvalidState, id)
	}

	payload, err := s.template.defaultPayload()
	if err != nil {
		return nil, err
	}

	row := &Row{
		ID:      id,
		Index:   s.totalCount,
		Payload: payload,
	}

	for _, field := range slices.Sorted(maps.Keys(fields)) {
		err := s.writeField(row, field, fields[field])
		if err != nil {
			return nil, err
		}
	}

	return row, s.place(row)
}

// EnsureRow inserts a blank row when the set is empty. It returns nil when
// the set already has rows.
func (s *RowSet) EnsureRow() (*Row, error) {
	if s.totalCount > 0 {
		return nil, nil
	}
	return s.InsertAt(0)
}

// place shifts rows at row.Index and above one position up and puts row in
// the hole. Shifts run from the last row down so every target is free.
func (s *RowSet) place(row *Row) error {

	for i := s.totalCount - 1; i >= row.Index; i-- {
		err := s.renumber(s.rows[i], i+1)
		if err != nil {
			return err
		}
	}

	for _, pattern := range s.template.Patterns() {
		err := s.registry.Claim(s.template.Render(pattern, row.Index), row)
		if err != nil {
			return err
		}
	}

	s.rows = slices.Insert(s.rows, row.Index, row)
	s.totalCount++

	return nil
}

func (s *RowSet) MarkDeleted(index int) error {

	row, err := s.Get(index)
	if err != nil {
		return err
	}

	if row.IsNew {
		return fmt.Errorf("%w: row %d was never persisted, remove it instead", ErrInvalidState, index)
	}

	row.Deleted = true

	return nil
}

func (s *RowSet) RemoveNew(index int) error {

	row, err := s.Get(index)
	if err != nil {
		return err
	}

	if !row.IsNew {
		return fmt.Errorf("%w: row %d is persisted, mark it deleted instead", ErrInvalidState, index)
	}

	for _, identifier := range s.Identifiers(row) {
		s.registry.Release(identifier)
	}

	s.rows = slices.Delete(s.rows, index, index+1)

	// rows are shifted from the first one up so every target is free
	for i := index; i < len(s.rows); i++ {
		err := s.renumber(s.rows[i], i)
		if err != nil {
			return err
		}
	}

	s.totalCount--

	return nil
}

// MarkPersisted records that the host stored the row.
func (s *RowSet) MarkPersisted(index int) error {

	row, err := s.Get(index)
	if err != nil {
		return err
	}

	if !row.IsNew {
		return fmt.Errorf("%w: row %d is already persisted", ErrInvalidState, index)
	}

	row.IsNew = false

	return nil
}

// renumber is the only place where a row index changes.
func (s *RowSet) renumber(row *Row, to int) error {

	from := row.Index
	for _, pattern := range s.template.Patterns() {
		err := s.registry.Rename(s.template.Render(pattern, from), s.template.Render(pattern, to))
		if err != nil {
			return fmt.Errorf("renumber row %d to %d: %w", from, to, err)
		}
	}
	row.Index = to

	return nil
}

func (s *RowSet) Get(index int) (*Row, error) {
	if index < 0 || index >= s.totalCount {
		return nil, fmt.Errorf("%w: index %d out of range, count is %d", ErrInvalidState, index, s.totalCount)
	}
	return s.rows[index], nil
}

func (s *RowSet) GetByID(id string) (*Row, error) {
	for _, row := range s.rows {
		if row.ID == id {
			return row, nil
		}
	}
	return nil, fmt.Errorf("%w: row id '%s'", ErrNotFound, id)
}

// Resolve returns the row owning a rendered identifier such as a field id
// or a button id.
func (s *RowSet) Resolve(identifier string) (*Row, error) {
	row, found := s.registry.Lookup(identifier)
	if !found {
		return nil, fmt.Errorf("%w: identifier '%s'", ErrNotFound, identifier)
	}
	return row, nil
}

// InsertAfter inserts a blank row right below the row owning identifier.
func (s *RowSet) InsertAfter(identifier string) (*Row, error) {
	row, err := s.Resolve(identifier)
	if err != nil {
		return nil, err
	}
	return s.InsertAt(row.Index + 1)
}

func (s *RowSet) MarkDeletedByIdentifier(identifier string) error {
	row, err := s.Resolve(identifier)
	if err != nil {
		return err
	}
	return s.MarkDeleted(row.Index)
}

func (s *RowSet) RemoveNewByIdentifier(identifier string) error {
	row, err := s.Resolve(identifier)
	if err != nil {
		return err
	}
	return s.RemoveNew(row.Index)
}

// SetField writes a field value. Text fields go through token substitution.
func (s *RowSet) SetField(index int, field, value string) (*Row, error) {

	row, err := s.Get(index)
	if err != nil {
		return nil, err
	}

	if row.Deleted {
		return nil, fmt.Errorf("%w: row %d is deleted", ErrInvalidState, index)
	}

	return row, s.writeField(row, field, value)
}

func (s *RowSet) writeField(row *Row, field, value string) error {

	if !s.template.HasField(field) {
		return fmt.Errorf("%w: unknown field '%s'", ErrInvalidState, field)
	}
	if isManaged(field) {
		return fmt.Errorf("%w: field '%s' is managed", ErrInvalidState, field)
	}

	if s.template.IsTextField(field) {
		value = tokens.Substitute(value)
	}

	return row.setField(field, value)
}

// Identifiers returns every identifier the row currently owns.
func (s *RowSet) Identifiers(row *Row) []string {
	identifiers := []string{}
	for _, pattern := range s.template.Patterns() {
		identifiers = append(identifiers, s.template.Render(pattern, row.Index))
	}
	return identifiers
}

func (s *RowSet) Traverse(f func(row *Row) bool) {
	for _, row := range s.rows {
		if !f(row) {
			break
		}
	}
}

// TraverseVisible skips soft-deleted rows.
func (s *RowSet) TraverseVisible(f func(row *Row) bool) {
	s.Traverse(func(row *Row) bool {
		if row.Deleted {
			return true
		}
		return f(row)
	})
}

func (s *RowSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{
		"count": s.totalCount,
		"rows":  s.rows,
	})
}
