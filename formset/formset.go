// Package formset translates a row set to and from the form values a
// formset handler expects on submit.
package formset

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/fulldump/prooflines/rowset"
)

const (
	TotalForms   = "TOTAL_FORMS"
	InitialForms = "INITIAL_FORMS"
	MinNumForms  = "MIN_NUM_FORMS"
	MaxNumForms  = "MAX_NUM_FORMS"

	FieldOrder = "ORDER"

	DefaultMinNumForms = 0
	DefaultMaxNumForms = 1000

	deleteChecked = "on"
)

var ErrManagementForm = errors.New("management form data is missing or has been tampered with")

// Encode renders the rows in submit order, soft-deleted ones included.
func Encode(s *rowset.RowSet) url.Values {

	t := s.Template()
	values := url.Values{}

	initial := 0
	s.Traverse(func(row *rowset.Row) bool {
		if !row.IsNew {
			initial++
		}

		name := func(field string) string {
			return t.Render(t.FieldNamePattern(field), row.Index)
		}

		for _, field := range t.Fields {
			switch field {
			case rowset.FieldID:
				if row.IsNew {
					values.Set(name(field), "")
				} else {
					values.Set(name(field), row.ID)
				}
			case rowset.FieldDelete:
				if row.Deleted {
					values.Set(name(field), deleteChecked)
				}
			default:
				values.Set(name(field), row.Field(field).String())
			}
		}
		values.Set(name(FieldOrder), strconv.Itoa(row.Index))

		return true
	})

	values.Set(managementName(t, TotalForms), strconv.Itoa(s.Count()))
	values.Set(managementName(t, InitialForms), strconv.Itoa(initial))
	values.Set(managementName(t, MinNumForms), strconv.Itoa(DefaultMinNumForms))
	values.Set(managementName(t, MaxNumForms), strconv.Itoa(DefaultMaxNumForms))

	return values
}

type Submission struct {
	Total   int
	Initial int
	Rows    []*SubmittedRow
}

type SubmittedRow struct {
	Index   int               `json:"index"`
	ID      string            `json:"id"`
	Deleted bool              `json:"deleted"`
	Fields  map[string]string `json:"fields"`
}

// Decode reads TOTAL_FORMS rows back from submitted values. Placeholder rows
// of the blank template are never read.
func Decode(values url.Values, t *rowset.Template) (*Submission, error) {

	total, err := managementInt(values, t, TotalForms)
	if err != nil {
		return nil, err
	}
	initial, err := managementInt(values, t, InitialForms)
	if err != nil {
		return nil, err
	}

	minNum := DefaultMinNumForms
	if values.Has(managementName(t, MinNumForms)) {
		minNum, err = managementInt(values, t, MinNumForms)
		if err != nil {
			return nil, err
		}
	}

	maxNum := DefaultMaxNumForms
	if values.Has(managementName(t, MaxNumForms)) {
		maxNum, err = managementInt(values, t, MaxNumForms)
		if err != nil {
			return nil, err
		}
	}

	if total < 0 || initial < 0 || initial > total {
		return nil, fmt.Errorf("%w: total %d, initial %d", ErrManagementForm, total, initial)
	}
	if total > maxNum {
		return nil, fmt.Errorf("%w: %d forms exceed the maximum of %d", ErrManagementForm, total, maxNum)
	}
	if total < minNum {
		return nil, fmt.Errorf("%w: %d forms are below the minimum of %d", ErrManagementForm, total, minNum)
	}

	submission := &Submission{
		Total:   total,
		Initial: initial,
		Rows:    make([]*SubmittedRow, 0, total),
	}

	for i := 0; i < total; i++ {
		row := &SubmittedRow{
			Index:  i,
			Fields: map[string]string{},
		}
		for _, field := range t.Fields {
			value := values.Get(t.Render(t.FieldNamePattern(field), i))
			switch field {
			case rowset.FieldID:
				row.ID = value
			case rowset.FieldDelete:
				row.Deleted = isChecked(value)
			default:
				row.Fields[field] = value
			}
		}
		submission.Rows = append(submission.Rows, row)
	}

	return submission, nil
}

// Load builds a row set from a submission. Rows with an id are loaded as
// persisted; the rest stay new.
func Load(submission *Submission, t *rowset.Template) (*rowset.RowSet, error) {

	s, err := rowset.New(t)
	if err != nil {
		return nil, err
	}

	for _, submitted := range submission.Rows {
		if submitted.ID != "" {
			row, err := s.AppendPersisted(submitted.ID, submitted.Fields)
			if err != nil {
				return nil, fmt.Errorf("load row %d: %w", submitted.Index, err)
			}
			if submitted.Deleted {
				err = s.MarkDeleted(row.Index)
				if err != nil {
					return nil, fmt.Errorf("load row %d: %w", submitted.Index, err)
				}
			}
			continue
		}

		// new rows marked for deletion were never stored, drop them
		if submitted.Deleted {
			continue
		}

		row, err := s.InsertAt(s.Count())
		if err != nil {
			return nil, fmt.Errorf("load row %d: %w", submitted.Index, err)
		}
		for field, value := range submitted.Fields {
			_, err := s.SetField(row.Index, field, value)
			if err != nil {
				return nil, fmt.Errorf("load row %d: %w", submitted.Index, err)
			}
		}
	}

	return s, nil
}

func managementName(t *rowset.Template, field string) string {
	return t.Prefix + "-" + field
}

func managementInt(values url.Values, t *rowset.Template, field string) (int, error) {

	name := managementName(t, field)
	if !values.Has(name) {
		return 0, fmt.Errorf("%w: '%s' is missing", ErrManagementForm, name)
	}

	n, err := strconv.Atoi(values.Get(name))
	if err != nil {
		return 0, fmt.Errorf("%w: '%s': %s", ErrManagementForm, name, err.Error())
	}

	return n, nil
}

func isChecked(value string) bool {
	switch value {
	case "on", "true", "1", "checked":
		return true
	}
	return false
}
