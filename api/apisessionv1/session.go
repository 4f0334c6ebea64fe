package apisessionv1

import (
	"github.com/fulldump/prooflines/rowset"
	"github.com/fulldump/prooflines/service"
)

type SessionResponse struct {
	ID    string         `json:"id"`
	Count int            `json:"count"`
	Rows  []*RowResponse `json:"rows,omitempty"`
}

type RowResponse struct {
	ID      string         `json:"id"`
	Index   int            `json:"index"`
	Deleted bool           `json:"deleted"`
	IsNew   bool           `json:"is_new"`
	Fields  map[string]any `json:"fields"`
}

// newRowResponse must be called while holding the session.
func newRowResponse(row *rowset.Row) *RowResponse {
	return &RowResponse{
		ID:      row.ID,
		Index:   row.Index,
		Deleted: row.Deleted,
		IsNew:   row.IsNew,
		Fields:  row.Fields(),
	}
}

func newSessionResponse(session *service.Session, withRows bool) *SessionResponse {
	result := &SessionResponse{
		ID: session.ID,
	}
	session.Do(func(rows *rowset.RowSet) error {
		result.Count = rows.Count()
		if !withRows {
			return nil
		}
		result.Rows = []*RowResponse{}
		rows.Traverse(func(row *rowset.Row) bool {
			result.Rows = append(result.Rows, newRowResponse(row))
			return true
		})
		return nil
	})
	return result
}

// rowAction runs f on the session from the url and returns the resulting row.
func rowAction(session *service.Session, f func(rows *rowset.RowSet) (*rowset.Row, error)) (*RowResponse, error) {
	var result *RowResponse
	err := session.Do(func(rows *rowset.RowSet) error {
		row, err := f(rows)
		if err != nil {
			return err
		}
		result = newRowResponse(row)
		return nil
	})
	return result, err
}
