package apisessionv1

import (
	"context"
	"net/url"

	"github.com/fulldump/prooflines/formset"
	"github.com/fulldump/prooflines/rowset"
)

type FormsetResponse struct {
	Total   int        `json:"total"`
	Values  url.Values `json:"values"`
	Encoded string     `json:"encoded"`
}

// encodeFormset renders the values the proof page submits for the session.
func encodeFormset(ctx context.Context) (*FormsetResponse, error) {

	session, err := getSessionFromUrl(ctx)
	if err != nil {
		return nil, err
	}

	result := &FormsetResponse{}
	session.Do(func(rows *rowset.RowSet) error {
		result.Total = rows.Count()
		result.Values = formset.Encode(rows)
		return nil
	})
	result.Encoded = result.Values.Encode()

	return result, nil
}
