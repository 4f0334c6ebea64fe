package apisessionv1

import (
	"context"
	"net/http"

	"github.com/fulldump/prooflines/rowset"
)

type indexRequest struct {
	Index int `json:"index"`
}

type identifierRequest struct {
	Identifier string `json:"identifier"`
}

func insertAt(ctx context.Context, w http.ResponseWriter, input *indexRequest) (*RowResponse, error) {

	session, err := getSessionFromUrl(ctx)
	if err != nil {
		return nil, err
	}

	row, err := rowAction(session, func(rows *rowset.RowSet) (*rowset.Row, error) {
		return rows.InsertAt(input.Index)
	})
	if err != nil {
		return nil, err
	}

	w.WriteHeader(http.StatusCreated)
	return row, nil
}

func insertAfter(ctx context.Context, w http.ResponseWriter, input *identifierRequest) (*RowResponse, error) {

	session, err := getSessionFromUrl(ctx)
	if err != nil {
		return nil, err
	}

	row, err := rowAction(session, func(rows *rowset.RowSet) (*rowset.Row, error) {
		return rows.InsertAfter(input.Identifier)
	})
	if err != nil {
		return nil, err
	}

	w.WriteHeader(http.StatusCreated)
	return row, nil
}

func markDeleted(ctx context.Context, input *indexRequest) (*RowResponse, error) {

	session, err := getSessionFromUrl(ctx)
	if err != nil {
		return nil, err
	}

	return rowAction(session, func(rows *rowset.RowSet) (*rowset.Row, error) {
		err := rows.MarkDeleted(input.Index)
		if err != nil {
			return nil, err
		}
		return rows.Get(input.Index)
	})
}

func removeNew(ctx context.Context, input *indexRequest) (*SessionResponse, error) {

	session, err := getSessionFromUrl(ctx)
	if err != nil {
		return nil, err
	}

	err = session.Do(func(rows *rowset.RowSet) error {
		return rows.RemoveNew(input.Index)
	})
	if err != nil {
		return nil, err
	}

	return newSessionResponse(session, true), nil
}

func markPersisted(ctx context.Context, input *indexRequest) (*RowResponse, error) {

	session, err := getSessionFromUrl(ctx)
	if err != nil {
		return nil, err
	}

	return rowAction(session, func(rows *rowset.RowSet) (*rowset.Row, error) {
		err := rows.MarkPersisted(input.Index)
		if err != nil {
			return nil, err
		}
		return rows.Get(input.Index)
	})
}

type setFieldRequest struct {
	Index int    `json:"index"`
	Field string `json:"field"`
	Value string `json:"value"`
}

func setField(ctx context.Context, input *setFieldRequest) (*RowResponse, error) {

	session, err := getSessionFromUrl(ctx)
	if err != nil {
		return nil, err
	}

	return rowAction(session, func(rows *rowset.RowSet) (*rowset.Row, error) {
		return rows.SetField(input.Index, input.Field, input.Value)
	})
}
