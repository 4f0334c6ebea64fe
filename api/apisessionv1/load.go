package apisessionv1

import (
	"context"
	"fmt"
	"net/http"

	"github.com/fulldump/prooflines/formset"
	"github.com/fulldump/prooflines/rowset"
)

// loadFormset replaces the session rows with a submitted formset
// (application/x-www-form-urlencoded), typically the server rendered page.
func loadFormset(ctx context.Context, w http.ResponseWriter, r *http.Request) (*SessionResponse, error) {

	session, err := getSessionFromUrl(ctx)
	if err != nil {
		return nil, err
	}

	err = r.ParseForm()
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return nil, fmt.Errorf("parse form: %w", err)
	}

	err = session.Replace(func(template *rowset.Template) (*rowset.RowSet, error) {
		submission, err := formset.Decode(r.PostForm, template)
		if err != nil {
			return nil, err
		}
		return formset.Load(submission, template)
	})
	if err != nil {
		return nil, err
	}

	return newSessionResponse(session, true), nil
}
