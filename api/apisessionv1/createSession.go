package apisessionv1

import (
	"context"
	"net/http"
)

func createSession(ctx context.Context, w http.ResponseWriter) (*SessionResponse, error) {

	session, err := GetServicer(ctx).CreateSession()
	if err != nil {
		return nil, err // todo: wrap error?
	}

	w.WriteHeader(http.StatusCreated)
	return newSessionResponse(session, true), nil
}
