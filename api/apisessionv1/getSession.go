package apisessionv1

import (
	"context"
)

func getSession(ctx context.Context) (*SessionResponse, error) {

	session, err := getSessionFromUrl(ctx)
	if err != nil {
		return nil, err
	}

	return newSessionResponse(session, true), nil
}
