package apisessionv1

import (
	"context"
)

func listSessions(ctx context.Context) ([]*SessionResponse, error) {

	result := []*SessionResponse{}
	for _, session := range GetServicer(ctx).ListSessions() {
		result = append(result, newSessionResponse(session, false))
	}

	return result, nil
}
