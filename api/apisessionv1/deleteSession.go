package apisessionv1

import (
	"context"
	"net/http"

	"github.com/fulldump/box"
)

func deleteSession(ctx context.Context, w http.ResponseWriter) error {

	s := GetServicer(ctx)

	sessionId := box.GetUrlParameter(ctx, "sessionId")

	return s.DeleteSession(sessionId)
}
