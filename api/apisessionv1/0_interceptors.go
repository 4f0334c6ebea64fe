package apisessionv1

import (
	"context"

	"github.com/fulldump/box"

	"github.com/fulldump/prooflines/service"
)

const ContextServicerKey = "5a3c8f0e-9b61-4c2e-8d0a-0c4f6e1b7a21"

func SetServicer(ctx context.Context, s service.Servicer) context.Context {
	return context.WithValue(ctx, ContextServicerKey, s)
}

func GetServicer(ctx context.Context) service.Servicer {
	return ctx.Value(ContextServicerKey).(service.Servicer) // TODO: can raise panic :D
}

func getSessionFromUrl(ctx context.Context) (*service.Session, error) {
	return GetServicer(ctx).GetSession(box.GetUrlParameter(ctx, "sessionId"))
}
