package api

import (
	"context"
	"net/http"

	"github.com/fulldump/box"
	"github.com/fulldump/box/boxopenapi"

	"github.com/fulldump/prooflines/api/apisessionv1"
	"github.com/fulldump/prooflines/service"
	"github.com/fulldump/prooflines/statics"
)

func Build(s service.Servicer, staticsDir, version string, apiKey, apiSecret string) *box.B {

	b := box.NewBox()

	v1 := b.Resource("/v1")
	v1.WithInterceptors(
		box.SetResponseHeader("Content-Type", "application/json"),
		Authenticate(apiKey, apiSecret),
	)

	apisessionv1.BuildV1Session(v1, s).
		WithInterceptors(
			injectServicer(s),
		)

	v1.Resource("/substitute").
		WithActions(
			box.Post(substitute),
		)

	b.Resource("/release").
		WithActions(box.Get(func() string {
			return version
		}))

	spec := boxopenapi.Spec(b)
	spec.Info.Title = "Prooflines"
	spec.Info.Description = "Proof line formset editor."
	b.Resource("/openapi.json").
		WithActions(box.Get(func(r *http.Request) any {
			spec.Servers = []boxopenapi.Server{
				{
					Url: "https://" + r.Host,
				},
				{
					Url: "http://" + r.Host,
				},
			}
			return spec
		}))

	// Mount statics
	b.Resource("/*").
		WithActions(
			box.Get(statics.ServeStatics(staticsDir)).WithName("serveStatics"),
		)

	return b
}

func injectServicer(s service.Servicer) box.I {
	return func(next box.H) box.H {
		return func(ctx context.Context) {
			next(apisessionv1.SetServicer(ctx, s))
		}
	}
}
