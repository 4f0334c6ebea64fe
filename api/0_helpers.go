package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/fulldump/box"
	json2 "github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"

	"github.com/fulldump/prooflines/formset"
	"github.com/fulldump/prooflines/rowset"
	"github.com/fulldump/prooflines/service"
)

var ErrUnauthorized = errors.New("unauthorized")

type PrettyError struct {
	Message     string `json:"message"`
	Description string `json:"description"`
}

func (p PrettyError) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]interface{}{
		"error": struct {
			Message     string `json:"message"`
			Description string `json:"description"`
		}{
			p.Message,
			p.Description,
		},
	})
}

func (p PrettyError) MarshalTo(w io.Writer) error {
	return json.NewEncoder(w).Encode(p)
}

// Authenticate checks X-Api-Key and X-Api-Secret. Empty credentials disable
// authentication.
func Authenticate(apiKey, apiSecret string) box.I {
	return func(next box.H) box.H {
		return func(ctx context.Context) {
			if apiKey == "" && apiSecret == "" {
				next(ctx)
				return
			}

			r := box.GetRequest(ctx)
			if r.Header.Get("X-Api-Key") != apiKey || r.Header.Get("X-Api-Secret") != apiSecret {
				box.SetError(ctx, ErrUnauthorized)
				return
			}

			next(ctx)
		}
	}
}

func PrettyErrorInterceptor(next box.H) box.H {
	return func(ctx context.Context) {

		next(ctx)

		err := box.GetError(ctx)
		if err == nil {
			return
		}
		w := box.GetResponse(ctx)

		status, description := describeError(ctx, err)

		w.WriteHeader(status)
		PrettyError{
			Message:     err.Error(),
			Description: description,
		}.MarshalTo(w)
	}
}

func describeError(ctx context.Context, err error) (int, string) {

	if err == ErrUnauthorized {
		return http.StatusUnauthorized, "user is not authenticated"
	}

	if err == box.ErrResourceNotFound {
		return http.StatusNotFound, fmt.Sprintf("resource '%s' not found", box.GetRequest(ctx).URL.String())
	}

	if err == box.ErrMethodNotAllowed {
		return http.StatusMethodNotAllowed, fmt.Sprintf("method '%s' not allowed", box.GetRequest(ctx).Method)
	}

	if errors.Is(err, service.ErrorSessionNotFound) {
		return http.StatusNotFound, "session does not exist"
	}

	if errors.Is(err, rowset.ErrNotFound) {
		return http.StatusNotFound, "row does not exist"
	}

	if errors.Is(err, rowset.ErrInvalidState) {
		return http.StatusConflict, "operation not allowed for this row"
	}

	if errors.Is(err, formset.ErrManagementForm) {
		return http.StatusBadRequest, "Malformed formset"
	}

	var syntaxError *json.SyntaxError
	var syntacticError *jsontext.SyntacticError
	var semanticError *json2.SemanticError
	if errors.As(err, &syntaxError) || errors.As(err, &syntacticError) || errors.As(err, &semanticError) ||
		errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return http.StatusBadRequest, "Malformed JSON"
	}

	return http.StatusInternalServerError, "Unexpected error"
}
