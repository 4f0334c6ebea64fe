package api

import (
	"context"
	"net/http"

	json2 "github.com/go-json-experiment/json"

	"github.com/fulldump/prooflines/tokens"
)

type substituteMessage struct {
	Text string `json:"text"`
}

func substitute(ctx context.Context, r *http.Request) (*substituteMessage, error) {

	input := &substituteMessage{}
	err := json2.UnmarshalRead(r.Body, input)
	if err != nil {
		return nil, err
	}

	return &substituteMessage{
		Text: tokens.Substitute(input.Text),
	}, nil
}
