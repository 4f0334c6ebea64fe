package apisessionv1

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"

	"github.com/SierraSoftworks/connor"
	"github.com/fulldump/box"
	json2 "github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"

	"github.com/fulldump/prooflines/rowset"
)

func find(ctx context.Context, w http.ResponseWriter, r *http.Request) error {

	requestBody, err := io.ReadAll(r.Body)
	if err != nil {
		return err
	}

	input := struct {
		Mode string
	}{
		Mode: "fullscan",
	}
	err = json.Unmarshal(requestBody, &input)
	if err != nil {
		return err
	}

	f, exist := findModes[input.Mode]
	if !exist {
		box.GetResponse(ctx).WriteHeader(http.StatusBadRequest)
		return fmt.Errorf("bad mode '%s', must be [%s]", input.Mode, strings.Join(getKeys(findModes), "|"))
	}

	session, err := getSessionFromUrl(ctx)
	if err != nil {
		return err
	}

	// Rows are encoded while holding the session so nothing moves meanwhile
	e := jsontext.NewEncoder(w)
	return session.Do(func(rows *rowset.RowSet) error {
		return f(requestBody, rows, func(row *rowset.Row) error {
			return json2.MarshalEncode(e, newRowResponse(row))
		})
	})
}

type traverser func(input []byte, rows *rowset.RowSet, f func(row *rowset.Row) error) error

var findModes = map[string]traverser{
	"fullscan":   traverseFullscan,
	"identifier": traverseIdentifier,
}

func traverseFullscan(input []byte, rows *rowset.RowSet, f func(row *rowset.Row) error) error {

	params := &struct {
		Filter  map[string]interface{}
		Skip    int64
		Limit   int64
		Deleted bool
	}{
		Filter: map[string]interface{}{},
		Skip:   0,
		Limit:  1,
	}
	err := json.Unmarshal(input, &params)
	if err != nil {
		return err
	}

	hasFilter := len(params.Filter) > 0

	skip := params.Skip
	limit := params.Limit

	var result error
	traverse := rows.TraverseVisible
	if params.Deleted {
		traverse = rows.Traverse
	}
	traverse(func(row *rowset.Row) bool {

		if limit == 0 {
			return false
		}

		if hasFilter {
			match, err := connor.Match(params.Filter, row.Fields())
			if err != nil {
				result = fmt.Errorf("match: %w", err)
				return false
			}
			if !match {
				return true
			}
		}

		if skip > 0 {
			skip--
			return true
		}

		limit--
		result = f(row)
		return result == nil
	})

	return result
}

func traverseIdentifier(input []byte, rows *rowset.RowSet, f func(row *rowset.Row) error) error {

	params := &struct {
		Identifier string
	}{}
	err := json.Unmarshal(input, &params)
	if err != nil {
		return err
	}

	row, err := rows.Resolve(params.Identifier)
	if err != nil {
		return err
	}

	return f(row)
}

func getKeys[T any](m map[string]T) []string {
	keys := []string{}
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
