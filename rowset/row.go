package rowset

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Row is one proof line sub-form. Index is its current position and changes
// whenever rows before it are inserted or removed; ID is stable.
type Row struct {
	ID      string          `json:"id"`
	Index   int             `json:"index"`
	Payload json.RawMessage `json:"fields"`
	Deleted bool            `json:"deleted"`
	IsNew   bool            `json:"is_new"`
}

func (r *Row) Field(name string) gjson.Result {
	return gjson.GetBytes(r.Payload, name)
}

func (r *Row) Fields() map[string]any {
	fields, ok := gjson.ParseBytes(r.Payload).Value().(map[string]any)
	if !ok {
		return map[string]any{}
	}
	return fields
}

func (r *Row) setField(name string, value any) error {
	payload, err := sjson.SetBytes(r.Payload, name, value)
	if err != nil {
		return fmt.Errorf("set field '%s': %w", name, err)
	}
	r.Payload = payload
	return nil
}
