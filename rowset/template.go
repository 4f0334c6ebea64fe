package rowset

import (
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

const (
	DefaultPrefix      = "proofline_set"
	DefaultPlaceholder = "__prefix__"

	// Managed fields are rendered like any other field but their values are
	// owned by the row lifecycle.
	FieldID     = "id"
	FieldDelete = "DELETE"
)

// Template describes the blank row the page clones: every identifier a row
// owns is a pattern containing Placeholder, replaced by the row index.
type Template struct {
	Prefix      string         `json:"prefix"`
	Placeholder string         `json:"placeholder"`
	Fields      []string       `json:"fields"`
	Defaults    map[string]any `json:"defaults"`

	// TextFields get token substitution on every write
	TextFields []string `json:"text_fields"`

	// Extra are additional identifier patterns, for example row buttons
	Extra []string `json:"extra"`
}

func DefaultTemplate() *Template {
	return &Template{
		Prefix:      DefaultPrefix,
		Placeholder: DefaultPlaceholder,
		Fields:      []string{FieldID, FieldDelete, "line_no", "formula", "rule"},
		Defaults:    map[string]any{},
		TextFields:  []string{"formula"},
		Extra: []string{
			"id-form-btn-insert-row-" + DefaultPlaceholder,
			"id-form-btn-delete-row-" + DefaultPlaceholder,
		},
	}
}

func (t *Template) Validate() error {

	if t.Prefix == "" {
		return fmt.Errorf("template prefix is empty")
	}
	if t.Placeholder == "" {
		return fmt.Errorf("template placeholder is empty")
	}
	if strings.Contains(t.Prefix, t.Placeholder) {
		return fmt.Errorf("template prefix '%s' contains placeholder", t.Prefix)
	}
	if len(t.Fields) == 0 {
		return fmt.Errorf("template has no fields")
	}

	seen := map[string]bool{}
	for _, field := range t.Fields {
		if field == "" {
			return fmt.Errorf("template has an empty field name")
		}
		// field names are used as gjson/sjson paths
		if strings.ContainsAny(field, ".*?|#@\\-") || strings.HasPrefix(field, "!") {
			return fmt.Errorf("field '%s' has forbidden characters", field)
		}
		if seen[field] {
			return fmt.Errorf("field '%s' is duplicated", field)
		}
		seen[field] = true
	}

	for _, field := range t.TextFields {
		if !seen[field] {
			return fmt.Errorf("text field '%s' is not a template field", field)
		}
	}

	for field := range t.Defaults {
		if !seen[field] {
			return fmt.Errorf("default for unknown field '%s'", field)
		}
	}

	for _, pattern := range t.Extra {
		if !strings.Contains(pattern, t.Placeholder) {
			return fmt.Errorf("pattern '%s' does not contain placeholder", pattern)
		}
	}

	return nil
}

func (t *Template) ContainerPattern() string {
	return t.Prefix + "-" + t.Placeholder
}

func (t *Template) FieldIDPattern(field string) string {
	return "id_" + t.Prefix + "-" + t.Placeholder + "-" + field
}

func (t *Template) FieldNamePattern(field string) string {
	return t.Prefix + "-" + t.Placeholder + "-" + field
}

// Patterns returns every identifier pattern a rendered row owns.
func (t *Template) Patterns() []string {
	patterns := []string{t.ContainerPattern()}
	for _, field := range t.Fields {
		patterns = append(patterns, t.FieldIDPattern(field), t.FieldNamePattern(field))
	}
	return append(patterns, t.Extra...)
}

func (t *Template) Render(pattern string, index int) string {
	return strings.ReplaceAll(pattern, t.Placeholder, strconv.Itoa(index))
}

func (t *Template) HasField(field string) bool {
	return slices.Contains(t.Fields, field)
}

func (t *Template) IsTextField(field string) bool {
	return slices.Contains(t.TextFields, field)
}

func isManaged(field string) bool {
	return field == FieldID || field == FieldDelete
}

// defaultPayload builds the field payload of a blank row.
func (t *Template) defaultPayload() (json.RawMessage, error) {
	fields := map[string]any{}
	for _, field := range t.Fields {
		if isManaged(field) {
			continue
		}
		value, ok := t.Defaults[field]
		if !ok {
			value = ""
		}
		fields[field] = value
	}

	payload, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("json encode default payload: %w", err)
	}

	return payload, nil
}
