package configuration

import (
	"strings"

	"github.com/fulldump/prooflines/rowset"
)

// Template builds the blank row template for the configured prefix and
// placeholder.
func (c *Configuration) Template() *rowset.Template {

	t := rowset.DefaultTemplate()
	if c.Prefix != "" {
		t.Prefix = c.Prefix
	}
	if c.Placeholder != "" && c.Placeholder != t.Placeholder {
		for i, pattern := range t.Extra {
			t.Extra[i] = strings.ReplaceAll(pattern, t.Placeholder, c.Placeholder)
		}
		t.Placeholder = c.Placeholder
	}

	return t
}
