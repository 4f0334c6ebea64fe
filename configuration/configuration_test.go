package configuration

import (
	"testing"

	"github.com/fulldump/biff"

	"github.com/fulldump/prooflines/rowset"
)

func TestDefault(t *testing.T) {

	c := Default()

	biff.AssertEqual(c.Prefix, rowset.DefaultPrefix)
	biff.AssertEqual(c.Placeholder, rowset.DefaultPlaceholder)
	biff.AssertEqual(c.ApiKey, "")
	biff.AssertTrue(c.EnableCompression)
}

func TestTemplate(t *testing.T) {

	c := Default()
	c.Prefix = "form"

	template := c.Template()

	biff.AssertNil(template.Validate())
	biff.AssertEqual(template.Prefix, "form")
	biff.AssertEqual(template.Extra, []string{
		"id-form-btn-insert-row-__prefix__",
		"id-form-btn-delete-row-__prefix__",
	})
}
