package web

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTemplates(t *testing.T) {
	tmpl, err := ParseTemplates()
	require.NoError(t, err)

	for _, name := range []string{"dashboard_page", "summary_skeletons", "summary_cards", "summary_partial"} {
		assert.NotNil(t, tmpl.Lookup(name), name)
	}
}

func TestStatic(t *testing.T) {
	static, err := Static()
	require.NoError(t, err)

	for _, name := range []string{"countup.js", "app.css"} {
		_, err := fs.Stat(static, name)
		assert.NoError(t, err, name)
	}
}
