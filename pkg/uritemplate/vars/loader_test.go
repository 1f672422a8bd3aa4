package vars_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/uritemplate/pkg/uritemplate"
	"github.com/randalmurphal/uritemplate/pkg/uritemplate/vars"
)

const yamlDoc = `
id: 42
name: "Jane Doe"
enabled: true
fields: [name, email]
filter:
  zeta: "1"
  alpha: 2
deleted: null
blank:
`

const jsonDoc = `{
  "id": 42,
  "name": "Jane Doe",
  "enabled": true,
  "fields": ["name", "email"],
  "filter": {"zeta": "1", "alpha": 2},
  "deleted": null,
  "ratio": 0.50
}`

func TestFromYAML(t *testing.T) {
	s, err := vars.FromYAML([]byte(yamlDoc))
	require.NoError(t, err)

	assert.Equal(t, []string{"id", "name", "enabled", "fields", "filter"}, s.Names())

	filter, _ := s.Get("filter")
	assert.Equal(t, []uritemplate.Pair{{Key: "zeta", Value: "1"}, {Key: "alpha", Value: "2"}}, filter.Pairs())

	out := uritemplate.Parse("/u/{id}{?name,enabled,fields,deleted}{&filter*}").Expand(s)
	assert.Equal(t, "/u/42?name=Jane%20Doe&enabled=true&fields=name,email&zeta=1&alpha=2", out)
}

func TestFromYAML_Aliases(t *testing.T) {
	s, err := vars.FromYAML([]byte("base: &b [a, b]\ncopy: *b\n"))
	require.NoError(t, err)
	v, ok := s.Get("copy")
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, v.List())
}

func TestFromYAML_Empty(t *testing.T) {
	for _, doc := range []string{"", "---\n", "null\n"} {
		s, err := vars.FromYAML([]byte(doc))
		require.NoError(t, err, doc)
		assert.Equal(t, 0, s.Len())
	}
}

func TestFromYAML_Errors(t *testing.T) {
	_, err := vars.FromYAML([]byte("- a\n- b\n"))
	assert.ErrorIs(t, err, vars.ErrInvalidDocument)

	_, err = vars.FromYAML([]byte("v: [[a]]\n"))
	assert.ErrorIs(t, err, vars.ErrUnsupportedValue)

	_, err = vars.FromYAML([]byte("v: {k: [x]}\n"))
	assert.ErrorIs(t, err, vars.ErrUnsupportedValue)

	_, err = vars.FromYAML([]byte("v: [a\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse yaml")
}

func TestFromJSON(t *testing.T) {
	s, err := vars.FromJSON([]byte(jsonDoc))
	require.NoError(t, err)

	assert.Equal(t, []string{"id", "name", "enabled", "fields", "filter", "ratio"}, s.Names())

	ratio, _ := s.Get("ratio")
	assert.Equal(t, "0.50", ratio.Str())

	filter, _ := s.Get("filter")
	assert.Equal(t, []uritemplate.Pair{{Key: "zeta", Value: "1"}, {Key: "alpha", Value: "2"}}, filter.Pairs())

	assert.False(t, s.Has("deleted"))
}

func TestFromJSON_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"array root", `["a"]`, vars.ErrInvalidDocument},
		{"string root", `"a"`, vars.ErrInvalidDocument},
		{"nested list", `{"v": [["a"]]}`, vars.ErrUnsupportedValue},
		{"null list item", `{"v": [null]}`, vars.ErrUnsupportedValue},
		{"nested object", `{"v": {"k": {}}}`, vars.ErrUnsupportedValue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := vars.FromJSON([]byte(tt.doc))
			assert.ErrorIs(t, err, tt.want)
		})
	}

	for _, doc := range []string{`{`, `{"a": }`, `{"a": "1"} {}`} {
		_, err := vars.FromJSON([]byte(doc))
		assert.Error(t, err, doc)
	}
}

func TestFromJSON_Empty(t *testing.T) {
	for _, doc := range [][]byte{nil, []byte(""), []byte("  \n  ")} {
		s, err := vars.FromJSON(doc)
		require.NoError(t, err, "%q", doc)
		assert.Equal(t, 0, s.Len())

		fromYAML, err := vars.FromYAML(doc)
		require.NoError(t, err, "%q", doc)
		assert.Equal(t, fromYAML.Len(), s.Len())
	}
}

func TestFromJSON_Null(t *testing.T) {
	s, err := vars.FromJSON([]byte("null"))
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())
}

func TestFromFile(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "bindings.YML")
	require.NoError(t, os.WriteFile(yamlPath, []byte(yamlDoc), 0o600))
	s, err := vars.FromFile(yamlPath)
	require.NoError(t, err)
	assert.True(t, s.Has("fields"))

	jsonPath := filepath.Join(dir, "bindings.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(jsonDoc), 0o600))
	s, err = vars.FromFile(jsonPath)
	require.NoError(t, err)
	assert.True(t, s.Has("ratio"))

	tomlPath := filepath.Join(dir, "bindings.toml")
	require.NoError(t, os.WriteFile(tomlPath, []byte("a = 1"), 0o600))
	_, err = vars.FromFile(tomlPath)
	assert.ErrorIs(t, err, vars.ErrUnsupportedFormat)

	_, err = vars.FromFile(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
