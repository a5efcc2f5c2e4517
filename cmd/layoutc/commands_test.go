package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const sample = `[{"id":"e1","x":5,"y":5,"type":"div","html":"<span>Hi</span>"}]`

func cli(stdin string) (*CLI, *bytes.Buffer) {
	out := bytes.NewBuffer(nil)
	return &CLI{stdin: strings.NewReader(stdin), stdout: out, log: zap.NewNop()}, out
}

func TestRender(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "missing.yaml")

	tt := []struct {
		name   string
		args   []string
		output string
	}{
		{
			name:   "jsx",
			args:   []string{"-config", missing},
			output: "<div id=\"e1\" style={{\"position\":\"absolute\",\"left\":\"5px\",\"top\":\"5px\"}}>\n  <span>\n    \"Hi\"\n  </span>\n</div>\n",
		},
		{
			name:   "html",
			args:   []string{"-config", missing, "-format", "html"},
			output: "<div id=\"e1\" style=\"position: absolute; left: 5px; top: 5px\"><span>Hi</span></div>\n",
		},
		{
			name:   "tree",
			args:   []string{"-config", missing, "-format", "tree", "-"},
			output: "div (id, style)\n  span\n    \"Hi\"\n",
		},
		{
			name:   "text",
			args:   []string{"-config", missing, "-format", "text"},
			output: "Hi\n",
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			c, out := cli(sample)

			require.NoError(t, c.Render(tc.args))
			assert.Equal(t, tc.output, out.String())
		})
	}
}

func TestRender_Config(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "layoutc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: json\nprecedence: reserved\n"), 0644))

	input := filepath.Join(dir, "layout.json")
	require.NoError(t, os.WriteFile(input, []byte(`[{"id":"e1","html":"x","attributes":{"id":"other"}}]`), 0644))

	c, out := cli("")
	require.NoError(t, c.Render([]string{"-config", path, input}))

	assert.Contains(t, out.String(), `"id": "e1"`)
	assert.NotContains(t, out.String(), "other")
}

func TestRender_Errors(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.yaml")

	c, _ := cli("not json")
	assert.Error(t, c.Render([]string{"-config", missing}))

	c, _ = cli(sample)
	assert.Error(t, c.Render([]string{"-config", missing, "-format", "pdf"}))
}

func TestStoreCommands(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "layouts.db")
	missing := filepath.Join(dir, "missing.yaml")

	c, _ := cli(sample)
	require.NoError(t, c.Put([]string{"-db", db, "-name", "home"}))

	c, out := cli("")
	require.NoError(t, c.List([]string{"-db", db}))
	assert.True(t, strings.HasPrefix(out.String(), "home\t"))

	c, out = cli("")
	require.NoError(t, c.Get([]string{"-db", db, "-name", "home", "-config", missing, "-format", "text"}))
	assert.Equal(t, "Hi\n", out.String())

	c, _ = cli("")
	require.NoError(t, c.Remove([]string{"-db", db, "-name", "home"}))
	assert.Error(t, c.Remove([]string{"-db", db, "-name", "home"}))
	assert.Error(t, c.Get([]string{"-db", db, "-name", "home", "-config", missing}))

	assert.Error(t, c.Put([]string{"-name", "home"}))
}
