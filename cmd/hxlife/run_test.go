package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pthm/hxlife/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testManifest = `
components:
  - name: x-greeting
    template: '<p class="msg">hello</p>'
    attributes:
      name: {default: "world"}
  - name: x-panel
`

const testPage = `<!DOCTYPE html>
<html><body>
<x-panel id="panel"><x-greeting id="g" unresolved></x-greeting></x-panel>
<div data-hxlife-ignore><x-greeting id="raw"></x-greeting></div>
</body></html>`

func writeFixtures(t *testing.T) runOptions {
	t.Helper()
	dir := t.TempDir()
	opts := runOptions{
		page:     filepath.Join(dir, "page.html"),
		manifest: filepath.Join(dir, "components.yaml"),
	}
	require.NoError(t, os.WriteFile(opts.page, []byte(testPage), 0o644))
	require.NoError(t, os.WriteFile(opts.manifest, []byte(testManifest), 0o644))
	return opts
}

func TestRunPage(t *testing.T) {
	opts := writeFixtures(t)
	var out, logs bytes.Buffer

	err := runPage(&out, logging.NewWriter(&logs, slog.LevelInfo), opts)
	require.NoError(t, err)

	html := out.String()
	assert.Contains(t, html, `<x-greeting id="g" resolved="" name="world"><p class="msg">hello</p></x-greeting>`)
	assert.Contains(t, html, `<x-greeting id="raw"></x-greeting>`)
	assert.Contains(t, logs.String(), "msg=attached component=x-panel element=panel")
}

func TestRunPageRemoveAndSnapshot(t *testing.T) {
	opts := writeFixtures(t)
	opts.remove = []string{"g", "missing"}
	opts.snapshot = filepath.Join(t.TempDir(), "state.msgpack")
	var out, logs bytes.Buffer

	require.NoError(t, runPage(&out, logging.NewWriter(&logs, slog.LevelInfo), opts))

	assert.NotContains(t, out.String(), `id="g"`)
	assert.Contains(t, logs.String(), "msg=detached component=x-greeting element=g")
	assert.Contains(t, logs.String(), `msg="element to remove not found" id=missing`)

	f, err := os.Open(opts.snapshot)
	require.NoError(t, err)
	defer f.Close()

	var printed bytes.Buffer
	require.NoError(t, inspect(&printed, f))
	text := printed.String()
	assert.Contains(t, text, "tag: html")
	assert.Contains(t, text, "id: x-panel")
	assert.True(t, strings.Contains(text, "attached: true"))
}

func TestRunPageMissingManifest(t *testing.T) {
	opts := writeFixtures(t)
	opts.manifest = filepath.Join(t.TempDir(), "none.yaml")

	err := runPage(&bytes.Buffer{}, logging.NewNop(), opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load manifest")
}

func TestInspectRejectsGarbage(t *testing.T) {
	err := inspect(&bytes.Buffer{}, strings.NewReader("not msgpack"))
	assert.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version"})
	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "hxlife version "+version+"\n", out.String())
}
