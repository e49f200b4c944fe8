package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/skingen/internal/project"
	"github.com/alexisbeaulieu97/skingen/internal/storage"
)

type workspace struct {
	dir         string
	projectPath string
	configPath  string
}

func newWorkspace(t *testing.T) workspace {
	t.Helper()
	dir := t.TempDir()
	return workspace{
		dir:         dir,
		projectPath: filepath.Join(dir, "skin.json"),
		configPath:  filepath.Join(dir, "config.yaml"),
	}
}

// run executes the CLI against the workspace and returns stdout.
func (w workspace) run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetIn(&bytes.Buffer{})
	root.SetArgs(append([]string{
		"--project", w.projectPath,
		"--config", w.configPath,
		"--env-file", filepath.Join(w.dir, ".env"),
	}, args...))

	err := root.Execute()
	return stdout.String(), err
}

func (w workspace) mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := w.run(t, args...)
	require.NoError(t, err)
	return out
}

func (w workspace) load(t *testing.T) project.Project {
	t.Helper()
	p, err := storage.NewFileStore(w.projectPath).Load()
	require.NoError(t, err)
	return p
}
