package cmd

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/killallgit/podcast-api/pkg/config"
)

// isolateConfig points configuration at a temp directory with a sqlite database
func isolateConfig(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	oldPath, oldEnv := config.Path, config.EnvFile
	config.Reset()
	config.Path = filepath.Join(dir, "settings.yaml")
	config.EnvFile = filepath.Join(dir, ".env")

	t.Setenv("PODCAST_DATABASE_PATH", filepath.Join(dir, "cli.db"))
	t.Setenv("PODCAST_AUTH_BCRYPT_COST", "4")

	t.Cleanup(func() {
		config.Path, config.EnvFile = oldPath, oldEnv
		config.Reset()
		appConfig = nil
	})
	return dir
}

// execute runs a freshly built command tree with args and returns combined output
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return executeContext(t, context.Background(), args...)
}

func executeContext(t *testing.T, ctx context.Context, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetIn(new(bytes.Buffer))
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	return buf.String(), err
}
