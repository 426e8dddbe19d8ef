package action_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sagarc03/swiftcli"
	"github.com/sagarc03/swiftcli/action"
	"github.com/sagarc03/swiftcli/internal/fakeswift"
	"github.com/sagarc03/swiftcli/swift"
)

func TestRunner_Get(t *testing.T) {
	srv := fakeswift.New(t)
	srv.AddObject("docs", "sub/report.txt", []byte("numbers"))
	ctx := context.Background()

	t.Run("explicit destination", func(t *testing.T) {
		runner, stdout, _ := newRunner(t, srv)
		dest := filepath.Join(t.TempDir(), "out.txt")

		result, err := runner.Get(ctx, []string{"docs/sub/report.txt", dest})
		require.NoError(t, err)
		assert.Equal(t, dest, result.LocalPath)
		assert.Equal(t, int64(7), result.Size)
		assert.Contains(t, stdout.String(), "Downloaded: /docs/sub/report.txt -> "+dest)

		data, err := os.ReadFile(dest)
		require.NoError(t, err)
		assert.Equal(t, "numbers", string(data))
	})

	t.Run("directory destination uses base name", func(t *testing.T) {
		runner, _, _ := newRunner(t, srv)
		dir := t.TempDir()

		result, err := runner.Get(ctx, []string{"docs/sub/report.txt", dir})
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "report.txt"), result.LocalPath)
		assert.FileExists(t, result.LocalPath)
	})

	t.Run("default destination is base name", func(t *testing.T) {
		runner, _, _ := newRunner(t, srv)
		t.Chdir(t.TempDir())

		result, err := runner.Get(ctx, []string{"docs/sub/report.txt"})
		require.NoError(t, err)
		assert.Equal(t, "report.txt", result.LocalPath)
		assert.FileExists(t, "report.txt")
	})

	t.Run("refuses to overwrite", func(t *testing.T) {
		runner, _, _ := newRunner(t, srv)
		dest := writeFile(t, t.TempDir(), "report.txt", "local edits")

		_, err := runner.Get(ctx, []string{"docs/sub/report.txt", dest})
		require.ErrorIs(t, err, action.ErrLocalExists)
		assert.Equal(t, swiftcli.ExitInvalidArguments, swiftcli.ExitCode(err))

		data, _ := os.ReadFile(dest)
		assert.Equal(t, "local edits", string(data))
	})

	t.Run("overwrites with -o", func(t *testing.T) {
		runner, _, _ := newRunner(t, srv, action.WithOverwrite(true))
		dest := writeFile(t, t.TempDir(), "report.txt", "local edits")

		_, err := runner.Get(ctx, []string{"docs/sub/report.txt", dest})
		require.NoError(t, err)

		data, _ := os.ReadFile(dest)
		assert.Equal(t, "numbers", string(data))
	})

	t.Run("stdout", func(t *testing.T) {
		runner, stdout, stderr := newRunner(t, srv)

		result, err := runner.Get(ctx, []string{"docs/sub/report.txt", action.Stdout})
		require.NoError(t, err)
		assert.Equal(t, action.Stdout, result.LocalPath)
		assert.Equal(t, "numbers", stdout.String())
		assert.Empty(t, stderr.String())
	})

	t.Run("missing object leaves nothing behind", func(t *testing.T) {
		runner, _, _ := newRunner(t, srv)
		dir := t.TempDir()
		dest := filepath.Join(dir, "nope.txt")

		_, err := runner.Get(ctx, []string{"docs/nope.txt", dest})
		require.ErrorIs(t, err, swift.ErrNotFound)

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("invalid arguments", func(t *testing.T) {
		runner, _, _ := newRunner(t, srv)

		for _, args := range [][]string{nil, {"docs"}, {"a/b", "c", "d"}} {
			_, err := runner.Get(ctx, args)
			assert.ErrorIs(t, err, swiftcli.ErrInvalidArguments, "args %v", args)
		}
	})
}
