package action_test

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sagarc03/swiftcli"
	"github.com/sagarc03/swiftcli/action"
	"github.com/sagarc03/swiftcli/internal/fakeswift"
	"github.com/sagarc03/swiftcli/swift"
)

// newRunner authenticates against srv and returns a runner writing to the
// returned buffers.
func newRunner(t *testing.T, srv *fakeswift.Server, opts ...action.Option) (*action.Runner, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	client := swift.New()
	sess, err := client.Authenticate(context.Background(), swiftcli.Credentials{
		User:    fakeswift.User,
		Key:     fakeswift.Key,
		AuthURL: srv.AuthURL(),
	})
	require.NoError(t, err)

	var stdout, stderr bytes.Buffer
	opts = append([]action.Option{action.WithOutput(&stdout, &stderr)}, opts...)
	return action.New(client, sess, opts...), &stdout, &stderr
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func outcomes(results []action.PutResult) []swiftcli.Outcome {
	out := make([]swiftcli.Outcome, len(results))
	for i := range results {
		out[i] = results[i].Outcome
	}
	return out
}

func TestRunner_Put_Arguments(t *testing.T) {
	srv := fakeswift.New(t)
	runner, _, _ := newRunner(t, srv)

	tests := []struct {
		name string
		args []string
	}{
		{"no args", nil},
		{"destination only", []string{"photos"}},
		{"account destination", []string{"/", "a.txt"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv.Reset()
			_, err := runner.Put(context.Background(), tt.args)
			require.Error(t, err)
			assert.ErrorIs(t, err, swiftcli.ErrInvalidArguments)
			assert.Equal(t, swiftcli.ExitInvalidArguments, swiftcli.ExitCode(err))
			assert.Empty(t, srv.Requests())
		})
	}
}

func TestRunner_Put_NewFiles(t *testing.T) {
	srv := fakeswift.New(t)
	srv.AddContainer("mycontainer")
	runner, stdout, _ := newRunner(t, srv)
	dir := t.TempDir()
	file1 := writeFile(t, dir, "file1", "first")
	file2 := writeFile(t, dir, "file2", "second")

	results, err := runner.Put(context.Background(), []string{"mycontainer", file1, file2})
	require.NoError(t, err)

	assert.Equal(t, []swiftcli.Outcome{swiftcli.OutcomeUploaded, swiftcli.OutcomeUploaded}, outcomes(results))
	assert.Equal(t, swiftcli.ObjectPath("/mycontainer/file1"), results[0].RemotePath)
	assert.Equal(t, swiftcli.ObjectPath("/mycontainer/file2"), results[1].RemotePath)

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "uploaded: "+file1))
	assert.True(t, strings.HasPrefix(lines[1], "uploaded: "+file2))

	data, _, ok := srv.Object("mycontainer", "file2")
	require.True(t, ok)
	assert.Equal(t, "second", string(data))
}

func TestRunner_Put_DecisionTable(t *testing.T) {
	tests := []struct {
		name       string
		remote     string // empty means the object does not exist
		local      string
		overwrite  bool
		want       swiftcli.Outcome
		wantReason string
		wantPut    bool
	}{
		{"missing remote", "", "v1", false, swiftcli.OutcomeUploaded, "", true},
		{"missing remote with overwrite", "", "v1", true, swiftcli.OutcomeUploaded, "", true},
		{"differs without overwrite", "old", "new", false, swiftcli.OutcomeSkippedConflict, action.ReasonConflict, false},
		{"identical with overwrite", "same", "same", true, swiftcli.OutcomeSkippedIdentical, action.ReasonIdenticalOverwrite, false},
		{"differs with overwrite", "old", "new", true, swiftcli.OutcomeUploaded, "", true},
		{"identical without overwrite", "same", "same", false, swiftcli.OutcomeSkippedIdentical, action.ReasonIdentical, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := fakeswift.New(t)
			srv.AddContainer("docs")
			if tt.remote != "" {
				srv.AddObject("docs", "note.txt", []byte(tt.remote))
			}
			runner, stdout, _ := newRunner(t, srv, action.WithOverwrite(tt.overwrite))
			local := writeFile(t, t.TempDir(), "note.txt", tt.local)
			srv.Reset()

			results, err := runner.Put(context.Background(), []string{"docs", local})
			require.NoError(t, err)
			require.Len(t, results, 1)

			assert.Equal(t, tt.want, results[0].Outcome)
			assert.Equal(t, tt.wantReason, results[0].Reason)
			assert.Contains(t, stdout.String(), tt.want.String())

			puts := srv.Count(http.MethodPut)
			if tt.wantPut {
				assert.Equal(t, 1, puts)
				data, _, _ := srv.Object("docs", "note.txt")
				assert.Equal(t, tt.local, string(data))
			} else {
				assert.Zero(t, puts)
				data, _, _ := srv.Object("docs", "note.txt")
				assert.Equal(t, tt.remote, string(data))
			}
		})
	}
}

func TestRunner_Put_ReuploadCycle(t *testing.T) {
	srv := fakeswift.New(t)
	srv.AddContainer("docs")
	runner, _, _ := newRunner(t, srv, action.WithOverwrite(true))
	local := writeFile(t, t.TempDir(), "report.txt", "draft")
	ctx := context.Background()

	results, err := runner.Put(ctx, []string{"docs", local})
	require.NoError(t, err)
	assert.Equal(t, swiftcli.OutcomeUploaded, results[0].Outcome)

	srv.Reset()
	results, err = runner.Put(ctx, []string{"docs", local})
	require.NoError(t, err)
	assert.Equal(t, swiftcli.OutcomeSkippedIdentical, results[0].Outcome)
	assert.Zero(t, srv.Count(http.MethodPut), "unchanged file must not be re-uploaded")

	require.NoError(t, os.WriteFile(local, []byte("final"), 0o600))
	srv.Reset()
	results, err = runner.Put(ctx, []string{"docs", local})
	require.NoError(t, err)
	assert.Equal(t, swiftcli.OutcomeUploaded, results[0].Outcome)
	assert.Equal(t, 1, srv.Count(http.MethodPut))

	data, _, _ := srv.Object("docs", "report.txt")
	assert.Equal(t, "final", string(data))
}

func TestRunner_Put_CreatesDestination(t *testing.T) {
	t.Run("container", func(t *testing.T) {
		srv := fakeswift.New(t)
		runner, _, _ := newRunner(t, srv)
		local := writeFile(t, t.TempDir(), "a.txt", "a")

		_, err := runner.Put(context.Background(), []string{"fresh", local})
		require.NoError(t, err)
		assert.True(t, srv.HasContainer("fresh"))

		_, _, ok := srv.Object("fresh", "a.txt")
		assert.True(t, ok)
	})

	t.Run("pseudo directory", func(t *testing.T) {
		srv := fakeswift.New(t)
		srv.AddContainer("photos")
		runner, _, _ := newRunner(t, srv)
		local := writeFile(t, t.TempDir(), "cat.jpg", "meow")

		results, err := runner.Put(context.Background(), []string{"photos/2024", local})
		require.NoError(t, err)
		assert.Equal(t, swiftcli.ObjectPath("/photos/2024/cat.jpg"), results[0].RemotePath)

		_, contentType, ok := srv.Object("photos", "2024")
		require.True(t, ok)
		assert.Equal(t, swift.DirectoryContentType, contentType)
	})

	t.Run("existing destination is not recreated", func(t *testing.T) {
		srv := fakeswift.New(t)
		srv.AddContainer("photos")
		runner, _, _ := newRunner(t, srv)
		local := writeFile(t, t.TempDir(), "cat.jpg", "meow")
		srv.Reset()

		_, err := runner.Put(context.Background(), []string{"photos", local})
		require.NoError(t, err)
		assert.Equal(t, 1, srv.Count(http.MethodPut))
	})

	t.Run("not created when no local file can be uploaded", func(t *testing.T) {
		srv := fakeswift.New(t)
		runner, stdout, _ := newRunner(t, srv)
		dir := t.TempDir()
		missing := filepath.Join(dir, "missing.txt")

		results, err := runner.Put(context.Background(), []string{"newcontainer", missing, dir})
		require.ErrorIs(t, err, action.ErrPartialFailure)
		assert.Equal(t, []swiftcli.Outcome{swiftcli.OutcomeError, swiftcli.OutcomeError}, outcomes(results))
		assert.False(t, srv.HasContainer("newcontainer"))
		assert.Zero(t, srv.Count(http.MethodHead))
		assert.Zero(t, srv.Count(http.MethodPut))
		assert.Contains(t, stdout.String(), "error: "+missing)
	})

	t.Run("created when at least one file is readable", func(t *testing.T) {
		srv := fakeswift.New(t)
		runner, _, _ := newRunner(t, srv)
		dir := t.TempDir()
		missing := filepath.Join(dir, "missing.txt")
		good := writeFile(t, dir, "good.txt", "ok")

		results, err := runner.Put(context.Background(), []string{"newcontainer", missing, good})
		require.ErrorIs(t, err, action.ErrPartialFailure)
		assert.Equal(t, []swiftcli.Outcome{swiftcli.OutcomeError, swiftcli.OutcomeUploaded}, outcomes(results))
		assert.True(t, srv.HasContainer("newcontainer"))
	})

	t.Run("failure is fatal", func(t *testing.T) {
		srv := fakeswift.New(t)
		srv.SetStatus(http.MethodHead, "/photos", http.StatusInternalServerError)
		runner, stdout, _ := newRunner(t, srv)
		local := writeFile(t, t.TempDir(), "cat.jpg", "meow")

		results, err := runner.Put(context.Background(), []string{"photos", local})
		require.Error(t, err)
		assert.Nil(t, results)
		assert.Empty(t, stdout.String())
		assert.Zero(t, srv.Count(http.MethodPut))
	})
}

func TestRunner_Put_PartialFailure(t *testing.T) {
	srv := fakeswift.New(t)
	srv.AddContainer("docs")
	srv.SetStatus(http.MethodPut, "/docs/bad.txt", http.StatusServiceUnavailable)
	runner, stdout, _ := newRunner(t, srv)
	dir := t.TempDir()
	good := writeFile(t, dir, "good.txt", "ok")
	bad := writeFile(t, dir, "bad.txt", "nope")
	missing := filepath.Join(dir, "missing.txt")

	results, err := runner.Put(context.Background(), []string{"docs", bad, missing, good})
	require.ErrorIs(t, err, action.ErrPartialFailure)
	assert.Equal(t, swiftcli.ExitUndefined, swiftcli.ExitCode(err))

	assert.Equal(t, []swiftcli.Outcome{
		swiftcli.OutcomeError,
		swiftcli.OutcomeError,
		swiftcli.OutcomeUploaded,
	}, outcomes(results))
	assert.ErrorIs(t, results[0].Err, swiftcli.ErrUnexpectedStatus)
	assert.ErrorIs(t, results[1].Err, os.ErrNotExist)

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "error: "+bad))
	assert.True(t, strings.HasPrefix(lines[2], "uploaded: "+good))
}

func TestRunner_Put_ParallelKeepsOrder(t *testing.T) {
	srv := fakeswift.New(t)
	srv.AddContainer("bulk")
	runner, stdout, _ := newRunner(t, srv, action.WithJobs(4))
	dir := t.TempDir()

	args := []string{"bulk"}
	for i := range 12 {
		args = append(args, writeFile(t, dir, fmt.Sprintf("f%02d.txt", i), strings.Repeat("x", i+1)))
	}

	results, err := runner.Put(context.Background(), args)
	require.NoError(t, err)
	require.Len(t, results, 12)

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	require.Len(t, lines, 12)
	for i := range results {
		assert.Equal(t, args[i+1], results[i].LocalPath)
		assert.Equal(t, int64(i+1), results[i].Size)
		assert.True(t, strings.HasPrefix(lines[i], "uploaded: "+args[i+1]), lines[i])
	}
}

func TestRunner_Put_Quiet(t *testing.T) {
	srv := fakeswift.New(t)
	srv.AddObject("docs", "a.txt", []byte("remote"))
	runner, stdout, _ := newRunner(t, srv, action.WithFormatter(&action.HumanFormatter{Quiet: true}))
	dir := t.TempDir()

	_, err := runner.Put(context.Background(), []string{"docs", writeFile(t, dir, "a.txt", "local"), writeFile(t, dir, "b.txt", "b")})
	require.NoError(t, err)
	assert.Empty(t, stdout.String())
}
