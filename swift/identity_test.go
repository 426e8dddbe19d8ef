package swift_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sagarc03/swiftcli"
	"github.com/sagarc03/swiftcli/internal/fakeswift"
	"github.com/sagarc03/swiftcli/swift"
)

func TestFileMD5(t *testing.T) {
	dir := t.TempDir()

	sum, err := swift.FileMD5(writeFile(t, dir, "empty", ""))
	require.NoError(t, err)
	assert.Equal(t, "d41d8cd98f00b204e9800998ecf8427e", sum)

	sum, err = swift.FileMD5(writeFile(t, dir, "hello", "hello"))
	require.NoError(t, err)
	assert.Equal(t, "5d41402abc4b2a76b9719d911017c592", sum)

	_, err = swift.FileMD5(filepath.Join(dir, "missing"))
	assert.Error(t, err)
}

func TestClient_Identical(t *testing.T) {
	srv := fakeswift.New(t)
	srv.AddObject("docs", "same.txt", []byte("same"))
	srv.AddObject("docs", "other.txt", []byte("remote"))
	client := swift.New()
	sess := session(t, srv, client)
	ctx := context.Background()
	local := writeFile(t, t.TempDir(), "same.txt", "same")

	ok, err := client.Identical(ctx, sess, "/docs/same.txt", local)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = client.Identical(ctx, sess, "/docs/other.txt", local)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = client.Identical(ctx, sess, "/docs/missing.txt", local)
	require.NoError(t, err)
	assert.False(t, ok)

	srv.SetStatus(http.MethodHead, "/docs/broken.txt", http.StatusServiceUnavailable)
	_, err = client.Identical(ctx, sess, "/docs/broken.txt", local)
	assert.ErrorIs(t, err, swiftcli.ErrUnexpectedStatus)
}

func TestClient_Identical_NoEtag(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	local := writeFile(t, t.TempDir(), "a.txt", "a")
	sess := swiftcli.Session{StorageURL: srv.URL, Token: "tok"}

	ok, err := swift.New().Identical(context.Background(), sess, "/c/a.txt", local)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDetectContentType(t *testing.T) {
	dir := t.TempDir()

	assert.Equal(t, "text/plain; charset=utf-8", swift.DetectContentType(writeFile(t, dir, "a.txt", "hello")))
	assert.Equal(t, "application/json", swift.DetectContentType(writeFile(t, dir, "a.json", "{}")))

	png := writeFile(t, dir, "image", "\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
	assert.Equal(t, "image/png", swift.DetectContentType(png))

	assert.Equal(t, "application/octet-stream", swift.DetectContentType(filepath.Join(dir, "missing")))
}
