package swift

import (
	"context"
	"crypto/md5" //#nosec G501 -- Swift Etags are MD5
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/sagarc03/swiftcli"
)

// FileMD5 returns the lowercase hex MD5 of the file at path.
func FileMD5(path string) (string, error) {
	f, err := os.Open(filepath.Clean(path)) //#nosec G304 -- path is user-provided input
	if err != nil {
		return "", fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return readerMD5(f)
}

func readerMD5(r io.Reader) (string, error) {
	h := md5.New() //#nosec G401 -- Swift Etags are MD5
	if _, err := io.Copy(h, r); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// Identical reports whether the remote object at path has the same content as
// localFile, comparing the remote Etag with the local MD5. A missing remote
// object or a response without Etag is not identical.
func (c *Client) Identical(ctx context.Context, sess swiftcli.Session, path swiftcli.ObjectPath, localFile string) (bool, error) {
	meta, err := c.GetInfo(ctx, sess, path)
	if err != nil {
		return false, err
	}

	switch {
	case meta.StatusCode == http.StatusNotFound:
		return false, nil
	case !is2xx(meta.StatusCode):
		return false, newAPIError(http.MethodHead, path, meta.StatusCode, nil)
	case !meta.HasETag():
		return false, nil
	}

	local, err := FileMD5(localFile)
	if err != nil {
		return false, err
	}

	c.logger.Debug("content identity", "path", path, "remote", meta.ETag, "local", local)
	return local == meta.ETag, nil
}
