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

// is2xx reports whether code is a success status.
func is2xx(code int) bool {
	return code >= 200 && code < 300
}

// GetInfo issues a HEAD for path and returns the interpreted response for any
// status code. Only transport failures are returned as errors.
func (c *Client) GetInfo(ctx context.Context, sess swiftcli.Session, path swiftcli.ObjectPath) (*ResponseMetadata, error) {
	req, err := c.newRequest(ctx, sess, http.MethodHead, path, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.do(req, path)
	if err != nil {
		return nil, err
	}
	defer drain(resp.Body)

	return ParseResponse(resp), nil
}

// CheckExist reports whether a HEAD on path succeeds. 404 means false;
// any other non-2xx status is returned as an *APIError.
func (c *Client) CheckExist(ctx context.Context, sess swiftcli.Session, path swiftcli.ObjectPath) (bool, error) {
	meta, err := c.GetInfo(ctx, sess, path)
	if err != nil {
		return false, err
	}

	switch {
	case is2xx(meta.StatusCode):
		return true, nil
	case meta.StatusCode == http.StatusNotFound:
		return false, nil
	default:
		return false, newAPIError(http.MethodHead, path, meta.StatusCode, nil)
	}
}

// List returns the raw body of a GET on path: the container names for the
// account, or the object names for a container.
func (c *Client) List(ctx context.Context, sess swiftcli.Session, path swiftcli.ObjectPath) ([]byte, *ResponseMetadata, error) {
	req, err := c.newRequest(ctx, sess, http.MethodGet, path, http.NoBody)
	if err != nil {
		return nil, nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.do(req, path)
	if err != nil {
		return nil, nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("read response: %w", err)
	}

	meta := ParseResponse(resp)
	if !is2xx(resp.StatusCode) {
		return nil, meta, newAPIError(http.MethodGet, path, resp.StatusCode, body)
	}

	return body, meta, nil
}

// GetObject streams the object at path into dst and returns the interpreted
// response and the number of bytes written. The received bytes are checked
// against the Etag unless the object is a large-object manifest.
func (c *Client) GetObject(ctx context.Context, sess swiftcli.Session, path swiftcli.ObjectPath, dst io.Writer) (*ResponseMetadata, int64, error) {
	req, err := c.newRequest(ctx, sess, http.MethodGet, path, http.NoBody)
	if err != nil {
		return nil, 0, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.do(req, path)
	if err != nil {
		return nil, 0, err
	}
	defer func() { _ = resp.Body.Close() }()

	meta := ParseResponse(resp)
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return meta, 0, newAPIError(http.MethodGet, path, resp.StatusCode, body)
	}

	hash := md5.New() //#nosec G401 -- Swift Etags are MD5
	written, err := io.Copy(io.MultiWriter(dst, hash), resp.Body)
	if err != nil {
		return meta, written, fmt.Errorf("write object: %w", err)
	}

	if meta.HasETag() && !meta.IsLargeObject() {
		if got := hex.EncodeToString(hash.Sum(nil)); got != meta.ETag {
			return meta, written, fmt.Errorf("%s: %w (etag %s, received %s)", path, ErrObjectCorrupted, meta.ETag, got)
		}
	}

	return meta, written, nil
}

// PutObject uploads localFile to path. The request carries the file's MD5 as
// Etag so the service rejects a corrupted upload.
func (c *Client) PutObject(ctx context.Context, sess swiftcli.Session, path swiftcli.ObjectPath, localFile string) (*ResponseMetadata, error) {
	file, err := os.Open(filepath.Clean(localFile)) //#nosec G304 -- localFile is user-provided input
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s: %w: is a directory", localFile, swiftcli.ErrInvalidArguments)
	}

	sum, err := readerMD5(file)
	if err != nil {
		return nil, fmt.Errorf("hash file: %w", err)
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("rewind file: %w", err)
	}

	// Create request with file as body (streaming, no memory copy)
	req, err := c.newRequest(ctx, sess, http.MethodPut, path, file)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.ContentLength = info.Size()
	req.Header.Set("Content-Type", DetectContentType(localFile))
	req.Header.Set(HeaderEtag, sum)

	resp, err := c.do(req, path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	meta := ParseResponse(resp)
	if !is2xx(resp.StatusCode) {
		body, _ := io.ReadAll(resp.Body)
		return meta, newAPIError(http.MethodPut, path, resp.StatusCode, body)
	}
	_, _ = io.Copy(io.Discard, resp.Body)

	if meta.ContentLength <= 0 {
		meta.ContentLength = info.Size()
	}
	if !meta.HasETag() {
		meta.ETag = sum
	}
	return meta, nil
}

// PutDirectory creates a zero-length placeholder at path. On a container-only
// path this creates the container.
func (c *Client) PutDirectory(ctx context.Context, sess swiftcli.Session, path swiftcli.ObjectPath) (*ResponseMetadata, error) {
	path = path.Trim()

	req, err := c.newRequest(ctx, sess, http.MethodPut, path, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.ContentLength = 0
	req.Header.Set("Content-Type", DirectoryContentType)

	resp, err := c.do(req, path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	meta := ParseResponse(resp)
	if !is2xx(resp.StatusCode) {
		body, _ := io.ReadAll(resp.Body)
		return meta, newAPIError(http.MethodPut, path, resp.StatusCode, body)
	}
	_, _ = io.Copy(io.Discard, resp.Body)

	return meta, nil
}

// DeleteObject deletes the object or empty container at path.
func (c *Client) DeleteObject(ctx context.Context, sess swiftcli.Session, path swiftcli.ObjectPath) (*ResponseMetadata, error) {
	req, err := c.newRequest(ctx, sess, http.MethodDelete, path, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.do(req, path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	meta := ParseResponse(resp)
	if !is2xx(resp.StatusCode) {
		body, _ := io.ReadAll(resp.Body)
		return meta, newAPIError(http.MethodDelete, path, resp.StatusCode, body)
	}
	_, _ = io.Copy(io.Discard, resp.Body)

	return meta, nil
}

// Account issues a HEAD on the account. Non-2xx statuses are returned as *APIError.
func (c *Client) Account(ctx context.Context, sess swiftcli.Session) (*ResponseMetadata, error) {
	meta, err := c.GetInfo(ctx, sess, "/")
	if err != nil {
		return nil, err
	}
	if !is2xx(meta.StatusCode) {
		return meta, newAPIError(http.MethodHead, "/", meta.StatusCode, nil)
	}
	return meta, nil
}
