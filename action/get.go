package action

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/sagarc03/swiftcli"
)

// ErrLocalExists is returned when get would overwrite a local file without -o.
var ErrLocalExists = fmt.Errorf("%w: local file exists, use -o to overwrite", swiftcli.ErrInvalidArguments)

// Stdout is the destination name that streams the object to standard output.
const Stdout = "-"

// Get downloads args[0] to args[1], or to the object's base name in the
// current directory. A destination of "-" writes to stdout. An existing
// local file is only replaced in overwrite mode; the download goes to a
// temporary file that is renamed into place on success.
func (r *Runner) Get(ctx context.Context, args []string) (*GetResult, error) {
	if len(args) < 1 || len(args) > 2 {
		return nil, fmt.Errorf("%w: get needs a source and an optional destination", swiftcli.ErrInvalidArguments)
	}

	src := swiftcli.NormalizePath(args[0])
	if src.Object() == "" {
		return nil, fmt.Errorf("%w: get needs container/object, got %q", swiftcli.ErrInvalidArguments, args[0])
	}

	dest := path.Base(src.Object())
	if len(args) == 2 {
		dest = args[1]
	}

	if dest == Stdout {
		return r.getToStdout(ctx, src)
	}

	dest, err := r.resolveDestination(dest, path.Base(src.Object()))
	if err != nil {
		return nil, err
	}

	result, err := r.download(ctx, src, dest)
	if err != nil {
		return nil, err
	}
	return result, r.formatter.FormatGet(r.stdout, result)
}

// getToStdout streams the object to stdout and reports the result on stderr.
func (r *Runner) getToStdout(ctx context.Context, src swiftcli.ObjectPath) (*GetResult, error) {
	meta, n, err := r.storage.GetObject(ctx, r.sess, src, r.stdout)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", src, err)
	}

	result := &GetResult{
		RemotePath:  src,
		LocalPath:   Stdout,
		ETag:        meta.ETag,
		ContentType: meta.ContentType,
		Size:        n,
	}
	return result, r.formatter.FormatGet(r.stderr, result)
}

// resolveDestination maps a directory destination to a file inside it and
// applies the overwrite guard.
func (r *Runner) resolveDestination(dest, base string) (string, error) {
	info, err := os.Stat(dest)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return dest, nil
	case err != nil:
		return "", fmt.Errorf("stat destination: %w", err)
	}

	if info.IsDir() {
		return r.resolveDestination(filepath.Join(dest, base), base)
	}
	if !r.overwrite {
		return "", fmt.Errorf("%s: %w", dest, ErrLocalExists)
	}
	return dest, nil
}

func (r *Runner) download(ctx context.Context, src swiftcli.ObjectPath, dest string) (*GetResult, error) {
	dir := filepath.Dir(dest)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(dest)+".*.part")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	meta, n, err := r.storage.GetObject(ctx, r.sess, src, tmp)
	if err != nil {
		_ = tmp.Close()
		return nil, fmt.Errorf("get %s: %w", src, err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, dest); err != nil {
		return nil, fmt.Errorf("rename temp file: %w", err)
	}

	r.logger.Debug("downloaded", "remote", src, "local", dest, "size", n)
	return &GetResult{
		RemotePath:  src,
		LocalPath:   dest,
		ETag:        meta.ETag,
		ContentType: meta.ContentType,
		Size:        n,
	}, nil
}
