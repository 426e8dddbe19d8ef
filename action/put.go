package action

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/sagarc03/swiftcli"
)

// Put uploads local files into a destination container or pseudo-directory.
// args[0] is the destination and args[1:] are local files. The destination
// is created when missing, unless no local file can be uploaded. Each file is
// classified by the overwrite table:
//
//	remote missing                    -> uploaded
//	exists, no -o, content differs    -> skipped-conflict
//	exists, -o, content identical     -> skipped-identical
//	exists, -o, content differs       -> uploaded
//	exists, no -o, content identical  -> skipped-identical
//
// Results are reported in input order regardless of the number of jobs.
func (r *Runner) Put(ctx context.Context, args []string) ([]PutResult, error) {
	if len(args) < 2 {
		return nil, fmt.Errorf("%w: put needs a destination and at least one file", swiftcli.ErrInvalidArguments)
	}

	dest := swiftcli.NormalizeDir(args[0])
	if dest.IsAccount() {
		return nil, fmt.Errorf("%w: put destination must name a container", swiftcli.ErrInvalidArguments)
	}

	files := args[1:]
	results := make([]PutResult, len(files))
	pending := 0
	for i, local := range files {
		results[i] = checkLocal(dest, local)
		if results[i].Outcome != swiftcli.OutcomeError {
			pending++
		}
	}

	if pending > 0 {
		if err := r.ensureDestination(ctx, dest); err != nil {
			return nil, err
		}
	}

	g := new(errgroup.Group)
	g.SetLimit(r.jobs)
	for i := range results {
		if results[i].Outcome == swiftcli.OutcomeError {
			continue
		}
		g.Go(func() error {
			r.putOne(ctx, &results[i])
			return nil
		})
	}
	_ = g.Wait()

	if err := r.formatter.FormatPut(r.stdout, results); err != nil {
		return results, err
	}

	for i := range results {
		if failed(results[i].Outcome) {
			return results, ErrPartialFailure
		}
	}
	return results, nil
}

// ensureDestination creates dest with a directory placeholder when it does
// not exist. On a container-only path this creates the container.
func (r *Runner) ensureDestination(ctx context.Context, dest swiftcli.ObjectPath) error {
	exists, err := r.storage.CheckExist(ctx, r.sess, dest.Trim())
	if err != nil {
		return fmt.Errorf("check destination: %w", err)
	}
	if exists {
		return nil
	}

	r.logger.Debug("creating destination", "path", dest)
	if _, err := r.storage.PutDirectory(ctx, r.sess, dest); err != nil {
		return fmt.Errorf("create destination: %w", err)
	}
	return nil
}

// checkLocal builds the result for one local file. A file that cannot be
// uploaded gets the error outcome here.
func checkLocal(dest swiftcli.ObjectPath, local string) PutResult {
	res := PutResult{
		LocalPath:  local,
		RemotePath: dest.Join(filepath.Base(local)),
	}

	info, err := os.Stat(local)
	if err != nil {
		res.fail(fmt.Errorf("stat file: %w", err))
		return res
	}
	if info.IsDir() {
		res.fail(fmt.Errorf("%w: %s is a directory", swiftcli.ErrInvalidArguments, local))
	}
	return res
}

// putOne decides and performs the upload for a result prepared by checkLocal.
func (r *Runner) putOne(ctx context.Context, res *PutResult) {
	local := res.LocalPath

	exists, err := r.storage.CheckExist(ctx, r.sess, res.RemotePath)
	if err != nil {
		res.fail(err)
		return
	}

	if exists {
		identical, err := r.storage.Identical(ctx, r.sess, res.RemotePath, local)
		if err != nil {
			res.fail(err)
			return
		}

		skipped := true
		switch {
		case identical && r.overwrite:
			res.skip(swiftcli.OutcomeSkippedIdentical, ReasonIdenticalOverwrite)
		case identical:
			res.skip(swiftcli.OutcomeSkippedIdentical, ReasonIdentical)
		case !r.overwrite:
			res.skip(swiftcli.OutcomeSkippedConflict, ReasonConflict)
		default:
			skipped = false
		}
		if skipped {
			r.logger.Debug("skipped upload", "local", local, "remote", res.RemotePath, "reason", res.Reason)
			return
		}
	}

	meta, err := r.storage.PutObject(ctx, r.sess, res.RemotePath, local)
	if err != nil {
		res.fail(err)
		return
	}

	res.Outcome = swiftcli.OutcomeUploaded
	res.ETag = meta.ETag
	res.Size = meta.ContentLength
	r.logger.Debug("uploaded", "local", local, "remote", res.RemotePath, "size", res.Size)
}
