package action

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/sagarc03/swiftcli"
	"github.com/sagarc03/swiftcli/swift"
)

// ListAccount prints the container listing of the account. An empty account
// prints nothing.
func (r *Runner) ListAccount(ctx context.Context) (*AccountListing, error) {
	body, _, err := r.storage.List(ctx, r.sess, "/")
	if err != nil {
		return nil, fmt.Errorf("list account: %w", err)
	}

	listing := &AccountListing{
		Containers: splitNames(body),
		Raw:        body,
	}
	if listing.Containers == nil {
		listing.Containers = []string{}
	}
	return listing, r.formatter.FormatAccount(r.stdout, listing)
}

// List lists each path: a container prints its object names, an object prints
// its metadata and a missing path is reported as not found. Without paths it
// lists the account. Every path is reported; ErrPartialFailure is returned
// when any of them was missing or failed.
func (r *Runner) List(ctx context.Context, paths []string) ([]ListResult, error) {
	if len(paths) == 0 {
		_, err := r.ListAccount(ctx)
		return nil, err
	}

	results := make([]ListResult, len(paths))
	for i, p := range paths {
		results[i] = r.listOne(ctx, swiftcli.NormalizePath(p))
	}

	if err := r.formatter.FormatList(r.stdout, results); err != nil {
		return results, err
	}

	for i := range results {
		if failed(results[i].Outcome) {
			return results, ErrPartialFailure
		}
	}
	return results, nil
}

func (r *Runner) listOne(ctx context.Context, path swiftcli.ObjectPath) ListResult {
	res := ListResult{Path: path}

	if path.IsAccount() {
		res.fail(fmt.Errorf("%w: empty path", swiftcli.ErrInvalidArguments))
		return res
	}

	meta, err := r.storage.GetInfo(ctx, r.sess, path)
	if err != nil {
		res.fail(err)
		return res
	}
	res.StatusCode = meta.StatusCode

	switch {
	case meta.StatusCode == http.StatusNoContent,
		meta.StatusCode == http.StatusOK && path.IsContainer():
		body, _, err := r.storage.List(ctx, r.sess, path.Trim())
		if err != nil {
			res.fail(err)
			res.StatusCode = 0
			var apiErr *swift.APIError
			if errors.As(err, &apiErr) {
				res.StatusCode = apiErr.StatusCode
				res.Body = apiErr.Body
			}
			return res
		}
		res.Outcome = swiftcli.OutcomeListed
		res.Kind = KindContainer
		res.Names = splitNames(body)
		res.Raw = body

	case meta.StatusCode == http.StatusOK:
		res.Outcome = swiftcli.OutcomeListed
		res.Kind = KindObject
		res.Object = meta

	case meta.StatusCode == http.StatusNotFound:
		res.Outcome = swiftcli.OutcomeNotFound

	default:
		res.fail(fmt.Errorf("%w: HTTP %d", swiftcli.ErrUnexpectedStatus, meta.StatusCode))
		// HEAD carries no body; fetch it so the service's message is shown.
		var apiErr *swift.APIError
		if _, _, err := r.storage.List(ctx, r.sess, path); errors.As(err, &apiErr) {
			res.Body = apiErr.Body
		}
	}

	r.logger.Debug("listed path", "path", path, "status", res.StatusCode, "outcome", res.Outcome)
	return res
}
