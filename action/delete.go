package action

import (
	"context"
	"fmt"

	"github.com/sagarc03/swiftcli"
)

// Delete removes exactly one object or empty container.
func (r *Runner) Delete(ctx context.Context, args []string) (*DeleteResult, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("%w: delete takes exactly one path, got %d", swiftcli.ErrInvalidArguments, len(args))
	}

	p := swiftcli.NormalizePath(args[0]).Trim()
	if p.IsAccount() {
		return nil, fmt.Errorf("%w: delete needs a container or object path", swiftcli.ErrInvalidArguments)
	}

	if _, err := r.storage.DeleteObject(ctx, r.sess, p); err != nil {
		return nil, fmt.Errorf("delete %s: %w", p, err)
	}

	result := &DeleteResult{Path: p, Deleted: true}
	return result, r.formatter.FormatDelete(r.stdout, result)
}
