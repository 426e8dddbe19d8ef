package action

import (
	"context"
	"fmt"
)

// Stats prints the X-Account-* headers of the account.
func (r *Runner) Stats(ctx context.Context) (*StatsResult, error) {
	meta, err := r.storage.Account(ctx, r.sess)
	if err != nil {
		return nil, fmt.Errorf("account stats: %w", err)
	}

	result := &StatsResult{Headers: meta.AccountHeaders}
	return result, r.formatter.FormatStats(r.stdout, result)
}
