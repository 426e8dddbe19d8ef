// Package action implements the per-action policy of swiftcli: list, get,
// put, delete, stats and save.
//
// A Runner composes the transfer operations of a swift.Client with an
// authenticated swiftcli.Session and prints results through a Formatter.
// Batch actions (list with paths, put) report one result per item, in input
// order, and return ErrPartialFailure after printing when any item failed.
//
//	runner := action.New(client, sess,
//		action.WithOverwrite(true),
//		action.WithJobs(4),
//	)
//	results, err := runner.Put(ctx, []string{"backups", "a.tar", "b.tar"})
package action
