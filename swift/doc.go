// Package swift implements the Swift v1 protocol used by swiftcli: the auth
// handshake, response interpretation, content identity checks and the single
// request transfer operations.
//
// # Basic Usage
//
//	client := swift.New(swift.WithTimeout(30 * time.Second))
//
//	sess, err := client.Authenticate(ctx, creds)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	meta, err := client.PutObject(ctx, sess, swiftcli.NormalizePath("photos/cat.jpg"), "./cat.jpg")
//
// Every transfer operation takes the Session explicitly and issues exactly one
// HTTP request (Identical issues one HEAD and reads the local file). Nothing is
// retried. Unexpected status codes come back as *APIError carrying the raw
// status code and body.
package swift
