package swift

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/sagarc03/swiftcli"
)

// Authenticate performs the v1 auth handshake: one GET to creds.AuthURL with
// the user and key headers. Any status other than 200, or a 200 without
// storage URL and token headers, fails with an *AuthError.
func (c *Client) Authenticate(ctx context.Context, creds swiftcli.Credentials) (swiftcli.Session, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, creds.AuthURL, http.NoBody)
	if err != nil {
		return swiftcli.Session{}, fmt.Errorf("create auth request: %w", err)
	}
	req.Header.Set(HeaderAuthUser, creds.User)
	req.Header.Set(HeaderAuthKey, creds.Key)
	c.tag(req)

	resp, err := c.do(req, "auth")
	if err != nil {
		return swiftcli.Session{}, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return swiftcli.Session{}, &AuthError{
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}
	_, _ = io.Copy(io.Discard, resp.Body)

	sess := swiftcli.Session{
		StorageURL: resp.Header.Get(HeaderStorageURL),
		Token:      resp.Header.Get(HeaderStorageToken),
	}
	if sess.StorageURL == "" {
		return swiftcli.Session{}, &AuthError{StatusCode: resp.StatusCode, Reason: "response has no " + HeaderStorageURL + " header"}
	}
	if sess.Token == "" {
		return swiftcli.Session{}, &AuthError{StatusCode: resp.StatusCode, Reason: "response has no " + HeaderStorageToken + " header"}
	}

	c.logger.Debug("authenticated", "storage_url", sess.StorageURL, "trans_id_extra", c.transID)
	return sess, nil
}
