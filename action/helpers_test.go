package action_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sagarc03/swiftcli"
	"github.com/sagarc03/swiftcli/action"
	"github.com/sagarc03/swiftcli/swift"
)

// newStatusServer answers "METHOD /path" with a fixed status and body.
// Unknown requests get 404.
func newStatusServer(t *testing.T, statuses map[string]int, bodies map[string]string) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Method + " " + r.URL.Path
		body, hasBody := bodies[key]
		code, ok := statuses[key]
		if !ok {
			code = http.StatusNotFound
			if hasBody {
				code = http.StatusOK
			}
		}
		w.WriteHeader(code)
		if hasBody && r.Method != http.MethodHead {
			_, _ = io.WriteString(w, body)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

// newStubRunner returns a runner whose session points at srv under /v1.
func newStubRunner(t *testing.T, srv *httptest.Server, opts ...action.Option) *action.Runner {
	t.Helper()

	sess := swiftcli.Session{StorageURL: srv.URL + "/v1", Token: "tok"}
	opts = append([]action.Option{action.WithOutput(io.Discard, io.Discard)}, opts...)
	return action.New(swift.New(), sess, opts...)
}
