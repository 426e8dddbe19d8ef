package swift

import (
	"net/http"
	"sort"
	"strings"
)

// ResponseMetadata is the interpreted header set of one response.
type ResponseMetadata struct {
	StatusCode     int               `json:"status_code" yaml:"status_code"`
	ETag           string            `json:"etag,omitempty" yaml:"etag,omitempty"`
	ContentType    string            `json:"content_type,omitempty" yaml:"content_type,omitempty"`
	ContentLength  int64             `json:"content_length" yaml:"content_length"`
	LastModified   string            `json:"last_modified,omitempty" yaml:"last_modified,omitempty"`
	AccountHeaders map[string]string `json:"account_headers,omitempty" yaml:"account_headers,omitempty"`
	Header         http.Header       `json:"-" yaml:"-"`
}

// HasETag reports whether the response carried an Etag.
func (m *ResponseMetadata) HasETag() bool {
	return m.ETag != ""
}

// IsLargeObject reports whether the response describes a DLO or SLO manifest,
// whose Etag is not the MD5 of the content.
func (m *ResponseMetadata) IsLargeObject() bool {
	if m.Header == nil {
		return false
	}
	if m.Header.Get("X-Object-Manifest") != "" {
		return true
	}
	return strings.EqualFold(m.Header.Get("X-Static-Large-Object"), "true")
}

// ParseResponse interprets the status line and headers of resp.
// The body is not touched.
func ParseResponse(resp *http.Response) *ResponseMetadata {
	etag, _ := ParseIdentity(resp.Header)
	return &ResponseMetadata{
		StatusCode:     ParseCode(resp),
		ETag:           etag,
		ContentType:    resp.Header.Get("Content-Type"),
		ContentLength:  resp.ContentLength,
		LastModified:   resp.Header.Get("Last-Modified"),
		AccountHeaders: ParseAccountUsage(resp.Header),
		Header:         resp.Header.Clone(),
	}
}

// ParseCode returns the numeric status code.
func ParseCode(resp *http.Response) int {
	return resp.StatusCode
}

// ParseIdentity returns the object's content fingerprint from the Etag header,
// lowercased and with surrounding quotes and whitespace removed.
func ParseIdentity(h http.Header) (string, bool) {
	etag := strings.TrimSpace(h.Get(HeaderEtag))
	etag = strings.Trim(etag, `"`)
	if etag == "" {
		return "", false
	}
	return strings.ToLower(etag), true
}

// ParseAccountUsage returns every header whose name starts with X-Account.
// Multiple values are joined with ", ".
func ParseAccountUsage(h http.Header) map[string]string {
	usage := make(map[string]string)
	prefix := http.CanonicalHeaderKey(AccountHeaderPrefix)
	for name, values := range h {
		if !strings.HasPrefix(http.CanonicalHeaderKey(name), prefix) {
			continue
		}
		trimmed := make([]string, len(values))
		for i, v := range values {
			trimmed[i] = strings.TrimSpace(v)
		}
		usage[http.CanonicalHeaderKey(name)] = strings.Join(trimmed, ", ")
	}
	return usage
}

// SortedKeys returns the keys of m in lexical order.
func SortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
