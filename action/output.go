package action

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"

	"github.com/sagarc03/swiftcli"
)

// Output formats.
const (
	FormatHuman = "human"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Formatter formats results for output.
type Formatter interface {
	FormatAccount(w io.Writer, listing *AccountListing) error
	FormatList(w io.Writer, results []ListResult) error
	FormatPut(w io.Writer, results []PutResult) error
	FormatGet(w io.Writer, result *GetResult) error
	FormatDelete(w io.Writer, result *DeleteResult) error
	FormatStats(w io.Writer, result *StatsResult) error
	FormatSave(w io.Writer, result *SaveResult) error
	FormatError(w io.Writer, err error) error
}

// NewFormatter returns the formatter for format. Quiet only affects the
// human formatter.
func NewFormatter(format string, quiet bool) (Formatter, error) {
	switch strings.ToLower(format) {
	case "", FormatHuman:
		return &HumanFormatter{Quiet: quiet}, nil
	case FormatJSON:
		return &JSONFormatter{}, nil
	case FormatYAML:
		return &YAMLFormatter{}, nil
	default:
		return nil, fmt.Errorf("%w: unknown output format %q", swiftcli.ErrInvalidArguments, format)
	}
}

// HumanFormatter outputs human-readable text, one line per item.
type HumanFormatter struct {
	Quiet bool
}

// FormatAccount prints the listing exactly as the service returned it.
func (f *HumanFormatter) FormatAccount(w io.Writer, listing *AccountListing) error {
	_, err := w.Write(listing.Raw)
	return err
}

// FormatList formats list results as human-readable text.
func (f *HumanFormatter) FormatList(w io.Writer, results []ListResult) error {
	for i := range results {
		r := &results[i]
		switch {
		case r.Outcome == swiftcli.OutcomeNotFound:
			_, _ = fmt.Fprintf(w, "%s does not exist\n", r.Path)
		case r.Err != nil:
			if r.StatusCode != 0 {
				_, _ = fmt.Fprintf(w, "%s: HTTP %d\n", r.Path, r.StatusCode)
				if r.Body != "" {
					_, _ = io.WriteString(w, r.Body)
					if !strings.HasSuffix(r.Body, "\n") {
						_, _ = io.WriteString(w, "\n")
					}
				}
			} else {
				_, _ = fmt.Fprintf(w, "Error: %s - %v\n", r.Path, r.Err)
			}
		case r.Kind == KindObject:
			m := r.Object
			_, _ = fmt.Fprintf(w, "%s  %s  %s  %s  %s\n",
				r.Path,
				humanize.IBytes(uint64(max(m.ContentLength, 0))), //#nosec G115 -- clamped to non-negative
				m.ContentType,
				m.ETag,
				m.LastModified,
			)
		default:
			if len(results) > 1 && !f.Quiet {
				_, _ = fmt.Fprintf(w, "%s:\n", r.Path)
			}
			_, _ = w.Write(r.Raw)
		}
	}
	return nil
}

// FormatPut formats put results, one line per file.
func (f *HumanFormatter) FormatPut(w io.Writer, results []PutResult) error {
	for i := range results {
		r := &results[i]
		switch r.Outcome {
		case swiftcli.OutcomeError:
			_, _ = fmt.Fprintf(w, "%s: %s -> %s: %v\n", r.Outcome, r.LocalPath, r.RemotePath, r.Err)
		case swiftcli.OutcomeUploaded:
			if !f.Quiet {
				_, _ = fmt.Fprintf(w, "%s: %s -> %s (%s)\n", r.Outcome, r.LocalPath, r.RemotePath, humanize.IBytes(uint64(max(r.Size, 0)))) //#nosec G115 -- clamped to non-negative
			}
		default:
			if !f.Quiet {
				_, _ = fmt.Fprintf(w, "%s: %s -> %s (%s)\n", r.Outcome, r.LocalPath, r.RemotePath, r.Reason)
			}
		}
	}
	return nil
}

// FormatGet formats a download result.
func (f *HumanFormatter) FormatGet(w io.Writer, result *GetResult) error {
	if f.Quiet || result.LocalPath == Stdout {
		return nil
	}
	_, _ = fmt.Fprintf(w, "Downloaded: %s -> %s (%s)\n", result.RemotePath, result.LocalPath, humanize.IBytes(uint64(max(result.Size, 0)))) //#nosec G115 -- clamped to non-negative
	return nil
}

// FormatDelete formats a delete result.
func (f *HumanFormatter) FormatDelete(w io.Writer, result *DeleteResult) error {
	if !f.Quiet {
		_, _ = fmt.Fprintf(w, "Deleted: %s\n", result.Path)
	}
	return nil
}

// FormatStats prints the account headers verbatim, sorted by name.
func (f *HumanFormatter) FormatStats(w io.Writer, result *StatsResult) error {
	for _, k := range result.Keys() {
		_, _ = fmt.Fprintf(w, "%s: %s\n", k, result.Headers[k])
	}
	return nil
}

// FormatSave formats a save result.
func (f *HumanFormatter) FormatSave(w io.Writer, result *SaveResult) error {
	if !f.Quiet {
		_, _ = fmt.Fprintf(w, "Credentials for %s saved to %s\n", result.User, result.Path)
	}
	return nil
}

// FormatError formats an error as human-readable text.
func (f *HumanFormatter) FormatError(w io.Writer, err error) error {
	_, _ = fmt.Fprintf(w, "Error: %v\n", err)
	return nil
}

type listView struct {
	Results []ListResult `json:"results" yaml:"results"`
}

type putView struct {
	Results []PutResult `json:"results" yaml:"results"`
}

type errorView struct {
	Error    string `json:"error" yaml:"error"`
	ExitCode int    `json:"exit_code" yaml:"exit_code"`
}

func newErrorView(err error) errorView {
	return errorView{Error: err.Error(), ExitCode: swiftcli.ExitCode(err)}
}

// JSONFormatter outputs indented JSON.
type JSONFormatter struct{}

// FormatAccount formats the account listing as JSON.
func (f *JSONFormatter) FormatAccount(w io.Writer, listing *AccountListing) error {
	return writeJSON(w, listing)
}

// FormatList formats list results as JSON.
func (f *JSONFormatter) FormatList(w io.Writer, results []ListResult) error {
	return writeJSON(w, listView{results})
}

// FormatPut formats put results as JSON.
func (f *JSONFormatter) FormatPut(w io.Writer, results []PutResult) error {
	return writeJSON(w, putView{results})
}

// FormatGet formats a download result as JSON.
func (f *JSONFormatter) FormatGet(w io.Writer, result *GetResult) error {
	return writeJSON(w, result)
}

// FormatDelete formats a delete result as JSON.
func (f *JSONFormatter) FormatDelete(w io.Writer, result *DeleteResult) error {
	return writeJSON(w, result)
}

// FormatStats formats account headers as JSON.
func (f *JSONFormatter) FormatStats(w io.Writer, result *StatsResult) error {
	return writeJSON(w, result)
}

// FormatSave formats a save result as JSON.
func (f *JSONFormatter) FormatSave(w io.Writer, result *SaveResult) error {
	return writeJSON(w, result)
}

// FormatError formats an error as JSON.
func (f *JSONFormatter) FormatError(w io.Writer, err error) error {
	return writeJSON(w, newErrorView(err))
}

// YAMLFormatter outputs YAML documents.
type YAMLFormatter struct{}

// FormatAccount formats the account listing as YAML.
func (f *YAMLFormatter) FormatAccount(w io.Writer, listing *AccountListing) error {
	return writeYAML(w, listing)
}

// FormatList formats list results as YAML.
func (f *YAMLFormatter) FormatList(w io.Writer, results []ListResult) error {
	return writeYAML(w, listView{results})
}

// FormatPut formats put results as YAML.
func (f *YAMLFormatter) FormatPut(w io.Writer, results []PutResult) error {
	return writeYAML(w, putView{results})
}

// FormatGet formats a download result as YAML.
func (f *YAMLFormatter) FormatGet(w io.Writer, result *GetResult) error {
	return writeYAML(w, result)
}

// FormatDelete formats a delete result as YAML.
func (f *YAMLFormatter) FormatDelete(w io.Writer, result *DeleteResult) error {
	return writeYAML(w, result)
}

// FormatStats formats account headers as YAML.
func (f *YAMLFormatter) FormatStats(w io.Writer, result *StatsResult) error {
	return writeYAML(w, result)
}

// FormatSave formats a save result as YAML.
func (f *YAMLFormatter) FormatSave(w io.Writer, result *SaveResult) error {
	return writeYAML(w, result)
}

// FormatError formats an error as YAML.
func (f *YAMLFormatter) FormatError(w io.Writer, err error) error {
	return writeYAML(w, newErrorView(err))
}

// writeJSON writes a value as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeYAML writes a value as a YAML document.
func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
