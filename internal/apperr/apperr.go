package apperr

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a failure.
type Kind string

const (
	CredentialMissing Kind = "credential_missing"
	TransportFailure  Kind = "transport_failure"
	UpstreamError     Kind = "upstream_error"
	DecodeError       Kind = "decode_error"
	InvalidEntryID    Kind = "invalid_entry_id"
	DownloadFailed    Kind = "download_failed"
	Filesystem        Kind = "filesystem"

	// Unknown is reported by KindOf for errors that carry no kind.
	Unknown Kind = "unknown"
)

// Error is the structured error carried across component boundaries.
type Error struct {
	Kind   Kind
	Op     string   // operation or endpoint that failed
	Status int      // HTTP status for UpstreamError and DownloadFailed
	Body   string   // raw upstream body for UpstreamError
	Issues []string // decode/validation issues for DecodeError
	Err    error    // underlying cause
}

func (e *Error) Error() string {
	var b strings.Builder
	if e.Op != "" {
		b.WriteString(e.Op)
		b.WriteString(": ")
	}
	switch e.Kind {
	case CredentialMissing:
		b.WriteString("no API key provided and none found in environment variables")
	case TransportFailure:
		b.WriteString("request failed")
	case UpstreamError:
		fmt.Fprintf(&b, "API request failed with status %d", e.Status)
		if body := strings.TrimSpace(e.Body); body != "" {
			b.WriteString(": ")
			b.WriteString(body)
		}
	case DecodeError:
		b.WriteString("unexpected response shape")
		if len(e.Issues) > 0 {
			b.WriteString(" (")
			b.WriteString(strings.Join(e.Issues, "; "))
			b.WriteString(")")
		}
	case InvalidEntryID:
		b.WriteString("invalid entry id")
	case DownloadFailed:
		fmt.Fprintf(&b, "download returned status %d", e.Status)
	case Filesystem:
		b.WriteString("filesystem error")
	default:
		b.WriteString(string(e.Kind))
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Err }

// New returns an *Error of the given kind wrapping cause.
func New(kind Kind, op string, cause error) *Error {
	return &Error{Kind: kind, Op: op, Err: cause}
}

// Upstream returns an UpstreamError carrying the raw status and body.
func Upstream(op string, status int, body []byte) *Error {
	return &Error{Kind: UpstreamError, Op: op, Status: status, Body: string(body)}
}

// Download returns a DownloadFailed error for a non-success status.
func Download(op string, status int) *Error {
	return &Error{Kind: DownloadFailed, Op: op, Status: status}
}

// Decode returns a DecodeError listing the offending issues.
func Decode(op string, issues []string, cause error) *Error {
	return &Error{Kind: DecodeError, Op: op, Issues: issues, Err: cause}
}

// KindOf returns the kind of the first *Error in err's chain, or Unknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Unknown
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
