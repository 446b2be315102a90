package infra

import (
	"errors"
	"log/slog"

	"arttoy-storefront/internal/pkg/errs"
)

type UpstreamErrorKind string

// UpstreamError carries the backend's status and its user-facing message so
// the handler layer can surface the server-provided text verbatim.
type UpstreamError struct {
	Kind    UpstreamErrorKind
	Status  int
	Message string
	err     error // wrapped low-level error
}

func (e UpstreamError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.Message + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.Message
}

func (e UpstreamError) Unwrap() error {
	return e.err
}

func WrapUpstreamErr(slogger *slog.Logger, kind UpstreamErrorKind, status int, msg string, err error) error {
	slogger.Error("Upstream error: "+msg,
		slog.String("kind", string(kind)),
		slog.Int("status", status),
	)

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return UpstreamError{Kind: kind, Status: status, Message: msg, err: err}
}

func IsKind(err error, kind UpstreamErrorKind) bool {
	var e UpstreamError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// MessageOf extracts the upstream-provided message, if any.
func MessageOf(err error) string {
	var e UpstreamError
	if errors.As(err, &e) {
		return e.Message
	}
	return ""
}

// Upstream-specific error kinds, mapped from HTTP statuses.
const (
	KindNotFound        UpstreamErrorKind = "NOT_FOUND"
	KindUnauthenticated UpstreamErrorKind = "UNAUTHENTICATED"
	KindForbidden       UpstreamErrorKind = "FORBIDDEN"
	KindConflict        UpstreamErrorKind = "CONFLICT"
	KindBadRequest      UpstreamErrorKind = "BAD_REQUEST"
	KindUnavailable     UpstreamErrorKind = "UNAVAILABLE"
)
