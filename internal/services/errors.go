package services

import (
	"strings"

	"github.com/ansel1/merry/v2"
)

var (
	ErrInputNotFound      = merry.Sentinel("input folder not found")
	ErrNoInput            = merry.Sentinel("no audio files found")
	ErrEncoderUnavailable = merry.Sentinel("encoder unavailable")
	ErrMetadataParse      = merry.Sentinel("metadata parse error")
	ErrOperationFailure   = merry.Sentinel("operation failed")
)

// Wrap tags err with the marker and replaces the message with a user-facing
// one. The marker should be one of the exported sentinels above; nil falls
// back to ErrOperationFailure. The cause stays reachable through merry.Cause.
func Wrap(marker error, message string, cause error) error {
	if marker == nil {
		marker = ErrOperationFailure
	}
	wrappers := make([]merry.Wrapper, 0, 2)
	if message = strings.TrimSpace(message); message != "" {
		wrappers = append(wrappers, merry.WithMessage(message))
	}
	if cause != nil {
		wrappers = append(wrappers, merry.WithCause(cause))
	}
	return merry.Wrap(marker, wrappers...)
}

// Message returns the text surfaced to the user for err: the user-facing
// message followed by the underlying cause, when there is one.
func Message(err error) string {
	if err == nil {
		return ""
	}
	msg := strings.TrimSpace(err.Error())
	cause := merry.Cause(err)
	if cause == nil {
		return msg
	}
	detail := strings.TrimSpace(cause.Error())
	if detail == "" || strings.Contains(msg, detail) {
		return msg
	}
	return msg + ": " + detail
}
