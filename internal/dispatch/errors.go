package dispatch

import (
	"fmt"
	"sort"
	"strings"

	"github.com/adi1zhexen0v/erp-safari-hr/internal/flight"
)

// ErrorPayload is the structured body carried by a rejected remote call.
type ErrorPayload struct {
	NonFieldErrors []string            `json:"non_field_errors,omitempty"`
	Fields         map[string][]string `json:"fields,omitempty"`
	Error          string              `json:"error,omitempty"`
	Message        string              `json:"message,omitempty"`
	Detail         string              `json:"detail,omitempty"`
}

// CallError is returned by a Caller when the remote collaborator rejects.
type CallError struct {
	Payload ErrorPayload
	cause   error
}

func NewCallError(payload ErrorPayload, cause error) *CallError {
	return &CallError{Payload: payload, cause: cause}
}

func (e *CallError) Error() string {
	if e.cause != nil {
		return e.cause.Error()
	}
	return "remote call failed"
}

func (e *CallError) Unwrap() error { return e.cause }

// ErrMissingEntity signals a structurally invalid action/entity pair
// caught before any network traffic.
type ErrMissingEntity struct {
	error
}

func NewErrMissingEntity(kind flight.Kind) *ErrMissingEntity {
	return &ErrMissingEntity{fmt.Errorf("no entity id resolved for %s action", kind)}
}

// ExtractMessage picks the human-readable message out of an error payload
// using a fixed priority: structured non-field errors first, then any
// field error, then the generic error/message/detail keys, then the
// caller-supplied localized fallback.
func ExtractMessage(payload ErrorPayload, fallback string) string {
	for _, msg := range payload.NonFieldErrors {
		if strings.TrimSpace(msg) != "" {
			return msg
		}
	}

	// deterministic field order
	names := make([]string, 0, len(payload.Fields))
	for name := range payload.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		for _, msg := range payload.Fields[name] {
			if strings.TrimSpace(msg) != "" {
				return msg
			}
		}
	}

	for _, msg := range []string{payload.Error, payload.Message, payload.Detail} {
		if strings.TrimSpace(msg) != "" {
			return msg
		}
	}

	return fallback
}
