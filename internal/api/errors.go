package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrUnavailable marks requests that never completed: connection refused,
// timeout, DNS failure. The caller cannot tell whether the server saw the
// request.
var ErrUnavailable = errors.New("server unavailable")

// FieldError is one entry of a validation failure list. The service emits
// either a flat {field, msg} pair or a FastAPI-style {loc, msg}; both are
// accepted.
type FieldError struct {
	Field string `json:"field,omitempty"`
	Loc   []any  `json:"loc,omitempty"`
	Msg   string `json:"msg"`
}

// String renders "field: msg", falling back to the last loc element when no
// flat field name was supplied.
func (e FieldError) String() string {
	name := e.Field
	if name == "" && len(e.Loc) > 0 {
		name = fmt.Sprint(e.Loc[len(e.Loc)-1])
	}
	if name == "" {
		return e.Msg
	}
	return name + ": " + e.Msg
}

// Detail is the failure body of the ledger service: {detail: string|[]...}.
// Exactly one branch is set; Fields non-nil means the validation-list form.
type Detail struct {
	Message string
	Fields  []FieldError
}

func (d *Detail) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		d.Message = s
		d.Fields = nil
		return nil
	}
	var fields []FieldError
	if err := json.Unmarshal(data, &fields); err == nil {
		d.Message = ""
		d.Fields = fields
		return nil
	}
	return fmt.Errorf("unrecognized detail payload: %s", data)
}

// Empty reports whether the body carried no detail at all.
func (d Detail) Empty() bool {
	return d.Message == "" && d.Fields == nil
}

// String joins the field-error list into one display string, or returns the
// plain message.
func (d Detail) String() string {
	if d.Fields != nil {
		parts := make([]string, 0, len(d.Fields))
		for _, f := range d.Fields {
			parts = append(parts, f.String())
		}
		return strings.Join(parts, "; ")
	}
	return d.Message
}

// APIError is any non-2xx response from the service.
type APIError struct {
	Status int
	Detail Detail
}

func (e *APIError) Error() string {
	if e.Detail.Empty() {
		return fmt.Sprintf("request failed with status %d", e.Status)
	}
	return fmt.Sprintf("request failed with status %d: %s", e.Status, e.Detail.String())
}

// ErrorMessage extracts a human-readable message from any error produced by
// this package, using fallback when the error carries no usable detail.
func ErrorMessage(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && !apiErr.Detail.Empty() {
		return apiErr.Detail.String()
	}
	return fallback
}
