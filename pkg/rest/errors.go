package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Kind classifies a request failure so callers can decide which failures
// are user-actionable without parsing status codes themselves.
type Kind string

// Failure kinds.
const (
	// KindTransport covers failures before any response arrived:
	// connection refused, DNS, timeout, cancellation.
	KindTransport Kind = "transport"

	// KindValidation covers 400 and 422 responses.
	KindValidation Kind = "validation"

	// KindNotFound covers 404 responses.
	KindNotFound Kind = "not_found"

	// KindClient covers all other 4xx responses.
	KindClient Kind = "client"

	// KindServer covers 5xx responses.
	KindServer Kind = "server"

	// KindDecode covers 2xx responses whose body could not be decoded.
	KindDecode Kind = "decode"
)

// Error is the failure result of one request. Status is zero when no
// response was received. Code and Message carry the server error body
// ({"error": ..., "message": ...}) when one was returned.
type Error struct {
	Kind    Kind
	Status  int
	Code    string
	Message string

	err error
}

func (e *Error) Error() string {
	switch {
	case e.err != nil:
		return fmt.Sprintf("%s: %v", e.Kind, e.err)
	case e.Message != "":
		return fmt.Sprintf("%s (%d): %s", e.Kind, e.Status, e.Message)
	case e.Code != "":
		return fmt.Sprintf("%s (%d): %s", e.Kind, e.Status, e.Code)
	default:
		return fmt.Sprintf("%s (%d)", e.Kind, e.Status)
	}
}

func (e *Error) Unwrap() error {
	return e.err
}

// KindOf returns the failure kind of err, or an empty Kind when err
// is not a rest error.
func KindOf(err error) Kind {
	var re *Error
	if errors.As(err, &re) {
		return re.Kind
	}
	return ""
}

// IsNotFound reports whether err is a 404 failure.
func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}

// IsValidation reports whether err is a 400/422 failure.
func IsValidation(err error) bool {
	return KindOf(err) == KindValidation
}

func kindForStatus(status int) Kind {
	switch {
	case status == http.StatusNotFound:
		return KindNotFound
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		return KindValidation
	case status >= 500:
		return KindServer
	default:
		return KindClient
	}
}

// errorBody is the error response shape the backend returns.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// errorFromResponse builds an Error from a non-2xx response. The body is
// decoded as {"error", "message"} when possible; otherwise the raw text
// is kept as the message.
func errorFromResponse(resp *http.Response) *Error {
	e := &Error{
		Kind:   kindForStatus(resp.StatusCode),
		Status: resp.StatusCode,
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil || len(raw) == 0 {
		return e
	}

	var body errorBody
	if jsonErr := json.Unmarshal(raw, &body); jsonErr == nil && (body.Error != "" || body.Message != "") {
		e.Code = body.Error
		e.Message = body.Message
		return e
	}

	e.Message = strings.TrimSpace(string(raw))
	return e
}

func transportError(err error) *Error {
	return &Error{Kind: KindTransport, err: err}
}

func decodeError(err error) *Error {
	return &Error{Kind: KindDecode, err: err}
}
