package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrViewStateNotFound is returned when no view state is stored for a session.
var ErrViewStateNotFound = errors.New("view state not found")

// FetchError reports a failed dashboard load.
type FetchError struct {
	// StatusCode is the backend HTTP status, or 0 when the request never got a usable response.
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("Dashboard request failed: %v", e.Err)
	}
	return fmt.Sprintf("Dashboard request failed: %d", e.StatusCode)
}

func (e *FetchError) Unwrap() error { return e.Err }

// RequestError reports a failed email report submission. Message is user-facing.
type RequestError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *RequestError) Error() string {
	return e.Message
}

func (e *RequestError) Unwrap() error { return e.Err }

type errorBody struct {
	Detail json.RawMessage `json:"detail"`
}

type validationDetail struct {
	Msg string `json:"msg"`
}

// parseErrorDetail extracts the user-facing "detail" of a backend error body.
// It reports false when the body is empty, not JSON, or carries no usable detail.
func parseErrorDetail(body []byte) (string, bool) {
	var parsed errorBody
	if len(body) == 0 || json.Unmarshal(body, &parsed) != nil || len(parsed.Detail) == 0 {
		return "", false
	}

	var detail string
	if err := json.Unmarshal(parsed.Detail, &detail); err == nil {
		return detail, detail != ""
	}

	var details []validationDetail
	if err := json.Unmarshal(parsed.Detail, &details); err == nil {
		msgs := make([]string, 0, len(details))
		for _, d := range details {
			if d.Msg != "" {
				msgs = append(msgs, d.Msg)
			}
		}
		if len(msgs) > 0 {
			return strings.Join(msgs, "; "), true
		}
	}

	return "", false
}
