package response

import (
	"encoding/json"
	"time"
)

// Formats used by Date and DateTime.
const (
	DateFormat     = "2006-01-02"
	DateTimeFormat = time.RFC3339
)

// Resp is the JSON envelope every endpoint returns.
type Resp struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorBody `json:"error,omitempty"`
}

// ErrorBody describes a failed request.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// Date marshals as DateFormat in its own location.
type Date time.Time

// MarshalJSON implements json.Marshaler for Date.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).Format(DateFormat))
}

// DateTime marshals as DateTimeFormat, keeping its offset.
type DateTime time.Time

// MarshalJSON implements json.Marshaler for DateTime.
func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).Format(DateTimeFormat))
}

// NewDate returns nil for the zero time so optional dates render as null.
func NewDate(t time.Time) *Date {
	if t.IsZero() {
		return nil
	}
	d := Date(t)
	return &d
}

// NewDateTime returns nil for the zero time so optional timestamps render as null.
func NewDateTime(t time.Time) *DateTime {
	if t.IsZero() {
		return nil
	}
	d := DateTime(t)
	return &d
}
