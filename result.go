package hadatetime

import "encoding/json"

type Result struct {
	// Pointer so an empty sensor state still renders, while error results omit the key
	CurrentDateTime *string `json:"current_date_time,omitempty"`
	Timezone        string  `json:"timezone,omitempty"`
	Error           string  `json:"error,omitempty"`
}

// Create a successful result
func NewResult(dateTime, timezone string) *Result {
	return &Result{CurrentDateTime: &dateTime, Timezone: timezone}
}

// Create an error result
func ErrorResult(msg string) *Result {
	return &Result{Error: msg}
}

// Render as compact JSON
func (r *Result) Marshal() ([]byte, error) {
	return json.Marshal(r)
}

// Render as indented JSON
func (r *Result) MarshalIndent() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}
