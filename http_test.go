package hadatetime

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate([]byte("short"), 100))
	assert.Equal(t, "abc...", truncate([]byte("abcdef"), 3))
}

func TestStatusError(t *testing.T) {
	err := &StatusError{StatusCode: 404, Body: `{"message":"Entity not found."}`}
	assert.Equal(t, `server returned 404: {"message":"Entity not found."}`, err.Error())
}

func TestIsDecodeError(t *testing.T) {
	var state SensorState

	err := json.Unmarshal([]byte("date & time"), &state)
	assert.True(t, isDecodeError(fmt.Errorf("failed to decode response: %w", err)))

	err = json.Unmarshal([]byte(`{"state":12}`), &state)
	assert.True(t, isDecodeError(err))

	assert.False(t, isDecodeError(errors.New("connection refused")))
}

func TestIsTimeout(t *testing.T) {
	wrapped := fmt.Errorf("request failed: %w", &url.Error{
		Op:  "Get",
		URL: "http://homeassistant.local:8123",
		Err: context.DeadlineExceeded,
	})
	assert.True(t, isTimeout(wrapped))
	assert.False(t, isTimeout(errors.New("connection refused")))
}
