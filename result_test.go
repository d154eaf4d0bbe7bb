package hadatetime_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	hadatetime "github.com/EnvillePlease/openwebui-ha-current-date-time"
)

func TestResult_Marshal(t *testing.T) {
	out, err := hadatetime.NewResult("2024-01-01 12:00:00", "").Marshal()
	require.NoError(t, err)
	assert.Equal(t, `{"current_date_time":"2024-01-01 12:00:00"}`, string(out))

	out, err = hadatetime.NewResult("2024-01-01 12:00:00", "Europe/London").Marshal()
	require.NoError(t, err)
	assert.Equal(t, `{"current_date_time":"2024-01-01 12:00:00","timezone":"Europe/London"}`, string(out))

	out, err = hadatetime.ErrorResult("HA unreachable").Marshal()
	require.NoError(t, err)
	assert.Equal(t, `{"error":"HA unreachable"}`, string(out))
}

func TestResult_MarshalIndent(t *testing.T) {
	out, err := hadatetime.NewResult("2024-01-01 12:00:00", "Europe/London").MarshalIndent()
	require.NoError(t, err)
	want := "{\n" +
		"  \"current_date_time\": \"2024-01-01 12:00:00\",\n" +
		"  \"timezone\": \"Europe/London\"\n" +
		"}"
	assert.Equal(t, want, string(out))
}
