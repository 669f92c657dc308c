package audit

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildEvent(t *testing.T) {
	args := []string{"rgsweep", "--dry-run"}
	event := BuildEvent(args, "success", 0, 1500*time.Millisecond)

	assert.Equal(t, args, event.Args)
	assert.Equal(t, "success", event.Result)
	assert.Equal(t, 0, event.ExitCode)
	assert.Equal(t, int64(1500), event.DurationMs)
	assert.NotEmpty(t, event.CorrelationID)

	_, err := time.Parse(time.RFC3339, event.Timestamp)
	assert.NoError(t, err)
}

func TestEventMarshalsToOneJSONObject(t *testing.T) {
	event := BuildEvent([]string{"rgsweep"}, "failure", 1, time.Second)

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var decoded Event
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, event.Result, decoded.Result)
	assert.Equal(t, event.ExitCode, decoded.ExitCode)
}
