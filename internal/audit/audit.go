// Package audit records one JSONL event per rgsweep invocation under the
// user's home directory. Audit writes are best-effort; a failure to record
// never affects the run itself.
package audit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Event is one audit log line.
type Event struct {
	Timestamp     string   `json:"timestamp"`
	Args          []string `json:"args"`
	Result        string   `json:"result"`
	ExitCode      int      `json:"exitCode"`
	DurationMs    int64    `json:"durationMs"`
	CorrelationID string   `json:"correlationId"`
}

// BuildEvent assembles an audit event for the finished invocation.
func BuildEvent(args []string, result string, exitCode int, duration time.Duration) Event {
	return Event{
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
		Args:          args,
		Result:        result,
		ExitCode:      exitCode,
		DurationMs:    duration.Milliseconds(),
		CorrelationID: fmt.Sprintf("%d", time.Now().UTC().UnixNano()),
	}
}

// Write appends the event to the user audit log, creating the directory on
// first use.
func Write(event Event) error {
	path, err := userAuditPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}

	line, err := json.Marshal(event)
	if err != nil {
		return err
	}

	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	defer file.Close()

	_, err = file.Write(append(line, '\n'))
	return err
}

func userAuditPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".rgsweep", "audit.log"), nil
}
