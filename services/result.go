package services

import (
	"fmt"
	"time"
)

// Result is the outcome of a mutating operation. Success false is the
// sole failure signal for validation problems; errors are reserved for
// infrastructure failures (store unreachable).
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

func ok(message string) Result {
	return Result{Success: true, Message: message}
}

func fail(format string, args ...interface{}) Result {
	return Result{Success: false, Message: fmt.Sprintf(format, args...)}
}

// nowISO returns the current time as an ISO-8601 string, the date format
// used throughout the persisted tree.
func nowISO() string {
	return time.Now().UTC().Format(time.RFC3339)
}
