package lib

import (
	"github.com/google/uuid"
)

// NewLaunchID generates a UUID version 4 string (RFC 4122) identifying one
// launch of the headless client in log output.
func NewLaunchID() string {
	return uuid.NewString()
}
