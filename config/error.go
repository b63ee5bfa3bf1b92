package config

import "fmt"

// Error represents a failure while loading or validating configuration.
type Error struct {
	reason string
}

func (e Error) Error() string {
	return fmt.Sprintf("config: %s", e.reason)
}
