// File: internal/services/reply/config.go
package reply

import (
	"fmt"
	"time"
)

type Config struct {
	// HistoryWindow is the number of prior turns included in the prompt.
	HistoryWindow int

	// Timeout bounds the completion call.
	Timeout time.Duration
}

func (c *Config) Validate() error {
	if c.HistoryWindow < 0 {
		return fmt.Errorf("history_window cannot be negative")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	return nil
}

func DefaultConfig() *Config {
	return &Config{
		HistoryWindow: 6,
		Timeout:       60 * time.Second,
	}
}
