package config

import (
	"time"
)

// GetDelay returns the inter-item delay as time.Duration
func (s *Settings) GetDelay() time.Duration {
	if s.DelaySeconds <= 0 {
		return 0
	}
	return time.Duration(s.DelaySeconds) * time.Second
}
