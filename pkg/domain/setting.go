package domain

import "time"

// setting keys persisted in the settings table
const (
	SettingAIActive    = "ai_active"
	SettingDebugNumber = "debug_number"
)

// Setting represents a key-value configuration setting
type Setting struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}

// Settings is the runtime configuration snapshot taken once per inbound message
type Settings struct {
	AIActive    bool
	DebugSender string // empty when debug mode is off
	AdminSender string
}

// DebugMode reports whether processing is restricted to a single sender
func (s Settings) DebugMode() bool {
	return s.DebugSender != ""
}
