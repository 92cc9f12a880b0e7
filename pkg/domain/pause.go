package domain

import "time"

// PauseRecord is a per-sender suppression window
type PauseRecord struct {
	SenderID    string
	PausedUntil time.Time
	CreatedAt   time.Time
}

// Active reports whether the window is still open at the given moment
func (p PauseRecord) Active(now time.Time) bool {
	return p.PausedUntil.After(now)
}
