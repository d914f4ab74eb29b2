package lateorders

import "time"

// SetNow replaces the monitor clock.
func SetNow(m *Monitor, now func() time.Time) { m.now = now }
