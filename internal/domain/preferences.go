package domain

// Preferences are the gestor's board settings.
type Preferences struct {
	AutoCancelEnabled    bool `yaml:"auto_cancel_enabled"`
	LateToleranceMinutes int  `yaml:"late_tolerance_minutes"`
	DefaultPrepTime      int  `yaml:"default_prep_time"`
	SoundAlerts          bool `yaml:"sound_alerts"`
}

// DefaultPreferences returns the settings used until the gestor saves their own.
func DefaultPreferences() Preferences {
	return Preferences{
		AutoCancelEnabled:    true,
		LateToleranceMinutes: 10,
		DefaultPrepTime:      30,
		SoundAlerts:          true,
	}
}
