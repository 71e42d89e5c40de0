package models

// SensorReading is one snapshot of the six room sensors. Values are
// passed through as received; out-of-range inputs (e.g. hour=30) are
// accepted but semantically undefined.
type SensorReading struct {
	Hour          int     `json:"hour"`           // 0..23
	DayOfWeek     int     `json:"day_of_week"`    // 0=Mon .. 6=Sun
	AmbientLight  float64 `json:"ambient_light"`  // lux
	PIRMotion     bool    `json:"pir_motion"`
	PhonePresence bool    `json:"phone_presence"`
	Temperature   float64 `json:"temperature"` // °C
}
