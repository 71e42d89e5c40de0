package models

// Preset is a named, fixed sensor vector used to drive deterministic
// demo scenarios. ExpectedLabel is what the shipped model predicts for
// the reading; the startup self-check verifies it.
type Preset struct {
	Name          string        `json:"name"`
	DisplayName   string        `json:"display_name"`
	Reading       SensorReading `json:"reading"`
	ExpectedLabel Label         `json:"expected_label"`
}

// Presets is the fixed carousel order. The readings mirror the demo
// scenarios the model was validated against during export.
var Presets = []Preset{
	{
		Name:          "empty",
		DisplayName:   "Late Night (Empty)",
		Reading:       SensorReading{Hour: 2, DayOfWeek: 1, AmbientLight: 15, PIRMotion: false, PhonePresence: false, Temperature: 20.0},
		ExpectedLabel: LabelEmpty,
	},
	{
		Name:          "morning",
		DisplayName:   "Morning Class (Occupied)",
		Reading:       SensorReading{Hour: 9, DayOfWeek: 2, AmbientLight: 550, PIRMotion: true, PhonePresence: true, Temperature: 23.0},
		ExpectedLabel: LabelOccupied,
	},
	{
		Name:          "evening",
		DisplayName:   "Evening Study (Occupied)",
		Reading:       SensorReading{Hour: 20, DayOfWeek: 3, AmbientLight: 600, PIRMotion: true, PhonePresence: true, Temperature: 23.5},
		ExpectedLabel: LabelOccupied,
	},
	{
		Name:          "weekend",
		DisplayName:   "Weekend Morning (Empty)",
		Reading:       SensorReading{Hour: 8, DayOfWeek: 5, AmbientLight: 200, PIRMotion: false, PhonePresence: false, Temperature: 20.5},
		ExpectedLabel: LabelEmpty,
	},
}

// PresetByName returns the preset with the given name, or nil.
func PresetByName(name string) *Preset {
	for i := range Presets {
		if Presets[i].Name == name {
			return &Presets[i]
		}
	}
	return nil
}
