package classifier

import "edgenudge/internal/models"

// FeatureOrder is the single source of truth for the input vector
// layout. It must match the order used when the model was trained; a
// mismatch silently produces wrong predictions with no runtime error,
// which is why SelfCheck runs against the shipped artifact at startup.
var FeatureOrder = [...]string{
	"hour",
	"day_of_week",
	"ambient_light",
	"pir_motion",
	"phone_presence",
	"temperature",
}

// NumFeatures is the fixed input width of the classifier.
const NumFeatures = 6

// Vector builds the model input from a reading, in FeatureOrder,
// coercing the boolean sensors to 0/1.
func Vector(r models.SensorReading) []float32 {
	return []float32{
		float32(r.Hour),
		float32(r.DayOfWeek),
		float32(r.AmbientLight),
		boolToFloat(r.PIRMotion),
		boolToFloat(r.PhonePresence),
		float32(r.Temperature),
	}
}

func boolToFloat(b bool) float32 {
	if b {
		return 1
	}
	return 0
}
