package models

// SavingsEstimate is the deterministic "what could be switched off"
// estimate for an empty room. TotalKwh is always the exact sum of the
// three appliance components.
type SavingsEstimate struct {
	LightsKwh         float64 `json:"lights_kwh"`
	FanKwh            float64 `json:"fan_kwh"`
	ACKwh             float64 `json:"ac_kwh"`
	TotalKwh          float64 `json:"total_kwh"`
	TotalCostUSD      float64 `json:"total_cost_usd"`
	CO2SavedKg        float64 `json:"co2_saved_kg"`
	TreesEquivalent   float64 `json:"trees_equivalent"`
	HoursAssumedEmpty float64 `json:"hours_assumed_empty"`
}

// CampusProjection extrapolates one estimate over a fixed room count
// and time horizon. Monotonic in the estimate's TotalKwh.
type CampusProjection struct {
	DailyPerRoomKwh float64 `json:"daily_per_room_kwh"`
	MonthlyKwh      float64 `json:"monthly_kwh"`
	AnnualKwh       float64 `json:"annual_kwh"`
	AnnualCO2Kg     float64 `json:"annual_co2_kg"`
}
