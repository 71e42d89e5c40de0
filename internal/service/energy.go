package service

import "edgenudge/internal/models"

// ----------- Estimation policy -----------
//
// These are fixed policy assumptions, not values derived from the
// model's confidence or historical data. They live in config structs
// so a deployment can override them without a rebuild.

// EstimatorConfig holds the per-room savings policy.
type EstimatorConfig struct {
	HoursAssumedEmpty float64 // fixed window regardless of time of day

	LightsWatts float64
	FanWatts    float64
	ACWatts     float64

	LightLuxThreshold float64 // lights assumed on above this
	FanTempThreshold  float64 // °C
	ACTempThreshold   float64 // °C

	CostPerKwhUSD float64
	CO2LbPerKwh   float64
	LbToKg        float64
	KgCO2PerTree  float64 // annual absorption per tree
}

// DefaultEstimatorConfig returns the shipped policy values.
func DefaultEstimatorConfig() EstimatorConfig {
	return EstimatorConfig{
		HoursAssumedEmpty: 2.0,
		LightsWatts:       10,
		FanWatts:          75,
		ACWatts:           500,
		LightLuxThreshold: 300,
		FanTempThreshold:  24,
		ACTempThreshold:   25,
		CostPerKwhUSD:     0.12,
		CO2LbPerKwh:       0.92,
		LbToKg:            0.453592,
		KgCO2PerTree:      0.0575,
	}
}

// CampusConfig scales one room's estimate across the campus.
type CampusConfig struct {
	Rooms             int
	PredictionsPerDay int
	OptimizationRate  float64 // fraction of empty predictions acted on
	DaysPerMonth      int
	DaysPerYear       int
}

// DefaultCampusConfig returns the shipped projection policy.
func DefaultCampusConfig() CampusConfig {
	return CampusConfig{
		Rooms:             100,
		PredictionsPerDay: 4,
		OptimizationRate:  0.3,
		DaysPerMonth:      30,
		DaysPerYear:       365,
	}
}

// EnergyService computes savings estimates. Pure; holds only policy.
type EnergyService struct {
	est    EstimatorConfig
	campus CampusConfig
}

func NewEnergyService(est EstimatorConfig, campus CampusConfig) *EnergyService {
	return &EnergyService{est: est, campus: campus}
}

// Estimate computes what an empty room could save over the assumed
// window. Callers invoke this only for EMPTY predictions.
func (s *EnergyService) Estimate(r models.SensorReading) models.SavingsEstimate {
	c := s.est

	var lights, fan, ac float64
	if r.AmbientLight > c.LightLuxThreshold {
		lights = c.LightsWatts * c.HoursAssumedEmpty / 1000
	}
	if r.Temperature > c.FanTempThreshold {
		fan = c.FanWatts * c.HoursAssumedEmpty / 1000
	}
	if r.Temperature > c.ACTempThreshold {
		ac = c.ACWatts * c.HoursAssumedEmpty / 1000
	}

	total := lights + fan + ac
	co2 := total * c.CO2LbPerKwh * c.LbToKg

	return models.SavingsEstimate{
		LightsKwh:         lights,
		FanKwh:            fan,
		ACKwh:             ac,
		TotalKwh:          total,
		TotalCostUSD:      total * c.CostPerKwhUSD,
		CO2SavedKg:        co2,
		TreesEquivalent:   co2 / c.KgCO2PerTree,
		HoursAssumedEmpty: c.HoursAssumedEmpty,
	}
}

// Project extrapolates one estimate over the campus policy.
func (s *EnergyService) Project(e models.SavingsEstimate) models.CampusProjection {
	c := s.campus

	dailyPerRoom := e.TotalKwh * float64(c.PredictionsPerDay) * c.OptimizationRate
	return models.CampusProjection{
		DailyPerRoomKwh: dailyPerRoom,
		MonthlyKwh:      dailyPerRoom * float64(c.Rooms) * float64(c.DaysPerMonth),
		AnnualKwh:       dailyPerRoom * float64(c.Rooms) * float64(c.DaysPerYear),
		AnnualCO2Kg:     e.CO2SavedKg * float64(c.PredictionsPerDay) * c.OptimizationRate * float64(c.Rooms) * float64(c.DaysPerYear),
	}
}
