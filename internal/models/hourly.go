package models

// HourlySteps is one persisted hour bucket for a calendar day.
type HourlySteps struct {
	ID    int64  `json:"id" db:"id"`
	Day   string `json:"day" db:"day"` // Format: 2006-01-02
	Hour  int    `json:"hour" db:"hour"`
	Steps int    `json:"steps" db:"steps"`
}

// HourlyStepsResponse is the 24-bucket view for one day.
type HourlyStepsResponse struct {
	Day     string  `json:"day"`
	Buckets [24]int `json:"buckets"`
	Total   int     `json:"total"`
}

// StepsSummary aggregates persisted sessions for the summary endpoint.
type StepsSummary struct {
	TotalSteps       int     `json:"totalSteps"`
	TotalDistanceKm  float64 `json:"totalDistanceKm"`
	SessionCount     int     `json:"sessionCount"`
	MeanStepsPerWalk float64 `json:"meanStepsPerWalk"`
	MaxStepsPerWalk  float64 `json:"maxStepsPerWalk"`
	PeakHour         int     `json:"peakHour"`
	PeakHourSteps    int     `json:"peakHourSteps"`
}
