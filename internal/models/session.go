package models

// WalkSession represents one completed tracking session.
type WalkSession struct {
	ID             int64   `json:"id" db:"id"`
	DeviceID       string  `json:"deviceId" db:"device_id"`
	StartedAt      int64   `json:"startedAt" db:"started_at"` // Unix timestamp in seconds
	EndedAt        int64   `json:"endedAt" db:"ended_at"`
	StartLatitude  float64 `json:"startLatitude" db:"start_latitude"`
	StartLongitude float64 `json:"startLongitude" db:"start_longitude"`
	EndLatitude    float64 `json:"endLatitude" db:"end_latitude"`
	EndLongitude   float64 `json:"endLongitude" db:"end_longitude"`
	DistanceKm     float64 `json:"distanceKm" db:"distance_km"`
	Steps          int     `json:"steps" db:"steps"`
	BearingDegrees float64 `json:"bearingDegrees" db:"bearing_degrees"`
	CreatedAt      *string `json:"createdAt,omitempty" db:"created_at"`
}

// WalkSessionsResponse represents a paginated response of sessions.
type WalkSessionsResponse struct {
	Data       []WalkSession `json:"data"`
	Total      int64         `json:"total"`
	Page       int           `json:"page"`
	PageSize   int           `json:"pageSize"`
	TotalPages int           `json:"totalPages"`
}

// WalkSessionFilter represents filter parameters for querying sessions.
type WalkSessionFilter struct {
	From     int64 `form:"from"` // Unix timestamp
	To       int64 `form:"to"`   // Unix timestamp
	MinSteps int   `form:"minSteps"`
	Page     int   `form:"page"`
	PageSize int   `form:"pageSize"`
}

// LocationFix is the client-reported result of a geolocation request.
// Either a coordinate pair or an error code is present, never both.
type LocationFix struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Error     string   `json:"error"` // "permission_denied" or "unavailable"
}

// SessionStatus is the live view of the tracker for the current endpoint.
type SessionStatus struct {
	Tracking       bool    `json:"tracking"`
	Steps          int     `json:"steps"`
	StartedAt      int64   `json:"startedAt,omitempty"`
	StartLatitude  float64 `json:"startLatitude,omitempty"`
	StartLongitude float64 `json:"startLongitude,omitempty"`
	HourlySteps    [24]int `json:"hourlySteps"`
}

// SessionResult is returned when a session is stopped.
type SessionResult struct {
	DistanceKm     float64 `json:"distanceKm"`
	Steps          int     `json:"steps"`
	DurationSecs   int64   `json:"durationSecs"`
	BearingDegrees float64 `json:"bearingDegrees"`
}
