package models

// AccelSample is one accelerometer reading as delivered by the client.
// TimestampMs is the device wall clock in Unix milliseconds; samples inside
// a batch must be in arrival order.
type AccelSample struct {
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Z           float64 `json:"z"`
	TimestampMs int64   `json:"timestampMs"`
}

// SampleBatch is the ingest request body for a batch of samples.
type SampleBatch struct {
	Samples []AccelSample `json:"samples" binding:"required"`
}

// IngestResult reports the outcome of a sample batch.
type IngestResult struct {
	Tracking   bool `json:"tracking"`
	StepsAdded int  `json:"stepsAdded"`
	Steps      int  `json:"steps"`
}
