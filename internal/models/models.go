package models

// TabularInput holds validated tabular feature values keyed by feature name.
type TabularInput map[string]float64

// LivePreviewInput holds validated live-preview feature values keyed by feature name.
type LivePreviewInput map[string]float64

// TabularResponse contains a full-precision detection prediction
type TabularResponse struct {
	PredictedValue   float64            `json:"predictedValue"`
	Confidence       float64            `json:"confidence"`
	AttributeWeights map[string]float64 `json:"attributeWeights"`
}

// LivePreviewResponse contains an interactive-demo detection probability
type LivePreviewResponse struct {
	Probability float64 `json:"probability"`
}

// HealthResponse reports process liveness and model state
type HealthResponse struct {
	Status      string `json:"status"`
	ModelLoaded bool   `json:"model_loaded"`
	Timestamp   string `json:"timestamp"`
}

// Envelope is the standardized wrapper for every successful response
type Envelope struct {
	Data      interface{} `json:"data"`
	Timestamp string      `json:"timestamp"`
	RequestID string      `json:"requestId"`
}

// ErrorEnvelope is the standardized wrapper for every failure response
type ErrorEnvelope struct {
	Error     ErrorInfo `json:"error"`
	Timestamp string    `json:"timestamp"`
	RequestID string    `json:"requestId"`
}

// ErrorInfo identifies a failure with a stable machine-readable code
type ErrorInfo struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Details *ErrorDetail `json:"details"`
}

// ErrorDetail pins a failure to a specific field or cause
type ErrorDetail struct {
	Field      string      `json:"field,omitempty"`
	Constraint string      `json:"constraint,omitempty"`
	Value      interface{} `json:"value,omitempty"`
	Received   interface{} `json:"received,omitempty"`
	Reason     string      `json:"reason,omitempty"`
}
