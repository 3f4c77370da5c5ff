package entities

import "time"

// ComponentHealth is the probe result for one dependency
type ComponentHealth struct {
	Status    string `json:"status"`
	Details   string `json:"details,omitempty"`
	LatencyMs int64  `json:"latency_ms"`
}

// HealthReport is the body of GET /healthCheck
type HealthReport struct {
	Status     string                     `json:"status"`
	Components map[string]ComponentHealth `json:"components"`
	UpSince    time.Time                  `json:"up_since"`
	Uptime     string                     `json:"uptime"`
}
