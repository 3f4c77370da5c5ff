package constants

import "time"

// Health states reported by /healthCheck
const (
	HealthUp   = "up"
	HealthDown = "down"
)

const RequestIDHeader = "X-Request-ID"

// LastWeekWindow is how far back the last-week statistic looks
const LastWeekWindow = 7 * 24 * time.Hour

// HealthProbeTimeout bounds each dependency ping
const HealthProbeTimeout = 2 * time.Second
