package httpserver

const (
	MaxSamples     = maxSamples
	MaxSampleReach = maxSampleReach
)
