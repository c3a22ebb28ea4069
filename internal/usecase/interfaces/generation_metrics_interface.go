package interfaces

import "time"

// IGenerationMetrics records operational counters for document generation.

type IGenerationMetrics interface {
	ObserveBulkJob(outcome string, orders int, elapsed time.Duration)
	ObserveRender(mode string, elapsed time.Duration, err error)
	ObserveSingle(outcome string)
}

// NopGenerationMetrics discards every observation.
type NopGenerationMetrics struct{}

func (NopGenerationMetrics) ObserveBulkJob(string, int, time.Duration) {}
func (NopGenerationMetrics) ObserveRender(string, time.Duration, error) {}
func (NopGenerationMetrics) ObserveSingle(string) {}
