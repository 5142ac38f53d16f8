package core

import "context"

// NopMetricsRecorder is the default sink for the per-operation series the
// service emits: migration.<operation>.total counters and
// migration.<operation>.duration_ms histograms, tagged with operation,
// status and object id. It drops every sample; WithMetricsRecorder installs
// a real backend.
type NopMetricsRecorder struct{}

func (NopMetricsRecorder) IncCounter(context.Context, string, int64, map[string]string) {}

func (NopMetricsRecorder) ObserveHistogram(context.Context, string, float64, map[string]string) {}

func cloneTags(tags map[string]string) map[string]string {
	if len(tags) == 0 {
		return map[string]string{}
	}
	copied := make(map[string]string, len(tags))
	for key, value := range tags {
		copied[key] = value
	}
	return copied
}

var _ MetricsRecorder = NopMetricsRecorder{}
