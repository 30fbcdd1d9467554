package obsmetrics

import "testing"

func TestStartStage_ObserveDurationDoesNotPanic(t *testing.T) {
	timer := StartStage("test.stage")
	timer.ObserveDuration()
}

func TestObserveRegionsDetectedAndTextLength_DoNotPanic(t *testing.T) {
	ObserveRegionsDetected(3)
	ObserveTextLength(42)
}
