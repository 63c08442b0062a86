package stats

import (
	"testing"
	"time"
)

func TestSamplerRecordsNonZeroPeaks(t *testing.T) {
	s := NewSampler(5 * time.Millisecond)
	s.Start()
	time.Sleep(20 * time.Millisecond)
	sample := s.Stop()

	if sample.PeakHeapAlloc == 0 {
		t.Fatal("PeakHeapAlloc = 0, want a nonzero reading")
	}
	if sample.PeakSys == 0 {
		t.Fatal("PeakSys = 0, want a nonzero reading")
	}
}

func TestSamplerDefaultInterval(t *testing.T) {
	s := NewSampler(0)
	if s.interval != 500*time.Millisecond {
		t.Fatalf("interval = %v, want 500ms default", s.interval)
	}
}

func TestSamplerDoubleStartPanics(t *testing.T) {
	s := NewSampler(time.Millisecond)
	s.Start()
	defer s.Stop()

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on double Start")
		}
	}()
	s.Start()
}
