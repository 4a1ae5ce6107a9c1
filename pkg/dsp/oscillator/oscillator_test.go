package oscillator

import (
	"math"
	"testing"
)

func TestZeroFrequencyIsSilent(t *testing.T) {
	osc := New(44100)
	osc.SetFrequency(0)

	for i := 0; i < 100; i++ {
		if got := osc.Sine(); got != 0 {
			t.Fatalf("sample %d: got %v, want 0", i, got)
		}
	}
}

func TestSineQuarterPeriods(t *testing.T) {
	// 1 Hz at 4 samples/second hits the quarter-period points exactly.
	osc := New(4)
	osc.SetFrequency(1)

	want := []float32{0, 1, 0, -1}
	for i, w := range want {
		got := osc.Sine()
		if math.Abs(float64(got-w)) > 1e-6 {
			t.Errorf("sample %d: got %v, want %v", i, got, w)
		}
	}
}

func TestReset(t *testing.T) {
	osc := New(8)
	osc.SetFrequency(1)

	first := osc.Sine()
	osc.Sine()
	osc.Sine()
	osc.Reset()

	if got := osc.Sine(); got != first {
		t.Errorf("after Reset: got %v, want %v", got, first)
	}
}

func TestFrequency(t *testing.T) {
	osc := New(48000)
	osc.SetFrequency(440)
	if got := osc.Frequency(); got != 440 {
		t.Errorf("Frequency() = %v, want 440", got)
	}
}
