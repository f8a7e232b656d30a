package tui

import (
	"slices"
	"testing"
	"time"
)

func TestRingBuffer(t *testing.T) {
	rb := NewRingBuffer(3)
	if rb.Slice() != nil {
		t.Fatal("empty buffer should return nil")
	}

	for _, d := range []time.Duration{10, 20, 30, 40} {
		rb.Push(float64(d))
	}
	if rb.Len() != 3 {
		t.Errorf("Len() = %d, want 3", rb.Len())
	}
	if got, want := rb.Slice(), []float64{20, 30, 40}; !slices.Equal(got, want) {
		t.Errorf("Slice() = %v, want %v (oldest dropped)", got, want)
	}

	rb.Reset()
	if rb.Len() != 0 {
		t.Errorf("Len() after Reset = %d", rb.Len())
	}
	rb.Push(5)
	if got := rb.Slice(); !slices.Equal(got, []float64{5}) {
		t.Errorf("Slice() after Reset = %v", got)
	}
}

func TestRingBuffer_ZeroCapacity(t *testing.T) {
	rb := NewRingBuffer(0)
	rb.Push(1)
	rb.Push(2)
	if got := rb.Slice(); !slices.Equal(got, []float64{2}) {
		t.Errorf("Slice() = %v, want the last sample only", got)
	}
}

func TestRenderSparkline(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   string
	}{
		{"empty", nil, ""},
		{"floor", []float64{0, 0}, "▁▁"},
		{"ceiling", []float64{100}, "█"},
		{"gradient", []float64{0, 15, 30, 45, 58, 72, 86, 100}, "▁▂▃▄▅▆▇█"},
		{"clamped", []float64{-20, 250}, "▁█"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RenderSparkline(tt.values); got != tt.want {
				t.Errorf("RenderSparkline(%v) = %q, want %q", tt.values, got, tt.want)
			}
		})
	}
}

func TestScalePercent(t *testing.T) {
	if got, want := ScalePercent([]float64{1, 2, 4}), []float64{25, 50, 100}; !slices.Equal(got, want) {
		t.Errorf("ScalePercent() = %v, want %v", got, want)
	}
	if got := ScalePercent([]float64{0, 0}); !slices.Equal(got, []float64{0, 0}) {
		t.Errorf("all-zero input should stay zero, got %v", got)
	}
	if got := RenderSparkline(ScalePercent([]float64{1, 8})); got != "▁█" {
		t.Errorf("RenderSparkline(scaled) = %q, want %q", got, "▁█")
	}
}
