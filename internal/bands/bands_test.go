package bands

import (
	"testing"
	"time"
)

func testColor(key string) string {
	return "#" + key
}

func TestColdThreshold(t *testing.T) {
	tests := []struct {
		name  string
		unit  string
		month time.Month
		bias  bool
		want  float64
	}{
		{"summer celsius with bias", "celsius", time.July, true, 10},
		{"may celsius with bias", "celsius", time.May, true, 10},
		{"september celsius with bias", "celsius", time.September, true, 10},
		{"shoulder month march", "celsius", time.March, true, 8},
		{"shoulder month october", "celsius", time.October, true, 8},
		{"winter celsius with bias", "celsius", time.January, true, 5},
		{"bias disabled", "celsius", time.July, false, 5},
		{"summer fahrenheit derived", "fahrenheit", time.July, true, 50},
		{"shoulder fahrenheit derived", "fahrenheit", time.April, true, 46},
		{"fahrenheit bias disabled", "fahrenheit", time.July, false, 41},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ColdThreshold(tt.unit, tt.month, tt.bias)
			if got != tt.want {
				t.Errorf("ColdThreshold(%s, %v, %v) = %v, want %v", tt.unit, tt.month, tt.bias, got, tt.want)
			}
		})
	}
}

func TestTemperatureClassify(t *testing.T) {
	c := NewTemperature("celsius", time.July, true, testColor)

	tests := []struct {
		value float64
		want  string
	}{
		{-15, "cold"},
		{9.9, "cold"},
		{10, "neutral"},
		{15, "neutral"},
		{19.9, "neutral"},
		{20, "warm"},
		{27.9, "warm"},
		{28, "hot"},
		{45, "hot"},
	}

	for _, tt := range tests {
		band, ok := c.Classify(tt.value)
		if !ok {
			t.Fatalf("Classify(%v) returned no band", tt.value)
		}
		if band.Name != tt.want {
			t.Errorf("Classify(%v) = %s, want %s", tt.value, band.Name, tt.want)
		}
	}
}

func TestTemperatureRankMonotonic(t *testing.T) {
	c := NewTemperature("celsius", time.January, false, testColor)

	prev := -1
	for temp := -40.0; temp <= 50; temp += 0.5 {
		rank := c.Rank(temp)
		if rank < prev {
			t.Fatalf("rank decreased from %d to %d at %v", prev, rank, temp)
		}
		prev = rank
	}
}

func TestPrecipitationBands(t *testing.T) {
	c := NewPrecipitation(testColor)

	tests := []struct {
		pop  int
		want string
	}{
		{0, "low"},
		{29, "low"},
		{30, "medium"},
		{59, "medium"},
		{60, "high"},
		{79, "high"},
		{80, "severe"},
		{100, "severe"},
	}

	for _, tt := range tests {
		band, ok := c.Classify(float64(tt.pop))
		if !ok {
			t.Fatalf("Classify(%d) returned no band", tt.pop)
		}
		if band.Name != tt.want {
			t.Errorf("Classify(%d) = %s, want %s", tt.pop, band.Name, tt.want)
		}
	}
}

func TestPrecipitationMonotonicAndClampInvariant(t *testing.T) {
	c := NewPrecipitation(testColor)

	prev := -1
	for p := -20; p <= 140; p++ {
		clamped := ClampPoP(p)
		rank := c.Rank(float64(clamped))
		if rank < prev && p >= 0 && p <= 100 {
			t.Fatalf("severity rank decreased from %d to %d at p=%d", prev, rank, p)
		}
		if p >= 0 && p <= 100 {
			prev = rank
		}

		// Clamping before classification must not change the result.
		direct := c.Rank(float64(ClampPoP(clamped)))
		if direct != rank {
			t.Errorf("clamp invariance violated at p=%d: %d != %d", p, direct, rank)
		}
	}
}

func TestAlertGlyph(t *testing.T) {
	tests := []struct {
		pop  int
		want string
	}{
		{0, "💧"},
		{59, "💧"},
		{60, "☔"},
		{100, "☔"},
		{250, "☔"},
	}

	for _, tt := range tests {
		if got := AlertGlyph(tt.pop); got != tt.want {
			t.Errorf("AlertGlyph(%d) = %s, want %s", tt.pop, got, tt.want)
		}
	}
}

func TestEmptyClassifier(t *testing.T) {
	var c Classifier
	if _, ok := c.Classify(10); ok {
		t.Error("empty classifier should return no band")
	}
	if rank := c.Rank(10); rank != -1 {
		t.Errorf("empty classifier rank = %d, want -1", rank)
	}
}
