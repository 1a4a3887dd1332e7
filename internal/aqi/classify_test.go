package aqi

import "testing"

func ptr(v float64) *float64 { return &v }

func TestClassifyBands(t *testing.T) {
	tests := []struct {
		name      string
		index     *float64
		wantLevel Level
		wantMask  bool
	}{
		{"zero", ptr(0), LevelGood, false},
		{"mid good", ptr(25), LevelGood, false},
		{"good upper boundary", ptr(50), LevelGood, false},
		{"just above good", ptr(51), LevelModerate, false},
		{"moderate", ptr(75), LevelModerate, false},
		{"moderate upper boundary", ptr(100), LevelModerate, false},
		{"sensitive groups", ptr(125), LevelSensitive, true},
		{"sensitive upper boundary", ptr(150), LevelSensitive, true},
		{"unhealthy lower", ptr(151), LevelUnhealthy, true},
		{"unhealthy upper boundary", ptr(200), LevelUnhealthy, true},
		{"very unhealthy", ptr(250), LevelVeryUnhealthy, true},
		{"very unhealthy upper boundary", ptr(300), LevelVeryUnhealthy, true},
		{"hazardous", ptr(301), LevelHazardous, true},
		{"implausibly large", ptr(10000), LevelHazardous, true},
		{"negative still classified", ptr(-5), LevelGood, false},
		{"no reading", nil, LevelNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.index)
			if got.Level != tt.wantLevel {
				t.Errorf("Classify(%v).Level = %v, want %v", tt.index, got.Level, tt.wantLevel)
			}
			if got.Mask != tt.wantMask {
				t.Errorf("Classify(%v).Mask = %v, want %v", tt.index, got.Mask, tt.wantMask)
			}
		})
	}
}

func TestClassifyBoundaryExactness(t *testing.T) {
	at := Classify(ptr(50))
	above := Classify(ptr(51))
	if at.Level == above.Level {
		t.Error("Classify(50) and Classify(51) should differ in level")
	}
	if at.Level != LevelGood {
		t.Errorf("Classify(50) should tie to the lower band, got %v", at.Level)
	}
}

func TestClassifyNoReading(t *testing.T) {
	got := Classify(nil)
	if got.Level != LevelNone {
		t.Errorf("Expected LevelNone, got %v", got.Level)
	}
	if got.Label != "" {
		t.Errorf("Expected empty label, got %q", got.Label)
	}
	if got.Advisory != "" {
		t.Errorf("Expected empty advisory, got %q", got.Advisory)
	}
	if got.Mask {
		t.Error("No reading must not recommend a mask")
	}
}

func TestClassifyAdvisoryPresent(t *testing.T) {
	for _, v := range []float64{10, 75, 125, 175, 250, 400} {
		a := Classify(ptr(v))
		if a.Advisory == "" {
			t.Errorf("Classify(%v) returned empty advisory", v)
		}
		if a.Label == "" {
			t.Errorf("Classify(%v) returned empty label", v)
		}
	}
}

func TestCigaretteEquivalent(t *testing.T) {
	tests := []struct {
		index *float64
		want  int
	}{
		{ptr(0), 0},
		{ptr(50), 0},
		{ptr(51), 2},
		{ptr(100), 2},
		{ptr(101), 5},
		{ptr(200), 5},
		{ptr(201), 8},
		{ptr(300), 8},
		{ptr(301), 13},
		{ptr(10000), 13},
		{nil, 0},
	}

	for _, tt := range tests {
		if got := CigaretteEquivalent(tt.index); got != tt.want {
			t.Errorf("CigaretteEquivalent(%v) = %d, want %d", tt.index, got, tt.want)
		}
	}
}

func TestScenarios(t *testing.T) {
	// index=75 -> Moderate, no mask, 2 cigarettes
	a := Classify(ptr(75))
	if a.Label != "Moderate" || a.Mask || CigaretteEquivalent(ptr(75)) != 2 {
		t.Errorf("index=75 scenario failed: %+v, est=%d", a, CigaretteEquivalent(ptr(75)))
	}

	// index=250 -> Very Unhealthy, mask, 8 cigarettes
	a = Classify(ptr(250))
	if a.Label != "Very Unhealthy" || !a.Mask || CigaretteEquivalent(ptr(250)) != 8 {
		t.Errorf("index=250 scenario failed: %+v, est=%d", a, CigaretteEquivalent(ptr(250)))
	}

	// no reading -> neutral, 0 cigarettes
	a = Classify(nil)
	if a.Level != LevelNone || CigaretteEquivalent(nil) != 0 {
		t.Errorf("no-reading scenario failed: %+v, est=%d", a, CigaretteEquivalent(nil))
	}
}

func TestLevelColors(t *testing.T) {
	seen := map[string]Level{}
	for _, l := range []Level{LevelNone, LevelGood, LevelModerate, LevelSensitive, LevelUnhealthy, LevelVeryUnhealthy, LevelHazardous} {
		c := l.Color()
		if c == "" {
			t.Errorf("Level %v has no color", l)
		}
		if prev, dup := seen[c]; dup {
			t.Errorf("Levels %v and %v share color %s", prev, l, c)
		}
		seen[c] = l
	}
}
