package console

import "testing"

func intPtr(v int) *int { return &v }

func TestExpiryBand(t *testing.T) {
	tests := []struct {
		name string
		dias *int
		want Band
	}{
		{"already expired", intPtr(-1), BandExpired},
		{"expires today", intPtr(0), BandWarning},
		{"last warning day", intPtr(7), BandWarning},
		{"first info day", intPtr(8), BandInfo},
		{"no expiration", nil, BandNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExpiryBand(tt.dias); got != tt.want {
				t.Errorf("ExpiryBand(%v) = %q, want %q", tt.dias, got, tt.want)
			}
		})
	}
}

func TestExpiryLabel(t *testing.T) {
	tests := []struct {
		name string
		dias *int
		want string
	}{
		{"expired three days ago", intPtr(-3), "expirada há 3 dias"},
		{"expires today", intPtr(0), "expira hoje"},
		{"single day", intPtr(1), "expira em 1 dia"},
		{"many days", intPtr(15), "expira em 15 dias"},
		{"no expiration", nil, "—"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExpiryLabel(tt.dias); got != tt.want {
				t.Errorf("ExpiryLabel(%v) = %q, want %q", tt.dias, got, tt.want)
			}
		})
	}
}

func TestOccupancy(t *testing.T) {
	if got := Occupancy(2, 4); got != 50 {
		t.Errorf("Occupancy(2, 4) = %v, want 50", got)
	}
	if got := Occupancy(0, 1); got != 0 {
		t.Errorf("Occupancy(0, 1) = %v, want 0", got)
	}
}

func TestBandOccupancy(t *testing.T) {
	tests := []struct {
		pct  float64
		want OccupancyBand
	}{
		{0, OccupancyOK},
		{79.9, OccupancyOK},
		{80, OccupancyHigh},
		{99.9, OccupancyHigh},
		{100, OccupancyFull},
		{125, OccupancyFull},
	}

	for _, tt := range tests {
		if got := BandOccupancy(tt.pct); got != tt.want {
			t.Errorf("BandOccupancy(%v) = %q, want %q", tt.pct, got, tt.want)
		}
	}
}
