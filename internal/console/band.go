package console

import "fmt"

// Band is a discrete display category derived from a nullable numeric
// value.
type Band string

const (
	// BandNone means no expiration is configured; rendered as a dash.
	BandNone Band = "none"
	// BandExpired means the account already expired.
	BandExpired Band = "expired"
	// BandWarning means expiration within a week (0..7 days inclusive).
	BandWarning Band = "warning"
	// BandInfo means expiration further than a week out.
	BandInfo Band = "info"
)

// ExpiryBand maps a days-remaining value to its display band. The three
// non-null bands are mutually exclusive: negative is expired, 0..7
// inclusive warns, above 7 informs.
func ExpiryBand(diasRestantes *int) Band {
	if diasRestantes == nil {
		return BandNone
	}
	switch d := *diasRestantes; {
	case d < 0:
		return BandExpired
	case d <= 7:
		return BandWarning
	default:
		return BandInfo
	}
}

// ExpiryLabel renders the days-remaining value for display alongside its
// band.
func ExpiryLabel(diasRestantes *int) string {
	if diasRestantes == nil {
		return "—"
	}
	d := *diasRestantes
	switch {
	case d < 0:
		return fmt.Sprintf("expirada há %d dias", -d)
	case d == 0:
		return "expira hoje"
	case d == 1:
		return "expira em 1 dia"
	default:
		return fmt.Sprintf("expira em %d dias", d)
	}
}

// OccupancyBand classifies a slot occupancy percentage.
type OccupancyBand string

const (
	OccupancyOK   OccupancyBand = "ok"   // below 80%
	OccupancyHigh OccupancyBand = "high" // 80 to 99%
	OccupancyFull OccupancyBand = "full" // 100% and above
)

// Occupancy returns the slot occupancy percentage. max is at least 1 by
// construction of the create form.
func Occupancy(ocupadas, max int) float64 {
	return float64(ocupadas) / float64(max) * 100
}

// BandOccupancy maps an occupancy percentage to its severity band.
func BandOccupancy(pct float64) OccupancyBand {
	switch {
	case pct >= 100:
		return OccupancyFull
	case pct >= 80:
		return OccupancyHigh
	default:
		return OccupancyOK
	}
}
