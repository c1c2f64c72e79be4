package geofence

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	officeLat = -6.251426
	officeLon = 107.113798
)

func TestWithinRadius_NearOffice(t *testing.T) {
	// Titik ±0.4m dari kantor, radius 100m, harus lolos.
	assert.True(t, WithinRadius(-6.251427, 107.113802, officeLat, officeLon, 100))
}

func TestWithinRadius_BoundaryInclusive(t *testing.T) {
	// Jarak persis sama dengan radius harus dianggap di dalam.
	d := Distance(-6.252426, 107.113798, officeLat, officeLon)
	assert.False(t, math.IsNaN(d))
	assert.True(t, WithinRadius(-6.252426, 107.113798, officeLat, officeLon, d))
}

func TestWithinRadius_OutsideRadius(t *testing.T) {
	// Sekitar 1.1 km ke utara.
	assert.False(t, WithinRadius(-6.241426, 107.113798, officeLat, officeLon, 100))
}

func TestWithinRadius_FailClosed(t *testing.T) {
	tests := []struct {
		name     string
		lat, lon float64
	}{
		{"lat NaN", math.NaN(), officeLon},
		{"lon NaN", officeLat, math.NaN()},
		{"lat Inf", math.Inf(1), officeLon},
		{"lat di luar jangkauan", 91, officeLon},
		{"lon di luar jangkauan", officeLat, 181},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, WithinRadius(tt.lat, tt.lon, officeLat, officeLon, 100))
		})
	}

	t.Run("radius NaN", func(t *testing.T) {
		assert.False(t, WithinRadius(officeLat, officeLon, officeLat, officeLon, math.NaN()))
	})
	t.Run("radius negatif", func(t *testing.T) {
		assert.False(t, WithinRadius(officeLat, officeLon, officeLat, officeLon, -1))
	})
}

func TestDistance_SamePointIsZero(t *testing.T) {
	assert.InDelta(t, 0, Distance(officeLat, officeLon, officeLat, officeLon), 1e-6)
}
