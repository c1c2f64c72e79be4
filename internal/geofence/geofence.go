// Package geofence memutuskan apakah sebuah koordinat berada di dalam
// radius kantor. Semua fungsi murni tanpa side effect.
package geofence

import "math"

const earthRadiusMeters = 6371000

// Distance menghitung jarak great-circle (haversine) dalam meter.
// Koordinat tidak valid (NaN/Inf atau di luar jangkauan) menghasilkan NaN.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	if !validCoordinate(lat1, lon1) || !validCoordinate(lat2, lon2) {
		return math.NaN()
	}

	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	dPhi := (lat2 - lat1) * math.Pi / 180
	dLambda := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c
}

// WithinRadius bernilai true bila jarak titik ke kantor <= radiusMeters
// (batas radius inklusif). Koordinat ambigu selalu ditolak: lokasi yang
// tidak bisa dihitung tidak boleh lolos geofence.
func WithinRadius(lat, lon, officeLat, officeLon, radiusMeters float64) bool {
	if math.IsNaN(radiusMeters) || radiusMeters < 0 {
		return false
	}
	d := Distance(lat, lon, officeLat, officeLon)
	if math.IsNaN(d) {
		return false
	}
	return d <= radiusMeters
}

func validCoordinate(lat, lon float64) bool {
	if math.IsNaN(lat) || math.IsInf(lat, 0) || math.IsNaN(lon) || math.IsInf(lon, 0) {
		return false
	}
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}
