// Package pointing computes the look angles (elevation, azimuth) and slant
// range from a receive station to a reflector above the equator, either an
// active satellite or a passive radar object.
//
// References:
//
//	[1] Soler, Eisemann, Determination of Look Angles to Geostationary
//	    Communication Satellites (JSE).
package pointing

import "math"

const (
	// EquatorialRadius of the GRS80 ellipsoid in metres.
	EquatorialRadius = 6378.137e3
	// InvFlattening is the reciprocal flattening of the GRS80 ellipsoid.
	InvFlattening = 298.257222100882711
	// MeanEarthRadius in metres, used by the spherical approximation.
	MeanEarthRadius = 6371e3
	// GeoAltitude is the geosynchronous altitude in metres, the default
	// reflector altitude.
	GeoAltitude = 35786e3
)

// LookAngles calculates the elevation (degrees), azimuth (degrees in
// [0,360)) and slant range (metres) from the receive station to the
// reflector. The reflector is assumed to sit above the equator at the given
// altitude and the station at sea level. Positive longitudes are east,
// positive latitudes north.
func LookAngles(satLongDeg, rxLongDeg, rxLatDeg, satAltM float64, model Model) (elevDeg, azimuthDeg, slantRangeM float64) {
	if model == Spherical {
		return LookAnglesSpherical(satLongDeg, rxLongDeg, rxLatDeg, satAltM)
	}
	return LookAnglesEllipsoidal(satLongDeg, rxLongDeg, rxLatDeg, 0, satAltM)
}

// LookAnglesEllipsoidal computes the look angles with the rigorous
// ellipsoidal approach of [1]. rxHeightM is the orthometric height of the
// antenna above sea level.
//
// Unlike the spherical approximation, this path has no azimuth singularity
// at zenith: atan2 of a zero east/north pair returns 0 by convention.
func LookAnglesEllipsoidal(satLongDeg, rxLongDeg, rxLatDeg, rxHeightM, satAltM float64) (elevDeg, azimuthDeg, slantRangeM float64) {
	satLong := radians(satLongDeg)
	rxLong := radians(rxLongDeg)
	rxLat := radians(rxLatDeg)

	f := 1 / InvFlattening
	eSq := 2*f - f*f // eccentricity squared
	r := EquatorialRadius + satAltM

	// Principal radius of curvature in the prime vertical, see the
	// discussion below Eq. 12 in [1].
	N := EquatorialRadius / math.Sqrt(1-eSq*math.Sin(rxLat)*math.Sin(rxLat))

	// Ellipsoidal height of the antenna, taking the geoid undulation as 0.
	h := rxHeightM

	// Rectangular coordinates of the antenna, Eq. 12 in [1].
	rx := Vec3{
		X: (N + h) * math.Cos(rxLong) * math.Cos(rxLat),
		Y: (N + h) * math.Sin(rxLong) * math.Cos(rxLat),
		Z: (N*(1-eSq) + h) * math.Sin(rxLat),
	}

	// Rectangular coordinates of the satellite, in the equatorial plane.
	sat := Vec3{
		X: r * math.Cos(satLong),
		Y: r * math.Sin(satLong),
		Z: 0,
	}

	// Topocentric range vector from the station to the satellite. Its norm
	// is the slant range.
	rect := sat.Sub(rx)
	slantRangeM = rect.Norm()

	// Rotate into the local east-north-up frame, Eq. 9b and 10 in [1].
	rot := Matrix3{
		{-math.Sin(rxLong), math.Cos(rxLong), 0},
		{-math.Sin(rxLat) * math.Cos(rxLong), -math.Sin(rxLat) * math.Sin(rxLong), math.Cos(rxLat)},
		{math.Cos(rxLat) * math.Cos(rxLong), math.Cos(rxLat) * math.Sin(rxLong), math.Sin(rxLat)},
	}
	enu := rot.Apply(rect)

	e, n, u := enu.X, enu.Y, enu.Z
	azimuthDeg = math.Mod(degrees(math.Atan2(e, n))+360, 360)
	elevDeg = degrees(math.Atan(u / math.Sqrt(e*e+n*n)))
	return elevDeg, azimuthDeg, slantRangeM
}

// LookAnglesSpherical computes the look angles with the spherical
// approximation of [1], using the mean Earth radius.
//
// The azimuth is undefined when the station sits exactly on the subsatellite
// point or at a pole (tan of the geocentric angle or of the latitude
// degenerates); those inputs yield NaN rather than a special case.
func LookAnglesSpherical(satLongDeg, rxLongDeg, rxLatDeg, satAltM float64) (elevDeg, azimuthDeg, slantRangeM float64) {
	satLong := radians(satLongDeg)
	rxLong := radians(rxLongDeg)
	rxLat := radians(rxLatDeg)

	R := MeanEarthRadius
	r := EquatorialRadius + satAltM

	// gamma is the geocentric angle between the station and the
	// subsatellite point, Eq. (1) in [1].
	cosGamma := math.Cos(rxLat) * math.Cos(satLong-rxLong)
	gamma := math.Acos(cosGamma)

	// Slant range from the law of cosines, Eq. (2) in [1].
	slantRangeM = r * math.Sqrt(1+(R/r)*(R/r)-2*(R/r)*cosGamma)

	// Zenith distance via the sine rule, Eq. (4) in [1].
	z := math.Asin((r / slantRangeM) * math.Sin(gamma))
	elevDeg = 90 - degrees(z)

	// Angle between the station meridian and the great circle through the
	// subsatellite point, Eq. (6) in [1].
	beta := degrees(math.Acos(math.Tan(rxLat) / math.Tan(gamma)))

	// Quadrant disambiguation by hemisphere and relative longitude.
	if rxLat > 0 {
		if satLong < rxLong {
			azimuthDeg = 180 + beta // satellite to the SW
		} else {
			azimuthDeg = 180 - beta // satellite to the SE
		}
	} else {
		if satLong < rxLong {
			azimuthDeg = 360 - beta // satellite to the NW
		} else {
			azimuthDeg = beta // satellite to the NE
		}
	}
	return elevDeg, azimuthDeg, slantRangeM
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }
func degrees(rad float64) float64 { return rad * 180 / math.Pi }
