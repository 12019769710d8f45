package pointing

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"
)

func TestLookAnglesEllipsoidal(t *testing.T) {
	elev, az, sr := LookAnglesEllipsoidal(-95, -97, 33, 0, GeoAltitude)
	if !floats.EqualWithinAbs(elev, 51.578436625314, 1e-9) {
		t.Errorf("elevation = %.12f, want 51.578436625314", elev)
	}
	if !floats.EqualWithinAbs(az, 176.328257839586, 1e-9) {
		t.Errorf("azimuth = %.12f, want 176.328257839586", az)
	}
	if !floats.EqualWithinAbs(sr, 36975074.369302, 1e-5) {
		t.Errorf("slant range = %.6f, want 36975074.369302", sr)
	}
}

func TestLookAnglesEllipsoidalZenith(t *testing.T) {
	// Receiver on the equator directly below the satellite: the ENU east
	// and north components vanish and atan2 still behaves, so the
	// elevation is a clean 90 degrees and the slant range the altitude.
	elev, _, sr := LookAnglesEllipsoidal(-95, -95, 0, 0, GeoAltitude)
	if !floats.EqualWithinAbs(elev, 90, 1e-6) {
		t.Errorf("elevation = %.9f, want 90", elev)
	}
	if !floats.EqualWithinAbs(sr, GeoAltitude, 1.0) {
		t.Errorf("slant range = %.3f, want %.0f", sr, GeoAltitude)
	}
}

func TestLookAnglesSphericalQuadrants(t *testing.T) {
	tests := []struct {
		name               string
		satLong, rxLong    float64
		rxLat              float64
		wantElev, wantAz   float64
		wantSlantM         float64
	}{
		{"satellite to SE", -90, -97, 33, 50.877053602456, 167.295509581736, 37029479.170745},
		{"satellite to SW", -104, -97, 33, 50.877053602456, 192.704490418264, 37029479.170745},
		{"satellite to NE", -90, -97, -33, 50.877053602456, 167.295509581736, 37029479.170745},
		{"satellite to NW", -104, -97, -33, 50.877053602456, 192.704490418264, 37029479.170745},
	}
	for _, tt := range tests {
		elev, az, sr := LookAnglesSpherical(tt.satLong, tt.rxLong, tt.rxLat, GeoAltitude)
		if !floats.EqualWithinAbs(elev, tt.wantElev, 1e-9) {
			t.Errorf("%s: elevation = %.12f, want %.12f", tt.name, elev, tt.wantElev)
		}
		if !floats.EqualWithinAbs(az, tt.wantAz, 1e-9) {
			t.Errorf("%s: azimuth = %.12f, want %.12f", tt.name, az, tt.wantAz)
		}
		if !floats.EqualWithinAbs(sr, tt.wantSlantM, 1e-5) {
			t.Errorf("%s: slant range = %.6f, want %.6f", tt.name, sr, tt.wantSlantM)
		}
	}
}

func TestLookAnglesSphericalZenithSingularity(t *testing.T) {
	// The spherical azimuth degenerates on the subsatellite point: the
	// geocentric angle is zero and the quadrant formula yields NaN. The
	// elevation and range still resolve.
	elev, az, sr := LookAnglesSpherical(-95, -95, 0, GeoAltitude)
	if !floats.EqualWithinAbs(elev, 90, 1e-6) {
		t.Errorf("elevation = %.9f, want 90", elev)
	}
	if !math.IsNaN(az) {
		t.Errorf("azimuth = %v, want NaN at the singularity", az)
	}
	want := EquatorialRadius + GeoAltitude - MeanEarthRadius
	if !floats.EqualWithinAbs(sr, want, 1e-3) {
		t.Errorf("slant range = %.6f, want %.6f", sr, want)
	}
}

func TestModelsAgree(t *testing.T) {
	// Both models describe the same physical link; the spherical
	// approximation stays within a small margin of the rigorous result.
	elevE, azE, srE := LookAnglesEllipsoidal(-95, -97, 33, 0, GeoAltitude)
	elevS, azS, srS := LookAnglesSpherical(-95, -97, 33, GeoAltitude)
	if math.Abs(elevE-elevS) > 0.1 {
		t.Errorf("elevation disagreement: %.6f vs %.6f", elevE, elevS)
	}
	if math.Abs(azE-azS) > 0.1 {
		t.Errorf("azimuth disagreement: %.6f vs %.6f", azE, azS)
	}
	if math.Abs(srE-srS) > 20e3 {
		t.Errorf("slant range disagreement: %.0f vs %.0f", srE, srS)
	}
}

func TestLookAnglesDispatch(t *testing.T) {
	elev, az, sr := LookAngles(-95, -97, 33, GeoAltitude, Ellipsoidal)
	wantElev, wantAz, wantSr := LookAnglesEllipsoidal(-95, -97, 33, 0, GeoAltitude)
	if elev != wantElev || az != wantAz || sr != wantSr {
		t.Error("Ellipsoidal dispatch does not match LookAnglesEllipsoidal")
	}

	elev, az, sr = LookAngles(-95, -97, 33, GeoAltitude, Spherical)
	wantElev, wantAz, wantSr = LookAnglesSpherical(-95, -97, 33, GeoAltitude)
	if elev != wantElev || az != wantAz || sr != wantSr {
		t.Error("Spherical dispatch does not match LookAnglesSpherical")
	}
}

func TestModelFromString(t *testing.T) {
	tests := []struct {
		in   string
		want Model
	}{
		{"ellipsoidal", Ellipsoidal},
		{"Ellipsoidal", Ellipsoidal},
		{"SPHERICAL", Spherical},
	}
	for _, tt := range tests {
		got, err := ModelFromString(tt.in)
		if err != nil {
			t.Fatalf("ModelFromString(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ModelFromString(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := ModelFromString("flat"); err == nil {
		t.Error("expected an error for an unknown model name")
	}

	if Ellipsoidal.String() != "Ellipsoidal" || Spherical.String() != "Spherical" {
		t.Error("model names do not round trip")
	}
}
