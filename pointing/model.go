package pointing

import (
	"fmt"
	"strings"
)

// Model selects the Earth model of the look-angle computation.
type Model int

const (
	// Ellipsoidal uses the rigorous GRS80 ellipsoid approach and is the
	// default.
	Ellipsoidal Model = iota
	// Spherical uses the mean-Earth-radius approximation.
	Spherical
)

var ModelNames = [...]string{
	"Ellipsoidal",
	"Spherical",
}

func (m Model) String() string {
	if m < 0 || int(m) >= len(ModelNames) {
		return fmt.Sprintf("Model(%d)", int(m))
	}
	return ModelNames[m]
}

// ModelFromString parses a model name, case-insensitively.
func ModelFromString(s string) (Model, error) {
	for i, name := range ModelNames {
		if strings.EqualFold(s, name) {
			return Model(i), nil
		}
	}
	return Ellipsoidal, fmt.Errorf("unknown earth model %q", s)
}
