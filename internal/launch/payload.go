package launch

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput is returned for non-finite or out-of-domain arguments.
var ErrInvalidInput = errors.New("invalid input")

// G0 is standard gravity in m/s².
const G0 = 9.80665

// MuEarth is Earth's gravitational parameter in m³/s² (WGS-84).
const MuEarth = 3.986004418e14

// EarthRadiusKm is the mean Earth radius used as the launch-site radius.
const EarthRadiusKm = 6371.0

// Model holds the vehicle parameters behind the payload estimate.
type Model struct {
	// SpecificImpulse is the effective (staged) specific impulse in seconds.
	SpecificImpulse float64
	// ThrustToWeight is the liftoff thrust-to-weight ratio.
	ThrustToWeight float64
	// StructuralFraction is the inert mass as a fraction of liftoff mass.
	StructuralFraction float64
	// AscentLosses is the gravity and drag loss budget in m/s.
	AscentLosses float64
}

// DefaultModel approximates a two-stage kerosene/LOX medium-lift launcher.
var DefaultModel = Model{
	SpecificImpulse:    380,
	ThrustToWeight:     1.3,
	StructuralFraction: 0.04,
	AscentLosses:       1500,
}

// Validate reports whether the model parameters describe a vehicle that can
// leave the pad.
func (m Model) Validate() error {
	switch {
	case !finite(m.SpecificImpulse) || m.SpecificImpulse <= 0:
		return fmt.Errorf("%w: specific impulse must be positive, got %v", ErrInvalidInput, m.SpecificImpulse)
	case !finite(m.ThrustToWeight) || m.ThrustToWeight < 1:
		return fmt.Errorf("%w: thrust-to-weight must be at least 1, got %v", ErrInvalidInput, m.ThrustToWeight)
	case !finite(m.StructuralFraction) || m.StructuralFraction < 0 || m.StructuralFraction >= 1:
		return fmt.Errorf("%w: structural fraction must be in [0, 1), got %v", ErrInvalidInput, m.StructuralFraction)
	case !finite(m.AscentLosses) || m.AscentLosses < 0:
		return fmt.Errorf("%w: ascent losses must be non-negative, got %v", ErrInvalidInput, m.AscentLosses)
	}
	return nil
}

// RequiredDeltaV returns the ideal delta-v in m/s to go from rest on the
// surface to a circular orbit altitudeKm above it, ignoring losses and
// Earth's rotation.
//
// It equates kinetic energy to the specific orbital energy difference:
//
//	Δv = sqrt(μ * (2/Re - 1/r)),  r = Re + h
func RequiredDeltaV(altitudeKm float64) float64 {
	re := EarthRadiusKm * 1000
	r := re + altitudeKm*1000
	return math.Sqrt(MuEarth * (2/re - 1/r))
}

// PayloadCapacity estimates the payload in kilograms that a vehicle with the
// given liftoff thrust (newtons) can place into a circular orbit at
// altitude (kilometres), using DefaultModel.
func PayloadCapacity(thrust, altitude float64) (float64, error) {
	return DefaultModel.PayloadCapacity(thrust, altitude)
}

// PayloadCapacity estimates payload mass in kilograms for thrust in newtons
// and orbit altitude in kilometres.
//
// Liftoff mass follows from thrust and the thrust-to-weight ratio, the mass
// left at burnout from the rocket equation, and payload is whatever remains
// after the structural mass. A vehicle that cannot reach the orbit yields 0.
func (m Model) PayloadCapacity(thrust, altitude float64) (float64, error) {
	if err := m.Validate(); err != nil {
		return 0, err
	}
	if !finite(thrust) || thrust < 0 {
		return 0, fmt.Errorf("%w: thrust must be finite and non-negative, got %v", ErrInvalidInput, thrust)
	}
	if !finite(altitude) || altitude < 0 {
		return 0, fmt.Errorf("%w: altitude must be finite and non-negative, got %v", ErrInvalidInput, altitude)
	}

	liftoffMass := thrust / (m.ThrustToWeight * G0)
	dv := RequiredDeltaV(altitude) + m.AscentLosses
	burnoutFraction := math.Exp(-dv / (m.SpecificImpulse * G0))

	payload := liftoffMass * (burnoutFraction - m.StructuralFraction)
	if payload <= 0 {
		return 0, nil
	}
	return payload, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
