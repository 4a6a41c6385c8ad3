// Package distribution implements uniform sampling of floats over the unit
// interval from a bit source, with three boundary variants: half-open
// [0, 1), open (0, 1) and closed [0, 1].
package distribution

import (
	"encoding/json"
	"fmt"

	"github.com/Karivelia/rand/source"
)

const (
	uniformName  = "Uniform"
	open01Name   = "Open01"
	closed01Name = "Closed01"
)

// Distribution is an interface for stateless unit-interval sampling
// strategies. There are three implementations of this interface:
//   - Uniform for sampling the half-open interval [0, 1).
//   - Open01 for sampling the open interval (0, 1).
//   - Closed01 for sampling the closed interval [0, 1].
//
// A Distribution holds no state of its own; each call draws exactly one word
// of the matching width from the given source and is a pure function of that
// word.
type Distribution interface {
	// Float32 draws one float32, consuming one NextU32 call on src.
	Float32(src source.Source) float32
	// Float64 draws one float64, consuming one NextU64 call on src.
	Float64(src source.Source) float64
	// Type returns a string representation of the distribution name.
	Type() string
	mustBeDist()
}

// Uniform samples floats in the half-open interval [0, 1): 0.0 is included,
// 1.0 is excluded and the largest reachable value is 1-ulp.
type Uniform struct{}

// Open01 samples floats in the open interval (0, 1): both endpoints are
// excluded for every possible word, the reachable range being
// [ulp/2, 1-ulp/2].
type Open01 struct{}

// Closed01 samples floats in the closed interval [0, 1]: both endpoints are
// reached exactly. The rescaling that maps the maximum onto 1.0 slightly
// compresses the spacing near the top of the range relative to Open01's
// additive shift.
type Closed01 struct{}

func (d Uniform) Float32(src source.Source) float32 { return SampleUniform32(src) }
func (d Uniform) Float64(src source.Source) float64 { return SampleUniform64(src) }

func (d Uniform) Type() string {
	return uniformName
}

func (d Uniform) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string
	}{Type: d.Type()})
}

func (d Uniform) mustBeDist() {}

func (d Open01) Float32(src source.Source) float32 { return SampleOpen32(src) }
func (d Open01) Float64(src source.Source) float64 { return SampleOpen64(src) }

func (d Open01) Type() string {
	return open01Name
}

func (d Open01) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string
	}{Type: d.Type()})
}

func (d Open01) mustBeDist() {}

func (d Closed01) Float32(src source.Source) float32 { return SampleClosed32(src) }
func (d Closed01) Float64(src source.Source) float64 { return SampleClosed64(src) }

func (d Closed01) Type() string {
	return closed01Name
}

func (d Closed01) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string
	}{Type: d.Type()})
}

func (d Closed01) mustBeDist() {}

// NewDistribution returns the Distribution named by distType.
func NewDistribution(distType string) (Distribution, error) {
	switch distType {
	case uniformName:
		return Uniform{}, nil
	case open01Name:
		return Open01{}, nil
	case closed01Name:
		return Closed01{}, nil
	default:
		return nil, fmt.Errorf("invalid distribution: want Uniform, Open01 or Closed01 but have %q", distType)
	}
}

// DistributionFromMap reads a Distribution from a generic map, as obtained
// by unmarshalling a JSON configuration.
func DistributionFromMap(distDef map[string]interface{}) (Distribution, error) {
	distTypeVal, specified := distDef["Type"]
	if !specified {
		return nil, fmt.Errorf("map specifies no distribution type")
	}
	distTypeStr, isString := distTypeVal.(string)
	if !isString {
		return nil, fmt.Errorf("value for key Type of map should be of type string")
	}
	return NewDistribution(distTypeStr)
}
