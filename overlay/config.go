// Package overlay implements OverlayNG: boolean set operations
// (intersection, union, difference, symmetric difference) on geometries,
// built from noding, the planar topology graph, and precision snapping.
//
// Grounded on original_source/include/geos/operation/overlayng/*.h for
// the stage split (precondition, edge extraction, noding, graph build,
// result extraction by dimension) and on
// beetlebugorg-s57/pkg/v1/options.go's functional-options pattern for
// Config.
package overlay

import "github.com/gogeos/geos/geom"

// Op identifies one of the four boolean set operations.
type Op int

const (
	Intersection Op = iota
	Union
	Difference
	SymDifference
)

// Config collects OverlayNG's tunables. Compute starts from FLOATING
// precision with every flag off and then applies its Options.
type Config struct {
	PrecisionModel *geom.PrecisionModel
	ValidateOutput bool
	StrictMode     bool
	AreaResultOnly bool
}

// Option configures a Config.
type Option func(*Config)

// WithPrecisionModel sets the precision model edges are snapped to.
func WithPrecisionModel(pm *geom.PrecisionModel) Option {
	return func(c *Config) { c.PrecisionModel = pm }
}

// WithValidateOutput sets Config.ValidateOutput. Compute does not read
// this flag: no check of the output's rings is performed.
func WithValidateOutput(v bool) Option {
	return func(c *Config) { c.ValidateOutput = v }
}

// WithStrictMode sets Config.StrictMode. Compute does not read this
// flag; mixed-dimension operands are rejected whether or not it is set.
func WithStrictMode(v bool) Option {
	return func(c *Config) { c.StrictMode = v }
}

// WithAreaResultOnly restricts result extraction to the Area case,
// rejecting inputs that would otherwise produce a Line or Point result.
func WithAreaResultOnly(v bool) Option {
	return func(c *Config) { c.AreaResultOnly = v }
}

func newConfig(opts []Option) *Config {
	c := &Config{PrecisionModel: geom.NewFloatingPrecisionModel()}
	for _, o := range opts {
		o(c)
	}
	return c
}
