// Package builder — config.go: functional options resolved before bulk
// construction begins, assembled into an opaque builderConfig from a
// variadic option list.
package builder

import "github.com/gopherplane/dcel/core"

// BuilderOption customizes FromLines/FromPolygons before construction.
type BuilderOption func(cfg *builderConfig)

// builderConfig holds the resolved bulk-construction parameters.
type builderConfig struct {
	subdivisionOpts []core.SubdivisionOption
}

// newBuilderConfig applies opts in order over the zero-value defaults.
func newBuilderConfig(opts ...BuilderOption) *builderConfig {
	cfg := &builderConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithEpsilon forwards a coordinate-comparison tolerance to the new
// subdivision's construction.
func WithEpsilon(eps float64) BuilderOption {
	return func(cfg *builderConfig) {
		cfg.subdivisionOpts = append(cfg.subdivisionOpts, core.WithEpsilon(eps))
	}
}
