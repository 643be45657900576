// Package types provides core types and configurations for gcat
package types

import (
	"time"

	"github.com/gcat/gcat/pkg/convergence"
)

// StudyVersion is the only supported study file version
const StudyVersion = "1.0"

// GridLevel names the position of a grid in a three-grid study
type GridLevel string

const (
	GridLevelFine   GridLevel = "fine"
	GridLevelMedium GridLevel = "medium"
	GridLevelCoarse GridLevel = "coarse"
)

// GridLevels lists the levels in study order (finest first)
var GridLevels = []GridLevel{GridLevelFine, GridLevelMedium, GridLevelCoarse}

// OutputFormat represents report output formats
type OutputFormat string

const (
	OutputFormatText OutputFormat = "text"
	OutputFormatJSON OutputFormat = "json"
	OutputFormatYAML OutputFormat = "yaml"
)

// LogLevel represents logging verbosity levels
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// AnalysisStatus represents the outcome of a study analysis
type AnalysisStatus string

const (
	AnalysisStatusSucceeded AnalysisStatus = "succeeded"
	AnalysisStatusPartial   AnalysisStatus = "partial"
	AnalysisStatusFailed    AnalysisStatus = "failed"
)

// Grid describes one mesh of the refinement study. Either Elements (with
// the study domain) or an explicit Size must be given.
type Grid struct {
	Name     string   `json:"name,omitempty" yaml:"name,omitempty"`
	Elements int      `json:"elements,omitempty" yaml:"elements,omitempty"`
	Size     *float64 `json:"size,omitempty" yaml:"size,omitempty"`
}

// HasSize reports whether the representative size is given explicitly
func (g Grid) HasSize() bool { return g.Size != nil }

// Domain holds the measure of the computational domain. Area and Volume
// are mutually exclusive.
type Domain struct {
	Area   float64 `json:"area,omitempty" yaml:"area,omitempty"`
	Volume float64 `json:"volume,omitempty" yaml:"volume,omitempty"`
}

// Dimension is three-dimensional when a volume is given, planar otherwise
func (d Domain) Dimension() convergence.Dimension {
	if d.Volume > 0 {
		return convergence.ThreeD
	}
	return convergence.TwoD
}

// Measure returns the area or volume of the domain
func (d Domain) Measure() float64 { return d.Area + d.Volume }

// Quantity is a scalar simulation output sampled on the three grids.
// Values are ordered fine, medium, coarse.
type Quantity struct {
	Name   string    `json:"name" yaml:"name"`
	Unit   string    `json:"unit,omitempty" yaml:"unit,omitempty"`
	Values []float64 `json:"values" yaml:"values"`
}

// SolverConfig overrides the solver and GCI defaults
type SolverConfig struct {
	Omega         *float64 `json:"omega,omitempty" yaml:"omega,omitempty"`
	Tolerance     *float64 `json:"tolerance,omitempty" yaml:"tolerance,omitempty"`
	MaxIterations *int     `json:"maxIterations,omitempty" yaml:"maxIterations,omitempty"`
	MaxResidual   *float64 `json:"maxResidual,omitempty" yaml:"maxResidual,omitempty"`
	SafetyFactor  *float64 `json:"safetyFactor,omitempty" yaml:"safetyFactor,omitempty"`
}

// Options returns the solver options with defaults for unset fields
func (c *SolverConfig) Options() convergence.SolverOptions {
	opts := convergence.DefaultSolverOptions()
	if c == nil {
		return opts
	}
	if c.Omega != nil {
		opts.Omega = *c.Omega
	}
	if c.Tolerance != nil {
		opts.Tolerance = *c.Tolerance
	}
	if c.MaxIterations != nil {
		opts.MaxIterations = *c.MaxIterations
	}
	if c.MaxResidual != nil {
		opts.MaxResidual = *c.MaxResidual
	}
	return opts
}

// GetSafetyFactor returns the GCI safety factor, 1.25 by default
func (c *SolverConfig) GetSafetyFactor() float64 {
	if c == nil || c.SafetyFactor == nil {
		return convergence.DefaultSafetyFactor
	}
	return *c.SafetyFactor
}

// Study is a three-grid refinement study as read from a study file
type Study struct {
	Version    string        `json:"version" yaml:"version"`
	Name       string        `json:"name" yaml:"name"`
	Domain     Domain        `json:"domain,omitempty" yaml:"domain,omitempty"`
	Grids      []Grid        `json:"grids" yaml:"grids"`
	Quantities []Quantity    `json:"quantities,omitempty" yaml:"quantities,omitempty"`
	Solver     *SolverConfig `json:"solver,omitempty" yaml:"solver,omitempty"`
}

// GridResult is a grid with its resolved representative size
type GridResult struct {
	Level    GridLevel `json:"level" yaml:"level"`
	Name     string    `json:"name,omitempty" yaml:"name,omitempty"`
	Elements int       `json:"elements,omitempty" yaml:"elements,omitempty"`
	Size     float64   `json:"size" yaml:"size"`
}

// GridSummary holds the representative sizes and refinement ratios
type GridSummary struct {
	Dimension         int          `json:"dimension,omitempty" yaml:"dimension,omitempty"`
	Levels            []GridResult `json:"levels" yaml:"levels"`
	RefinementRatio21 float64      `json:"r21" yaml:"r21"`
	RefinementRatio32 float64      `json:"r32" yaml:"r32"`
}

// QuantityResult holds the convergence diagnostics of one quantity
type QuantityResult struct {
	Name              string  `json:"name" yaml:"name"`
	Unit              string  `json:"unit,omitempty" yaml:"unit,omitempty"`
	Order             float64 `json:"order" yaml:"order"`
	Iterations        int     `json:"iterations" yaml:"iterations"`
	Oscillatory       bool    `json:"oscillatory" yaml:"oscillatory"`
	Extrapolated      float64 `json:"extrapolated" yaml:"extrapolated"`
	RelativeError21   float64 `json:"relativeError21" yaml:"relativeError21"`
	RelativeError32   float64 `json:"relativeError32" yaml:"relativeError32"`
	ExtrapolatedError float64 `json:"extrapolatedError21" yaml:"extrapolatedError21"`
	GCIFine21         float64 `json:"gciFine21" yaml:"gciFine21"`
	GCICoarse21       float64 `json:"gciCoarse21" yaml:"gciCoarse21"`
	GCIFine32         float64 `json:"gciFine32" yaml:"gciFine32"`
	GCICoarse32       float64 `json:"gciCoarse32" yaml:"gciCoarse32"`
	AsymptoticRatio   float64 `json:"asymptoticRatio" yaml:"asymptoticRatio"`
	InAsymptoticRange bool    `json:"inAsymptoticRange" yaml:"inAsymptoticRange"`
	Error             string  `json:"error,omitempty" yaml:"error,omitempty"`
}

// Failed reports whether the quantity could not be analysed
func (q QuantityResult) Failed() bool { return q.Error != "" }

// Report is the outcome of analysing a study
type Report struct {
	ID           string           `json:"id" yaml:"id"`
	Study        string           `json:"study" yaml:"study"`
	GeneratedAt  time.Time        `json:"generatedAt" yaml:"generatedAt"`
	Duration     time.Duration    `json:"duration" yaml:"duration"`
	SafetyFactor float64          `json:"safetyFactor" yaml:"safetyFactor"`
	Grids        GridSummary      `json:"grids" yaml:"grids"`
	Quantities   []QuantityResult `json:"quantities" yaml:"quantities"`
}

// Status summarises the per-quantity outcomes
func (r *Report) Status() AnalysisStatus {
	failed := 0
	for _, q := range r.Quantities {
		if q.Failed() {
			failed++
		}
	}
	switch {
	case failed == 0:
		return AnalysisStatusSucceeded
	case failed == len(r.Quantities):
		return AnalysisStatusFailed
	default:
		return AnalysisStatusPartial
	}
}
