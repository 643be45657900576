// Package config handles study file loading and management
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gcat/gcat/pkg/convergence"
	"github.com/gcat/gcat/pkg/types"
	"gopkg.in/yaml.v3"
)

// Manager handles study file operations
type Manager struct{}

// NewManager creates a new study file manager
func NewManager() *Manager {
	return &Manager{}
}

// LoadStudy loads a study from a JSON or YAML file
func (m *Manager) LoadStudy(path string) (*types.Study, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read study file: %w", err)
	}
	return m.ParseStudy(data)
}

// ParseStudy parses and validates study file contents
func (m *Manager) ParseStudy(data []byte) (*types.Study, error) {
	var study types.Study

	// Try JSON first
	if err := json.Unmarshal(data, &study); err == nil {
		return m.validateStudy(&study)
	}

	study = types.Study{}
	if err := yaml.Unmarshal(data, &study); err == nil {
		return m.validateStudy(&study)
	}

	return nil, fmt.Errorf("failed to parse study as JSON or YAML")
}

// SaveStudy writes a study as JSON when path ends in .json, YAML otherwise
func (m *Manager) SaveStudy(path string, study *types.Study) error {
	var (
		data []byte
		err  error
	)
	if strings.EqualFold(filepath.Ext(path), ".json") {
		data, err = json.MarshalIndent(study, "", "  ")
	} else {
		data, err = yaml.Marshal(study)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal study: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write study: %w", err)
	}
	return nil
}

// ValidateStudy checks the structure of a study
func (m *Manager) ValidateStudy(study *types.Study) error {
	if study.Version != types.StudyVersion {
		return fmt.Errorf("unsupported study version: %q", study.Version)
	}

	if len(study.Grids) != len(types.GridLevels) {
		return fmt.Errorf("expected %d grids (fine, medium, coarse), got %d", len(types.GridLevels), len(study.Grids))
	}

	needsDomain := false
	for i, grid := range study.Grids {
		if err := m.validateGrid(grid); err != nil {
			return fmt.Errorf("%s grid: %w", types.GridLevels[i], err)
		}
		if !grid.HasSize() {
			needsDomain = true
		}
	}

	if err := ValidateDomain(study.Domain, needsDomain); err != nil {
		return err
	}

	names := make(map[string]bool)
	for i, q := range study.Quantities {
		if q.Name == "" {
			return fmt.Errorf("quantity %d: missing name", i)
		}
		if names[q.Name] {
			return fmt.Errorf("duplicate quantity name: %s", q.Name)
		}
		names[q.Name] = true

		if len(q.Values) != len(types.GridLevels) {
			return fmt.Errorf("quantity '%s': expected %d values, got %d", q.Name, len(types.GridLevels), len(q.Values))
		}
	}

	return nil
}

// ValidateDomain enforces that area and volume are mutually exclusive and,
// when required, that exactly one of them is given
func ValidateDomain(domain types.Domain, required bool) error {
	if domain.Area < 0 || domain.Volume < 0 {
		return fmt.Errorf("domain area and volume must be non-negative")
	}
	if domain.Area > 0 && domain.Volume > 0 {
		return fmt.Errorf("area is mutually exclusive with volume")
	}
	if required && domain.Measure() == 0 {
		return fmt.Errorf("expected one of the options: [area volume]")
	}
	return nil
}

// GetDefaultStudy returns a template study for the given number of dimensions
func (m *Manager) GetDefaultStudy(volume bool) *types.Study {
	study := &types.Study{
		Version: types.StudyVersion,
		Name:    "my-study",
		Grids: []types.Grid{
			{Name: "fine", Elements: 18000},
			{Name: "medium", Elements: 8000},
			{Name: "coarse", Elements: 4500},
		},
		Quantities: []types.Quantity{
			{Name: "drag", Unit: "N", Values: []float64{6.063, 5.972, 5.863}},
		},
		Solver: defaultSolverConfig(),
	}
	if volume {
		study.Domain.Volume = 1.0
	} else {
		study.Domain.Area = 1.0
	}
	return study
}

// Private methods

func (m *Manager) validateStudy(study *types.Study) (*types.Study, error) {
	if err := m.ValidateStudy(study); err != nil {
		return nil, err
	}
	return study, nil
}

func (m *Manager) validateGrid(grid types.Grid) error {
	if grid.HasSize() {
		if *grid.Size <= 0 {
			return fmt.Errorf("size must be positive")
		}
		return nil
	}
	if grid.Elements <= 0 {
		return fmt.Errorf("either elements or size is required")
	}
	return nil
}

func defaultSolverConfig() *types.SolverConfig {
	omega := convergence.DefaultOmega
	tol := convergence.DefaultTolerance
	safety := convergence.DefaultSafetyFactor
	return &types.SolverConfig{
		Omega:        &omega,
		Tolerance:    &tol,
		SafetyFactor: &safety,
	}
}
