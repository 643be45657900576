// Package report renders grid summaries and convergence reports
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/gcat/gcat/pkg/types"
	"gopkg.in/yaml.v3"
)

// ParseFormat maps a user supplied format name to an OutputFormat
func ParseFormat(s string) (types.OutputFormat, error) {
	switch f := types.OutputFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case "", types.OutputFormatText:
		return types.OutputFormatText, nil
	case types.OutputFormatJSON, types.OutputFormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q (expected text, json or yaml)", s)
	}
}

// Renderer writes reports in one output format
type Renderer struct {
	format  types.OutputFormat
	out     io.Writer
	noColor bool
}

// NewRenderer creates a renderer writing to out
func NewRenderer(format types.OutputFormat, out io.Writer, noColor bool) *Renderer {
	return &Renderer{format: format, out: out, noColor: noColor}
}

// Render writes the report
func (r *Renderer) Render(report *types.Report) error {
	switch r.format {
	case types.OutputFormatJSON:
		enc := json.NewEncoder(r.out)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case types.OutputFormatYAML:
		enc := yaml.NewEncoder(r.out)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return err
		}
		return enc.Close()
	default:
		return writeText(r.out, report, r.noColor)
	}
}

// RenderGrids writes a grid summary, using the check layout for text
func (r *Renderer) RenderGrids(grids types.GridSummary) error {
	switch r.format {
	case types.OutputFormatJSON:
		enc := json.NewEncoder(r.out)
		enc.SetIndent("", "  ")
		return enc.Encode(grids)
	case types.OutputFormatYAML:
		enc := yaml.NewEncoder(r.out)
		enc.SetIndent(2)
		if err := enc.Encode(grids); err != nil {
			return err
		}
		return enc.Close()
	default:
		return WriteCheck(r.out, grids)
	}
}

// WriteCheck prints representative sizes and refinement ratios:
//
//	Representative grid size
//	------------------------
//	h1 = 0.010000
//	...
//	Refinement ratio
//	----------------
//	r21 = 2.000000
func WriteCheck(w io.Writer, grids types.GridSummary) error {
	var b strings.Builder
	underlined(&b, "Representative grid size")
	for i, l := range grids.Levels {
		fmt.Fprintf(&b, "h%d = %.6f\n", i+1, l.Size)
	}
	b.WriteString("\n")
	underlined(&b, "Refinement ratio")
	fmt.Fprintf(&b, "r21 = %.6f\n", grids.RefinementRatio21)
	fmt.Fprintf(&b, "r32 = %.6f\n", grids.RefinementRatio32)

	_, err := io.WriteString(w, b.String())
	return err
}

func underlined(b *strings.Builder, title string) {
	b.WriteString(title + "\n")
	b.WriteString(strings.Repeat("-", len(title)) + "\n")
}
