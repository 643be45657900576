package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/gcat/gcat/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleGrids() types.GridSummary {
	return types.GridSummary{
		Dimension: 2,
		Levels: []types.GridResult{
			{Level: types.GridLevelFine, Name: "fine", Elements: 10000, Size: 0.01},
			{Level: types.GridLevelMedium, Name: "medium", Elements: 2500, Size: 0.02},
			{Level: types.GridLevelCoarse, Name: "coarse", Elements: 625, Size: 0.04},
		},
		RefinementRatio21: 2,
		RefinementRatio32: 2,
	}
}

func sampleReport() *types.Report {
	return &types.Report{
		ID:           "run-1",
		Study:        "cavity",
		GeneratedAt:  time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		SafetyFactor: 1.25,
		Grids:        sampleGrids(),
		Quantities: []types.QuantityResult{
			{
				Name: "drag", Unit: "N", Order: 2, Extrapolated: 1,
				RelativeError21: 0.2727, ExtrapolatedError: 0.1,
				GCIFine21: 0.1136, GCIFine32: 0.3571, AsymptoticRatio: 1.2727,
			},
			{Name: "lift", Error: "apparent order: zero difference"},
		},
	}
}

func TestWriteCheck(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCheck(&buf, sampleGrids()))

	want := strings.Join([]string{
		"Representative grid size",
		"------------------------",
		"h1 = 0.010000",
		"h2 = 0.020000",
		"h3 = 0.040000",
		"",
		"Refinement ratio",
		"----------------",
		"r21 = 2.000000",
		"r32 = 2.000000",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    types.OutputFormat
		wantErr bool
	}{
		{"", types.OutputFormatText, false},
		{"text", types.OutputFormatText, false},
		{"JSON", types.OutputFormatJSON, false},
		{" yaml ", types.OutputFormatYAML, false},
		{"xml", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestRender_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewRenderer(types.OutputFormatText, &buf, true).Render(sampleReport()))

	out := buf.String()
	assert.Contains(t, out, "Grid convergence study: cavity")
	assert.Contains(t, out, "partial")
	assert.Contains(t, out, "drag [N]")
	assert.Contains(t, out, "11.3600%")
	assert.Contains(t, out, "not asymptotic")
	assert.Contains(t, out, "error: apparent order: zero difference")
	assert.Contains(t, out, "r21 = 2.000000  r32 = 2.000000")
	assert.NotContains(t, out, "\x1b[", "colors must be disabled")
}

func TestRender_TextFollowsTerminalDetection(t *testing.T) {
	saved := color.NoColor
	t.Cleanup(func() { color.NoColor = saved })

	// color.NoColor is what fatih/color sets when stdout is redirected
	color.NoColor = true
	var piped bytes.Buffer
	require.NoError(t, NewRenderer(types.OutputFormatText, &piped, false).Render(sampleReport()))
	assert.Contains(t, piped.String(), "Grid convergence study: cavity")
	assert.NotContains(t, piped.String(), "\x1b[", "redirected output must stay plain")

	color.NoColor = false
	var tty bytes.Buffer
	require.NoError(t, NewRenderer(types.OutputFormatText, &tty, false).Render(sampleReport()))
	assert.Contains(t, tty.String(), "\x1b[1mGrid convergence study: cavity")
}

func TestRender_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewRenderer(types.OutputFormatJSON, &buf, true).Render(sampleReport()))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "cavity", decoded["study"])
	quantities := decoded["quantities"].([]interface{})
	require.Len(t, quantities, 2)
	assert.Equal(t, "drag", quantities[0].(map[string]interface{})["name"])
	assert.Equal(t, 2.0, decoded["grids"].(map[string]interface{})["r21"])
}

func TestRender_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewRenderer(types.OutputFormatYAML, &buf, true).Render(sampleReport()))

	var decoded map[string]interface{}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "run-1", decoded["id"])
	assert.Contains(t, buf.String(), "gciFine21: 0.1136")
}

func TestRenderGrids(t *testing.T) {
	var text, js bytes.Buffer
	require.NoError(t, NewRenderer(types.OutputFormatText, &text, true).RenderGrids(sampleGrids()))
	assert.True(t, strings.HasPrefix(text.String(), "Representative grid size\n"))

	require.NoError(t, NewRenderer(types.OutputFormatJSON, &js, true).RenderGrids(sampleGrids()))
	assert.Contains(t, js.String(), `"r32": 2`)
}
