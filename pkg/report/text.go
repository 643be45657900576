package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/gcat/gcat/pkg/types"
)

type palette struct {
	title, ok, warn, fail *color.Color
}

func newPalette(noColor bool) palette {
	p := palette{
		title: color.New(color.Bold),
		ok:    color.New(color.FgGreen),
		warn:  color.New(color.FgYellow),
		fail:  color.New(color.FgRed),
	}
	// Without noColor, color.NoColor decides, which is set when stdout
	// is not a terminal.
	if noColor {
		for _, c := range []*color.Color{p.title, p.ok, p.warn, p.fail} {
			c.DisableColor()
		}
	}
	return p
}

func writeText(w io.Writer, report *types.Report, noColor bool) error {
	p := newPalette(noColor)
	var b strings.Builder

	b.WriteString(p.title.Sprintf("Grid convergence study: %s", report.Study) + "\n")
	fmt.Fprintf(&b, "Report %s (%s, safety factor %.2f)\n\n", report.ID, report.Status(), report.SafetyFactor)

	underlined(&b, "Grids")
	tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "LEVEL\tNAME\tELEMENTS\th")
	for _, l := range report.Grids.Levels {
		elements := "-"
		if l.Elements > 0 {
			elements = fmt.Sprintf("%d", l.Elements)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%.6f\n", l.Level, l.Name, elements, l.Size)
	}
	tw.Flush()
	fmt.Fprintf(&b, "r21 = %.6f  r32 = %.6f\n\n", report.Grids.RefinementRatio21, report.Grids.RefinementRatio32)

	underlined(&b, "Quantities")
	tw = tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tp\tf_exact\te21\te_ext21\tGCI21\tGCI32\tRATIO\tSTATUS")
	for _, q := range report.Quantities {
		if q.Failed() {
			fmt.Fprintf(tw, "%s\t-\t-\t-\t-\t-\t-\t-\t%s\n", quantityLabel(q), p.fail.Sprint("error: "+q.Error))
			continue
		}
		fmt.Fprintf(tw, "%s\t%.4f\t%.6g\t%s\t%s\t%s\t%s\t%.4f\t%s\n",
			quantityLabel(q), q.Order, q.Extrapolated,
			percent(q.RelativeError21), percent(q.ExtrapolatedError),
			percent(q.GCIFine21), percent(q.GCIFine32),
			q.AsymptoticRatio, status(p, q))
	}
	tw.Flush()

	_, err := io.WriteString(w, b.String())
	return err
}

func quantityLabel(q types.QuantityResult) string {
	if q.Unit == "" {
		return q.Name
	}
	return fmt.Sprintf("%s [%s]", q.Name, q.Unit)
}

func percent(v float64) string {
	return fmt.Sprintf("%.4f%%", 100*v)
}

func status(p palette, q types.QuantityResult) string {
	var parts []string
	if q.InAsymptoticRange {
		parts = append(parts, p.ok.Sprint("asymptotic"))
	} else {
		parts = append(parts, p.warn.Sprint("not asymptotic"))
	}
	if q.Oscillatory {
		parts = append(parts, p.warn.Sprint("oscillatory"))
	}
	return strings.Join(parts, ", ")
}
