package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gcat/gcat/pkg/config"
	"github.com/gcat/gcat/pkg/validation"
	"github.com/spf13/cobra"
)

func (c *CLI) newValidateCmd() *cobra.Command {
	var studyFile string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a study file",
		Long: `Check a study file for structural errors and report warnings about
refinement ratios, safety factors and quantities that are unlikely to
give a meaningful GCI.`,
		Args: cobra.NoArgs,
		RunE: c.run(func(cmd *cobra.Command, args []string) error {
			return c.runValidate(studyFile)
		}),
	}

	cmd.Flags().StringVarP(&studyFile, "study", "s", "", "study file (JSON or YAML)")
	_ = cmd.MarkFlagRequired("study")

	return cmd
}

func (c *CLI) runValidate(path string) error {
	study, err := config.NewManager().LoadStudy(path)
	if err != nil {
		return fmt.Errorf("study is invalid: %w", err)
	}

	result := validation.NewStudyValidator().Validate(study)

	printLevel := func(level validation.ValidationLevel, title, mark string, paint func(a ...interface{}) string) {
		if result.Count(level) == 0 {
			return
		}
		fmt.Fprintln(c.output, paint(title))
		for _, e := range result.Errors {
			if e.Level == level {
				fmt.Fprintf(c.output, "  %s %s.%s: %s\n", mark, e.Subject, e.Field, e.Message)
			}
		}
	}

	printLevel(validation.ValidationLevelError, "Errors:", "✗", color.New(color.FgRed).SprintFunc())
	printLevel(validation.ValidationLevelWarning, "Warnings:", "⚠", color.New(color.FgYellow).SprintFunc())
	printLevel(validation.ValidationLevelInfo, "Notes:", "ℹ", color.New(color.FgCyan).SprintFunc())

	if !result.Valid {
		return fmt.Errorf("study has %d error(s)", result.Count(validation.ValidationLevelError))
	}
	c.printSuccess(fmt.Sprintf("Study %q is valid", study.Name))
	return nil
}
