package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gcat/gcat/pkg/config"
	"github.com/spf13/cobra"
)

func (c *CLI) newInitCmd() *cobra.Command {
	var (
		format string
		force  bool
		volume bool
		output string
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a template study file",
		Long: `Write a study template with three grids, one quantity and the default
solver settings. Edit the grids and quantities, then run gcat analyze.`,
		Args: cobra.NoArgs,
		RunE: c.run(func(cmd *cobra.Command, args []string) error {
			return c.runInit(output, format, volume, force)
		}),
	}

	cmd.Flags().StringVarP(&format, "format", "f", "yaml", "template format (yaml, json)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output path (default: study.<format> in the project root)")
	cmd.Flags().BoolVar(&volume, "volume", false, "create a three-dimensional study")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing study file")

	return cmd
}

func (c *CLI) runInit(path, format string, volume, force bool) error {
	if format != "yaml" && format != "json" {
		return fmt.Errorf("unsupported template format %q (expected yaml or json)", format)
	}
	if path == "" {
		path = filepath.Join(c.config.ProjectRoot, "study."+format)
	}

	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists. Use --force to overwrite", path)
	}

	manager := config.NewManager()
	if err := manager.SaveStudy(path, manager.GetDefaultStudy(volume)); err != nil {
		return err
	}

	c.printSuccess(fmt.Sprintf("Created study template at %s", path))
	c.printInfo("Edit the grids and quantities, then run: gcat analyze --study " + path)
	return nil
}
