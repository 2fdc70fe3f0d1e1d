// Package commands provides the swanconfig CLI subcommands.
package commands

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/c360studio/swanconfig/config"
	"github.com/c360studio/swanconfig/document"
	"github.com/c360studio/swanconfig/runtime"
	"github.com/c360studio/swanconfig/subcomponent"
)

// NewRenderCommand returns the render subcommand. It reads the model
// definition, generates the command file for a run and writes it into the
// run's staging directory.
func NewRenderCommand(cfg *config.Config) *cobra.Command {
	var definition string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Generate the SWAN command file from a model definition",
		RunE: func(cmd *cobra.Command, args []string) error {
			if definition != "" {
				cfg.Render.Definition = definition
			}
			path, err := renderOnce(cfg)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&definition, "definition", "d", "", "Model definition path (overrides config)")
	return cmd
}

// renderOnce generates a command file for a fresh run and returns its path.
func renderOnce(cfg *config.Config) (string, error) {
	tree, err := document.Load(cfg.Render.Definition)
	if err != nil {
		return "", err
	}

	start := cfg.Run.Start
	if start.IsZero() {
		start = time.Now().UTC().Truncate(time.Hour)
	}
	period := runtime.Period{
		Start:    start,
		Duration: subcomponent.Duration(cfg.Run.Duration),
		Interval: subcomponent.Duration(cfg.Run.Interval),
	}
	rt := runtime.New(period, "")
	rt.StagingDir = filepath.Join(cfg.Render.OutputDir, rt.ID)

	doc, err := tree.Generate(rt)
	if err != nil {
		return "", err
	}

	if err := rt.EnsureStagingDir(); err != nil {
		return "", err
	}
	path := filepath.Join(rt.StagingDir, cfg.Render.Filename)
	if err := os.WriteFile(path, []byte(doc.Input()), 0644); err != nil {
		return "", fmt.Errorf("failed to write command file: %w", err)
	}

	slog.Info("generated command file",
		slog.String("run", rt.ID),
		slog.String("path", path),
		slog.Int("sections", len(doc.Sections)))
	return path, nil
}
