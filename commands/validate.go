package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/c360studio/swanconfig/config"
	"github.com/c360studio/swanconfig/document"
)

// NewValidateCommand returns the validate subcommand. It loads the model
// definition and checks the whole tree without writing anything.
func NewValidateCommand(cfg *config.Config) *cobra.Command {
	var definition string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a model definition without generating output",
		RunE: func(cmd *cobra.Command, args []string) error {
			if definition != "" {
				cfg.Render.Definition = definition
			}
			if _, err := document.Load(cfg.Render.Definition); err != nil {
				return fmt.Errorf("%s: %w", cfg.Render.Definition, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", cfg.Render.Definition)
			return nil
		},
	}

	cmd.Flags().StringVarP(&definition, "definition", "d", "", "Model definition path (overrides config)")
	return cmd
}
