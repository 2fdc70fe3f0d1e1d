package commands

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/c360studio/swanconfig/config"
)

// NewWatchCommand returns the watch subcommand. It re-renders the command
// file whenever the model definition changes, until interrupted.
func NewWatchCommand(cfg *config.Config) *cobra.Command {
	var definition string

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-render the command file whenever the definition changes",
		RunE: func(cmd *cobra.Command, args []string) error {
			if definition != "" {
				cfg.Render.Definition = definition
			}
			return watch(cmd, cfg)
		},
	}

	cmd.Flags().StringVarP(&definition, "definition", "d", "", "Model definition path (overrides config)")
	return cmd
}

func watch(cmd *cobra.Command, cfg *config.Config) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory rather than the file so editors that replace the
	// file on save do not silently drop the watch.
	dir := filepath.Dir(cfg.Render.Definition)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	target := filepath.Clean(cfg.Render.Definition)
	slog.Info("watching model definition", slog.String("path", target))

	if path, err := renderOnce(cfg); err != nil {
		slog.Error("render failed", slog.String("error", err.Error()))
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), path)
	}

	for {
		select {
		case <-cmd.Context().Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			slog.Debug("definition changed", slog.String("op", event.Op.String()))
			if path, err := renderOnce(cfg); err != nil {
				slog.Error("render failed", slog.String("error", err.Error()))
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("watch error", slog.String("error", err.Error()))
		}
	}
}
