package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ChicagoDave/bodycomp/internal/watch"
	"github.com/ChicagoDave/bodycomp/pkg/spec"
)

func watchCmd(a *app) *cobra.Command {
	var out outputFlags
	cmd := &cobra.Command{
		Use:   "watch [project-path]",
		Short: "Recompute whenever <project-path>/body.yaml changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			opts := out.options(cmd, a)

			recompute := func(string) {
				raw, err := loadProject(a, args[0])
				if err != nil {
					slog.Error("reloading measurements", "err", err)
					return
				}
				fmt.Fprintln(w, "---")
				if err := compute(w, *raw, out.format, opts); err != nil {
					slog.Warn("calculation failed", "err", err)
				}
			}

			watcher, err := watch.New(spec.ProjectPath(args[0]), slog.Default())
			if err != nil {
				return err
			}
			recompute("")
			return watcher.Run(cmd.Context(), recompute)
		},
	}
	out.register(cmd)
	return cmd
}
