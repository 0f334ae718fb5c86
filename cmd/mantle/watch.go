// SPDX-License-Identifier: MPL-2.0

package main

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mantlekit/mantle/internal/validate"
	"github.com/mantlekit/mantle/internal/watch"
	"github.com/mantlekit/mantle/pkg/resource"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-validate whenever theme or override sources change",
	Long: `Watch the theme package and every override directory, re-running
validation after each debounced batch of changes. Because resolution never
caches, each run reflects the filesystem exactly as it stands.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadEngine()
		if err != nil {
			return err
		}

		roots := []string{cfg.ThemePath()}
		for _, t := range resource.Types() {
			roots = append(roots, cfg.OverrideDir(t))
		}

		w, err := watch.New(watch.Config{
			Roots:  roots,
			Stderr: cmd.ErrOrStderr(),
			OnChange: func(ctx context.Context, changed []string) error {
				log.Info("sources changed", "files", len(changed))
				rep := validate.Run(cfg)
				printReport(cmd, rep)
				return nil
			},
		})
		if err != nil {
			return err
		}

		log.Info("watching for changes", "roots", len(roots))
		rep := validate.Run(cfg)
		printReport(cmd, rep)

		return w.Run(cmd.Context())
	},
}
