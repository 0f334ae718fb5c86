// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mantlekit/mantle/internal/validate"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check theme installation and project conventions",
	Long: `Probe the project and theme filesystem state and report problems.

Hard errors (theme missing, declared feature bundles without entry files)
make the command exit non-zero; warnings are advisory and never affect the
exit code.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		rep := validate.Run(cfg)
		printReport(cmd, rep)

		if !rep.IsValid() {
			return fmt.Errorf("validation failed with %d error(s)", len(rep.Errors))
		}
		return nil
	},
}

// printReport renders findings grouped by severity.
func printReport(cmd *cobra.Command, rep *validate.Report) {
	out := cmd.OutOrStdout()

	for _, f := range rep.Errors {
		fmt.Fprintf(out, "%s %s\n  %s\n", ErrorStyle.Render("error["+f.Code+"]"), f.Message, PathStyle.Render(f.Path))
	}
	for _, f := range rep.Warnings {
		fmt.Fprintf(out, "%s %s\n  %s\n", WarningStyle.Render("warning["+f.Code+"]"), f.Message, PathStyle.Render(f.Path))
	}

	if rep.IsValid() {
		fmt.Fprintf(out, "%s %d warning(s)\n", SuccessStyle.Render("valid:"), len(rep.Warnings))
		return
	}
	fmt.Fprintf(out, "%s %d error(s), %d warning(s)\n", ErrorStyle.Render("invalid:"), len(rep.Errors), len(rep.Warnings))
}
