// SPDX-License-Identifier: MPL-2.0

package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/mantlekit/mantle/internal/data"
)

var dataCmd = &cobra.Command{
	Use:   "data",
	Short: "Show the merged data catalog",
	Long: `Print the merged data catalog as JSON: every data file the theme ships
plus every user data file, decoded and keyed the way templates address them
("authors/jane.yaml" appears under "authors.jane"). User files win over the
theme's copy of the same name.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, th, err := loadEngine()
		if err != nil {
			return err
		}

		merged := data.Load(cfg, th)

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(merged)
	},
}
