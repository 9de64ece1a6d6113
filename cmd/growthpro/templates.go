// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/growthpro/internal/headline"
	"github.com/pdiddy/growthpro/internal/report"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the SEO headline templates",
	Run: func(cmd *cobra.Command, args []string) {
		report.FormatTemplates(headline.Templates(), cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(templatesCmd)
}
