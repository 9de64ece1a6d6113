// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/growthpro/internal/async"
	"github.com/pdiddy/growthpro/internal/form"
	"github.com/pdiddy/growthpro/internal/report"
	"github.com/pdiddy/growthpro/pkg/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Look up a business and generate an SEO headline",
	Long: `Analyze looks up a business by name and location and prints its rating,
review count, and an SEO headline. Both fields are trimmed and must be at
least two characters long.

Use --save to keep the profile for a later regenerate.`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().String("name", "", "business name")
	analyzeCmd.Flags().String("location", "", "business location (e.g. \"New York, NY\")")
	analyzeCmd.Flags().Bool("json", false, "output the profile as JSON")
	analyzeCmd.Flags().String("save", "", "write the profile to this YAML file")
	analyzeCmd.Flags().Int("retries", 0, "retry transient failures up to this many times")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	name, _ := cmd.Flags().GetString("name")
	location, _ := cmd.Flags().GetString("location")
	asJSON, _ := cmd.Flags().GetBool("json")
	savePath, _ := cmd.Flags().GetString("save")
	retries, _ := cmd.Flags().GetInt("retries")
	stderr := cmd.ErrOrStderr()

	in, err := form.Validate(name, location)
	if err != nil {
		return err
	}

	svc, err := newService()
	if err != nil {
		return fmt.Errorf("configuring service: %w", err)
	}

	p, err := await(cmd.Context(), retries, stderr, func(ctx context.Context) *async.Future[types.BusinessProfile] {
		f := svc.GetBusinessData(ctx, in.Name, in.Location)
		fmt.Fprintf(stderr, "[%s] Analyzing %s in %s...\n", f.ID(), in.Name, in.Location)
		return f
	})
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}
	fmt.Fprintf(stderr, "Business analysis complete! Successfully analyzed %s in %s\n", in.Name, in.Location)

	if savePath != "" {
		if err := report.SaveProfile(savePath, p); err != nil {
			return fmt.Errorf("saving profile: %w", err)
		}
		fmt.Fprintf(stderr, "Saved profile to %s\n", savePath)
	}

	if asJSON {
		return report.FormatJSON(p, cmd.OutOrStdout())
	}
	report.FormatCard(p, cmd.OutOrStdout())
	return nil
}
