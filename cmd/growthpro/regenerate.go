// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/growthpro/internal/async"
	"github.com/pdiddy/growthpro/internal/form"
	"github.com/pdiddy/growthpro/internal/report"
	"github.com/pdiddy/growthpro/internal/synth"
	"github.com/pdiddy/growthpro/pkg/types"
)

const maxRating = synth.MinRating + synth.RatingSpan

var regenerateCmd = &cobra.Command{
	Use:   "regenerate",
	Short: "Generate a new SEO headline for an existing profile",
	Long: `Regenerate produces a new headline for a business profile you already
have. The rating and review count are reused as-is.

Pass --profile with a file written by analyze --save (the file is updated in
place), or give --name, --location, --rating, and --reviews directly.`,
	RunE: runRegenerate,
}

func init() {
	regenerateCmd.Flags().String("profile", "", "YAML profile written by analyze --save")
	regenerateCmd.Flags().String("name", "", "business name")
	regenerateCmd.Flags().String("location", "", "business location")
	regenerateCmd.Flags().Float64("rating", 0, "current rating")
	regenerateCmd.Flags().Int("reviews", 0, "current review count")
	regenerateCmd.Flags().Bool("json", false, "output the updated profile as JSON")
	regenerateCmd.Flags().Int("retries", 0, "retry transient failures up to this many times")

	for _, f := range []string{"name", "location", "rating", "reviews"} {
		regenerateCmd.MarkFlagsMutuallyExclusive("profile", f)
	}

	rootCmd.AddCommand(regenerateCmd)
}

func runRegenerate(cmd *cobra.Command, args []string) error {
	profilePath, _ := cmd.Flags().GetString("profile")
	asJSON, _ := cmd.Flags().GetBool("json")
	retries, _ := cmd.Flags().GetInt("retries")
	stderr := cmd.ErrOrStderr()

	p, err := profileFromFlags(cmd, profilePath)
	if err != nil {
		return err
	}

	svc, err := newService()
	if err != nil {
		return fmt.Errorf("configuring service: %w", err)
	}

	h, err := await(cmd.Context(), retries, stderr, func(ctx context.Context) *async.Future[string] {
		f := svc.RegenerateHeadline(ctx, p.Name, p.Location, p.Rating, p.Reviews)
		fmt.Fprintf(stderr, "[%s] Generating...\n", f.ID())
		return f
	})
	if err != nil {
		return fmt.Errorf("failed to regenerate headline: %w", err)
	}
	p = p.WithHeadline(h)
	fmt.Fprintln(stderr, "Headline updated! Generated a new SEO-optimized headline")

	if profilePath != "" {
		if err := report.SaveProfile(profilePath, p); err != nil {
			return fmt.Errorf("saving profile: %w", err)
		}
	}

	if asJSON {
		return report.FormatJSON(p, cmd.OutOrStdout())
	}
	fmt.Fprintln(cmd.OutOrStdout(), p.Headline)
	return nil
}

// profileFromFlags loads the profile file when path is set, and otherwise
// assembles a profile from the individual flags. Either way the result
// passes checkProfile.
func profileFromFlags(cmd *cobra.Command, path string) (types.BusinessProfile, error) {
	if path != "" {
		p, err := report.LoadProfile(path)
		if err != nil {
			return types.BusinessProfile{}, err
		}
		return checkProfile(p)
	}

	for _, f := range []string{"rating", "reviews"} {
		if !cmd.Flags().Changed(f) {
			return types.BusinessProfile{}, fmt.Errorf("--%s is required without --profile", f)
		}
	}

	name, _ := cmd.Flags().GetString("name")
	location, _ := cmd.Flags().GetString("location")
	rating, _ := cmd.Flags().GetFloat64("rating")
	reviews, _ := cmd.Flags().GetInt("reviews")

	return checkProfile(types.BusinessProfile{
		Name:     name,
		Location: location,
		Rating:   rating,
		Reviews:  reviews,
	})
}

// checkProfile applies the form rules to name and location (returning them
// trimmed) and requires a rating in the synthesized range and a
// non-negative review count.
func checkProfile(p types.BusinessProfile) (types.BusinessProfile, error) {
	in, err := form.Validate(p.Name, p.Location)
	if err != nil {
		return types.BusinessProfile{}, err
	}
	if p.Rating < synth.MinRating || p.Rating > maxRating {
		return types.BusinessProfile{}, fmt.Errorf("rating %v outside [%v, %v]", p.Rating, synth.MinRating, maxRating)
	}
	if p.Reviews < 0 {
		return types.BusinessProfile{}, fmt.Errorf("reviews must not be negative, got %d", p.Reviews)
	}

	p.Name = in.Name
	p.Location = in.Location
	return p, nil
}
