// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"io"

	"github.com/spf13/viper"

	"github.com/pdiddy/growthpro/internal/async"
	"github.com/pdiddy/growthpro/internal/mockapi"
	"github.com/pdiddy/growthpro/internal/retry"
	"github.com/pdiddy/growthpro/pkg/types"
)

// Config keys, also readable as GROWTHPRO_SIMULATION_* environment variables.
const (
	keyErrorRate     = "simulation.error_rate"
	keySeed          = "simulation.seed"
	keyProfileMin    = "simulation.profile_latency.min"
	keyProfileSpread = "simulation.profile_latency.spread"
	keyHeadlineMin   = "simulation.headline_latency.min"
	keyHeadlineSpr   = "simulation.headline_latency.spread"
)

func setDefaults() {
	d := mockapi.DefaultConfig()
	viper.SetDefault(keyErrorRate, d.ErrorRate)
	viper.SetDefault(keySeed, d.Seed)
	viper.SetDefault(keyProfileMin, d.ProfileLatency.Min)
	viper.SetDefault(keyProfileSpread, d.ProfileLatency.Spread)
	viper.SetDefault(keyHeadlineMin, d.HeadlineLatency.Min)
	viper.SetDefault(keyHeadlineSpr, d.HeadlineLatency.Spread)
}

// simulationConfig reads the simulation settings from flags, environment,
// config file, and defaults, in that order of precedence.
func simulationConfig() types.SimulationConfig {
	return types.SimulationConfig{
		ErrorRate: viper.GetFloat64(keyErrorRate),
		Seed:      viper.GetUint64(keySeed),
		ProfileLatency: types.LatencyRange{
			Min:    viper.GetDuration(keyProfileMin),
			Spread: viper.GetDuration(keyProfileSpread),
		},
		HeadlineLatency: types.LatencyRange{
			Min:    viper.GetDuration(keyHeadlineMin),
			Spread: viper.GetDuration(keyHeadlineSpr),
		},
	}
}

func newService() (*mockapi.Service, error) {
	return mockapi.New(simulationConfig())
}

// await resolves a service call, re-issuing it up to retries times on
// transient failures when retries is positive. Retry notices go to w.
func await[T any](ctx context.Context, retries int, w io.Writer, call func(context.Context) *async.Future[T]) (T, error) {
	if retries > 0 {
		return retry.Do(ctx, retries, w, call)
	}
	return call(ctx).AwaitContext(ctx)
}
