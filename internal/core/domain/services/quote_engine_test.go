package services_test

import (
	"math"
	"testing"

	"logiflow/internal/core/domain/model/kernel"
	"logiflow/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuoteEngine_Compute(t *testing.T) {
	tests := []struct {
		name      string
		mode      kernel.Mode
		weightKg  float64
		volumeCbm float64
		wantPrice float64
		wantETA   int
	}{
		{name: "sea small parcel", mode: kernel.ModeSea, weightKg: 10, volumeCbm: 2, wantPrice: 98.0, wantETA: 21},
		{name: "air heavy", mode: kernel.ModeAir, weightKg: 100, volumeCbm: 5, wantPrice: 410.0, wantETA: 3},
		{name: "road", mode: kernel.ModeRoad, weightKg: 10, volumeCbm: 2, wantPrice: 107.6, wantETA: 7},
		{name: "unknown mode falls back", mode: kernel.Mode("unknown-value"), weightKg: 10, volumeCbm: 2, wantPrice: 98.0, wantETA: 14},
		{name: "empty mode falls back", mode: kernel.Mode(""), weightKg: 1, volumeCbm: 1, wantPrice: 70.8, wantETA: 14},
		{name: "rounded to cents", mode: kernel.ModeRoad, weightKg: 1.234, volumeCbm: 0.333, wantPrice: 59.18, wantETA: 7},
		{name: "half cent tie rounds down to even", mode: kernel.ModeSea, weightKg: math.Ldexp(1, -60), volumeCbm: 0.03125, wantPrice: 50.62, wantETA: 21},
		{name: "half cent tie rounds up to even", mode: kernel.ModeSea, weightKg: math.Ldexp(1, -60), volumeCbm: 0.09375, wantPrice: 51.88, wantETA: 21},
	}

	engine := services.NewQuoteEngine()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cargo, err := kernel.NewCargo(tt.weightKg, tt.volumeCbm)
			require.NoError(t, err)

			got, err := engine.Compute(tt.mode, cargo)

			require.NoError(t, err)
			assert.InDelta(t, tt.wantPrice, got.PriceUSD, 1e-9)
			assert.Equal(t, tt.wantETA, got.ETADays)
		})
	}
}

func TestQuoteEngine_Compute_MatchesFormulaForEveryMode(t *testing.T) {
	multipliers := map[kernel.Mode]float64{kernel.ModeSea: 1.0, kernel.ModeRoad: 1.2, kernel.ModeAir: 2.0}
	engine := services.NewQuoteEngine()

	for _, mode := range kernel.Modes() {
		for _, weight := range []float64{0.5, 7, 250, 12000} {
			for _, volume := range []float64{0.01, 1, 33.3} {
				cargo, err := kernel.NewCargo(weight, volume)
				require.NoError(t, err)

				got, err := engine.Compute(mode, cargo)
				require.NoError(t, err)

				want := services.BasePriceUSD + multipliers[mode]*(weight*0.8+volume*20)
				assert.InDelta(t, want, got.PriceUSD, 0.005+1e-9, "mode=%s weight=%v volume=%v", mode, weight, volume)
				assert.Positive(t, got.PriceUSD)
				assert.Positive(t, got.ETADays)
			}
		}
	}
}

func TestQuoteEngine_Compute_IsDeterministic(t *testing.T) {
	cargo, err := kernel.NewCargo(42, 3.5)
	require.NoError(t, err)
	engine := services.NewQuoteEngine()

	first, err := engine.Compute(kernel.ModeAir, cargo)
	require.NoError(t, err)
	for range 10 {
		again, againErr := engine.Compute(kernel.ModeAir, cargo)
		require.NoError(t, againErr)
		assert.Equal(t, first, again)
	}
}

func TestQuoteEngine_Compute_RejectsUnconstructedCargo(t *testing.T) {
	_, err := services.NewQuoteEngine().Compute(kernel.ModeSea, kernel.Cargo{})

	require.ErrorIs(t, err, kernel.ErrCargoIsNotConstructed)
}
