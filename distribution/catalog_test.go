package distribution_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/scmforge/distribution"
)

func seeded(seed uint64) rand.Source { return rand.NewPCG(seed, 0x5eed) }

// TestNames_SortedAndComplete verifies all eight families are registered.
func TestNames_SortedAndComplete(t *testing.T) {
	assert.Equal(t, []string{
		"bernoulli", "binomial", "discrete_uniform", "laplace",
		"lognormal", "normal", "poisson", "uniform",
	}, distribution.Names())
}

// TestDescribe_SpecsAreConsistent checks every declared spec keeps
// Min ≤ SliderMin ≤ Default ≤ SliderMax ≤ Max.
func TestDescribe_SpecsAreConsistent(t *testing.T) {
	for _, name := range distribution.Names() {
		specs, err := distribution.Describe(name)
		require.NoError(t, err, name)
		require.NotEmpty(t, specs, name)
		for pname, ps := range specs {
			assert.Equal(t, pname, ps.Name)
			assert.LessOrEqual(t, ps.Min, ps.SliderMin, "%s.%s", name, pname)
			assert.LessOrEqual(t, ps.SliderMin, ps.Default, "%s.%s", name, pname)
			assert.LessOrEqual(t, ps.Default, ps.SliderMax, "%s.%s", name, pname)
			assert.LessOrEqual(t, ps.SliderMax, ps.Max, "%s.%s", name, pname)
			assert.Greater(t, ps.Step, 0.0)
		}
	}
}

// TestDescribe_UnknownFamily returns ErrUnknownFamily.
func TestDescribe_UnknownFamily(t *testing.T) {
	_, err := distribution.Describe("cauchy")
	assert.ErrorIs(t, err, distribution.ErrUnknownFamily)

	_, err = distribution.Sample("cauchy", nil, 3, seeded(1))
	assert.ErrorIs(t, err, distribution.ErrUnknownFamily)
}

// TestDefaults_ValidateCleanly ensures every family's defaults pass validation.
func TestDefaults_ValidateCleanly(t *testing.T) {
	for _, name := range distribution.Names() {
		d, err := distribution.Defaults(name)
		require.NoError(t, err)
		assert.NoError(t, distribution.Validate(name, d), name)
	}
}

// TestValidate_Rejections covers the InvalidParameters cases.
func TestValidate_Rejections(t *testing.T) {
	cases := []struct {
		name   string
		family string
		params map[string]float64
	}{
		{"missing", distribution.Normal, map[string]float64{"loc": 0}},
		{"above max", distribution.Bernoulli, map[string]float64{"p": 1.5}},
		{"below min", distribution.Normal, map[string]float64{"loc": 0, "scale": -1}},
		{"nan", distribution.Poisson, map[string]float64{"lam": math.NaN()}},
		{"stray", distribution.Bernoulli, map[string]float64{"p": 0.5, "q": 1}},
		{"low above high", distribution.Uniform, map[string]float64{"low": 2, "high": 1}},
		{"discrete low above high", distribution.DiscreteUniform, map[string]float64{"low": 5, "high": 4}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := distribution.Validate(tc.family, tc.params)
			assert.ErrorIs(t, err, distribution.ErrInvalidParameters)
		})
	}
}
