package breadth

import (
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"nse-breadth/internal/models"
)

// quoteGen generates valid quotes with realistic percent changes and
// volume ratios.
func quoteGen() gopter.Gen {
	return gopter.CombineGens(
		gen.Float64Range(-15.0, 15.0),
		gen.Float64Range(0.0, 5.0),
	).Map(func(vals []interface{}) models.InstrumentQuote {
		return quote("GEN", vals[0].(float64), vals[1].(float64))
	})
}

func quoteSliceGen(maxLen int) gopter.Gen {
	return gen.SliceOfN(maxLen, quoteGen())
}

// TestProperty_BreadthScoreWithinBounds tests that the weighted score
// always stays within [-2, +2].
func TestProperty_BreadthScoreWithinBounds(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	parameters.Rng.Seed(time.Now().UnixNano())
	parameters.MaxShrinkCount = 0

	properties := gopter.NewProperties(parameters)

	properties.Property("Breadth score is within [-2, +2]", prop.ForAll(
		func(quotes []models.InstrumentQuote) bool {
			snap := Score(NewClassifier(DefaultThresholds()).ClassifyAll(quotes))
			return snap.Score >= -2 && snap.Score <= 2
		},
		quoteSliceGen(100),
	))

	properties.TestingRun(t)
}

// TestProperty_CategoryCountsConsistent tests that category counts always
// sum to the input size and derived totals agree.
func TestProperty_CategoryCountsConsistent(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	parameters.Rng.Seed(time.Now().UnixNano())
	parameters.MaxShrinkCount = 0

	properties := gopter.NewProperties(parameters)

	properties.Property("Category counts sum to total", prop.ForAll(
		func(quotes []models.InstrumentQuote) bool {
			snap := Score(NewClassifier(DefaultThresholds()).ClassifyAll(quotes))
			sum := snap.StrongBulls + snap.WeakBulls + snap.Neutral + snap.WeakBears + snap.StrongBears
			return sum == snap.Total &&
				snap.Total == len(quotes) &&
				snap.TotalBulls == snap.StrongBulls+snap.WeakBulls &&
				snap.TotalBears == snap.StrongBears+snap.WeakBears
		},
		quoteSliceGen(100),
	))

	properties.TestingRun(t)
}

// TestProperty_ClassifierDeterministic tests that classification is a pure
// function of the quote.
func TestProperty_ClassifierDeterministic(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	parameters.Rng.Seed(time.Now().UnixNano())
	parameters.MaxShrinkCount = 0

	properties := gopter.NewProperties(parameters)
	c := NewClassifier(DefaultThresholds())

	properties.Property("Same quote always classifies identically", prop.ForAll(
		func(pct, vol float64) bool {
			q := quote("X", pct, vol)
			return c.Classify(q) == c.Classify(q)
		},
		gen.Float64Range(-20, 20),
		gen.Float64Range(0, 5),
	))

	properties.TestingRun(t)
}

// TestProperty_RegimeMonotonic tests that a higher score never maps to a
// more bearish regime.
func TestProperty_RegimeMonotonic(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	parameters.Rng.Seed(time.Now().UnixNano())
	parameters.MaxShrinkCount = 0

	rank := map[models.RegimeKey]int{
		models.RegimeExtremeBear: 0,
		models.RegimeStrongBear:  1,
		models.RegimeWeakBear:    2,
		models.RegimeNoTrade:     3,
		models.RegimeWeakBull:    4,
		models.RegimeStrongBull:  5,
		models.RegimeExtremeBull: 6,
	}

	properties := gopter.NewProperties(parameters)
	rc := NewRegimeClassifier(DefaultThresholds())

	properties.Property("Regime rank is monotonic in score", prop.ForAll(
		func(a, b float64) bool {
			lo, hi := a, b
			if lo > hi {
				lo, hi = hi, lo
			}
			return rank[rc.Classify(lo, 60).Regime.Key] <= rank[rc.Classify(hi, 60).Regime.Key]
		},
		gen.Float64Range(-2, 2),
		gen.Float64Range(-2, 2),
	))

	properties.TestingRun(t)
}

// TestProperty_UltraScoreWithinBounds tests the magnitude score range.
func TestProperty_UltraScoreWithinBounds(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	parameters.Rng.Seed(time.Now().UnixNano())
	parameters.MaxShrinkCount = 0

	properties := gopter.NewProperties(parameters)

	properties.Property("Ultra score is within [-3, +3]", prop.ForAll(
		func(quotes []models.InstrumentQuote) bool {
			snap := Magnitude(DefaultThresholds(), quotes)
			return snap.UltraScore >= -3 && snap.UltraScore <= 3
		},
		quoteSliceGen(100),
	))

	properties.TestingRun(t)
}
