package breadth

import "nse-breadth/internal/models"

// Classifier assigns each instrument a breadth category from its percent
// change and volume ratio. Classification is pure: the same quote and
// thresholds always produce the same category.
type Classifier struct {
	t Thresholds
}

// NewClassifier creates a classifier with the given thresholds.
func NewClassifier(t Thresholds) *Classifier {
	return &Classifier{t: t}
}

// Classify returns the category for a single quote. Cutoffs are strict:
// a move of exactly StrongMove percent stays Neutral.
func (c *Classifier) Classify(q models.InstrumentQuote) models.Category {
	switch {
	case q.PctChange > c.t.StrongMove && q.VolumeRatio > c.t.VolumeMultiplier:
		return models.StrongBull
	case q.PctChange > c.t.StrongMove:
		return models.WeakBull
	case q.PctChange < -c.t.StrongMove && q.VolumeRatio > c.t.VolumeMultiplier:
		return models.StrongBear
	case q.PctChange < -c.t.StrongMove:
		return models.WeakBear
	default:
		return models.Neutral
	}
}

// ClassifyAll classifies a slice of quotes, preserving order.
func (c *Classifier) ClassifyAll(quotes []models.InstrumentQuote) []models.ClassifiedInstrument {
	out := make([]models.ClassifiedInstrument, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, models.ClassifiedInstrument{
			InstrumentQuote: q,
			Category:        c.Classify(q),
		})
	}
	return out
}
