package mailpost

// MaxImportance is the importance score ceiling.
const MaxImportance = 10.0

// categoryWeights biases the importance score by post kind. Rich media
// notifications rank above plain status updates.
var categoryWeights = map[Category]float64{
	CategoryPhoto:  2,
	CategoryStatus: 1,
	CategoryShared: 1,
	CategoryVideo:  3,
	CategoryLink:   1,
	CategoryGroup:  2,
	CategoryPage:   1,
	CategoryPost:   1,
}

// Importance scores a post for the downstream generator. The score is
// additive over content-length buckets (>100, >300, >500 characters),
// a per-category weight, one point per media item, and half a point per
// link, clamped to [0, MaxImportance]. It never gates extraction.
func Importance(p *Post) float64 {
	if p == nil {
		return 0
	}

	var score float64
	for _, bucket := range []int{100, 300, 500} {
		if len(p.Content) > bucket {
			score++
		}
	}

	score += categoryWeights[p.Category]
	score += float64(len(p.Media))
	score += float64(len(p.Links)) * 0.5

	if score > MaxImportance {
		return MaxImportance
	}
	if score < 0 {
		return 0
	}
	return score
}
