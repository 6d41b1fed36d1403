// score.go - Score display label and color bucket classification.
package card

import (
	"fmt"
	"math"
)

// Bucket is the discrete color class a score falls into.
type Bucket int

const (
	BucketBad Bucket = iota
	BucketPoor
	BucketOkay
	BucketGood
)

func (b Bucket) String() string {
	switch b {
	case BucketGood:
		return "good"
	case BucketOkay:
		return "okay"
	case BucketPoor:
		return "poor"
	default:
		return "bad"
	}
}

// ClassifyScore maps a score to its display label and bucket.
// Integral values render as "7/10", everything else with one
// fractional digit, "7.5/10". Buckets have inclusive lower bounds:
// 8 and up is Good, 6 Okay, 4 Poor, below that Bad. The label is
// formatted from the raw value, so 3.99 reads "4.0/10" yet stays Bad.
func ClassifyScore(score float64) (string, Bucket) {
	var label string
	if score == math.Trunc(score) {
		label = fmt.Sprintf("%d/10", int(score))
	} else {
		label = fmt.Sprintf("%.1f/10", score)
	}

	switch {
	case score >= 8:
		return label, BucketGood
	case score >= 6:
		return label, BucketOkay
	case score >= 4:
		return label, BucketPoor
	default:
		return label, BucketBad
	}
}
