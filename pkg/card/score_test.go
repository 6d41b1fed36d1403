package card

import "testing"

func TestClassifyScore(t *testing.T) {
	tests := []struct {
		score  float64
		label  string
		bucket Bucket
	}{
		{10, "10/10", BucketGood},
		{9.5, "9.5/10", BucketGood},
		{8, "8/10", BucketGood},
		{7.999, "8.0/10", BucketOkay},
		{7.5, "7.5/10", BucketOkay},
		{6, "6/10", BucketOkay},
		{5.5, "5.5/10", BucketPoor},
		{4, "4/10", BucketPoor},
		{3.99, "4.0/10", BucketBad},
		{2, "2/10", BucketBad},
		{0, "0/10", BucketBad},
	}

	for _, tt := range tests {
		label, bucket := ClassifyScore(tt.score)
		if label != tt.label {
			t.Errorf("ClassifyScore(%v) label = %q, want %q", tt.score, label, tt.label)
		}
		if bucket != tt.bucket {
			t.Errorf("ClassifyScore(%v) bucket = %v, want %v", tt.score, bucket, tt.bucket)
		}
	}
}

func TestBucketString(t *testing.T) {
	tests := []struct {
		bucket Bucket
		want   string
	}{
		{BucketGood, "good"},
		{BucketOkay, "okay"},
		{BucketPoor, "poor"},
		{BucketBad, "bad"},
	}

	for _, tt := range tests {
		if got := tt.bucket.String(); got != tt.want {
			t.Errorf("Bucket(%d).String() = %q, want %q", tt.bucket, got, tt.want)
		}
	}
}

func TestScoreColorsFor(t *testing.T) {
	sc := DefaultStyle().ScoreColors

	if got := sc.For(BucketGood); got != sc.Good {
		t.Errorf("For(BucketGood) = %v, want %v", got, sc.Good)
	}
	if got := sc.For(BucketBad); got != sc.Bad {
		t.Errorf("For(BucketBad) = %v, want %v", got, sc.Bad)
	}
}
