package card

import (
	"errors"
	"math"
	"testing"
)

func validReview() Review {
	return Review{
		Title: "Outer Wilds",
		Score: 9.5,
		Body:  "A solar system sized mystery.",
		Kind:  KindGame,
	}
}

func TestValidateAcceptsGoodReview(t *testing.T) {
	if err := validReview().Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestValidateRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Review)
		field  string
	}{
		{"empty title", func(r *Review) { r.Title = "" }, "title"},
		{"blank title", func(r *Review) { r.Title = "   " }, "title"},
		{"empty body", func(r *Review) { r.Body = "" }, "body"},
		{"negative score", func(r *Review) { r.Score = -1 }, "score"},
		{"score over ten", func(r *Review) { r.Score = 10.01 }, "score"},
		{"NaN score", func(r *Review) { r.Score = math.NaN() }, "score"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validReview()
			tt.mutate(&r)

			err := r.Validate()
			if err == nil {
				t.Fatal("Validate: want error")
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate returned %T, want *ValidationError", err)
			}
			if verr.Field != tt.field {
				t.Errorf("field = %q, want %q", verr.Field, tt.field)
			}
		})
	}
}

func TestValidateBoundaryScores(t *testing.T) {
	for _, score := range []float64{0, 10} {
		r := validReview()
		r.Score = score
		if err := r.Validate(); err != nil {
			t.Errorf("Validate(score=%v): %v", score, err)
		}
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in      string
		want    Kind
		wantErr bool
	}{
		{"game", KindGame, false},
		{"Movie", KindMovie, false},
		{"", KindGame, false},
		{"book", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseKind(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseKind(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("ParseKind(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParsePlatform(t *testing.T) {
	tests := []struct {
		in      string
		want    Platform
		wantErr bool
	}{
		{"", PlatformNone, false},
		{"none", PlatformNone, false},
		{"backloggd", PlatformBackloggd, false},
		{"Letterboxd", PlatformLetterboxd, false},
		{"steam", 0, true},
	}

	for _, tt := range tests {
		got, err := ParsePlatform(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePlatform(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("ParsePlatform(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestEnumRoundTrip(t *testing.T) {
	for _, p := range []Platform{PlatformNone, PlatformBackloggd, PlatformLetterboxd} {
		got, err := ParsePlatform(p.String())
		if err != nil || got != p {
			t.Errorf("ParsePlatform(%q) = %v, %v; want %v", p.String(), got, err, p)
		}
	}
	for _, k := range []Kind{KindGame, KindMovie} {
		got, err := ParseKind(k.String())
		if err != nil || got != k {
			t.Errorf("ParseKind(%q) = %v, %v; want %v", k.String(), got, err, k)
		}
	}
}
