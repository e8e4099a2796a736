package domain

import (
	"reflect"
	"testing"
)

func TestMeanRating(t *testing.T) {
	if got := MeanRating(nil); got.Rating != 0 || got.ReviewCount != 0 {
		t.Fatalf("expected zero aggregate, got %+v", got)
	}
	got := MeanRating([]Review{{Rating: 5}, {Rating: 3}})
	if got.Rating != 4.0 || got.ReviewCount != 2 {
		t.Fatalf("expected rating 4 count 2, got %+v", got)
	}
}

func TestNegativePercentage(t *testing.T) {
	if got := NegativePercentage(nil); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
	reviews := []Review{
		{Sentiment: SentimentNegative},
		{Sentiment: SentimentPositive},
		{Sentiment: SentimentPositive},
		{Sentiment: SentimentNegative},
	}
	if got := NegativePercentage(reviews); got != 50 {
		t.Fatalf("expected 50, got %v", got)
	}
}

func TestExperienceList(t *testing.T) {
	tp := Tradesperson{Experience: " pipa rumah, ,instalasi air ,, 10 tahun"}
	want := []string{"pipa rumah", "instalasi air", "10 tahun"}
	if got := tp.ExperienceList(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if got := (Tradesperson{}).ExperienceList(); len(got) != 0 {
		t.Fatalf("expected empty list, got %v", got)
	}
}

func TestPhotoOrAndDocument(t *testing.T) {
	tp := Tradesperson{Skill: "pipa bocor", Experience: "10 tahun"}
	if tp.Document() != "pipa bocor 10 tahun" {
		t.Fatalf("unexpected document %q", tp.Document())
	}
	if tp.PhotoOr("https://placehold.co/80x80") != "https://placehold.co/80x80" {
		t.Fatalf("expected placeholder")
	}
	tp.Photo = "budi.jpg"
	if tp.PhotoOr("x") != "budi.jpg" {
		t.Fatalf("expected stored photo")
	}
}

func TestDamageAnalysis(t *testing.T) {
	if len(DamageCategories) != 6 {
		t.Fatalf("expected 6 categories, got %d", len(DamageCategories))
	}
	if DamageAnalysis("Plafon Rusak") == noAnalysis {
		t.Fatalf("expected analysis for known label")
	}
	if DamageAnalysis("Atap Bocor") != noAnalysis {
		t.Fatalf("expected fallback for unknown label")
	}
}
