package scoring

import (
	"testing"
)

func TestRecommendVerdictBands(t *testing.T) {
	tests := []struct {
		name       string
		scores     Scores
		verdict    Verdict
		confidence int
	}{
		{"top score caps confidence", Scores{Overall: 100, Technical: 100, Psychometric: 100}, VerdictPursue, 95},
		{"pursue floor", Scores{Overall: 75, Technical: 80, Psychometric: 80}, VerdictPursue, 75},
		{"maybe ceiling", Scores{Overall: 74, Technical: 80, Psychometric: 80}, VerdictMaybe, 70},
		{"maybe floor", Scores{Overall: 50, Technical: 60, Psychometric: 60}, VerdictMaybe, 70},
		{"not recommended", Scores{Overall: 49}, VerdictNotRecommended, 80},
		{"zero", Scores{}, VerdictNotRecommended, 80},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := Recommend(tt.scores)
			if rec.Verdict != tt.verdict {
				t.Errorf("expected verdict %s, got %s", tt.verdict, rec.Verdict)
			}
			if rec.Confidence != tt.confidence {
				t.Errorf("expected confidence %d, got %d", tt.confidence, rec.Confidence)
			}
			if rec.Reasoning == "" {
				t.Error("expected reasoning")
			}
		})
	}
}

func TestRecommendPursueHasNoAlternatives(t *testing.T) {
	rec := Recommend(Scores{Overall: 80, Technical: 30, Psychometric: 30})
	if rec.AlternativePaths != nil {
		t.Errorf("expected nil alternatives, got %v", rec.AlternativePaths)
	}
	if len(rec.NextSteps) != 5 {
		t.Errorf("expected 5 next steps, got %d", len(rec.NextSteps))
	}
	if rec.NextSteps[4] != "Apply for entry-level Data Science positions" {
		t.Errorf("unexpected last step %q", rec.NextSteps[4])
	}
}

func TestRecommendMaybeAdjustments(t *testing.T) {
	t.Run("strong secondary scores", func(t *testing.T) {
		rec := Recommend(Scores{Overall: 60, Technical: 50, Psychometric: 50})
		if len(rec.NextSteps) != 5 || rec.NextSteps[0] != "Identify and address your lowest-scoring areas" {
			t.Errorf("unexpected next steps %v", rec.NextSteps)
		}
		if rec.AlternativePaths != nil {
			t.Errorf("expected nil alternatives, got %v", rec.AlternativePaths)
		}
	})

	t.Run("weak technical", func(t *testing.T) {
		rec := Recommend(Scores{Overall: 60, Technical: 49, Psychometric: 80})
		if len(rec.NextSteps) != 6 || rec.NextSteps[0] != "Focus on building technical skills first" {
			t.Errorf("expected technical step prepended, got %v", rec.NextSteps)
		}
		if rec.AlternativePaths != nil {
			t.Errorf("expected nil alternatives, got %v", rec.AlternativePaths)
		}
	})

	t.Run("weak psychometric", func(t *testing.T) {
		rec := Recommend(Scores{Overall: 60, Technical: 80, Psychometric: 40})
		want := []string{"Business Analytics", "Data Visualization", "Product Management"}
		if len(rec.AlternativePaths) != len(want) {
			t.Fatalf("expected %v, got %v", want, rec.AlternativePaths)
		}
		for i := range want {
			if rec.AlternativePaths[i] != want[i] {
				t.Errorf("alternative %d: expected %s, got %s", i, want[i], rec.AlternativePaths[i])
			}
		}
		if len(rec.NextSteps) != 5 {
			t.Errorf("expected 5 next steps, got %d", len(rec.NextSteps))
		}
	})
}

func TestRecommendNotRecommendedAlternatives(t *testing.T) {
	rec := Recommend(Scores{Overall: 20, Technical: 90, Psychometric: 90})
	if len(rec.AlternativePaths) != 5 || rec.AlternativePaths[0] != "Business Analysis" {
		t.Errorf("unexpected alternatives %v", rec.AlternativePaths)
	}
	if len(rec.NextSteps) != 4 {
		t.Errorf("expected 4 next steps, got %d", len(rec.NextSteps))
	}
}

func TestRecommendIncludesCareerMatches(t *testing.T) {
	rec := Recommend(Scores{Overall: 70, Technical: 70})
	if len(rec.CareerMatches) != MaxCareerMatches {
		t.Errorf("expected %d matches, got %d", MaxCareerMatches, len(rec.CareerMatches))
	}
}

func TestStrengths(t *testing.T) {
	t.Run("generic when nothing qualifies", func(t *testing.T) {
		got := Strengths(Scores{Psychometric: 69, Technical: 69, WISCAR: WISCARScores{Will: 69, Cognitive: 69, Ability: 69}})
		if len(got) != 2 || got[1] != "Interest in exploring new career opportunities" {
			t.Errorf("expected generic strengths, got %v", got)
		}
	})

	t.Run("threshold inclusive", func(t *testing.T) {
		got := Strengths(Scores{WISCAR: WISCARScores{Cognitive: 70}})
		if len(got) != 1 || got[0] != "Strong cognitive abilities and pattern recognition" {
			t.Errorf("expected cognitive strength only, got %v", got)
		}
	})

	t.Run("interest and skill do not produce strengths", func(t *testing.T) {
		got := Strengths(Scores{WISCAR: WISCARScores{Interest: 100, Skill: 100, RealWorld: 100}})
		if len(got) != 2 || got[0] != "Willingness to learn and grow" {
			t.Errorf("expected generic strengths, got %v", got)
		}
	})

	t.Run("rule order", func(t *testing.T) {
		got := Strengths(Scores{Psychometric: 90, WISCAR: WISCARScores{Will: 90, Ability: 90}})
		want := []string{
			"Strong personality fit for analytical work",
			"Good motivation and interest alignment",
			"High persistence and determination",
			"Excellent learning ability and growth mindset",
		}
		if len(got) != len(want) {
			t.Fatalf("expected %v, got %v", want, got)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("strength %d: expected %q, got %q", i, want[i], got[i])
			}
		}
	})
}

func TestImprovements(t *testing.T) {
	all := WISCARScores{Will: 50, Interest: 50, Skill: 50, Cognitive: 50, Ability: 50, RealWorld: 50}
	if got := Improvements(Scores{Psychometric: 50, Technical: 50, WISCAR: all}); len(got) != 0 {
		t.Errorf("expected no improvements at threshold, got %v", got)
	}
	if got := Improvements(Scores{Psychometric: 50, Technical: 50, WISCAR: all}); got == nil {
		t.Error("expected empty, non-nil improvements")
	}

	got := Improvements(Scores{Psychometric: 80, Technical: 49, WISCAR: WISCARScores{Will: 80, Cognitive: 80, Skill: 10}})
	want := []string{
		"Build foundational technical skills in programming and statistics",
		"Practice with data manipulation and analysis tools",
		"Gain hands-on experience with data science tools and methods",
	}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("improvement %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}
