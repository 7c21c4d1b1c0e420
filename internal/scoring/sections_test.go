package scoring

import (
	"testing"

	"github.com/MikeSquared-Agency/Readiness/internal/catalog"
)

func customCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	opts := []string{"a", "b", "c", "d", "e"}
	c, err := catalog.New([]catalog.Question{
		{ID: "t_choice", Section: catalog.SectionTechnical, Type: catalog.TypeScenario, Options: opts, Weight: 1, Category: "tools"},
		{ID: "t_untabled", Section: catalog.SectionTechnical, Type: catalog.TypeMultipleChoice, Options: opts, Weight: 1, Category: "tools"},
		{ID: "t_likert", Section: catalog.SectionTechnical, Type: catalog.TypeLikert, Weight: 2, Category: "tools"},
		{ID: "w_skill", Section: catalog.SectionWISCAR, Type: catalog.TypeLikert, Weight: 3, Category: "skill"},
		{ID: "w_skill2", Section: catalog.SectionWISCAR, Type: catalog.TypeLikert, Weight: 1, Category: "skill"},
		{ID: "w_interest", Section: catalog.SectionWISCAR, Type: catalog.TypeMultipleChoice, Options: opts, Weight: 1, Category: "interest"},
		{ID: "w_unmapped", Section: catalog.SectionWISCAR, Type: catalog.TypeLikert, Weight: 1, Category: "motivation"},
	}, nil, catalog.ScoreTable{
		"t_choice":   {10, 20, 30},
		"w_interest": {0, 25},
	})
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}
	return c
}

func TestSubScore(t *testing.T) {
	c := customCatalog(t)
	tests := []struct {
		name  string
		id    string
		value int
		want  float64
	}{
		{"likert zero", "t_likert", 0, 0},
		{"likert mid", "t_likert", 2, 50},
		{"likert max", "t_likert", 4, 100},
		{"table entry", "t_choice", 2, 30},
		{"past table end", "t_choice", 4, neutralScore},
		{"no table", "t_untabled", 0, neutralScore},
		{"explicit zero entry", "w_interest", 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, _ := c.Question(tt.id)
			if got := SubScore(c, q, tt.value); got != tt.want {
				t.Errorf("got %f, want %f", got, tt.want)
			}
		})
	}
}

func TestSectionScoreLikertTechnicalQuestion(t *testing.T) {
	c := customCatalog(t)
	// Likert questions in the technical section use the same linear mapping.
	if got := SectionScore(c, catalog.SectionTechnical, AnswerSet{"t_likert": 4}); got != 100 {
		t.Errorf("expected 100, got %d", got)
	}
	// (30*1 + 50*1 + 75*2) / 4 = 57.5
	set := AnswerSet{"t_choice": 2, "t_untabled": 3, "t_likert": 3}
	if got := SectionScore(c, catalog.SectionTechnical, set); got != 58 {
		t.Errorf("expected 58, got %d", got)
	}
}

func TestSectionScoreEmpty(t *testing.T) {
	c := customCatalog(t)
	if got := SectionScore(c, catalog.SectionPsychometric, AnswerSet{"t_likert": 4}); got != 0 {
		t.Errorf("expected 0 for section without questions, got %d", got)
	}
	if got := SectionScore(c, catalog.SectionTechnical, AnswerSet{}); got != 0 {
		t.Errorf("expected 0 for unanswered section, got %d", got)
	}
}

func TestDimensionScoresUnweightedMean(t *testing.T) {
	c := customCatalog(t)
	set := AnswerSet{
		"w_skill":    4, // 100, weight 3 ignored
		"w_skill2":   1, // 25
		"w_interest": 1, // 25
		"w_unmapped": 4,
	}
	got := DimensionScores(c, set)
	// (100 + 25) / 2 = 62.5 rounds up
	if got.Skill != 63 {
		t.Errorf("expected skill 63, got %d", got.Skill)
	}
	if got.Interest != 25 {
		t.Errorf("expected interest 25, got %d", got.Interest)
	}
	if got.Will != 0 || got.Cognitive != 0 || got.Ability != 0 || got.RealWorld != 0 {
		t.Errorf("expected other dimensions 0, got %+v", got)
	}
}

func TestDimensionFor(t *testing.T) {
	tests := []struct {
		category string
		want     Dimension
		ok       bool
	}{
		{"will", DimensionWill, true},
		{"ability_to_learn", DimensionAbility, true},
		{"learning_style", DimensionAbility, true},
		{"real_world", DimensionRealWorld, true},
		{"motivation", 0, false},
		{"Will", 0, false},
	}
	for _, tt := range tests {
		d, ok := DimensionFor(tt.category)
		if ok != tt.ok || (ok && d != tt.want) {
			t.Errorf("%s: got (%s, %v), want (%s, %v)", tt.category, d, ok, tt.want, tt.ok)
		}
	}
}

func TestWISCARMean(t *testing.T) {
	w := WISCARScores{Will: 60, Interest: 60, Skill: 60, Cognitive: 60, Ability: 60, RealWorld: 60}
	if w.Mean() != 60 {
		t.Errorf("expected 60, got %f", w.Mean())
	}
	if (WISCARScores{Will: 60}).Mean() != 10 {
		t.Error("expected empty dimensions to count as zero")
	}
}

func TestOverallScore(t *testing.T) {
	w := WISCARScores{Will: 90, Interest: 90, Skill: 90, Cognitive: 90, Ability: 90, RealWorld: 90}
	// 0.30*60 + 0.35*70 + 0.35*90 = 74
	if got := OverallScore(60, 70, w, DefaultOverallWeights()); got != 74 {
		t.Errorf("expected 74, got %d", got)
	}
	if got := OverallScore(100, 100, WISCARScores{Will: 100, Interest: 100, Skill: 100, Cognitive: 100, Ability: 100, RealWorld: 100}, DefaultOverallWeights()); got != 100 {
		t.Errorf("expected 100, got %d", got)
	}
}

func TestRound(t *testing.T) {
	tests := map[float64]int{0: 0, 0.49: 0, 0.5: 1, 62.5: 63, 99.6: 100}
	for in, want := range tests {
		if got := round(in); got != want {
			t.Errorf("round(%f) = %d, want %d", in, got, want)
		}
	}
}
