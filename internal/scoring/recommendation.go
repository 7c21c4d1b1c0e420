package scoring

// Verdict is the qualitative answer to "should I pursue this career?".
type Verdict string

const (
	VerdictPursue         Verdict = "pursue"
	VerdictMaybe          Verdict = "maybe"
	VerdictNotRecommended Verdict = "not_recommended"
)

// Scores bundles the numeric results the recommendation rules read.
type Scores struct {
	Psychometric int
	Technical    int
	WISCAR       WISCARScores
	Overall      int
}

// Recommendation is the verdict with its reasoning, next steps and career matches.
type Recommendation struct {
	Verdict          Verdict       `json:"verdict"`
	Confidence       int           `json:"confidence"`
	Reasoning        string        `json:"reasoning"`
	NextSteps        []string      `json:"next_steps"`
	AlternativePaths []string      `json:"alternative_paths,omitempty"`
	CareerMatches    []CareerMatch `json:"career_matches"`
}

// verdictRule is one band of the overall-score decision table. Rules are
// checked in order; the first whose floor the overall score reaches applies.
type verdictRule struct {
	minOverall   int
	verdict      Verdict
	confidence   func(s Scores) int
	reasoning    string
	nextSteps    []string
	alternatives []string
	adjustments  []adjustment
}

// adjustment refines a band's output when a secondary score is weak.
type adjustment struct {
	when         func(s Scores) bool
	prependStep  string
	alternatives []string
}

func fixedConfidence(v int) func(Scores) int {
	return func(Scores) int { return v }
}

var verdictRules = []verdictRule{
	{
		minOverall: 75,
		verdict:    VerdictPursue,
		confidence: func(s Scores) int { return min(95, s.Overall) },
		reasoning: "You demonstrate strong potential across all key areas for Data Science success. " +
			"Your combination of technical aptitude, personality fit, and career readiness suggests you would thrive in this field.",
		nextSteps: []string{
			"Begin with a structured Data Science course or bootcamp",
			"Start building a portfolio with real-world projects",
			"Network with Data Science professionals",
			"Consider specialization areas (ML, AI, Business Analytics)",
			"Apply for entry-level Data Science positions",
		},
	},
	{
		minOverall: 50,
		verdict:    VerdictMaybe,
		confidence: fixedConfidence(70),
		reasoning: "You show promise for Data Science but would benefit from targeted preparation in specific areas. " +
			"With focused effort, you could develop the skills needed for success.",
		nextSteps: []string{
			"Identify and address your lowest-scoring areas",
			"Take foundational courses in statistics and programming",
			"Practice with online Data Science challenges",
			"Build analytical thinking through projects",
			"Reassess your readiness in 6-12 months",
		},
		adjustments: []adjustment{
			{
				when:        func(s Scores) bool { return s.Technical < 50 },
				prependStep: "Focus on building technical skills first",
			},
			{
				when:         func(s Scores) bool { return s.Psychometric < 50 },
				alternatives: []string{"Business Analytics", "Data Visualization", "Product Management"},
			},
		},
	},
	{
		minOverall: 0,
		verdict:    VerdictNotRecommended,
		confidence: fixedConfidence(80),
		reasoning: "Based on your current assessment, other career paths might be a better fit for your interests and strengths. " +
			"Consider roles that leverage your natural abilities.",
		nextSteps: []string{
			"Explore the alternative career paths suggested",
			"Consider roles that use some data skills but aren't pure Data Science",
			"Focus on developing your identified strengths",
			"If still interested in data, consider supportive roles first",
		},
		alternatives: []string{"Business Analysis", "Project Management", "UX Research", "Technical Writing", "Quality Assurance"},
	},
}

// Recommend applies the verdict decision table and ranks career matches.
func Recommend(s Scores) Recommendation {
	rule := verdictRules[len(verdictRules)-1]
	for _, r := range verdictRules {
		if s.Overall >= r.minOverall {
			rule = r
			break
		}
	}

	rec := Recommendation{
		Verdict:          rule.verdict,
		Confidence:       rule.confidence(s),
		Reasoning:        rule.reasoning,
		NextSteps:        append([]string(nil), rule.nextSteps...),
		AlternativePaths: append([]string(nil), rule.alternatives...),
	}
	for _, adj := range rule.adjustments {
		if !adj.when(s) {
			continue
		}
		if adj.prependStep != "" {
			rec.NextSteps = append([]string{adj.prependStep}, rec.NextSteps...)
		}
		if len(adj.alternatives) > 0 {
			rec.AlternativePaths = append([]string(nil), adj.alternatives...)
		}
	}
	if len(rec.AlternativePaths) == 0 {
		rec.AlternativePaths = nil
	}
	rec.CareerMatches = RankCareers(s)
	return rec
}
