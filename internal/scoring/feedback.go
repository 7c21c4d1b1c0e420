package scoring

const (
	StrengthThreshold    = 70
	ImprovementThreshold = 50
)

// feedbackRule appends its bullets when metric passes the rule's threshold.
type feedbackRule struct {
	metric  func(s Scores) int
	bullets []string
}

var strengthRules = []feedbackRule{
	{
		metric: func(s Scores) int { return s.Psychometric },
		bullets: []string{
			"Strong personality fit for analytical work",
			"Good motivation and interest alignment",
		},
	},
	{
		metric: func(s Scores) int { return s.Technical },
		bullets: []string{
			"Solid technical foundation and analytical thinking",
			"Good understanding of data science concepts",
		},
	},
	{
		metric:  func(s Scores) int { return s.WISCAR.Will },
		bullets: []string{"High persistence and determination"},
	},
	{
		metric:  func(s Scores) int { return s.WISCAR.Cognitive },
		bullets: []string{"Strong cognitive abilities and pattern recognition"},
	},
	{
		metric:  func(s Scores) int { return s.WISCAR.Ability },
		bullets: []string{"Excellent learning ability and growth mindset"},
	},
}

var genericStrengths = []string{
	"Willingness to learn and grow",
	"Interest in exploring new career opportunities",
}

var improvementRules = []feedbackRule{
	{
		metric: func(s Scores) int { return s.Technical },
		bullets: []string{
			"Build foundational technical skills in programming and statistics",
			"Practice with data manipulation and analysis tools",
		},
	},
	{
		metric:  func(s Scores) int { return s.Psychometric },
		bullets: []string{"Consider if analytical, detail-oriented work suits your preferences"},
	},
	{
		metric:  func(s Scores) int { return s.WISCAR.Will },
		bullets: []string{"Develop persistence and resilience for challenging problems"},
	},
	{
		metric:  func(s Scores) int { return s.WISCAR.Cognitive },
		bullets: []string{"Practice analytical and logical thinking exercises"},
	},
	{
		metric:  func(s Scores) int { return s.WISCAR.Skill },
		bullets: []string{"Gain hands-on experience with data science tools and methods"},
	},
}

// Strengths lists the bullets for every score at or above StrengthThreshold.
// It is never empty.
func Strengths(s Scores) []string {
	var out []string
	for _, r := range strengthRules {
		if r.metric(s) >= StrengthThreshold {
			out = append(out, r.bullets...)
		}
	}
	if len(out) == 0 {
		out = append(out, genericStrengths...)
	}
	return out
}

// Improvements lists the bullets for every score below ImprovementThreshold.
func Improvements(s Scores) []string {
	out := []string{}
	for _, r := range improvementRules {
		if r.metric(s) < ImprovementThreshold {
			out = append(out, r.bullets...)
		}
	}
	return out
}
