package scoring

import "sort"

// MaxCareerMatches is the number of matches returned by RankCareers.
const MaxCareerMatches = 3

// CareerMatch is one ranked career suggestion.
type CareerMatch struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	MatchScore   int      `json:"match_score"`
	Requirements []string `json:"requirements"`
	GrowthPath   []string `json:"growth_path"`
}

type careerTemplate struct {
	title        string
	description  string
	requirements []string
	growthPath   []string
	eligible     func(s Scores) bool
	match        func(s Scores) int
}

var careerTemplates = []careerTemplate{
	{
		title:        "Data Scientist",
		description:  "Extract insights from complex datasets using statistical methods and machine learning",
		requirements: []string{"Python/R programming", "Statistics & ML", "Domain expertise", "Communication skills"},
		growthPath:   []string{"Junior Data Scientist", "Data Scientist", "Senior Data Scientist", "Lead Data Scientist"},
		match:        func(s Scores) int { return s.Overall + 10 },
	},
	{
		title:        "Data Analyst",
		description:  "Analyze data to help organizations make informed business decisions",
		requirements: []string{"SQL & Excel", "Statistical analysis", "Data visualization", "Business acumen"},
		growthPath:   []string{"Data Analyst", "Senior Data Analyst", "Analytics Manager", "Director of Analytics"},
		match:        func(s Scores) int { return s.Overall + 5 },
	},
	{
		title:        "Machine Learning Engineer",
		description:  "Design and implement ML systems and algorithms in production environments",
		requirements: []string{"Strong programming", "ML algorithms", "Software engineering", "System design"},
		growthPath:   []string{"ML Engineer", "Senior ML Engineer", "ML Architect", "AI Research Lead"},
		match:        func(s Scores) int { return s.Technical + 20 },
	},
	{
		title:        "Business Intelligence Developer",
		description:  "Create dashboards and reports to support business decision-making",
		requirements: []string{"SQL", "BI tools (Tableau, Power BI)", "Database design", "Business knowledge"},
		growthPath:   []string{"BI Developer", "Senior BI Developer", "BI Architect", "Analytics Director"},
		eligible:     func(s Scores) bool { return s.Overall < 60 },
		match:        func(s Scores) int { return s.Overall + 20 },
	},
}

// RankCareers scores every eligible career template, sorts by match score
// (ties keep template order) and returns the top MaxCareerMatches.
func RankCareers(s Scores) []CareerMatch {
	var matches []CareerMatch
	for _, t := range careerTemplates {
		if t.eligible != nil && !t.eligible(s) {
			continue
		}
		matches = append(matches, CareerMatch{
			Title:        t.title,
			Description:  t.description,
			MatchScore:   clampScore(t.match(s)),
			Requirements: append([]string(nil), t.requirements...),
			GrowthPath:   append([]string(nil), t.growthPath...),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchScore > matches[j].MatchScore
	})
	if len(matches) > MaxCareerMatches {
		matches = matches[:MaxCareerMatches]
	}
	return matches
}
