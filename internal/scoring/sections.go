package scoring

import (
	"math"

	"github.com/MikeSquared-Agency/Readiness/internal/catalog"
)

// neutralScore is used for choice answers with no scoring table entry.
const neutralScore = 50.0

// Dimension is one of the six WISCAR readiness dimensions.
type Dimension int

const (
	DimensionWill Dimension = iota
	DimensionInterest
	DimensionSkill
	DimensionCognitive
	DimensionAbility
	DimensionRealWorld

	dimensionCount
)

var dimensionNames = [dimensionCount]string{
	"will", "interest", "skill", "cognitive", "ability", "real_world",
}

func (d Dimension) String() string {
	if d < 0 || d >= dimensionCount {
		return "unknown"
	}
	return dimensionNames[d]
}

// categoryDimensions maps question categories to WISCAR dimensions.
// Categories not listed here contribute to no dimension.
var categoryDimensions = map[string]Dimension{
	"will":             DimensionWill,
	"interest":         DimensionInterest,
	"skill":            DimensionSkill,
	"cognitive":        DimensionCognitive,
	"ability_to_learn": DimensionAbility,
	"learning_style":   DimensionAbility,
	"real_world":       DimensionRealWorld,
}

// DimensionFor returns the dimension a category feeds, if any.
func DimensionFor(category string) (Dimension, bool) {
	d, ok := categoryDimensions[category]
	return d, ok
}

// WISCARScores holds the six dimension scores, each in [0,100].
type WISCARScores struct {
	Will      int `json:"will"`
	Interest  int `json:"interest"`
	Skill     int `json:"skill"`
	Cognitive int `json:"cognitive"`
	Ability   int `json:"ability"`
	RealWorld int `json:"real_world"`
}

// Get returns the score for one dimension.
func (w WISCARScores) Get(d Dimension) int {
	switch d {
	case DimensionWill:
		return w.Will
	case DimensionInterest:
		return w.Interest
	case DimensionSkill:
		return w.Skill
	case DimensionCognitive:
		return w.Cognitive
	case DimensionAbility:
		return w.Ability
	case DimensionRealWorld:
		return w.RealWorld
	}
	return 0
}

func (w *WISCARScores) set(d Dimension, v int) {
	switch d {
	case DimensionWill:
		w.Will = v
	case DimensionInterest:
		w.Interest = v
	case DimensionSkill:
		w.Skill = v
	case DimensionCognitive:
		w.Cognitive = v
	case DimensionAbility:
		w.Ability = v
	case DimensionRealWorld:
		w.RealWorld = v
	}
}

// Mean is the unweighted average of all six dimensions, empty ones included.
func (w WISCARScores) Mean() float64 {
	var sum int
	for d := Dimension(0); d < dimensionCount; d++ {
		sum += w.Get(d)
	}
	return float64(sum) / float64(dimensionCount)
}

// SubScore converts one answer into a percentage. Likert values map linearly
// onto 0-100; choice answers use the catalog's option table, falling back to
// a neutral 50 when the question or option has no entry.
func SubScore(c *catalog.Catalog, q catalog.Question, value int) float64 {
	if q.Type == catalog.TypeLikert {
		return float64(value) / catalog.LikertMax * 100
	}
	if s, ok := c.OptionScore(q.ID, value); ok {
		return s
	}
	return neutralScore
}

// SectionScore is the weight-averaged sub-score of the answered questions in
// a section. Unanswered questions are left out of both sums; a section with
// no answers scores 0.
func SectionScore(c *catalog.Catalog, section catalog.Section, set AnswerSet) int {
	var total, weight float64
	for _, q := range c.BySection(section) {
		v, ok := set[q.ID]
		if !ok {
			continue
		}
		total += SubScore(c, q, v) * q.Weight
		weight += q.Weight
	}
	if weight == 0 {
		return 0
	}
	return clampScore(round(total / weight))
}

// DimensionScores averages WISCAR sub-scores per dimension.
func DimensionScores(c *catalog.Catalog, set AnswerSet) WISCARScores {
	var sums [dimensionCount]float64
	var counts [dimensionCount]int

	for _, q := range c.BySection(catalog.SectionWISCAR) {
		v, ok := set[q.ID]
		if !ok {
			continue
		}
		d, ok := DimensionFor(q.Category)
		if !ok {
			continue
		}
		sums[d] += SubScore(c, q, v)
		counts[d]++
	}

	var out WISCARScores
	for d := Dimension(0); d < dimensionCount; d++ {
		if counts[d] > 0 {
			out.set(d, clampScore(round(sums[d]/float64(counts[d]))))
		}
	}
	return out
}

// round rounds half up, so 62.5 becomes 63.
func round(v float64) int {
	return int(math.Floor(v + 0.5))
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
