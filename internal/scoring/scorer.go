package scoring

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"

	"github.com/MikeSquared-Agency/Readiness/internal/catalog"
)

// Report is the complete result of scoring one assessment. It is derived
// entirely from the answer set, the catalog and the overall weights.
type Report struct {
	PsychometricScore int            `json:"psychometric_score"`
	TechnicalScore    int            `json:"technical_score"`
	WISCARScores      WISCARScores   `json:"wiscar_scores"`
	OverallScore      int            `json:"overall_score"`
	Recommendation    Recommendation `json:"recommendation"`
	Strengths         []string       `json:"strengths"`
	Improvements      []string       `json:"improvements"`
}

// Scores returns the numeric part of the report.
func (r *Report) Scores() Scores {
	return Scores{
		Psychometric: r.PsychometricScore,
		Technical:    r.TechnicalScore,
		WISCAR:       r.WISCARScores,
		Overall:      r.OverallScore,
	}
}

// SectionCoverage counts how many of a section's questions were answered.
type SectionCoverage struct {
	Section  catalog.Section `json:"section"`
	Answered int             `json:"answered"`
	Total    int             `json:"total"`
}

// Scorer turns answer sets into reports against a fixed catalog. It holds no
// mutable state and is safe for concurrent use.
type Scorer struct {
	catalog *catalog.Catalog
	weights OverallWeights
	policy  string
	logger  *slog.Logger
}

// NewScorer creates a Scorer for the given catalog and overall weights.
// A nil logger falls back to slog.Default.
func NewScorer(c *catalog.Catalog, weights OverallWeights, logger *slog.Logger) *Scorer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scorer{
		catalog: c,
		weights: weights,
		policy:  policyDigest(c, weights),
		logger:  logger,
	}
}

// Catalog returns the catalog the scorer reads from.
func (s *Scorer) Catalog() *catalog.Catalog {
	return s.catalog
}

// Score validates and scores a list of answers. Duplicate answers collapse to
// the last one; ids the catalog does not know are ignored.
func (s *Scorer) Score(answers []Answer) (*Report, error) {
	return s.ScoreSet(Normalize(answers))
}

// ScoreSet validates and scores an already normalized answer set.
func (s *Scorer) ScoreSet(set AnswerSet) (*Report, error) {
	if err := Validate(s.catalog, set); err != nil {
		return nil, err
	}

	report := &Report{
		PsychometricScore: SectionScore(s.catalog, catalog.SectionPsychometric, set),
		TechnicalScore:    SectionScore(s.catalog, catalog.SectionTechnical, set),
		WISCARScores:      DimensionScores(s.catalog, set),
	}
	report.OverallScore = OverallScore(report.PsychometricScore, report.TechnicalScore, report.WISCARScores, s.weights)

	scores := report.Scores()
	report.Recommendation = Recommend(scores)
	report.Strengths = Strengths(scores)
	report.Improvements = Improvements(scores)

	s.logger.Debug("assessment scored",
		"answers", len(set),
		"overall", report.OverallScore,
		"verdict", report.Recommendation.Verdict,
	)
	return report, nil
}

// Coverage reports answered/total counts per section in catalog section order.
func (s *Scorer) Coverage(set AnswerSet) []SectionCoverage {
	sections := []catalog.Section{catalog.SectionPsychometric, catalog.SectionTechnical, catalog.SectionWISCAR}
	out := make([]SectionCoverage, 0, len(sections))
	for _, sec := range sections {
		cov := SectionCoverage{Section: sec}
		for _, q := range s.catalog.BySection(sec) {
			cov.Total++
			if _, ok := set[q.ID]; ok {
				cov.Answered++
			}
		}
		out = append(out, cov)
	}
	return out
}

// Fingerprint identifies the report an answer set will produce under this
// scorer's catalog and weights. Equal fingerprints mean equal reports. Ids the
// catalog does not know never affect scoring and are left out.
func (s *Scorer) Fingerprint(set AnswerSet) string {
	known := make(AnswerSet, len(set))
	for id, v := range set {
		if _, ok := s.catalog.Question(id); ok {
			known[id] = v
		}
	}
	sum := sha256.Sum256([]byte(s.policy + ":" + Fingerprint(known)))
	return hex.EncodeToString(sum[:])
}

func policyDigest(c *catalog.Catalog, w OverallWeights) string {
	h := sha256.New()
	fmt.Fprintf(h, "weights:%g/%g/%g\n", w.Psychometric, w.Technical, w.WISCAR)
	for _, q := range c.Questions() {
		fmt.Fprintf(h, "%s|%s|%s|%g|%s|%d", q.ID, q.Section, q.Type, q.Weight, q.Category, len(q.Options))
		for i := range q.Options {
			if v, ok := c.OptionScore(q.ID, i); ok {
				fmt.Fprintf(h, "|%g", v)
			} else {
				h.Write([]byte("|-"))
			}
		}
		h.Write([]byte{'\n'})
	}
	return hex.EncodeToString(h.Sum(nil))
}
