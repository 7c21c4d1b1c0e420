package catalog

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Section groups questions into one of the three assessment parts.
type Section string

const (
	SectionPsychometric Section = "psychometric"
	SectionTechnical    Section = "technical"
	SectionWISCAR       Section = "wiscar"
)

// AnswerType determines how a raw answer value is interpreted.
type AnswerType string

const (
	TypeLikert         AnswerType = "likert"
	TypeMultipleChoice AnswerType = "multiple-choice"
	TypeScenario       AnswerType = "scenario"
)

// LikertMax is the highest value on the 5-point scale (0..4).
const LikertMax = 4

type Question struct {
	ID           string     `json:"id" yaml:"id"`
	Section      Section    `json:"section" yaml:"section"`
	Type         AnswerType `json:"type" yaml:"type"`
	Text         string     `json:"question" yaml:"question"`
	Scenario     string     `json:"scenario,omitempty" yaml:"scenario,omitempty"`
	Options      []string   `json:"options,omitempty" yaml:"options,omitempty"`
	LikertLabels []string   `json:"likert_labels,omitempty" yaml:"likert_labels,omitempty"`
	Weight       float64    `json:"weight" yaml:"weight"`
	Category     string     `json:"category" yaml:"category"`
}

// IsChoice reports whether the answer value is an index into Options.
func (q Question) IsChoice() bool {
	return q.Type == TypeMultipleChoice || q.Type == TypeScenario
}

// MaxValue returns the highest answer value the question accepts.
func (q Question) MaxValue() int {
	if q.Type == TypeLikert {
		return LikertMax
	}
	return len(q.Options) - 1
}

func (q Question) clone() Question {
	q.Options = append([]string(nil), q.Options...)
	q.LikertLabels = append([]string(nil), q.LikertLabels...)
	return q
}

// SectionInfo is display metadata for a section.
type SectionInfo struct {
	Section       Section `json:"section" yaml:"section"`
	Title         string  `json:"title" yaml:"title"`
	Description   string  `json:"description" yaml:"description"`
	EstimatedTime string  `json:"estimated_time" yaml:"estimated_time"`
}

// ScoreTable maps a question id to the percentage awarded for each option index.
type ScoreTable map[string][]float64

// Catalog is an ordered, read-only set of questions plus the scoring tables
// for their options. A Catalog is safe for concurrent use.
type Catalog struct {
	questions []Question
	index     map[string]int
	sections  []SectionInfo
	scores    ScoreTable
}

// New builds a Catalog from the given definitions. Inputs are copied.
func New(questions []Question, sections []SectionInfo, scores ScoreTable) (*Catalog, error) {
	c := &Catalog{
		questions: make([]Question, 0, len(questions)),
		index:     make(map[string]int, len(questions)),
		sections:  append([]SectionInfo(nil), sections...),
		scores:    make(ScoreTable, len(scores)),
	}
	for _, q := range questions {
		if _, dup := c.index[q.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate question id %s", q.ID)
		}
		c.index[q.ID] = len(c.questions)
		c.questions = append(c.questions, q.clone())
	}
	for id, table := range scores {
		c.scores[id] = append([]float64(nil), table...)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks the catalog for structural problems.
func (c *Catalog) Validate() error {
	if len(c.questions) == 0 {
		return fmt.Errorf("catalog: no questions")
	}
	for _, q := range c.questions {
		if q.ID == "" {
			return fmt.Errorf("catalog: question with empty id")
		}
		switch q.Section {
		case SectionPsychometric, SectionTechnical, SectionWISCAR:
		default:
			return fmt.Errorf("catalog: question %s: unknown section %q", q.ID, q.Section)
		}
		switch q.Type {
		case TypeLikert:
		case TypeMultipleChoice, TypeScenario:
			if len(q.Options) == 0 {
				return fmt.Errorf("catalog: question %s: %s question has no options", q.ID, q.Type)
			}
		default:
			return fmt.Errorf("catalog: question %s: unknown type %q", q.ID, q.Type)
		}
		if math.IsNaN(q.Weight) || math.IsInf(q.Weight, 0) || q.Weight <= 0 {
			return fmt.Errorf("catalog: question %s: weight must be positive, got %f", q.ID, q.Weight)
		}
	}
	for id, table := range c.scores {
		i, ok := c.index[id]
		if !ok {
			return fmt.Errorf("catalog: score table for unknown question %s", id)
		}
		q := c.questions[i]
		if !q.IsChoice() {
			return fmt.Errorf("catalog: score table for %s question %s", q.Type, id)
		}
		if len(table) > len(q.Options) {
			return fmt.Errorf("catalog: score table for %s has %d entries, question has %d options", id, len(table), len(q.Options))
		}
		for _, v := range table {
			if math.IsNaN(v) || v < 0 || v > 100 {
				return fmt.Errorf("catalog: score table for %s: value %f outside [0,100]", id, v)
			}
		}
	}
	return nil
}

// Len returns the number of questions.
func (c *Catalog) Len() int { return len(c.questions) }

// Questions returns the questions in catalog order.
func (c *Catalog) Questions() []Question {
	out := make([]Question, len(c.questions))
	for i, q := range c.questions {
		out[i] = q.clone()
	}
	return out
}

// Question looks up a question by id.
func (c *Catalog) Question(id string) (Question, bool) {
	i, ok := c.index[id]
	if !ok {
		return Question{}, false
	}
	return c.questions[i].clone(), true
}

// BySection returns the questions of one section in catalog order.
func (c *Catalog) BySection(s Section) []Question {
	var out []Question
	for _, q := range c.questions {
		if q.Section == s {
			out = append(out, q.clone())
		}
	}
	return out
}

// Sections returns section display metadata.
func (c *Catalog) Sections() []SectionInfo {
	return append([]SectionInfo(nil), c.sections...)
}

// OptionScore returns the table percentage for an option of a choice question.
// ok is false when the question has no table or the index is past its end.
func (c *Catalog) OptionScore(questionID string, option int) (score float64, ok bool) {
	table, found := c.scores[questionID]
	if !found || option < 0 || option >= len(table) {
		return 0, false
	}
	return table[option], true
}

type catalogFile struct {
	Sections  []SectionInfo `yaml:"sections"`
	Questions []Question    `yaml:"questions"`
	Scoring   ScoreTable    `yaml:"scoring"`
}

// Load reads a catalog from a YAML file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML catalog document.
func Parse(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return New(f.Questions, f.Sections, f.Scoring)
}
