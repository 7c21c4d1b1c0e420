package scoring

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/MikeSquared-Agency/Readiness/internal/catalog"
)

// Answer is a single submitted response. Value is 0-4 for Likert questions
// and a zero-based option index otherwise.
type Answer struct {
	QuestionID string `json:"question_id"`
	Value      int    `json:"value"`
	RawAnswer  string `json:"raw_answer,omitempty"`
}

// AnswerSet holds at most one value per question id.
type AnswerSet map[string]int

// Normalize collapses answers into an AnswerSet. A later answer for the same
// question replaces an earlier one.
func Normalize(answers []Answer) AnswerSet {
	set := make(AnswerSet, len(answers))
	for _, a := range answers {
		set[a.QuestionID] = a.Value
	}
	return set
}

// ValidationError reports an answer value outside its question's domain.
type ValidationError struct {
	QuestionID string
	Value      int
	Min        int
	Max        int
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("answer for %s: value %d outside [%d,%d]", e.QuestionID, e.Value, e.Min, e.Max)
}

// Validate checks every answered catalog question in catalog order and
// returns the first out-of-domain value. Ids unknown to the catalog are ignored.
func Validate(c *catalog.Catalog, set AnswerSet) error {
	for _, q := range c.Questions() {
		v, ok := set[q.ID]
		if !ok {
			continue
		}
		if v < 0 || v > q.MaxValue() {
			return &ValidationError{QuestionID: q.ID, Value: v, Min: 0, Max: q.MaxValue()}
		}
	}
	return nil
}

// Fingerprint returns a stable digest of an answer set, independent of the
// order answers arrived in. Ids are length-prefixed so no id can spell out
// other entries.
func Fingerprint(set AnswerSet) string {
	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var b strings.Builder
	for _, id := range ids {
		b.WriteString(strconv.Itoa(len(id)))
		b.WriteByte(':')
		b.WriteString(id)
		b.WriteByte('=')
		b.WriteString(strconv.Itoa(set[id]))
		b.WriteByte('\n')
	}
	sum := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}
