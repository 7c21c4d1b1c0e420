package scoring

import (
	"strings"
	"testing"

	"github.com/MikeSquared-Agency/Readiness/internal/catalog"
)

func TestNormalize(t *testing.T) {
	set := Normalize([]Answer{
		{QuestionID: "a", Value: 1},
		{QuestionID: "b", Value: 2},
		{QuestionID: "a", Value: 3},
	})
	if len(set) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(set))
	}
	if set["a"] != 3 {
		t.Errorf("expected last write for a (3), got %d", set["a"])
	}
}

func TestValidateReportsFirstInCatalogOrder(t *testing.T) {
	set := AnswerSet{"wiscar_1": 7, "psych_2": 7}
	err := Validate(catalog.Default(), set)
	verr, ok := err.(*ValidationError)
	if !ok {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if verr.QuestionID != "psych_2" {
		t.Errorf("expected psych_2 reported first, got %s", verr.QuestionID)
	}
	if !strings.Contains(verr.Error(), "psych_2") {
		t.Errorf("expected id in message, got %q", verr.Error())
	}
}

func TestFingerprintOrderIndependent(t *testing.T) {
	a := Fingerprint(Normalize([]Answer{{QuestionID: "x", Value: 1}, {QuestionID: "y", Value: 2}}))
	b := Fingerprint(Normalize([]Answer{{QuestionID: "y", Value: 2}, {QuestionID: "x", Value: 1}}))
	if a != b {
		t.Error("expected identical fingerprints")
	}
	if len(a) != 64 {
		t.Errorf("expected hex sha256, got %q", a)
	}
	c := Fingerprint(Normalize([]Answer{{QuestionID: "x", Value: 2}, {QuestionID: "y", Value: 1}}))
	if a == c {
		t.Error("expected different values to change fingerprint")
	}
}

func TestFingerprintUnambiguous(t *testing.T) {
	split := Fingerprint(AnswerSet{"a": 1, "b": 2})
	joined := Fingerprint(AnswerSet{"a=1\nb": 2})
	if split == joined {
		t.Error("expected an id containing separators not to collide with separate answers")
	}
}
