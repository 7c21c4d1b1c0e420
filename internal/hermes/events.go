package hermes

import "time"

type AssessmentCompletedEvent struct {
	AssessmentID string    `json:"assessment_id"`
	Fingerprint  string    `json:"fingerprint"`
	Verdict      string    `json:"verdict"`
	OverallScore int       `json:"overall_score"`
	Confidence   int       `json:"confidence"`
	TopCareer    string    `json:"top_career,omitempty"`
	CompletedAt  time.Time `json:"completed_at"`
}

// AssessmentRejectedEvent is published when a submission fails answer validation.
type AssessmentRejectedEvent struct {
	QuestionID string    `json:"question_id"`
	Value      int       `json:"value"`
	Reason     string    `json:"reason"`
	RejectedAt time.Time `json:"rejected_at"`
}
