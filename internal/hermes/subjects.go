package hermes

const (
	StreamName   = "READINESS_EVENTS"
	StreamMaxAge = "720h" // 30 days
)

func SubjectAssessmentCompleted(assessmentID string) string {
	return "readiness.assessment." + assessmentID + ".completed"
}

func SubjectAssessmentRejected() string { return "readiness.assessment.rejected" }
