package domain

// FailureKind classifies why a submission ended in SubmissionFailed
type FailureKind string

const (
	FailureRejected        FailureKind = "rejected"
	FailureConnectivity    FailureKind = "connectivity"
	FailureInvalidResponse FailureKind = "invalid_response"
	FailureInternal        FailureKind = "internal"
)

// SubmissionFailure user-visible failure of the last submission attempt
type SubmissionFailure struct {
	Kind    FailureKind
	Message string
	Detail  string // raw error for support, empty for rejections
}
