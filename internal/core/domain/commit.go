package domain

// CommitResult is what a successful step commit hands back.
type CommitResult struct {
	Entry         LedgerEntry `json:"ledgerEntry"`
	CompletedStep int         `json:"completedStep"`
	Version       int64       `json:"version"`
}

// TransitionRequest is a confirmed cursor move. ExpectedVersion, when set,
// must match the version the caller listed destinations with.
type TransitionRequest struct {
	TargetStep      string
	ExpectedVersion int64
}
