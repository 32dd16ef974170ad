package types

type DreamStatus string

const (
	DreamStatusPending DreamStatus = "pending"
	DreamStatusPaid    DreamStatus = "paid"
	// DreamStatusFailed is reserved in the schema; no code path assigns it.
	DreamStatusFailed DreamStatus = "failed"
)
