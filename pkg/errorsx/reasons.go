package errorsx

// ReasonCode is a short machine-readable error reason.
type ReasonCode string

const (
	ReasonUnknown ReasonCode = "unknown"

	ReasonConfigMissing ReasonCode = "config_missing"
	ReasonListFailed    ReasonCode = "list_failed"
	ReasonDeleteFailed  ReasonCode = "delete_failed"
)
