package ports

// Message keys resolved through MessageResolver.
const (
	MsgNotFound     = "exception.not_found"
	MsgGenericError = "exception.generic_error"
)

// MessageResolver resolves client-facing message templates by key.
// Positional arguments replace {0}, {1}, ... placeholders.
type MessageResolver interface {
	Message(key string, args ...any) string
}
