package services

// MsgSuggestionsUnavailable is the only failure text callers of the matcher see.
const MsgSuggestionsUnavailable = "could not get suggestions"

// ServiceError reports a failed or unusable generation call. Its message is always
// MsgSuggestionsUnavailable. Cause is for logs only and is not returned by Unwrap.
type ServiceError struct {
	Cause error
}

func (e *ServiceError) Error() string {
	return MsgSuggestionsUnavailable
}
