package assistant

// QueryOptions collects the per-request knobs a client implementation
// understands.
type QueryOptions struct {
	// Language is the locale code sent with the utterance.
	Language string

	// UserID identifies the conversation at the backend.
	UserID string
}

type QueryOption func(*QueryOptions)

// WithLanguage sets the locale code carried with the request.
func WithLanguage(language string) QueryOption {
	return func(o *QueryOptions) {
		o.Language = language
	}
}

// WithUserID overrides the user identifier for this request.
func WithUserID(userID string) QueryOption {
	return func(o *QueryOptions) {
		o.UserID = userID
	}
}
