package rest

// Session carries the credentials attached to every outgoing request.
// It is constructed once at process start and is read-only afterward;
// request builders can read the token but nothing mutates it mid-session.
type Session struct {
	token string
}

// NewSession creates a session holding the given bearer token.
// An empty token produces an anonymous session.
func NewSession(token string) Session {
	return Session{token: token}
}

// Token returns the bearer token, or an empty string for anonymous sessions.
func (s Session) Token() string {
	return s.token
}

// Anonymous reports whether the session carries no credentials.
func (s Session) Anonymous() bool {
	return s.token == ""
}
