package ports

// TokenIssuer mints a signed, time-limited identity token for a username.
type TokenIssuer interface {
	Issue(username string) (string, error)
}

// TokenVerifier validates a presented token and returns its subject.
// Implementations report why verification failed (malformed, bad signature,
// expired); callers must not leak that distinction to clients.
type TokenVerifier interface {
	Verify(token string) (string, error)
}
