package authenticator

// TokenEngine issues and verifies signed tokens carrying an object of type T.
// It is the single token strategy of the process, selected at startup.
type TokenEngine[T any] interface {
	Generate(sub string, obj T) (string, error)
	Verify(token string) (T, error)
}
