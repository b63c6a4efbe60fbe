package hash

// Hash abstracts one-way hashing of secrets.
//
// Implementations must be safe for concurrent use.
type Hash interface {
	// Hash hashes plaintext and returns the encoded digest.
	Hash(plaintext string) ([]byte, error)
	// Verify reports whether plaintext matches the stored digest.
	Verify(hashed, plaintext string) bool
}
