package shared

// WipeByteArray overwrites the contents of the provided byte slice with
// zeros. Used to remove plaintext passwords from memory after hashing or
// comparison. A nil slice is a no-op.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
