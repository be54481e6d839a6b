// Package identifier generates the opaque record identifiers used by the
// user and tweet collections.
package identifier

import "crypto/rand"

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// Length is the fixed size of every generated identifier.
const Length = 32

// New returns a fresh 32-character random alphanumeric identifier. Callers
// must invoke it exactly once per record creation.
func New() string {
	buf := make([]byte, Length)
	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}
	for i, b := range buf {
		buf[i] = alphabet[int(b)%len(alphabet)]
	}
	return string(buf)
}
