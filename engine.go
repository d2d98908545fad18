package idmask

import "strconv"

// Engine is the capability set shared by both masking schemes: mint an
// opaque token from an identifier, and recover the identifier from a token.
// Engine state (key store, mode, entropy source) is fixed at construction
// and read-only afterward, so a single Engine instance is safe for
// concurrent use.
type Engine interface {
	// Mask transforms id into an opaque, URL-safe token.
	Mask(id []byte) (string, error)
	// Unmask recovers the identifier bytes carried by token.
	Unmask(token string) ([]byte, error)
	// Width returns the engine's supported plaintext width in bytes (8 or
	// 16).
	Width() int
}

// Engine ids, packed into the low nibble of the token version byte.
const (
	Engine8ID  = 0
	Engine16ID = 1
)

// aesKeySize is the AES key size both engines use. The 8-byte engine's
// cipher is named "AES-256-ECB" in the source this specification was
// distilled from, but fixture keys are shorter than 32 bytes; deriveAESKey
// reproduces the published golden vectors by zero-padding (or truncating)
// the master key to exactly this length, for both engines uniformly.
const aesKeySize = 32

// deriveAESKey normalizes arbitrary-length key bytes (keystore enforces
// [12, 64]) to exactly aesKeySize bytes: zero-padded on the right if
// shorter, truncated if longer. This is the documented resolution of the
// source's "AES-256-ECB with a 20-byte test key" inconsistency; see
// DESIGN.md.
func deriveAESKey(masterKey []byte) []byte {
	key := make([]byte, aesKeySize)
	copy(key, masterKey)

	return key
}

// xorBytes XORs a and b byte-by-byte into a freshly allocated slice the
// length of the shorter input.
func xorBytes(a, b []byte) []byte {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = a[i] ^ b[i]
	}

	return out
}

// MaskInt masks the decimal string representation of n using e. This
// matches the reference behavior the specification documents for integer
// inputs: the value is converted to its decimal digits, not a fixed-width
// binary integer encoding — so large magnitude values can exceed an
// engine's width and fail with ErrInvalidInput. Callers needing compact
// binary integer tokens should encode the integer to bytes themselves and
// call Mask directly.
func MaskInt(e Engine, n int64) (string, error) {
	return e.Mask([]byte(strconv.FormatInt(n, 10)))
}
