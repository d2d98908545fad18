// Package urlsafe implements the token-safe Base64 variant used by IDMask
// tokens: a character substitution on top of standard Base64, not the
// RFC 4648 URL-safe alphabet.
package urlsafe

import (
	"encoding/base64"
	"strings"
)

var encodeReplacer = strings.NewReplacer("+", "~", "/", "_", "=", "-")

var decodeReplacer = strings.NewReplacer("~", "+", "_", "/", "-", "=")

// Encode standard-Base64-encodes b, then substitutes '+' -> '~', '/' -> '_'
// and the '=' padding character -> '-'.
func Encode(b []byte) string {
	return encodeReplacer.Replace(base64.StdEncoding.EncodeToString(b))
}

// Decode reverses the substitution performed by Encode and standard-Base64
// decodes the result, rejecting input whose trailing padding bits are not
// zero, so each token string decodes from exactly one encoding.
func Decode(s string) ([]byte, error) {
	return base64.StdEncoding.Strict().DecodeString(decodeReplacer.Replace(s))
}
