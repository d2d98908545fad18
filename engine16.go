package idmask

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"

	"github.com/idelchi/idmask/entropy"
	"github.com/idelchi/idmask/keystore"
	"github.com/idelchi/idmask/urlsafe"
)

const (
	engine16Width      = 16
	engine16EntropyLen = 16
	engine16BlockLen   = 16
	macLenDefault      = 8
	macLenHighSec      = 16
	hkdfOutputLen      = 64
)

// Engine16 masks identifiers up to 16 bytes with a fresh per-token HKDF
// subkey, single-block AES-CBC, and a truncated HMAC-SHA-256 tag.
//
// The "entropy" value is 16 bytes, matching the engine's own plaintext
// width: it serves both as the HKDF info parameter and as the XOR mask
// applied to the zero-padded identifier before encryption. The published
// golden vectors fix this at 16 bytes even though spec.md's prose describes
// an 8-byte value zero-extended or repeated to 16; the vectors are
// authoritative (see DESIGN.md, Open Question resolution).
type Engine16 struct {
	store        *keystore.Store
	randomize    bool
	entropy      entropy.Source
	highSecurity bool
}

// NewEngine16 constructs a 16-byte engine bound to store. randomize selects
// randomized mode; highSecurity selects a 16-byte MAC instead of the
// 8-byte default. Tokens minted in one MAC length cannot be verified in
// the other, so highSecurity must be a stable per-deployment choice.
func NewEngine16(store *keystore.Store, randomize, highSecurity bool, source entropy.Source) *Engine16 {
	return &Engine16{store: store, randomize: randomize, entropy: source, highSecurity: highSecurity}
}

// Width returns 16, the engine's supported plaintext width.
func (e *Engine16) Width() int { return engine16Width }

func (e *Engine16) macLen() int {
	if e.highSecurity {
		return macLenHighSec
	}

	return macLenDefault
}

// deriveSubkeys derives the per-token iv and mac_key from masterKey and
// entropy16 via full HKDF (extract with a nil/zero salt, then expand),
// mirroring gonc's deriveRandomizedKeys. okm[0:16] is reserved and
// deliberately unused, matching the reference behavior the golden vectors
// fix (spec.md 9, Open Question 1).
func deriveSubkeys(masterKey, entropy16 []byte) (iv, macKey []byte, err error) {
	reader := hkdf.New(sha256.New, masterKey, nil, entropy16)

	okm := make([]byte, hkdfOutputLen)
	if _, err := io.ReadFull(reader, okm); err != nil {
		return nil, nil, fmt.Errorf("deriving subkeys: %w", err)
	}

	return okm[16:32], okm[32:64], nil
}

// Mask encrypts id into an opaque, authenticated token. len(id) must be in
// [1, 16].
func (e *Engine16) Mask(id []byte) (string, error) {
	if len(id) < 1 || len(id) > engine16Width {
		return "", fmt.Errorf("%w: length %d outside [1, %d]", ErrInvalidInput, len(id), engine16Width)
	}

	entropy16 := make([]byte, engine16EntropyLen)

	if e.randomize {
		r, err := e.entropy.Generate(engine16EntropyLen)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrNotEnoughEntropy, err)
		}

		entropy16 = r
	}

	plainID := make([]byte, engine16Width)
	copy(plainID, id)

	masked := xorBytes(plainID, entropy16)

	key := e.store.ActiveKey()
	keyBytes := key.Bytes()

	iv, macKey, err := deriveSubkeys(keyBytes, entropy16)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrEncryption, err)
	}

	aesKey := deriveAESKey(keyBytes)

	block, err := aes.NewCipher(aesKey)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrEncryption, err)
	}

	ciphertext := make([]byte, engine16BlockLen)
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, masked)

	versionByte, err := packVersionByte(key.ID(), Engine16ID, ciphertext[0])
	if err != nil {
		return "", err
	}

	mac := hmac.New(sha256.New, macKey)
	mac.Write(iv)
	mac.Write(ciphertext)
	mac.Write([]byte{versionByte})
	tag := mac.Sum(nil)[:e.macLen()]

	var body []byte
	if e.randomize {
		body = append([]byte{versionByte}, append(append(append([]byte{}, entropy16...), ciphertext...), tag...)...)
	} else {
		body = append([]byte{versionByte}, append(append([]byte{}, ciphertext...), tag...)...)
	}

	return urlsafe.Encode(body), nil
}

// Unmask decodes and authenticates token, returning the original identifier
// bytes right-zero-trimmed.
func (e *Engine16) Unmask(token string) ([]byte, error) {
	raw, err := urlsafe.Decode(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStateMismatch, err)
	}

	if len(raw) < 1 {
		return nil, fmt.Errorf("%w: token too short", ErrStateMismatch)
	}

	versionByte := raw[0]
	rest := raw[1:]

	macLen := e.macLen()

	var entropy16, ciphertext, macReceived []byte

	switch {
	case e.randomize:
		want := engine16EntropyLen + engine16BlockLen + macLen
		if len(rest) != want {
			return nil, fmt.Errorf("%w: unexpected token length", ErrStateMismatch)
		}

		entropy16 = rest[:engine16EntropyLen]
		ciphertext = rest[engine16EntropyLen : engine16EntropyLen+engine16BlockLen]
		macReceived = rest[engine16EntropyLen+engine16BlockLen:]
	default:
		want := engine16BlockLen + macLen
		if len(rest) != want {
			return nil, fmt.Errorf("%w: unexpected token length", ErrStateMismatch)
		}

		entropy16 = make([]byte, engine16EntropyLen)
		ciphertext = rest[:engine16BlockLen]
		macReceived = rest[engine16BlockLen:]
	}

	keyID, engineID := unpackVersionByte(versionByte, ciphertext[0])
	if engineID != Engine16ID {
		return nil, fmt.Errorf("%w: token was not minted by this engine", ErrStateMismatch)
	}

	key, ok := e.store.Key(keyID)
	if !ok {
		return nil, fmt.Errorf("%w: unknown key id %d", ErrStateMismatch, keyID)
	}

	keyBytes := key.Bytes()

	iv, macKey, err := deriveSubkeys(keyBytes, entropy16)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecryption, err)
	}

	mac := hmac.New(sha256.New, macKey)
	mac.Write(iv)
	mac.Write(ciphertext)
	mac.Write([]byte{versionByte})
	expected := mac.Sum(nil)[:macLen]

	if subtle.ConstantTimeCompare(expected, macReceived) != 1 {
		return nil, fmt.Errorf("%w: mac check failed", ErrStateMismatch)
	}

	aesKey := deriveAESKey(keyBytes)

	block, err := aes.NewCipher(aesKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecryption, err)
	}

	masked := make([]byte, engine16BlockLen)
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(masked, ciphertext)

	plainID := xorBytes(masked, entropy16)

	return trimTrailingZeros(plainID), nil
}

var _ Engine = (*Engine16)(nil)
