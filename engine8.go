package idmask

import (
	"crypto/aes"
	"crypto/subtle"
	"fmt"

	"github.com/idelchi/idmask/entropy"
	"github.com/idelchi/idmask/keystore"
	"github.com/idelchi/idmask/urlsafe"
)

const (
	engine8Width     = 8
	engine8RefLen    = 8
	engine8BlockLen  = 16
	engine8CipherLen = 2 * engine8BlockLen // PKCS7 padding always adds a full block here; see below.
)

// Engine8 masks identifiers of 1-8 bytes with a single AES plaintext block
// carrying an embedded reference value as its authenticator; Unmask also
// rejects a token whose decrypted padding block is not the expected one.
//
// The plaintext block is always exactly one AES block (16 bytes), which
// means PKCS7 padding -- applied the same way gonc's pkcs7Pad does for file
// encryption -- always appends one full padding block of 0x10 bytes rather
// than a partial one. The resulting ciphertext is therefore two AES blocks,
// not one; this is required to reproduce the published golden vectors
// byte-for-byte and is documented in DESIGN.md.
type Engine8 struct {
	store     *keystore.Store
	randomize bool
	entropy   entropy.Source
}

// NewEngine8 constructs an 8-byte engine bound to store. randomize selects
// randomized mode; source supplies the reference bytes in randomized mode
// (ignored in deterministic mode).
func NewEngine8(store *keystore.Store, randomize bool, source entropy.Source) *Engine8 {
	return &Engine8{store: store, randomize: randomize, entropy: source}
}

// Width returns 8, the engine's supported plaintext width.
func (e *Engine8) Width() int { return engine8Width }

// Mask encrypts id into an opaque token. len(id) must be in [1, 8].
func (e *Engine8) Mask(id []byte) (string, error) {
	if len(id) < 1 || len(id) > engine8Width {
		return "", fmt.Errorf("%w: length %d outside [1, %d]", ErrInvalidInput, len(id), engine8Width)
	}

	reference := make([]byte, engine8RefLen)

	if e.randomize {
		r, err := e.entropy.Generate(engine8RefLen)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrNotEnoughEntropy, err)
		}

		reference = r
	}

	payload := make([]byte, engine8Width)
	copy(payload, id)

	plaintext := append(append([]byte{}, reference...), payload...)
	padded := pkcs7PadFullBlock(plaintext, engine8BlockLen)

	key := e.store.ActiveKey()

	aesKey := deriveAESKey(key.Bytes())

	block, err := aes.NewCipher(aesKey)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrEncryption, err)
	}

	ciphertext := ecbEncrypt(block, padded)

	versionByte, err := packVersionByte(key.ID(), Engine8ID, ciphertext[0])
	if err != nil {
		return "", err
	}

	var body []byte
	if e.randomize {
		body = append([]byte{versionByte}, append(append([]byte{}, reference...), ciphertext...)...)
	} else {
		body = append([]byte{versionByte}, ciphertext...)
	}

	return urlsafe.Encode(body), nil
}

// Unmask decodes and authenticates token, returning the original identifier
// bytes right-zero-trimmed.
func (e *Engine8) Unmask(token string) ([]byte, error) {
	raw, err := urlsafe.Decode(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStateMismatch, err)
	}

	if len(raw) < 1 {
		return nil, fmt.Errorf("%w: token too short", ErrStateMismatch)
	}

	versionByte := raw[0]
	rest := raw[1:]

	var expectedReference, ciphertext []byte

	switch {
	case e.randomize:
		if len(rest) != engine8RefLen+engine8CipherLen {
			return nil, fmt.Errorf("%w: unexpected token length", ErrStateMismatch)
		}

		expectedReference = rest[:engine8RefLen]
		ciphertext = rest[engine8RefLen:]
	default:
		if len(rest) != engine8CipherLen {
			return nil, fmt.Errorf("%w: unexpected token length", ErrStateMismatch)
		}

		expectedReference = make([]byte, engine8RefLen)
		ciphertext = rest
	}

	keyID, engineID := unpackVersionByte(versionByte, ciphertext[0])
	if engineID != Engine8ID {
		return nil, fmt.Errorf("%w: token was not minted by this engine", ErrStateMismatch)
	}

	key, ok := e.store.Key(keyID)
	if !ok {
		return nil, fmt.Errorf("%w: unknown key id %d", ErrStateMismatch, keyID)
	}

	aesKey := deriveAESKey(key.Bytes())

	block, err := aes.NewCipher(aesKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecryption, err)
	}

	plaintext := ecbDecrypt(block, ciphertext)

	paddingBlock := plaintext[engine8BlockLen:]
	if subtle.ConstantTimeCompare(paddingBlock, fullPaddingBlock(engine8BlockLen)) != 1 {
		return nil, fmt.Errorf("%w: padding check failed", ErrStateMismatch)
	}

	actualReference := plaintext[:engine8RefLen]
	if subtle.ConstantTimeCompare(actualReference, expectedReference) != 1 {
		return nil, fmt.Errorf("%w: reference check failed", ErrStateMismatch)
	}

	payload := plaintext[engine8RefLen:engine8BlockLen]

	return trimTrailingZeros(payload), nil
}

var _ Engine = (*Engine8)(nil)
