package idmask

import "errors"

// Error kinds returned by Mask and Unmask. Construction-time validation
// errors (bad key material, duplicate key ids) are defined in keystore;
// these cover the mask/unmask operations themselves.
var (
	// ErrInvalidInput is returned when the identifier length is 0 or
	// exceeds the engine's supported width.
	ErrInvalidInput = errors.New("idmask: invalid input length")

	// ErrInvalidKeyID is returned when a key id used at masking time falls
	// outside [0, keystore.MaxKeyID].
	ErrInvalidKeyID = errors.New("idmask: invalid key id")

	// ErrInvalidEngineID is returned when an engine id falls outside
	// [0, keystore.MaxKeyID]; within this package that indicates internal
	// misconfiguration, since engine ids are fixed constants. The CLI also
	// returns it for an --engine width other than 8 or 16.
	ErrInvalidEngineID = errors.New("idmask: invalid engine id")

	// ErrNotEnoughEntropy is returned when the entropy source cannot
	// supply the requested randomness; it originates in the entropy
	// source and surfaces through Mask.
	ErrNotEnoughEntropy = errors.New("idmask: not enough entropy")

	// ErrEncryption is returned for primitive-level encryption failures.
	ErrEncryption = errors.New("idmask: encryption failed")

	// ErrDecryption is returned for primitive-level decryption failures
	// that are not authentication failures (those are ErrStateMismatch).
	ErrDecryption = errors.New("idmask: decryption failed")

	// ErrStateMismatch is returned for any authentication failure: an
	// unknown key id, a mismatched engine id, a failed reference or
	// padding check (8-byte engine), a failed MAC (16-byte engine), or
	// structurally invalid token bytes. All of these are reported
	// uniformly so callers cannot distinguish "wrong key" from "forged
	// token" from the error alone.
	ErrStateMismatch = errors.New("idmask: state mismatch")
)

// IsInvalidInput reports whether err is or wraps ErrInvalidInput.
func IsInvalidInput(err error) bool { return errors.Is(err, ErrInvalidInput) }

// IsInvalidKeyID reports whether err is or wraps ErrInvalidKeyID.
func IsInvalidKeyID(err error) bool { return errors.Is(err, ErrInvalidKeyID) }

// IsInvalidEngineID reports whether err is or wraps ErrInvalidEngineID.
func IsInvalidEngineID(err error) bool { return errors.Is(err, ErrInvalidEngineID) }

// IsNotEnoughEntropy reports whether err is or wraps ErrNotEnoughEntropy.
func IsNotEnoughEntropy(err error) bool { return errors.Is(err, ErrNotEnoughEntropy) }

// IsEncryption reports whether err is or wraps ErrEncryption.
func IsEncryption(err error) bool { return errors.Is(err, ErrEncryption) }

// IsDecryption reports whether err is or wraps ErrDecryption.
func IsDecryption(err error) bool { return errors.Is(err, ErrDecryption) }

// IsStateMismatch reports whether err is or wraps ErrStateMismatch.
func IsStateMismatch(err error) bool { return errors.Is(err, ErrStateMismatch) }
