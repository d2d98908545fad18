// Package idmask reversibly transforms small application identifiers
// (integers, UUIDs, short binary strings up to 16 bytes) into opaque,
// unforgeable, URL-safe text tokens.
//
// Unlike hashing or compression, the transformation is reversible: every
// masked token decodes to the original identifier bytes. Identifiers are
// right-zero-padded to the engine width before masking and Unmask strips
// trailing zero bytes, so an identifier that ends in zero bytes decodes
// without them. Masking is
// authenticated, so tokens produced under one secret cannot be decoded,
// truncated, bit-flipped, or constructed from scratch by an attacker. A
// randomized mode produces uncorrelated tokens for the same underlying
// identifier, suitable for one-time links.
//
// Two engines are provided. Engine8 masks identifiers up to 8 bytes with a
// single AES block carrying an embedded reference value as its
// authenticator. Engine16 masks identifiers up to 16 bytes with a fresh
// HKDF-derived subkey per token, AES-CBC, and a truncated HMAC-SHA-256 tag.
// Both support deterministic and randomized modes, and key rotation via a
// 4-bit key id carried in the token's version byte.
package idmask
