// Package envelope seals messages for a recipient by putting the AES engine
// behind a post-quantum key exchange and signature.
//
// # Algorithm Suite
//
//   - ML-KEM-768 (NIST FIPS 203) establishes a fresh shared secret per
//     envelope.
//
//   - HKDF-SHA-512 (RFC 5869) turns the shared secret into a 256-bit AES key,
//     salted with SHA-256 of the KEM ciphertext and bound to the associated
//     data through the info string.
//
//   - AES-256 in CBC or CTR mode, from this module's own engine, encrypts the
//     payload under a random 16-byte IV or initial counter.
//
//   - ML-DSA-65 (NIST FIPS 204) signs the transcript of every other field.
//
// # Security Notes
//
// Neither CBC nor CTR authenticates the ciphertext; integrity comes only from
// the signature. [VerifySignature] MUST succeed before [Open] is called:
//
//	if err := envelope.VerifySignature(env); err != nil {
//	    return nil, err
//	}
//	plaintext, err := envelope.Open(env, keypair)
//
// The AES engine underneath is a teaching implementation and is not
// constant-time. Do not seal real secrets with it.
//
// # Wire Format
//
// [Envelope] marshals to JSON. Binary fields are URL-safe base64 without
// padding ([ToBase64URL]).
package envelope
