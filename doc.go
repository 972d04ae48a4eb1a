// Package cryptoran is a from-scratch implementation of the AES (Rijndael)
// block cipher with 128, 192 and 256-bit keys, the ECB, CBC and CTR modes of
// operation, and PKCS#7 padding.
//
// The engine is written for study. Every layer, from GF(2^8) arithmetic to
// the S-box tables and the key schedule, is computed rather than pasted in,
// and the code is not hardened against timing or cache side channels. Do not
// use it to protect real secrets; use crypto/aes for that.
//
// Basic usage:
//
//	key, err := cryptoran.GenerateKey(256)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	iv, err := cryptoran.GenerateIV()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ct, err := cryptoran.Encrypt([]byte("attack at dawn"), key, cryptoran.CBC, cryptoran.WithIV(iv))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	pt, err := cryptoran.Decrypt(ct, key, cryptoran.CBC, cryptoran.WithIV(iv))
//
// A [Cipher] caches the expanded key for repeated use and is safe for
// concurrent use by multiple goroutines:
//
//	c, err := cryptoran.New(key)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	block, err := c.EncryptBlock(src)
//
// [Seal] and [Open] wrap the engine in a post-quantum envelope: ML-KEM-768
// key agreement, HKDF-SHA-512 key derivation and an ML-DSA-65 signature.
//
// # Errors
//
// Every failure is reported as an error value, never a panic. Errors match
// the sentinels below with errors.Is, and operation failures can be
// inspected as a [*CipherError] with errors.As.
package cryptoran
