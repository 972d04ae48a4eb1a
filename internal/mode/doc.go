// Package mode turns a 16-byte block primitive into a cipher for messages of
// any length: ECB, CBC and CTR, with PKCS#7 padding for the two block modes.
//
// The one-shot [Encrypt] and [Decrypt] functions dispatch on [Mode] and own
// their chaining state for the duration of one call. The contexts returned by
// [NewCBCEncrypter], [NewCBCDecrypter] and [NewCTR] carry an IV or counter
// across calls for incremental processing; a context belongs to exactly one
// message and must not be shared between goroutines.
package mode
