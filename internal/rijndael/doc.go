// Package rijndael implements the AES block cipher (FIPS-197) from first
// principles: S-box construction over GF(2^8), key expansion for 128, 192 and
// 256-bit keys, the four round transformations and single-block encryption and
// decryption.
//
// # State Layout
//
// A [State] holds 16 bytes in column-major order: byte i lives at row i mod 4,
// column i / 4. Input blocks, round keys and output blocks all use this layout,
// so a block is copied into the state without any transposition.
//
// # Tables
//
// [SBox], [InvSBox] and [RoundConstants] are computed on first use and are
// read-only afterwards. They, and every [Schedule], may be shared by any number
// of goroutines without synchronization.
//
// # Security
//
// The implementation uses table lookups indexed by secret data and is not
// hardened against timing or cache side channels. It exists to study the
// algorithm and must not be used to protect real secrets.
package rijndael
