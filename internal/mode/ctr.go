package mode

import "io"

// CTRStream is a counter-mode keystream context. Unused keystream bytes are kept
// between calls, so a message may be processed in pieces of any size.
type CTRStream struct {
	b    Block
	ctr  []byte
	out  []byte
	used int
}

// NewCTR returns a CTRStream starting at counter, which must be one block
// long and is copied.
func NewCTR(b Block, counter []byte) (*CTRStream, error) {
	if err := checkIV(counter, b.BlockSize()); err != nil {
		return nil, err
	}
	return &CTRStream{
		b:    b,
		ctr:  dup(counter),
		out:  make([]byte, b.BlockSize()),
		used: b.BlockSize(),
	}, nil
}

// Counter returns a copy of the next counter value to be encrypted.
func (x *CTRStream) Counter() []byte {
	return dup(x.ctr)
}

func (x *CTRStream) refill() error {
	if err := x.b.Encrypt(x.out, x.ctr); err != nil {
		return err
	}
	increment(x.ctr)
	x.used = 0
	return nil
}

// XORKeyStream XORs src with the keystream into dst. Encryption and
// decryption are the same operation. dst and src may be the same slice.
func (x *CTRStream) XORKeyStream(dst, src []byte) error {
	if len(dst) < len(src) {
		return io.ErrShortBuffer
	}
	for len(src) > 0 {
		if x.used == len(x.out) {
			if err := x.refill(); err != nil {
				return err
			}
		}
		n := xorBytes(dst, src, x.out[x.used:])
		dst = dst[n:]
		src = src[n:]
		x.used += n
	}
	return nil
}

// increment adds one to ctr as a big-endian integer, wrapping to zero.
func increment(ctr []byte) {
	for i := len(ctr) - 1; i >= 0; i-- {
		ctr[i]++
		if ctr[i] != 0 {
			return
		}
	}
}
