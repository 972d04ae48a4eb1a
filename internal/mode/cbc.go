package mode

import (
	"fmt"
	"io"
)

type cbc struct {
	b    Block
	bs   int
	prev []byte
	tmp  []byte
}

func newCBC(b Block, iv []byte) (*cbc, error) {
	if err := checkIV(iv, b.BlockSize()); err != nil {
		return nil, err
	}
	return &cbc{
		b:    b,
		bs:   b.BlockSize(),
		prev: dup(iv),
		tmp:  make([]byte, b.BlockSize()),
	}, nil
}

func (x *cbc) check(dst, src []byte) error {
	if len(src)%x.bs != 0 {
		return fmt.Errorf("%w: got %d bytes, block size %d", ErrInvalidDataLength, len(src), x.bs)
	}
	if len(dst) < len(src) {
		return io.ErrShortBuffer
	}
	return nil
}

// CBCEncrypter is a CBC encryption context. The chaining value carries over
// between calls to CryptBlocks.
type CBCEncrypter struct {
	*cbc
}

// NewCBCEncrypter returns a CBC encryption context over b. iv must be one block
// long; it is copied.
func NewCBCEncrypter(b Block, iv []byte) (*CBCEncrypter, error) {
	x, err := newCBC(b, iv)
	if err != nil {
		return nil, err
	}
	return &CBCEncrypter{x}, nil
}

// CryptBlocks encrypts a whole number of blocks from src into dst. dst and src
// may be the same slice.
func (x *CBCEncrypter) CryptBlocks(dst, src []byte) error {
	if err := x.check(dst, src); err != nil {
		return err
	}
	for i := 0; i < len(src); i += x.bs {
		xorBytes(x.tmp, src[i:i+x.bs], x.prev)
		if err := x.b.Encrypt(dst[i:i+x.bs], x.tmp); err != nil {
			return err
		}
		copy(x.prev, dst[i:i+x.bs])
	}
	return nil
}

// CBCDecrypter is a CBC decryption context.
type CBCDecrypter struct {
	*cbc
}

// NewCBCDecrypter returns a CBC decryption context over b. iv must be one block
// long; it is copied.
func NewCBCDecrypter(b Block, iv []byte) (*CBCDecrypter, error) {
	x, err := newCBC(b, iv)
	if err != nil {
		return nil, err
	}
	return &CBCDecrypter{x}, nil
}

// CryptBlocks decrypts a whole number of blocks from src into dst. dst and src
// may be the same slice.
func (x *CBCDecrypter) CryptBlocks(dst, src []byte) error {
	if err := x.check(dst, src); err != nil {
		return err
	}
	ct := make([]byte, x.bs)
	for i := 0; i < len(src); i += x.bs {
		copy(ct, src[i:i+x.bs])
		if err := x.b.Decrypt(x.tmp, ct); err != nil {
			return err
		}
		xorBytes(dst[i:i+x.bs], x.tmp, x.prev)
		copy(x.prev, ct)
	}
	return nil
}
