// Package keyfile reads and writes the plain-text key files used by the
// command-line tool.
//
// A key file is a sequence of entries:
//
//	---- AES_KEY----
//	0x000102030405060708090a0b0c0d0e0f
//	---- AES_IV----
//	0xf0f1f2f3f4f5f6f7f8f9fafbfcfdfeff
//
// Lines starting with '#' are comments. Header lines starting with '-' that
// contain END are skipped. Entry names are compared after removing
// punctuation, symbols and whitespace, so "AES_KEY" and "AESKEY" are the same
// entry.
package keyfile

import (
	"bufio"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"
)

// Standard entry names.
const (
	NameKey = "AES_KEY"
	NameIV  = "AES_IV"
)

// ErrMalformedKeyFile is returned when a key file cannot be parsed.
var ErrMalformedKeyFile = errors.New("key file contains invalid data")

// Entry is one named value in a key file.
type Entry struct {
	Name  string
	Value []byte
}

// Keys holds the entries read from a key file, indexed by normalized name.
type Keys map[string][]byte

// Lookup returns the value stored under name. When size is positive and the
// stored value is shorter, it is left-padded with zeros; files written by
// tools that print integers drop leading zero bytes.
func (k Keys) Lookup(name string, size int) ([]byte, bool) {
	v, ok := k[Normalize(name)]
	if !ok {
		return nil, false
	}
	if size > 0 && len(v) < size {
		padded := make([]byte, size)
		copy(padded[size-len(v):], v)
		return padded, true
	}
	return v, true
}

// Normalize strips punctuation, symbols and whitespace from an entry name.
func Normalize(name string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPunct(r) || unicode.IsSymbol(r) || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, name)
}

// Write writes entries in key file format. Values keep their full width,
// including leading zero bytes.
func Write(w io.Writer, entries []Entry) error {
	bw := bufio.NewWriter(w)
	for _, e := range entries {
		if _, err := fmt.Fprintf(bw, "---- %s----\n0x%s\n", e.Name, hex.EncodeToString(e.Value)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Read parses a key file.
func Read(r io.Reader) (Keys, error) {
	keys := make(Keys)
	sc := bufio.NewScanner(r)

	var (
		pending string
		line    int
		inEntry bool
	)
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		switch {
		case text == "", strings.HasPrefix(text, "#"):
			continue
		case strings.HasPrefix(text, "-"):
			if strings.Contains(text, "END") {
				continue
			}
			if inEntry {
				return nil, fmt.Errorf("%w: line %d: entry %q has no value", ErrMalformedKeyFile, line, pending)
			}
			pending = Normalize(text)
			if pending == "" {
				return nil, fmt.Errorf("%w: line %d: empty entry name", ErrMalformedKeyFile, line)
			}
			inEntry = true
		case inEntry:
			v, err := parseHex(text)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedKeyFile, line, err)
			}
			keys[pending] = v
			inEntry = false
		default:
			return nil, fmt.Errorf("%w: line %d: value outside an entry", ErrMalformedKeyFile, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if inEntry {
		return nil, fmt.Errorf("%w: entry %q has no value", ErrMalformedKeyFile, pending)
	}
	return keys, nil
}

func parseHex(s string) ([]byte, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if s == "" {
		return nil, errors.New("empty value")
	}
	if len(s)%2 == 1 {
		s = "0" + s
	}
	return hex.DecodeString(s)
}
