package main

import (
	"bytes"
	"encoding/hex"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	cryptoran "github.com/cryptoran/cryptoran-go"
	"github.com/cryptoran/cryptoran-go/internal/keyfile"
)

var (
	errDecryptNoKey = errors.New("a key must be provided for decryption operations")
	errNoOperation  = errors.New("encryption or decryption operation not specified")
	errNoIV         = errors.New("an IV must be provided in the key file or with --iv")
)

type aesFlags struct {
	encrypt bool
	decrypt bool
	keyFile string
	iv      string
	keyOut  string
	out     string
}

func (a *app) aesCmd() *cobra.Command {
	var f aesFlags
	cmd := &cobra.Command{
		Use:   "aes <ecb|cbc|ctr> <file>",
		Short: "Encrypt or decrypt a file with AES",
		Long: "Encrypt (-e) or decrypt (-d) a file with AES in ECB, CBC or CTR mode.\n\n" +
			"Encryption without -k generates a random key (and IV) and stores it in\n" +
			"<file>.key. Ciphertext is written as hex to <file>.enc; plaintext to\n" +
			"<file>.dec. Existing files are never overwritten.\n\n" + warning,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := cryptoran.ParseMode(args[0])
			if err != nil {
				return err
			}
			switch {
			case f.decrypt:
				return a.aesDecrypt(m, args[1], &f)
			case f.encrypt:
				return a.aesEncrypt(m, args[1], &f)
			default:
				return errNoOperation
			}
		},
	}

	flags := cmd.Flags()
	flags.BoolVarP(&f.encrypt, "encrypt", "e", false, "encrypt the file")
	flags.BoolVarP(&f.decrypt, "decrypt", "d", false, "decrypt the file")
	flags.StringVarP(&f.keyFile, "key", "k", "", "key file")
	flags.StringVar(&f.iv, "iv", "", "IV or initial counter as hex, overriding the key file")
	flags.StringVar(&f.keyOut, "ok", "", "output key file name (default: input file)")
	flags.StringVarP(&f.out, "output", "o", "", "output file name (default: input file)")
	flags.Int(keyKeySize, 128, "key size in bits for generated keys: 128, 192 or 256")
	cmd.MarkFlagsMutuallyExclusive("encrypt", "decrypt")
	return cmd
}

// loadKeyMaterial reads the key and IV from the key file, if any, and
// applies --iv.
func (a *app) loadKeyMaterial(f *aesFlags) (key, iv []byte, err error) {
	if f.keyFile != "" {
		keys, err := a.readKeys(f.keyFile)
		if err != nil {
			return nil, nil, err
		}
		k, ok := keys.Lookup(keyfile.NameKey, 0)
		if !ok {
			return nil, nil, errors.Errorf("key file %s has no %s entry", f.keyFile, keyfile.NameKey)
		}
		key, _ = keys.Lookup(keyfile.NameKey, keyLenFor(len(k)))
		iv, _ = keys.Lookup(keyfile.NameIV, cryptoran.BlockSize)
	}
	if f.iv != "" {
		iv, err = hex.DecodeString(f.iv)
		if err != nil {
			return nil, nil, errors.Wrap(err, "--iv")
		}
	}
	return key, iv, nil
}

func (a *app) aesEncrypt(m cryptoran.Mode, path string, f *aesFlags) error {
	key, iv, err := a.loadKeyMaterial(f)
	if err != nil {
		return err
	}

	generated := false
	if key == nil {
		if key, err = cryptoran.GenerateKey(a.v.GetInt(keyKeySize)); err != nil {
			return err
		}
		generated = true
	}
	if m.NeedsIV() && iv == nil {
		if iv, err = cryptoran.GenerateIV(); err != nil {
			return err
		}
		generated = true
	}

	plaintext, err := a.readInput(path)
	if err != nil {
		return err
	}

	c, err := cryptoran.New(key, cryptoran.WithLogger(a.logger))
	if err != nil {
		return err
	}
	ct, err := c.Encrypt(plaintext, m, iv)
	if err != nil {
		return err
	}

	out, err := a.writeNew(orDefault(f.out, path), "enc", []byte(hex.EncodeToString(ct)))
	if err != nil {
		return err
	}
	a.printf("Encryption result written to %s", out)
	a.logger.Info("encrypted file", zap.String("mode", m.String()), zap.String("output", out), zap.Int("bytes", len(plaintext)))

	if !generated && f.keyOut == "" {
		return nil
	}
	entries := []keyfile.Entry{{Name: keyfile.NameKey, Value: key}}
	if m.NeedsIV() {
		entries = append(entries, keyfile.Entry{Name: keyfile.NameIV, Value: iv})
	}
	keyPath, err := a.writeKeys(orDefault(f.keyOut, path), entries)
	if err != nil {
		return err
	}
	a.printf("Key stored in %s", keyPath)
	return nil
}

func (a *app) aesDecrypt(m cryptoran.Mode, path string, f *aesFlags) error {
	if f.keyFile == "" {
		return errDecryptNoKey
	}
	key, iv, err := a.loadKeyMaterial(f)
	if err != nil {
		return err
	}
	if m.NeedsIV() && iv == nil {
		return errNoIV
	}

	raw, err := a.readInput(path)
	if err != nil {
		return err
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return errors.New("input file is empty")
	}
	ct, err := hex.DecodeString(string(raw))
	if err != nil {
		return errors.Wrapf(err, "%s is not hex ciphertext", path)
	}

	c, err := cryptoran.New(key, cryptoran.WithLogger(a.logger))
	if err != nil {
		return err
	}
	plaintext, err := c.Decrypt(ct, m, iv)
	if err != nil {
		return err
	}

	out, err := a.writeNew(orDefault(f.out, path), "dec", plaintext)
	if err != nil {
		return err
	}
	a.printf("Output written to %s", out)
	a.logger.Info("decrypted file", zap.String("mode", m.String()), zap.String("output", out), zap.Int("bytes", len(plaintext)))
	return nil
}

// maxDroppedZeros is how many leading zero bytes a key may have lost to a
// tool that stores keys as integers.
const maxDroppedZeros = 2

// keyLenFor returns the AES key length a key of n bytes is restored to. Keys
// more than maxDroppedZeros short of a valid length keep their size, so the
// cipher rejects them.
func keyLenFor(n int) int {
	for _, size := range []int{16, 24, 32} {
		if n <= size && size-n <= maxDroppedZeros {
			return size
		}
	}
	return n
}

func orDefault(s, def string) string {
	if s != "" {
		return s
	}
	return def
}
