package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	cryptoran "github.com/cryptoran/cryptoran-go"
	"github.com/cryptoran/cryptoran-go/internal/keyfile"
)

// Key file entry names for envelope keys.
const (
	nameKEMPublic = "KEM_PUBLIC_KEY"
	nameKEMSecret = "KEM_SECRET_KEY"
	nameSigPublic = "SIG_PUBLIC_KEY"
	nameSigSecret = "SIG_SECRET_KEY"
)

func (a *app) envelopeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "envelope",
		Short: "Seal files for a recipient with ML-KEM-768, AES and ML-DSA-65",
		Long:  "Seal and open signed envelopes. Keys are generated with keygen.\n\n" + warning,
	}
	cmd.AddCommand(a.keygenCmd())
	cmd.AddCommand(a.sealCmd())
	cmd.AddCommand(a.openCmd())
	return cmd
}

func (a *app) keygenCmd() *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate a recipient and a signing keypair",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			kp, err := cryptoran.GenerateKeypair()
			if err != nil {
				return errors.Wrap(err, "generate recipient keypair")
			}
			sk, err := cryptoran.GenerateSigningKeypair()
			if err != nil {
				return errors.Wrap(err, "generate signing keypair")
			}

			kemPath, err := a.writeKeys(name+".kem", []keyfile.Entry{
				{Name: nameKEMPublic, Value: kp.PublicKey},
				{Name: nameKEMSecret, Value: kp.SecretKey},
			})
			if err != nil {
				return err
			}
			sigPath, err := a.writeKeys(name+".sig", []keyfile.Entry{
				{Name: nameSigPublic, Value: sk.PublicKey},
				{Name: nameSigSecret, Value: sk.SecretKey},
			})
			if err != nil {
				return err
			}
			a.printf("Recipient keypair written to %s", kemPath)
			a.printf("Signing keypair written to %s", sigPath)
			return nil
		},
	}
	cmd.Flags().StringVarP(&name, "output", "o", "cryptoran", "key file name prefix")
	return cmd
}

func (a *app) sealCmd() *cobra.Command {
	var to, signer, modeName, aad, out string
	cmd := &cobra.Command{
		Use:   "seal <file>",
		Short: "Seal a file for a recipient",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := cryptoran.ParseMode(modeName)
			if err != nil {
				return err
			}
			recipientPub, err := a.lookupKey(to, nameKEMPublic)
			if err != nil {
				return err
			}
			signerSecret, err := a.lookupKey(signer, nameSigSecret)
			if err != nil {
				return err
			}
			sk, err := cryptoran.SigningKeypairFromSecretKey(signerSecret)
			if err != nil {
				return errors.WithMessagef(err, "signing key %s", signer)
			}

			plaintext, err := a.readInput(args[0])
			if err != nil {
				return err
			}
			env, err := cryptoran.Seal(recipientPub, plaintext, []byte(aad), m, sk)
			if err != nil {
				return err
			}
			data, err := env.Marshal()
			if err != nil {
				return errors.Wrap(err, "encode envelope")
			}

			path, err := a.writeNew(orDefault(out, args[0]), "env", data)
			if err != nil {
				return err
			}
			a.printf("Envelope written to %s", path)
			a.logger.Info("sealed envelope", zap.String("cipher", env.Algs.Cipher), zap.Int("bytes", len(plaintext)))
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&to, "to", "", "recipient key file (needs "+nameKEMPublic+")")
	flags.StringVar(&signer, "signer", "", "signing key file (needs "+nameSigSecret+")")
	flags.StringVarP(&modeName, "mode", "m", "ctr", "cipher mode: cbc or ctr")
	flags.StringVar(&aad, "aad", "", "associated data bound into the key derivation")
	flags.StringVarP(&out, "output", "o", "", "output file name (default: input file)")
	_ = cmd.MarkFlagRequired("to")
	_ = cmd.MarkFlagRequired("signer")
	return cmd
}

func (a *app) openCmd() *cobra.Command {
	var keyPath, trust, out string
	cmd := &cobra.Command{
		Use:   "open <file>",
		Short: "Verify and open an envelope",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			secret, err := a.lookupKey(keyPath, nameKEMSecret)
			if err != nil {
				return err
			}
			kp, err := cryptoran.KeypairFromSecretKey(secret)
			if err != nil {
				return errors.WithMessagef(err, "recipient key %s", keyPath)
			}

			var trusted []byte
			if trust != "" {
				if trusted, err = a.lookupKey(trust, nameSigPublic); err != nil {
					return err
				}
			}

			data, err := a.readInput(args[0])
			if err != nil {
				return err
			}
			env, err := cryptoran.ParseEnvelope(data)
			if err != nil {
				return err
			}
			plaintext, err := cryptoran.Open(env, kp, trusted)
			if err != nil {
				return err
			}

			path, err := a.writeNew(orDefault(out, args[0]), "dec", plaintext)
			if err != nil {
				return err
			}
			a.printf("Output written to %s", path)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&keyPath, "key", "k", "", "recipient key file (needs "+nameKEMSecret+")")
	flags.StringVar(&trust, "trust", "", "only accept envelopes signed by the key in this file")
	flags.StringVarP(&out, "output", "o", "", "output file name (default: input file)")
	_ = cmd.MarkFlagRequired("key")
	return cmd
}

func (a *app) lookupKey(path, name string) ([]byte, error) {
	keys, err := a.readKeys(path)
	if err != nil {
		return nil, err
	}
	v, ok := keys.Lookup(name, 0)
	if !ok {
		return nil, errors.Errorf("key file %s has no %s entry", path, name)
	}
	return v, nil
}
