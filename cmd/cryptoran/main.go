// Command cryptoran encrypts and decrypts files with the cryptoran AES engine
// and seals files into post-quantum envelopes.
//
// The engine is for study only. Do not use it to protect real secrets.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const warning = "cryptoran is a teaching implementation of AES. It is not constant-time\n" +
	"and must not be used to protect real secrets."

// Config holds the process environment a command runs against.
type Config struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	// Getenv looks up environment variables.
	Getenv func(string) string
	// Fs is the filesystem input, output and key files live on.
	Fs afero.Fs
}

// DefaultConfig returns a Config bound to the real process environment.
func DefaultConfig() *Config {
	return &Config{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Getenv: os.Getenv,
		Fs:     afero.NewOsFs(),
	}
}

// app is the state shared by every command of one invocation.
type app struct {
	cfg    *Config
	v      *viper.Viper
	logger *zap.Logger
}

func run(args []string, cfg *Config) error {
	if len(args) < 2 {
		return errors.New("usage: cryptoran <command> [args]")
	}
	if cfg.Getenv == nil {
		cfg.Getenv = func(string) string { return "" }
	}
	if cfg.Fs == nil {
		cfg.Fs = afero.NewOsFs()
	}

	a := &app{cfg: cfg, v: viper.New(), logger: zap.NewNop()}
	defer func() { _ = a.logger.Sync() }()

	root := a.rootCmd()
	root.SetArgs(args[1:])
	root.SetIn(cfg.Stdin)
	root.SetOut(cfg.Stdout)
	root.SetErr(cfg.Stderr)
	return root.Execute()
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "cryptoran",
		Short:         "AES file encryption for study",
		Long:          warning,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.loadSettings(cmd.Flags()); err != nil {
				return err
			}
			logger, err := newLogger(a.v.GetString(keyLogLevel), a.v.GetBool(keyVerbose), a.cfg.Stderr)
			if err != nil {
				return err
			}
			a.logger = logger
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.String(keyLogLevel, "warn", "log level: debug, info, warn or error")
	flags.BoolP(keyVerbose, "v", false, "human-readable debug logging")
	flags.String(keyEnvFile, ".env", "file of CRYPTORAN_* settings to load if present")

	root.AddCommand(a.aesCmd())
	root.AddCommand(a.envelopeCmd())
	return root
}

func (a *app) printf(format string, args ...any) {
	fmt.Fprintf(a.cfg.Stdout, format+"\n", args...)
}

func fatal(cfg *Config, format string, args ...any) {
	fmt.Fprintf(cfg.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
