package main

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

const envPrefix = "CRYPTORAN"

// Setting keys. Each is a flag name and, upper-cased with dashes turned into
// underscores and prefixed, an environment variable.
const (
	keyLogLevel = "log-level"
	keyVerbose  = "verbose"
	keyEnvFile  = "env-file"
	keyKeySize  = "key-size"
)

var settingKeys = []string{keyLogLevel, keyVerbose, keyKeySize}

func envName(key string) string {
	return envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, "-", "_"))
}

// loadSettings layers settings as: explicit flag, process environment,
// .env file, flag default.
func (a *app) loadSettings(flags *pflag.FlagSet) error {
	dotenv, err := a.readEnvFile(flags)
	if err != nil {
		return err
	}

	for _, key := range settingKeys {
		f := flags.Lookup(key)
		if f == nil {
			continue
		}
		if err := a.v.BindPFlag(key, f); err != nil {
			return errors.Wrapf(err, "bind flag %s", key)
		}
		name := envName(key)
		if val := a.cfg.Getenv(name); val != "" {
			a.v.SetDefault(key, val)
		} else if val, ok := dotenv[name]; ok {
			a.v.SetDefault(key, val)
		}
	}
	return nil
}

func (a *app) readEnvFile(flags *pflag.FlagSet) (map[string]string, error) {
	path, err := flags.GetString(keyEnvFile)
	if err != nil || path == "" {
		return nil, nil
	}

	f, err := a.cfg.Fs.Open(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	env, err := godotenv.Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}
	return env, nil
}
