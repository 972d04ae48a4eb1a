package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/afero"

	"github.com/cryptoran/cryptoran-go/internal/keyfile"
)

// uniquePath returns base.ext, or base_1.ext, base_2.ext, ... if the earlier
// names are taken. Existing files are never overwritten.
func uniquePath(fs afero.Fs, base, ext string) (string, error) {
	path := base + "." + ext
	for i := 1; ; i++ {
		ok, err := afero.Exists(fs, path)
		if err != nil {
			return "", errors.Wrapf(err, "stat %s", path)
		}
		if !ok {
			return path, nil
		}
		path = fmt.Sprintf("%s_%d.%s", base, i, ext)
	}
}

// writeNew writes data to a fresh file derived from base and ext and returns
// its name.
func (a *app) writeNew(base, ext string, data []byte) (string, error) {
	path, err := uniquePath(a.cfg.Fs, base, ext)
	if err != nil {
		return "", err
	}
	if err := afero.WriteFile(a.cfg.Fs, path, data, 0o600); err != nil {
		return "", errors.Wrapf(err, "write %s", path)
	}
	return path, nil
}

func (a *app) readInput(path string) ([]byte, error) {
	data, err := afero.ReadFile(a.cfg.Fs, path)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot open file %s", path)
	}
	if len(data) == 0 {
		return nil, errors.New("input file is empty")
	}
	return data, nil
}

func (a *app) readKeys(path string) (keyfile.Keys, error) {
	f, err := a.cfg.Fs.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot open key file %s", path)
	}
	defer f.Close()

	keys, err := keyfile.Read(f)
	if err != nil {
		return nil, errors.WithMessagef(err, "key file %s", path)
	}
	return keys, nil
}

func (a *app) writeKeys(base string, entries []keyfile.Entry) (string, error) {
	path, err := uniquePath(a.cfg.Fs, base, "key")
	if err != nil {
		return "", err
	}
	f, err := a.cfg.Fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return "", errors.Wrapf(err, "create %s", path)
	}
	if err := keyfile.Write(f, entries); err != nil {
		f.Close()
		return "", errors.Wrapf(err, "write %s", path)
	}
	return path, errors.Wrapf(f.Close(), "close %s", path)
}
