//go:build !testcoverage

package main

import "os"

func main() {
	cfg := DefaultConfig()
	if err := run(os.Args, cfg); err != nil {
		fatal(cfg, "%v", err)
	}
}
