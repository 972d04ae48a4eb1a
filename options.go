package cryptoran

import "go.uber.org/zap"

// config holds per-call and per-cipher settings.
type config struct {
	iv     []byte
	logger *zap.Logger
}

// Option configures Encrypt, Decrypt and New.
type Option func(*config)

// WithIV sets the CBC IV or CTR initial counter. It is ignored for ECB.
func WithIV(iv []byte) Option {
	return func(c *config) {
		c.iv = iv
	}
}

// WithLogger sets a logger for debug output. Key material and plaintext are
// never logged. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func newConfig(opts []Option) *config {
	cfg := &config{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
