package salt

const (
	// DefaultSaltMinLength is the default shortest salt, in hex characters.
	DefaultSaltMinLength = 16

	// DefaultSaltMaxLength is the default longest salt, in hex characters.
	DefaultSaltMaxLength = 32

	// MaxSaltLength bounds any configured salt length. A random UUID
	// carries 32 hex characters.
	MaxSaltLength = 32
)

// Config controls the salt length range.
// Each encode draws a salt length uniformly from [SaltMinLength, SaltMaxLength].
type Config struct {
	SaltMinLength int // Shortest salt, at least 1
	SaltMaxLength int // Longest salt, at most MaxSaltLength
}

// DefaultConfig returns the [16, 32] salt length range.
func DefaultConfig() Config {
	return Config{
		SaltMinLength: DefaultSaltMinLength,
		SaltMaxLength: DefaultSaltMaxLength,
	}
}

// Validate checks 1 <= SaltMinLength <= SaltMaxLength <= MaxSaltLength.
// Returns a *ConfigError wrapping ErrConfig otherwise.
func (c Config) Validate() error {
	if c.SaltMinLength < 1 || c.SaltMinLength > c.SaltMaxLength || c.SaltMaxLength > MaxSaltLength {
		return newConfigError(c.SaltMinLength, c.SaltMaxLength)
	}
	return nil
}

// Option configures a Codec.
type Option func(*Codec)

// WithConfig sets the salt length range.
func WithConfig(cfg Config) Option {
	return func(c *Codec) {
		c.config = cfg
	}
}

// WithDigester replaces the builtin digester. New rejects a nil d.
func WithDigester(d Digester) Option {
	return func(c *Codec) {
		c.digester = d
	}
}

// WithSaltGenerator replaces the builtin UUID salt generator. New rejects a nil g.
func WithSaltGenerator(g SaltGenerator) Option {
	return func(c *Codec) {
		c.salts = g
	}
}
