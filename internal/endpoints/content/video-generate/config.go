package videogenerate

import "fmt"

type Config struct {
	Enabled          bool
	StrictOutput     bool
	DefaultVideoType string
}

func DefaultConfig() *Config {
	return &Config{
		Enabled:          true,
		DefaultVideoType: VideoTypeShort,
	}
}

func (c *Config) Validate() error {
	if c.DefaultVideoType != VideoTypeShort && c.DefaultVideoType != VideoTypeLong {
		return fmt.Errorf("default video type must be %q or %q", VideoTypeShort, VideoTypeLong)
	}
	return nil
}
