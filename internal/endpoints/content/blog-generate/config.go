package bloggenerate

import "fmt"

type Config struct {
	Enabled      bool
	StrictOutput bool
	DefaultTone  string
}

func DefaultConfig() *Config {
	return &Config{
		Enabled:     true,
		DefaultTone: "professional",
	}
}

func (c *Config) Validate() error {
	if c.DefaultTone == "" {
		return fmt.Errorf("default tone is required")
	}
	return nil
}
