package triagesort

type Config struct {
	Enabled      bool
	StrictOutput bool
}

func DefaultConfig() *Config {
	return &Config{Enabled: true}
}
