package config

// BusConfig holds the K/V + pub/sub bus connection settings (§6.3).
type BusConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password_env,omitempty"`
	DB       int    `yaml:"db"`
}

// DefaultBusConfig returns the built-in bus defaults (local Redis, DB 0).
func DefaultBusConfig() *BusConfig {
	return &BusConfig{Addr: "localhost:6379", DB: 0}
}
