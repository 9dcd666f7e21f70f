package config

// AppConfig holds the application configuration
type AppConfig struct {
	DBURL          string
	RedisAddress   string
	ListenAddress  string
	SymmetricKey   []byte
	AdminUsername  string
	AdminPassword  string
	AllowedOrigins []string
}

// GetSymmetricKey returns the session token key from the config
func (c *AppConfig) GetSymmetricKey() []byte {
	return c.SymmetricKey
}
