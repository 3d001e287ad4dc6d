package credstore

// minKeyLength is the minimum encryption key length for AES-256.
const minKeyLength = 32

// FileConfig holds configuration for the encrypted file-backed store.
// Both keys are required so a stolen credential file is useless without
// the key material held elsewhere.
type FileConfig struct {
	// Path is the location of the encrypted credential file.
	Path string `env:"CREDSTORE_PATH,required"`

	// AppKey is the application-wide secret, at least 32 bytes.
	AppKey string `env:"CREDSTORE_APP_KEY,required"`

	// DeviceKey is the per-device secret, at least 32 bytes. Combining it
	// with AppKey via HKDF scopes encrypted data to a single installation.
	DeviceKey string `env:"CREDSTORE_DEVICE_KEY,required"`
}

// RedisConfig holds configuration for the redis-backed store used by
// headless deployments of the client core.
type RedisConfig struct {
	// URL is a redis connection string, e.g. redis://localhost:6379/0.
	URL string `env:"CREDSTORE_REDIS_URL,required"`

	// Prefix namespaces all credential keys, e.g. "smartoko:cred:".
	Prefix string `env:"CREDSTORE_REDIS_PREFIX" envDefault:"smartoko:cred:"`
}
