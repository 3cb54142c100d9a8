package opendart

import (
	"errors"
	"sync"

	"github.com/kelseyhightower/envconfig"
)

// ErrNoAPIKey is returned when no API key is configured anywhere.
var ErrNoAPIKey = errors.New("opendart: no api key configured (SetKey or DART_API_KEY)")

// KeyProvider supplies the crtfc_key sent with every request.
type KeyProvider interface {
	APIKey() (string, error)
}

// StaticKey is a KeyProvider for a fixed key.
type StaticKey string

func (k StaticKey) APIKey() (string, error) {
	if k == "" {
		return "", ErrNoAPIKey
	}
	return string(k), nil
}

// Process-wide key. Kept behind a lock so keys can be rotated while requests run.
type apiKeyManager struct {
	key string
	mu  sync.RWMutex
}

var apiKey apiKeyManager

func GetKey() string {
	apiKey.mu.RLock()
	defer apiKey.mu.RUnlock()
	return apiKey.key
}

func SetKey(key string) {
	apiKey.mu.Lock()
	defer apiKey.mu.Unlock()
	apiKey.key = key
}

// envKey is the default KeyProvider: the key set with SetKey, then DART_API_KEY.
type envKey struct{}

func (envKey) APIKey() (string, error) {
	if key := GetKey(); key != "" {
		return key, nil
	}
	// Only the key is read, so a bad DART_TIMEOUT does not break key lookup.
	var env struct {
		APIKey string `envconfig:"API_KEY"`
	}
	if err := envconfig.Process("DART", &env); err != nil {
		return "", err
	}
	return StaticKey(env.APIKey).APIKey()
}
