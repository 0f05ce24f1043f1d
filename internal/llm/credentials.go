// Package llm talks to the summarization model.
//
// Two credential sources are supported: a LiteLLM proxy (base URL and key)
// which takes priority, or a direct Anthropic API key. Credentials are looked
// up through a CredentialSource so tests never touch the process environment.
package llm

import (
	"errors"
	"fmt"
	"strings"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Environment variables holding credentials.
const (
	EnvProxyBase    = "LITELLM_PROXY_API_BASE"
	EnvProxyKey     = "LITELLM_PROXY_API_KEY"
	EnvAnthropicKey = "ANTHROPIC_API_KEY"
)

// Provider identifies the API a client talks to.
type Provider string

const (
	ProviderLiteLLMProxy Provider = "litellm_proxy"
	ProviderAnthropic    Provider = "anthropic"
)

// ErrNoCredentials is returned when no credential source is configured.
var ErrNoCredentials = errors.New("no LLM API credentials found. Set either:\n" +
	"  - " + EnvProxyBase + " and " + EnvProxyKey + ", or\n" +
	"  - " + EnvAnthropicKey)

// Credentials select the provider and authenticate against it.
type Credentials struct {
	Provider Provider
	BaseURL  string // Empty for Anthropic means the public API
	APIKey   string
}

// CredentialSource looks up a credential by variable name.
// An empty string means the variable is unset.
type CredentialSource interface {
	Lookup(key string) string
}

// MapSource is a CredentialSource backed by a map.
type MapSource map[string]string

// Lookup returns the value stored under key.
func (m MapSource) Lookup(key string) string {
	return m[key]
}

// EnvSource is a CredentialSource snapshot of the process environment.
type EnvSource struct {
	k *koanf.Koanf
}

// NewEnvSource reads the credential variables from the environment.
func NewEnvSource() (*EnvSource, error) {
	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", credentialKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}
	return &EnvSource{k: k}, nil
}

// Lookup returns the environment value for key.
func (s *EnvSource) Lookup(key string) string {
	return s.k.String(key)
}

// credentialKey keeps only the credential variables; koanf drops a variable
// whose key is mapped to "".
func credentialKey(key string) string {
	switch key {
	case EnvProxyBase, EnvProxyKey, EnvAnthropicKey:
		return key
	default:
		return ""
	}
}

// ResolveCredentials picks the proxy when both proxy variables are set,
// otherwise the direct Anthropic key. It fails with ErrNoCredentials before
// any network call when neither is available.
func ResolveCredentials(src CredentialSource) (Credentials, error) {
	lookup := func(key string) string {
		return strings.TrimSpace(src.Lookup(key))
	}

	if base, key := lookup(EnvProxyBase), lookup(EnvProxyKey); base != "" && key != "" {
		return Credentials{Provider: ProviderLiteLLMProxy, BaseURL: base, APIKey: key}, nil
	}
	if key := lookup(EnvAnthropicKey); key != "" {
		return Credentials{Provider: ProviderAnthropic, APIKey: key}, nil
	}
	return Credentials{}, ErrNoCredentials
}

// Compile-time interface conformance checks.
var (
	_ CredentialSource = MapSource(nil)
	_ CredentialSource = (*EnvSource)(nil)
)
