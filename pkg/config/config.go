// pkg/config/config.go
package config

import (
	"strings"

	"go.uber.org/zap"
)

// Config is the raw option set handed over by the host registration
// framework, before any validation. Optional scalars are pointers so an
// explicitly empty value stays distinguishable from an absent one.
type Config struct {
	Hosts   []string `toml:"hosts"`
	CloudID *string  `toml:"cloud_id"`

	SSL                 *bool   `toml:"ssl"`
	SSLVerificationMode *string `toml:"ssl_verification_mode"`

	Truststore                *string  `toml:"truststore"`
	TruststorePassword        *Secret  `toml:"truststore_password"`
	SSLCertificateAuthorities []string `toml:"ssl_certificate_authorities"`
	SSLCertificate            *string  `toml:"ssl_certificate"`
	SSLKey                    *string  `toml:"ssl_key"`
	SSLKeyPassphrase          *Secret  `toml:"ssl_key_passphrase"`
	Keystore                  *string  `toml:"keystore"`
	KeystorePassword          *Secret  `toml:"keystore_password"`

	AuthBasicUsername *string `toml:"auth_basic_username"`
	AuthBasicPassword *Secret `toml:"auth_basic_password"`
	CloudAuth         *Secret `toml:"cloud_auth"`
	APIKey            *Secret `toml:"api_key"`
}

// SSLEnabled reports the effective ssl setting; it defaults to true.
func (c *Config) SSLEnabled() bool {
	if c.SSL == nil {
		return true
	}
	return *c.SSL
}

// Validate runs the full rule set in order (connection target, credentials,
// TLS) and fails on the first violated rule. It never mutates the receiver,
// so validating the same raw input again yields an equal result. The logger
// only carries the insecure-credentials warning; nil is accepted.
func (c *Config) Validate(log *zap.Logger) (*Settings, error) {
	if log == nil {
		log = zap.NewNop()
	}
	ssl := c.SSLEnabled()

	target, err := c.validateTarget(ssl)
	if err != nil {
		return nil, err
	}
	cred, err := c.validateAuth(log, ssl)
	if err != nil {
		return nil, err
	}
	tls, err := c.validateTLS(ssl)
	if err != nil {
		return nil, err
	}

	return &Settings{target: target, credential: cred, tls: tls}, nil
}

// validateTarget requires exactly one of hosts or cloud_id and normalizes the
// host list.
func (c *Config) validateTarget(sslEnabled bool) (ConnectionTarget, error) {
	hasHosts := len(c.Hosts) > 0
	hasCloud := strSet(c.CloudID)

	switch {
	case hasHosts && hasCloud:
		return ConnectionTarget{}, mutualExclusion("configure only one connection target", OptHosts, OptCloudID)
	case !hasHosts && !hasCloud:
		return ConnectionTarget{}, missingRequired("a connection target is required", OptHosts, OptCloudID)
	case hasCloud:
		return ConnectionTarget{kind: TargetCloud, cloudID: trimmed(c.CloudID)}, nil
	}

	hosts, err := normalizeHosts(c.Hosts, sslEnabled)
	if err != nil {
		return ConnectionTarget{}, err
	}
	return ConnectionTarget{kind: TargetHosts, hosts: hosts}, nil
}

func strSet(s *string) bool {
	return s != nil && strings.TrimSpace(*s) != ""
}

func secretSet(s *Secret) bool {
	return s != nil && *s != ""
}

func trimmed(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}
