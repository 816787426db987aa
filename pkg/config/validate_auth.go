// pkg/config/validate_auth.go
package config

import (
	"go.uber.org/zap"
)

// CredentialKind tags the active Credential variant.
type CredentialKind int

const (
	CredentialBasic CredentialKind = iota + 1
	CredentialCloudAuth
	CredentialAPIKey
)

// Credential is the single configured authentication method, at most one of
// basic auth, cloud auth, or api key.
type Credential struct {
	kind     CredentialKind
	username string
	password Secret
	secret   Secret
}

func (c Credential) Kind() CredentialKind { return c.kind }

// Username is set for CredentialBasic only.
func (c Credential) Username() string { return c.username }

// Password is set for CredentialBasic only.
func (c Credential) Password() Secret { return c.password }

// Value holds the cloud auth string or api key for the other variants.
func (c Credential) Value() Secret { return c.secret }

// validateAuth enforces basic-auth pairing and single-method selection. When
// exactly one method is configured and ssl is off it warns that the secret
// travels in clear text; that is not an error.
func (c *Config) validateAuth(log *zap.Logger, sslEnabled bool) (*Credential, error) {
	user := strSet(c.AuthBasicUsername)
	pass := secretSet(c.AuthBasicPassword)

	if user && !pass {
		return nil, dependentMissing(OptAuthBasicPassword, OptAuthBasicUsername)
	}
	if pass && !user {
		return nil, dependentMissing(OptAuthBasicUsername, OptAuthBasicPassword)
	}

	var present []string
	if pass {
		present = append(present, OptAuthBasicPassword)
	}
	if secretSet(c.CloudAuth) {
		present = append(present, OptCloudAuth)
	}
	if secretSet(c.APIKey) {
		present = append(present, OptAPIKey)
	}
	switch len(present) {
	case 0:
		return nil, nil
	case 1:
	default:
		return nil, mutualExclusion("configure only one authentication method", present...)
	}

	if !sslEnabled {
		log.Warn("credentials will be transmitted over an unencrypted channel",
			zap.String("option", present[0]),
		)
	}

	switch present[0] {
	case OptAuthBasicPassword:
		return &Credential{
			kind:     CredentialBasic,
			username: trimmed(c.AuthBasicUsername),
			password: *c.AuthBasicPassword,
		}, nil
	case OptCloudAuth:
		return &Credential{kind: CredentialCloudAuth, secret: *c.CloudAuth}, nil
	default:
		return &Credential{kind: CredentialAPIKey, secret: *c.APIKey}, nil
	}
}
