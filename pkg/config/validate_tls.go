// pkg/config/validate_tls.go
package config

// ClientIdentityKind tags the active client-identity variant.
type ClientIdentityKind int

const (
	IdentityCertKeyPair ClientIdentityKind = iota + 1
	IdentityKeystore
)

// ClientIdentity is the optional mTLS identity: a PEM cert/key pair or a
// password-protected keystore, never both.
type ClientIdentity struct {
	kind             ClientIdentityKind
	certPath         string
	keyPath          string
	keyPassphrase    Secret
	keystorePath     string
	keystorePassword Secret
}

func (i ClientIdentity) Kind() ClientIdentityKind { return i.kind }
func (i ClientIdentity) CertPath() string         { return i.certPath }
func (i ClientIdentity) KeyPath() string          { return i.keyPath }
func (i ClientIdentity) KeyPassphrase() Secret    { return i.keyPassphrase }
func (i ClientIdentity) KeystorePath() string     { return i.keystorePath }
func (i ClientIdentity) KeystorePassword() Secret { return i.keystorePassword }

// TrustMaterialKind tags the active trust-material variant.
type TrustMaterialKind int

const (
	TrustTruststore TrustMaterialKind = iota + 1
	TrustCAList
)

// TrustMaterial anchors peer verification: a password-protected truststore or
// an explicit CA list, never both. Required unless verification is off.
type TrustMaterial struct {
	kind               TrustMaterialKind
	truststorePath     string
	truststorePassword Secret
	caPaths            []string
}

func (t TrustMaterial) Kind() TrustMaterialKind    { return t.kind }
func (t TrustMaterial) TruststorePath() string     { return t.truststorePath }
func (t TrustMaterial) TruststorePassword() Secret { return t.truststorePassword }
func (t TrustMaterial) CAPaths() []string          { return append([]string(nil), t.caPaths...) }

// TLSSettings is the frozen TLS portion of a validated configuration.
type TLSSettings struct {
	enabled  bool
	mode     VerificationMode
	identity *ClientIdentity
	trust    *TrustMaterial
}

func (t TLSSettings) Enabled() bool                      { return t.enabled }
func (t TLSSettings) VerificationMode() VerificationMode { return t.mode }

func (t TLSSettings) ClientIdentity() (ClientIdentity, bool) {
	if t.identity == nil {
		return ClientIdentity{}, false
	}
	return *t.identity, true
}

func (t TLSSettings) TrustMaterial() (TrustMaterial, bool) {
	if t.trust == nil {
		return TrustMaterial{}, false
	}
	return *t.trust, true
}

// validateTLS applies the full TLS rule set and returns the frozen TLS
// settings. With ssl disabled every TLS-family option other than a literal
// ssl_verification_mode="none" is rejected.
func (c *Config) validateTLS(sslEnabled bool) (TLSSettings, error) {
	mode := VerifyFull
	if c.SSLVerificationMode != nil {
		m, err := parseVerificationMode(*c.SSLVerificationMode)
		if err != nil {
			return TLSSettings{}, err
		}
		mode = m
	}

	if !sslEnabled {
		if c.SSLVerificationMode != nil && mode != VerifyNone {
			return TLSSettings{}, invalidValue(OptSSLVerificationMode,
				"must be 'none' when ssl is disabled")
		}
		if keys := c.tlsOptionKeys(); len(keys) > 0 {
			return TLSSettings{}, mutualExclusion("cannot be used when ssl is disabled", keys...)
		}
		return TLSSettings{enabled: false, mode: VerifyNone}, nil
	}

	identity, err := c.validateClientIdentity()
	if err != nil {
		return TLSSettings{}, err
	}
	trust, err := c.validateTrustMaterial(mode)
	if err != nil {
		return TLSSettings{}, err
	}
	return TLSSettings{enabled: true, mode: mode, identity: identity, trust: trust}, nil
}

// tlsOptionKeys lists every TLS-family option that is set, in declaration
// order, for the ssl-disabled rejection message.
func (c *Config) tlsOptionKeys() []string {
	var keys []string
	add := func(name string, set bool) {
		if set {
			keys = append(keys, name)
		}
	}
	add(OptTruststore, strSet(c.Truststore))
	add(OptTruststorePassword, c.TruststorePassword != nil)
	add(OptSSLCertificateAuthorities, c.SSLCertificateAuthorities != nil)
	add(OptSSLCertificate, strSet(c.SSLCertificate))
	add(OptSSLKey, strSet(c.SSLKey))
	add(OptSSLKeyPassphrase, c.SSLKeyPassphrase != nil)
	add(OptKeystore, strSet(c.Keystore))
	add(OptKeystorePassword, c.KeystorePassword != nil)
	return keys
}

// validateClientIdentity resolves the optional client identity. Returning
// (nil, nil) is valid: server-only TLS needs no client certificate.
func (c *Config) validateClientIdentity() (*ClientIdentity, error) {
	cert := strSet(c.SSLCertificate)
	key := strSet(c.SSLKey)
	keystore := strSet(c.Keystore)

	if (cert || key) && keystore {
		var keys []string
		if cert {
			keys = append(keys, OptSSLCertificate)
		}
		if key {
			keys = append(keys, OptSSLKey)
		}
		return nil, mutualExclusion("configure either a certificate/key pair or a keystore, not both",
			append(keys, OptKeystore)...)
	}

	switch {
	case cert && !key:
		return nil, dependentMissing(OptSSLKey, OptSSLCertificate)
	case key && !cert:
		return nil, dependentMissing(OptSSLCertificate, OptSSLKey)
	case cert && key:
		if c.SSLKeyPassphrase == nil {
			return nil, dependentMissing(OptSSLKeyPassphrase, OptSSLKey)
		}
		if *c.SSLKeyPassphrase == "" {
			return nil, invalidValue(OptSSLKeyPassphrase, "must not be empty")
		}
		certPath := trimmed(c.SSLCertificate)
		keyPath := trimmed(c.SSLKey)
		if err := checkReadOnly(OptSSLCertificate, certPath); err != nil {
			return nil, err
		}
		if err := checkReadOnly(OptSSLKey, keyPath); err != nil {
			return nil, err
		}
		return &ClientIdentity{
			kind:          IdentityCertKeyPair,
			certPath:      certPath,
			keyPath:       keyPath,
			keyPassphrase: *c.SSLKeyPassphrase,
		}, nil
	}

	if keystore {
		if c.KeystorePassword == nil {
			return nil, dependentMissing(OptKeystorePassword, OptKeystore)
		}
		if *c.KeystorePassword == "" {
			return nil, invalidValue(OptKeystorePassword, "must not be empty")
		}
		path := trimmed(c.Keystore)
		if err := checkReadOnly(OptKeystore, path); err != nil {
			return nil, err
		}
		return &ClientIdentity{
			kind:             IdentityKeystore,
			keystorePath:     path,
			keystorePassword: *c.KeystorePassword,
		}, nil
	}
	if c.KeystorePassword != nil {
		return nil, dependentMissing(OptKeystore, OptKeystorePassword)
	}
	return nil, nil
}

// validateTrustMaterial resolves the trust anchors for the given verification
// mode. Anything but 'none' requires trust material; 'none' forbids it.
func (c *Config) validateTrustMaterial(mode VerificationMode) (*TrustMaterial, error) {
	truststore := strSet(c.Truststore)
	cas := c.SSLCertificateAuthorities

	if mode == VerifyNone {
		var keys []string
		if truststore {
			keys = append(keys, OptTruststore)
		}
		if c.TruststorePassword != nil {
			keys = append(keys, OptTruststorePassword)
		}
		if cas != nil {
			keys = append(keys, OptSSLCertificateAuthorities)
		}
		if len(keys) > 0 {
			return nil, mutualExclusion("cannot be used when ssl_verification_mode is 'none'", keys...)
		}
		return nil, nil
	}

	if truststore && cas != nil {
		return nil, mutualExclusion("configure either a truststore or certificate authorities, not both",
			OptTruststore, OptSSLCertificateAuthorities)
	}

	if truststore {
		if c.TruststorePassword == nil {
			return nil, dependentMissing(OptTruststorePassword, OptTruststore)
		}
		if *c.TruststorePassword == "" {
			return nil, invalidValue(OptTruststorePassword, "must not be empty")
		}
		path := trimmed(c.Truststore)
		if err := checkReadOnly(OptTruststore, path); err != nil {
			return nil, err
		}
		return &TrustMaterial{
			kind:               TrustTruststore,
			truststorePath:     path,
			truststorePassword: *c.TruststorePassword,
		}, nil
	}
	if c.TruststorePassword != nil {
		return nil, dependentMissing(OptTruststore, OptTruststorePassword)
	}

	if cas != nil {
		if len(cas) == 0 {
			return nil, invalidValue(OptSSLCertificateAuthorities, "must not be empty")
		}
		for _, p := range cas {
			if err := checkReadOnly(OptSSLCertificateAuthorities, p); err != nil {
				return nil, err
			}
		}
		return &TrustMaterial{
			kind:    TrustCAList,
			caPaths: append([]string(nil), cas...),
		}, nil
	}

	return nil, missingRequired(
		"trust material is required unless ssl_verification_mode is 'none'",
		OptTruststore, OptSSLCertificateAuthorities,
	)
}
