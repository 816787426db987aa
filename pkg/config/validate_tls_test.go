package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateTLSDisabled(t *testing.T) {
	t.Parallel()

	t.Run("clean config passes with mode none", func(t *testing.T) {
		t.Parallel()
		tls, err := (&Config{}).validateTLS(false)
		require.NoError(t, err)
		require.False(t, tls.Enabled())
		require.Equal(t, VerifyNone, tls.VerificationMode())
	})

	t.Run("explicit none passes", func(t *testing.T) {
		t.Parallel()
		tls, err := (&Config{SSLVerificationMode: strp("none")}).validateTLS(false)
		require.NoError(t, err)
		require.Equal(t, VerifyNone, tls.VerificationMode())
	})

	t.Run("non-none verification mode rejected", func(t *testing.T) {
		t.Parallel()
		_, err := (&Config{SSLVerificationMode: strp("full")}).validateTLS(false)
		require.ErrorIs(t, err, ErrInvalidValue)
		require.Contains(t, err.Error(), OptSSLVerificationMode)
	})

	t.Run("every offending key is named", func(t *testing.T) {
		t.Parallel()
		cfg := Config{
			Truststore:                strp("/tmp/trust.p12"),
			TruststorePassword:        secp("pw"),
			SSLCertificateAuthorities: []string{"/tmp/ca.crt"},
			Keystore:                  strp("/tmp/keys.p12"),
		}
		_, err := cfg.validateTLS(false)
		require.ErrorIs(t, err, ErrMutualExclusion)
		for _, k := range []string{OptTruststore, OptTruststorePassword, OptSSLCertificateAuthorities, OptKeystore} {
			require.Contains(t, err.Error(), k)
		}
	})

	t.Run("single ssl option rejected", func(t *testing.T) {
		t.Parallel()
		_, err := (&Config{SSLKeyPassphrase: secp("pw")}).validateTLS(false)
		require.ErrorIs(t, err, ErrMutualExclusion)
		require.Contains(t, err.Error(), OptSSLKeyPassphrase)
	})
}

func TestValidateTLSClientIdentity(t *testing.T) {
	t.Parallel()

	cert := writeSecretFile(t, "client.crt")
	key := writeSecretFile(t, "client.key")
	keystore := writeSecretFile(t, "keys.p12")
	ca := writeSecretFile(t, "ca.crt")

	cases := []struct {
		name string
		cfg  Config
		kind error
		key  string
	}{
		{
			name: "certificate without key",
			cfg:  Config{SSLCertificate: strp(cert)},
			kind: ErrDependentOption,
			key:  OptSSLKey,
		},
		{
			name: "key without certificate",
			cfg:  Config{SSLKey: strp(key)},
			kind: ErrDependentOption,
			key:  OptSSLCertificate,
		},
		{
			name: "missing passphrase",
			cfg:  Config{SSLCertificate: strp(cert), SSLKey: strp(key)},
			kind: ErrDependentOption,
			key:  OptSSLKeyPassphrase,
		},
		{
			name: "empty passphrase",
			cfg:  Config{SSLCertificate: strp(cert), SSLKey: strp(key), SSLKeyPassphrase: secp("")},
			kind: ErrInvalidValue,
			key:  OptSSLKeyPassphrase,
		},
		{
			name: "certificate and keystore conflict",
			cfg: Config{
				SSLCertificate:   strp(cert),
				SSLKey:           strp(key),
				SSLKeyPassphrase: secp("pw"),
				Keystore:         strp(keystore),
			},
			kind: ErrMutualExclusion,
			key:  OptKeystore,
		},
		{
			name: "keystore without password",
			cfg:  Config{Keystore: strp(keystore)},
			kind: ErrDependentOption,
			key:  OptKeystorePassword,
		},
		{
			name: "keystore with empty password",
			cfg:  Config{Keystore: strp(keystore), KeystorePassword: secp("")},
			kind: ErrInvalidValue,
			key:  OptKeystorePassword,
		},
		{
			name: "keystore password without keystore",
			cfg:  Config{KeystorePassword: secp("pw")},
			kind: ErrDependentOption,
			key:  OptKeystore,
		},
		{
			name: "missing certificate file",
			cfg: Config{
				SSLCertificate:   strp("/nonexistent/client.crt"),
				SSLKey:           strp(key),
				SSLKeyPassphrase: secp("pw"),
			},
			kind: ErrFileAccess,
			key:  OptSSLCertificate,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := tc.cfg.validateClientIdentity()
			require.ErrorIs(t, err, tc.kind)
			require.Contains(t, err.Error(), tc.key)
		})
	}

	t.Run("cert key pair accepted", func(t *testing.T) {
		t.Parallel()
		cfg := Config{SSLCertificate: strp(cert), SSLKey: strp(key), SSLKeyPassphrase: secp("pw")}
		id, err := cfg.validateClientIdentity()
		require.NoError(t, err)
		require.Equal(t, IdentityCertKeyPair, id.Kind())
	})

	t.Run("keystore accepted", func(t *testing.T) {
		t.Parallel()
		cfg := Config{Keystore: strp(keystore), KeystorePassword: secp("pw")}
		id, err := cfg.validateClientIdentity()
		require.NoError(t, err)
		require.Equal(t, IdentityKeystore, id.Kind())
		require.Equal(t, keystore, id.KeystorePath())
	})

	t.Run("absent identity is allowed", func(t *testing.T) {
		t.Parallel()
		// Server-only TLS: trust material is enough, no client certificate.
		cfg := Config{Hosts: []string{"node-1"}, SSLCertificateAuthorities: []string{ca}}
		s, err := cfg.Validate(nil)
		require.NoError(t, err)
		_, ok := s.TLS().ClientIdentity()
		require.False(t, ok)
	})
}

func TestValidateTLSTrustMaterial(t *testing.T) {
	t.Parallel()

	truststore := writeSecretFile(t, "trust.p12")
	ca := writeSecretFile(t, "ca.crt")

	cases := []struct {
		name string
		mode VerificationMode
		cfg  Config
		kind error
		key  string
	}{
		{
			name: "required when verifying",
			mode: VerifyFull,
			cfg:  Config{},
			kind: ErrMissingRequired,
			key:  OptTruststore,
		},
		{
			name: "truststore and ca list conflict",
			mode: VerifyFull,
			cfg: Config{
				Truststore:                strp(truststore),
				TruststorePassword:        secp("pw"),
				SSLCertificateAuthorities: []string{ca},
			},
			kind: ErrMutualExclusion,
			key:  OptSSLCertificateAuthorities,
		},
		{
			name: "empty ca list rejected",
			mode: VerifyCertificate,
			cfg:  Config{SSLCertificateAuthorities: []string{}},
			kind: ErrInvalidValue,
			key:  OptSSLCertificateAuthorities,
		},
		{
			name: "truststore without password",
			mode: VerifyFull,
			cfg:  Config{Truststore: strp(truststore)},
			kind: ErrDependentOption,
			key:  OptTruststorePassword,
		},
		{
			name: "truststore with empty password",
			mode: VerifyFull,
			cfg:  Config{Truststore: strp(truststore), TruststorePassword: secp("")},
			kind: ErrInvalidValue,
			key:  OptTruststorePassword,
		},
		{
			name: "truststore password without truststore",
			mode: VerifyFull,
			cfg:  Config{TruststorePassword: secp("pw")},
			kind: ErrDependentOption,
			key:  OptTruststore,
		},
		{
			name: "unreadable ca path",
			mode: VerifyFull,
			cfg:  Config{SSLCertificateAuthorities: []string{"/nonexistent/ca.crt"}},
			kind: ErrFileAccess,
			key:  OptSSLCertificateAuthorities,
		},
		{
			name: "truststore forbidden under none",
			mode: VerifyNone,
			cfg:  Config{Truststore: strp(truststore), TruststorePassword: secp("pw")},
			kind: ErrMutualExclusion,
			key:  OptTruststore,
		},
		{
			name: "ca list forbidden under none",
			mode: VerifyNone,
			cfg:  Config{SSLCertificateAuthorities: []string{ca}},
			kind: ErrMutualExclusion,
			key:  OptSSLCertificateAuthorities,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := tc.cfg.validateTrustMaterial(tc.mode)
			require.ErrorIs(t, err, tc.kind)
			require.Contains(t, err.Error(), tc.key)
		})
	}

	t.Run("truststore accepted", func(t *testing.T) {
		t.Parallel()
		cfg := Config{Truststore: strp(truststore), TruststorePassword: secp("pw")}
		trust, err := cfg.validateTrustMaterial(VerifyFull)
		require.NoError(t, err)
		require.Equal(t, TrustTruststore, trust.Kind())
		require.Equal(t, truststore, trust.TruststorePath())
	})

	t.Run("absent is valid under none", func(t *testing.T) {
		t.Parallel()
		trust, err := (&Config{}).validateTrustMaterial(VerifyNone)
		require.NoError(t, err)
		require.Nil(t, trust)
	})

	t.Run("secret never surfaces in error text", func(t *testing.T) {
		t.Parallel()
		cfg := Config{
			Truststore:                strp(truststore),
			TruststorePassword:        secp("hunter2"),
			SSLCertificateAuthorities: []string{ca},
		}
		_, err := cfg.validateTrustMaterial(VerifyFull)
		require.Error(t, err)
		require.NotContains(t, err.Error(), "hunter2")
	})
}

func TestValidateTLSVerificationModeParsing(t *testing.T) {
	t.Parallel()

	_, err := (&Config{SSLVerificationMode: strp("strict")}).validateTLS(true)
	require.ErrorIs(t, err, ErrInvalidValue)

	ca := writeSecretFile(t, "ca.crt")
	for _, mode := range []string{"full", "certificate"} {
		tls, err := (&Config{
			SSLVerificationMode:       strp(mode),
			SSLCertificateAuthorities: []string{ca},
		}).validateTLS(true)
		require.NoError(t, err)
		require.Equal(t, VerificationMode(mode), tls.VerificationMode())
		require.True(t, tls.Enabled())
	}

	tls, err := (&Config{SSLVerificationMode: strp("none")}).validateTLS(true)
	require.NoError(t, err)
	require.Equal(t, VerifyNone, tls.VerificationMode())
	_, ok := tls.TrustMaterial()
	require.False(t, ok)
}

func TestErrorKindsAreDistinct(t *testing.T) {
	t.Parallel()

	kinds := []error{ErrMissingRequired, ErrMutualExclusion, ErrDependentOption, ErrInvalidValue, ErrFileAccess}
	for i, a := range kinds {
		for j, b := range kinds {
			if i != j {
				require.False(t, errors.Is(a, b))
			}
		}
	}
}
