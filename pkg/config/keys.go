package config

// Option names as supplied by the host registration framework. Error text
// refers to options by these names.
const (
	OptHosts                     = "hosts"
	OptCloudID                   = "cloud_id"
	OptSSL                       = "ssl"
	OptSSLVerificationMode       = "ssl_verification_mode"
	OptTruststore                = "truststore"
	OptTruststorePassword        = "truststore_password"
	OptSSLCertificateAuthorities = "ssl_certificate_authorities"
	OptSSLCertificate            = "ssl_certificate"
	OptSSLKey                    = "ssl_key"
	OptSSLKeyPassphrase          = "ssl_key_passphrase"
	OptKeystore                  = "keystore"
	OptKeystorePassword          = "keystore_password"
	OptAuthBasicUsername         = "auth_basic_username"
	OptAuthBasicPassword         = "auth_basic_password"
	OptCloudAuth                 = "cloud_auth"
	OptAPIKey                    = "api_key"
)

// VerificationMode controls how strictly the peer certificate is validated.
type VerificationMode string

const (
	// VerifyFull checks the certificate chain and the hostname.
	VerifyFull VerificationMode = "full"
	// VerifyCertificate checks the chain only.
	VerifyCertificate VerificationMode = "certificate"
	// VerifyNone performs no peer validation.
	VerifyNone VerificationMode = "none"
)

func parseVerificationMode(s string) (VerificationMode, error) {
	switch VerificationMode(s) {
	case VerifyFull, VerifyCertificate, VerifyNone:
		return VerificationMode(s), nil
	default:
		return "", invalidValue(OptSSLVerificationMode, "must be one of 'full', 'certificate', 'none'")
	}
}
