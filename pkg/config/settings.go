package config

// Settings is the frozen aggregate produced by Validate. It has no setters
// and hands out copies of anything mutable, so a single instance is safe to
// share across concurrent event processing.
type Settings struct {
	target     ConnectionTarget
	credential *Credential
	tls        TLSSettings
}

func (s *Settings) Target() ConnectionTarget { return s.target }

// Credential reports the configured authentication method, if any.
func (s *Settings) Credential() (Credential, bool) {
	if s.credential == nil {
		return Credential{}, false
	}
	return *s.credential, true
}

func (s *Settings) TLS() TLSSettings { return s.tls }
