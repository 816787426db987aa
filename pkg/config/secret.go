package config

// Secret carries a credential value. Every textual rendering is redacted so
// secrets cannot leak through error messages, logs, or %v/%#v formatting;
// the raw value is only reachable through Reveal.
type Secret string

const redactedSecret = "<redacted>"

func (s Secret) String() string {
	if s == "" {
		return ""
	}
	return redactedSecret
}

func (s Secret) GoString() string { return redactedSecret }

// Reveal returns the underlying value for use at the client boundary.
func (s Secret) Reveal() string { return string(s) }

func (s Secret) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *Secret) UnmarshalText(b []byte) error {
	*s = Secret(b)
	return nil
}
