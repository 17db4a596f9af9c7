package jar

import (
	"fmt"
	"net/http"
	"slices"
)

// minSecretLength is the minimum secret length for AES-256.
const minSecretLength = 32

// Manager builds request-scoped jars sharing default cookie attributes, a
// size limit, and optional secrets for signed and encrypted values. One
// manager serves the whole application; each request gets its own jar.
type Manager struct {
	secrets  []string
	defaults Options
	maxSize  int
}

// ManagerOption configures the manager itself rather than individual cookies.
type ManagerOption func(*Manager)

// WithMaxSize sets the maximum rendered cookie line size.
func WithMaxSize(size int) ManagerOption {
	return func(m *Manager) {
		if size > 0 {
			m.maxSize = size
		}
	}
}

// WithDefaults sets the default attributes applied to every written cookie.
// Per-cookie options passed to Set override them.
func WithDefaults(opts ...Option) ManagerOption {
	return func(m *Manager) {
		m.defaults = applyOptions(m.defaults, opts)
	}
}

// New creates a manager. Secrets enable SetSigned/SetEncrypted and friends;
// pass nil for a plaintext-only manager. The first secret signs and encrypts
// new values, the rest are tried on verification and decryption to support
// key rotation. Every secret must be at least 32 characters for AES-256.
func New(secrets []string, opts ...ManagerOption) (*Manager, error) {
	secrets = slices.DeleteFunc(slices.Clone(secrets), func(s string) bool { return s == "" })

	for i := range secrets {
		if len(secrets[i]) < minSecretLength {
			return nil, fmt.Errorf("%w: secret %d has %d chars, need at least %d",
				ErrSecretTooShort, i, len(secrets[i]), minSecretLength)
		}
	}

	m := &Manager{
		secrets: secrets,
		maxSize: MaxCookieSize,
	}
	for _, opt := range opts {
		opt(m)
	}

	return m, nil
}

// NewManager creates a plaintext-only manager: defaults and size limit but
// no secrets, so signed and encrypted operations return ErrNoSecret. It
// cannot fail because secret validation is the only error path in New.
func NewManager(opts ...ManagerOption) *Manager {
	m, _ := New(nil, opts...)
	return m
}

// NewJar constructs the jar for one inbound request from its Cookie header.
func (m *Manager) NewJar(r *http.Request) *Jar {
	return m.ParseHeader(r.Header.Get("Cookie"))
}

// ParseHeader constructs a jar from a raw Cookie header value, carrying the
// manager's defaults, size limit, and secrets.
func (m *Manager) ParseHeader(header string) *Jar {
	j := Parse(header)
	j.defaults = m.defaults
	j.maxSize = m.maxSize
	j.manager = m
	return j
}
