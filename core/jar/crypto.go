package jar

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"io"
	"strings"
)

// SetSigned writes a cookie value with an HMAC-SHA256 signature so tampering
// is detectable on the next request. Requires a manager with secrets.
func (j *Jar) SetSigned(name, value string, opts ...Option) error {
	if j.manager == nil || len(j.manager.secrets) == 0 {
		return ErrNoSecret
	}
	return j.Set(name, j.manager.sign(value), opts...)
}

// GetSigned reads a cookie value and verifies its signature. Returns
// ErrCookieNotFound when the name is absent, ErrInvalidFormat when the value
// cannot carry a signature, and ErrInvalidSignature when verification fails
// against every configured secret.
func (j *Jar) GetSigned(name string) (string, error) {
	if j.manager == nil || len(j.manager.secrets) == 0 {
		return "", ErrNoSecret
	}
	if !j.has(name) {
		return "", ErrCookieNotFound
	}
	return j.manager.verify(j.Get(name))
}

// SetEncrypted writes a cookie value encrypted with AES-256-GCM. Use for
// values the client must not be able to read. Requires a manager with secrets.
func (j *Jar) SetEncrypted(name, value string, opts ...Option) error {
	if j.manager == nil || len(j.manager.secrets) == 0 {
		return ErrNoSecret
	}
	encrypted, err := j.manager.encrypt(value)
	if err != nil {
		return err
	}
	return j.Set(name, encrypted, opts...)
}

// GetEncrypted reads and decrypts a cookie value. Returns ErrCookieNotFound
// when the name is absent, ErrInvalidFormat for values that cannot hold a
// ciphertext, and ErrDecryptionFailed when no configured secret can decrypt.
func (j *Jar) GetEncrypted(name string) (string, error) {
	if j.manager == nil || len(j.manager.secrets) == 0 {
		return "", ErrNoSecret
	}
	if !j.has(name) {
		return "", ErrCookieNotFound
	}
	encrypted := j.Get(name)
	if encrypted == "" {
		return "", ErrInvalidFormat
	}
	return j.manager.decrypt(encrypted)
}

// has reports whether the name currently resolves to a cookie: written or
// read this request, or present in the incoming header. Deleted names do
// not resolve; reads after delete see the deletion.
func (j *Jar) has(name string) bool {
	if e, ok := j.entries[name]; ok {
		return e.state != StateDeleted
	}
	_, ok := j.incoming[name]
	return ok
}

// sign wraps a value as base64(value)|base64(hmac), signed with the newest
// secret.
func (m *Manager) sign(value string) string {
	payload := base64.URLEncoding.EncodeToString([]byte(value))
	return payload + "|" + signature([]byte(value), m.secrets[0])
}

// verify recovers the value from a signed wrapper, accepting a signature
// from any configured secret so rotated-out keys keep verifying.
func (m *Manager) verify(signed string) (string, error) {
	payload, sig, ok := strings.Cut(signed, "|")
	if !ok {
		return "", ErrInvalidFormat
	}

	value, err := base64.URLEncoding.DecodeString(payload)
	if err != nil {
		return "", ErrInvalidFormat
	}

	for _, secret := range m.secrets {
		expected := signature(value, secret)
		if subtle.ConstantTimeCompare([]byte(sig), []byte(expected)) == 1 {
			return string(value), nil
		}
	}

	return "", ErrInvalidSignature
}

func signature(value []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(value)
	return base64.URLEncoding.EncodeToString(mac.Sum(nil))
}

// encrypt seals a value with AES-256-GCM under the newest secret, prefixing
// the random nonce to the ciphertext.
func (m *Manager) encrypt(value string) (string, error) {
	gcm, err := newGCM(m.secrets[0])
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}

	sealed := gcm.Seal(nonce, nonce, []byte(value), nil)
	return base64.URLEncoding.EncodeToString(sealed), nil
}

// decrypt opens a sealed value, trying every configured secret in order.
func (m *Manager) decrypt(encrypted string) (string, error) {
	ciphertext, err := base64.URLEncoding.DecodeString(encrypted)
	if err != nil {
		return "", ErrInvalidFormat
	}

	for _, secret := range m.secrets {
		gcm, err := newGCM(secret)
		if err != nil || len(ciphertext) < gcm.NonceSize() {
			continue
		}

		nonce, sealed := ciphertext[:gcm.NonceSize()], ciphertext[gcm.NonceSize():]
		if plaintext, err := gcm.Open(nil, nonce, sealed, nil); err == nil {
			return string(plaintext), nil
		}
	}

	return "", ErrDecryptionFailed
}

// newGCM builds the AEAD for one secret. Secrets are validated to at least
// 32 bytes at manager construction, so the key slice cannot panic here.
func newGCM(secret string) (cipher.AEAD, error) {
	block, err := aes.NewCipher([]byte(secret[:minSecretLength]))
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
