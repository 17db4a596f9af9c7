package jar

import (
	"errors"
	"fmt"
)

// Error variables define specific failure scenarios in jar operations,
// providing clear, actionable error information for robust error handling.
var (
	// ErrNoSecret indicates a signed or encrypted operation was attempted
	// on a manager constructed without secrets.
	ErrNoSecret = errors.New("no secret configured for signed cookie operations")

	// ErrSecretTooShort indicates the secret doesn't meet minimum length
	// requirements. Secrets must be at least 32 characters for AES-256.
	ErrSecretTooShort = errors.New("secret must be at least 32 characters long")

	// ErrInvalidName indicates a cookie name that cannot appear on the wire:
	// empty, or containing separators, whitespace, or control characters.
	ErrInvalidName = errors.New("invalid cookie name")

	// ErrInvalidSignature indicates cookie signature verification failed,
	// suggesting tampering or corruption.
	ErrInvalidSignature = errors.New("cookie signature verification failed")

	// ErrDecryptionFailed indicates the cookie value couldn't be decrypted,
	// possibly due to corruption or use of wrong key.
	ErrDecryptionFailed = errors.New("failed to decrypt cookie value")

	// ErrCookieNotFound indicates the requested cookie is neither in the
	// incoming header nor written during this request.
	ErrCookieNotFound = errors.New("cookie not found in jar")

	// ErrInvalidFormat indicates the cookie value has unexpected format,
	// typically during decoding operations.
	ErrInvalidFormat = errors.New("invalid cookie format")
)

// ErrCookieTooLarge indicates the rendered cookie line exceeds the maximum
// allowed size.
type ErrCookieTooLarge struct {
	Name string
	Size int
	Max  int
}

// Error implements the error interface.
func (e ErrCookieTooLarge) Error() string {
	return fmt.Sprintf("cookie %q size %d exceeds maximum %d bytes", e.Name, e.Size, e.Max)
}
