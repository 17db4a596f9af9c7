package jar

import (
	"net/http"
	"time"
)

// Options configures the attributes emitted with a written cookie.
// The zero value emits a bare name=value line with no attributes.
type Options struct {
	Domain   string
	Path     string
	MaxAge   int
	Secure   bool
	HTTPOnly bool
	SameSite http.SameSite
	Expires  time.Time
}

// Option is a functional option for configuring cookie attributes.
type Option func(*Options)

// WithDomain sets the cookie domain attribute.
func WithDomain(domain string) Option {
	return func(o *Options) {
		o.Domain = domain
	}
}

// WithPath sets the cookie path attribute.
func WithPath(path string) Option {
	return func(o *Options) {
		o.Path = path
	}
}

// WithMaxAge sets the cookie max-age in seconds. Zero omits the attribute.
func WithMaxAge(seconds int) Option {
	return func(o *Options) {
		o.MaxAge = seconds
	}
}

// WithSecure sets the secure flag, ensuring the cookie is only sent over HTTPS.
func WithSecure(secure bool) Option {
	return func(o *Options) {
		o.Secure = secure
	}
}

// WithHTTPOnly prevents JavaScript access to the cookie.
func WithHTTPOnly(httpOnly bool) Option {
	return func(o *Options) {
		o.HTTPOnly = httpOnly
	}
}

// WithSameSite sets the SameSite attribute for CSRF protection.
// http.SameSiteDefaultMode omits the attribute.
func WithSameSite(sameSite http.SameSite) Option {
	return func(o *Options) {
		o.SameSite = sameSite
	}
}

// WithExpires sets an explicit expiry timestamp. Deleted cookies ignore it
// and always carry the fixed epoch-zero expiry.
func WithExpires(t time.Time) Option {
	return func(o *Options) {
		o.Expires = t
	}
}

// applyOptions copies the base options and applies modifications on top.
// Copying prevents accidental mutation of shared defaults.
func applyOptions(base Options, opts []Option) Options {
	result := base
	for _, opt := range opts {
		opt(&result)
	}
	return result
}
