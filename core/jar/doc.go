// Package jar provides a request-scoped HTTP cookie jar with diff-based
// Set-Cookie emission. A jar parses the incoming Cookie header once, tracks
// reads, writes, and deletions during one request, and serializes only the
// net changes at response finalization.
//
// # Why a diff
//
// HTTP cookies have write-only wire semantics: the server can only ever set
// or expire a cookie, never "unsend" one. At the same time a cookie merely
// read from the request must not be echoed back, or the browser would treat
// it as re-set, resetting its freshness and wasting bandwidth. The jar keeps
// a per-name state (read-only, written, deleted) precisely so serialization
// can emit what changed and nothing else.
//
// # Basic Usage
//
// Create one jar per inbound request and serialize it once at the end:
//
//	import "github.com/dmitrymomot/cookiekit/core/jar"
//
//	j := jar.FromRequest(r)
//
//	// Read an incoming cookie (no Set-Cookie is ever emitted for pure reads)
//	user := j.Get("username")
//
//	// Write a cookie, optionally with attributes
//	err := j.Set("session", token,
//		jar.WithDomain("example.com"),
//		jar.WithPath("/"),
//		jar.WithSecure(true),
//	)
//
//	// Remove a cookie (emits the fixed epoch-zero deletion line)
//	j.Delete("tracking_id")
//
//	// At response finalization
//	j.WriteHeaders(w.Header())
//
// # Iteration
//
// Each ranges over every incoming cookie in original header order with its
// effective current value. Deleting while iterating is safe:
//
//	for name, value := range j.Each() {
//		j.Delete(name)
//		_ = value
//	}
//
// # Manager
//
// A Manager carries application-wide defaults, the size limit, and optional
// secrets, and builds one jar per request:
//
//	m, err := jar.New([]string{os.Getenv("COOKIEJAR_SECRETS")},
//		jar.WithDefaults(jar.WithPath("/"), jar.WithSecure(true)),
//	)
//	j := m.NewJar(r)
//
// With secrets configured, values can be signed (HMAC-SHA256, tamper
// detection) or encrypted (AES-256-GCM, confidentiality), with key rotation
// across multiple secrets:
//
//	err := j.SetSigned("uid", userID)
//	uid, err := j.GetSigned("uid")
//	if errors.Is(err, jar.ErrInvalidSignature) {
//		// cookie was tampered with
//	}
//
// # Configuration
//
// Use environment variables for production configuration:
//
//	var cfg jar.Config
//	config.MustLoad(&cfg)
//	m, err := jar.NewFromConfig(cfg)
//
// # Concurrency
//
// A Manager is safe for concurrent use; it is read-only after construction.
// A Jar is not: it belongs to exactly one request and all operations on it
// are sequential and synchronous.
package jar
