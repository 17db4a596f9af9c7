package jar

import (
	"iter"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// MaxCookieSize is the default maximum size for a rendered cookie line (4KB).
const MaxCookieSize = 4096

// cookieTimeFormat is the wire format for the expires attribute. The epoch
// zero timestamp renders as "Thu, 01-Jan-1970 00:00:00 GMT", the conventional
// immediate-deletion expiry.
const cookieTimeFormat = "Mon, 02-Jan-2006 15:04:05 GMT"

// epochZeroExpiry is the fixed expiry attached to every deletion line.
const epochZeroExpiry = "Thu, 01-Jan-1970 00:00:00 GMT"

// Jar tracks cookie reads, writes, and deletions during a single request and
// computes the minimal set of Set-Cookie lines reflecting net changes.
//
// A jar is owned exclusively by one in-flight request. It is constructed from
// the request's Cookie header, mutated by handler code, serialized once at
// response finalization, and then discarded. It requires no locking.
type Jar struct {
	// incoming holds the parsed request cookies; immutable after parsing.
	incoming map[string]string
	// names preserves the incoming header order for Each traversal.
	names []string

	// entries holds the jar's knowledge of every name touched so far.
	entries map[string]*entry
	// touched preserves first-touch order for deterministic serialization.
	touched []string

	defaults Options
	maxSize  int

	// manager supplies secrets for signed and encrypted values; nil for
	// jars built with Parse directly.
	manager *Manager
}

// Parse builds a jar from a raw Cookie header value of the form
// "name1=value1; name2=value2". Values are URL-decoded. Malformed segments
// (missing "=", empty name) are skipped silently; parsing is best-effort and
// never fails. Options become the default attributes for written cookies.
func Parse(header string, opts ...Option) *Jar {
	j := &Jar{
		incoming: make(map[string]string),
		entries:  make(map[string]*entry),
		defaults: applyOptions(Options{}, opts),
		maxSize:  MaxCookieSize,
	}

	for segment := range strings.SplitSeq(header, ";") {
		name, raw, ok := strings.Cut(segment, "=")
		if !ok {
			continue
		}
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, dup := j.incoming[name]; dup {
			continue
		}
		value, err := url.QueryUnescape(strings.TrimSpace(raw))
		if err != nil {
			value = strings.TrimSpace(raw)
		}
		j.incoming[name] = value
		j.names = append(j.names, name)
	}

	return j
}

// FromRequest builds a jar from the request's Cookie header.
func FromRequest(r *http.Request, opts ...Option) *Jar {
	return Parse(r.Header.Get("Cookie"), opts...)
}

// Get returns the current value of the named cookie. A name written during
// this request returns the written value; a deleted name returns the empty
// string for the remainder of the request; otherwise the incoming request
// value is returned. Reading an incoming cookie marks it read-only, which
// never produces a Set-Cookie line. An unknown name returns the empty string.
func (j *Jar) Get(name string) string {
	if e, ok := j.entries[name]; ok {
		if e.state == StateDeleted {
			return ""
		}
		return e.value
	}
	value, ok := j.incoming[name]
	if !ok {
		return ""
	}
	j.track(name, &entry{value: value, state: StateReadOnly})
	return value
}

// Set writes a cookie value with the given attributes, replacing any prior
// value and attributes for the name. Setting a previously deleted name
// revives it; the deletion is not emitted. Returns ErrInvalidName for names
// that cannot appear on the wire and ErrCookieTooLarge when the rendered
// line exceeds the jar's size limit.
func (j *Jar) Set(name, value string, opts ...Option) error {
	if !validName(name) {
		return ErrInvalidName
	}

	e := &entry{
		value:   value,
		options: applyOptions(j.defaults, opts),
		state:   StateWritten,
	}

	if line := renderLine(name, e); j.maxSize > 0 && len(line) > j.maxSize {
		return ErrCookieTooLarge{Name: name, Size: len(line), Max: j.maxSize}
	}

	if existing, ok := j.entries[name]; ok {
		*existing = *e
		return nil
	}
	j.track(name, e)
	return nil
}

// Delete marks the named cookie for removal. The response will carry an
// epoch-zero expiry line for it, and Get returns the empty string for the
// remainder of the request.
func (j *Jar) Delete(name string) {
	if e, ok := j.entries[name]; ok {
		e.value = ""
		e.state = StateDeleted
		return
	}
	j.track(name, &entry{state: StateDeleted})
}

// Each returns a sequence over every name present in the incoming request,
// in original header order, paired with its effective current value. Each
// call produces a fresh sequence reflecting mutations made since the prior
// one; a single sequence is meant to be ranged over once. Deleting entries
// mid-traversal is safe: deletions affect serialization and later reads but
// never skip or duplicate names within the running traversal.
func (j *Jar) Each() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, name := range j.names {
			value := j.incoming[name]
			if e, ok := j.entries[name]; ok {
				if e.state == StateDeleted {
					value = ""
				} else {
					value = e.value
				}
			}
			if !yield(name, value) {
				return
			}
		}
	}
}

// Headers renders the net changes as Set-Cookie lines in first-touch order.
// Written entries emit their value and attributes; deleted entries emit the
// fixed epoch-zero expiry line. Read-only and untouched cookies emit nothing:
// the browser already holds them, and echoing them back would re-set them.
func (j *Jar) Headers() []string {
	var lines []string
	for _, name := range j.touched {
		e := j.entries[name]
		switch e.state {
		case StateWritten, StateDeleted:
			lines = append(lines, renderLine(name, e))
		}
	}
	return lines
}

// Header returns the newline-joined concatenation of Headers, for frameworks
// that carry all pending cookies in a single combined header value.
func (j *Jar) Header() string {
	return strings.Join(j.Headers(), "\n")
}

// WriteHeaders adds each pending Set-Cookie line to the given header map.
func (j *Jar) WriteHeaders(h http.Header) {
	for _, line := range j.Headers() {
		h.Add("Set-Cookie", line)
	}
}

// Len reports how many Set-Cookie lines the jar currently has pending.
func (j *Jar) Len() int {
	n := 0
	for _, e := range j.entries {
		if e.state == StateWritten || e.state == StateDeleted {
			n++
		}
	}
	return n
}

func (j *Jar) track(name string, e *entry) {
	j.entries[name] = e
	j.touched = append(j.touched, name)
}

// renderLine serializes a single entry. Deleted entries always render the
// fixed deletion form, ignoring any caller-supplied attributes.
func renderLine(name string, e *entry) string {
	if e.state == StateDeleted {
		return name + "=deleted; expires=" + epochZeroExpiry
	}

	var b strings.Builder
	b.WriteString(name)
	b.WriteByte('=')
	b.WriteString(url.QueryEscape(e.value))
	if e.options.Domain != "" {
		b.WriteString("; domain=")
		b.WriteString(e.options.Domain)
	}
	if e.options.Path != "" {
		b.WriteString("; path=")
		b.WriteString(e.options.Path)
	}
	if e.options.MaxAge != 0 {
		b.WriteString("; max-age=")
		b.WriteString(strconv.Itoa(e.options.MaxAge))
	}
	if e.options.Secure {
		b.WriteString("; secure")
	}
	if e.options.HTTPOnly {
		b.WriteString("; httponly")
	}
	if ss := sameSiteValue(e.options.SameSite); ss != "" {
		b.WriteString("; samesite=")
		b.WriteString(ss)
	}
	if !e.options.Expires.IsZero() {
		b.WriteString("; expires=")
		b.WriteString(e.options.Expires.UTC().Format(cookieTimeFormat))
	}
	return b.String()
}

func sameSiteValue(s http.SameSite) string {
	switch s {
	case http.SameSiteLaxMode:
		return "lax"
	case http.SameSiteStrictMode:
		return "strict"
	case http.SameSiteNoneMode:
		return "none"
	default:
		return ""
	}
}

// validName reports whether name is a valid RFC 6265 cookie name token.
func validName(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		if !isTokenByte(name[i]) {
			return false
		}
	}
	return true
}

func isTokenByte(c byte) bool {
	if c <= 0x20 || c >= 0x7f {
		return false
	}
	switch c {
	case '(', ')', '<', '>', '@', ',', ';', ':', '\\', '"', '/', '[', ']', '?', '=', '{', '}':
		return false
	}
	return true
}
