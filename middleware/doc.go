// Package middleware provides net/http middleware wiring a request-scoped
// cookie jar into the standard request lifecycle.
//
// The middleware constructs one jar per request from the Cookie header,
// makes it available through the request context, and serializes the jar's
// pending Set-Cookie lines exactly once, immediately before the response
// headers are written:
//
//	m, _ := jar.New(nil)
//	mux := http.NewServeMux()
//	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
//		j, _ := middleware.JarFromContext(r.Context())
//		j.Set("visited", "true")
//	})
//	http.ListenAndServe(":8080", middleware.Jar(m)(mux))
//
// Mutating the jar after the first response write is a no-op at the wire
// level: HTTP headers are gone once the body starts.
package middleware
