// This file implements the security middleware of the HTTP sidecar:
// hardening headers, CORS, and request size limiting.

package server

import "net/http"

// SecurityConfig controls the middleware applied to every request.
type SecurityConfig struct {
	// EnableCORS turns on cross-origin response headers.
	EnableCORS bool
	// AllowedOrigins lists origins allowed to read responses; "*" allows
	// any origin.
	AllowedOrigins []string
	// AllowedMethods lists the HTTP methods advertised to preflights.
	AllowedMethods []string
	// MaxBodyBytes caps the request body; the sidecar only ever needs
	// small expression payloads.
	MaxBodyBytes int64
}

// DefaultSecurityConfig returns the hardened default: read-only CORS from
// anywhere, small bodies.
func DefaultSecurityConfig() SecurityConfig {
	return SecurityConfig{
		EnableCORS:     true,
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		MaxBodyBytes:   1 << 16,
	}
}

// SecurityMiddleware wraps next with hardening headers and CORS handling
// per config. Preflight OPTIONS requests are answered directly.
func SecurityMiddleware(config SecurityConfig, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("X-XSS-Protection", "1; mode=block")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")

		if config.EnableCORS {
			origin := r.Header.Get("Origin")
			if allowed := corsOrigin(config.AllowedOrigins, origin); allowed != "" {
				h.Set("Access-Control-Allow-Origin", allowed)
				h.Set("Access-Control-Allow-Methods", joinMethods(config.AllowedMethods))
			}
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
		}

		if config.MaxBodyBytes > 0 && r.Body != nil {
			r.Body = http.MaxBytesReader(w, r.Body, config.MaxBodyBytes)
		}

		next(w, r)
	}
}

// corsOrigin returns the Access-Control-Allow-Origin value for the given
// request origin, or "" when the origin is not allowed.
func corsOrigin(allowed []string, origin string) string {
	for _, a := range allowed {
		if a == "*" {
			return "*"
		}
		if a == origin && origin != "" {
			return origin
		}
	}
	return ""
}

// joinMethods renders the method list for the CORS header.
func joinMethods(methods []string) string {
	s := ""
	for i, m := range methods {
		if i > 0 {
			s += ", "
		}
		s += m
	}
	return s
}
