package web

import (
	"fmt"
	"net/http"

	"github.com/topnotch/storefront/pkg/config"
)

const (
	developmentCSP = "default-src 'self'; script-src 'self' 'unsafe-eval' 'unsafe-inline'; style-src 'self' 'unsafe-inline'; img-src 'self' data: https:; font-src 'self' data:;"
	productionCSP  = "default-src 'self'; script-src 'self'; style-src 'self' 'unsafe-inline'; img-src 'self' data: https:; font-src 'self' data:; connect-src 'self';"

	defaultReferrerPolicy    = "strict-origin-when-cross-origin"
	defaultPermissionsPolicy = "geolocation=(), microphone=(), camera=(), payment=(), usb=(), magnetometer=(), gyroscope=()"
	defaultExpectCT          = "max-age=86400, enforce"
)

// SecurityHeaders sets the browser hardening headers on every response.
// HSTS is only sent in production over TLS.
func SecurityHeaders(cfg config.SecurityConfig, production bool) func(http.Handler) http.Handler {
	csp := developmentCSP
	if production {
		csp = productionCSP
		if cfg.ContentSecurityPolicy != "" {
			csp = cfg.ContentSecurityPolicy
		}
	}
	hsts := fmt.Sprintf("max-age=%d; includeSubDomains", int64(cfg.HSTSMaxAge.Seconds()))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("X-Frame-Options", "DENY")
			h.Set("X-XSS-Protection", "1; mode=block")
			h.Set("Content-Security-Policy", csp)
			h.Set("Referrer-Policy", defaultReferrerPolicy)
			h.Set("Permissions-Policy", defaultPermissionsPolicy)
			h.Set("X-DNS-Prefetch-Control", "off")
			if production {
				if isTLS(r) {
					h.Set("Strict-Transport-Security", hsts)
				}
				h.Set("Expect-CT", defaultExpectCT)
			}
			h.Del("X-Powered-By")
			next.ServeHTTP(w, r)
		})
	}
}

func isTLS(r *http.Request) bool {
	return r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https"
}
