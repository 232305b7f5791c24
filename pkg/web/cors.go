package web

import (
	"log/slog"
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/topnotch/storefront/pkg/config"
)

const exposedHeaders = "X-Request-Id, X-Cart-Count"

var developmentOrigins = []string{"http://localhost:3000", "http://localhost:3001"}

// CORS answers cross-origin requests. Outside production every origin is accepted;
// in production an origin missing from the allow list is refused with 403.
func CORS(cfg config.CORSConfig, production bool, logger *slog.Logger) func(http.Handler) http.Handler {
	allowed := cfg.AllowedOrigins
	if len(allowed) == 0 && !production {
		allowed = developmentOrigins
	}
	methods := strings.Join(cfg.AllowedMethods, ", ")
	headers := strings.Join(cfg.AllowedHeaders, ", ")
	maxAge := "0"
	if production {
		maxAge = strconv.FormatInt(int64(cfg.MaxAge.Seconds()), 10)
	}

	isAllowed := func(origin string) bool {
		if !production && strings.HasPrefix(origin, "http://localhost:") {
			return true
		}
		return slices.Contains(allowed, origin) || slices.Contains(allowed, "*")
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			h := w.Header()
			h.Add("Vary", "Origin")

			switch {
			case origin != "" && isAllowed(origin):
				h.Set("Access-Control-Allow-Origin", origin)
				h.Set("Access-Control-Allow-Credentials", "true")
			case !production:
				if origin == "" {
					h.Set("Access-Control-Allow-Origin", "*")
				} else {
					h.Set("Access-Control-Allow-Origin", origin)
					h.Set("Access-Control-Allow-Credentials", "true")
				}
			case origin != "":
				logger.WarnContext(r.Context(), "Origin not allowed", "origin", origin)
				RespondError(w, logger, http.StatusForbidden, "Origin not allowed")
				return
			}

			h.Set("Access-Control-Allow-Methods", methods)
			h.Set("Access-Control-Allow-Headers", headers)
			h.Set("Access-Control-Expose-Headers", exposedHeaders)
			h.Set("Access-Control-Max-Age", maxAge)

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
