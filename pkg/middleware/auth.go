package middleware

import (
	"crypto/subtle"
	"net/http"

	"cinema-ticketing/pkg/utils"

	"go.uber.org/zap"
)

// AdminKeyHeader carries the shared admin secret.
const AdminKeyHeader = "X-Admin-Key"

// AdminKey guards admin routes with a shared key. key may be the plain secret or its
// bcrypt hash. An empty key disables the check.
func AdminKey(key string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if key == "" {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			given := r.Header.Get(AdminKeyHeader)
			if !adminKeyMatches(key, given) {
				logger.Warn("Admin check: rejected request",
					zap.String("path", r.URL.Path),
					zap.String("method", r.Method),
					zap.Bool("key_present", given != ""),
				)
				utils.ResponseForbidden(w, "Admin access required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func adminKeyMatches(key, given string) bool {
	if given == "" {
		return false
	}
	if utils.IsBcryptHash(key) {
		return utils.VerifySecret(key, given)
	}
	return subtle.ConstantTimeCompare([]byte(given), []byte(key)) == 1
}
