package api

import (
	"net/http"
	"regexp"
	"strings"
)

// accessCodePattern matches codes of the form CLOCK-XXXX-XXXX.
var accessCodePattern = regexp.MustCompile(`^CLOCK-[A-Z0-9]{4}-[A-Z0-9]{4}$`)

// accessCode gates API routes behind a formatted access code carried in the
// X-Access-Code header. Format validation only; codes are not persisted.
func accessCode(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		code := strings.ToUpper(strings.TrimSpace(r.Header.Get("X-Access-Code")))
		if !accessCodePattern.MatchString(code) {
			writeError(w, http.StatusUnauthorized, "valid access code required")
			return
		}
		next.ServeHTTP(w, r)
	})
}
