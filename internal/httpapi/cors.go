// ABOUTME: CORS middleware for the synchronous transport
// ABOUTME: Origin allow-list by default, wildcard mode for hosted deployments

package httpapi

import "net/http"

// withCORS mirrors browser-facing deployments: a fixed allow-list during
// development, or wildcard when allow_all_origins is set. Browsers reject
// credentials combined with "*", so the wildcard branch never sets them.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")

		if s.cors.AllowAllOrigins {
			w.Header().Set("Access-Control-Allow-Origin", "*")
		} else if origin != "" && s.originAllowed(origin) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
		}

		if r.Method == http.MethodOptions {
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) originAllowed(origin string) bool {
	for _, allowed := range s.cors.AllowedOrigins {
		if allowed == origin {
			return true
		}
	}
	return false
}
