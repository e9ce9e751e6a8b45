package middleware

import (
	"net/http"

	"tajer-be/internal/auth"
	"tajer-be/internal/merchant"
)

// AuthMiddleware rejects requests without a valid merchant token. Routes that
// allow anonymous access (register, login, health) are mounted outside it.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenStr := auth.ExtractAccessToken(r)
		if tokenStr == "" {
			http.Error(w, "missing access token", http.StatusUnauthorized)
			return
		}

		claims, err := merchant.ParseJWT(tokenStr)
		if err != nil {
			http.Error(w, "invalid access token", http.StatusUnauthorized)
			return
		}

		ctx := auth.SetMerchantContext(r.Context(), claims.MerchantID, claims.Email)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
