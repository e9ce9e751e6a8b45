package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractAccessToken(t *testing.T) {
	t.Run("From cookie", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.AddCookie(&http.Cookie{Name: "access_token", Value: "cookie-token"})

		assert.Equal(t, "cookie-token", ExtractAccessToken(req))
	})

	t.Run("Cookie wins over header", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.AddCookie(&http.Cookie{Name: "access_token", Value: "cookie-token"})
		req.Header.Set("Authorization", "Bearer header-token")

		assert.Equal(t, "cookie-token", ExtractAccessToken(req))
	})

	t.Run("From bearer header", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("Authorization", "Bearer header-token")

		assert.Equal(t, "header-token", ExtractAccessToken(req))
	})

	t.Run("Missing", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)

		assert.Empty(t, ExtractAccessToken(req))
	})
}

func TestMerchantContext(t *testing.T) {
	ctx := SetMerchantContext(context.Background(), 7, "seller@tajer.app")

	id, ok := GetMerchantIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, uint(7), id)
	assert.Equal(t, "seller@tajer.app", GetMerchantEmailFromContext(ctx))

	_, ok = GetMerchantIDFromContext(context.Background())
	assert.False(t, ok)
}
