package auth

import "context"

type contextKey string

const (
	MerchantIDKey    contextKey = "merchant_id"
	MerchantEmailKey contextKey = "merchant_email"
)

// SetMerchantContext sets merchant info into context (called by middleware)
func SetMerchantContext(ctx context.Context, id uint, email string) context.Context {
	ctx = context.WithValue(ctx, MerchantIDKey, id)
	ctx = context.WithValue(ctx, MerchantEmailKey, email)
	return ctx
}

// GetMerchantIDFromContext retrieves the merchant id safely
func GetMerchantIDFromContext(ctx context.Context) (uint, bool) {
	id, ok := ctx.Value(MerchantIDKey).(uint)
	return id, ok
}

func GetMerchantEmailFromContext(ctx context.Context) string {
	email, _ := ctx.Value(MerchantEmailKey).(string)
	return email
}
