package auth

import "context"

type contextKey string

const userIDKey contextKey = "auth.user_id"

// WithUser attaches the authenticated user id to ctx.
func WithUser(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromContext returns the user id stored by WithUser.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	if !ok || userID <= 0 {
		return 0, false
	}
	return userID, true
}
