package middleware

import "context"

type contextKey string

const (
	ctxUserID contextKey = "user_id"
	ctxPerfil contextKey = "perfil"
)

func stringFromContext(ctx context.Context, key contextKey) string {
	if ctx == nil {
		return ""
	}
	v, _ := ctx.Value(key).(string)
	return v
}

// UserIDFromContext returns the authenticated user id seeded by Auth, or "".
func UserIDFromContext(ctx context.Context) string {
	return stringFromContext(ctx, ctxUserID)
}

// PerfilFromContext returns the authenticated user's perfil, or "".
func PerfilFromContext(ctx context.Context) string {
	return stringFromContext(ctx, ctxPerfil)
}
