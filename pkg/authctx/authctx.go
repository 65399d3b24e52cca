// Package authctx carries the caller's auth credential from the HTTP edge
// down to the gateway clients.
package authctx

import "context"

type tokenKey struct{}

// WithToken кладет bearer-токен в контекст
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// Token достает bearer-токен из контекста
func Token(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenKey{}).(string)
	return token, ok && token != ""
}
