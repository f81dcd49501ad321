package auth

import "context"

type ctxKey string

// ContextUserKey is where the middleware stores the session user. The session
// is request-scoped: there is no process-wide current user.
const ContextUserKey ctxKey = "sessionUser"

func UserFromContext(ctx context.Context) (*User, bool) {
	if ctx == nil {
		return nil, false
	}
	user, ok := ctx.Value(ContextUserKey).(*User)
	return user, ok
}

func ContextWithUser(ctx context.Context, user *User) context.Context {
	return context.WithValue(ctx, ContextUserKey, user)
}
