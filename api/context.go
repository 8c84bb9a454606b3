package api

import (
	"context"

	"github.com/harshityadav/portfolio-backend/models"
)

type keyType string

const userKey keyType = "user"

// ctxWithUser attaches the authenticated user to the context
func ctxWithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// userFromCtx retrieves the authenticated user, or nil when anonymous
func userFromCtx(ctx context.Context) *models.User {
	user, _ := ctx.Value(userKey).(*models.User)
	return user
}
