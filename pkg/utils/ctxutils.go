package utils

import (
	"context"

	"soporte-ti/pkg/contextkeys"
	apperrors "soporte-ti/pkg/errors"
)

func GetUserIDFromCtx(ctx context.Context) (string, error) {
	userID, ok := ctx.Value(contextkeys.UserIDKey).(string)
	if !ok || userID == "" {
		return "", apperrors.ErrUserIDNotFoundInContext
	}
	return userID, nil
}

func GetRolFromCtx(ctx context.Context) (string, error) {
	rol, ok := ctx.Value(contextkeys.RolKey).(string)
	if !ok || rol == "" {
		return "", apperrors.ErrForbidden
	}
	return rol, nil
}
