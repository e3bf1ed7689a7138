package utils

import (
	"errors"

	"github.com/apptrackhq/apptrack-go/internal/config"
	"github.com/apptrackhq/apptrack-go/pkg/types"
	"github.com/gin-gonic/gin"
)

// OwnerIDFromContext resolves the owner identifier for the request.
// In multi-tenant mode the id comes from the JWT claims set by the auth
// middleware; in single-tenant mode scoping is disabled and the id is
// empty.
var OwnerIDFromContext = func(c *gin.Context) (string, error) {
	if !config.MultiTenant {
		return "", nil
	}

	claimsVal, exists := c.Get("claims")
	if !exists {
		return "", errors.New("user claims not found in context")
	}

	claims, ok := claimsVal.(*types.Claims)
	if !ok {
		return "", errors.New("invalid user claims type")
	}

	if claims.UserID == "" {
		return "", errors.New("claims missing user id")
	}

	return claims.UserID, nil
}
