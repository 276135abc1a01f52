package jwtmw

import (
	"github.com/gin-gonic/gin"

	"review_backend/internal/platform/apperror"
)

// ContextIdentity is the gin context key holding the authenticated Identity.
const ContextIdentity = "identity"

// AuthRequired returns a Gin middleware that authenticates the request and
// rejects it through the error normalizer on failure:
// missing token 401, invalid or expired token 403, deleted user 401.
func AuthRequired(auth *Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := auth.Authenticate(c.Request.Context(), c.GetHeader("Authorization"))
		if err != nil {
			apperror.Abort(c, err)
			return
		}
		c.Set(ContextIdentity, identity)
		c.Next()
	}
}

// IdentityFrom returns the Identity stored by AuthRequired.
func IdentityFrom(c *gin.Context) (Identity, bool) {
	v, ok := c.Get(ContextIdentity)
	if !ok {
		return Identity{}, false
	}
	identity, ok := v.(Identity)
	return identity, ok
}

// MustIdentity is IdentityFrom for handlers mounted behind AuthRequired.
// It writes a 401 and returns false when the identity is absent.
func MustIdentity(c *gin.Context) (Identity, bool) {
	identity, ok := IdentityFrom(c)
	if !ok {
		apperror.Abort(c, ErrMissingToken)
	}
	return identity, ok
}
