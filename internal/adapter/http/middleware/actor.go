// Package middleware holds the gin middlewares of the public API.
package middleware

import (
	"net/http"
	"strings"

	"tradequote/pkg"

	"github.com/gin-gonic/gin"
)

const (
	HeaderUserID    = "X-User-ID"
	HeaderUserEmail = "X-User-Email"

	actorKey = "actor"
)

// Actor is the caller identity. The headers are set by the gateway after the
// token has been verified.
type Actor struct {
	UserID string
	Email  string
}

// RequireActor rejects requests without a user id header.
func RequireActor() gin.HandlerFunc {
	return func(c *gin.Context) {
		a := Actor{
			UserID: strings.TrimSpace(c.GetHeader(HeaderUserID)),
			Email:  strings.ToLower(strings.TrimSpace(c.GetHeader(HeaderUserEmail))),
		}
		if a.UserID == "" {
			appErr := pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Missing user identity", http.StatusUnauthorized)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.Set(actorKey, a)
		c.Next()
	}
}

// RequireVendorEmail is RequireActor for vendor routes, which are keyed by email.
func RequireVendorEmail() gin.HandlerFunc {
	return func(c *gin.Context) {
		a := Actor{
			UserID: strings.TrimSpace(c.GetHeader(HeaderUserID)),
			Email:  strings.ToLower(strings.TrimSpace(c.GetHeader(HeaderUserEmail))),
		}
		if a.Email == "" {
			appErr := pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Missing user email", http.StatusUnauthorized)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.Set(actorKey, a)
		c.Next()
	}
}

// ActorFrom returns the identity stored by RequireActor or RequireVendorEmail.
func ActorFrom(c *gin.Context) Actor {
	if v, ok := c.Get(actorKey); ok {
		if a, ok := v.(Actor); ok {
			return a
		}
	}
	return Actor{}
}
