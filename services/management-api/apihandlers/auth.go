package apihandlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	mw "github.com/repo-sumit/survey-builder-be/pkg/apihelpers/middlewares"
	jwthandling "github.com/repo-sumit/survey-builder-be/pkg/jwt-handling"
)

func (h *HttpEndpoints) AddAuthAPI(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	auth.GET("/renew-token", mw.GetAndValidateManagementUserJWT(h.tokenSignKey), h.renewToken)
}

// renewToken issues a fresh token with the same claims, so an open editor
// session outlives the token expiry without re-authenticating.
func (h *HttpEndpoints) renewToken(c *gin.Context) {
	token := c.MustGet("validatedToken").(*jwthandling.ManagementUserClaims)

	newToken, err := jwthandling.GenerateNewManagementUserToken(
		h.tokenExpiresIn,
		token.ID,
		token.InstanceID,
		token.IsAdmin,
		token.Role,
		h.tokenSignKey,
	)
	if err != nil {
		slog.Error("renewToken: error generating token", slog.String("error", err.Error()), slog.String("userID", token.ID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error generating token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":     newToken,
		"expiresIn": int64(h.tokenExpiresIn.Seconds()),
	})
}
