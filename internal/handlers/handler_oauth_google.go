package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/bsmapp/battery_shop_backend/internal/middleware"
	"github.com/bsmapp/battery_shop_backend/internal/utils"
	"github.com/gin-gonic/gin"
)

const oauthStateCookie = "oauth_state"

// registerGoogleOAuthRoutes registers the Google OAuth routes under the auth group.
func registerGoogleOAuthRoutes(rg *gin.RouterGroup, h *AuthHandler) {
	googleRoutes := rg.Group("/google")
	{
		googleRoutes.GET("", h.GoogleRedirect)
		googleRoutes.GET("/callback", h.GoogleCallback)
	}
}

// GoogleRedirect godoc
// @Summary Start Google login
// @Description Redirects the browser to Google's consent page. A random state value is stored in a short-lived cookie.
// @Tags oauth
// @Success 307 "Redirect to Google"
// @Failure 500 {object} ErrorResponse
// @Router /auth/google [get]
func (h *AuthHandler) GoogleRedirect(c *gin.Context) {
	state, err := utils.GenerateSecureRandomString(16)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to start login"})
		return
	}
	c.SetCookie(oauthStateCookie, state, 300, "/api/v1/auth/google", "", h.cfg.IsProduction, true)
	c.Redirect(http.StatusTemporaryRedirect, h.authService.GoogleAuthURL(state))
}

// GoogleCallback godoc
// @Summary Google login callback
// @Description Handles Google's redirect: verifies state, exchanges the code, sets the refresh cookie and forwards the browser to the frontend with the access token.
// @Tags oauth
// @Success 307 "Redirect to frontend"
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/google/callback [get]
func (h *AuthHandler) GoogleCallback(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	wantState, err := c.Cookie(oauthStateCookie)
	c.SetCookie(oauthStateCookie, "", -1, "/api/v1/auth/google", "", h.cfg.IsProduction, true)
	if err != nil || wantState == "" || c.Query("state") != wantState {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid OAuth state"})
		return
	}

	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Missing authorization code"})
		return
	}

	user, tokens, err := h.authService.LoginWithGoogle(c.Request.Context(), code)
	if err != nil {
		logger.Error("Google login failed", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Google login failed"})
		return
	}

	h.setRefreshCookie(c, tokens.RefreshToken)
	logger.Info("Google login completed", slog.String("user_id", user.UserID))

	redirect := fmt.Sprintf("%s/auth/callback?token=%s", h.cfg.FrontendBaseURL, url.QueryEscape(tokens.AccessToken))
	c.Redirect(http.StatusTemporaryRedirect, redirect)
}
