package handler

import (
	"github.com/labstack/echo/v4"

	"tiendapanel/internal/infrastructure/firebase"
	"tiendapanel/pkg/errors"
	"tiendapanel/pkg/response"
)

// AuthHandler exposes the two identity operations the panel needs: who am I,
// and sign out. Sign-in happens against the identity provider directly.
type AuthHandler struct {
	authClient *firebase.AuthClient
}

func NewAuthHandler(authClient *firebase.AuthClient) *AuthHandler {
	return &AuthHandler{
		authClient: authClient,
	}
}

func (h *AuthHandler) Me(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	email, _ := c.Get("email").(string)

	if email == "" {
		fetched, err := h.authClient.CurrentUserEmail(c.Request().Context(), uid)
		if err != nil {
			return response.Error(c, err)
		}
		email = fetched
	}

	return response.Success(c, map[string]interface{}{
		"uid":   uid,
		"email": email,
	})
}

func (h *AuthHandler) SignOut(c echo.Context) error {
	uid, ok := c.Get("uid").(string)
	if !ok || uid == "" {
		return response.Error(c, errors.Unauthorized("Authentication required", nil))
	}

	if err := h.authClient.SignOut(c.Request().Context(), uid); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"message": "Successfully signed out",
	})
}
