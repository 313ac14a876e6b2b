package firebase

import (
	"context"

	"firebase.google.com/go/v4/auth"
)

// AuthClient is the identity collaborator: it only verifies tokens, reports
// who the current user is, and signs them out. User management lives in the
// identity provider, not here.
type AuthClient struct {
	client *auth.Client
}

func NewAuthClient(client *auth.Client) *AuthClient {
	return &AuthClient{
		client: client,
	}
}

// VerifyToken validates an ID token and returns the uid and email claims.
// Absence of a valid token means "unauthenticated", nothing more granular.
func (a *AuthClient) VerifyToken(ctx context.Context, idToken string) (string, string, error) {
	token, err := a.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return "", "", err
	}

	email, _ := token.Claims["email"].(string)
	return token.UID, email, nil
}

func (a *AuthClient) CurrentUserEmail(ctx context.Context, uid string) (string, error) {
	user, err := a.client.GetUser(ctx, uid)
	if err != nil {
		return "", err
	}

	return user.Email, nil
}

// SignOut revokes the user's refresh tokens; outstanding ID tokens expire on
// their own within the hour.
func (a *AuthClient) SignOut(ctx context.Context, uid string) error {
	return a.client.RevokeRefreshTokens(ctx, uid)
}
