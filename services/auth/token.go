package auth

import (
	"cabtour/models"
	"cabtour/utils"
)

// VerifyCustomer parses a customer bearer token.
func (s *DefaultAuthService) VerifyCustomer(token string) (models.Principal, error) {
	return verify(s.Tokens.CustomerSecret, token, models.PrincipalCustomer)
}

// VerifyAdmin parses an admin bearer token.
func (s *DefaultAuthService) VerifyAdmin(token string) (models.Principal, error) {
	return verify(s.Tokens.AdminSecret, token, models.PrincipalAdmin)
}

func verify(secret []byte, token, kind string) (models.Principal, error) {
	if token == "" {
		return models.Principal{}, utils.Unauthorized("missing token")
	}
	claims, err := utils.ParseToken(secret, token)
	if err != nil {
		return models.Principal{}, utils.Unauthorized("invalid or expired token")
	}
	if claims.Kind != kind {
		return models.Principal{}, utils.Unauthorized("token is not valid for this resource")
	}
	return models.Principal{Kind: kind, ID: claims.Subject, Email: claims.Email, Role: claims.Role}, nil
}
