package usecase

import (
	"strings"

	"github.com/polkiloo/webstudio/internal/config"
	domainErrors "github.com/polkiloo/webstudio/internal/domain/errors"
	pkgAuth "github.com/polkiloo/webstudio/internal/pkg/auth"
)

// AdminUseCase authenticates the back office operator.
type AdminUseCase struct {
	account pkgAuth.Account
	hasher  pkgAuth.PasswordHasher
	tokens  pkgAuth.Strategy
}

// NewAdminUseCase constructs AdminUseCase from configured credentials.
func NewAdminUseCase(cfg *config.Config, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy) *AdminUseCase {
	return &AdminUseCase{
		account: pkgAuth.Account{Login: cfg.AdminLogin, PasswordHash: cfg.AdminPasswordHash},
		hasher:  hasher,
		tokens:  strategy,
	}
}

// Login validates credentials and returns a session token.
func (u *AdminUseCase) Login(login, password string) (string, error) {
	if err := u.account.Match(u.hasher, strings.TrimSpace(login), password); err != nil {
		return "", domainErrors.ErrInvalidCredentials
	}
	return u.tokens.IssueToken(u.account.Login)
}

// ParseToken extracts the operator login from the token.
func (u *AdminUseCase) ParseToken(token string) (string, error) {
	if token == "" {
		return "", pkgAuth.ErrInvalidToken
	}
	return u.tokens.ParseToken(token)
}
