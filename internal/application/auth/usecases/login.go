// Package usecases implements the authentication flows.
package usecases

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/venda-inc/venda/internal/domain/user"
	"github.com/venda-inc/venda/internal/shared/authorization"
	sharedConfig "github.com/venda-inc/venda/internal/shared/config"
	"github.com/venda-inc/venda/internal/shared/errors"
	"github.com/venda-inc/venda/internal/shared/logger"
)

// JWTService issues access tokens bound to a session.
type JWTService interface {
	Generate(userID uint, sessionID string, role authorization.UserRole) (string, error)
}

type LoginCommand struct {
	Email    string
	Password string
}

type LoginResult struct {
	User        *user.User
	Roles       []user.Role
	Permissions []string
	Token       string
	SessionID   string
}

type LoginUseCase struct {
	userRepo      user.Repository
	roleRepo      user.RoleRepository
	sessionRepo   user.SessionRepository
	hasher        user.PasswordHasher
	jwtService    JWTService
	sessionConfig sharedConfig.SessionConfig
	logger        logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	roleRepo user.RoleRepository,
	sessionRepo user.SessionRepository,
	hasher user.PasswordHasher,
	jwtService JWTService,
	sessionConfig sharedConfig.SessionConfig,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo:      userRepo,
		roleRepo:      roleRepo,
		sessionRepo:   sessionRepo,
		hasher:        hasher,
		jwtService:    jwtService,
		sessionConfig: sessionConfig,
		logger:        logger,
	}
}

// Execute authenticates a user and opens a session. Every credential failure
// maps to the same generic error so the endpoint never reveals whether an
// email is registered.
func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	existingUser, err := uc.userRepo.GetByEmail(ctx, cmd.Email)
	if err != nil {
		return nil, errors.NewInvalidCredentialsError()
	}

	if !existingUser.CanLogin() {
		return nil, errors.NewInvalidCredentialsError()
	}

	if err := existingUser.VerifyPassword(cmd.Password, uc.hasher); err != nil {
		return nil, errors.NewInvalidCredentialsError()
	}

	roles, err := uc.roleRepo.GetByIDs(ctx, existingUser.RoleIDs)
	if err != nil {
		uc.logger.Errorw("failed to resolve roles", "error", err, "user_id", existingUser.ID)
		return nil, errors.NewInternalError("failed to resolve roles")
	}

	session, err := user.NewSession(existingUser.ID, uc.maxAge())
	if err != nil {
		uc.logger.Errorw("failed to create session", "error", err, "user_id", existingUser.ID)
		return nil, errors.NewInternalError("failed to create session")
	}

	token, err := uc.jwtService.Generate(existingUser.ID, session.ID, primaryRole(roles))
	if err != nil {
		uc.logger.Errorw("failed to generate token", "error", err, "user_id", existingUser.ID)
		return nil, errors.NewInternalError("failed to generate token")
	}
	session.TokenHash = HashToken(token)

	if err := uc.sessionRepo.Create(ctx, session); err != nil {
		uc.logger.Errorw("failed to persist session", "error", err, "user_id", existingUser.ID)
		return nil, errors.NewInternalError("failed to persist session")
	}

	uc.logger.Infow("user logged in", "user_id", existingUser.ID, "session_id", session.ID)

	return &LoginResult{
		User:        existingUser,
		Roles:       roles,
		Permissions: unionPermissions(roles),
		Token:       token,
		SessionID:   session.ID,
	}, nil
}

func (uc *LoginUseCase) maxAge() time.Duration {
	return time.Duration(uc.sessionConfig.MaxAgeHours) * time.Hour
}

// HashToken returns the stored form of an access token. Only the hash ever
// touches the database.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

func primaryRole(roles []user.Role) authorization.UserRole {
	for _, r := range roles {
		if r.Name == string(authorization.RoleAdmin) {
			return authorization.RoleAdmin
		}
	}
	if len(roles) > 0 {
		return authorization.ParseUserRole(roles[0].Name)
	}
	return authorization.RoleSeller
}

func unionPermissions(roles []user.Role) []string {
	seen := make(map[string]struct{})
	var permissions []string
	for _, r := range roles {
		for _, p := range r.Permissions {
			if _, ok := seen[p]; ok {
				continue
			}
			seen[p] = struct{}{}
			permissions = append(permissions, p)
		}
	}
	return permissions
}
