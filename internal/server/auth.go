package server

import (
	"context"
	"log"

	"github.com/michal/smartresume/internal/config"
	"github.com/michal/smartresume/internal/types"
)

// AdminService authenticates admin accounts against the database.
type AdminService struct {
	store     Store
	passwords *config.PasswordConfig
	jwt       *JWTService
}

// NewAdminService creates an AdminService with the given dependencies.
func NewAdminService(store Store, passwords *config.PasswordConfig, jwt *JWTService) *AdminService {
	return &AdminService{
		store:     store,
		passwords: passwords,
		jwt:       jwt,
	}
}

// Login verifies credentials and issues a bearer token. Unknown usernames and
// wrong passwords are indistinguishable to the caller.
func (s *AdminService) Login(ctx context.Context, req *types.AdminLoginRequest) (*types.AdminLoginResponse, error) {
	admin, err := s.store.GetAdminByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, &ErrInvalidCredentials{}
	}

	if !s.passwords.VerifyPassword(req.Password, admin.Password) {
		return nil, &ErrInvalidCredentials{}
	}

	if admin.Status != "active" {
		return nil, &ErrAccountInactive{Username: admin.Username}
	}

	token, err := s.jwt.GenerateToken(admin.ID)
	if err != nil {
		return nil, err
	}

	// A failed stamp should not block the login.
	if err := s.store.UpdateAdminLastLogin(ctx, admin.ID); err != nil {
		log.Printf("failed to update last login for %s: %v", admin.Username, err)
	}

	return &types.AdminLoginResponse{
		User: &types.AdminUser{
			ID:        admin.ID,
			Username:  admin.Username,
			FullName:  admin.FullName,
			Email:     admin.Email,
			Role:      admin.Role,
			LastLogin: admin.LastLogin,
		},
		Token: token,
	}, nil
}
