package services

import (
	"context"

	"github.com/invopay/invoicing_backend/internal/core/domain"
	"github.com/invopay/invoicing_backend/internal/dto"
)

// UserReaderSvc defines read operations for users
type UserReaderSvc interface {
	// GetUserByID retrieves a specific user.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// VerifyCredentials checks an email/password pair and returns the user on success.
	VerifyCredentials(ctx context.Context, email, password string) (*domain.User, error)
}

// UserWriterSvc defines write operations for users
type UserWriterSvc interface {
	// RegisterUser creates a new user with a hashed password.
	RegisterUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error)
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
}
