package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"lostfound-api/internal/data/entity"
	"lostfound-api/internal/data/repository"
	"lostfound-api/internal/dto/request"
	"lostfound-api/internal/dto/response"
	"lostfound-api/pkg/utils"

	"go.uber.org/zap"
)

// Recognized campus email domains. Staff addresses get the Admin role,
// student addresses get User; the role is fixed at registration and never
// revisited.
const (
	staffEmailDomain   = "@cput.ac.za"
	studentEmailDomain = "@mycput.ac.za"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) error
	Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error)
}

type authService struct {
	userRepo repository.UserRepository
	log      *zap.Logger
}

func NewAuthService(userRepo repository.UserRepository, log *zap.Logger) AuthService {
	return &authService{
		userRepo: userRepo,
		log:      log,
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) error {
	// 1. Validate input shape
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return &ValidationError{
			Message: "validation failed: " + utils.FormatValidationErrors(errs),
			Fields:  errs,
		}
	}

	// 2. Derive role from the email domain
	role, ok := roleForEmail(req.Email)
	if !ok {
		s.log.Warn("Register rejected - unrecognized email domain", zap.String("email", req.Email))
		return &ValidationError{
			Message: fmt.Sprintf("invalid email domain, only %s or %s are allowed", staffEmailDomain, studentEmailDomain),
		}
	}

	// 3. Hash password
	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return fmt.Errorf("failed to process password")
	}

	// 4. Persist; duplicate user ID or email surfaces as a ConflictError
	account := &entity.Account{
		UserID:       req.UserID,
		FullName:     req.Name,
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
		PasswordHash: passwordHash,
		Role:         role,
	}

	if err := s.userRepo.Create(ctx, account); err != nil {
		var conflict *repository.ConflictError
		if errors.As(err, &conflict) {
			return conflict
		}
		s.log.Error("Failed to register account", zap.Error(err), zap.String("user_id", req.UserID))
		return fmt.Errorf("failed to register user")
	}

	s.log.Info("User registered",
		zap.String("user_id", account.UserID),
		zap.String("email", account.Email),
		zap.String("role", string(account.Role)),
	)

	return nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error) {
	// 1. Validate input shape
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, &ValidationError{
			Message: "validation failed: " + utils.FormatValidationErrors(errs),
			Fields:  errs,
		}
	}

	// 2. Look up by user ID or email in one shot
	account, err := s.userRepo.FindByIDOrEmail(ctx, req.UsernameOrEmail)
	if err != nil {
		s.log.Error("Failed to look up account", zap.Error(err), zap.String("identifier", req.UsernameOrEmail))
		return nil, fmt.Errorf("failed to look up account")
	}

	// Unknown identifier and wrong password must be indistinguishable
	if account == nil {
		s.log.Warn("Login attempt for unknown account", zap.String("identifier", req.UsernameOrEmail))
		return nil, ErrInvalidCredentials
	}

	// 3. Verify credentials
	if account.PasswordHash == "" {
		s.log.Error("Account has no password hash", zap.String("user_id", account.UserID))
		return nil, fmt.Errorf("incomplete user data for %s", account.UserID)
	}

	match, err := utils.CheckPasswordHash(req.Password, account.PasswordHash)
	if err != nil {
		s.log.Error("Password verification failed", zap.Error(err), zap.String("user_id", account.UserID))
		return nil, fmt.Errorf("password verification failed")
	}
	if !match {
		s.log.Warn("Invalid password", zap.String("user_id", account.UserID))
		return nil, ErrInvalidCredentials
	}

	// 4. Best-effort last-login bookkeeping; never blocks a successful login
	if err := s.userRepo.TouchLastLogin(ctx, account.UserID); err != nil {
		s.log.Warn("Could not update last login",
			zap.Error(err),
			zap.String("user_id", account.UserID),
		)
	}

	s.log.Info("User logged in",
		zap.String("user_id", account.UserID),
		zap.String("role", string(account.Role)),
	)

	return response.LoginToResponse(account), nil
}

func roleForEmail(email string) (entity.UserRole, bool) {
	switch {
	case strings.HasSuffix(email, staffEmailDomain):
		return entity.RoleAdmin, true
	case strings.HasSuffix(email, studentEmailDomain):
		return entity.RoleUser, true
	}
	return "", false
}
