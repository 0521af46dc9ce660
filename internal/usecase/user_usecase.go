package usecase

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/debtwise/payoff/internal/domain"
	"github.com/debtwise/payoff/internal/infrastructure/metrics"
)

// UserUseCase handles user management operations
type UserUseCase struct {
	userRepo UserRepository
	idGen    IDGenerator
	metrics  *metrics.Metrics
}

// NewUserUseCase creates a new user use case
func NewUserUseCase(userRepo UserRepository, idGen IDGenerator, metrics *metrics.Metrics) *UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
		idGen:    idGen,
		metrics:  metrics,
	}
}

// CreateUserInput represents input for creating a user
type CreateUserInput struct {
	Email    string
	Name     string
	Password string
	Role     domain.Role
}

// CreateUser creates a new user with hashed password
func (uc *UserUseCase) CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	if err := domain.ValidateEmail(input.Email); err != nil {
		return nil, err
	}

	if err := domain.ValidatePassword(input.Password); err != nil {
		return nil, err
	}

	if input.Role == "" {
		input.Role = domain.RoleMember
	}
	if !input.Role.IsValid() {
		return nil, errors.New("invalid role")
	}

	existing, err := uc.userRepo.GetByEmail(ctx, input.Email)
	if err == nil && existing != nil {
		return nil, errors.New("user with this email already exists")
	}

	hashedPassword, err := hashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:             uc.idGen.Generate(),
		Email:          input.Email,
		Name:           input.Name,
		HashedPassword: hashedPassword,
		Role:           input.Role,
		Active:         true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	// Don't return hashed password
	user.HashedPassword = ""
	return user, nil
}

// AuthenticateInput represents authentication input
type AuthenticateInput struct {
	Email    string
	Password string
}

// Authenticate verifies user credentials
func (uc *UserUseCase) Authenticate(ctx context.Context, input AuthenticateInput) (*domain.User, error) {
	user, err := uc.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		uc.recordAuth("failure", "unknown_email")
		return nil, domain.ErrUnauthorized
	}

	if !user.Active {
		uc.recordAuth("failure", "inactive")
		return nil, errors.New("user account is inactive")
	}

	if err := verifyPassword(user.HashedPassword, input.Password); err != nil {
		uc.recordAuth("failure", "bad_password")
		return nil, domain.ErrUnauthorized
	}

	uc.recordAuth("success", "")
	user.HashedPassword = ""
	return user, nil
}

func (uc *UserUseCase) recordAuth(outcome, reason string) {
	if uc.metrics == nil {
		return
	}
	uc.metrics.AuthAttempts.WithLabelValues(outcome).Inc()
	if reason != "" {
		uc.metrics.AuthFailures.WithLabelValues(reason).Inc()
	}
}

// GetUser retrieves a user by ID
func (uc *UserUseCase) GetUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.HashedPassword = ""
	return user, nil
}

// hashPassword hashes a password using bcrypt
func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// verifyPassword verifies a password against a hash
func verifyPassword(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}
