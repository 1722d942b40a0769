package userauth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/carevo/platform/pkg/errx"
	"github.com/carevo/platform/pkg/iam/auth"
	"github.com/carevo/platform/pkg/iam/otp"
	"github.com/carevo/platform/pkg/iam/otp/otpsrv"
	"github.com/carevo/platform/pkg/kernel"
	"github.com/carevo/platform/pkg/logx"
	"github.com/carevo/platform/placement/user"
)

type AuthService struct {
	repo       user.Repository
	hasher     auth.PasswordHasher
	tokens     auth.TokenService
	otpService *otpsrv.OTPService
}

func NewAuthService(
	repo user.Repository,
	hasher auth.PasswordHasher,
	tokens auth.TokenService,
	otpService *otpsrv.OTPService,
) *AuthService {
	return &AuthService{
		repo:       repo,
		hasher:     hasher,
		tokens:     tokens,
		otpService: otpService,
	}
}

// Signup creates a new account and returns a signed-in session.
func (s *AuthService) Signup(ctx context.Context, req user.SignupRequest) (*user.AuthResponse, error) {
	if req.Email == "" || req.Password == "" || req.Name == "" || req.UserType == "" {
		return nil, user.ErrMissingFields()
	}

	email := kernel.Email(req.Email).Normalize()
	if !email.IsValid() {
		return nil, user.ErrInvalidEmail().WithDetail("email", req.Email)
	}

	userType := kernel.UserType(strings.TrimSpace(req.UserType))
	if !userType.IsValid() {
		return nil, user.ErrInvalidUserType().WithDetail("userType", req.UserType)
	}

	exists, err := s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, user.ErrUserAlreadyExists()
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, errx.Wrap(err, "failed to hash password", errx.TypeInternal)
	}

	now := time.Now().UTC()
	u := &user.User{
		ID:           kernel.NewUserID(uuid.New().String()),
		Email:        email,
		PasswordHash: hash,
		Name:         strings.TrimSpace(req.Name),
		UserType:     userType,
		// Only students walk through onboarding.
		OnboardingCompleted: !userType.OnboardingRequired(),
		Skills:              pq.StringArray{},
		TechStack:           pq.StringArray{},
		AITools:             pq.StringArray{},
		Experiences:         user.FreeformList{},
		Certifications:      user.FreeformList{},
		Projects:            user.FreeformList{},
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}

	token, err := s.tokens.GenerateAccessToken(u.ID, u.Email, u.UserType)
	if err != nil {
		return nil, err
	}

	logx.Infof("User created: %s (%s)", u.ID, u.UserType)
	return &user.AuthResponse{
		Message: "Signup successful!",
		Token:   token,
		User:    u.Summary(),
	}, nil
}

// Login verifies credentials and returns a fresh session.
func (s *AuthService) Login(ctx context.Context, req user.LoginRequest) (*user.AuthResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, user.ErrMissingFields()
	}

	email := kernel.Email(req.Email).Normalize()
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		// Do not reveal whether the account exists.
		return nil, user.ErrInvalidCredentials()
	}

	if !s.hasher.Verify(u.PasswordHash, req.Password) {
		return nil, user.ErrInvalidCredentials()
	}

	token, err := s.tokens.GenerateAccessToken(u.ID, u.Email, u.UserType)
	if err != nil {
		return nil, err
	}

	return &user.AuthResponse{
		Message: "Login successful!",
		Token:   token,
		User:    u.Summary(),
	}, nil
}

// Status resolves the current token into its account summary.
func (s *AuthService) Status(ctx context.Context, userID kernel.UserID) (*user.StatusResponse, error) {
	u, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	summary := u.Summary()
	return &user.StatusResponse{
		Authenticated: true,
		User:          &summary,
	}, nil
}

// RequestPasswordReset issues an OTP to the account's email. Unknown emails
// are treated as success so the endpoint cannot be used to probe accounts.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email kernel.Email) error {
	email = email.Normalize()
	exists, err := s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return err
	}
	if !exists {
		logx.Warnf("Password reset requested for unknown email %s", email)
		return nil
	}
	return s.otpService.GenerateOTP(ctx, email, otp.PurposePasswordReset)
}

// ResetPassword consumes a valid OTP and replaces the password.
func (s *AuthService) ResetPassword(ctx context.Context, req user.ResetPasswordRequest) error {
	if req.Email == "" || req.OTP == "" || req.NewPassword == "" {
		return user.ErrMissingFields()
	}

	email := kernel.Email(req.Email).Normalize()
	if err := s.otpService.VerifyOTP(ctx, email, otp.PurposePasswordReset, req.OTP); err != nil {
		return err
	}

	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}

	hash, err := s.hasher.Hash(req.NewPassword)
	if err != nil {
		return err
	}
	return s.repo.UpdatePassword(ctx, u.ID, hash)
}
