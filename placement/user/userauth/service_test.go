package userauth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carevo/platform/pkg/errx"
	"github.com/carevo/platform/pkg/iam/auth"
	"github.com/carevo/platform/pkg/iam/otp"
	"github.com/carevo/platform/pkg/iam/otp/otpsrv"
	"github.com/carevo/platform/pkg/kernel"
	"github.com/carevo/platform/placement/user"
)

type fakeUserRepo struct {
	users map[kernel.UserID]*user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[kernel.UserID]*user.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, u *user.User) error {
	copied := *u
	r.users[u.ID] = &copied
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id kernel.UserID) (*user.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, user.ErrUserNotFound()
	}
	copied := *u
	return &copied, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email kernel.Email) (*user.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, user.ErrUserNotFound()
}

func (r *fakeUserRepo) ExistsByEmail(ctx context.Context, email kernel.Email) (bool, error) {
	_, err := r.GetByEmail(ctx, email)
	return err == nil, nil
}

func (r *fakeUserRepo) Update(_ context.Context, u *user.User) error {
	if _, ok := r.users[u.ID]; !ok {
		return user.ErrUserNotFound()
	}
	copied := *u
	r.users[u.ID] = &copied
	return nil
}

func (r *fakeUserRepo) UpdatePassword(_ context.Context, id kernel.UserID, hash string) error {
	u, ok := r.users[id]
	if !ok {
		return user.ErrUserNotFound()
	}
	u.PasswordHash = hash
	return nil
}

func (r *fakeUserRepo) ListStudents(_ context.Context) ([]user.User, error) {
	return nil, nil
}

// plainHasher makes stored hashes readable in assertions.
type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }
func (plainHasher) Verify(hash, password string) bool    { return hash == "hashed:"+password }

type staticTokens struct{}

func (staticTokens) GenerateAccessToken(kernel.UserID, kernel.Email, kernel.UserType) (string, error) {
	return "token-123", nil
}

func (staticTokens) ValidateAccessToken(string) (*auth.Claims, error) {
	return nil, auth.ErrInvalidToken()
}

type memoryOTPStore struct {
	codes map[string]string
}

func newMemoryOTPStore() *memoryOTPStore {
	return &memoryOTPStore{codes: make(map[string]string)}
}

func (s *memoryOTPStore) key(email kernel.Email, purpose otp.Purpose) string {
	return string(purpose) + ":" + email.String()
}

func (s *memoryOTPStore) Save(_ context.Context, email kernel.Email, purpose otp.Purpose, code string, _ time.Duration) error {
	s.codes[s.key(email, purpose)] = code
	return nil
}

func (s *memoryOTPStore) Get(_ context.Context, email kernel.Email, purpose otp.Purpose) (string, error) {
	code, ok := s.codes[s.key(email, purpose)]
	if !ok {
		return "", otp.ErrExpiredOTP()
	}
	return code, nil
}

func (s *memoryOTPStore) Delete(_ context.Context, email kernel.Email, purpose otp.Purpose) error {
	delete(s.codes, s.key(email, purpose))
	return nil
}

type captureNotifier struct {
	lastCode string
}

func (n *captureNotifier) SendOTP(_ context.Context, _ kernel.Email, code string, _ time.Duration) error {
	n.lastCode = code
	return nil
}

func newTestService() (*AuthService, *fakeUserRepo, *captureNotifier) {
	repo := newFakeUserRepo()
	notifier := &captureNotifier{}
	otpService := otpsrv.NewOTPService(newMemoryOTPStore(), notifier)
	return NewAuthService(repo, plainHasher{}, staticTokens{}, otpService), repo, notifier
}

func validSignup() user.SignupRequest {
	return user.SignupRequest{
		Email:    "Jane@Example.com",
		Password: "s3cret",
		Name:     "Jane Doe",
		UserType: "student",
	}
}

func TestSignup(t *testing.T) {
	svc, repo, _ := newTestService()

	resp, err := svc.Signup(context.Background(), validSignup())
	require.NoError(t, err)

	assert.Equal(t, "Signup successful!", resp.Message)
	assert.Equal(t, "token-123", resp.Token)
	assert.Equal(t, "jane@example.com", resp.User.Email)
	assert.Equal(t, "student", resp.User.UserType)

	u, err := repo.GetByEmail(context.Background(), "jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, "hashed:s3cret", u.PasswordHash)
	// Students start with onboarding outstanding.
	assert.False(t, u.OnboardingCompleted)
	assert.NotNil(t, u.Skills)
	assert.NotNil(t, u.Experiences)
}

func TestSignup_AdminSkipsOnboarding(t *testing.T) {
	svc, repo, _ := newTestService()

	req := validSignup()
	req.Email = "admin@example.com"
	req.UserType = "admin"
	_, err := svc.Signup(context.Background(), req)
	require.NoError(t, err)

	u, err := repo.GetByEmail(context.Background(), "admin@example.com")
	require.NoError(t, err)
	assert.True(t, u.OnboardingCompleted)
}

func TestSignup_Validation(t *testing.T) {
	svc, _, _ := newTestService()

	req := validSignup()
	req.Password = ""
	_, err := svc.Signup(context.Background(), req)
	var appErr *errx.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, user.CodeMissingFields, appErr.Code)

	req = validSignup()
	req.Email = "not-an-email"
	_, err = svc.Signup(context.Background(), req)
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, user.CodeInvalidEmail, appErr.Code)

	req = validSignup()
	req.UserType = "faculty"
	_, err = svc.Signup(context.Background(), req)
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, user.CodeInvalidUserType, appErr.Code)
}

func TestSignup_DuplicateEmail(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Signup(context.Background(), validSignup())
	require.NoError(t, err)

	_, err = svc.Signup(context.Background(), validSignup())
	var appErr *errx.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, user.CodeUserAlreadyExists, appErr.Code)
}

func TestLogin(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Signup(context.Background(), validSignup())
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), user.LoginRequest{
		Email:    "JANE@example.com",
		Password: "s3cret",
	})
	require.NoError(t, err)
	assert.Equal(t, "Login successful!", resp.Message)
	assert.Equal(t, "token-123", resp.Token)
}

func TestLogin_WrongPasswordAndUnknownEmailLookAlike(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Signup(context.Background(), validSignup())
	require.NoError(t, err)

	_, errWrongPass := svc.Login(context.Background(), user.LoginRequest{
		Email:    "jane@example.com",
		Password: "wrong",
	})
	_, errUnknown := svc.Login(context.Background(), user.LoginRequest{
		Email:    "nobody@example.com",
		Password: "s3cret",
	})

	var appErr *errx.Error
	require.ErrorAs(t, errWrongPass, &appErr)
	assert.Equal(t, user.CodeInvalidCredentials, appErr.Code)
	require.ErrorAs(t, errUnknown, &appErr)
	assert.Equal(t, user.CodeInvalidCredentials, appErr.Code)
}

func TestPasswordResetFlow(t *testing.T) {
	svc, repo, notifier := newTestService()

	_, err := svc.Signup(context.Background(), validSignup())
	require.NoError(t, err)

	require.NoError(t, svc.RequestPasswordReset(context.Background(), "jane@example.com"))
	require.NotEmpty(t, notifier.lastCode)

	err = svc.ResetPassword(context.Background(), user.ResetPasswordRequest{
		Email:       "jane@example.com",
		OTP:         notifier.lastCode,
		NewPassword: "n3w-pass",
	})
	require.NoError(t, err)

	u, err := repo.GetByEmail(context.Background(), "jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, "hashed:n3w-pass", u.PasswordHash)

	// The code is consumed on success.
	err = svc.ResetPassword(context.Background(), user.ResetPasswordRequest{
		Email:       "jane@example.com",
		OTP:         notifier.lastCode,
		NewPassword: "again",
	})
	assert.Error(t, err)
}

func TestRequestPasswordReset_UnknownEmailIsSilent(t *testing.T) {
	svc, _, notifier := newTestService()

	require.NoError(t, svc.RequestPasswordReset(context.Background(), "nobody@example.com"))
	assert.Empty(t, notifier.lastCode)
}

func TestResetPassword_WrongOTP(t *testing.T) {
	svc, _, notifier := newTestService()

	_, err := svc.Signup(context.Background(), validSignup())
	require.NoError(t, err)
	require.NoError(t, svc.RequestPasswordReset(context.Background(), "jane@example.com"))

	wrong := "000000"
	if notifier.lastCode == wrong {
		wrong = "000001"
	}
	err = svc.ResetPassword(context.Background(), user.ResetPasswordRequest{
		Email:       "jane@example.com",
		OTP:         wrong,
		NewPassword: "n3w-pass",
	})
	var appErr *errx.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, otp.CodeInvalidOTP, appErr.Code)
}
