package otp

import (
	"context"
	"net/http"
	"time"

	"github.com/carevo/platform/pkg/errx"
	"github.com/carevo/platform/pkg/kernel"
)

// Purpose namespaces OTP codes so a code issued for one flow cannot be
// replayed in another.
type Purpose string

const (
	PurposePasswordReset Purpose = "password_reset"
)

// TTL is how long an issued code stays valid.
const TTL = 10 * time.Minute

// Store persists issued codes until they expire or are consumed.
type Store interface {
	Save(ctx context.Context, email kernel.Email, purpose Purpose, code string, ttl time.Duration) error

	// Get returns the stored code, or ErrCodeExpired when none exists.
	Get(ctx context.Context, email kernel.Email, purpose Purpose) (string, error)

	Delete(ctx context.Context, email kernel.Email, purpose Purpose) error
}

// Notifier delivers a code to the user.
type Notifier interface {
	SendOTP(ctx context.Context, email kernel.Email, code string, ttl time.Duration) error
}

// Error Registry
var ErrRegistry = errx.NewRegistry("OTP")

// Error codes
var (
	CodeInvalidOTP     = ErrRegistry.Register("INVALID_OTP", errx.TypeValidation, http.StatusBadRequest, "Invalid OTP code")
	CodeExpiredOTP     = ErrRegistry.Register("EXPIRED_OTP", errx.TypeNotFound, http.StatusBadRequest, "OTP expired or never issued")
	CodeDeliveryFailed = ErrRegistry.Register("DELIVERY_FAILED", errx.TypeExternal, http.StatusBadGateway, "Failed to deliver OTP")
	CodeGeneration     = ErrRegistry.Register("GENERATION", errx.TypeInternal, http.StatusInternalServerError, "Failed to generate OTP")
)

// Helper functions
func ErrInvalidOTP() *errx.Error {
	return ErrRegistry.New(CodeInvalidOTP)
}

func ErrExpiredOTP() *errx.Error {
	return ErrRegistry.New(CodeExpiredOTP)
}

func ErrDeliveryFailed() *errx.Error {
	return ErrRegistry.New(CodeDeliveryFailed)
}

func ErrGeneration() *errx.Error {
	return ErrRegistry.New(CodeGeneration)
}
