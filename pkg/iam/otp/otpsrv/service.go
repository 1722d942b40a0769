package otpsrv

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"math/big"

	"github.com/carevo/platform/pkg/iam/otp"
	"github.com/carevo/platform/pkg/kernel"
	"github.com/carevo/platform/pkg/logx"
)

type OTPService struct {
	store    otp.Store
	notifier otp.Notifier
}

func NewOTPService(store otp.Store, notifier otp.Notifier) *OTPService {
	return &OTPService{
		store:    store,
		notifier: notifier,
	}
}

// GenerateOTP issues a fresh 6-digit code, stores it and delivers it to the
// user. Re-issuing replaces any previous code for the same purpose.
func (s *OTPService) GenerateOTP(ctx context.Context, email kernel.Email, purpose otp.Purpose) error {
	code, err := sixDigitCode()
	if err != nil {
		return otp.ErrRegistry.NewWithCause(otp.CodeGeneration, err)
	}

	if err := s.store.Save(ctx, email, purpose, code, otp.TTL); err != nil {
		return err
	}

	if err := s.notifier.SendOTP(ctx, email, code, otp.TTL); err != nil {
		return otp.ErrRegistry.NewWithCause(otp.CodeDeliveryFailed, err)
	}

	logx.Infof("OTP issued for %s (%s)", email, purpose)
	return nil
}

// VerifyOTP checks a submitted code and consumes it on success.
func (s *OTPService) VerifyOTP(ctx context.Context, email kernel.Email, purpose otp.Purpose, code string) error {
	stored, err := s.store.Get(ctx, email, purpose)
	if err != nil {
		return err
	}

	if subtle.ConstantTimeCompare([]byte(stored), []byte(code)) != 1 {
		return otp.ErrInvalidOTP()
	}

	return s.store.Delete(ctx, email, purpose)
}

func sixDigitCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
