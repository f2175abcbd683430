// Package otp подтверждение email одноразовым кодом
package otp

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/m04kA/SMC-HallBookingService/internal/domain"
	otpRepo "github.com/m04kA/SMC-HallBookingService/internal/infra/storage/otp"
)

const (
	subject      = "Your OTP for Hall Booking System"
	bodyTemplate = "Your OTP is: %s. This OTP will expire in %d minutes."
)

// Service сервис OTP
type Service struct {
	repo           OTPRepository
	limiter        RateLimiter
	mailer         Mailer
	txManager      TransactionManager
	allowedDomains map[string]struct{}
	ttl            time.Duration
	timeProvider   TimeProvider
	generate       func() (string, error)
	logger         Logger
}

// NewService создает сервис. Пустой список доменов разрешает любой домен.
func NewService(
	repo OTPRepository,
	limiter RateLimiter,
	mailer Mailer,
	txManager TransactionManager,
	allowedDomains []string,
	ttl time.Duration,
	logger Logger,
) *Service {
	if ttl <= 0 {
		ttl = domain.DefaultOTPTTLMinutes * time.Minute
	}

	domains := make(map[string]struct{}, len(allowedDomains))
	for _, d := range allowedDomains {
		domains[strings.ToLower(strings.TrimSpace(d))] = struct{}{}
	}

	return &Service{
		repo:           repo,
		limiter:        limiter,
		mailer:         mailer,
		txManager:      txManager,
		allowedDomains: domains,
		ttl:            ttl,
		timeProvider:   &RealTimeProvider{},
		generate:       generateCode,
		logger:         logger,
	}
}

// Send создает новый код для email и отправляет его письмом.
// Удаление предыдущих кодов и запись нового выполняются в одной транзакции,
// письмо отправляется после коммита.
func (s *Service) Send(ctx context.Context, email string) error {
	if !s.domainAllowed(email) {
		s.logger.Warn("Send: domain of %s is not allowed", email)
		return ErrDomainNotAllowed
	}

	if s.limiter != nil {
		allowed, err := s.limiter.Allow(ctx, email)
		if err != nil {
			// Redis недоступен: лимит не применяется
			s.logger.Warn("Send: rate limiter unavailable: %v", err)
		} else if !allowed {
			s.logger.Warn("Send: too many requests for %s", email)
			return ErrTooManyRequests
		}
	}

	code, err := s.generate()
	if err != nil {
		s.logger.Error("Send: failed to generate code: %v", err)
		return fmt.Errorf("%w: Send - generate: %v", ErrInternal, err)
	}

	err = s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if err := s.repo.DeleteByEmail(txCtx, email); err != nil {
			return fmt.Errorf("delete previous: %v", err)
		}
		if _, err := s.repo.Create(txCtx, &domain.EmailOTP{
			Email:     email,
			Code:      code,
			CreatedAt: s.timeProvider.Now(),
		}); err != nil {
			return fmt.Errorf("create: %v", err)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("Send: failed to store code for %s: %v", email, err)
		return fmt.Errorf("%w: Send - %v", ErrInternal, err)
	}

	msg := domain.EmailMessage{
		To:      email,
		Subject: subject,
		Body:    fmt.Sprintf(bodyTemplate, code, int(s.ttl/time.Minute)),
	}
	if err := s.mailer.Send(ctx, msg); err != nil {
		s.logger.Error("Send: failed to send code to %s: %v", email, err)
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	s.logger.Info("Send: code sent to %s", email)
	return nil
}

// Verify проверяет код. Просроченный и успешно проверенный код удаляются.
func (s *Service) Verify(ctx context.Context, email, code string) error {
	otp, err := s.repo.Find(ctx, email, code)
	if err != nil {
		if errors.Is(err, otpRepo.ErrOTPNotFound) {
			s.logger.Warn("Verify: invalid code for %s", email)
			return ErrInvalidOTP
		}
		s.logger.Error("Verify: repository error for %s: %v", email, err)
		return fmt.Errorf("%w: Verify - find: %v", ErrInternal, err)
	}

	if err := s.repo.DeleteByID(ctx, otp.ID); err != nil {
		s.logger.Error("Verify: failed to delete code id=%d: %v", otp.ID, err)
		return fmt.Errorf("%w: Verify - delete: %v", ErrInternal, err)
	}

	if otp.IsExpired(s.timeProvider.Now(), s.ttl) {
		s.logger.Warn("Verify: code for %s expired", email)
		return ErrOTPExpired
	}

	s.logger.Info("Verify: %s verified", email)
	return nil
}

// PurgeExpired удаляет просроченные коды и возвращает их количество
func (s *Service) PurgeExpired(ctx context.Context) (int64, error) {
	cutoff := s.timeProvider.Now().Add(-s.ttl)

	n, err := s.repo.DeleteCreatedBefore(ctx, cutoff)
	if err != nil {
		s.logger.Error("PurgeExpired: %v", err)
		return 0, fmt.Errorf("%w: PurgeExpired - repository error: %v", ErrInternal, err)
	}

	if n > 0 {
		s.logger.Info("PurgeExpired: removed %d expired codes", n)
	}
	return n, nil
}

func (s *Service) domainAllowed(email string) bool {
	d := domain.EmailDomain(email)
	if d == "" {
		return false
	}
	if len(s.allowedDomains) == 0 {
		return true
	}
	_, ok := s.allowedDomains[d]
	return ok
}

// generateCode возвращает случайный код из domain.OTPLength цифр
func generateCode() (string, error) {
	upper := big.NewInt(1)
	for i := 0; i < domain.OTPLength; i++ {
		upper.Mul(upper, big.NewInt(10))
	}

	n, err := rand.Int(rand.Reader, upper)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", domain.OTPLength, n.Int64()), nil
}
