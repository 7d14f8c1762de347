package service

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"laundry_service/internal/model"
	"laundry_service/internal/repository"
	"laundry_service/internal/utils"

	"go.uber.org/zap"
)

var (
	ErrPhoneAlreadyRegistered = errors.New("phone number already registered")
	ErrInvalidCredentials     = errors.New("invalid phone or password")
	ErrPhoneTooLong           = errors.New("phone number too long")
)

// AuthService provides customer signup and login
type AuthService interface {
	Signup(ctx context.Context, name, phone, password string) (*model.Customer, error)
	Login(ctx context.Context, phone, password string) (*model.Customer, error)
}

type authService struct {
	customerRepo repository.CustomerRepository
	logger       *zap.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(customerRepo repository.CustomerRepository, logger *zap.Logger) AuthService {
	return &authService{customerRepo: customerRepo, logger: logger}
}

// Signup creates a new customer account. The phone is normalized before the
// length and uniqueness checks; a concurrent insert that trips the unique constraint is
// reported the same way as a failed pre-check.
func (s *authService) Signup(ctx context.Context, name, phone, password string) (*model.Customer, error) {
	phone = utils.NormalizePhone(phone)
	if utf8.RuneCountInString(phone) > model.MaxPhoneLength {
		return nil, ErrPhoneTooLong
	}

	existing, err := s.customerRepo.FindByPhone(ctx, phone)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing customer: %w", err)
	}
	if existing != nil {
		return nil, ErrPhoneAlreadyRegistered
	}

	passwordHash, err := utils.MakePasswordHash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	customer := &model.Customer{
		Name:         name,
		Phone:        phone,
		PasswordHash: passwordHash,
	}
	if err := s.customerRepo.Create(ctx, customer); err != nil {
		if errors.Is(err, repository.ErrDuplicatePhone) {
			s.logger.Warn("signup lost race on phone uniqueness")
			return nil, ErrPhoneAlreadyRegistered
		}
		return nil, fmt.Errorf("failed to create customer in repository: %w", err)
	}

	s.logger.Info("customer registered", zap.String("customer_id", customer.ID))
	return customer, nil
}

// Login authenticates a customer. Unknown phone and wrong password are
// indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, phone, password string) (*model.Customer, error) {
	customer, err := s.customerRepo.FindByPhone(ctx, utils.NormalizePhone(phone))
	if err != nil {
		return nil, fmt.Errorf("error finding customer by phone: %w", err)
	}
	if customer == nil {
		return nil, ErrInvalidCredentials
	}

	if !utils.VerifyPassword(password, customer.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return customer, nil
}
