package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"PhotoMarketAPI/internal/model"

	"golang.org/x/crypto/bcrypt"
)

const (
	MinPasswordLen = 8
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
)

// BuyerStore is the slice of the auth repository the service needs.
type BuyerStore interface {
	CreateBuyer(ctx context.Context, email, passwordhash, role string) (int64, error)
	GetByEmail(ctx context.Context, email string) (*model.Buyer, error)
	GetByID(ctx context.Context, id int64) (*model.Buyer, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

type AuthService struct {
	Buyers BuyerStore
}

func NewAuthService(r BuyerStore) *AuthService {
	return &AuthService{Buyers: r}
}

func (s *AuthService) validateEmail(email string) error {
	if email == "" {
		return errors.New("email is required")
	}
	if !emailRegex.MatchString(email) {
		return errors.New("invalid email format")
	}
	return nil
}

func (s *AuthService) validatePassword(pw string) error {
	if len(pw) < MinPasswordLen {
		return fmt.Errorf("password too short: must be at least %d characters", MinPasswordLen)
	}
	return nil
}

// Register creates a buyer account with role "user".
func (s *AuthService) Register(ctx context.Context, email, password string) (int64, error) {
	if err := s.validateEmail(email); err != nil {
		return 0, err
	}
	if err := s.validatePassword(password); err != nil {
		return 0, err
	}
	exists, err := s.Buyers.EmailExists(ctx, email)
	if err != nil {
		return 0, err
	}
	if exists {
		return 0, errors.New("email already registered")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}
	return s.Buyers.CreateBuyer(ctx, email, string(hash), "user")
}

// Login authenticates using email + password and returns the buyer (without passwordhash).
func (s *AuthService) Login(ctx context.Context, email, password string) (*model.Buyer, error) {
	b, err := s.Buyers.GetByEmail(ctx, email)
	if err != nil {
		// do not reveal whether email exists
		return nil, errors.New("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(b.PasswordHash), []byte(password)); err != nil {
		return nil, errors.New("invalid credentials")
	}
	// zero out password before returning
	b.PasswordHash = ""
	return b, nil
}

// GetBuyer returns the current account record for an authenticated buyer.
func (s *AuthService) GetBuyer(ctx context.Context, buyerID int64) (*model.Buyer, error) {
	b, err := s.Buyers.GetByID(ctx, buyerID)
	if err != nil {
		return nil, err
	}
	b.PasswordHash = ""
	return b, nil
}
