package customer

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"servana/models"
	"servana/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Sentinel errors surfaced to handlers.
var (
	ErrNotFound           = errors.New("customer not found")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidRefresh     = errors.New("invalid or revoked refresh token")
)

const (
	roleCustomer = "customer"
	roleRefresh  = "customer_refresh"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Register creates the account and signs the customer in.
func (s *DefaultCustomerService) Register(input RegisterInput) (*models.Customer, *TokenPair, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if strings.TrimSpace(input.Name) == "" {
		return nil, nil, fmt.Errorf("name is required")
	}
	if !emailPattern.MatchString(email) {
		return nil, nil, fmt.Errorf("a valid email is required")
	}
	if len(input.Password) < 8 {
		return nil, nil, fmt.Errorf("password must be at least 8 characters")
	}

	existing, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, nil, err
	}
	if existing != nil {
		return nil, nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to hash password: %w", err)
	}

	cust := &models.Customer{
		ID:           uuid.New().String(),
		Name:         strings.TrimSpace(input.Name),
		Email:        email,
		Phone:        strings.TrimSpace(input.Phone),
		PasswordHash: string(hash),
	}
	if err := s.Repo.Create(cust); err != nil {
		return nil, nil, err
	}

	pair, err := s.issueTokens(cust)
	if err != nil {
		return nil, nil, err
	}
	return cust, pair, nil
}

// Login verifies credentials and issues a fresh token pair.
func (s *DefaultCustomerService) Login(input LoginInput) (*models.Customer, *TokenPair, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	cust, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, nil, err
	}
	if cust == nil {
		return nil, nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(cust.PasswordHash), []byte(input.Password)) != nil {
		return nil, nil, ErrInvalidCredentials
	}

	pair, err := s.issueTokens(cust)
	if err != nil {
		return nil, nil, err
	}
	return cust, pair, nil
}

// Refresh rotates the token pair: the presented refresh token must match the
// stored hash, and both tokens are reissued so a stolen refresh token is
// single-use.
func (s *DefaultCustomerService) Refresh(refreshToken string) (*TokenPair, error) {
	sub, role, err := utils.ExtractClaimsFromToken(refreshToken)
	if err != nil || role != roleRefresh {
		return nil, ErrInvalidRefresh
	}

	cust, err := s.Repo.GetByID(sub)
	if err != nil {
		return nil, err
	}
	if cust == nil || cust.RefreshHash == "" || cust.RefreshHash != utils.HashToken(refreshToken) {
		return nil, ErrInvalidRefresh
	}

	return s.issueTokens(cust)
}

// Logout revokes the session server-side: clears the stored hashes and
// evicts the auth cache entry.
func (s *DefaultCustomerService) Logout(customerID string) error {
	cust, err := s.Repo.GetByID(customerID)
	if err != nil {
		return err
	}
	if cust == nil {
		return ErrNotFound
	}

	cust.TokenHash = ""
	cust.RefreshHash = ""
	if err := s.Repo.Update(cust); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := utils.GetAuthCacheClient().Del(ctx, utils.AuthCachePrefix+customerID).Err(); err != nil {
		utils.GetLogger().Warn("failed to evict auth cache entry",
			zap.String("customerID", customerID), zap.Error(err))
	}
	return nil
}

// issueTokens signs a new access/refresh pair, persists their hashes on the
// account and caches the access hash for middleware lookups.
func (s *DefaultCustomerService) issueTokens(cust *models.Customer) (*TokenPair, error) {
	access, err := utils.GenerateToken(cust.ID, roleCustomer, utils.AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}
	refresh, err := utils.GenerateToken(cust.ID, roleRefresh, utils.RefreshTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to sign refresh token: %w", err)
	}

	cust.TokenHash = utils.HashToken(access)
	cust.RefreshHash = utils.HashToken(refresh)
	if err := s.Repo.Update(cust); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := utils.GetAuthCacheClient().Set(ctx, utils.AuthCachePrefix+cust.ID, cust.TokenHash, utils.AccessTokenTTL).Err(); err != nil {
		// The middleware falls back to the DB, so a cache miss is benign.
		utils.GetLogger().Warn("failed to cache auth token hash",
			zap.String("customerID", cust.ID), zap.Error(err))
	}

	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
