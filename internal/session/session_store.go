// Package session owns the authenticated identity and loyalty profile.
// The store persists the current user record under a fixed key and is the
// only writer of that key.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/google/uuid"
	"github.com/ibomair/appcore/internal/domain"
	"github.com/ibomair/appcore/internal/kvstore"
)

type UseCase interface {
	Restore(ctx context.Context) error
	Login(ctx context.Context, email, password string) (*domain.LoyaltyAccount, error)
	Register(ctx context.Context, input RegisterInput) (*domain.LoyaltyAccount, error)
	Logout(ctx context.Context) error
	Current() (*domain.LoyaltyAccount, bool)
	Loading() bool
}

type RegisterInput struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Password  string `json:"password"`
}

type Store struct {
	mu            sync.Mutex
	kv            kvstore.Store
	user          *domain.LoyaltyAccount
	authenticated bool
	loading       bool
}

func NewStore(kv kvstore.Store) *Store {
	return &Store{kv: kv, loading: true}
}

// Restore reads the persisted user record once at startup. A missing or
// unreadable record leaves the session unauthenticated; restore never
// fails the startup path.
func (s *Store) Restore(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer func() { s.loading = false }()

	data, err := s.kv.Get(ctx, kvstore.KeyUser)
	if err != nil {
		if !errors.Is(err, kvstore.ErrNotFound) {
			log.Printf("failed to load user: %v", err)
		}
		s.user = nil
		s.authenticated = false
		return nil
	}

	var user domain.LoyaltyAccount
	if err := json.Unmarshal(data, &user); err != nil {
		log.Printf("failed to decode user record: %v", err)
		s.user = nil
		s.authenticated = false
		return nil
	}

	s.user = &user
	s.authenticated = true
	return nil
}

// Login builds the example loyalty account for the given email. The
// password is not verified against anything; there is no backend, and
// field validation is the caller's job. The record is persisted before
// any in-memory state changes, so a write failure leaves the session
// untouched.
func (s *Store) Login(ctx context.Context, email, password string) (*domain.LoyaltyAccount, error) {
	user := mockAccount(email)
	if err := s.persist(ctx, user); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.user = user
	s.authenticated = true
	s.mu.Unlock()
	return user, nil
}

// Register creates a fresh account with zeroed loyalty metrics.
func (s *Store) Register(ctx context.Context, input RegisterInput) (*domain.LoyaltyAccount, error) {
	user := &domain.LoyaltyAccount{
		MemberID:     domain.GenerateMemberID(),
		Tier:         domain.TierGreen,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		Transactions: []domain.LoyaltyTransaction{},
	}
	if err := s.persist(ctx, user); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.user = user
	s.authenticated = true
	s.mu.Unlock()
	return user, nil
}

// Logout clears the persisted record and the in-memory session. If the
// delete fails the session is left as it was.
func (s *Store) Logout(ctx context.Context) error {
	if err := s.kv.Delete(ctx, kvstore.KeyUser); err != nil {
		return fmt.Errorf("failed to clear user record: %w", err)
	}

	s.mu.Lock()
	s.user = nil
	s.authenticated = false
	s.mu.Unlock()
	return nil
}

// Current returns the signed-in account and whether the session is
// authenticated.
func (s *Store) Current() (*domain.LoyaltyAccount, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user, s.authenticated
}

// Loading reports whether the initial restore has completed yet.
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *Store) persist(ctx context.Context, user *domain.LoyaltyAccount) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode user record: %w", err)
	}
	if err := s.kv.Set(ctx, kvstore.KeyUser, data); err != nil {
		return fmt.Errorf("failed to persist user record: %w", err)
	}
	return nil
}

func mockAccount(email string) *domain.LoyaltyAccount {
	return &domain.LoyaltyAccount{
		MemberID:      domain.GenerateMemberID(),
		Tier:          domain.TierGreen,
		FirstName:     "John",
		LastName:      "Doe",
		Email:         email,
		Points:        2500,
		MilesFlown:    15000,
		SegmentsFlown: 12,
		TierProgress:  35,
		ExpiringPoints: domain.ExpiringPoints{
			Amount: 500,
			Date:   "2025-03-31",
		},
		Transactions: []domain.LoyaltyTransaction{
			{ID: uuid.NewString(), Date: "2025-01-10", Description: "Flight UYO-LOS", Points: 250, Type: domain.TransactionTypeEarned, Balance: 2500},
			{ID: uuid.NewString(), Date: "2025-01-05", Description: "Flight ABV-UYO", Points: 200, Type: domain.TransactionTypeEarned, Balance: 2250},
		},
	}
}

var _ UseCase = (*Store)(nil)
