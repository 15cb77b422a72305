package services

import (
	"context"
	"errors"
	"testing"

	"PhotoMarketAPI/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBuyerStore struct {
	nextID  int64
	byEmail map[string]*model.Buyer
	byID    map[int64]*model.Buyer
}

func newFakeBuyerStore() *fakeBuyerStore {
	return &fakeBuyerStore{
		nextID:  1,
		byEmail: make(map[string]*model.Buyer),
		byID:    make(map[int64]*model.Buyer),
	}
}

func (f *fakeBuyerStore) CreateBuyer(_ context.Context, email, passwordhash, role string) (int64, error) {
	b := &model.Buyer{BuyerID: f.nextID, Email: email, PasswordHash: passwordhash, Role: role}
	f.nextID++
	f.byEmail[email] = b
	f.byID[b.BuyerID] = b
	return b.BuyerID, nil
}

func (f *fakeBuyerStore) GetByEmail(_ context.Context, email string) (*model.Buyer, error) {
	b, ok := f.byEmail[email]
	if !ok {
		return nil, errors.New("buyer not found")
	}
	cp := *b
	return &cp, nil
}

func (f *fakeBuyerStore) GetByID(_ context.Context, id int64) (*model.Buyer, error) {
	b, ok := f.byID[id]
	if !ok {
		return nil, errors.New("buyer not found")
	}
	cp := *b
	return &cp, nil
}

func (f *fakeBuyerStore) EmailExists(_ context.Context, email string) (bool, error) {
	_, ok := f.byEmail[email]
	return ok, nil
}

func TestAuthServiceRegisterAndLogin(t *testing.T) {
	svc := NewAuthService(newFakeBuyerStore())
	ctx := context.Background()

	id, err := svc.Register(ctx, "ann@example.com", "long-enough-pw")
	require.NoError(t, err)
	require.NotZero(t, id)

	buyer, err := svc.Login(ctx, "ann@example.com", "long-enough-pw")
	require.NoError(t, err)
	assert.Equal(t, id, buyer.BuyerID)
	assert.Empty(t, buyer.PasswordHash)

	_, err = svc.Login(ctx, "ann@example.com", "wrong-password")
	assert.EqualError(t, err, "invalid credentials")
}

func TestAuthServiceRegisterValidation(t *testing.T) {
	svc := NewAuthService(newFakeBuyerStore())
	ctx := context.Background()

	_, err := svc.Register(ctx, "not-an-email", "long-enough-pw")
	assert.EqualError(t, err, "invalid email format")

	_, err = svc.Register(ctx, "ann@example.com", "short")
	assert.Error(t, err)

	_, err = svc.Register(ctx, "ann@example.com", "long-enough-pw")
	require.NoError(t, err)
	_, err = svc.Register(ctx, "ann@example.com", "long-enough-pw")
	assert.EqualError(t, err, "email already registered")
}

func TestAuthServiceGetBuyer(t *testing.T) {
	svc := NewAuthService(newFakeBuyerStore())
	ctx := context.Background()

	id, err := svc.Register(ctx, "ann@example.com", "long-enough-pw")
	require.NoError(t, err)

	buyer, err := svc.GetBuyer(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "ann@example.com", buyer.Email)
	assert.Equal(t, "user", buyer.Role)
	assert.Empty(t, buyer.PasswordHash)

	_, err = svc.GetBuyer(ctx, 999)
	assert.EqualError(t, err, "buyer not found")
}
