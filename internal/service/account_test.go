package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"naturexpress-cargo-backend/internal/auth"
	"naturexpress-cargo-backend/internal/domain"
	"naturexpress-cargo-backend/internal/forms"
	"naturexpress-cargo-backend/internal/repository/realtimedb"
	"naturexpress-cargo-backend/internal/store/memory"
)

type fakeAuthClient struct {
	session *auth.Session
	signErr error
	resets  []string
}

func (c *fakeAuthClient) SignIn(_ context.Context, _, _ string) (*auth.Session, error) {
	if c.signErr != nil {
		return nil, c.signErr
	}
	return c.session, nil
}

func (c *fakeAuthClient) SendPasswordReset(_ context.Context, email string) error {
	c.resets = append(c.resets, email)
	return nil
}

func TestLoginResolvesRole(t *testing.T) {
	st := memory.New()
	ctx := context.Background()
	admin := domain.User{ID: "u1", Name: "Asha", Email: "asha@example.com", Role: domain.UserRoleAdmin}
	require.NoError(t, st.Set(ctx, "users/u1", admin))

	client := &fakeAuthClient{session: &auth.Session{
		UID: "u1", Email: "asha@example.com", IDToken: "tok", ExpiresAt: time.Now().Add(time.Hour),
	}}
	accounts := NewAccountService(client, realtimedb.NewUserRepository(st))

	session, user, err := accounts.Login(ctx, map[string]string{
		"email": "asha@example.com", "password": "secret",
	})
	require.NoError(t, err)
	assert.Equal(t, "u1", session.UID)
	require.NotNil(t, user)
	assert.Equal(t, domain.UserRoleAdmin, user.Role)
}

func TestLoginMissingDirectoryRecordYieldsNilUser(t *testing.T) {
	client := &fakeAuthClient{session: &auth.Session{UID: "u-new"}}
	accounts := NewAccountService(client, realtimedb.NewUserRepository(memory.New()))

	session, user, err := accounts.Login(context.Background(), map[string]string{
		"email": "new@example.com", "password": "secret",
	})
	require.NoError(t, err)
	assert.Equal(t, "u-new", session.UID)
	assert.Nil(t, user)
}

func TestLoginSurfacesProviderError(t *testing.T) {
	client := &fakeAuthClient{signErr: &auth.Error{Code: "INVALID_PASSWORD"}}
	accounts := NewAccountService(client, realtimedb.NewUserRepository(memory.New()))

	_, _, err := accounts.Login(context.Background(), map[string]string{
		"email": "asha@example.com", "password": "wrong",
	})
	var aerr *auth.Error
	require.ErrorAs(t, err, &aerr)
	assert.Equal(t, "INVALID_PASSWORD", aerr.Code)
}

func TestLoginValidatesFormBeforeProvider(t *testing.T) {
	client := &fakeAuthClient{signErr: &auth.Error{Code: "SHOULD_NOT_REACH"}}
	accounts := NewAccountService(client, realtimedb.NewUserRepository(memory.New()))

	_, _, err := accounts.Login(context.Background(), map[string]string{
		"email": "bad-address", "password": "secret",
	})
	var ferr *forms.FieldError
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, "email", ferr.Field)
}

func TestSendPasswordReset(t *testing.T) {
	client := &fakeAuthClient{}
	accounts := NewAccountService(client, realtimedb.NewUserRepository(memory.New()))

	err := accounts.SendPasswordReset(context.Background(), map[string]string{"email": "asha@example.com"})
	require.NoError(t, err)
	assert.Equal(t, []string{"asha@example.com"}, client.resets)

	err = accounts.SendPasswordReset(context.Background(), map[string]string{"email": ""})
	var ferr *forms.FieldError
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, "Email is required", ferr.Message)
}
