package service

// Тесты двухшаговой регистрации (registration.go) и операций
// логина/кликов (auth.go, clicks.go).

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/munkush/go-clicker/dispatcher-service/internal/clients"
	"github.com/munkush/go-clicker/dispatcher-service/internal/models"
)

func TestRegister_OK(t *testing.T) {
	t.Parallel()

	var createdLogin, createdCode string
	users := &fakeUsers{
		create: func(_ context.Context, login, code string) error {
			createdLogin, createdCode = login, code
			return nil
		},
	}
	gen := &fakeGenerator{
		generate: func(_ context.Context, login string) (string, error) {
			require.Equal(t, "bob", login)
			return "code-42", nil
		},
	}
	s := newService(t, users, gen, nil, nil, 0)

	reg, err := s.Register(context.Background(), "bob")
	require.NoError(t, err)
	require.Equal(t, models.Registration{Login: "bob", Code: "code-42"}, reg)
	require.Equal(t, "bob", createdLogin)
	require.Equal(t, "code-42", createdCode)
}

func TestRegister_GenerateFails_NoCreateCall(t *testing.T) {
	t.Parallel()

	createCalled := false
	users := &fakeUsers{
		create: func(context.Context, string, string) error {
			createCalled = true
			return nil
		},
	}
	gen := &fakeGenerator{
		generate: func(context.Context, string) (string, error) {
			return "", clients.ErrUnavailable
		},
	}
	s := newService(t, users, gen, nil, nil, 0)

	_, err := s.Register(context.Background(), "bob")
	require.ErrorIs(t, err, clients.ErrUnavailable)
	require.False(t, createCalled)
}

// Сага без компенсации: create-user падает после выпуска кода,
// бизнес-сообщение конфликта доходит до вызывающего.
func TestRegister_CreateConflict_SurfacesMessage(t *testing.T) {
	t.Parallel()

	users := &fakeUsers{
		create: func(context.Context, string, string) error {
			return &clients.StatusError{Code: http.StatusConflict, Message: "login already taken"}
		},
	}
	gen := &fakeGenerator{
		generate: func(context.Context, string) (string, error) { return "code-42", nil },
	}
	s := newService(t, users, gen, nil, nil, 0)

	_, err := s.Register(context.Background(), "bob")
	se, ok := clients.AsStatus(err)
	require.True(t, ok)
	require.Equal(t, "login already taken", se.Message)
}

func TestLoginUser_PreservesClassification(t *testing.T) {
	t.Parallel()

	users := &fakeUsers{
		login: func(context.Context, string, string) (models.TokenPair, error) {
			return models.TokenPair{}, &clients.StatusError{Code: http.StatusUnauthorized, Message: "wrong code"}
		},
	}
	s := newService(t, users, nil, nil, nil, 0)

	_, err := s.LoginUser(context.Background(), "alice", "bad")
	se, ok := clients.AsStatus(err)
	require.True(t, ok)
	require.Equal(t, "wrong code", se.Message)
}

func TestSaveClick_Unauthenticated_NoUpstreamCall(t *testing.T) {
	t.Parallel()

	saveCalled := false
	users := &fakeUsers{
		validate: func(context.Context, string) (bool, error) { return false, nil },
	}
	clicker := &fakeClicker{
		save: func(context.Context, models.Click) error {
			saveCalled = true
			return nil
		},
	}
	s := newService(t, users, nil, clicker, nil, 0)

	username := s.SaveClick(context.Background(), "expired-tok", "1", "2")
	require.Empty(t, username)
	require.False(t, saveCalled, "клик без identity не должен уходить в clicker-service")
}

func TestSaveClick_Authenticated_AttributesFreshIdentity(t *testing.T) {
	t.Parallel()

	var saved models.Click
	users := &fakeUsers{
		validate: func(context.Context, string) (bool, error) { return true, nil },
		username: func(context.Context, string) (string, error) { return "alice", nil },
	}
	clicker := &fakeClicker{
		save: func(_ context.Context, click models.Click) error {
			saved = click
			return nil
		},
	}
	s := newService(t, users, nil, clicker, nil, 0)

	username := s.SaveClick(context.Background(), "tok", "10", "20")
	require.Equal(t, "alice", username)
	require.Equal(t, models.Click{X: "10", Y: "20", Username: "alice"}, saved)
}

func TestSaveClick_SaveFails_StillReturnsUsername(t *testing.T) {
	t.Parallel()

	users := &fakeUsers{
		validate: func(context.Context, string) (bool, error) { return true, nil },
		username: func(context.Context, string) (string, error) { return "alice", nil },
	}
	clicker := &fakeClicker{
		save: func(context.Context, models.Click) error {
			return errors.New("clicker down")
		},
	}
	s := newService(t, users, nil, clicker, nil, 0)

	username := s.SaveClick(context.Background(), "tok", "1", "2")
	require.Equal(t, "alice", username)
}
