package service

// Тесты агрегатора представления (view.go).
//
// Проверяем:
//  - коды запрашиваются всегда, клики — только при известной identity;
//  - отказ clicker-service не мешает секции кодов (частичная деградация);
//  - отказ обоих апстримов всё равно возвращает представление;
//  - Login переносится в представление как есть.

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/munkush/go-clicker/dispatcher-service/internal/models"
)

func TestBuildView_Anonymous_SkipsClicks(t *testing.T) {
	t.Parallel()

	clicksCalled := false
	users := &fakeUsers{
		list: func(context.Context) ([]models.UserRecord, error) {
			return []models.UserRecord{{Login: "alice", Code: "1"}}, nil
		},
	}
	clicker := &fakeClicker{
		list: func(context.Context, string) ([]models.Click, error) {
			clicksCalled = true
			return nil, nil
		},
	}
	s := newService(t, users, nil, clicker, nil, 0)

	view := s.BuildView(context.Background(), "")
	require.Empty(t, view.Login)
	require.Len(t, view.Codes, 1)
	require.Nil(t, view.Clicks)
	require.False(t, clicksCalled, "клики не запрашиваются без identity")
}

func TestBuildView_Authenticated_FetchesBoth(t *testing.T) {
	t.Parallel()

	users := &fakeUsers{
		list: func(context.Context) ([]models.UserRecord, error) {
			return []models.UserRecord{{Login: "alice", Code: "1"}, {Login: "bob", Code: "2"}}, nil
		},
	}
	clicker := &fakeClicker{
		list: func(_ context.Context, username string) ([]models.Click, error) {
			require.Equal(t, "alice", username)
			return []models.Click{{X: "1", Y: "2"}}, nil
		},
	}
	s := newService(t, users, nil, clicker, nil, 0)

	view := s.BuildView(context.Background(), "alice")
	require.Equal(t, "alice", view.Login)
	require.Len(t, view.Codes, 2)
	require.Equal(t, []models.Click{{X: "1", Y: "2"}}, view.Clicks)
}

func TestBuildView_ClickerDown_CodesSurvive(t *testing.T) {
	t.Parallel()

	users := &fakeUsers{
		list: func(context.Context) ([]models.UserRecord, error) {
			return []models.UserRecord{{Login: "alice", Code: "1"}}, nil
		},
	}
	clicker := &fakeClicker{
		list: func(context.Context, string) ([]models.Click, error) {
			return nil, errors.New("clicker down")
		},
	}
	s := newService(t, users, nil, clicker, nil, 0)

	view := s.BuildView(context.Background(), "alice")
	require.Len(t, view.Codes, 1)
	require.Nil(t, view.Clicks)
}

func TestBuildView_AllUpstreamsDown_StillRenders(t *testing.T) {
	t.Parallel()

	users := &fakeUsers{
		list: func(context.Context) ([]models.UserRecord, error) {
			return nil, errors.New("users down")
		},
	}
	clicker := &fakeClicker{
		list: func(context.Context, string) ([]models.Click, error) {
			return nil, errors.New("clicker down")
		},
	}
	s := newService(t, users, nil, clicker, nil, 0)

	view := s.BuildView(context.Background(), "alice")
	require.Equal(t, "alice", view.Login)
	require.Nil(t, view.Codes)
	require.Nil(t, view.Clicks)
}
