package auth

import (
	"context"

	commonerrors "github.com/akovalyov/authcore/internal/common/errors"
	userdomain "github.com/akovalyov/authcore/internal/user/domain"
)

type mockIDGenerator struct {
	newIDFunc func() (string, error)
}

func (m *mockIDGenerator) NewID() (string, error) {
	if m.newIDFunc != nil {
		return m.newIDFunc()
	}
	return "jti-fixed", nil
}

type mockUserLookup struct {
	findByIDFunc func(ctx context.Context, id userdomain.ID) (userdomain.User, error)
	calls        int
}

func (m *mockUserLookup) FindByID(ctx context.Context, id userdomain.ID) (userdomain.User, error) {
	m.calls++
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return userdomain.User{}, commonerrors.ErrUserNotFound
}
