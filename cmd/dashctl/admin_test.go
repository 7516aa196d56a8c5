package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func factoryFor(auth authenticating.Authenticator, closed *bool) authenticatorFactory {
	return func(context.Context) (authenticating.Authenticator, func(), error) {
		return auth, func() { *closed = true }, nil
	}
}

func TestCreateAdmin(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := mocks.NewMockAuthenticator(ctrl)
	auth.EXPECT().
		CreateAdmin(gomock.Any(), domain.Credentials{Username: "root", Password: "pw"}).
		Return(&domain.Principal{ID: 9, Username: "root", Role: domain.RoleAdmin}, nil)

	var closed bool
	cmd := createAdminCmd(factoryFor(auth, &closed))
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--username", "root", "--password", "pw"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), `admin "root" criado (id 9)`)
	assert.True(t, closed)
}

func TestCreateAdmin_PasswordFromEnv(t *testing.T) {
	t.Setenv(adminPasswordEnv, "from-env")

	ctrl := gomock.NewController(t)
	auth := mocks.NewMockAuthenticator(ctrl)
	auth.EXPECT().
		CreateAdmin(gomock.Any(), domain.Credentials{Username: "root", Password: "from-env"}).
		Return(&domain.Principal{ID: 1, Username: "root", Role: domain.RoleAdmin}, nil)

	var closed bool
	cmd := createAdminCmd(factoryFor(auth, &closed))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--username", "root"})

	require.NoError(t, cmd.Execute())
}

func TestCreateAdmin_Duplicate(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := mocks.NewMockAuthenticator(ctrl)
	auth.EXPECT().
		CreateAdmin(gomock.Any(), gomock.Any()).
		Return(nil, authenticating.NewAuthError(authenticating.ErrUserAlreadyExists, apiErrors.ErrUserAlreadyExists, "Username already exists"))

	var closed bool
	cmd := createAdminCmd(factoryFor(auth, &closed))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--username", "root", "--password", "pw"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.ErrorIs(t, err, authenticating.ErrUserAlreadyExists)
}

func TestCreateAdmin_RequiresUsername(t *testing.T) {
	cmd := createAdminCmd(func(context.Context) (authenticating.Authenticator, func(), error) {
		return nil, nil, errors.New("não deveria conectar")
	})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--password", "pw"})

	assert.Error(t, cmd.Execute())
}

func TestRootCmd_HasSubcommands(t *testing.T) {
	root := rootCmd(func(context.Context) (*config.Config, *postgres.Connection, error) {
		return nil, nil, errors.New("sem banco")
	})

	names := make([]string, 0)
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"migrate", "create-admin"}, names)

	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"migrate", "up"})
	assert.EqualError(t, root.Execute(), "sem banco")
}
