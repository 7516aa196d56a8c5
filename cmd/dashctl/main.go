package main

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

// connector carrega a configuração e abre a conexão; quem chama fecha a conexão
type connector func(ctx context.Context) (*config.Config, *postgres.Connection, error)

type authenticatorFactory func(ctx context.Context) (authenticating.Authenticator, func(), error)

func main() {
	if err := rootCmd(connect).Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd(open connector) *cobra.Command {
	root := &cobra.Command{
		Use:           "dashctl",
		Short:         "Ferramenta de operação do sales dashboard",
		SilenceUsage: true,
	}

	root.AddCommand(
		migrateCmd(open),
		createAdminCmd(func(ctx context.Context) (authenticating.Authenticator, func(), error) {
			cfg, conn, err := open(ctx)
			if err != nil {
				return nil, nil, err
			}
			return authenticating.NewService(repository.NewPrincipalRepository(conn), cfg.Auth), func() { _ = conn.Close() }, nil
		}),
	)

	return root
}

func connect(ctx context.Context) (*config.Config, *postgres.Connection, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, nil, err
	}

	if err := log.Configure(cfg.App.LogLevel, cfg.App.LogFormat); err != nil {
		logrus.WithError(err).Warn("Configuração de log inválida, mantendo padrão")
	}

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		return nil, nil, err
	}

	return cfg, conn, nil
}
