package main

import (
	"github.com/spf13/cobra"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/database/postgres"
)

func migrateCmd(open connector) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Aplica ou desfaz as migrações do banco",
	}

	up := &cobra.Command{
		Use:   "up",
		Short: "Aplica todas as migrações pendentes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, conn, err := open(cmd.Context())
			if err != nil {
				return err
			}
			defer conn.Close()

			return postgres.MigrateUp(conn)
		},
	}

	down := &cobra.Command{
		Use:   "down",
		Short: "Desfaz migrações",
		Example: `  # desfaz apenas a última migração
  dashctl migrate down

  # desfaz as duas últimas
  dashctl migrate down --steps 2`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			steps, err := cmd.Flags().GetInt("steps")
			if err != nil {
				return err
			}

			_, conn, err := open(cmd.Context())
			if err != nil {
				return err
			}
			defer conn.Close()

			return postgres.MigrateDown(conn, steps)
		},
	}
	down.Flags().Int("steps", 1, "Quantidade de migrações a desfazer")

	cmd.AddCommand(up, down)

	return cmd
}
