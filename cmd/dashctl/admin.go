package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

const adminPasswordEnv = "DASHCTL_ADMIN_PASSWORD"

func createAdminCmd(newAuthenticator authenticatorFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Cria um principal com role admin",
		Long: `Cria um principal admin. Não existe cadastro de admin pela API,
então este comando é o único caminho para o primeiro administrador.
A senha pode vir da flag --password ou da variável ` + adminPasswordEnv + `.`,
		Example: `  DASHCTL_ADMIN_PASSWORD=... dashctl create-admin --username root`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			username, err := cmd.Flags().GetString("username")
			if err != nil {
				return err
			}
			password, err := cmd.Flags().GetString("password")
			if err != nil {
				return err
			}
			if password == "" {
				password = os.Getenv(adminPasswordEnv)
			}

			authenticator, closeFn, err := newAuthenticator(cmd.Context())
			if err != nil {
				return errors.Wrap(err, "erro ao preparar autenticação")
			}
			defer closeFn()

			principal, err := authenticator.CreateAdmin(cmd.Context(), domain.Credentials{
				Username: username,
				Password: password,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "admin %q criado (id %d)\n", principal.Username, principal.ID)
			return nil
		},
	}

	cmd.Flags().String("username", "", "Username do administrador")
	cmd.Flags().String("password", "", "Senha do administrador (prefira "+adminPasswordEnv+")")
	_ = cmd.MarkFlagRequired("username")

	return cmd
}
