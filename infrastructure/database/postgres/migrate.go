package postgres

import (
	"embed"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/sirupsen/logrus"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

func newMigrate(conn *Connection) (*migrate.Migrate, error) {
	driver, err := migratepg.WithInstance(conn.DB, &migratepg.Config{})
	if err != nil {
		return nil, fmt.Errorf("postgres: erro ao criar driver de migração: %w", err)
	}

	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return nil, fmt.Errorf("postgres: erro ao abrir migrações embutidas: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return nil, fmt.Errorf("postgres: erro ao criar instância de migração: %w", err)
	}

	return m, nil
}

// MigrateUp aplica todas as migrações pendentes. Não fecha a conexão
// recebida: o driver é descartado sem chamar m.Close().
func MigrateUp(conn *Connection) error {
	m, err := newMigrate(conn)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("postgres: erro ao aplicar migrações: %w", err)
	}

	version, dirty, _ := m.Version()
	logrus.WithFields(logrus.Fields{
		"version": version,
		"dirty":   dirty,
	}).Info("Migrações aplicadas")

	return nil
}

// MigrateDown desfaz a quantidade de passos informada
func MigrateDown(conn *Connection, steps int) error {
	if steps <= 0 {
		return fmt.Errorf("postgres: quantidade de passos inválida: %d", steps)
	}

	m, err := newMigrate(conn)
	if err != nil {
		return err
	}

	if err := m.Steps(-steps); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("postgres: erro ao desfazer migrações: %w", err)
	}

	return nil
}
