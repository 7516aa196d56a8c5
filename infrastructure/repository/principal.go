package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

//go:generate mockgen -source=principal.go -destination=mocks/mock_principal.go -package=mocks

const (
	principalsTable = "principals"
)

type PrincipalRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.Principal, error)
	Insert(ctx context.Context, principal *domain.Principal) (*domain.Principal, error)
}

type principalRepository struct {
	conn postgres.Conn
}

func NewPrincipalRepository(conn postgres.Conn) PrincipalRepository {
	return &principalRepository{
		conn: conn,
	}
}

// FindByUsername retorna nil, nil quando o usuário não existe
func (r *principalRepository) FindByUsername(ctx context.Context, username string) (*domain.Principal, error) {
	query, args, err := squirrel.
		Select("id", "username", "password_hash", "role", "created_at").
		From(principalsTable).
		Where(squirrel.Eq{"username": username}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir consulta de principal")
	}

	var (
		principal domain.Principal
		role      string
	)
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&principal.ID,
		&principal.Username,
		&principal.PasswordHash,
		&role,
		&principal.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao buscar principal %q", username)
	}

	principal.Role = domain.Role(role)

	return &principal, nil
}

// Insert grava o principal e preenche ID e CreatedAt. Username repetido
// retorna ErrUniqueViolation sem alterar o registro existente.
func (r *principalRepository) Insert(ctx context.Context, principal *domain.Principal) (*domain.Principal, error) {
	query, args, err := squirrel.
		Insert(principalsTable).
		Columns("username", "password_hash", "role").
		Values(principal.Username, principal.PasswordHash, string(principal.Role)).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir inserção de principal")
	}

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&principal.ID, &principal.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrUniqueViolation
		}
		return nil, errors.Wrapf(err, "erro ao inserir principal %q", principal.Username)
	}

	return principal, nil
}
