package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

//go:generate mockgen -source=record.go -destination=mocks/mock_record.go -package=mocks

const (
	recordsTable = "records"

	// SHARE ROW EXCLUSIVE conflita consigo mesmo mas não com ACCESS SHARE:
	// uploads concorrentes são serializados e SELECTs continuam vendo a
	// geração anterior até o commit.
	lockRecordsSQL = "LOCK TABLE records IN SHARE ROW EXCLUSIVE MODE"
)

var recordColumns = []string{"generation_id", "date", "month", "quantity", "price", "sales"}

type RecordRepository interface {
	ReplaceAll(ctx context.Context, generationID string, rows []*domain.RecordCandidate) (int64, error)
	AllRows(ctx context.Context) ([]*domain.Record, error)
}

type recordRepository struct {
	conn postgres.Conn
}

func NewRecordRepository(conn postgres.Conn) RecordRepository {
	return &recordRepository{
		conn: conn,
	}
}

// ReplaceAll substitui a geração atual inteira. Linhas sem os campos
// obrigatórios são recusadas antes de abrir a transação, então nenhum
// registro é alterado nesse caso.
func (r *recordRepository) ReplaceAll(ctx context.Context, generationID string, rows []*domain.RecordCandidate) (int64, error) {
	records, err := toRecords(generationID, rows)
	if err != nil {
		return 0, err
	}

	err = r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, lockRecordsSQL); err != nil {
			return errors.Wrap(err, "erro ao bloquear tabela de registros")
		}

		deleteSQL, deleteArgs, err := squirrel.
			Delete(recordsTable).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return errors.Wrap(err, "erro ao construir remoção de registros")
		}

		if _, err := tx.ExecContext(ctx, deleteSQL, deleteArgs...); err != nil {
			return errors.Wrap(err, "erro ao remover geração anterior")
		}

		return copyRecords(ctx, tx, records)
	})
	if err != nil {
		return 0, err
	}

	return int64(len(records)), nil
}

func copyRecords(ctx context.Context, tx *sql.Tx, records []*domain.Record) error {
	if len(records) == 0 {
		return nil
	}

	stmt, err := tx.PrepareContext(ctx, pq.CopyIn(recordsTable, recordColumns...))
	if err != nil {
		return errors.Wrap(err, "erro ao preparar COPY de registros")
	}
	defer stmt.Close()

	for _, rec := range records {
		_, err := stmt.ExecContext(ctx,
			rec.GenerationID,
			rec.Date,
			rec.Month,
			rec.Quantity,
			rec.Price,
			rec.Sales,
		)
		if err != nil {
			return errors.Wrap(err, "erro ao enviar registro para COPY")
		}
	}

	if _, err := stmt.ExecContext(ctx); err != nil {
		return errors.Wrap(err, "erro ao finalizar COPY de registros")
	}

	return nil
}

func toRecords(generationID string, rows []*domain.RecordCandidate) ([]*domain.Record, error) {
	records := make([]*domain.Record, 0, len(rows))
	for _, row := range rows {
		switch {
		case row.Date == nil:
			return nil, &RowViolationError{Line: row.Line, Field: "date"}
		case row.Quantity == nil:
			return nil, &RowViolationError{Line: row.Line, Field: "quantity"}
		case row.Price == nil:
			return nil, &RowViolationError{Line: row.Line, Field: "price"}
		case row.Sales == nil:
			return nil, &RowViolationError{Line: row.Line, Field: "sales"}
		}

		records = append(records, &domain.Record{
			GenerationID: generationID,
			Date:         *row.Date,
			Month:        domain.MonthOf(*row.Date),
			Quantity:     *row.Quantity,
			Price:        *row.Price,
			Sales:        *row.Sales,
		})
	}

	return records, nil
}

func (r *recordRepository) AllRows(ctx context.Context) ([]*domain.Record, error) {
	query, args, err := squirrel.
		Select("id", "generation_id", "date", "month", "quantity", "price", "sales", "created_at").
		From(recordsTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir consulta de registros")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao consultar registros")
	}
	defer rows.Close()

	records := make([]*domain.Record, 0)
	for rows.Next() {
		var rec domain.Record
		if err := rows.Scan(
			&rec.ID,
			&rec.GenerationID,
			&rec.Date,
			&rec.Month,
			&rec.Quantity,
			&rec.Price,
			&rec.Sales,
			&rec.CreatedAt,
		); err != nil {
			return nil, errors.Wrap(err, "erro ao ler registro")
		}
		records = append(records, &rec)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante iteração de registros")
	}

	return records, nil
}
