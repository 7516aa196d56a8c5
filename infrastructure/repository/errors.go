package repository

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
)

const uniqueViolationCode = "23505"

var (
	ErrUniqueViolation = errors.New("registro duplicado")
	ErrRequiredField   = errors.New("campo obrigatório ausente ou inválido")
)

// RowViolationError identifica a linha do arquivo que não pode ser persistida
type RowViolationError struct {
	Line  int
	Field string
}

func (e *RowViolationError) Error() string {
	return fmt.Sprintf("linha %d: %s: %s", e.Line, e.Field, ErrRequiredField.Error())
}

func (e *RowViolationError) Unwrap() error {
	return ErrRequiredField
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolationCode
}
