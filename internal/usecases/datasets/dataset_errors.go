package datasets

import (
	"errors"
	"fmt"
)

var (
	ErrMissingFile     = errors.New("arquivo ausente")
	ErrInvalidFileType = errors.New("tipo de arquivo inválido")
	ErrMalformedInput  = errors.New("csv malformado")
	ErrMissingColumn   = errors.New("coluna obrigatória ausente")
	ErrNoValidRows     = errors.New("nenhuma linha válida")
	ErrPersistence     = errors.New("erro de persistência")
)

// DatasetError carrega o código de API e a mensagem para o cliente.
// Cause guarda o erro interno, que vai apenas para o log.
type DatasetError struct {
	Err     error
	Code    string
	Message string
	Details any
	Cause   error
}

func (e *DatasetError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Cause.Error())
	}
	return e.Err.Error()
}

func (e *DatasetError) Unwrap() error {
	return e.Err
}

func newDatasetError(baseErr error, code, message string) *DatasetError {
	return &DatasetError{
		Err:     baseErr,
		Code:    code,
		Message: message,
	}
}
