package datasets

import (
	"context"
	"errors"
	"path/filepath"
	"strings"

	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

const uploadSuccessMessage = "File uploaded and processed successfully"

type Service interface {
	Upload(ctx context.Context, principal *domain.Principal, filename string, raw []byte) (*domain.UploadResult, error)
	MonthlySeries(ctx context.Context) (*domain.MonthlySeries, error)
}

type DatasetService struct {
	recordRepo      repository.RecordRepository
	newGenerationID func() (string, error)
}

func NewService(recordRepo repository.RecordRepository) Service {
	return &DatasetService{
		recordRepo:      recordRepo,
		newGenerationID: utils.GenerateID,
	}
}

// Upload normaliza o arquivo e substitui o dataset inteiro pela nova geração.
// Linhas com data inválida são recusadas e reportadas na resposta; se todas
// as linhas forem recusadas o dataset atual é mantido.
func (s *DatasetService) Upload(ctx context.Context, principal *domain.Principal, filename string, raw []byte) (*domain.UploadResult, error) {
	logger := log.ForContext(ctx)

	if err := validateFilename(filename); err != nil {
		return nil, err
	}

	dataset, err := Normalize(raw)
	if err != nil {
		logger.WithError(err).Warn("Arquivo recusado na normalização")

		if errors.Is(err, ErrMissingColumn) {
			return nil, &DatasetError{
				Err:     ErrMissingColumn,
				Code:    apiErrors.ErrMissingColumn,
				Message: "CSV must include a 'Date' column",
				Cause:   err,
			}
		}

		return nil, &DatasetError{
			Err:     ErrMalformedInput,
			Code:    apiErrors.ErrInvalidFormat,
			Message: "Invalid CSV file",
			Cause:   err,
		}
	}

	valid := make([]*domain.RecordCandidate, 0, len(dataset.Rows))
	rejectedLines := make([]int, 0)
	for _, row := range dataset.Rows {
		if !row.HasValidDate() {
			rejectedLines = append(rejectedLines, row.Line)
			continue
		}
		valid = append(valid, row)
	}

	if len(dataset.Rows) > 0 && len(valid) == 0 {
		dsErr := newDatasetError(ErrNoValidRows, apiErrors.ErrInvalidFormat, "No rows with a valid date")
		dsErr.Details = map[string]any{"rejected_lines": rejectedLines}
		return nil, dsErr
	}

	generationID, err := s.newGenerationID()
	if err != nil {
		dsErr := newDatasetError(ErrPersistence, apiErrors.ErrInternalServer, "Error processing file")
		dsErr.Cause = err
		return nil, dsErr
	}

	persisted, err := s.recordRepo.ReplaceAll(ctx, generationID, valid)
	if err != nil {
		logger.WithError(err).WithField("generation_id", generationID).Error("Erro ao substituir dataset")

		dsErr := newDatasetError(ErrPersistence, apiErrors.ErrDatabaseOperation, "Error processing file")
		dsErr.Cause = err

		var violation *repository.RowViolationError
		if errors.As(err, &violation) {
			dsErr.Details = map[string]any{"line": violation.Line, "field": violation.Field}
		}
		return nil, dsErr
	}

	fields := log.Fields{
		"generation_id":      generationID,
		"original_rows":      dataset.OriginalCount,
		"duplicates_removed": dataset.DuplicatesRemoved,
		"rejected_rows":      len(rejectedLines),
		"persisted_rows":     persisted,
	}
	if principal != nil {
		fields["user_id"] = principal.ID
	}
	logger.WithFields(fields).Info("Dataset substituído")

	return &domain.UploadResult{
		Message:           uploadSuccessMessage,
		OriginalRows:      dataset.OriginalCount,
		DuplicatesRemoved: dataset.DuplicatesRemoved,
		ProcessedRows:     len(dataset.Rows),
		Columns:           dataset.Columns,
		RejectedRows:      len(rejectedLines),
		RejectedLines:     rejectedLines,
		PersistedRows:     persisted,
		Generation:        generationID,
	}, nil
}

func (s *DatasetService) MonthlySeries(ctx context.Context) (*domain.MonthlySeries, error) {
	records, err := s.recordRepo.AllRows(ctx)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao ler dataset")

		dsErr := newDatasetError(ErrPersistence, apiErrors.ErrDatabaseOperation, "Error retrieving data")
		dsErr.Cause = err
		return nil, dsErr
	}

	return AggregateByMonth(records), nil
}

func validateFilename(filename string) error {
	name := strings.TrimSpace(filename)
	if name == "" {
		return newDatasetError(ErrMissingFile, apiErrors.ErrMissingRequiredData, "No selected file")
	}

	if !strings.EqualFold(filepath.Ext(name), ".csv") {
		return newDatasetError(ErrInvalidFileType, apiErrors.ErrInvalidFileType, "Invalid file type. Please upload a CSV file.")
	}

	return nil
}
