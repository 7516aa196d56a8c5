package handler

import (
	"io"
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/datasets"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
	"github.com/vfg2006/sales-dashboard-api/pkg/middleware"
)

const uploadFormField = "file"

// UploadDataset recebe o CSV em multipart/form-data no campo "file"
func UploadDataset(service datasets.Service, maxBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		auth := middleware.RequireRole(r, domain.RoleAdmin)
		if !auth.Allowed() {
			auth.Deny(w)
			return
		}

		if err := r.ParseMultipartForm(maxBytes); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				apiErrors.WriteError(w, apiErrors.ErrPayloadTooLarge, "File exceeds the upload size limit", map[string]any{"max_bytes": tooLarge.Limit})
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Expected a multipart form upload", nil)
			return
		}
		defer r.MultipartForm.RemoveAll()

		file, header, err := r.FormFile(uploadFormField)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "No file part in the request", nil)
			return
		}
		defer file.Close()

		raw, err := io.ReadAll(file)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao ler arquivo enviado")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Could not read uploaded file", nil)
			return
		}

		result, err := service.Upload(r.Context(), auth.Principal, header.Filename, raw)
		if err != nil {
			handleDatasetError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, result)
	}
}

func GetMonthlySeries(service datasets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if auth := middleware.RequireRole(r, domain.RoleAdmin); !auth.Allowed() {
			auth.Deny(w)
			return
		}

		series, err := service.MonthlySeries(r.Context())
		if err != nil {
			handleDatasetError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, series)
	}
}

func handleDatasetError(w http.ResponseWriter, r *http.Request, err error) {
	var dsErr *datasets.DatasetError
	if errors.As(err, &dsErr) {
		apiErrors.WriteError(w, dsErr.Code, dsErr.Message, dsErr.Details)
		return
	}

	log.ForContext(r.Context()).WithError(err).Error("Erro inesperado no dataset")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Internal server error", nil)
}
