package controllers

import (
	"context"
	"net/http"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/refilllocal/directory/modules/directory/domain/entities/review"
	"github.com/refilllocal/directory/modules/directory/domain/entities/store"
	"github.com/refilllocal/directory/modules/directory/importing"
	"github.com/refilllocal/directory/modules/directory/presentation/controllers/dtos"
	"github.com/refilllocal/directory/modules/directory/services"
	"github.com/refilllocal/directory/pkg/composables"
	"github.com/refilllocal/directory/pkg/configuration"
	"github.com/refilllocal/directory/pkg/httpapi"
	"github.com/refilllocal/directory/pkg/middleware"
	"github.com/refilllocal/directory/pkg/spreadsheet"
)

type StoreImporter interface {
	Validate(ctx context.Context, sheet *spreadsheet.Sheet) (*importing.Result[*store.CreateDTO], error)
	Commit(ctx context.Context, items []*store.CreateDTO, cityID uuid.UUID) (int64, error)
}

type ReviewImporter interface {
	Validate(ctx context.Context, sheet *spreadsheet.Sheet) (*importing.Result[*review.CreateDTO], error)
	Commit(ctx context.Context, items []*review.CreateDTO) (int64, error)
}

type ImportController struct {
	stores   StoreImporter
	reviews  ReviewImporter
	auth     *services.AuthService
	basePath string
}

func NewImportController(stores StoreImporter, reviews ReviewImporter, auth *services.AuthService) *ImportController {
	return &ImportController{
		stores:   stores,
		reviews:  reviews,
		auth:     auth,
		basePath: "/import",
	}
}

func (c *ImportController) Key() string {
	return c.basePath
}

func (c *ImportController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.Use(
		middleware.Authorize(c.auth),
		middleware.RequireAdmin(),
	)
	router.HandleFunc("/stores", c.ValidateStores).Methods(http.MethodPost)
	router.HandleFunc("/stores/commit", c.CommitStores).Methods(http.MethodPost)
	router.HandleFunc("/reviews", c.ValidateReviews).Methods(http.MethodPost)
	router.HandleFunc("/reviews/commit", c.CommitReviews).Methods(http.MethodPost)
}

func (c *ImportController) ValidateStores(w http.ResponseWriter, r *http.Request) {
	sheet, ok := c.uploadedSheet(w, r)
	if !ok {
		return
	}
	result, err := c.stores.Validate(r.Context(), sheet)
	if err != nil {
		writeImportError(w, r, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, dtos.NewImportResultResponse(result))
}

func (c *ImportController) CommitStores(w http.ResponseWriter, r *http.Request) {
	dto := &dtos.StoreCommitDTO{}
	if err := httpapi.DecodeJSON(r, dto); err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "INVALID_BODY", "request body is not valid JSON", nil)
		return
	}
	if messages, ok := dto.Ok(); !ok {
		httpapi.WriteError(w, http.StatusBadRequest, "VALIDATION_ERROR", "request body failed validation", messages)
		return
	}
	count, err := c.stores.Commit(r.Context(), dto.StoresToImport, dto.TargetCityID)
	if err != nil {
		writeImportError(w, r, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, dtos.CommitResponse{
		Message:       "Stores imported successfully",
		ImportedCount: count,
	})
}

func (c *ImportController) ValidateReviews(w http.ResponseWriter, r *http.Request) {
	sheet, ok := c.uploadedSheet(w, r)
	if !ok {
		return
	}
	result, err := c.reviews.Validate(r.Context(), sheet)
	if err != nil {
		writeImportError(w, r, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, dtos.NewImportResultResponse(result))
}

func (c *ImportController) CommitReviews(w http.ResponseWriter, r *http.Request) {
	dto := &dtos.ReviewCommitDTO{}
	if err := httpapi.DecodeJSON(r, dto); err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "INVALID_BODY", "request body is not valid JSON", nil)
		return
	}
	if messages, ok := dto.Ok(); !ok {
		httpapi.WriteError(w, http.StatusBadRequest, "VALIDATION_ERROR", "request body failed validation", messages)
		return
	}
	count, err := c.reviews.Commit(r.Context(), dto.ReviewsToImport)
	if err != nil {
		writeImportError(w, r, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, dtos.CommitResponse{
		Message:       "Reviews imported successfully",
		ImportedCount: count,
	})
}

// uploadedSheet parses the multipart upload and reads the workbook out of the
// "file" field. It writes the error response itself so handlers can bail with
// a plain return.
func (c *ImportController) uploadedSheet(w http.ResponseWriter, r *http.Request) (*spreadsheet.Sheet, bool) {
	conf := configuration.Use()
	r.Body = http.MaxBytesReader(w, r.Body, conf.MaxUploadSize)
	if err := r.ParseMultipartForm(conf.MaxUploadMemory); err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "INVALID_UPLOAD", "expected a multipart form upload", nil)
		return nil, false
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "FILE_REQUIRED", "form field \"file\" is required", nil)
		return nil, false
	}
	defer file.Close()
	sheet, err := spreadsheet.Read(file)
	if err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "INVALID_FILE", err.Error(), nil)
		return nil, false
	}
	return sheet, true
}

func writeImportError(w http.ResponseWriter, r *http.Request, err error) {
	var missing *importing.MissingColumnsError
	switch {
	case errors.As(err, &missing):
		httpapi.WriteError(w, http.StatusBadRequest, "MISSING_COLUMNS", missing.Error(), nil)
	case errors.Is(err, services.ErrEmptyImport):
		httpapi.WriteError(w, http.StatusBadRequest, "EMPTY_IMPORT", err.Error(), nil)
	case errors.Is(err, services.ErrCityRequired):
		httpapi.WriteError(w, http.StatusBadRequest, "CITY_REQUIRED", err.Error(), nil)
	case errors.Is(err, services.ErrCityNotFound):
		httpapi.WriteError(w, http.StatusBadRequest, "CITY_NOT_FOUND", err.Error(), nil)
	case errors.Is(err, composables.ErrNoOperator):
		httpapi.WriteError(w, http.StatusUnauthorized, "UNAUTHORIZED", "authentication required", nil)
	case errors.Is(err, services.ErrNotAdmin):
		httpapi.WriteError(w, http.StatusForbidden, "FORBIDDEN", err.Error(), nil)
	default:
		composables.UseLogger(r.Context()).WithError(err).Error("import request failed")
		httpapi.WriteError(w, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "internal server error", nil)
	}
}
