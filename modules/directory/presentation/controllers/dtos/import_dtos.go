package dtos

import (
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/refilllocal/directory/modules/directory/domain/entities/review"
	"github.com/refilllocal/directory/modules/directory/domain/entities/store"
	"github.com/refilllocal/directory/modules/directory/importing"
	"github.com/refilllocal/directory/pkg/constants"
)

// ImportResultResponse is the JSON body of a validation step. The client holds
// on to validForImport and posts the operator-selected subset back on commit.
type ImportResultResponse struct {
	TotalRowsProcessed  int                       `json:"totalRowsProcessed"`
	ValidForImportCount int                       `json:"validForImportCount"`
	DuplicateCount      int                       `json:"duplicateCount"`
	ErrorCount          int                       `json:"errorCount"`
	ValidForImport      any                       `json:"validForImport"`
	Duplicates          []importing.DuplicateRow  `json:"duplicates"`
	Errors              []importing.RowError      `json:"errors"`
}

func NewImportResultResponse[T any](result *importing.Result[T]) *ImportResultResponse {
	return &ImportResultResponse{
		TotalRowsProcessed:  result.Total,
		ValidForImportCount: len(result.Valid),
		DuplicateCount:      len(result.Duplicates),
		ErrorCount:          len(result.Errors),
		ValidForImport:      result.Valid,
		Duplicates:          result.Duplicates,
		Errors:              result.Errors,
	}
}

type CommitResponse struct {
	Message       string `json:"message"`
	ImportedCount int64  `json:"importedCount"`
}

type StoreCommitDTO struct {
	StoresToImport []*store.CreateDTO `json:"storesToImport" validate:"required,min=1,dive,required"`
	TargetCityID   uuid.UUID          `json:"targetCityId" validate:"required"`
}

type ReviewCommitDTO struct {
	ReviewsToImport []*review.CreateDTO `json:"reviewsToImport" validate:"required,min=1,dive,required"`
}

func (d *StoreCommitDTO) Ok() (map[string]string, bool) {
	return validateStruct(d)
}

func (d *ReviewCommitDTO) Ok() (map[string]string, bool) {
	return validateStruct(d)
}

func validateStruct(v any) (map[string]string, bool) {
	errorMessages := map[string]string{}
	errs := constants.Validate.Struct(v)
	if errs == nil {
		return errorMessages, true
	}
	for _, err := range errs.(validator.ValidationErrors) {
		errorMessages[err.Field()] = err.Tag()
	}
	return errorMessages, len(errorMessages) == 0
}
