package catalog

import (
	"log/slog"
	"strings"

	"github.com/Dinh-Huu-Phuc/moviesAPIMVC/internal/config"
	"github.com/Dinh-Huu-Phuc/moviesAPIMVC/internal/core/domain"
	"github.com/Dinh-Huu-Phuc/moviesAPIMVC/internal/core/port"
)

type catalogService struct {
	uow       port.UnitOfWork
	uploadCfg config.UploadConfig
	logger    *slog.Logger
}

// NewCatalogService creates the movie/actor/studio service
func NewCatalogService(uow port.UnitOfWork, cfg config.UploadConfig, logger *slog.Logger) port.CatalogService {
	return &catalogService{
		uow:       uow,
		uploadCfg: cfg,
		logger:    logger,
	}
}

func validateMovie(movie *domain.Movie) []domain.FieldError {
	var fields []domain.FieldError

	if strings.TrimSpace(movie.Title) == "" {
		fields = append(fields, domain.FieldError{Field: "title", Message: "title is required"})
	}
	if movie.StudioID <= 0 {
		fields = append(fields, domain.FieldError{Field: "studioId", Message: "studioId is required"})
	}
	if movie.Rating != nil && (*movie.Rating < 1 || *movie.Rating > 10) {
		fields = append(fields, domain.FieldError{Field: "rating", Message: "rating must be between 1 and 10"})
	}
	return fields
}

// pageBounds turns one-based page arguments into a SQL offset/limit pair,
// clamping the same way the asset listing does.
func (s *catalogService) pageBounds(pageNumber, pageSize int) (offset, limit int) {
	if pageNumber < 1 {
		pageNumber = 1
	}
	if pageSize < 1 {
		pageSize = s.uploadCfg.DefaultPageSize
	}
	if pageSize > s.uploadCfg.MaxPageSize {
		pageSize = s.uploadCfg.MaxPageSize
	}
	return (pageNumber - 1) * pageSize, pageSize
}
