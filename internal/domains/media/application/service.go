package application

import (
	"context"
	"log/slog"

	"github.com/nexashop/storefront/internal/domains/media/domain"
	"github.com/nexashop/storefront/internal/domains/media/ports"
)

// Service validates and stores product images.
type Service struct {
	store  ports.ObjectStore
	logger *slog.Logger
}

func NewService(store ports.ObjectStore, logger *slog.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// UploadImages processes each file independently. Invalid files are rejected
// before any bytes are sent to storage.
func (s *Service) UploadImages(ctx context.Context, files []ports.File) ports.Outcome {
	outcome := ports.Outcome{Results: make([]ports.FileResult, 0, len(files))}
	for _, file := range files {
		result := ports.FileResult{Name: file.Name}
		if err := domain.ValidateUpload(file.ContentType, file.Size); err != nil {
			result.Err = err
			s.logWarn(ctx, "upload rejected", file.Name, err)
			outcome.Results = append(outcome.Results, result)
			continue
		}
		url, err := s.store.Put(ctx, domain.ObjectName(file.Name), file.ContentType, file.Reader)
		if err != nil {
			result.Err = err
			s.logWarn(ctx, "upload failed", file.Name, err)
			outcome.Results = append(outcome.Results, result)
			continue
		}
		result.URL = url
		outcome.Results = append(outcome.Results, result)
		outcome.Succeeded++
	}
	return outcome
}

func (s *Service) logWarn(ctx context.Context, msg, fileName string, err error) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelWarn, msg, slog.String("file", fileName), slog.String("error", err.Error()))
}

var _ ports.Service = (*Service)(nil)
