package court

import (
	"context"
	"log/slog"
	"slices"
	"strings"
)

type CourtRepository interface {
	GetActiveCourts(ctx context.Context) ([]Court, error)
}

type Service struct {
	repo   CourtRepository
	logger *slog.Logger
}

func NewService(repo CourtRepository) *Service {
	return &Service{repo: repo, logger: slog.Default().With("component", "court")}
}

// ListCourts returns the active courts, or the default list when the store
// is unreachable or empty.
func (s *Service) ListCourts(ctx context.Context) []Court {
	courts, err := s.repo.GetActiveCourts(ctx)

	if err != nil {
		s.logger.Warn("failed to load courts, serving defaults", "err", err)
	}

	if len(courts) == 0 {
		return defaults()
	}

	return courts
}

// IsKnown reports whether name matches an active court, ignoring case.
func (s *Service) IsKnown(ctx context.Context, name string) bool {
	return slices.ContainsFunc(s.ListCourts(ctx), func(c Court) bool {
		return strings.EqualFold(c.Name, strings.TrimSpace(name))
	})
}

func defaults() []Court {
	courts := make([]Court, 0, len(DefaultNames))

	for _, name := range DefaultNames {
		courts = append(courts, Court{Name: name, Active: true})
	}

	return courts
}
