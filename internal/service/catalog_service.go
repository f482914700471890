package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/klcse/faculty-option-api/internal/catalog"
	"github.com/klcse/faculty-option-api/internal/models"
	"github.com/klcse/faculty-option-api/internal/source"
	"github.com/klcse/faculty-option-api/pkg/config"
	appErrors "github.com/klcse/faculty-option-api/pkg/errors"
)

type cacheReader interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}

// CategoryView is one category with its courses, in catalog order.
type CategoryView struct {
	Category string                `json:"category"`
	Courses  []models.CourseRecord `json:"courses"`
}

// CatalogView is the grouped catalog returned to the selection screen.
type CatalogView struct {
	Cohort     string                  `json:"cohort"`
	Semester   *models.Semester        `json:"semester,omitempty"`
	Counts     map[models.Semester]int `json:"counts"`
	Categories []CategoryView          `json:"categories"`
}

// CatalogService loads, caches and indexes the cohort course catalog.
type CatalogService struct {
	fetcher *source.Fetcher
	cache   cacheReader
	cfg     config.CatalogConfig
	metrics *MetricsService
	logger  *zap.Logger
}

// NewCatalogService constructs the service. metrics may be nil.
func NewCatalogService(fetcher *source.Fetcher, cache cacheReader, cfg config.CatalogConfig, metrics *MetricsService, logger *zap.Logger) *CatalogService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogService{fetcher: fetcher, cache: cache, cfg: cfg, metrics: metrics, logger: logger}
}

// LoadCohort returns the concatenated course list for one cohort, served from
// cache when possible. Cache failures degrade to a fresh load, never to an
// error.
func (s *CatalogService) LoadCohort(ctx context.Context, cohort string) ([]models.CourseRecord, error) {
	key := cacheKey(cohort)

	if s.cache != nil {
		var cached []models.CourseRecord
		if err := s.cache.Get(ctx, key, &cached); err == nil {
			s.metrics.RecordCacheOperation(true)
			return cached, nil
		}
		s.metrics.RecordCacheOperation(false)
	}

	texts, err := s.fetcher.FetchAll(ctx, s.cfg.Sources)
	if err != nil {
		return nil, err
	}

	courses := catalog.ParseBatches(texts, cohort)
	if len(courses) == 0 {
		return nil, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("no courses found for cohort %s", cohort))
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, courses, s.cfg.CacheTTL); err != nil {
			s.logger.Warn("failed to cache catalog", zap.String("cohort", cohort), zap.Error(err))
		}
	}

	return courses, nil
}

// View builds the grouped catalog view, optionally restricted to one
// semester. Categories come back in lexicographic order.
func (s *CatalogService) View(ctx context.Context, cohort string, semesterFilter *models.Semester) (*CatalogView, error) {
	courses, err := s.LoadCohort(ctx, cohort)
	if err != nil {
		return nil, err
	}

	groups := catalog.BuildIndex(courses, semesterFilter)
	view := &CatalogView{
		Cohort:     cohort,
		Semester:   semesterFilter,
		Counts:     catalog.CountBySemester(courses),
		Categories: make([]CategoryView, 0, len(groups)),
	}
	for _, category := range groups.Categories() {
		view.Categories = append(view.Categories, CategoryView{
			Category: category,
			Courses:  groups[category],
		})
	}
	return view, nil
}

func cacheKey(cohort string) string {
	return "catalog:" + cohort
}
