package services

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/bruxa61/financas/internal/models"
	"github.com/bruxa61/financas/internal/repositories"
)

type categorySeeder struct {
	categoryRepo repositories.CategoryRepositoryInterface
	once         sync.Once
	seedErr      error
}

// NewCategorySeeder creates a new category seeder
func NewCategorySeeder(categoryRepo repositories.CategoryRepositoryInterface) CategorySeederInterface {
	return &categorySeeder{
		categoryRepo: categoryRepo,
	}
}

// EnsureDefaults inserts the default category catalog. It is safe to
// call from multiple goroutines and from repeated startups: seeding runs
// at most once per process, and categories that already exist are left
// alone rather than duplicated.
func (s *categorySeeder) EnsureDefaults() error {
	s.once.Do(func() {
		s.seedErr = s.seed()
	})
	return s.seedErr
}

func (s *categorySeeder) seed() error {
	seeded := 0

	for _, category := range models.DefaultCategories() {
		exists, err := s.categoryRepo.ExistsByName(category.Name)
		if err != nil {
			return fmt.Errorf("failed to check category %q: %w", category.Name, err)
		}
		if exists {
			continue
		}

		c := category
		if err := s.categoryRepo.Create(&c); err != nil {
			return fmt.Errorf("failed to seed category %q: %w", category.Name, err)
		}
		seeded++
	}

	slog.Info("default categories ensured", "seeded", seeded)
	return nil
}

func (s *categorySeeder) ListCategories() ([]models.Category, error) {
	categories, err := s.categoryRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	if categories == nil {
		categories = []models.Category{}
	}

	return categories, nil
}
