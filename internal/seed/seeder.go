package seed

import (
	"context"
	"fmt"

	"learn2drive/internal/domain"

	"go.uber.org/zap"
)

// Result reports what a seeding run did for one assessment kind.
type Result struct {
	Kind    domain.AssessmentKind
	Groups  int
	Items   int
	Skipped bool
}

// Seeder inserts catalog content for every kind whose catalog is still empty.
type Seeder struct {
	catalog domain.CatalogRepository
	tx      domain.TransactionManager
	log     *zap.Logger
}

func NewSeeder(catalog domain.CatalogRepository, tx domain.TransactionManager, log *zap.Logger) *Seeder {
	if log == nil {
		log = zap.NewNop()
	}
	return &Seeder{catalog: catalog, tx: tx, log: log}
}

var seedOrder = []domain.AssessmentKind{domain.KindQuiz, domain.KindRoadSign, domain.KindDrivingTest}

// Run seeds each kind in its own transaction. A kind that already has items is
// left untouched, so running twice is harmless.
func (s *Seeder) Run(ctx context.Context, c *Catalog) ([]Result, error) {
	groups := c.Groups()
	results := make([]Result, 0, len(seedOrder))

	for _, kind := range seedOrder {
		count, err := s.catalog.CountItems(ctx, kind)
		if err != nil {
			return results, fmt.Errorf("failed to count %s items: %w", kind, err)
		}
		if count > 0 {
			s.log.Info("Catalog already seeded, skipping", zap.String("kind", string(kind)), zap.Int("items", count))
			results = append(results, Result{Kind: kind, Skipped: true})
			continue
		}

		res := Result{Kind: kind}
		err = s.tx.WithTransaction(ctx, func(ctx context.Context) error {
			for _, g := range groups[kind] {
				group := g.Group
				if err := s.catalog.SaveGroup(ctx, &group); err != nil {
					return err
				}
				res.Groups++
				for _, item := range g.Items {
					item := item
					if err := s.catalog.SaveItem(ctx, &item); err != nil {
						return fmt.Errorf("group %s: %w", group.Key, err)
					}
					res.Items++
				}
			}
			return nil
		})
		if err != nil {
			s.log.Error("Seeding failed, transaction rolled back", zap.String("kind", string(kind)), zap.Error(err))
			return results, err
		}

		s.log.Info("Seeded catalog",
			zap.String("kind", string(kind)),
			zap.Int("groups", res.Groups),
			zap.Int("items", res.Items))
		results = append(results, res)
	}
	return results, nil
}
