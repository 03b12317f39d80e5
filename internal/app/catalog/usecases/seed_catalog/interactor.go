package seed_catalog

import (
	"context"

	contracts "github.com/murkotick/storefront-service/internal/app/catalog/contracts"
	commitplan "github.com/murkotick/storefront-service/internal/pkg/committer"
)

// Result reports what a seed run wrote.
type Result struct {
	Categories int
	Products   int
}

// Interactor copies a catalog from one source into the Spanner catalog tables
// in a single commit.
type Interactor struct {
	Source       contracts.CatalogSource
	ProductRepo  contracts.ProductRepo
	CategoryRepo contracts.CategoryRepo
	Committer    contracts.Committer
}

// NewInteractor constructs the interactor.
func NewInteractor(src contracts.CatalogSource, prodRepo contracts.ProductRepo, catRepo contracts.CategoryRepo, committer contracts.Committer) *Interactor {
	return &Interactor{
		Source:       src,
		ProductRepo:  prodRepo,
		CategoryRepo: catRepo,
		Committer:    committer,
	}
}

// Execute loads the source catalog and upserts every category and product,
// keeping their order in the position column.
func (it *Interactor) Execute(ctx context.Context) (Result, error) {
	// 1. Load and validate the source catalog
	catalog, err := it.Source.Load(ctx)
	if err != nil {
		return Result{}, err
	}

	// 2. Build commit plan
	plan := commitplan.NewPlan()

	// 3. Category rows
	categories := catalog.Categories()
	for i, c := range categories {
		plan.Add(it.CategoryRepo.UpsertMut(c, i))
	}

	// 4. Product rows
	products := catalog.Products()
	for i, p := range products {
		m, err := it.ProductRepo.UpsertMut(p, i)
		if err != nil {
			return Result{}, err
		}
		plan.Add(m)
	}

	// 5. Apply plan via Committer
	if err := it.Committer.Apply(ctx, plan); err != nil {
		return Result{}, err
	}

	return Result{Categories: len(categories), Products: len(products)}, nil
}
