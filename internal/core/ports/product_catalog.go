package ports

import "context"

// ProductCatalog is the read side of the external product catalog.
// The back-office only ever needs the number of products.
type ProductCatalog interface {
	Count(ctx context.Context) (int64, error)
}
