package repositories

import (
	"context"

	"github.com/SscSPs/travel_desk_backend/internal/core/domain"
)

// ReferenceLookup answers existence checks against reference data
// (currencies, accounts, suppliers). Only active rows count.
type ReferenceLookup interface {
	Exists(ctx context.Context, kind domain.ReferenceKind, id int64) (bool, error)
}
