package model

import (
	"fmt"

	"github.com/google/uuid"
)

// ListCacheKey is the cache key for an owner's full book aggregate (books
// with nested copies, manual order). Every write path must invalidate it.
func ListCacheKey(ownerID uuid.UUID) string {
	return fmt.Sprintf("books:list:%s", ownerID)
}
