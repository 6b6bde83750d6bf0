package postgres

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Graphi-api/internal/domain/repository"
)

func TestBuildSaleWhere_Empty(t *testing.T) {
	where, args := buildSaleWhere(repository.SaleFilter{})
	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestBuildSaleWhere_AllFields(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)
	where, args := buildSaleWhere(repository.SaleFilter{
		StoreID:   "st",
		ProductID: "pr",
		GroupID:   "gr",
		BrandID:   "br",
		Category:  "electronics",
		From:      &from,
		To:        &to,
	})

	assert.Equal(t,
		" WHERE s.store_id = $1 AND s.product_id = $2 AND p.group_id = $3 AND p.brand_id = $4"+
			" AND p.category = $5 AND s.made_at >= $6 AND s.made_at <= $7",
		where)
	assert.Equal(t, []any{"st", "pr", "gr", "br", "electronics", from, to}, args)
}

func TestBuildSaleWhere_PlaceholdersFollowPresentFields(t *testing.T) {
	where, args := buildSaleWhere(repository.SaleFilter{StoreID: "st", Category: "fashion"})
	assert.Equal(t, " WHERE s.store_id = $1 AND p.category = $2", where)
	assert.Equal(t, []any{"st", "fashion"}, args)
}
