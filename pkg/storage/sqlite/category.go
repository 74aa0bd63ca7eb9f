package sqlite

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"

	"github.com/chenxi-arter/short-drama-api-sub001/pkg/storage"
	"github.com/chenxi-arter/short-drama-api-sub001/pkg/storage/sqlite/schema/gen/model"
	"github.com/chenxi-arter/short-drama-api-sub001/pkg/storage/sqlite/schema/gen/table"
)

// GetCategory gets a category by id
func (s *SQLite) GetCategory(ctx context.Context, id int64) (*model.Category, error) {
	stmt := table.Category.
		SELECT(table.Category.AllColumns).
		FROM(table.Category).
		WHERE(table.Category.ID.EQ(sqlite.Int64(id)))

	var category model.Category
	err := stmt.QueryContext(ctx, s.dbx, &category)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	return &category, nil
}

// ListCategories lists all categories
func (s *SQLite) ListCategories(ctx context.Context) ([]*model.Category, error) {
	stmt := table.Category.
		SELECT(table.Category.AllColumns).
		FROM(table.Category).
		ORDER_BY(table.Category.ID.ASC())

	categories := make([]*model.Category, 0)
	err := stmt.QueryContext(ctx, s.dbx, &categories)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	return categories, nil
}
