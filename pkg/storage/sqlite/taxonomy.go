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

// GetTaxonomyOption looks up an option by type and case-folded name
func (s *SQLite) GetTaxonomyOption(ctx context.Context, optionType, nameFold string) (*model.TaxonomyOption, error) {
	stmt := table.TaxonomyOption.
		SELECT(table.TaxonomyOption.AllColumns).
		FROM(table.TaxonomyOption).
		WHERE(
			table.TaxonomyOption.Type.EQ(sqlite.String(optionType)).
				AND(table.TaxonomyOption.NameFold.EQ(sqlite.String(nameFold))),
		)

	var option model.TaxonomyOption
	err := stmt.QueryContext(ctx, s.dbx, &option)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get taxonomy option: %w", err)
	}

	return &option, nil
}

// ListTaxonomyOptions lists taxonomy options
func (s *SQLite) ListTaxonomyOptions(ctx context.Context, where ...sqlite.BoolExpression) ([]*model.TaxonomyOption, error) {
	stmt := table.TaxonomyOption.
		SELECT(table.TaxonomyOption.AllColumns).
		FROM(table.TaxonomyOption).
		ORDER_BY(table.TaxonomyOption.ID.ASC())

	for _, w := range where {
		stmt = stmt.WHERE(w)
	}

	options := make([]*model.TaxonomyOption, 0)
	err := stmt.QueryContext(ctx, s.dbx, &options)
	if err != nil {
		return nil, fmt.Errorf("failed to list taxonomy options: %w", err)
	}

	return options, nil
}

// CreateTaxonomyOption stores a new taxonomy option in the database
func (s *SQLite) CreateTaxonomyOption(ctx context.Context, option model.TaxonomyOption) (int64, error) {
	stmt := table.TaxonomyOption.
		INSERT(table.TaxonomyOption.MutableColumns).
		MODEL(option).
		RETURNING(table.TaxonomyOption.ID)

	result, err := s.handleInsert(ctx, stmt)
	if err != nil {
		return 0, fmt.Errorf("failed to create taxonomy option: %w", err)
	}

	return result.LastInsertId()
}
