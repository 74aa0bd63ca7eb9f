package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/go-jet/jet/v2/sqlite"

	"github.com/chenxi-arter/short-drama-api-sub001/pkg/storage/sqlite/schema/gen/model"
	"github.com/chenxi-arter/short-drama-api-sub001/pkg/storage/sqlite/schema/gen/table"
)

// CreateEpisodeURL stores a new per-quality playback url in the database
func (s *SQLite) CreateEpisodeURL(ctx context.Context, url model.EpisodeURL) (int64, error) {
	insertColumns := table.EpisodeURL.MutableColumns.
		Except(table.EpisodeURL.CreatedAt, table.EpisodeURL.UpdatedAt)

	stmt := table.EpisodeURL.
		INSERT(insertColumns).
		MODEL(url).
		RETURNING(table.EpisodeURL.ID)

	result, err := s.handleInsert(ctx, stmt)
	if err != nil {
		return 0, fmt.Errorf("failed to create episode url: %w", err)
	}

	return result.LastInsertId()
}

// UpdateEpisodeURL overwrites all mutable columns of an episode url by id
func (s *SQLite) UpdateEpisodeURL(ctx context.Context, url model.EpisodeURL) error {
	url.UpdatedAt = time.Now().UTC()

	updateColumns := table.EpisodeURL.MutableColumns.
		Except(table.EpisodeURL.CreatedAt)

	stmt := table.EpisodeURL.
		UPDATE(updateColumns).
		MODEL(url).
		WHERE(table.EpisodeURL.ID.EQ(sqlite.Int32(url.ID)))

	_, err := s.handleStatement(ctx, stmt)
	if err != nil {
		return fmt.Errorf("failed to update episode url: %w", err)
	}

	return nil
}

// DeleteEpisodeURL removes an episode url by id
func (s *SQLite) DeleteEpisodeURL(ctx context.Context, id int64) error {
	stmt := table.EpisodeURL.
		DELETE().
		WHERE(table.EpisodeURL.ID.EQ(sqlite.Int64(id)))

	_, err := s.handleDelete(ctx, stmt)
	if err != nil {
		return fmt.Errorf("failed to delete episode url: %w", err)
	}

	return nil
}

// ListEpisodeURLs lists episode urls
func (s *SQLite) ListEpisodeURLs(ctx context.Context, where ...sqlite.BoolExpression) ([]*model.EpisodeURL, error) {
	stmt := table.EpisodeURL.
		SELECT(table.EpisodeURL.AllColumns).
		FROM(table.EpisodeURL).
		ORDER_BY(table.EpisodeURL.ID.ASC())

	for _, w := range where {
		stmt = stmt.WHERE(w)
	}

	urls := make([]*model.EpisodeURL, 0)
	err := stmt.QueryContext(ctx, s.dbx, &urls)
	if err != nil {
		return nil, fmt.Errorf("failed to list episode urls: %w", err)
	}

	return urls, nil
}
