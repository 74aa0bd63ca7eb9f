package sqlite

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"

	"github.com/chenxi-arter/short-drama-api-sub001/pkg/storage"
	"github.com/chenxi-arter/short-drama-api-sub001/pkg/storage/sqlite/schema/gen/model"
	"github.com/chenxi-arter/short-drama-api-sub001/pkg/storage/sqlite/schema/gen/table"
)

// CreateEpisode stores a new episode in the database
func (s *SQLite) CreateEpisode(ctx context.Context, episode model.Episode) (int64, error) {
	insertColumns := table.Episode.MutableColumns.
		Except(table.Episode.CreatedAt, table.Episode.UpdatedAt)

	stmt := table.Episode.
		INSERT(insertColumns).
		MODEL(episode).
		RETURNING(table.Episode.ID)

	result, err := s.handleInsert(ctx, stmt)
	if err != nil {
		return 0, fmt.Errorf("failed to create episode: %w", err)
	}

	return result.LastInsertId()
}

// UpdateEpisode overwrites all mutable columns of an episode by id
func (s *SQLite) UpdateEpisode(ctx context.Context, episode model.Episode) error {
	episode.UpdatedAt = time.Now().UTC()

	updateColumns := table.Episode.MutableColumns.
		Except(table.Episode.CreatedAt)

	stmt := table.Episode.
		UPDATE(updateColumns).
		MODEL(episode).
		WHERE(table.Episode.ID.EQ(sqlite.Int32(episode.ID)))

	_, err := s.handleStatement(ctx, stmt)
	if err != nil {
		return fmt.Errorf("failed to update episode: %w", err)
	}

	return nil
}

// DeleteEpisode removes an episode by id; its urls cascade
func (s *SQLite) DeleteEpisode(ctx context.Context, id int64) error {
	stmt := table.Episode.
		DELETE().
		WHERE(table.Episode.ID.EQ(sqlite.Int64(id)))

	_, err := s.handleDelete(ctx, stmt)
	if err != nil {
		return fmt.Errorf("failed to delete episode: %w", err)
	}

	return nil
}

// GetEpisode gets an episode given a where condition
func (s *SQLite) GetEpisode(ctx context.Context, where sqlite.BoolExpression) (*model.Episode, error) {
	stmt := table.Episode.
		SELECT(table.Episode.AllColumns).
		FROM(table.Episode).
		WHERE(where)

	var episode model.Episode
	err := stmt.QueryContext(ctx, s.dbx, &episode)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get episode: %w", err)
	}

	return &episode, nil
}

// ListEpisodes lists episodes ordered by episode number
func (s *SQLite) ListEpisodes(ctx context.Context, where ...sqlite.BoolExpression) ([]*model.Episode, error) {
	stmt := table.Episode.
		SELECT(table.Episode.AllColumns).
		FROM(table.Episode).
		ORDER_BY(table.Episode.EpisodeNumber.ASC())

	for _, w := range where {
		stmt = stmt.WHERE(w)
	}

	episodes := make([]*model.Episode, 0)
	err := stmt.QueryContext(ctx, s.dbx, &episodes)
	if err != nil {
		return nil, fmt.Errorf("failed to list episodes: %w", err)
	}

	return episodes, nil
}
