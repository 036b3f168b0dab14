package services

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/gestaoimob/desocupacao/internal/models"
)

type historyServiceImpl struct {
	logger zerolog.Logger
	pgPool *pgxpool.Pool
}

func NewHistoryService(
	logger zerolog.Logger,
	pgPool *pgxpool.Pool,
) HistoryService {
	return &historyServiceImpl{
		logger: logger,
		pgPool: pgPool,
	}
}

func (s *historyServiceImpl) GetProcessHistory(ctx context.Context, processID string) ([]models.HistoryEntry, error) {
	const selectHistoryQuery = `
SELECT id,
       processo_id,
       acao,
       status_anterior_id,
       status_novo_id,
       user_id,
       created_at
FROM historico_processos
WHERE processo_id = $1
ORDER BY created_at DESC
`
	rows, err := s.pgPool.Query(ctx, selectHistoryQuery, processID)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("process_id", processID).
			Msg("failed to select process history")
		return nil, err
	}
	defer rows.Close()

	var entries []models.HistoryEntry
	for rows.Next() {
		var (
			entry       models.HistoryEntry
			oldStatusID *string
			newStatusID *string
			createdAt   *time.Time
		)
		err = rows.Scan(
			&entry.ID,
			&entry.ProcessID,
			&entry.Action,
			&oldStatusID,
			&newStatusID,
			&entry.UserID,
			&createdAt,
		)
		if err != nil {
			s.logger.Error().
				Err(err).
				Msg("failed to scan history entry")
			return nil, err
		}
		if oldStatusID != nil {
			entry.OldStatusID = *oldStatusID
		}
		if newStatusID != nil {
			entry.NewStatusID = *newStatusID
		}
		if createdAt != nil {
			entry.CreatedAt = *createdAt
		}
		entries = append(entries, entry)
	}

	err = rows.Err()
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to iterate over rows")
		return nil, err
	}

	s.logger.Debug().
		Int("count", len(entries)).
		Str("process_id", processID).
		Msg("selected process history")
	return entries, nil
}
