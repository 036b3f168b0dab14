package services

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/gestaoimob/desocupacao/internal/models"
)

type calendarServiceImpl struct {
	logger zerolog.Logger
	pgPool *pgxpool.Pool
}

func NewCalendarService(
	logger zerolog.Logger,
	pgPool *pgxpool.Pool,
) CalendarService {
	return &calendarServiceImpl{
		logger: logger,
		pgPool: pgPool,
	}
}

func (s *calendarServiceImpl) GetEvents(ctx context.Context) ([]models.CalendarEvent, error) {
	// Every column of the calendario_eventos view is nullable; the
	// aggregation layer decides what to do with the gaps.
	const selectEventsQuery = `
SELECT evento_id,
       evento_titulo,
       data_evento,
       horario_evento,
       endereco,
       nome_inquilino,
       responsavel_name,
       status_name,
       status_color
FROM calendario_eventos
ORDER BY data_evento ASC
`
	rows, err := s.pgPool.Query(ctx, selectEventsQuery)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to select calendar events")
		return nil, err
	}
	defer rows.Close()

	var events []models.CalendarEvent
	for rows.Next() {
		var (
			event        models.CalendarEvent
			id           *string
			title        *string
			eventTime    *string
			address      *string
			tenantName   *string
			assigneeName *string
			statusName   *string
			statusColor  *string
		)
		err = rows.Scan(
			&id,
			&title,
			&event.Date,
			&eventTime,
			&address,
			&tenantName,
			&assigneeName,
			&statusName,
			&statusColor,
		)
		if err != nil {
			s.logger.Error().
				Err(err).
				Msg("failed to scan calendar event")
			return nil, err
		}
		if id != nil {
			event.ID = *id
		}
		if title != nil {
			event.Title = *title
		}
		if eventTime != nil {
			event.Time = *eventTime
		}
		if address != nil {
			event.Address = *address
		}
		if tenantName != nil {
			event.TenantName = *tenantName
		}
		if assigneeName != nil {
			event.AssigneeName = *assigneeName
		}
		if statusName != nil {
			event.StatusName = *statusName
		}
		if statusColor != nil {
			event.StatusColor = *statusColor
		}
		events = append(events, event)
	}

	err = rows.Err()
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to iterate over rows")
		return nil, err
	}

	s.logger.Debug().
		Int("count", len(events)).
		Msg("selected calendar events")
	return events, nil
}
