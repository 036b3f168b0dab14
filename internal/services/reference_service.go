package services

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/gestaoimob/desocupacao/internal/models"
)

type referenceServiceImpl struct {
	logger zerolog.Logger
	pgPool *pgxpool.Pool
}

func NewReferenceService(
	logger zerolog.Logger,
	pgPool *pgxpool.Pool,
) ReferenceService {
	return &referenceServiceImpl{
		logger: logger,
		pgPool: pgPool,
	}
}

func (s *referenceServiceImpl) GetStatuses(ctx context.Context) ([]models.Status, error) {
	const selectStatusesQuery = `
SELECT id,
       name,
       color,
       order_index,
       created_at
FROM status
ORDER BY order_index ASC
`
	rows, err := s.pgPool.Query(ctx, selectStatusesQuery)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to select statuses")
		return nil, err
	}
	defer rows.Close()

	var statuses []models.Status
	for rows.Next() {
		var (
			status    models.Status
			createdAt *time.Time
		)
		err = rows.Scan(
			&status.ID,
			&status.Name,
			&status.Color,
			&status.OrderIndex,
			&createdAt,
		)
		if err != nil {
			s.logger.Error().
				Err(err).
				Msg("failed to scan status")
			return nil, err
		}
		if createdAt != nil {
			status.CreatedAt = *createdAt
		}
		statuses = append(statuses, status)
	}

	err = rows.Err()
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to iterate over rows")
		return nil, err
	}

	s.logger.Debug().
		Int("count", len(statuses)).
		Msg("selected statuses")
	return statuses, nil
}

func (s *referenceServiceImpl) GetGuaranteeTypes(ctx context.Context) ([]models.GuaranteeType, error) {
	const selectGuaranteeTypesQuery = `
SELECT id,
       name,
       description,
       created_at
FROM garantia_types
ORDER BY name ASC
`
	rows, err := s.pgPool.Query(ctx, selectGuaranteeTypesQuery)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to select guarantee types")
		return nil, err
	}
	defer rows.Close()

	var guarantees []models.GuaranteeType
	for rows.Next() {
		var (
			guarantee   models.GuaranteeType
			description *string
			createdAt   *time.Time
		)
		err = rows.Scan(
			&guarantee.ID,
			&guarantee.Name,
			&description,
			&createdAt,
		)
		if err != nil {
			s.logger.Error().
				Err(err).
				Msg("failed to scan guarantee type")
			return nil, err
		}
		if description != nil {
			guarantee.Description = *description
		}
		if createdAt != nil {
			guarantee.CreatedAt = *createdAt
		}
		guarantees = append(guarantees, guarantee)
	}

	err = rows.Err()
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to iterate over rows")
		return nil, err
	}

	s.logger.Debug().
		Int("count", len(guarantees)).
		Msg("selected guarantee types")
	return guarantees, nil
}

func (s *referenceServiceImpl) GetUsers(ctx context.Context) ([]models.User, error) {
	const selectUsersQuery = `
SELECT id,
       name,
       email,
       image_url,
       role,
       created_at,
       updated_at
FROM users
ORDER BY name ASC
`
	rows, err := s.pgPool.Query(ctx, selectUsersQuery)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to select users")
		return nil, err
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var (
			user      models.User
			imageURL  *string
			role      *string
			createdAt *time.Time
			updatedAt *time.Time
		)
		err = rows.Scan(
			&user.ID,
			&user.Name,
			&user.Email,
			&imageURL,
			&role,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			s.logger.Error().
				Err(err).
				Msg("failed to scan user")
			return nil, err
		}
		if imageURL != nil {
			user.ImageURL = *imageURL
		}
		if role != nil {
			user.Role = *role
		}
		if createdAt != nil {
			user.CreatedAt = *createdAt
		}
		if updatedAt != nil {
			user.UpdatedAt = *updatedAt
		}
		users = append(users, user)
	}

	err = rows.Err()
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to iterate over rows")
		return nil, err
	}

	s.logger.Debug().
		Int("count", len(users)).
		Msg("selected users")
	return users, nil
}
