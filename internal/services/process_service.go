package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/gestaoimob/desocupacao/internal/models"
)

type processServiceImpl struct {
	logger zerolog.Logger
	pgPool *pgxpool.Pool
}

func NewProcessService(
	logger zerolog.Logger,
	pgPool *pgxpool.Pool,
) ProcessService {
	return &processServiceImpl{
		logger: logger,
		pgPool: pgPool,
	}
}

// processColumns is the column list of the processos_completos view,
// shared by every select so scanProcess stays in sync.
const processColumns = `id,
       name,
       start_at,
       end_at,
       status_id,
       status_name,
       status_color,
       nome_inquilino,
       endereco,
       garantia_type_name,
       data_notificacao,
       data_final_desocupacao,
       data_vistoria,
       horario_vistoria,
       responsavel_id,
       responsavel_name,
       responsavel_image,
       observacoes,
       notas_vistoria,
       numero_processo_judicial,
       created_by_name,
       updated_by_name,
       created_at,
       updated_at`

func scanProcess(scan func(dest ...any) error) (*models.Process, error) {
	var (
		process         models.Process
		assigneeID      *string
		assigneeName    *string
		assigneeImage   *string
		notes           *string
		inspectionNotes *string
		courtCaseNumber *string
		updatedBy       *string
		createdAt       *time.Time
		updatedAt       *time.Time
	)

	err := scan(
		&process.ID,
		&process.Name,
		&process.StartAt,
		&process.EndAt,
		&process.Status.ID,
		&process.Status.Name,
		&process.Status.Color,
		&process.Contract.TenantName,
		&process.Contract.Address,
		&process.Contract.Guarantee,
		&process.Contract.NotificationDate,
		&process.Contract.FinalDeadline,
		&process.Contract.InspectionDate,
		&process.Contract.InspectionTime,
		&assigneeID,
		&assigneeName,
		&assigneeImage,
		&notes,
		&inspectionNotes,
		&courtCaseNumber,
		&process.CreatedBy,
		&updatedBy,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if assigneeID != nil {
		process.Assignee = &models.Assignee{ID: *assigneeID}
		if assigneeName != nil {
			process.Assignee.Name = *assigneeName
		}
		if assigneeImage != nil {
			process.Assignee.ImageURL = *assigneeImage
		}
	}
	if notes != nil {
		process.Notes = *notes
	}
	if inspectionNotes != nil {
		process.InspectionNotes = *inspectionNotes
	}
	if courtCaseNumber != nil {
		process.CourtCaseNumber = *courtCaseNumber
	}
	if updatedBy != nil {
		process.UpdatedBy = *updatedBy
	}
	if createdAt != nil {
		process.CreatedAt = *createdAt
	}
	if updatedAt != nil {
		process.UpdatedAt = *updatedAt
	}

	return &process, nil
}

func (s *processServiceImpl) GetProcesses(ctx context.Context) ([]models.Process, error) {
	const selectProcessesQuery = `
SELECT ` + processColumns + `
FROM processos_completos
ORDER BY created_at DESC
`
	rows, err := s.pgPool.Query(ctx, selectProcessesQuery)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to select processes")
		return nil, err
	}
	defer rows.Close()

	var processes []models.Process
	for rows.Next() {
		process, err := scanProcess(rows.Scan)
		if err != nil {
			s.logger.Error().
				Err(err).
				Msg("failed to scan process")
			return nil, err
		}
		processes = append(processes, *process)
	}

	err = rows.Err()
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to iterate over rows")
		return nil, err
	}

	s.logger.Debug().
		Int("count", len(processes)).
		Msg("selected processes")
	return processes, nil
}

func (s *processServiceImpl) GetProcessByID(ctx context.Context, id string) (*models.Process, error) {
	const selectProcessByIDQuery = `
SELECT ` + processColumns + `
FROM processos_completos
WHERE id = $1
`
	row := s.pgPool.QueryRow(ctx, selectProcessByIDQuery, id)
	process, err := scanProcess(row.Scan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			s.logger.Error().
				Str("process_id", id).
				Msg("process not found")
			return nil, ErrProcessNotFound
		}

		s.logger.Error().
			Err(err).
			Str("process_id", id).
			Msg("failed to select process by id")
		return nil, err
	}

	s.logger.Debug().
		Str("process_id", process.ID).
		Msg("selected process by id")
	return process, nil
}

func (s *processServiceImpl) CreateProcess(ctx context.Context, params CreateProcessParams) (*models.Process, error) {
	processUUID, err := uuid.NewV7()
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to generate process uuid")
		return nil, err
	}
	processID := processUUID.String()

	const insertProcessQuery = `
INSERT INTO processos_desocupacao (id,
                                   name,
                                   nome_inquilino,
                                   endereco,
                                   garantia_type_id,
                                   status_id,
                                   responsavel_id,
                                   created_by_id,
                                   data_notificacao,
                                   data_final_desocupacao,
                                   data_vistoria,
                                   horario_vistoria,
                                   start_at,
                                   end_at,
                                   observacoes,
                                   created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
`
	_, err = s.pgPool.Exec(
		ctx,
		insertProcessQuery,
		processID,
		params.Name,
		params.TenantName,
		params.Address,
		params.GuaranteeTypeID,
		params.StatusID,
		nullIfEmpty(params.AssigneeID),
		params.CreatedByID,
		params.NotificationDate,
		params.FinalDeadline,
		params.InspectionDate,
		params.InspectionTime,
		params.StartAt,
		params.EndAt,
		params.Notes,
		time.Now(),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			s.logger.Error().
				Str("constraint", pgErr.ConstraintName).
				Msg("process references unknown data")
			return nil, ErrReferenceNotFound
		}

		s.logger.Error().
			Err(err).
			Msg("failed to insert process")
		return nil, err
	}
	s.logger.Debug().
		Str("process_id", processID).
		Msg("inserted process")

	process, err := s.GetProcessByID(ctx, processID)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("process_id", processID).
		Msg("created process")
	return process, nil
}

func (s *processServiceImpl) UpdateProcess(ctx context.Context, params UpdateProcessParams) (*models.Process, error) {
	var (
		name             string
		tenantName       string
		address          string
		guaranteeTypeID  string
		assigneeID       *string
		notificationDate time.Time
		finalDeadline    time.Time
		inspectionDate   time.Time
		inspectionTime   string
		notes            *string
		inspectionNotes  *string
	)

	const selectProcessQuery = `
SELECT name,
       nome_inquilino,
       endereco,
       garantia_type_id,
       responsavel_id,
       data_notificacao,
       data_final_desocupacao,
       data_vistoria,
       horario_vistoria,
       observacoes,
       notas_vistoria
FROM processos_desocupacao
WHERE id = $1
`
	err := s.pgPool.QueryRow(
		ctx,
		selectProcessQuery,
		params.ID,
	).Scan(
		&name,
		&tenantName,
		&address,
		&guaranteeTypeID,
		&assigneeID,
		&notificationDate,
		&finalDeadline,
		&inspectionDate,
		&inspectionTime,
		&notes,
		&inspectionNotes,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			s.logger.Error().
				Str("process_id", params.ID).
				Msg("process not found")
			return nil, ErrProcessNotFound
		}

		s.logger.Error().
			Err(err).
			Str("process_id", params.ID).
			Msg("failed to select process")
		return nil, err
	}

	if params.Name != nil {
		name = *params.Name
	}
	if params.TenantName != nil {
		tenantName = *params.TenantName
	}
	if params.Address != nil {
		address = *params.Address
	}
	if params.GuaranteeTypeID != nil {
		guaranteeTypeID = *params.GuaranteeTypeID
	}
	if params.AssigneeID != nil {
		assigneeID = nullIfEmpty(*params.AssigneeID)
	}
	if params.NotificationDate != nil {
		notificationDate = *params.NotificationDate
	}
	if params.FinalDeadline != nil {
		finalDeadline = *params.FinalDeadline
	}
	if params.InspectionDate != nil {
		inspectionDate = *params.InspectionDate
	}
	if params.InspectionTime != nil {
		inspectionTime = *params.InspectionTime
	}
	if params.Notes != nil {
		notes = params.Notes
	}
	if params.InspectionNotes != nil {
		inspectionNotes = params.InspectionNotes
	}

	const updateProcessQuery = `
UPDATE processos_desocupacao
SET name = $1,
    nome_inquilino = $2,
    endereco = $3,
    garantia_type_id = $4,
    responsavel_id = $5,
    data_notificacao = $6,
    data_final_desocupacao = $7,
    data_vistoria = $8,
    horario_vistoria = $9,
    observacoes = $10,
    notas_vistoria = $11,
    updated_by_id = $12,
    updated_at = $13
WHERE id = $14
`
	_, err = s.pgPool.Exec(
		ctx,
		updateProcessQuery,
		name,
		tenantName,
		address,
		guaranteeTypeID,
		assigneeID,
		notificationDate,
		finalDeadline,
		inspectionDate,
		inspectionTime,
		notes,
		inspectionNotes,
		nullIfEmpty(params.UpdatedByID),
		time.Now(),
		params.ID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			s.logger.Error().
				Str("constraint", pgErr.ConstraintName).
				Msg("process references unknown data")
			return nil, ErrReferenceNotFound
		}

		s.logger.Error().
			Err(err).
			Str("process_id", params.ID).
			Msg("failed to update process")
		return nil, err
	}
	s.logger.Debug().
		Str("process_id", params.ID).
		Msg("updated process")

	process, err := s.GetProcessByID(ctx, params.ID)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("process_id", params.ID).
		Msg("updated process")
	return process, nil
}

func (s *processServiceImpl) UpdateProcessStatus(ctx context.Context, params UpdateProcessStatusParams) (*models.Process, error) {
	tx, err := s.pgPool.Begin(ctx)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to begin transaction")
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var oldStatusID string

	const selectStatusQuery = `
SELECT status_id
FROM processos_desocupacao
WHERE id = $1
`
	err = tx.QueryRow(ctx, selectStatusQuery, params.ID).Scan(&oldStatusID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			s.logger.Error().
				Str("process_id", params.ID).
				Msg("process not found")
			return nil, ErrProcessNotFound
		}

		s.logger.Error().
			Err(err).
			Str("process_id", params.ID).
			Msg("failed to select process status")
		return nil, err
	}

	const updateStatusQuery = `
UPDATE processos_desocupacao
SET status_id = $1,
    updated_by_id = $2,
    updated_at = $3
WHERE id = $4
`
	_, err = tx.Exec(
		ctx,
		updateStatusQuery,
		params.StatusID,
		nullIfEmpty(params.UpdatedByID),
		time.Now(),
		params.ID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			s.logger.Error().
				Str("status_id", params.StatusID).
				Msg("unknown status")
			return nil, ErrReferenceNotFound
		}

		s.logger.Error().
			Err(err).
			Str("process_id", params.ID).
			Msg("failed to update process status")
		return nil, err
	}

	historyUUID, err := uuid.NewV7()
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to generate history uuid")
		return nil, err
	}

	const insertHistoryQuery = `
INSERT INTO historico_processos (id,
                                 processo_id,
                                 acao,
                                 status_anterior_id,
                                 status_novo_id,
                                 user_id,
                                 created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`
	_, err = tx.Exec(
		ctx,
		insertHistoryQuery,
		historyUUID.String(),
		params.ID,
		"status_alterado",
		oldStatusID,
		params.StatusID,
		params.UpdatedByID,
		time.Now(),
	)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("process_id", params.ID).
			Msg("failed to insert history entry")
		return nil, err
	}

	err = tx.Commit(ctx)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to commit transaction")
		return nil, err
	}
	s.logger.Debug().
		Str("process_id", params.ID).
		Str("old_status_id", oldStatusID).
		Str("new_status_id", params.StatusID).
		Msg("updated process status")

	process, err := s.GetProcessByID(ctx, params.ID)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("process_id", params.ID).
		Str("status", process.Status.Name).
		Msg("updated process status")
	return process, nil
}

func (s *processServiceImpl) DeleteProcess(ctx context.Context, id string) error {
	const deleteProcessQuery = `
DELETE FROM processos_desocupacao
WHERE id = $1
`
	tag, err := s.pgPool.Exec(ctx, deleteProcessQuery, id)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("process_id", id).
			Msg("failed to delete process")
		return err
	}
	if tag.RowsAffected() == 0 {
		s.logger.Error().
			Str("process_id", id).
			Msg("process not found")
		return ErrProcessNotFound
	}

	s.logger.Info().
		Str("process_id", id).
		Msg("deleted process")
	return nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
