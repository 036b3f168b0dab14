package documents

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/rs/zerolog"
)

const keyPrefix = "documentos/"

type badgerStore struct {
	logger zerolog.Logger
	db     *badger.DB
}

func NewBadgerStore(logger zerolog.Logger, db *badger.DB) Store {
	return &badgerStore{
		logger: logger,
		db:     db,
	}
}

func (s *badgerStore) Get(_ context.Context, processID string) (Checklist, error) {
	var record Record
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(recordKey(processID))
		if err != nil {
			return err
		}
		return item.Value(func(value []byte) error {
			return json.Unmarshal(value, &record)
		})
	})
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			// Lazily created: unknown ids read as all-false.
			return Checklist{}, nil
		}

		s.logger.Error().
			Err(err).
			Str("processo_id", processID).
			Msg("failed to read document checklist")
		return Checklist{}, err
	}

	s.logger.Debug().
		Str("processo_id", processID).
		Int("delivered", record.Checklist.Delivered()).
		Msg("read document checklist")
	return record.Checklist, nil
}

func (s *badgerStore) Set(_ context.Context, processID string, checklist Checklist, updatedBy string) error {
	record := Record{
		ProcessID: processID,
		Checklist: checklist,
		UpdatedAt: time.Now(),
		UpdatedBy: updatedBy,
	}

	value, err := json.Marshal(record)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("processo_id", processID).
			Msg("failed to marshal document checklist")
		return err
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(recordKey(processID), value)
	})
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("processo_id", processID).
			Msg("failed to write document checklist")
		return err
	}

	s.logger.Info().
		Str("processo_id", processID).
		Int("delivered", checklist.Delivered()).
		Msg("updated document checklist")
	return nil
}

func (s *badgerStore) All(_ context.Context) ([]Record, error) {
	var records []Record
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(keyPrefix)

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			var record Record
			err := it.Item().Value(func(value []byte) error {
				return json.Unmarshal(value, &record)
			})
			if err != nil {
				return err
			}
			records = append(records, record)
		}
		return nil
	})
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to list document checklists")
		return nil, err
	}

	s.logger.Debug().
		Int("count", len(records)).
		Msg("listed document checklists")
	return records, nil
}

func (s *badgerStore) Stats(ctx context.Context) (Stats, error) {
	records, err := s.All(ctx)
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{Total: len(records)}
	for _, record := range records {
		switch record.Checklist.Delivered() {
		case 4:
			stats.AllDelivered++
		case 0:
			stats.NoneDelivered++
		default:
			stats.SomeDelivered++
		}
	}
	if stats.Total > 0 {
		stats.PercentComplete = float64(stats.AllDelivered) / float64(stats.Total) * 100
	}
	return stats, nil
}

func recordKey(processID string) []byte {
	return []byte(keyPrefix + processID)
}
