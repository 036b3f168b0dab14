package app

import (
	"github.com/dgraph-io/badger/v4"

	"github.com/gestaoimob/desocupacao/internal/config"
)

var globalBadgerDB *badger.DB

func MustOpenBadger() {
	cfg := config.Global().Badger

	opts := badger.DefaultOptions(cfg.Dir)
	opts.Logger = nil

	var err error
	globalBadgerDB, err = badger.Open(opts)
	if err != nil {
		globalLogger.Error().
			Err(err).
			Str("dir", cfg.Dir).
			Msg("failed to open badger")
		panic(err)
	}
	globalLogger.Info().
		Str("dir", cfg.Dir).
		Msg("opened badger")
}

func CloseBadger() {
	err := globalBadgerDB.Close()
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to close badger")
		return
	}
	globalLogger.Info().Msg("closed badger")
}
