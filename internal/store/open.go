package store

import (
	"context"
	"fmt"

	"beervault/internal/config"
	"beervault/internal/logging"
	"beervault/internal/models"
	"beervault/internal/store/binstore"
	"beervault/internal/store/localstore"
)

// Seed is the dataset used to initialize an empty backend.
type Seed struct {
	Entries  []models.Entry
	Accounts []models.Account
}

// Open selects and initializes the active backend, once, at startup.
//
// Mode resolution: "local" and "remote" are taken literally; "auto" picks
// remote when the API key looks usable and local otherwise. Asking for remote
// without a usable key is a configuration error.
//
// Local mode seeds absent or empty collections with the demo dataset and
// persists them. Remote mode reuses previously created document identifiers
// from the local document store when present; otherwise it creates both
// remote documents seeded with the demo dataset and stores their identifiers
// for the next run.
func Open(ctx context.Context, cfg *config.Config, docs *localstore.DocStore, seed Seed, log logging.Logger) (Store, error) {
	mode := cfg.Mode
	if mode == config.ModeAuto || mode == "" {
		if cfg.RemoteConfigured() {
			mode = config.ModeRemote
		} else {
			mode = config.ModeLocal
		}
	}

	switch mode {
	case config.ModeLocal:
		return openLocal(ctx, docs, seed, log)
	case config.ModeRemote:
		if !cfg.RemoteConfigured() {
			return nil, fmt.Errorf("remote mode requires a backend key")
		}
		return openRemote(ctx, cfg, docs, seed, log)
	default:
		return nil, fmt.Errorf("unknown backend mode %q", cfg.Mode)
	}
}

func openLocal(ctx context.Context, docs *localstore.DocStore, seed Seed, log logging.Logger) (Store, error) {
	s := localstore.NewCollectionStore(docs)

	entries, err := s.LoadEntries(ctx)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		if err := s.SaveEntries(ctx, seed.Entries); err != nil {
			return nil, err
		}
	}

	accounts, err := s.LoadAccounts(ctx)
	if err != nil {
		return nil, err
	}
	if len(accounts) == 0 {
		if err := s.SaveAccounts(ctx, seed.Accounts); err != nil {
			return nil, err
		}
	}

	log.Info(ctx, "backend selected", "mode", s.Name())
	return s, nil
}

func openRemote(ctx context.Context, cfg *config.Config, docs *localstore.DocStore, seed Seed, log logging.Logger) (Store, error) {
	client := binstore.NewClient(cfg.APIBaseURL, cfg.APIKey)

	var bins binstore.BinIDs
	found, err := docs.Get(ctx, localstore.KeyBins, &bins)
	if err != nil {
		return nil, err
	}

	if !found || !bins.Valid() {
		log.Info(ctx, "creating remote documents")

		bins.Entries, err = client.CreateBin(ctx, binstore.EntriesBinName, seed.Entries)
		if err != nil {
			return nil, fmt.Errorf("failed to create entries document: %w", err)
		}
		bins.Accounts, err = client.CreateBin(ctx, binstore.AccountsBinName, seed.Accounts)
		if err != nil {
			return nil, fmt.Errorf("failed to create accounts document: %w", err)
		}

		if err := docs.Put(ctx, localstore.KeyBins, bins); err != nil {
			return nil, err
		}
	}

	log.Info(ctx, "backend selected", "mode", "remote", "entriesBin", bins.Entries, "accountsBin", bins.Accounts)
	return binstore.NewCollectionStore(client, bins), nil
}
