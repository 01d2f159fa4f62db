// Package boltstore guarda configurações e execuções em um arquivo bbolt, para instalações sem Postgres
package boltstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/creative-rotation-api/infrastructure/repository"
	"github.com/vfg2006/creative-rotation-api/internal/domain"
	bolt "go.etcd.io/bbolt"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	bucketConfigs = []byte("campaign_configs")
	// runs e creative_history têm um sub-bucket por campanha, com chaves ordenadas pelo tempo
	bucketRuns    = []byte("runs")
	bucketHistory = []byte("creative_history")
)

var (
	_ repository.CampaignConfigRepository = (*Store)(nil)
	_ repository.RunRepository            = (*Store)(nil)
)

type Store struct {
	db  *bolt.DB
	now func() time.Time
}

func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create store directory: %w", err)
		}
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt store: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{bucketConfigs, bucketRuns, bucketHistory} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create buckets: %w", err)
	}

	return &Store{db: db, now: time.Now}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Ping(_ context.Context) error {
	return s.db.View(func(*bolt.Tx) error { return nil })
}

// Upsert preserva id, created_at e last_run_at de uma configuração já existente
func (s *Store) Upsert(_ context.Context, cfg *domain.CampaignConfig) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		configs := tx.Bucket(bucketConfigs)
		now := s.now().UTC()

		existing, err := getConfig(configs, cfg.CampaignID)
		if err != nil {
			return err
		}
		if existing != nil {
			cfg.ID = existing.ID
			cfg.CreatedAt = existing.CreatedAt
			cfg.LastRunAt = existing.LastRunAt
		} else {
			if cfg.ID == "" {
				cfg.ID = uuid.NewString()
			}
			cfg.CreatedAt = now
		}
		cfg.UpdatedAt = now

		return putConfig(configs, cfg)
	})
}

func (s *Store) GetByCampaignID(_ context.Context, campaignID string) (*domain.CampaignConfig, error) {
	var cfg *domain.CampaignConfig

	err := s.db.View(func(tx *bolt.Tx) error {
		var err error
		cfg, err = getConfig(tx.Bucket(bucketConfigs), campaignID)
		return err
	})

	return cfg, err
}

func (s *Store) ListEnabled(_ context.Context) ([]*domain.CampaignConfig, error) {
	configs := make([]*domain.CampaignConfig, 0)

	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketConfigs).ForEach(func(_, v []byte) error {
			cfg := &domain.CampaignConfig{}
			if err := json.Unmarshal(v, cfg); err != nil {
				return err
			}
			if cfg.Enabled {
				configs = append(configs, cfg)
			}
			return nil
		})
	})

	return configs, err
}

func (s *Store) SetEnabled(_ context.Context, campaignID string, enabled bool) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		configs := tx.Bucket(bucketConfigs)

		cfg, err := getConfig(configs, campaignID)
		if err != nil {
			return err
		}
		if cfg == nil {
			return repository.ErrNotFound
		}

		cfg.Enabled = enabled
		cfg.UpdatedAt = s.now().UTC()

		return putConfig(configs, cfg)
	})
}

// RecordRun grava execução, histórico e last_run_at na mesma transação
func (s *Store) RecordRun(_ context.Context, run *domain.Run, history []*domain.CreativeHistoryEntry) error {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		configs := tx.Bucket(bucketConfigs)

		cfg, err := getConfig(configs, run.CampaignID)
		if err != nil {
			return err
		}
		if cfg == nil {
			return repository.ErrNotFound
		}

		runs, err := tx.Bucket(bucketRuns).CreateBucketIfNotExists([]byte(run.CampaignID))
		if err != nil {
			return err
		}
		data, err := json.Marshal(run)
		if err != nil {
			return err
		}
		if err := runs.Put(timeKey(run.FinishedAt, run.ID), data); err != nil {
			return err
		}

		entries, err := tx.Bucket(bucketHistory).CreateBucketIfNotExists([]byte(run.CampaignID))
		if err != nil {
			return err
		}
		for _, entry := range history {
			if entry.ID == "" {
				entry.ID = uuid.NewString()
			}
			entry.RunID = run.ID

			data, err := json.Marshal(entry)
			if err != nil {
				return err
			}
			if err := entries.Put(timeKey(entry.CreatedAt, entry.ID), data); err != nil {
				return err
			}
		}

		finishedAt := run.FinishedAt
		cfg.LastRunAt = &finishedAt
		cfg.UpdatedAt = s.now().UTC()

		return putConfig(configs, cfg)
	})
}

// ListRecentRuns percorre o sub-bucket de trás para frente, da execução mais recente para a mais antiga
func (s *Store) ListRecentRuns(_ context.Context, campaignID string, limit int) ([]*domain.Run, error) {
	runs := make([]*domain.Run, 0)

	err := s.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(bucketRuns).Bucket([]byte(campaignID))
		if bucket == nil {
			return nil
		}

		c := bucket.Cursor()
		for k, v := c.Last(); k != nil; k, v = c.Prev() {
			run := &domain.Run{}
			if err := json.Unmarshal(v, run); err != nil {
				return err
			}
			runs = append(runs, run)

			if limit > 0 && len(runs) >= limit {
				break
			}
		}
		return nil
	})

	return runs, err
}

func (s *Store) LastCreativeAtByAdset(_ context.Context, campaignID string) (map[string]time.Time, error) {
	result := make(map[string]time.Time)

	err := s.forEachHistory(campaignID, func(entry *domain.CreativeHistoryEntry) {
		if last, ok := result[entry.AdsetID]; !ok || entry.CreatedAt.After(last) {
			result[entry.AdsetID] = entry.CreatedAt
		}
	})

	return result, err
}

func (s *Store) CountCreatives(_ context.Context, campaignID string) (int, error) {
	count := 0

	err := s.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(bucketHistory).Bucket([]byte(campaignID))
		if bucket == nil {
			return nil
		}
		count = bucket.Stats().KeyN
		return nil
	})

	return count, err
}

func (s *Store) forEachHistory(campaignID string, fn func(*domain.CreativeHistoryEntry)) error {
	return s.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(bucketHistory).Bucket([]byte(campaignID))
		if bucket == nil {
			return nil
		}

		return bucket.ForEach(func(_, v []byte) error {
			entry := &domain.CreativeHistoryEntry{}
			if err := json.Unmarshal(v, entry); err != nil {
				return err
			}
			fn(entry)
			return nil
		})
	})
}

func getConfig(bucket *bolt.Bucket, campaignID string) (*domain.CampaignConfig, error) {
	data := bucket.Get([]byte(campaignID))
	if data == nil {
		return nil, nil
	}

	cfg := &domain.CampaignConfig{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal campaign config: %w", err)
	}
	return cfg, nil
}

func putConfig(bucket *bolt.Bucket, cfg *domain.CampaignConfig) error {
	data, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal campaign config: %w", err)
	}
	return bucket.Put([]byte(cfg.CampaignID), data)
}

// timeKey ordena lexicograficamente pela data; o id desempata registros no mesmo instante
func timeKey(t time.Time, id string) []byte {
	return []byte(fmt.Sprintf("%020d_%s", t.UTC().UnixNano(), id))
}
