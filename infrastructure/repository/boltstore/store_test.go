package boltstore

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/creative-rotation-api/infrastructure/repository"
	"github.com/vfg2006/creative-rotation-api/internal/domain"
)

var base = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func openStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "data", "optimizer.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	store.now = func() time.Time { return base }
	return store
}

func config(campaignID string, enabled bool) *domain.CampaignConfig {
	return &domain.CampaignConfig{
		CampaignID:     campaignID,
		AccountID:      "act1",
		PageID:         "page",
		DestinationURL: "https://loja.example.com",
		KPI:            domain.KPICTR,
		AssetTypes:     domain.AssetTypeImage,
		Thresholds:     domain.Thresholds{MinImpressions: 500},
		Enabled:        enabled,
	}
}

func TestStore_CampaignConfigs(t *testing.T) {
	ctx := context.Background()
	store := openStore(t)

	missing, err := store.GetByCampaignID(ctx, "c1")
	require.NoError(t, err)
	assert.Nil(t, missing)

	cfg := config("c1", true)
	require.NoError(t, store.Upsert(ctx, cfg))
	require.NotEmpty(t, cfg.ID)
	require.NoError(t, store.Upsert(ctx, config("c2", false)))

	t.Run("Atualização mantém id e data de criação", func(t *testing.T) {
		updated := config("c1", true)
		updated.PageID = "page2"
		store.now = func() time.Time { return base.Add(time.Hour) }
		require.NoError(t, store.Upsert(ctx, updated))

		got, err := store.GetByCampaignID(ctx, "c1")
		require.NoError(t, err)
		assert.Equal(t, cfg.ID, got.ID)
		assert.Equal(t, "page2", got.PageID)
		assert.True(t, got.CreatedAt.Equal(base))
		assert.True(t, got.UpdatedAt.Equal(base.Add(time.Hour)))
		assert.Equal(t, int64(500), got.Thresholds.MinImpressions)
	})

	t.Run("Lista apenas habilitadas", func(t *testing.T) {
		enabled, err := store.ListEnabled(ctx)
		require.NoError(t, err)
		require.Len(t, enabled, 1)
		assert.Equal(t, "c1", enabled[0].CampaignID)
	})

	t.Run("Desabilitar", func(t *testing.T) {
		require.NoError(t, store.SetEnabled(ctx, "c1", false))
		enabled, err := store.ListEnabled(ctx)
		require.NoError(t, err)
		assert.Empty(t, enabled)

		assert.ErrorIs(t, store.SetEnabled(ctx, "c9", false), repository.ErrNotFound)
	})
}

func TestStore_RecordRun(t *testing.T) {
	ctx := context.Background()
	store := openStore(t)
	require.NoError(t, store.Upsert(ctx, config("c1", true)))

	record := func(finishedAt time.Time, adsets ...string) *domain.Run {
		run := &domain.Run{
			CampaignID:        "c1",
			Mode:              domain.RunModePlateau,
			Status:            domain.RunStatusCompleted,
			CreatedAdsByAdset: map[string][]string{},
			StartedAt:         finishedAt.Add(-time.Minute),
			FinishedAt:        finishedAt,
		}
		history := make([]*domain.CreativeHistoryEntry, 0)
		for _, adsetID := range adsets {
			run.CreatedAdsByAdset[adsetID] = []string{"ad_" + adsetID}
			history = append(history, &domain.CreativeHistoryEntry{
				CampaignID: "c1",
				AdsetID:    adsetID,
				AdID:       "ad_" + adsetID,
				VariantID:  "img_a",
				Kind:       domain.VariantKindImage,
				CreatedAt:  finishedAt,
			})
		}
		require.NoError(t, store.RecordRun(ctx, run, history))
		return run
	}

	first := record(base.Add(-72*time.Hour), "as1", "as2")
	second := record(base.Add(-24*time.Hour), "as1")

	t.Run("Atualiza a última execução da campanha", func(t *testing.T) {
		cfg, err := store.GetByCampaignID(ctx, "c1")
		require.NoError(t, err)
		require.NotNil(t, cfg.LastRunAt)
		assert.True(t, cfg.LastRunAt.Equal(second.FinishedAt))
	})

	t.Run("Execuções mais recentes primeiro", func(t *testing.T) {
		runs, err := store.ListRecentRuns(ctx, "c1", 10)
		require.NoError(t, err)
		require.Len(t, runs, 2)
		assert.Equal(t, second.ID, runs[0].ID)
		assert.Equal(t, first.ID, runs[1].ID)

		limited, err := store.ListRecentRuns(ctx, "c1", 1)
		require.NoError(t, err)
		require.Len(t, limited, 1)
		assert.Equal(t, second.ID, limited[0].ID)
	})

	t.Run("Última criação por conjunto", func(t *testing.T) {
		last, err := store.LastCreativeAtByAdset(ctx, "c1")
		require.NoError(t, err)
		assert.True(t, last["as1"].Equal(second.FinishedAt))
		assert.True(t, last["as2"].Equal(first.FinishedAt))
	})

	t.Run("Total de criativos", func(t *testing.T) {
		count, err := store.CountCreatives(ctx, "c1")
		require.NoError(t, err)
		assert.Equal(t, 3, count)

		none, err := store.CountCreatives(ctx, "c9")
		require.NoError(t, err)
		assert.Zero(t, none)
	})

	t.Run("Campanha inexistente não grava nada", func(t *testing.T) {
		err := store.RecordRun(ctx, &domain.Run{CampaignID: "c9", FinishedAt: base}, []*domain.CreativeHistoryEntry{
			{CampaignID: "c9", AdsetID: "as1", CreatedAt: base},
		})
		assert.ErrorIs(t, err, repository.ErrNotFound)

		runs, err := store.ListRecentRuns(ctx, "c9", 0)
		require.NoError(t, err)
		assert.Empty(t, runs)
	})
}
