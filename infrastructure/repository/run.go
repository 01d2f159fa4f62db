package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/vfg2006/creative-rotation-api/infrastructure/database/postgres"
	"github.com/vfg2006/creative-rotation-api/internal/domain"
)

const (
	runsTable            = "runs r"
	creativeHistoryTable = "creative_history ch"
)

//go:generate mockgen -source=run.go -destination=mocks/run.go -package=mocks
type RunRepository interface {
	RecordRun(ctx context.Context, run *domain.Run, history []*domain.CreativeHistoryEntry) error
	ListRecentRuns(ctx context.Context, campaignID string, limit int) ([]*domain.Run, error)
	LastCreativeAtByAdset(ctx context.Context, campaignID string) (map[string]time.Time, error)
	CountCreatives(ctx context.Context, campaignID string) (int, error)
}

type runRepository struct {
	conn *postgres.Connection
}

func NewRunRepository(conn *postgres.Connection) RunRepository {
	return &runRepository{
		conn: conn,
	}
}

// RecordRun grava a execução, o histórico de criativos e o last_run_at da campanha na mesma transação
func (r *runRepository) RecordRun(ctx context.Context, run *domain.Run, history []*domain.CreativeHistoryEntry) error {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}

	plateau, err := json.Marshal(run.PlateauByAdset)
	if err != nil {
		return err
	}
	plan, err := json.Marshal(run.Plan)
	if err != nil {
		return err
	}
	created, err := json.Marshal(run.CreatedAdsByAdset)
	if err != nil {
		return err
	}
	paused, err := json.Marshal(run.PausedAdsByAdset)
	if err != nil {
		return err
	}
	failures, err := json.Marshal(run.FailuresByAdset)
	if err != nil {
		return err
	}

	runSQL, runArgs, err := squirrel.
		Insert("runs").
		Columns(
			"id",
			"campaign_id",
			"account_id",
			"mode",
			"trigger",
			"status",
			"plateau_by_adset",
			"plan",
			"created_ads_by_adset",
			"paused_ads_by_adset",
			"failures_by_adset",
			"started_at",
			"finished_at",
		).
		Values(
			run.ID,
			run.CampaignID,
			run.AccountID,
			run.Mode,
			run.Trigger,
			run.Status,
			plateau,
			plan,
			created,
			paused,
			failures,
			run.StartedAt,
			run.FinishedAt,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	configSQL, configArgs, err := squirrel.
		Update("campaign_configs").
		Set("last_run_at", run.FinishedAt).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"campaign_id": run.CampaignID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, runSQL, runArgs...); err != nil {
			return wrapDBError(err)
		}

		if len(history) > 0 {
			historyQuery := squirrel.
				Insert("creative_history").
				Columns("id", "run_id", "campaign_id", "adset_id", "ad_id", "variant_id", "kind", "created_at").
				PlaceholderFormat(squirrel.Dollar)

			for _, entry := range history {
				if entry.ID == "" {
					entry.ID = uuid.NewString()
				}
				entry.RunID = run.ID
				historyQuery = historyQuery.Values(
					entry.ID,
					entry.RunID,
					entry.CampaignID,
					entry.AdsetID,
					entry.AdID,
					entry.VariantID,
					entry.Kind,
					entry.CreatedAt,
				)
			}

			historySQL, historyArgs, err := historyQuery.ToSql()
			if err != nil {
				return fmt.Errorf("erro ao construir query de inserção: %w", err)
			}
			if _, err := tx.ExecContext(ctx, historySQL, historyArgs...); err != nil {
				return wrapDBError(err)
			}
		}

		result, err := tx.ExecContext(ctx, configSQL, configArgs...)
		if err != nil {
			return wrapDBError(err)
		}
		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get rows affected: %w", err)
		}
		if rowsAffected == 0 {
			return ErrNotFound
		}

		return nil
	})
}

func (r *runRepository) ListRecentRuns(ctx context.Context, campaignID string, limit int) ([]*domain.Run, error) {
	builder := squirrel.
		Select(
			"r.id",
			"r.campaign_id",
			"r.account_id",
			"r.mode",
			"r.trigger",
			"r.status",
			"r.plateau_by_adset",
			"r.plan",
			"r.created_ads_by_adset",
			"r.paused_ads_by_adset",
			"r.failures_by_adset",
			"r.started_at",
			"r.finished_at",
		).
		From(runsTable).
		Where(squirrel.Eq{"r.campaign_id": campaignID}).
		OrderBy("r.finished_at DESC").
		PlaceholderFormat(squirrel.Dollar)
	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapDBError(err)
	}
	defer rows.Close()

	runs := make([]*domain.Run, 0)
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear execução: %w", err)
		}
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return runs, nil
}

func (r *runRepository) LastCreativeAtByAdset(ctx context.Context, campaignID string) (map[string]time.Time, error) {
	query, args, err := squirrel.
		Select("ch.adset_id", "MAX(ch.created_at)").
		From(creativeHistoryTable).
		Where(squirrel.Eq{"ch.campaign_id": campaignID}).
		GroupBy("ch.adset_id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapDBError(err)
	}
	defer rows.Close()

	result := make(map[string]time.Time)
	for rows.Next() {
		var (
			adsetID string
			last    time.Time
		)
		if err := rows.Scan(&adsetID, &last); err != nil {
			return nil, fmt.Errorf("erro ao escanear histórico: %w", err)
		}
		result[adsetID] = last
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return result, nil
}

func (r *runRepository) CountCreatives(ctx context.Context, campaignID string) (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(creativeHistoryTable).
		Where(squirrel.Eq{"ch.campaign_id": campaignID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, wrapDBError(err)
	}

	return count, nil
}

func scanRun(row scanner) (*domain.Run, error) {
	run := &domain.Run{}

	var plateau, plan, created, paused, failures []byte
	if err := row.Scan(
		&run.ID,
		&run.CampaignID,
		&run.AccountID,
		&run.Mode,
		&run.Trigger,
		&run.Status,
		&plateau,
		&plan,
		&created,
		&paused,
		&failures,
		&run.StartedAt,
		&run.FinishedAt,
	); err != nil {
		return nil, err
	}

	for _, column := range []struct {
		data []byte
		out  any
	}{
		{plateau, &run.PlateauByAdset},
		{plan, &run.Plan},
		{created, &run.CreatedAdsByAdset},
		{paused, &run.PausedAdsByAdset},
		{failures, &run.FailuresByAdset},
	} {
		if err := unmarshalJSONColumn(column.data, column.out); err != nil {
			return nil, err
		}
	}

	return run, nil
}
