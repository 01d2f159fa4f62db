// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/creative-rotation-api/infrastructure/database/postgres"
	"github.com/vfg2006/creative-rotation-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	campaignConfigsTable = "campaign_configs cc"
)

var campaignConfigColumns = []string{
	"cc.id",
	"cc.campaign_id",
	"cc.account_id",
	"cc.page_id",
	"cc.destination_url",
	"cc.kpi",
	"cc.asset_types",
	"cc.daily_budget",
	"cc.start_at",
	"cc.end_at",
	"cc.flight_hours",
	"cc.override_count_per_type",
	"cc.force_two_per_type",
	"cc.thresholds",
	"cc.stop_rules",
	"cc.generation_context",
	"cc.enabled",
	"cc.last_run_at",
	"cc.created_at",
	"cc.updated_at",
}

//go:generate mockgen -source=campaign_config.go -destination=mocks/campaign_config.go -package=mocks
type CampaignConfigRepository interface {
	Upsert(ctx context.Context, cfg *domain.CampaignConfig) error
	GetByCampaignID(ctx context.Context, campaignID string) (*domain.CampaignConfig, error)
	ListEnabled(ctx context.Context) ([]*domain.CampaignConfig, error)
	SetEnabled(ctx context.Context, campaignID string, enabled bool) error
}

type campaignConfigRepository struct {
	conn *postgres.Connection
}

func NewCampaignConfigRepository(conn *postgres.Connection) CampaignConfigRepository {
	return &campaignConfigRepository{
		conn: conn,
	}
}

// Upsert insere ou atualiza a configuração pelo campaign_id, preservando id, created_at e last_run_at
func (r *campaignConfigRepository) Upsert(ctx context.Context, cfg *domain.CampaignConfig) error {
	if cfg.ID == "" {
		cfg.ID = uuid.NewString()
	}

	thresholds, err := json.Marshal(cfg.Thresholds)
	if err != nil {
		return err
	}
	stopRules, err := json.Marshal(cfg.StopRules)
	if err != nil {
		return err
	}
	generationContext, err := json.Marshal(cfg.GenerationContext)
	if err != nil {
		return err
	}

	query, args, err := squirrel.
		Insert("campaign_configs").
		Columns(
			"id",
			"campaign_id",
			"account_id",
			"page_id",
			"destination_url",
			"kpi",
			"asset_types",
			"daily_budget",
			"start_at",
			"end_at",
			"flight_hours",
			"override_count_per_type",
			"force_two_per_type",
			"thresholds",
			"stop_rules",
			"generation_context",
			"enabled",
		).
		Values(
			cfg.ID,
			cfg.CampaignID,
			cfg.AccountID,
			cfg.PageID,
			cfg.DestinationURL,
			cfg.KPI,
			cfg.AssetTypes,
			cfg.DailyBudget,
			cfg.StartAt,
			cfg.EndAt,
			cfg.FlightHours,
			cfg.OverrideCountPerType,
			cfg.ForceTwoPerType,
			thresholds,
			stopRules,
			generationContext,
			cfg.Enabled,
		).
		Suffix(`
			ON CONFLICT (campaign_id) DO UPDATE SET
				account_id = EXCLUDED.account_id,
				page_id = EXCLUDED.page_id,
				destination_url = EXCLUDED.destination_url,
				kpi = EXCLUDED.kpi,
				asset_types = EXCLUDED.asset_types,
				daily_budget = EXCLUDED.daily_budget,
				start_at = EXCLUDED.start_at,
				end_at = EXCLUDED.end_at,
				flight_hours = EXCLUDED.flight_hours,
				override_count_per_type = EXCLUDED.override_count_per_type,
				force_two_per_type = EXCLUDED.force_two_per_type,
				thresholds = EXCLUDED.thresholds,
				stop_rules = EXCLUDED.stop_rules,
				generation_context = EXCLUDED.generation_context,
				enabled = EXCLUDED.enabled,
				updated_at = CURRENT_TIMESTAMP
			RETURNING id, last_run_at, created_at, updated_at
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	var lastRunAt sql.NullTime
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&cfg.ID, &lastRunAt, &cfg.CreatedAt, &cfg.UpdatedAt); err != nil {
		return wrapDBError(err)
	}
	cfg.LastRunAt = nullTimePtr(lastRunAt)

	return nil
}

func (r *campaignConfigRepository) GetByCampaignID(ctx context.Context, campaignID string) (*domain.CampaignConfig, error) {
	query, args, err := squirrel.
		Select(campaignConfigColumns...).
		From(campaignConfigsTable).
		Where(squirrel.Eq{"cc.campaign_id": campaignID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	cfg, err := scanCampaignConfig(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear configuração: %w", err)
	}

	return cfg, nil
}

func (r *campaignConfigRepository) ListEnabled(ctx context.Context) ([]*domain.CampaignConfig, error) {
	query, args, err := squirrel.
		Select(campaignConfigColumns...).
		From(campaignConfigsTable).
		Where(squirrel.Eq{"cc.enabled": true}).
		OrderBy("cc.created_at ASC").
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

	configs := make([]*domain.CampaignConfig, 0)
	for rows.Next() {
		cfg, err := scanCampaignConfig(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear configuração: %w", err)
		}
		configs = append(configs, cfg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return configs, nil
}

func (r *campaignConfigRepository) SetEnabled(ctx context.Context, campaignID string, enabled bool) error {
	query, args, err := squirrel.
		Update("campaign_configs").
		Set("enabled", enabled).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"campaign_id": campaignID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
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
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCampaignConfig(row scanner) (*domain.CampaignConfig, error) {
	cfg := &domain.CampaignConfig{}

	var (
		startAt, endAt, lastRunAt                    sql.NullTime
		overrideCount                                sql.NullInt64
		thresholds, stopRules, generationContextJSON []byte
	)

	if err := row.Scan(
		&cfg.ID,
		&cfg.CampaignID,
		&cfg.AccountID,
		&cfg.PageID,
		&cfg.DestinationURL,
		&cfg.KPI,
		&cfg.AssetTypes,
		&cfg.DailyBudget,
		&startAt,
		&endAt,
		&cfg.FlightHours,
		&overrideCount,
		&cfg.ForceTwoPerType,
		&thresholds,
		&stopRules,
		&generationContextJSON,
		&cfg.Enabled,
		&lastRunAt,
		&cfg.CreatedAt,
		&cfg.UpdatedAt,
	); err != nil {
		return nil, err
	}

	cfg.StartAt = nullTimePtr(startAt)
	cfg.EndAt = nullTimePtr(endAt)
	cfg.LastRunAt = nullTimePtr(lastRunAt)
	if overrideCount.Valid {
		v := int(overrideCount.Int64)
		cfg.OverrideCountPerType = &v
	}

	if err := unmarshalJSONColumn(thresholds, &cfg.Thresholds); err != nil {
		return nil, err
	}
	if err := unmarshalJSONColumn(stopRules, &cfg.StopRules); err != nil {
		return nil, err
	}
	if err := unmarshalJSONColumn(generationContextJSON, &cfg.GenerationContext); err != nil {
		return nil, err
	}

	return cfg, nil
}

func nullTimePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}

func unmarshalJSONColumn(data []byte, out any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, out)
}
