package data

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5"

	apperrors "github.com/pulsehub/activity-feed-api/internal/errors"

	"github.com/pulsehub/activity-feed-api/internal/data/pgxutil"
	"github.com/pulsehub/activity-feed-api/internal/domain/model"
)

// TenantRepo implements the TenantRepository port over the organizations
// table in Postgres.
type TenantRepo struct {
	DB *sql.DB
}

// FindByID returns the tenant or (nil, nil) when no row exists. Absence is
// not an error at this layer; the retention resolver decides what a missing
// tenant means.
func (r *TenantRepo) FindByID(ctx context.Context, id string) (*model.Tenant, error) {
	if id == "" {
		return nil, ErrTenantIDRequired
	}
	const query = `
		SELECT id, service_level, created_at
		FROM organizations
		WHERE id = $1
	`

	var tenant *model.Tenant
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, id)
		if err != nil {
			return fmt.Errorf("query tenant: %w", err)
		}
		defer rows.Close()

		found, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[model.Tenant])
		if err != nil {
			return err
		}
		tenant = found
		return nil
	}); err != nil {
		mapped := apperrors.MapDBError(err)
		if apperrors.IsNotFound(mapped) {
			return nil, nil
		}
		return nil, mapped
	}

	return tenant, nil
}
