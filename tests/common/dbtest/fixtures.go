//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DefaultServiceCenter is seeded by SeedReferenceData.
const DefaultServiceCenter = "City Hospital"

func CreateServiceCenter(t *testing.T, db DBLike, name string) uuid.UUID {
	t.Helper()

	ctx := context.Background()
	id := uuid.New()
	tag, err := db.Exec(ctx, "INSERT INTO service_centers (id, name) VALUES ($1, $2) ON CONFLICT (name) DO NOTHING", id, name)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		require.NoError(t, db.QueryRow(ctx, "SELECT id FROM service_centers WHERE name = $1", name).Scan(&id))
	}
	return id
}

func CreateDepartment(t *testing.T, db DBLike, serviceCenterID uuid.UUID, name string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO departments (id, service_center_id, name, is_active) VALUES ($1, $2, $3, true)",
		id, serviceCenterID, name)
	require.NoError(t, err)
	return id
}

// CreateTimeSlot adds a daily window; start and end are "HH:MM" in the queue zone.
func CreateTimeSlot(t *testing.T, db DBLike, departmentID uuid.UUID, start, end string, capacity, avgServiceMinutes int) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO time_slots (id, department_id, start_time, end_time, capacity, avg_service_minutes) VALUES ($1, $2, $3::time, $4::time, $5, $6)",
		id, departmentID, start, end, capacity, avgServiceMinutes)
	require.NoError(t, err)
	return id
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	_, err := pool.Exec(context.Background(),
		"INSERT INTO service_centers (name) VALUES ($1) ON CONFLICT (name) DO NOTHING", DefaultServiceCenter)
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
