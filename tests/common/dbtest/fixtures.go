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
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by both *pgxpool.Pool and pgx.Tx, so fixtures work
// inside and outside an open transaction.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func CreateTestRoom(t *testing.T, db DBLike, number, roomType string, rateCentsPerNight int64) uuid.UUID {
	t.Helper()

	roomID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO rooms (id, number, room_type, capacity, rate_cents_per_night, status) VALUES ($1, $2, $3, 2, $4, 'AVAILABLE') ON CONFLICT (number) DO NOTHING",
		roomID, number, roomType, rateCentsPerNight)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM rooms WHERE number = $1", number).Scan(&roomID)
	}

	return roomID
}

func SetRoomStatus(t *testing.T, db DBLike, roomID uuid.UUID, status string) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"UPDATE rooms SET status = $2, updated_at = now() WHERE id = $1", roomID, status)
	require.NoError(t, err)
}

// CreateTestReservation inserts a reservation row directly, bypassing the
// booking flow. Amounts are fixed values good enough for list and lifecycle
// tests that do not assert on pricing.
func CreateTestReservation(t *testing.T, db DBLike, guestID, roomID uuid.UUID, checkIn, checkOut time.Time, status string) uuid.UUID {
	t.Helper()

	reservationID := uuid.New()
	number := "RES-" + fmt.Sprintf("%d-%04d", checkIn.Year(), time.Now().UnixNano()%10000)

	_, err := db.Exec(context.Background(),
		`INSERT INTO reservations (id, number, guest_id, room_id, check_in, check_out, guests,
		  total_cents, discount_cents, tax_cents, final_cents, status)
		 VALUES ($1, $2, $3, $4, $5, $6, 2, 30000, 0, 3000, 34500, $7)`,
		reservationID, number, guestID, roomID, checkIn, checkOut, status)
	require.NoError(t, err)

	return reservationID
}

// SeedReferenceData exists for symmetry with the reset flow; the booking
// schema has no reference tables, every test seeds its own rooms.
func SeedReferenceData(_ *pgxpool.Pool) error {
	return nil
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
