//go:build integration

package visit

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/Amin-Golden/GymWeb/internal/db"
	"github.com/Amin-Golden/GymWeb/internal/membership"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	postgrescontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupPostgres(t *testing.T) *sqlx.DB {
	t.Helper()
	ctx := context.Background()

	pg, err := postgrescontainer.Run(ctx, "postgres:16-alpine",
		postgrescontainer.WithDatabase("gymweb"),
		postgrescontainer.WithUsername("gymweb"),
		postgrescontainer.WithPassword("gymweb"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pg.Terminate(ctx) })

	connStr, err := pg.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	conn, err := db.Connect(connStr)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	require.NoError(t, db.RunMigrations(conn, "../../migrations"))
	return conn
}

func seedMember(t *testing.T, conn *sqlx.DB, endDate time.Time) int64 {
	t.Helper()
	var clientID, packageID, instructorID int64
	require.NoError(t, conn.Get(&clientID, `
		INSERT INTO clients (fname, dob, is_male, phone_number, social_number)
		VALUES ('Sara', '1995-04-02', FALSE, '09120000000', '0012345678') RETURNING id`))
	require.NoError(t, conn.Get(&packageID, `
		INSERT INTO packages (package_name, duration, price, days) VALUES ('Gold', '1 month', 100, 30) RETURNING id`))
	require.NoError(t, conn.Get(&instructorID, `
		INSERT INTO instructors (package_id, fname, dob, is_male, salary, title, phone_number)
		VALUES ($1, 'Reza', '1990-01-01', TRUE, 1000, 'Coach', '09350000000') RETURNING id`, packageID))
	_, err := conn.Exec(`
		INSERT INTO memberships (client_id, package_id, instructor_id, status, start_date, end_date, payment_date, is_paid)
		VALUES ($1, $2, $3, 'active', NOW() - INTERVAL '1 day', $4, NOW(), TRUE)`,
		clientID, packageID, instructorID, endDate)
	require.NoError(t, err)
	return clientID
}

func TestLedger_ConcurrentEntriesKeepOneOpenVisit(t *testing.T) {
	conn := setupPostgres(t)
	clientID := seedMember(t, conn, time.Now().Add(24*time.Hour))

	gate := NewService(NewRepository(conn), membership.NewEligibility(membership.NewRepository(conn)))

	const attempts = 16
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		admitted int
		present  int
	)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := gate.Enter(context.Background(), clientID, nil)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				admitted++
			case assert.ErrorIs(t, err, ErrAlreadyPresent):
				present++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, admitted)
	assert.Equal(t, attempts-1, present)

	var open int
	require.NoError(t, conn.Get(&open, `SELECT COUNT(*) FROM gym_sessions WHERE client_id = $1 AND exit_time IS NULL`, clientID))
	assert.Equal(t, 1, open)
}

func TestLedger_CloseTwiceKeepsFirstExit(t *testing.T) {
	conn := setupPostgres(t)
	clientID := seedMember(t, conn, time.Now().Add(24*time.Hour))
	ledger := NewRepository(conn)
	ctx := context.Background()

	entered := time.Now().UTC().Truncate(time.Microsecond)
	v, err := ledger.OpenVisit(ctx, clientID, entered, nil)
	require.NoError(t, err)

	firstExit := entered.Add(time.Hour)
	closedVisit, closed, err := ledger.CloseVisit(ctx, v.ID.Int64(), firstExit)
	require.NoError(t, err)
	assert.True(t, closed)
	assert.True(t, firstExit.Equal(*closedVisit.ExitTime))

	again, closed, err := ledger.CloseVisit(ctx, v.ID.Int64(), firstExit.Add(time.Hour))
	require.NoError(t, err)
	assert.False(t, closed)
	assert.True(t, firstExit.Equal(*again.ExitTime))

	_, err = ledger.OpenVisit(ctx, clientID, firstExit.Add(2*time.Hour), nil)
	assert.NoError(t, err)
}

func TestLedger_ConcurrentExitsCloseOnce(t *testing.T) {
	conn := setupPostgres(t)
	clientID := seedMember(t, conn, time.Now().Add(24*time.Hour))
	ledger := NewRepository(conn)
	ctx := context.Background()

	entered := time.Now().Add(-time.Hour).UTC().Truncate(time.Microsecond)
	v, err := ledger.OpenVisit(ctx, clientID, entered, nil)
	require.NoError(t, err)

	const attempts = 8
	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		closes int
		exits  []time.Time
	)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			at := entered.Add(time.Duration(i+1) * time.Minute)
			got, closed, err := ledger.CloseVisit(ctx, v.ID.Int64(), at)
			if !assert.NoError(t, err) {
				return
			}
			mu.Lock()
			defer mu.Unlock()
			if closed {
				closes++
			}
			exits = append(exits, *got.ExitTime)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, closes)
	require.Len(t, exits, attempts)
	for _, e := range exits[1:] {
		assert.True(t, exits[0].Equal(e))
	}
}
