//go:build e2e

package repository_test

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"lesson-booking/internal/infra/db"
	"lesson-booking/internal/pkg/config"

	"github.com/docker/go-connections/nat"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

var (
	postgresContainerOnce sync.Once
	postgresTestContainer testcontainers.Container

	testUser     = "test"
	testPassword = "testpass"
)

func startPostgresContainerOnce(t *testing.T) {
	postgresContainerOnce.Do(func() {
		req := testcontainers.ContainerRequest{
			Image:        "postgres:17",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     testUser,
				"POSTGRES_PASSWORD": testPassword,
				"POSTGRES_DB":       "postgres",
			},
			Tmpfs: map[string]string{
				"/var/lib/postgresql/data": "rw,size=256m",
			},
			Cmd: []string{
				"postgres",
				"-c", "fsync=off",
				"-c", "synchronous_commit=off",
				"-c", "full_page_writes=off",
			},
			WaitingFor: wait.ForSQL("5432/tcp", "pgx", func(host string, port nat.Port) string {
				return fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
					testUser, testPassword, host, port.Port())
			}).WithStartupTimeout(60 * time.Second),
			Labels: map[string]string{"purpose": "repository-tests"},
		}

		ctx, cancel := context.WithTimeout(context.Background(), 180*time.Second)
		defer cancel()

		var err error
		postgresTestContainer, err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: req,
			Started:          true,
		})
		require.NoError(t, err, "failed to start PostgreSQL container")

		t.Cleanup(func() {
			if postgresTestContainer != nil {
				termCtx, termCancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer termCancel()
				if err := postgresTestContainer.Terminate(termCtx); err != nil {
					slog.Warn("failed to terminate PostgreSQL container", "error", err.Error())
				}
			}
		})
	})
}

// setupTestDatabase creates a fresh database on the shared container and
// applies the embedded schema to it.
func setupTestDatabase(t *testing.T) *pgxpool.Pool {
	t.Helper()
	startPostgresContainerOnce(t)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	host, err := postgresTestContainer.Host(ctx)
	require.NoError(t, err)
	mappedPort, err := postgresTestContainer.MappedPort(ctx, nat.Port("5432/tcp"))
	require.NoError(t, err)

	dbName := "testdb_" + uuid.New().String()[:8]
	adminDSN := fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
		testUser, testPassword, host, mappedPort.Port())

	adminPool, err := pgxpool.New(ctx, adminDSN)
	require.NoError(t, err, "failed to open admin connection")
	defer adminPool.Close()

	_, err = adminPool.Exec(ctx, "CREATE DATABASE "+dbName)
	require.NoError(t, err, "failed to create test database")

	cfg := config.DBConfig{
		Host:     host,
		Port:     mappedPort.Port(),
		User:     testUser,
		Password: testPassword,
		DBName:   dbName,
		SSLMode:  "disable",
		TimeZone: "Europe/London",
	}

	pool, cleanup, err := db.Connect(cfg)
	require.NoError(t, err, "failed to connect to test database")
	t.Cleanup(cleanup)

	require.NoError(t, db.EnsureSchema(ctx, pool), "failed to apply schema")

	return pool
}

// RepositorySuite resets table state before every subtest.
type RepositorySuite struct {
	suite.Suite
	pool *pgxpool.Pool
}

func (s *RepositorySuite) SetupSuite() {
	s.pool = setupTestDatabase(s.T())
}

func (s *RepositorySuite) SetupSubTest() {
	_, err := s.pool.Exec(context.Background(), "TRUNCATE lessons, orders")
	require.NoError(s.T(), err, "failed to reset tables")
}

func (s *RepositorySuite) insertLesson(topic string, price int32, location string, space int32) uuid.UUID {
	s.T().Helper()
	var id uuid.UUID
	err := s.pool.QueryRow(context.Background(),
		"INSERT INTO lessons (topic, price, location, space) VALUES ($1, $2, $3, $4) RETURNING id",
		topic, price, location, space,
	).Scan(&id)
	require.NoError(s.T(), err, "failed to insert lesson fixture")
	return id
}

func (s *RepositorySuite) lessonSpace(id uuid.UUID) int32 {
	s.T().Helper()
	var space int32
	err := s.pool.QueryRow(context.Background(),
		"SELECT space FROM lessons WHERE id = $1", id,
	).Scan(&space)
	require.NoError(s.T(), err)
	return space
}
