package integration

import (
	"context"
	"database/sql"
	"fmt"
	stdhttp "net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	apihttp "github.com/eventojovem/api/internal/adapters/handler/http"
	pgrepo "github.com/eventojovem/api/internal/adapters/repository/postgres"
	"github.com/eventojovem/api/internal/core/services"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"golang.org/x/crypto/bcrypt"
)

const testJWTSecret = "test-secret"

type testApp struct {
	Container testcontainers.Container
	DB        *sql.DB
	Server    *httptest.Server
	Client    *stdhttp.Client
}

func setupPostgresContainer(ctx context.Context) (testcontainers.Container, string, error) {
	dbName := "testdb"
	user := "user"
	password := "password"

	pgContainer, err := postgres.Run(ctx, "postgres:15-alpine",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(user),
		postgres.WithPassword(password),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second),
		),
	)
	if err != nil {
		return nil, "", fmt.Errorf("failed to start postgres container: %w", err)
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, "", err
	}

	return pgContainer, connStr, nil
}

func applyMigrations(db *sql.DB) error {
	dirPath := "../../internal/adapters/repository/postgres/migrations"

	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return fmt.Errorf("failed to read migrations directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		if !strings.HasSuffix(entry.Name(), "up.sql") {
			continue
		}

		fullPath := filepath.Join(dirPath, entry.Name())
		content, err := os.ReadFile(fullPath)
		if err != nil {
			return fmt.Errorf("failed to read migration file %s: %w", entry.Name(), err)
		}

		_, err = db.Exec(string(content))
		if err != nil {
			return fmt.Errorf("failed to execute migration %s: %w", entry.Name(), err)
		}
	}

	return nil
}

func setupTestApp(t *testing.T) *testApp {
	t.Helper()
	ctx := context.Background()

	container, connStr, err := setupPostgresContainer(ctx)
	require.NoError(t, err)

	db, err := sql.Open("postgres", connStr)
	require.NoError(t, err)
	require.NoError(t, applyMigrations(db))

	userRepo := pgrepo.NewUserRepository(db)
	participantRepo := pgrepo.NewParticipantRepository(db)

	authService := services.NewAuthService(userRepo, []byte(testJWTSecret))
	userService := services.NewUserService(userRepo)
	participantService := services.NewParticipantService(participantRepo)

	handler := apihttp.NewHandler(
		authService,
		apihttp.NewUserHandler(userService, authService),
		apihttp.NewParticipantHandler(participantService),
	)
	server := httptest.NewServer(handler)

	return &testApp{
		Container: container,
		DB:        db,
		Server:    server,
		Client:    server.Client(),
	}
}

func (a *testApp) Teardown(t *testing.T) {
	t.Helper()
	a.Server.Close()
	require.NoError(t, a.DB.Close())
	require.NoError(t, a.Container.Terminate(context.Background()))
}

// createUserAndToken inserts a user with the given role and returns its id
// plus a session token signed with the test secret.
func createUserAndToken(t *testing.T, db *sql.DB, role string) (uuid.UUID, string) {
	t.Helper()

	userID := uuid.New()
	email := fmt.Sprintf("user-%s@example.com", userID)
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	_, err = db.Exec(`
		INSERT INTO users (id, full_name, email, cpf, birth_date, district, church, role, password_hash)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		userID, fmt.Sprintf("User %s", userID), email, userID.String(),
		time.Date(1995, time.May, 10, 0, 0, 0, 0, time.UTC), "Centro", "Sede", role, string(hash),
	)
	require.NoError(t, err)

	claims := jwt.MapClaims{
		"sub":   userID.String(),
		"email": email,
		"role":  role,
		"exp":   time.Now().Add(time.Hour).Unix(),
		"iat":   time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	return userID, signedToken
}
