package store

import (
	"context"
	"database/sql"
	"os"
	"testing"

	_ "github.com/jackc/pgx/v5/stdlib"

	"webcraft/internal/database"
	"webcraft/internal/models"
)

// testDSN returns the PostgreSQL connection string for testing.
// Uses environment variables with defaults matching docker-compose.yml.
func testDSN() string {
	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "webcraft")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "webcraft")
	return "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB opens a connection to the test database and runs migrations.
// If the database is unavailable, the test is skipped.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("pgx", testDSN())
	if err != nil {
		t.Skipf("skipping integration test: cannot open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping integration test: DB not reachable: %v", err)
	}

	if err := database.Migrate(context.Background(), db); err != nil {
		db.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	t.Cleanup(func() {
		db.Exec("DELETE FROM websites WHERE prompt LIKE 'integration-%'")
		db.Close()
	})
	return db
}

func TestPostgresStoreRoundTrip(t *testing.T) {
	db := testDB(t)
	s := NewPostgresStore(db)
	ctx := context.Background()

	created, err := s.Create(ctx, models.WebsiteDraft{
		Prompt:     "integration-roundtrip",
		TemplateID: "business",
		Content: models.Content{
			Title:    "Acme",
			Sections: []models.Section{{Type: models.SectionFooter, CompanyName: "Acme Inc"}},
		},
		HTML: "<h1>Acme</h1>",
		CSS:  "h1{}",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := s.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Content.Sections[0].CompanyName != "Acme Inc" {
		t.Errorf("content: got %+v", got.Content)
	}

	next, err := s.Create(ctx, models.WebsiteDraft{Prompt: "integration-next", TemplateID: "chat"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if next.ID <= created.ID {
		t.Errorf("ids not increasing: %d then %d", created.ID, next.ID)
	}
}
