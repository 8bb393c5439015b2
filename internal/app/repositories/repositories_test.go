package repositories

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/deren/greenhub/internal/app/models"
	"github.com/deren/greenhub/internal/pkg/apperrors"
)

// testPool connects to the database named by GREENHUB_TEST_DATABASE_URL.
// These tests exercise real SQL (ILIKE search, unique constraints) and skip
// when no database is available.
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("GREENHUB_TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("GREENHUB_TEST_DATABASE_URL not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	if err := pool.Ping(ctx); err != nil {
		t.Fatalf("ping: %v", err)
	}
	t.Cleanup(pool.Close)
	return pool
}

func createTestUser(t *testing.T, pool *pgxpool.Pool, username string) int64 {
	t.Helper()
	repo := NewUserRepository(pool)
	id, err := repo.Create(context.Background(), &models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "x",
	})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	t.Cleanup(func() {
		_ = repo.Delete(context.Background(), id)
	})
	return id
}

func TestPostSearchIsCaseInsensitive(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	userID := createTestUser(t, pool, fmt.Sprintf("searcher%d", time.Now().UnixNano()))

	posts := NewPostRepository(pool)
	marker := fmt.Sprintf("Compost-%d", time.Now().UnixNano())

	id1, err := posts.Create(ctx, &models.Post{Title: marker + " Workshop", Content: "soil", AuthorID: userID})
	if err != nil {
		t.Fatalf("create post: %v", err)
	}
	t.Cleanup(func() { _ = posts.Delete(ctx, id1) })

	id2, err := posts.Create(ctx, &models.Post{Title: "Other", Content: "all about " + marker, AuthorID: userID})
	if err != nil {
		t.Fatalf("create post: %v", err)
	}
	t.Cleanup(func() { _ = posts.Delete(ctx, id2) })

	// Lowercased query must match both title and content hits.
	found, err := posts.GetAll(ctx, "compost-")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	got := map[int64]bool{}
	for _, p := range found {
		got[p.ID] = true
	}
	if !got[id1] || !got[id2] {
		t.Fatalf("search missed rows: got %v, want %d and %d", got, id1, id2)
	}

	// Newest-first ordering.
	for i := 1; i < len(found); i++ {
		if found[i-1].CreatedAt.Before(found[i].CreatedAt) {
			t.Fatalf("posts not ordered newest-first")
		}
	}
}

func TestVolunteerRequestUniquePerUser(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	userID := createTestUser(t, pool, fmt.Sprintf("volunteer%d", time.Now().UnixNano()))

	requests := NewVolunteerRequestRepository(pool)
	req := &models.VolunteerRequest{
		UserID:         &userID,
		Name:           "alice",
		Email:          "alice@example.com",
		Phone:          "0501234567",
		AreaOfInterest: "tree planting",
		Availability:   "weekends",
	}
	if _, err := requests.Create(ctx, req); err != nil {
		t.Fatalf("first create: %v", err)
	}

	// The unique constraint, not just the service precheck, rejects a second
	// row for the same user.
	_, err := requests.Create(ctx, &models.VolunteerRequest{
		UserID:         &userID,
		Name:           "alice",
		Email:          "alice@example.com",
		Phone:          "0501234567",
		AreaOfInterest: "composting",
		Availability:   "evenings",
	})
	if !errors.Is(err, apperrors.ErrDuplicateRequest) {
		t.Fatalf("expected duplicate request error, got %v", err)
	}
}
