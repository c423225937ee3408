package subscriberstore

import (
	"errors"
	"testing"

	"github.com/z-bubblegum/nigelleadmagnet/internal/testutil"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestStore_Insert_And_GetByEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	sub, err := store.Insert(ctx, "Jane@Example.com", "calculator", map[string]any{
		"target_monthly_revenue": 50000.0,
	})
	if err != nil {
		t.Fatalf("Insert() error = %v", err)
	}
	if sub.Email != "Jane@Example.com" {
		t.Errorf("Insert() Email = %q, want original casing preserved", sub.Email)
	}
	if sub.EmailCI != "jane@example.com" {
		t.Errorf("Insert() EmailCI = %q, want folded %q", sub.EmailCI, "jane@example.com")
	}
	if sub.CreatedAt.IsZero() {
		t.Error("Insert() CreatedAt is zero")
	}

	// Lookup with different casing should find the same subscriber.
	got, err := store.GetByEmail(ctx, "JANE@example.COM")
	if err != nil {
		t.Fatalf("GetByEmail() error = %v", err)
	}
	if got.ID != sub.ID {
		t.Errorf("GetByEmail() ID = %v, want %v", got.ID, sub.ID)
	}
}

func TestStore_Insert_DuplicateEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.Insert(ctx, "jane@example.com", "calculator", nil); err != nil {
		t.Fatalf("first Insert() error = %v", err)
	}

	// Same email with different casing hits the unique email_ci index.
	_, err := store.Insert(ctx, "Jane@Example.com", "calculator", nil)
	if !errors.Is(err, ErrAlreadySubscribed) {
		t.Fatalf("second Insert() error = %v, want ErrAlreadySubscribed", err)
	}

	n, err := store.Count(ctx)
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if n != 1 {
		t.Errorf("Count() = %d, want 1", n)
	}
}

func TestStore_GetByEmail_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.GetByEmail(ctx, "nobody@example.com")
	if !errors.Is(err, mongo.ErrNoDocuments) {
		t.Errorf("GetByEmail() error = %v, want mongo.ErrNoDocuments", err)
	}
}

func TestStore_List_NewestFirst(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	emails := []string{"a@example.com", "b@example.com", "c@example.com"}
	for _, e := range emails {
		if _, err := store.Insert(ctx, e, "calculator", nil); err != nil {
			t.Fatalf("Insert(%q) error = %v", e, err)
		}
	}

	subs, err := store.List(ctx, 0)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(subs) != 3 {
		t.Fatalf("List() returned %d subscribers, want 3", len(subs))
	}
	// Newest first: created_at descending.
	for i := 1; i < len(subs); i++ {
		if subs[i].CreatedAt.After(subs[i-1].CreatedAt) {
			t.Errorf("List() not sorted newest-first at index %d", i)
		}
	}

	limited, err := store.List(ctx, 2)
	if err != nil {
		t.Fatalf("List(limit=2) error = %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("List(limit=2) returned %d subscribers, want 2", len(limited))
	}
}
