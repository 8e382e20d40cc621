package storage

import (
	"context"
	"path/filepath"
	"testing"
)

func TestSQLiteRepositoryRoundTrip(t *testing.T) {
	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "warsha.db"))
	if err != nil {
		t.Fatalf("NewSQLiteRepository: %v", err)
	}
	defer repo.Close()
	ctx := context.Background()

	if err := repo.Save(ctx, testStore()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if len(loaded.Clients) != 1 || loaded.Clients[0].Phone != "0100000001" {
		t.Errorf("clients = %+v", loaded.Clients)
	}
	if len(loaded.Cars) != 1 || loaded.Cars[0].Plate != "قنا 1234" {
		t.Errorf("cars = %+v", loaded.Cars)
	}
	if len(loaded.Maintenance) != 1 || loaded.Maintenance[0].Date.String() != "2024-03-10" {
		t.Errorf("maintenance = %+v", loaded.Maintenance)
	}
	if loaded.Revenue[0].Amount.Cents != 80000 {
		t.Errorf("revenue amount = %d, want 80000", loaded.Revenue[0].Amount.Cents)
	}
	if loaded.Expenses[0].Type != "قطع غيار" {
		t.Errorf("expense type = %q", loaded.Expenses[0].Type)
	}
}

func TestSQLiteRepositorySaveReplaces(t *testing.T) {
	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "warsha.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer repo.Close()
	ctx := context.Background()

	if err := repo.Save(ctx, testStore()); err != nil {
		t.Fatal(err)
	}

	// A second save is a full replace, not an append.
	second := testStore()
	second.Clients[0].Name = "أحمد علي حسن"
	if err := repo.Save(ctx, second); err != nil {
		t.Fatal(err)
	}

	loaded, err := repo.Load(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(loaded.Clients) != 1 {
		t.Fatalf("clients = %d, want 1", len(loaded.Clients))
	}
	if loaded.Clients[0].Name != "أحمد علي حسن" {
		t.Errorf("name = %q, want updated name", loaded.Clients[0].Name)
	}
}

func TestSQLiteRepositoryLoadEmpty(t *testing.T) {
	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "warsha.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer repo.Close()

	loaded, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Clients == nil || len(loaded.Clients) != 0 {
		t.Errorf("fresh database should load an initialized empty store, got %+v", loaded)
	}
}
