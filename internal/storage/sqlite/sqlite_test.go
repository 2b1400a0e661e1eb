package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestSQLiteStore(t *testing.T) {
	// Create temp directory for test database
	tempDir, err := os.MkdirTemp("", "billease-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	dbPath := filepath.Join(tempDir, "nested", "test.db")
	store, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	defer store.Close()

	ctx := context.Background()

	t.Run("Get returns nil for missing key", func(t *testing.T) {
		value, err := store.Get(ctx, "billease-expenses")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if value != nil {
			t.Errorf("Expected nil value, got %q", value)
		}
	})

	t.Run("PutAll writes every key", func(t *testing.T) {
		err := store.PutAll(ctx, map[string][]byte{
			"billease-participants": []byte(`[{"id":"p1","name":"Alice"}]`),
			"billease-groups":       []byte(`[]`),
		})
		if err != nil {
			t.Fatalf("PutAll failed: %v", err)
		}

		participants, err := store.Get(ctx, "billease-participants")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if string(participants) != `[{"id":"p1","name":"Alice"}]` {
			t.Errorf("Unexpected participants: %s", participants)
		}

		groups, err := store.Get(ctx, "billease-groups")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if string(groups) != `[]` {
			t.Errorf("Unexpected groups: %s", groups)
		}
	})

	t.Run("PutAll overwrites existing keys", func(t *testing.T) {
		if err := store.PutAll(ctx, map[string][]byte{"billease-current-group": []byte(`"a"`)}); err != nil {
			t.Fatalf("PutAll failed: %v", err)
		}
		if err := store.PutAll(ctx, map[string][]byte{"billease-current-group": []byte(`"b"`)}); err != nil {
			t.Fatalf("PutAll failed: %v", err)
		}

		value, err := store.Get(ctx, "billease-current-group")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if string(value) != `"b"` {
			t.Errorf("Expected overwritten value, got %s", value)
		}
	})

	t.Run("PutAll with canceled context writes nothing", func(t *testing.T) {
		canceled, cancel := context.WithCancel(ctx)
		cancel()

		err := store.PutAll(canceled, map[string][]byte{"billease-canceled": []byte(`1`)})
		if err == nil {
			t.Fatal("Expected error for canceled context")
		}

		value, err := store.Get(ctx, "billease-canceled")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if value != nil {
			t.Errorf("Expected no value after failed PutAll, got %s", value)
		}
	})
}

func TestSQLiteStore_Reopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "reopen.db")
	ctx := context.Background()

	store, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	if err := store.PutAll(ctx, map[string][]byte{"k": []byte("v")}); err != nil {
		t.Fatalf("PutAll failed: %v", err)
	}
	store.Close()

	reopened, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to reopen store: %v", err)
	}
	defer reopened.Close()

	value, err := reopened.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(value) != "v" {
		t.Errorf("Expected persisted value, got %q", value)
	}
}
