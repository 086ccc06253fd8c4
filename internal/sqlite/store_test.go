// Tests for the SQLite snapshot store.
package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fabrica-tools/costbook/pkg/types"
)

func attachedStore(t *testing.T, dataDir string) *Store {
	t.Helper()

	s := NewStore()
	err := s.Attach(types.Config{Backend: types.BackendSQLite, DataDir: dataDir})
	if err != nil {
		t.Fatalf("Attach failed: %v", err)
	}
	return s
}

func TestStore_Attach(t *testing.T) {
	tmpDir := t.TempDir()

	s := attachedStore(t, tmpDir)
	defer s.Detach()

	// Verify database file created
	dbPath := filepath.Join(tmpDir, DBFileName)
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Errorf("%s not created", DBFileName)
	}

	// Verify double attach fails
	err := s.Attach(types.Config{Backend: types.BackendSQLite, DataDir: tmpDir})
	if err != types.ErrAlreadyAttached {
		t.Errorf("expected ErrAlreadyAttached, got %v", err)
	}
}

func TestStore_AttachRejectsBadConfig(t *testing.T) {
	s := NewStore()
	err := s.Attach(types.Config{Backend: "bogus"})
	if err != types.ErrBackendUnknown {
		t.Errorf("expected ErrBackendUnknown, got %v", err)
	}
}

func TestStore_Detach(t *testing.T) {
	s := attachedStore(t, t.TempDir())

	if err := s.Detach(); err != nil {
		t.Fatalf("Detach failed: %v", err)
	}

	// Verify idempotent
	if err := s.Detach(); err != nil {
		t.Errorf("second Detach should not error, got %v", err)
	}

	// Verify operations fail after detach
	ctx := context.Background()
	if _, _, err := s.Get(ctx, types.StateKey); err != types.ErrStoreDetached {
		t.Errorf("Get: expected ErrStoreDetached, got %v", err)
	}
	if err := s.Put(ctx, types.StateKey, []byte("{}")); err != types.ErrStoreDetached {
		t.Errorf("Put: expected ErrStoreDetached, got %v", err)
	}
	if err := s.Clear(ctx); err != types.ErrStoreDetached {
		t.Errorf("Clear: expected ErrStoreDetached, got %v", err)
	}
}

func TestStore_GetAbsent(t *testing.T) {
	s := attachedStore(t, t.TempDir())
	defer s.Detach()

	value, ok, err := s.Get(context.Background(), types.StateKey)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if ok {
		t.Errorf("expected absent value, got %q", value)
	}
}

func TestStore_PutGetRoundTrip(t *testing.T) {
	s := attachedStore(t, t.TempDir())
	defer s.Detach()
	ctx := context.Background()

	want := `{"materials":[],"products":[],"selectedProductCode":""}`
	if err := s.Put(ctx, types.StateKey, []byte(want)); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	value, ok, err := s.Get(ctx, types.StateKey)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !ok {
		t.Fatal("expected value present")
	}
	if string(value) != want {
		t.Errorf("Get = %q, want %q", value, want)
	}

	// Put replaces the previous value
	if err := s.Put(ctx, types.StateKey, []byte("{}")); err != nil {
		t.Fatalf("second Put failed: %v", err)
	}
	value, _, _ = s.Get(ctx, types.StateKey)
	if string(value) != "{}" {
		t.Errorf("Get after overwrite = %q, want {}", value)
	}
}

func TestStore_Clear(t *testing.T) {
	s := attachedStore(t, t.TempDir())
	defer s.Detach()
	ctx := context.Background()

	if err := s.Put(ctx, types.StateKey, []byte("{}")); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if err := s.Clear(ctx); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}

	_, ok, err := s.Get(ctx, types.StateKey)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if ok {
		t.Error("expected store empty after Clear")
	}
}

func TestStore_ValueSurvivesReattach(t *testing.T) {
	tmpDir := t.TempDir()
	ctx := context.Background()

	s := attachedStore(t, tmpDir)
	if err := s.Put(ctx, types.StateKey, []byte(`{"v":1}`)); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if err := s.Detach(); err != nil {
		t.Fatalf("Detach failed: %v", err)
	}

	s2 := attachedStore(t, tmpDir)
	defer s2.Detach()

	value, ok, err := s2.Get(ctx, types.StateKey)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !ok {
		t.Fatal("value did not survive reattach")
	}
	if string(value) != `{"v":1}` {
		t.Errorf("Get = %q after reattach", value)
	}
}
