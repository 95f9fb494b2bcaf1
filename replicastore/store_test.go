package replicastore

import (
	"errors"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	s, err := Open("", WithInMemory())
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("Close() failed: %v", err)
		}
	})
	return s
}

func TestStore_SaveLoad(t *testing.T) {
	s := openTestStore(t)

	if err := s.Save("replica-a", []byte("hello")); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	got, err := s.Load("replica-a")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if string(got) != "hello" {
		t.Fatalf("Load() = %q, want %q", got, "hello")
	}
}

func TestStore_LoadMissingKey(t *testing.T) {
	s := openTestStore(t)

	_, err := s.Load("nope")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_Delete(t *testing.T) {
	s := openTestStore(t)

	if err := s.Save("replica-a", []byte("hello")); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	if err := s.Delete("replica-a"); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if _, err := s.Load("replica-a"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestStore_Keys(t *testing.T) {
	s := openTestStore(t)

	if err := s.Save("replica-a/counter", []byte("1")); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	if err := s.Save("replica-a/set", []byte("2")); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	if err := s.Save("replica-b/counter", []byte("3")); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	keys, err := s.Keys("replica-a/")
	if err != nil {
		t.Fatalf("Keys() failed: %v", err)
	}
	if len(keys) != 2 {
		t.Fatalf("expected 2 keys under replica-a/, got %d: %v", len(keys), keys)
	}
}
