package keyring

import (
	"testing"

	"github.com/zalando/go-keyring"
)

func TestConnectionStringRoundTrip(t *testing.T) {
	keyring.MockInit()

	if err := SetConnectionString("postgresql://coach@db.example.com:5432/stride"); err != nil {
		t.Fatalf("SetConnectionString() error = %v", err)
	}

	got, err := GetConnectionString()
	if err != nil {
		t.Fatalf("GetConnectionString() error = %v", err)
	}
	if got != "postgresql://coach@db.example.com:5432/stride" {
		t.Errorf("GetConnectionString() = %q", got)
	}

	if err := DeleteConnectionString(); err != nil {
		t.Fatalf("DeleteConnectionString() error = %v", err)
	}
	if _, err := GetConnectionString(); err != ErrNotFound {
		t.Errorf("after delete, err = %v, want ErrNotFound", err)
	}
}

func TestSetEmptyConnectionString(t *testing.T) {
	keyring.MockInit()
	if err := SetConnectionString(""); err == nil {
		t.Error("expected error for empty connection string")
	}
}
