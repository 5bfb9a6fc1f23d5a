package backend

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/geodata-tools/registrant/pkg/registrant"
)

func TestDetect(t *testing.T) {
	gdbPath := filepath.Join(t.TempDir(), "parcels.geodatabase")
	if err := os.WriteFile(gdbPath, []byte("stub"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		target  string
		want    registrant.BackendKind
		wantErr bool
	}{
		{"postgresql URI", "postgresql://user@host/gisdb", registrant.KindEnterprise, false},
		{"postgres URI", "postgres://host/gisdb", registrant.KindEnterprise, false},
		{"ADO.NET string", "Host=localhost;Database=gisdb", registrant.KindEnterprise, false},
		{"existing file", gdbPath, registrant.KindFileGDB, false},
		{"missing file", filepath.Join(t.TempDir(), "nope.geodatabase"), "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Detect(tt.target)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Detect(%q) succeeded with %q, want error", tt.target, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Detect(%q) failed: %v", tt.target, err)
			}
			if got != tt.want {
				t.Errorf("Detect(%q) = %q, want %q", tt.target, got, tt.want)
			}
		})
	}
}

func TestDetect_EmptyTargetError(t *testing.T) {
	_, err := Detect("")
	if !errors.Is(err, registrant.ErrInvalidConfig) {
		t.Errorf("Detect(\"\") error = %v, want ErrInvalidConfig", err)
	}
}
