package database

import "testing"

func TestDBFileName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		path string
		want string
	}{
		{"plain path", "loancam.db", "loancam.db"},
		{"relative path", "./data/loancam.db", "./data/loancam.db"},
		{"file prefix", "file:loancam.db", "loancam.db"},
		{"connection parameters", "loancam.db?cache=shared&mode=rwc", "loancam.db"},
		{"file prefix with parameters", "file:loancam.db?cache=shared", "loancam.db"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := dbFileName(tt.path); got != tt.want {
				t.Errorf("dbFileName(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestApplyMigrationsNilDB(t *testing.T) {
	t.Parallel()

	if err := ApplyMigrations(nil, "loancam.db"); err == nil {
		t.Error("expected error for nil database connection")
	}
	if err := ApplyMigrations(nil, ""); err == nil {
		t.Error("expected error for empty database name")
	}
}
