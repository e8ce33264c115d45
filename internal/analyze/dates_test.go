package analyze

import "testing"

func TestCreationDateDecodesVendorFormat(t *testing.T) {
	meta := map[string]string{"creation_date": "D:20230101120000"}
	got, ok := CreationDate(meta)
	if !ok {
		t.Fatalf("expected a date, got absent")
	}
	if got != "2023-01-01" {
		t.Errorf("expected %q, got %q", "2023-01-01", got)
	}
}

func TestCreationDateKeepsUnparseableValueVerbatim(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"short digit block", "D:2023"},
		{"non-numeric block", "D:notadatehere14"},
		{"plain string", "January 1st, 2023"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := CreationDate(map[string]string{"created": tt.value})
			if !ok {
				t.Fatalf("expected a value, got absent")
			}
			if got != tt.value {
				t.Errorf("expected %q unchanged, got %q", tt.value, got)
			}
		})
	}
}

func TestCreationDateAliasPriority(t *testing.T) {
	meta := map[string]string{
		"created":       "2023-05-05 10:00:00",
		"creation_date": "D:20200101000000",
	}
	got, ok := CreationDate(meta)
	if !ok || got != "2023-05-05 10:00:00" {
		t.Errorf("expected first alias to win, got %q (ok=%v)", got, ok)
	}
}

func TestCreationDateSkipsEmptyAlias(t *testing.T) {
	meta := map[string]string{
		"created":       "",
		"creation_date": "D:20230101120000",
	}
	got, ok := CreationDate(meta)
	if !ok || got != "2023-01-01" {
		t.Errorf("expected fallback to next alias, got %q (ok=%v)", got, ok)
	}
}

func TestCreationDateAbsent(t *testing.T) {
	if got, ok := CreationDate(map[string]string{"title": "x"}); ok {
		t.Errorf("expected absent, got %q", got)
	}
	if got, ok := CreationDate(nil); ok {
		t.Errorf("expected absent for nil metadata, got %q", got)
	}
}

func TestRevisionDateUsesModifiedAliases(t *testing.T) {
	got, ok := RevisionDate(map[string]string{"ModDate": "D:20231231235959"})
	if !ok {
		t.Fatalf("expected a date, got absent")
	}
	if got != "2023-12-31" {
		t.Errorf("expected %q, got %q", "2023-12-31", got)
	}
}
