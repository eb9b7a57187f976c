package services

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"bridal_erp_backend/internal/repositories"
)

type mockNumberingRepo struct {
	last     string
	err      error
	patterns []string
}

func (m *mockNumberingRepo) FindLastDocumentNumber(pattern string) (string, error) {
	m.patterns = append(m.patterns, pattern)
	if m.err != nil {
		return "", m.err
	}
	return m.last, nil
}

func TestNumberingNext(t *testing.T) {
	date := time.Date(2026, time.March, 14, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		format       NumberFormat
		last         string
		repoErr      error
		want         string
		wantFellBack bool
		wantPattern  string
	}{
		{
			name:        "Long format increments the year-scoped sequence",
			format:      FormatLong,
			last:        "SAL-2026-0041",
			want:        "SAL-2026-0042",
			wantPattern: `^SAL-2026-\d+$`,
		},
		{
			name:        "Long format starts at one for a fresh year",
			format:      FormatLong,
			repoErr:     repositories.ErrNotFound,
			want:        "SAL-2026-0001",
			wantPattern: `^SAL-2026-\d+$`,
		},
		{
			name:        "Short format increments the flat sequence",
			format:      FormatShort,
			last:        "SAL-0007",
			want:        "SAL-0008",
			wantPattern: `^SAL-\d+$`,
		},
		{
			name:   "Sequence survives past four digits",
			format: FormatShort,
			last:   "SAL-10233",
			want:   "SAL-10234",
		},
		{
			name:         "Scan failure falls back to date-seeded placeholder",
			format:       FormatLong,
			repoErr:      repositories.ErrDatabaseError,
			want:         "SAL-20260314-0001",
			wantFellBack: true,
		},
		{
			name:   "Unparseable history restarts the sequence",
			format: FormatShort,
			last:   "SAL-DRAFT",
			want:   "SAL-0001",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockNumberingRepo{last: tt.last, err: tt.repoErr}
			svc := NewNumberingService(repo)

			got, fellBack, err := svc.Next("SAL", tt.format, date)
			if err != nil {
				t.Fatalf("Next() returned unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Next() = %q, want %q", got, tt.want)
			}
			if fellBack != tt.wantFellBack {
				t.Errorf("Next() fellBack = %v, want %v", fellBack, tt.wantFellBack)
			}
			if tt.wantPattern != "" && (len(repo.patterns) != 1 || repo.patterns[0] != tt.wantPattern) {
				t.Errorf("Next() scanned patterns %v, want [%q]", repo.patterns, tt.wantPattern)
			}
		})
	}
}

// scanNumberingRepo applies the scan pattern against a fixed history the way
// the store does: regex match, longest number first, then lexicographic.
type scanNumberingRepo struct {
	docNumbers []string
}

func (m *scanNumberingRepo) FindLastDocumentNumber(pattern string) (string, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return "", repositories.ErrDatabaseError
	}
	best := ""
	for _, number := range m.docNumbers {
		if !re.MatchString(number) {
			continue
		}
		if len(number) > len(best) || (len(number) == len(best) && number > best) {
			best = number
		}
	}
	if best == "" {
		return "", repositories.ErrNotFound
	}
	return best, nil
}

// Short and long sequences share a prefix but must stay independent: a
// short-format scan must never seed its sequence from a long-format number.
func TestNumberingFormatsDoNotCrossSeed(t *testing.T) {
	repo := &scanNumberingRepo{docNumbers: []string{"SAL-2026-0042", "SAL-0007"}}
	svc := NewNumberingService(repo)
	date := time.Date(2026, time.April, 5, 0, 0, 0, 0, time.UTC)

	short, _, err := svc.Next("SAL", FormatShort, date)
	if err != nil {
		t.Fatalf("Next(short) returned unexpected error: %v", err)
	}
	if short != "SAL-0008" {
		t.Errorf("Next(short) = %q, want SAL-0008 (long-format history must not seed it)", short)
	}

	long, _, err := svc.Next("SAL", FormatLong, date)
	if err != nil {
		t.Fatalf("Next(long) returned unexpected error: %v", err)
	}
	if long != "SAL-2026-0043" {
		t.Errorf("Next(long) = %q, want SAL-2026-0043", long)
	}
}

// Cancelling the highest-numbered document must not release its number: the
// scan sees the cancelled row too, so the next number still moves forward.
func TestNumberingNeverReusesCancelled(t *testing.T) {
	repo := &mockNumberingRepo{last: "PUR-2026-0009"} // 0009 is cancelled but still on record
	svc := NewNumberingService(repo)

	got, _, err := svc.Next("PUR", FormatLong, time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Next() returned unexpected error: %v", err)
	}
	if got != "PUR-2026-0010" {
		t.Errorf("Next() = %q, want PUR-2026-0010 (cancelled numbers stay consumed)", got)
	}
}

func TestNumberingFallbackIsNotAnError(t *testing.T) {
	repo := &mockNumberingRepo{err: errors.New("connection reset")}
	svc := NewNumberingService(repo)

	got, fellBack, err := svc.Next("SAL", FormatShort, time.Date(2026, time.January, 2, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("numbering failure must not block entry, got error: %v", err)
	}
	if !fellBack {
		t.Error("Next() fellBack = false, want true after scan failure")
	}
	if got != "SAL-20260102-0001" {
		t.Errorf("Next() = %q, want SAL-20260102-0001", got)
	}
}
