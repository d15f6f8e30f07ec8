package numerology

import (
	"errors"
	"testing"

	"github.com/KashAmir418/Numerio-sub000/internal/domain"
)

func TestParseBirthDate_Valid(t *testing.T) {
	d, err := ParseBirthDate("1990-01-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Year != 1990 || d.Month != 1 || d.Day != 1 {
		t.Fatalf("unexpected parse: %+v", d)
	}
	if d.String() != "1990-01-01" {
		t.Fatalf("round trip mismatch: %s", d.String())
	}
}

func TestParseBirthDate_Feb29AnyYear(t *testing.T) {
	// El motor trata la fecha como fuente de dígitos, no como calendario real.
	if _, err := ParseBirthDate("2023-02-29"); err != nil {
		t.Fatalf("feb 29 on a non-leap year must parse: %v", err)
	}
}

func TestParseBirthDate_Format(t *testing.T) {
	for _, in := range []string{"", "1990/01/01", "01-01-1990", "1990-1-1", "not-a-date", "19900101"} {
		_, err := ParseBirthDate(in)
		if !errors.Is(err, domain.ErrInvalidDateFormat) {
			t.Fatalf("input %q: expected ErrInvalidDateFormat, got %v", in, err)
		}
	}
}

func TestParseBirthDate_Range(t *testing.T) {
	for _, in := range []string{"1990-00-10", "1990-13-10", "1990-05-00", "1990-05-32", "1899-05-10", "2100-05-10"} {
		_, err := ParseBirthDate(in)
		if !errors.Is(err, domain.ErrDateOutOfRange) {
			t.Fatalf("input %q: expected ErrDateOutOfRange, got %v", in, err)
		}
	}
}
