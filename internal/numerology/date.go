package numerology

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/KashAmir418/Numerio-sub000/internal/domain"
)

var isoDateRe = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)

// ParseBirthDate valida una fecha ISO YYYY-MM-DD. El motor no valida el
// calendario real (29 de febrero pasa en cualquier año): las fechas son
// fuente de dígitos, pero día y mes sí deben estar en rango y el año en
// una banda histórica razonable.
func ParseBirthDate(s string) (domain.BirthDate, error) {
	m := isoDateRe.FindStringSubmatch(s)
	if m == nil {
		return domain.BirthDate{}, fmt.Errorf("%w: %q", domain.ErrInvalidDateFormat, s)
	}

	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])

	if day < 1 || day > 31 || month < 1 || month > 12 {
		return domain.BirthDate{}, fmt.Errorf("%w: %q", domain.ErrDateOutOfRange, s)
	}
	if year < 1900 || year > 2099 {
		return domain.BirthDate{}, fmt.Errorf("%w: %q", domain.ErrDateOutOfRange, s)
	}

	return domain.BirthDate{Year: year, Month: month, Day: day}, nil
}
