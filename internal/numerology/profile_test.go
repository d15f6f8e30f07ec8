package numerology

import (
	"reflect"
	"testing"
	"time"

	"github.com/KashAmir418/Numerio-sub000/internal/domain"
)

func fixedNow() time.Time {
	return time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)
}

func TestComputeProfile_19900101(t *testing.T) {
	d := domain.BirthDate{Year: 1990, Month: 1, Day: 1}
	p := ComputeProfile(d, fixedNow())

	if p.LifePath != 3 {
		t.Fatalf("life path: got %d, want 3", p.LifePath)
	}
	if p.ReducedDay != 1 || p.ReducedMonth != 1 || p.ReducedYear != 1 {
		t.Fatalf("reduced triplet: got %d/%d/%d", p.ReducedDay, p.ReducedMonth, p.ReducedYear)
	}
	if p.Attitude != 2 {
		t.Fatalf("attitude: got %d, want 2", p.Attitude)
	}

	wantMatrix := domain.MatrixAnchors{Day: 1, Month: 1, Year: 19, Lower: 21, Center: 6}
	if p.Matrix != wantMatrix {
		t.Fatalf("matrix: got %+v, want %+v", p.Matrix, wantMatrix)
	}
	wantLines := domain.MatrixLines{Sky: 20, Earth: 22, Male: 2, Female: 4, Love: 10, Money: 10}
	if p.Lines != wantLines {
		t.Fatalf("lines: got %+v, want %+v", p.Lines, wantLines)
	}

	if p.Challenges != [3]int{0, 0, 0} {
		t.Fatalf("challenges: got %v", p.Challenges)
	}
	if p.Pinnacles != [4]int{2, 2, 4, 2} {
		t.Fatalf("pinnacles: got %v", p.Pinnacles)
	}
	if p.PinnacleAges != [3]int{33, 42, 51} {
		t.Fatalf("pinnacle ages: got %v", p.PinnacleAges)
	}

	wantForecast := domain.Forecast{PersonalYear: 1, PersonalMonth: 7, PersonalDay: 22, UniversalDay: 2}
	if p.Forecast != wantForecast {
		t.Fatalf("forecast: got %+v, want %+v", p.Forecast, wantForecast)
	}
}

func TestComputeProfile_IdempotentWithinDay(t *testing.T) {
	d := domain.BirthDate{Year: 1985, Month: 11, Day: 29}
	now := fixedNow()
	a := ComputeProfile(d, now)
	b := ComputeProfile(d, now.Add(3*time.Hour))
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("same ambient day must produce identical profiles:\n%+v\n%+v", a, b)
	}
}

func TestComputeProfile_MatrixRangeProperty(t *testing.T) {
	now := fixedNow()
	for year := 1900; year <= 2099; year += 7 {
		for day := 1; day <= 31; day += 3 {
			p := ComputeProfile(domain.BirthDate{Year: year, Month: (day % 12) + 1, Day: day}, now)
			anchors := []int{p.Matrix.Day, p.Matrix.Month, p.Matrix.Year, p.Matrix.Lower, p.Matrix.Center,
				p.Lines.Sky, p.Lines.Earth, p.Lines.Male, p.Lines.Female, p.Lines.Love, p.Lines.Money}
			for i, a := range anchors {
				if a < 1 || a > 22 {
					t.Fatalf("date %04d: anchor/line %d = %d outside [1,22]", year, i, a)
				}
			}
		}
	}
}

func TestComputeProfile_MasterLifePath(t *testing.T) {
	// 1984-02-05: 1+9+8+4+0+2+0+5 = 29 -> 11 (maestro intermedio preservado).
	p := ComputeProfile(domain.BirthDate{Year: 1984, Month: 2, Day: 5}, fixedNow())
	if p.LifePath != 11 {
		t.Fatalf("expected master life path 11, got %d", p.LifePath)
	}
}
