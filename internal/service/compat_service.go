package service

import (
	"time"

	"go.uber.org/zap"

	"github.com/KashAmir418/Numerio-sub000/internal/domain"
	"github.com/KashAmir418/Numerio-sub000/internal/numerology"
)

// CompatibilityService orquesta el cálculo completo de una lectura: perfiles,
// puntajes, narrativa y métricas derivadas. Todo el pipeline es síncrono y
// puro; el único reloj ambiente es "now", capturado una sola vez por llamada
// para no cruzar medianoche a mitad de cálculo.
type CompatibilityService struct {
	logger *zap.Logger
}

func NewCompatibilityService(logger *zap.Logger) *CompatibilityService {
	return &CompatibilityService{logger: logger}
}

// Profile calcula el perfil numérico de una fecha contra el reloj actual.
func (s *CompatibilityService) Profile(date string) (domain.NumericProfile, error) {
	return s.ProfileAt(date, time.Now())
}

// ProfileAt es la variante con reloj fijable para tests.
func (s *CompatibilityService) ProfileAt(date string, now time.Time) (domain.NumericProfile, error) {
	d, err := numerology.ParseBirthDate(date)
	if err != nil {
		return domain.NumericProfile{}, err
	}
	return numerology.ComputeProfile(d, now), nil
}

// Compute es el punto de entrada del motor.
func (s *CompatibilityService) Compute(dateA, dateB, nameA, nameB string) (domain.CompatibilityResult, error) {
	return s.ComputeAt(dateA, dateB, nameA, nameB, time.Now())
}

// ComputeAt construye el resultado inmutable para un par de fechas y
// nombres. Los generadores derivados consumen solo resultados ya
// calculados: el orden entre ellos no importa salvo que señales y ruptura
// van después del scorer y del desglose viral.
func (s *CompatibilityService) ComputeAt(dateA, dateB, nameA, nameB string, now time.Time) (domain.CompatibilityResult, error) {
	da, err := numerology.ParseBirthDate(dateA)
	if err != nil {
		return domain.CompatibilityResult{}, err
	}
	db, err := numerology.ParseBirthDate(dateB)
	if err != nil {
		return domain.CompatibilityResult{}, err
	}

	if nameA == "" {
		nameA = "Person A"
	}
	if nameB == "" {
		nameB = "Person B"
	}

	pa := numerology.ComputeProfile(da, now)
	pb := numerology.ComputeProfile(db, now)
	day := now.Format("2006-01-02")

	scores, parts := scorePair(pa, pb)
	block, reversed := lookupNarrative(pa.LifePath, pb.LifePath)
	narrative := resolveNarrative(block, reversed, pa.LifePath, pb.LifePath, nameA, nameB, day)
	viral := computeViral(pa, pb, parts)
	signals := buildSignals(pa, pb, scores, parts, viral, block)
	breakup := predictBreakup(scores, viral, signals)

	conflict, err := buildConflict(pa, pb, nameA, nameB)
	if err != nil {
		// Contenido faltante: el campo opcional se omite, el cálculo sigue.
		s.logger.Debug("conflict matrix omitted", zap.Error(err))
		conflict = nil
	}

	return domain.CompatibilityResult{
		PersonA:   summarize(pa, nameA),
		PersonB:   summarize(pb, nameB),
		Scores:    scores,
		Narrative: narrative,
		Synergy:   computeSynergy(pa, pb),
		Timing:    computeTiming(pa, pb, day),
		Attitude:  computeAttitude(pa, pb),
		Viral:     viral,
		Signals:   signals,
		Breakup:   breakup,
		Conflict:  conflict,
		Day:       day,
	}, nil
}

func summarize(p domain.NumericProfile, name string) domain.ProfileSummary {
	return domain.ProfileSummary{
		Date:         p.Date.String(),
		Name:         name,
		LifePath:     p.LifePath,
		PersonalYear: p.Forecast.PersonalYear,
		DayAnchor:    p.Matrix.Day,
	}
}
