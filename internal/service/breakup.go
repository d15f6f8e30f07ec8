package service

import (
	"strings"

	"github.com/KashAmir418/Numerio-sub000/internal/domain"
)

/*
========================
 Predictor de ruptura
========================
*/

// breakupKeywords mapea palabras clave de banderas rojas a razones. El
// escaneo imita al de señales de texto: primera coincidencia por bandera.
var breakupKeywords = []struct {
	needle string
	reason string
}{
	{"commanders", "A leadership vacuum fight is already scheduled; nobody RSVP'd as the follower."},
	{"contradict", "Your operating systems disagree on defaults, and daily life is mostly defaults."},
	{"escape", "One partner's security is the other's claustrophobia — the classic slow leak."},
	{"karmic", "Old-pattern gravity: this bond repeats lessons faster than it learns them."},
	{"supervision", "The cycle of rupture and repair is doing more laps than the relationship."},
	{"wiring", "Attraction is carrying loads that communication was hired for."},
	{"forgot", "Mismatched response tempos read as indifference long before anyone says so."},
	{"matching set", "When you both have the same weakness, nobody is covering that exit."},
}

// predictBreakup estima la probabilidad de ruptura a partir del total, la
// toxicidad y el desbalance lust/logic, acotada a [1,99], y clasifica el
// riesgo en cuatro bandas estrictas.
func predictBreakup(scores domain.Scores, viral domain.ViralBreakdown, signals domain.Signals) domain.BreakupPrediction {
	chance := 100 - scores.Total
	if viral.Toxic > 50 {
		chance += (viral.Toxic - 50) / 2
	}
	if diff := viral.Lust - viral.Logic; diff > 40 || diff < -40 {
		chance += 10
	}
	chance = clamp(chance, 1, 99)

	return domain.BreakupPrediction{
		Chance:    chance,
		RiskLevel: riskLevel(chance),
		Reasons:   breakupReasons(viral, signals),
	}
}

// riskLevel es una función estricta y no solapada de chance.
func riskLevel(chance int) string {
	switch {
	case chance >= 80:
		return "Critical"
	case chance >= 60:
		return "High"
	case chance >= 40:
		return "Moderate"
	default:
		return "Low"
	}
}

// breakupReasons: hasta dos razones por palabras clave de las banderas
// rojas principales, más una frase guiada por los porcentajes virales; si
// nada coincide, cae a la frase fija. Siempre devuelve al menos una.
func breakupReasons(viral domain.ViralBreakdown, signals domain.Signals) []string {
	var reasons []string
	for _, flag := range signals.RedFlags {
		if len(reasons) >= 2 {
			break
		}
		lower := strings.ToLower(flag)
		for _, kw := range breakupKeywords {
			if strings.Contains(lower, kw.needle) {
				reasons = append(reasons, kw.reason)
				break
			}
		}
	}

	switch {
	case viral.Toxic >= 60:
		reasons = append(reasons, "The toxicity meter is doing numbers your therapist would underline twice.")
	case viral.Lust > viral.Logic+30:
		reasons = append(reasons, "Chemistry this loud tends to drown out the early warning sounds.")
	case viral.Logic > viral.Lust+30:
		reasons = append(reasons, "A relationship run entirely by committee eventually files for dissolution.")
	}

	if len(reasons) == 0 {
		reasons = append(reasons, "Statistically, someone leaves a text on read and it spirals from there.")
	}
	return reasons
}
