package service

import (
	"github.com/KashAmir418/Numerio-sub000/internal/domain"
	"github.com/KashAmir418/Numerio-sub000/internal/numerology"
)

/*
========================
 Pares secundarios texto+puntaje
========================
*/

// computeSynergy puntúa la alineación de los años personales vigentes.
func computeSynergy(a, b domain.NumericProfile) domain.TextScore {
	pyA, pyB := a.Forecast.PersonalYear, b.Forecast.PersonalYear
	sum := numerology.Reduce(pyA+pyB, false)

	switch {
	case pyA == pyB:
		return domain.TextScore{Score: 90, Text: "Your personal years are synchronized: the same chapter, read aloud together."}
	case sum == 3 || sum == 6 || sum == 9:
		return domain.TextScore{Score: 78, Text: "Your cycles harmonize into a creative third rhythm neither of you runs alone."}
	case sum == 1 || sum == 5:
		return domain.TextScore{Score: 68, Text: "Your years point different directions, but the friction is generative if you let it be."}
	default:
		return domain.TextScore{Score: 55, Text: "Out-of-phase cycles: one of you is planting while the other harvests. Trade notes."}
	}
}

var timingTexts = []string{
	"The day numbers align: decisions made today land softer than usual.",
	"A neutral day for this pairing — no cosmic tailwind, no headwind either.",
	"Your rhythms are slightly offset today; let the slower one set the pace.",
	"A charged day: small gestures carry double weight, in both directions.",
}

// computeTiming compara los días personales contra el día universal y elige
// la frase con el selector diario, así rota de un día al siguiente.
func computeTiming(a, b domain.NumericProfile, day string) domain.TextScore {
	pdA, pdB := a.Forecast.PersonalDay, b.Forecast.PersonalDay

	score := 85 - absDiff(pdA, pdB)*5
	if pdA == a.Forecast.UniversalDay || pdB == b.Forecast.UniversalDay {
		score += 8
	}
	score = clamp(score, 40, 95)

	text := timingTexts[numerology.SelectVariant(pdA+pdB, day, len(timingTexts))]
	return domain.TextScore{Score: score, Text: text}
}

// computeAttitude compara los números de actitud: igualdad, misma paridad
// u oposición.
func computeAttitude(a, b domain.NumericProfile) domain.TextScore {
	switch {
	case a.Attitude == b.Attitude:
		return domain.TextScore{Score: 85, Text: "Identical attitude numbers: you present to the world as a single unit."}
	case a.Attitude%2 == b.Attitude%2:
		return domain.TextScore{Score: 70, Text: "Same polarity, different frequency — your first impressions rhyme without repeating."}
	default:
		return domain.TextScore{Score: 50, Text: "Opposed attitudes: one leads with motion, one with stillness. Strangers notice. You stopped noticing."}
	}
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
