package service

import (
	"github.com/KashAmir418/Numerio-sub000/internal/content"
	"github.com/KashAmir418/Numerio-sub000/internal/domain"
)

/*
========================
 Generador de señales
========================
*/

// buildSignals arma las listas de banderas: primero reglas dinámicas sobre
// el par, luego umbrales del desglose viral y paridad de actitud, y al
// final se recorta al conteo objetivo rellenando desde las listas estáticas
// del bloque resuelto. Nunca se inserta la misma cadena dos veces.
func buildSignals(a, b domain.NumericProfile, scores domain.Scores, parts scoreParts, viral domain.ViralBreakdown, static domain.NarrativeBlock) domain.Signals {
	var greens, reds []string

	// Reglas por par de caminos de vida.
	if a.LifePath == b.LifePath {
		greens = append(greens, "You run on the same inner clock — no translation needed")
		reds = append(reds, "Your blind spots come in a matching set")
	}
	if content.IsFriendly(a.LifePath, b.LifePath) {
		greens = append(greens, "Your core numbers pull in the same direction")
	}
	if parts.lifePath == 30 {
		reds = append(reds, "Your default settings contradict each other")
	}
	if pairIs(a.LifePath, b.LifePath, 1, 8) {
		reds = append(reds, "Two commanders, zero soldiers")
	}
	if pairIs(a.LifePath, b.LifePath, 4, 5) {
		reds = append(reds, "One plans the week, the other plans the escape")
	}
	if content.SameTriad(a.ReducedMonth, b.ReducedMonth) {
		greens = append(greens, "Born into the same seasonal rhythm")
	}
	if parts.karmic {
		reds = append(reds, "Karmic debt recognizes karmic debt")
	}

	// Umbrales sobre el desglose viral.
	if viral.Logic >= 70 {
		greens = append(greens, "Arguments here end in actual solutions")
	}
	if viral.Lust >= 80 {
		greens = append(greens, "The physics of this pairing need no instruction manual")
	}
	if viral.Toxic >= 60 {
		reds = append(reds, "The make-up-to-break-up ratio needs adult supervision")
	}
	if viral.Lust >= 85 && viral.Logic <= 35 {
		reds = append(reds, "All spark, no wiring diagram")
	}

	// Paridad de actitud.
	if a.Attitude == b.Attitude {
		greens = append(greens, "You walk into rooms the same way")
	} else if a.Attitude%2 != b.Attitude%2 {
		reds = append(reds, "One of you texts back instantly. The other 'forgot'")
	}

	greenTarget, redTarget := flagTargets(scores.Total, viral.Toxic)
	return domain.Signals{
		GreenFlags: takeFlags(greens, static.GreenFlags, greenTarget),
		RedFlags:   takeFlags(reds, static.RedFlags, redTarget),
	}
}

// flagTargets: escalera de umbrales sobre el total más el chequeo de
// toxicidad que suma una roja extra.
func flagTargets(total, toxic int) (green, red int) {
	switch {
	case total >= 85:
		green, red = 5, 2
	case total >= 70:
		green, red = 4, 3
	case total >= 50:
		green, red = 3, 4
	default:
		green, red = 2, 5
	}
	if toxic >= 70 {
		red++
	}
	return green, red
}

// takeFlags deduplica y trunca al objetivo, rellenando desde la lista
// estática cuando las reglas dinámicas no alcanzan. Si ni con relleno se
// llega, la lista queda más corta: nunca se inventan banderas.
func takeFlags(dynamic, backfill []string, target int) []string {
	out := make([]string, 0, target)
	seen := make(map[string]struct{}, target)
	for _, src := range [][]string{dynamic, backfill} {
		for _, f := range src {
			if len(out) >= target {
				return out
			}
			if _, dup := seen[f]; dup {
				continue
			}
			seen[f] = struct{}{}
			out = append(out, f)
		}
	}
	return out
}
