package service

import (
	"fmt"

	"github.com/KashAmir418/Numerio-sub000/internal/content"
	"github.com/KashAmir418/Numerio-sub000/internal/domain"
	"github.com/KashAmir418/Numerio-sub000/internal/numerology"
)

/*
========================
 Matriz de conflicto
========================
*/

// lookupFightProfile busca el perfil de pelea de un camino de vida, con
// fallback por reducción para los maestros (11→2, 22→4, 33→6).
func lookupFightProfile(lp int) (domain.FightProfile, error) {
	if p, ok := content.FightProfiles[lp]; ok {
		return p, nil
	}
	if reduced := numerology.Reduce(lp, false); reduced != lp {
		if p, ok := content.FightProfiles[reduced]; ok {
			return p, nil
		}
	}
	return domain.FightProfile{}, fmt.Errorf("%w: fight profile %d", domain.ErrMissingContentEntry, lp)
}

// buildConflict arma la matriz de conflicto de la pareja. Si algún camino
// no resuelve perfil ni por fallback, devuelve el error de contenido y el
// campo se omite del resultado: degradación, no falla.
func buildConflict(a, b domain.NumericProfile, nameA, nameB string) (*domain.ConflictMatrix, error) {
	fa, err := lookupFightProfile(a.LifePath)
	if err != nil {
		return nil, err
	}
	fb, err := lookupFightProfile(b.LifePath)
	if err != nil {
		return nil, err
	}

	instigator := "Both"
	if fa.Aggression-fb.Aggression > 20 {
		instigator = nameA
	} else if fb.Aggression-fa.Aggression > 20 {
		instigator = nameB
	}

	return &domain.ConflictMatrix{
		Instigator:   instigator,
		Intensity:    conflictIntensity(fa, fb),
		StyleTitle:   conflictTitle(a.LifePath, b.LifePath, fa, fb),
		WeaponA:      fa.Tactic,
		WeaponB:      fb.Tactic,
		Resolution:   conflictResolution(fa, fb, nameA, nameB),
		RecoveryTime: recoveryTime(fa, fb),
	}, nil
}

// conflictIntensity: reglas en orden, con el caso especial por nombre de
// estilo (un Ghost en la pareja siempre decae en silencio).
func conflictIntensity(fa, fb domain.FightProfile) string {
	switch {
	case fa.Style == "The Ghost" || fb.Style == "The Ghost":
		return "Silent Decay"
	case fa.Aggression >= 75 && fb.Aggression >= 75:
		return "Nuclear"
	case fa.Volatility <= 45 && fb.Volatility <= 45:
		return "Cold War"
	case fa.Aggression+fb.Aggression >= 120:
		return "Heated"
	default:
		return "Contained"
	}
}

// conflictTitle compone el título del choque. El par 4/5 tiene título fijo
// verbatim sin importar el orden de las personas.
func conflictTitle(lpA, lpB int, fa, fb domain.FightProfile) string {
	if pairIs(lpA, lpB, 4, 5) {
		return "Order vs Chaos: The Eternal War"
	}
	if fa.Style == fb.Style {
		return fmt.Sprintf("Mirror Match: %s vs %s", fa.Style, fb.Style)
	}
	return fmt.Sprintf("%s vs %s", fa.Style, fb.Style)
}

// conflictResolution: quien se recupera más rápido pide perdón primero;
// si ambos se recuperan muy poco, nadie lo hace.
func conflictResolution(fa, fb domain.FightProfile, nameA, nameB string) string {
	if fa.Recovery <= 30 && fb.Recovery <= 30 {
		return "Nobody apologizes. The argument is archived unresolved and reopened quarterly."
	}
	faster, slower := nameA, nameB
	if fb.Recovery > fa.Recovery {
		faster, slower = nameB, nameA
	}
	return fmt.Sprintf("%s caves first — usually with food instead of words — and %s pretends that settles it.", faster, slower)
}

func recoveryTime(fa, fb domain.FightProfile) string {
	avg := (fa.Recovery + fb.Recovery) / 2
	switch {
	case avg >= 75:
		return "Hours. By dinner it never happened."
	case avg >= 55:
		return "A day or two of careful politeness."
	case avg >= 35:
		return "About a week of one-word answers."
	default:
		return "Weeks. Grudges here have a pension plan."
	}
}
