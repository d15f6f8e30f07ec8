package service

import (
	"fmt"
	"strings"

	"github.com/KashAmir418/Numerio-sub000/internal/content"
	"github.com/KashAmir418/Numerio-sub000/internal/domain"
	"github.com/KashAmir418/Numerio-sub000/internal/numerology"
)

/*
========================
 Resolución simétrica
========================
*/

// lookupNarrative resuelve el bloque canónico de un par de caminos de vida.
// Orden del contrato: clave directa, clave inversa, síntesis de camino
// idéntico, bloque por defecto. reversed indica que el bloque se encontró
// en la dirección (B,A): los tokens de primera persona corresponden
// entonces a la persona B.
func lookupNarrative(lpA, lpB int) (block domain.NarrativeBlock, reversed bool) {
	if b, ok := content.Narratives[lpA][lpB]; ok {
		return b, false
	}
	if b, ok := content.Narratives[lpB][lpA]; ok {
		return b, true
	}
	if lpA == lpB {
		return doubleStrengthBlock(lpA), false
	}
	return content.DefaultBlock, false
}

// doubleStrengthBlock sintetiza la narrativa de caminos idénticos. Mantener
// "Double Strength" en el título: es lenguaje del producto, no decoración.
func doubleStrengthBlock(lp int) domain.NarrativeBlock {
	trait := content.LifePathTraits[lp]
	if trait == "" {
		trait = "the same archetype"
	}
	return domain.NarrativeBlock{
		Title: "Double Strength: The Mirror Bond",
		Descriptions: []string{
			fmt.Sprintf("[NameA] and [NameB] walk the same path: two of %s under one roof. Everything doubles here — the gifts, the blind spots, the volume.", trait),
			fmt.Sprintf("Same number, same operating system. [NameA] and [NameB] are both %s, which means instant recognition and zero hiding places.", trait),
		},
		Gift:         "You never have to explain your defaults. They are installed on both sides.",
		Challenge:    "Your weaknesses arrive in stereo, with nobody running the counterweight.",
		Growth:       "Borrow what the number lacks on purpose: assign the missing role instead of waiting for it to appear.",
		Interaction:  "[NameA] and [NameB] finish each other's sentences and each other's mistakes.",
		Truth:        "A mirror is the kindest and cruelest partner: everything you love and avoid in yourself, seated across the table.",
		SoulTeaching: "Double strength is earned the day the doubles stop competing.",
		GreenFlags: []string{
			"Understanding without translation",
			"Identical instincts under pressure",
			"No mismatch in pace or appetite",
			"Self-acceptance by proxy",
		},
		RedFlags: []string{
			"Shared blind spots go unguarded",
			"The same fight from both directions",
			"Escalation mirrors itself perfectly",
			"Nobody plays the missing role",
		},
	}
}

// resolveNarrative construye el bloque final: elige la variante diaria de
// descripción, copia campo a campo (las entradas canónicas no se tocan) y
// sustituye nombres. La elección de variante usa el par ordenado de forma
// canónica para que resolve(A,B) y resolve(B,A) rindan el mismo contenido.
func resolveNarrative(block domain.NarrativeBlock, reversed bool, lpA, lpB int, nameA, nameB, day string) domain.Narrative {
	lo, hi := lpA, lpB
	if lo > hi {
		lo, hi = hi, lo
	}
	descIdx := numerology.SelectVariant(lo*100+hi, day, len(block.Descriptions))

	first, second := nameA, nameB
	if reversed {
		first, second = nameB, nameA
	}
	sub := strings.NewReplacer(
		"[NameA]", first,
		"[NameB]", second,
		"Person A", first,
		"Person B", second,
	).Replace

	n := domain.Narrative{
		Title:        sub(block.Title),
		Description:  sub(block.Descriptions[descIdx]),
		Gift:         sub(block.Gift),
		Challenge:    sub(block.Challenge),
		Growth:       sub(block.Growth),
		Interaction:  sub(block.Interaction),
		Truth:        sub(block.Truth),
		SoulTeaching: sub(block.SoulTeaching),
		Viral:        sub(block.Viral),
		Deep:         sub(block.Deep),
	}

	gossip := synthesizeGossip(lpA, lpB)
	if block.Gossip != nil {
		gossip = *block.Gossip
	}
	n.Gossip = domain.Gossip{
		ArgumentStyle: sub(gossip.ArgumentStyle),
		WhoApologizes: sub(gossip.WhoApologizes),
		Narrative:     sub(gossip.Narrative),
	}
	return n
}

// synthesizeGossip garantiza chisme para todo par mediante indexación
// modular sobre los arreglos fijos.
func synthesizeGossip(lpA, lpB int) domain.Gossip {
	return domain.Gossip{
		ArgumentStyle: content.GossipArgumentStyles[(lpA+lpB)%len(content.GossipArgumentStyles)],
		WhoApologizes: content.GossipApologyWho[(lpA*lpB)%len(content.GossipApologyWho)],
		Narrative:     content.GossipNarratives[(lpA*3+lpB*7)%len(content.GossipNarratives)],
	}
}
