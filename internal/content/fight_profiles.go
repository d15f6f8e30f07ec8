package content

import "github.com/KashAmir418/Numerio-sub000/internal/domain"

// FightProfiles mapea cada camino de vida 1-9 a su perfil fijo de conflicto.
// Los maestros no tienen entrada propia: caen por reducción (11→2, 22→4,
// 33→6) en la resolución. Esta tabla se puede extender sin tocar código.
var FightProfiles = map[int]domain.FightProfile{
	1: {
		Style:      "The Steamroller",
		Tactic:     "Raises the volume and goes straight at the point",
		Aggression: 85, Volatility: 60, Recovery: 70,
	},
	2: {
		Style:      "The Silent Treatment",
		Tactic:     "Withdraws and waits to be noticed",
		Aggression: 30, Volatility: 45, Recovery: 40,
	},
	3: {
		Style:      "The Deflector",
		Tactic:     "Cracks a joke mid-argument and changes the subject",
		Aggression: 45, Volatility: 65, Recovery: 80,
	},
	4: {
		Style:      "The Prosecutor",
		Tactic:     "Brings receipts and lists every past offense in order",
		Aggression: 60, Volatility: 35, Recovery: 30,
	},
	5: {
		Style:      "The Door Slammer",
		Tactic:     "Explodes, leaves, comes back like nothing happened",
		Aggression: 75, Volatility: 90, Recovery: 85,
	},
	6: {
		Style:      "The Guilt Weaver",
		Tactic:     "Reminds you of everything they ever sacrificed",
		Aggression: 50, Volatility: 50, Recovery: 55,
	},
	7: {
		Style:      "The Ghost",
		Tactic:     "Goes completely silent for days",
		Aggression: 25, Volatility: 40, Recovery: 20,
	},
	8: {
		Style:      "The General",
		Tactic:     "Turns the argument into a negotiation they must win",
		Aggression: 90, Volatility: 55, Recovery: 50,
	},
	9: {
		Style:      "The Martyr",
		Tactic:     "Forgives out loud, remembers forever",
		Aggression: 40, Volatility: 60, Recovery: 65,
	},
}
