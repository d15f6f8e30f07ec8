package content

import "github.com/KashAmir418/Numerio-sub000/internal/domain"

// Narratives es la tabla de narrativas por par de caminos de vida. Solo se
// puebla una dirección de cada par; el resolutor prueba (A,B), luego (B,A)
// y cae al bloque por defecto. Las entradas son canónicas: nunca se mutan,
// el resolutor trabaja sobre copias.
//
// Tokens de plantilla: [NameA] y [NameB] se sustituyen por los nombres
// mostrados, con "Person A"/"Person B" como valores por defecto.
var Narratives = map[int]map[int]domain.NarrativeBlock{
	1: {
		5: {
			Title: "The Spark and the Wildfire",
			Descriptions: []string{
				"[NameA] decides, [NameB] escapes, and somehow you both end up at the same airport gate. This is momentum disguised as a relationship.",
				"Two people allergic to boredom. [NameA] supplies the direction, [NameB] supplies the detours, and the map gets redrawn weekly.",
			},
			Gift:         "Neither of you will ever have to beg the other to do something new.",
			Challenge:    "Nobody wants to be the adult who books the dentist appointments.",
			Growth:       "Take turns being the stable one. A week each. Set a timer.",
			Interaction:  "[NameA] announces a plan; [NameB] improves it into a completely different plan; both claim victory.",
			Truth:        "You are not each other's anchor. You are each other's accelerant, and you both secretly prefer it that way.",
			SoulTeaching: "Freedom shared is not freedom halved.",
			Viral:        "The couple that cancels plans together, stays together.",
			GreenFlags: []string{
				"Boredom is structurally impossible here",
				"Neither of you guilt-trips the other for needing space",
				"Decisions get made fast and regretted rarely",
				"You recover from fights at highway speed",
			},
			RedFlags: []string{
				"Nobody is steering when both of you chase the shiny thing",
				"Commitment conversations get rescheduled indefinitely",
				"Impulse purchases arrive in pairs",
				"You compete over who needs the other less",
			},
		},
		7: {
			Title: "The Engine and the Observatory",
			Descriptions: []string{
				"[NameA] moves, [NameB] contemplates the movement. One of you builds the rocket, the other wonders if the stars mind.",
				"Action meets analysis. [NameA] wants results by Friday; [NameB] wants to understand why Fridays exist.",
			},
			Gift:         "Together you cover both halves of every problem: the doing and the meaning.",
			Challenge:    "[NameA] reads silence as rejection. [NameB] reads urgency as noise.",
			Growth:       "[NameA]: schedule the quiet. [NameB]: narrate the retreat before taking it.",
			Interaction:  "Long stretches of parallel solitude interrupted by conversations that rearrange furniture in both your heads.",
			Truth:        "You will never fully understand each other, and that unsolved puzzle is the glue.",
			SoulTeaching: "Presence is not the same as proximity.",
			Deep:         "The 1 learns that stillness is not surrender; the 7 learns that motion is not shallowness.",
			GreenFlags: []string{
				"Your conversations go places small talk cannot reach",
				"Independence is respected without negotiation",
				"No one performs emotions they do not have",
				"Mutual fascination survives the routine",
			},
			RedFlags: []string{
				"Silences can calcify into distance",
				"One of you intellectualizes feelings instead of having them",
				"Affection gets rationed like a scarce resource",
				"Days can pass without a real check-in",
			},
		},
		8: {
			Title: "The Crown Has Two Heads",
			Descriptions: []string{
				"[NameA] wants to lead. [NameB] wants to win. These are not the same thing, and your kitchen knows it.",
				"Two executives, one household. The minutes of every disagreement are kept by both parties, separately.",
			},
			Gift:         "When you point the ambition outward, empires actually get built.",
			Challenge:    "Every small decision becomes a leadership referendum.",
			Growth:       "Divide the kingdom: separate domains, full authority in each, no audits.",
			Interaction:  "Negotiation at breakfast, merger talks at dinner, occasional hostile takeovers in between.",
			Truth:        "You respect each other precisely because neither of you folds — and it exhausts you both.",
			SoulTeaching: "Power shared is power squared, but only after the ego files for bankruptcy.",
			Gossip: &domain.Gossip{
				ArgumentStyle: "Boardroom escalation with visual aids",
				WhoApologizes: "Whoever closed the bigger deal that week",
				Narrative:     "[NameA] and [NameB] argue like two CEOs contesting the same parking spot, then present a united front in public that fools absolutely everyone.",
			},
			GreenFlags: []string{
				"You push each other toward bigger goals",
				"Both of you keep your word like a contract",
				"Outside threats unify you instantly",
				"Mutual respect is non-negotiable",
			},
			RedFlags: []string{
				"Arguments end in stalemates, not solutions",
				"Score is being kept, always",
				"Vulnerability reads as weakness to both of you",
				"Ego arrives at the argument before either of you does",
			},
		},
		9: {
			Title: "The Arrow and the Horizon",
			Descriptions: []string{
				"[NameA] aims at one target; [NameB] aims at all of humanity. Between you, something actually gets hit.",
				"The self-starter and the world-finisher. [NameA] begins what [NameB] was born to complete.",
			},
			Gift:         "Ambition with a conscience. Drive with a destination worth reaching.",
			Challenge:    "[NameB] gives to everyone and resents that [NameA] gives mostly to the mission.",
			Growth:       "Pick one cause that belongs to both of you and fund it with time, not leftovers.",
			Interaction:  "Passionate planning sessions that start about logistics and end about the meaning of life.",
			Truth:        "You are the beginning and the end of the same story, which is why letting go is the lesson neither wants.",
			SoulTeaching: "Completion is not loss.",
			GreenFlags: []string{
				"You make each other genuinely better people",
				"Generosity flows in both directions",
				"Shared ideals survive contact with reality",
				"Old wounds are treated gently here",
			},
			RedFlags: []string{
				"Martyrdom as a competitive sport",
				"The mission can eclipse the marriage",
				"Guilt is occasionally used as currency",
				"Endings are dragged out long past their natural death",
			},
		},
	},
	2: {
		4: {
			Title: "The Nest Builders",
			Descriptions: []string{
				"[NameA] brings the softness, [NameB] brings the scaffolding. The result is the home other couples visit and quietly envy.",
				"Slow, deliberate, permanent. This pairing reads boring to outsiders and feels like safety to the people inside it.",
			},
			Gift:         "A love that compounds interest. Every year is worth more than the last.",
			Challenge:    "So much stability that nobody remembers to schedule the fireworks.",
			Growth:       "Book the irresponsible weekend. The foundation will hold without you for two days.",
			Interaction:  "Quiet rituals: the same café, the same side of the bed, the same joke that still lands after a decade.",
			Truth:        "Neither of you says it, but you both checked: the other one stays. That certainty is the whole point.",
			SoulTeaching: "Devotion is built in deposits too small to notice.",
			Viral:        "POV: you married your emergency contact.",
			GreenFlags: []string{
				"Promises here have the half-life of granite",
				"Conflict is handled, not detonated",
				"You save money without fighting about it",
				"Both families actually approve",
			},
			RedFlags: []string{
				"Routine can fossilize into rut",
				"Feelings get filed instead of felt",
				"Risk aversion votes twice in every decision",
				"Resentment compounds as quietly as the savings",
			},
		},
		6: {
			Title: "The Double Caretakers",
			Descriptions: []string{
				"Two people trying to out-nurture each other. The plants are thriving, the friends are fed, and somebody forgot to ask who takes care of the caretakers.",
				"[NameA] anticipates needs; [NameB] anticipates them first. It is an arms race of casseroles and remembered anniversaries.",
			},
			Gift:         "Everyone in your orbit is healthier because you two exist.",
			Challenge:    "Both of you give until empty and call the emptiness love.",
			Growth:       "Practice receiving. Badly at first. It counts anyway.",
			Interaction:  "Check-ins, care packages, and the gentle competition over who noticed the other's bad day soonest.",
			Truth:        "You keep score of sacrifices and call it devotion. The audit would ruin you both — so stop keeping the books.",
			SoulTeaching: "Love that cannot receive is only half a circuit.",
			GreenFlags: []string{
				"Emotional needs get met before they are spoken",
				"Home is a sanctuary, not a battlefield",
				"Loyalty here is total and unperformed",
				"You grieve and celebrate at the same tempo",
			},
			RedFlags: []string{
				"Self-sacrifice as a competitive event",
				"Unspoken ledgers of who gave more",
				"Smothering dressed up as support",
				"Nobody admits to needing anything",
			},
		},
		8: {
			Title: "The Throne and the Hand",
			Descriptions: []string{
				"[NameB] conquers the world; [NameA] makes sure the world is worth coming home to. Ancient arrangement, still undefeated.",
				"Power and tenderness in formal alliance. One rules the boardroom, one rules everything that actually matters.",
			},
			Gift:         "Together you are the couple that other power couples hire as consultants.",
			Challenge:    "The soft one's needs get scheduled like low-priority meetings.",
			Growth:       "[NameB]: put the phone in another room. [NameA]: say the resentment out loud before it turns ornamental.",
			Interaction:  "Strategy by day, sanctuary by night, and a division of labor neither of you ever had to negotiate.",
			Truth:        "[NameA] holds more power here than either of you admits — empires run on the approval of exactly one person.",
			SoulTeaching: "Strength kneels at home, or it is not strength.",
			GreenFlags: []string{
				"Ambition and empathy finally on the same team",
				"You make hard seasons look easy from outside",
				"Material security plus emotional security",
				"Each covers the other's blind spot perfectly",
			},
			RedFlags: []string{
				"Work arrives home before the worker does",
				"Affection expressed only via logistics",
				"One voice gets heard, one gets managed",
				"Status can start mattering more than substance",
			},
		},
		11: {
			Title: "The Tuning Fork and the Antenna",
			Descriptions: []string{
				"[NameA] feels the room; [NameB] feels the century. Two sensitives sharing one nervous system — turn the volume down together.",
				"A master number and its root. [NameB] is what [NameA] becomes at full voltage, which is inspiring and occasionally a fire hazard.",
			},
			Gift:         "Communication so intuitive it borders on surveillance.",
			Challenge:    "Two absorbers and no emitter: whose anxiety is this, actually?",
			Growth:       "Separate your weather systems. Name whose storm it is before sheltering from it.",
			Interaction:  "Half-finished sentences completed correctly, moods transmitted without consent, silences that carry paragraphs.",
			Truth:        "You mistake merging for intimacy. The relationship needs two people in it to work.",
			SoulTeaching: "Sensitivity is an instrument, not an identity.",
			Deep:         "The 2 grounds the 11's current; the 11 proves the 2's quiet gift was never small.",
			GreenFlags: []string{
				"You are fluent in each other's unsaid",
				"Spiritual life is shared, not performed",
				"Gentleness is the house default",
				"Creative collaboration feels effortless",
			},
			RedFlags: []string{
				"Emotional flooding is contagious here",
				"Boundaries dissolve without anyone deciding",
				"Both can spiral on the same worry simultaneously",
				"Practical matters orbit unattended",
			},
		},
	},
	3: {
		5: {
			Title: "The Party That Never Ends",
			Descriptions: []string{
				"[NameA] tells the story; [NameB] lives the sequel in real time. Your friends need recovery days after your dinner parties.",
				"Charisma squared. The algorithm could not have matched a louder, brighter, more chaotic pair.",
			},
			Gift:         "Joy is the native language of this relationship.",
			Challenge:    "When the music stops, neither of you knows who handles the silence.",
			Growth:       "Build one boring ritual and defend it like territory. Sunday soup. No guests.",
			Interaction:  "Inside jokes with season finales, spontaneous trips, and a group chat that exists mainly to witness you two.",
			Truth:        "You both perform happiness so well that you sometimes forget to check if it is real. Check.",
			SoulTeaching: "Depth does not cancel delight.",
			Viral:        "Main character energy, both of you, simultaneously, forever.",
			Gossip: &domain.Gossip{
				ArgumentStyle: "Theatrical, loud, and over within the hour",
				WhoApologizes: "Whoever laughs first loses and apologizes",
				Narrative:     "[NameA] and [NameB] had a screaming match at brunch and were sharing dessert by the time the check came. The table next to them applauded.",
			},
			GreenFlags: []string{
				"Laughter is the default conflict resolution",
				"Social batteries recharge each other",
				"Neither dims the other's shine",
				"Adventure is a shared budget line",
			},
			RedFlags: []string{
				"Serious talks get postponed by comedy",
				"Two spenders, zero accountants",
				"Attention-seeking can turn competitive",
				"Hard feelings hide under hard laughing",
			},
		},
		7: {
			Title: "The Comedian and the Monk",
			Descriptions: []string{
				"[NameA] performs for a crowd; [NameB] watches from the back taking notes on the human condition. Somehow, this works.",
				"Glitter meets granite. [NameA] brings [NameB] to parties; [NameB] brings [NameA] to conclusions.",
			},
			Gift:         "You translate each other: joy gets depth, depth gets joy.",
			Challenge:    "[NameA] needs an audience; [NameB] needs an exit. Sometimes during the same evening.",
			Growth:       "Two calendars: one loud, one silent, both sacred.",
			Interaction:  "[NameB] delivers one dry sentence that makes [NameA] laugh for three days and write material about it.",
			Truth:        "The monk secretly loves the noise. The comedian secretly craves the quiet. Neither will confess first.",
			SoulTeaching: "Opposites are just teachers with better disguises.",
			GreenFlags: []string{
				"Humor and wisdom share custody of the house",
				"You widen each other's worlds",
				"Quiet together feels as good as loud together",
				"Zero pressure to be anyone else",
			},
			RedFlags: []string{
				"Social mismatch builds silent resentment",
				"One feels judged, the other feels drained",
				"Withdrawal answered with performance",
				"Core needs scheduled instead of met",
			},
		},
	},
	4: {
		5: {
			Title: "Order Meets the Tornado",
			Descriptions: []string{
				"[NameA] has a spreadsheet. [NameB] has a go-bag. The sparks are genuine, the property damage is metaphorical, mostly.",
				"Structure falls in love with chaos, every single time. Nobody knows why. The universe finds it hilarious.",
			},
			Gift:         "You are each other's missing setting: [NameA] learns to bend, [NameB] learns that roots are not cages.",
			Challenge:    "Every plan is a negotiation; every negotiation is a hostage situation.",
			Growth:       "Agree on the non-negotiables — three each, written down — and set everything else gloriously free.",
			Interaction:  "[NameA] builds the itinerary; [NameB] abandons it by 10 a.m.; the detour becomes the story you tell for years.",
			Truth:        "The attraction is the argument. If either of you actually won, you would both lose interest.",
			SoulTeaching: "Stability and freedom are both love languages, spoken at different volumes.",
			Viral:        "Enemies to lovers, but make it a permanent lifestyle.",
			GreenFlags: []string{
				"You genuinely complete each other's blind spots",
				"Life is never stagnant and never unmoored",
				"Physical chemistry defies all projections",
				"You negotiate like adults on good days",
			},
			RedFlags: []string{
				"The same fight wearing seasonal outfits",
				"Control versus escape as a doom loop",
				"Stress turns one of you rigid and the other absent",
				"Compromise can rot into quiet scorekeeping",
			},
		},
		8: {
			Title: "The Empire Contractors",
			Descriptions: []string{
				"[NameA] pours the foundation; [NameB] sells the skyline. The five-year plan has a five-year plan.",
				"Two builders, one blueprint. The least chaotic pairing in the book, and the most quietly formidable.",
			},
			Gift:         "Compounding competence. What you two start, finishes.",
			Challenge:    "The relationship can turn into a well-run company nobody actually lives in.",
			Growth:       "Put tenderness on the roadmap before the quarterly goals swallow it.",
			Interaction:  "Shared calendars, shared targets, and a division of responsibility so clean it needs no discussion.",
			Truth:        "You admire each other more than you desire each other on the hard weeks. Admiration is a fine place to winter.",
			SoulTeaching: "A legacy is only as warm as the house it was planned in.",
			GreenFlags: []string{
				"Reliability so total it feels like luxury",
				"Money conversations without casualties",
				"Both play the long game, together",
				"Work ethic as a shared religion",
			},
			RedFlags: []string{
				"Romance gets deprioritized like technical debt",
				"Worth measured in output, even at home",
				"Rest feels like a performance review failure",
				"Feelings addressed only after deadlines",
			},
		},
	},
	6: {
		9: {
			Title: "The Healers' Union",
			Descriptions: []string{
				"[NameA] heals the household; [NameB] heals the world. Between you, no wounded thing goes unfed — including, occasionally, each other's martyrdom.",
				"The most magnetic pairing in the old books. Love as service, service as love, and chemistry that needs no introduction.",
			},
			Gift:         "A love that makes everyone around it slightly better by proximity.",
			Challenge:    "Two givers can starve politely at a full table.",
			Growth:       "Take turns being the patient. Weekly. No diagnosis required.",
			Interaction:  "Deep talks over long dinners, shared causes, and the unspoken pact that no one in your orbit struggles alone.",
			Truth:        "The legendary magnetism is real — and it is exactly why you both must choose each other first, before the world's needs get a vote.",
			SoulTeaching: "Compassion begins at the kitchen table.",
			Viral:        "The 6-9 pairing: scientifically unfair levels of chemistry.",
			Deep:         "This is the axis of unconditional love in the matrix; its lesson is that unconditional does not mean unboundaried.",
			GreenFlags: []string{
				"Chemistry that outlasts the honeymoon physics",
				"Shared purpose larger than both of you",
				"Forgiveness is generous and genuine",
				"Family and friends feel it and say so",
			},
			RedFlags: []string{
				"Everyone else's crisis outranks your date night",
				"Giving used to avoid receiving",
				"Idealizing each other past recognition",
				"Burnout arrives in matching sets",
			},
		},
	},
	7: {
		9: {
			Title: "The Hermit and the Humanitarian",
			Descriptions: []string{
				"[NameA] seeks truth in solitude; [NameB] seeks it in crowds. You meet at the lighthouse and compare notes.",
				"Two old souls on different routes to the same summit. The conversation started before you met and will outlast the relationship's every form.",
			},
			Gift:         "A bond that feels less like romance and more like recognition.",
			Challenge:    "So much meaning, so little logistics. Someone still has to buy groceries.",
			Growth:       "Anchor the transcendence: one mundane ritual, done together, badly, weekly.",
			Interaction:  "Books traded like love letters, long silences that neither rushes, and arguments about ideas that never turn personal.",
			Truth:        "You could drift apart without a single fight — pure amicable evaporation. Presence has to be chosen here, daily.",
			SoulTeaching: "Wisdom shared is the only wisdom that compounds.",
			GreenFlags: []string{
				"Conversations that rearrange worldviews",
				"Solitude respected as sacred, not suspect",
				"Zero interest in petty drama",
				"You grow even when apart",
			},
			RedFlags: []string{
				"Emotional needs discussed in the abstract",
				"Parallel lives that rarely intersect",
				"Conflict avoided until it composts",
				"More admiration than appetite",
			},
		},
	},
}

// DefaultBlock cubre cualquier par sin entrada directa ni inversa.
var DefaultBlock = domain.NarrativeBlock{
	Title: "An Unwritten Combination",
	Descriptions: []string{
		"[NameA] and [NameB] form one of the rarer combinations — the kind the old books describe in pencil, not ink. The rules here get written by the people living them.",
		"No template survives contact with this pairing. [NameA] and [NameB] are off the standard map, which is either a warning or a compliment depending on the week.",
	},
	Gift:         "Nothing about you two is inherited. Every pattern is handmade.",
	Challenge:    "No script also means no shortcuts: you must actually talk.",
	Growth:       "Write your own rules early, out loud, and revise them without ceremony.",
	Interaction:  "A rhythm outsiders cannot parse and insiders cannot explain.",
	Truth:        "Unmapped is not unstable. Some of the longest roads have no signage.",
	SoulTeaching: "Love that invents itself owes nothing to precedent.",
	GreenFlags: []string{
		"Free from every expectation except your own",
		"Genuine curiosity about each other persists",
		"No inherited baggage from the archetypes",
		"You negotiate reality instead of assuming it",
	},
	RedFlags: []string{
		"No map means wrong turns find you first",
		"Outside opinions fill any silence you leave",
		"Mismatched assumptions surface late",
		"Drift happens quietly without landmarks",
	},
}

// LifePathTraits da el epíteto de cada camino, usado por los bloques
// sintetizados de camino idéntico ("Double Strength").
var LifePathTraits = map[int]string{
	1:  "the pioneer",
	2:  "the diplomat",
	3:  "the storyteller",
	4:  "the builder",
	5:  "the wanderer",
	6:  "the guardian",
	7:  "the seeker",
	8:  "the sovereign",
	9:  "the old soul",
	11: "the lightning rod",
	22: "the architect",
	33: "the healer",
}

/*
========================
 Relleno de chisme
========================
*/

// Arreglos fijos para sintetizar la sección de chisme cuando la entrada de
// la tabla no la trae. La indexación es modular y determinista sobre el par
// de caminos de vida, así toda combinación tiene chisme garantizado.
var GossipArgumentStyles = []string{
	"Passive-aggressive sticky notes escalating to essays",
	"One debates, one stonewalls, both lose",
	"Loud for ten minutes, fine by dinner",
	"Cold war with excellent table manners",
	"Text-message litigation with screenshots",
	"One lectures, one files it away for later use",
}

var GossipApologyWho = []string{
	"Whoever needs the other's wifi password first",
	"Neither — the argument is simply never mentioned again",
	"The one who started it, three days late",
	"Both at once, which starts a new argument",
	"Whoever's mother asks what's wrong",
}

var GossipNarratives = []string{
	"[NameA] and [NameB] fight like the neighbors are a studio audience, then act offended when anyone asks about it.",
	"Sources report [NameA] drafted a breakup text four times and then ordered [NameB]'s favorite takeout instead.",
	"The friction between [NameA] and [NameB] is the group chat's longest-running subscription, renewed weekly.",
	"[NameA] claims to be the calm one. [NameB] also claims to be the calm one. The witnesses decline to comment.",
	"Every fight between [NameA] and [NameB] ends with one of them pretending to sleep and the other narrating to the ceiling.",
	"[NameA] and [NameB] disagree about everything except how annoying everyone else is, which turns out to be enough.",
}
