package domain

// FightProfile es el registro fijo de estilo de conflicto por camino de
// vida. Los tres sub-puntajes van de 0 a 100.
type FightProfile struct {
	Style      string `json:"style"`
	Tactic     string `json:"tactic"`
	Aggression int    `json:"aggression"`
	Volatility int    `json:"volatility"`
	Recovery   int    `json:"recovery"`
}
