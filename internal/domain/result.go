package domain

import "time"

// ProfileSummary son los campos desnormalizados de un perfil que viajan
// dentro del resultado de compatibilidad.
type ProfileSummary struct {
	Date         string `json:"date"`
	Name         string `json:"name"`
	LifePath     int    `json:"life_path"`
	PersonalYear int    `json:"personal_year"`
	DayAnchor    int    `json:"day_anchor"`
}

// Scores es el bloque de puntajes: total ponderado más cuatro sub-puntajes
// de despliegue, todos acotados a [0,100].
type Scores struct {
	Total     int    `json:"total"`
	Mental    int    `json:"mental"`
	Emotional int    `json:"emotional"`
	Physical  int    `json:"physical"`
	Soul      int    `json:"soul"`
	Label     string `json:"label"`
	Vibe      string `json:"vibe"`
}

// Gossip es la sección de chisme de una narrativa. Si la tabla no la trae,
// se sintetiza de forma determinista.
type Gossip struct {
	ArgumentStyle string `json:"argument_style"`
	WhoApologizes string `json:"who_apologizes"`
	Narrative     string `json:"narrative"`
}

// NarrativeBlock es una entrada canónica de la tabla de contenido. Las
// descripciones son variantes entre las que el selector diario elige una.
// Las entradas de la tabla nunca se mutan: el resolutor construye copias.
type NarrativeBlock struct {
	Title        string   `json:"title"`
	Descriptions []string `json:"descriptions"`
	Gift         string   `json:"gift"`
	Challenge    string   `json:"challenge"`
	Growth       string   `json:"growth"`
	Interaction  string   `json:"interaction"`
	Truth        string   `json:"truth"`
	SoulTeaching string   `json:"soul_teaching"`
	Viral        string   `json:"viral,omitempty"`
	Deep         string   `json:"deep,omitempty"`
	Gossip       *Gossip  `json:"gossip,omitempty"`
	GreenFlags   []string `json:"green_flags,omitempty"`
	RedFlags     []string `json:"red_flags,omitempty"`
}

// Narrative es el bloque narrativo ya resuelto: variante elegida y nombres
// sustituidos.
type Narrative struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Gift         string `json:"gift"`
	Challenge    string `json:"challenge"`
	Growth       string `json:"growth"`
	Interaction  string `json:"interaction"`
	Truth        string `json:"truth"`
	SoulTeaching string `json:"soul_teaching"`
	Viral        string `json:"viral,omitempty"`
	Deep         string `json:"deep,omitempty"`
	Gossip       Gossip `json:"gossip"`
}

// TextScore es un par texto+puntaje usado por sinergia, timing y actitud.
type TextScore struct {
	Score int    `json:"score"`
	Text  string `json:"text"`
}

// ViralBreakdown son los tres porcentajes compartibles más una frase.
type ViralBreakdown struct {
	Lust    int    `json:"lust"`
	Logic   int    `json:"logic"`
	Toxic   int    `json:"toxic"`
	Insight string `json:"insight"`
}

// Signals son las listas de banderas verdes y rojas, sin duplicados.
type Signals struct {
	GreenFlags []string `json:"green_flags"`
	RedFlags   []string `json:"red_flags"`
}

// BreakupPrediction estima la probabilidad de ruptura con chance en [1,99].
type BreakupPrediction struct {
	Chance    int      `json:"chance"`
	RiskLevel string   `json:"risk_level"`
	Reasons   []string `json:"reasons"`
}

// ConflictMatrix describe cómo pelea la pareja. Es opcional: se omite si
// algún camino de vida no tiene perfil de pelea ni fallback reducido.
type ConflictMatrix struct {
	Instigator   string `json:"instigator"`
	Intensity    string `json:"intensity"`
	StyleTitle   string `json:"style_title"`
	WeaponA      string `json:"weapon_a"`
	WeaponB      string `json:"weapon_b"`
	Resolution   string `json:"resolution"`
	RecoveryTime string `json:"recovery_time"`
}

// CompatibilityResult es el objeto inmutable que consume la capa de
// presentación. Se construye una vez y no se muta.
type CompatibilityResult struct {
	PersonA   ProfileSummary    `json:"person_a"`
	PersonB   ProfileSummary    `json:"person_b"`
	Scores    Scores            `json:"scores"`
	Narrative Narrative         `json:"narrative"`
	Synergy   TextScore         `json:"synergy"`
	Timing    TextScore         `json:"timing"`
	Attitude  TextScore         `json:"attitude"`
	Viral     ViralBreakdown    `json:"viral"`
	Signals   Signals           `json:"signals"`
	Breakup   BreakupPrediction `json:"breakup"`
	Conflict  *ConflictMatrix   `json:"conflict,omitempty"`
	Day       string            `json:"day"`
}

// Reading es una lectura guardada para compartir por id.
type Reading struct {
	ID        string              `json:"id"`
	DateA     string              `json:"date_a"`
	DateB     string              `json:"date_b"`
	NameA     string              `json:"name_a"`
	NameB     string              `json:"name_b"`
	Result    CompatibilityResult `json:"result"`
	CreatedAt time.Time           `json:"created_at"`
}
