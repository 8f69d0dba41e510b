// Package curriculum holds the static content catalogs: grades and
// their topics, the badge definitions, the default feature flags, and
// the seed question bank. Everything here is immutable; services get a
// Catalog injected at construction and never mutate it.
package curriculum

import (
	"maps"
	"slices"
)

// Badge describes one educational badge.
type Badge struct {
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Requirement string `json:"requirement"`
}

// Catalog is the injected content configuration. All fields are
// unexported and only reachable through cloning accessors, so no
// consumer can mutate the shared instance.
type Catalog struct {
	grades   []int
	topics   map[int][]string
	badges   map[string]Badge
	features map[string]bool
}

// Default returns the catalog for the German curriculum, grades 5-10.
func Default() *Catalog {
	return &Catalog{
		grades: []int{5, 6, 7, 8, 9, 10},
		topics: map[int][]string{
			5:  {"Grundrechenarten", "Brüche einführen", "Dezimalzahlen", "Geometrie Grundlagen", "Größen und Einheiten", "Diagramme"},
			6:  {"Bruchrechnung", "Dezimalzahlen erweitert", "Prozentrechnung Einführung", "Winkel", "Flächen", "Teilbarkeit"},
			7:  {"Rationale Zahlen", "Terme und Gleichungen", "Proportionalität", "Dreiecke", "Prozentrechnung", "Statistik"},
			8:  {"Lineare Funktionen", "Lineare Gleichungssysteme", "Vierecke", "Kreis", "Wahrscheinlichkeit", "Potenzen"},
			9:  {"Quadratische Funktionen", "Quadratische Gleichungen", "Ähnlichkeit", "Satz des Pythagoras", "Wurzeln", "Trigonometrie"},
			10: {"Exponentialfunktionen", "Logarithmen", "Körperberechnungen", "Stochastik", "Wachstum", "Vektorrechnung"},
		},
		// Performance badges awarded by the badge sweep; the milestone
		// badges (Anfänger etc.) live in the submission flow and are
		// not listed here, matching what the badge overview page shows.
		badges: map[string]Badge{
			"bruche_starter":    {Name: "Brüche-Starter", Icon: "🥧", Requirement: "5 Bruch-Aufgaben richtig"},
			"bruche_profi":      {Name: "Brüche-Profi", Icon: "🏆", Requirement: "20 Bruch-Aufgaben richtig"},
			"geometrie_starter": {Name: "Geometrie-Starter", Icon: "📐", Requirement: "5 Geometrie-Aufgaben richtig"},
			"geometrie_profi":   {Name: "Geometrie-Profi", Icon: "🌟", Requirement: "20 Geometrie-Aufgaben richtig"},
			"prozent_meister":   {Name: "Prozent-Meister", Icon: "💯", Requirement: "15 Prozent-Aufgaben richtig"},
			"gleichungs_held":   {Name: "Gleichungs-Held", Icon: "⚖️", Requirement: "10 Gleichungs-Aufgaben richtig"},
			"fleissige_biene":   {Name: "Fleißige Biene", Icon: "🐝", Requirement: "50 Aufgaben insgesamt"},
			"mathe_marathon":    {Name: "Mathe-Marathon", Icon: "🏃", Requirement: "100 Aufgaben insgesamt"},
			"wochen_champion":   {Name: "Wochen-Champion", Icon: "🏅", Requirement: "Weekly Challenge geschafft"},
			"perfektionist":     {Name: "Perfektionist", Icon: "✨", Requirement: "10 richtige Antworten in Folge"},
		},
		features: map[string]bool{
			"explain_mistake":          true,
			"adaptive_recommendations": true,
			"practice_mode":            true,
			"test_readiness":           true,
			"educational_badges":       true,
			"weekly_challenge":         true,
			"parent_report":            false, // premium
			"class_mode":               false, // premium
		},
	}
}

// Grades lists the supported school grades.
func (c *Catalog) Grades() []int {
	return slices.Clone(c.grades)
}

// Topics returns the topic list for grade, or nil for unknown grades.
func (c *Catalog) Topics(grade int) []string {
	return slices.Clone(c.topics[grade])
}

// ValidGrade reports whether grade is in the supported range.
func (c *Catalog) ValidGrade(grade int) bool {
	return slices.Contains(c.grades, grade)
}

// Badge looks up one badge definition by id.
func (c *Catalog) Badge(id string) (Badge, bool) {
	b, ok := c.badges[id]
	return b, ok
}

// Badges returns the badge catalog keyed by badge id.
func (c *Catalog) Badges() map[string]Badge {
	return maps.Clone(c.badges)
}

// DefaultFeatures returns the feature flags applied to users without
// per-user overrides.
func (c *Catalog) DefaultFeatures() map[string]bool {
	return maps.Clone(c.features)
}
