package main

import (
	"fmt"

	"gopkg.in/yaml.v2"
)

// PlanRow assigns one atlas row to a game state
// and the source animation directory it is read from.
type PlanRow struct {
	State  string `yaml:"state"`
	Source string `yaml:"source"`
}

// RowPlan is the ordered list of rows composed into
// an entity's atlas. The row index of a state is its
// position in the plan, whether or not frames exist
// for it.
type RowPlan []PlanRow

// Roster holds the animation tables for every entity
// class. It is passed into composition as a value so
// alternate rosters can be substituted.
type Roster struct {
	// HeroRows is the shared hero plan. A row with an
	// empty source is resolved per hero via Specials.
	HeroRows RowPlan `yaml:"heroRows"`
	// Specials maps a hero name to the source animation
	// used for its per-hero row.
	Specials map[string]string `yaml:"specials"`
	// Enemies maps an enemy kind to its own plan. Kinds
	// not present here are not composed at all.
	Enemies map[string]RowPlan `yaml:"enemies"`
}

// HeroPlan resolves the shared hero rows for one hero.
// Rows whose source depends on the hero get it from the
// specials table; a hero absent from that table keeps an
// empty source for the row, and the compositor skips it
// while still reserving its row index.
func (r Roster) HeroPlan(name string) RowPlan {
	plan := make(RowPlan, len(r.HeroRows))

	for i, row := range r.HeroRows {
		if row.Source == "" {
			row.Source = r.Specials[name]
		}

		plan[i] = row
	}

	return plan
}

// EnemyPlan returns the plan for an enemy kind, or
// false if the kind is not in the roster.
func (r Roster) EnemyPlan(kind string) (RowPlan, bool) {
	plan, ok := r.Enemies[kind]
	return plan, ok
}

// ReadRoster parses a roster override from YAML.
func ReadRoster(contents []byte) (Roster, error) {
	var roster Roster
	err := yaml.Unmarshal(contents, &roster)

	if err != nil {
		return Roster{}, fmt.Errorf(
			"failed to parse the roster: %w", err)
	}

	if len(roster.HeroRows) == 0 {
		return Roster{}, fmt.Errorf(
			"the roster has no hero rows")
	}

	return roster, nil
}

// defaultRoster returns the roster the game ships with.
func defaultRoster() Roster {
	return Roster{
		HeroRows: RowPlan{
			{State: "idle", Source: "breathing-idle"},
			{State: "run", Source: "running-6-frames"},
			{State: "jump", Source: "two-footed-jump"},
			{State: "special", Source: ""}, // varies per hero
			{State: "attack", Source: "cross-punch"},
		},
		Specials: map[string]string{
			"bolt":   "hurricane-kick",
			"gale":   "hurricane-kick",
			"vex":    "running-slide",
			"forge":  "running-slide",
			"nimbus": "jumping-1",
		},
		Enemies: map[string]RowPlan{
			"slime": {
				{State: "idle", Source: "breathing-idle"},
				{State: "walk", Source: "walking"},
				{State: "jump", Source: "jumping-1"},
				{State: "hurt", Source: "taking-punch"},
			},
			"bat": {
				{State: "idle", Source: "breathing-idle"},
				{State: "walk", Source: "walking-6-frames"},
				{State: "fly", Source: "jumping-1"},
				{State: "hurt", Source: "taking-punch"},
			},
			"skeleton": {
				{State: "idle", Source: "breathing-idle"},
				{State: "walk", Source: "walking-6-frames"},
				{State: "attack", Source: "cross-punch"},
				{State: "hurt", Source: "falling-back-death"},
			},
		},
	}
}
