package main

import "testing"

func TestHeroPlanSpecialResolution(t *testing.T) {
	roster := defaultRoster()

	tests := []struct {
		hero    string
		special string
	}{
		{"bolt", "hurricane-kick"},
		{"gale", "hurricane-kick"},
		{"vex", "running-slide"},
		{"forge", "running-slide"},
		{"nimbus", "jumping-1"},
		{"stranger", ""},
	}

	for _, tt := range tests {
		t.Run(tt.hero, func(t *testing.T) {
			plan := roster.HeroPlan(tt.hero)

			if len(plan) != len(roster.HeroRows) {
				t.Fatalf("plan has %d rows, want %d",
					len(plan), len(roster.HeroRows))
			}

			for i, row := range plan {
				if row.State == "special" {
					if row.Source != tt.special {
						t.Errorf("special source = %q, want %q",
							row.Source, tt.special)
					}

					continue
				}

				if row.Source != roster.HeroRows[i].Source {
					t.Errorf("row %d source = %q, want %q",
						i, row.Source, roster.HeroRows[i].Source)
				}
			}
		})
	}
}

func TestHeroPlanDoesNotMutateRoster(t *testing.T) {
	roster := defaultRoster()
	roster.HeroPlan("bolt")

	for _, row := range roster.HeroRows {
		if row.State == "special" && row.Source != "" {
			t.Errorf("shared hero rows mutated: special source = %q",
				row.Source)
		}
	}
}

func TestEnemyPlan(t *testing.T) {
	roster := defaultRoster()

	for _, kind := range []string{"slime", "bat", "skeleton"} {
		plan, ok := roster.EnemyPlan(kind)

		if !ok {
			t.Errorf("EnemyPlan(%q) not found", kind)
			continue
		}

		if len(plan) != 4 {
			t.Errorf("EnemyPlan(%q) has %d rows, want 4",
				kind, len(plan))
		}
	}

	if _, ok := roster.EnemyPlan("ghost"); ok {
		t.Error("EnemyPlan(\"ghost\") found, want missing")
	}
}

func TestReadRoster(t *testing.T) {
	contents := []byte(`
heroRows:
  - state: idle
    source: breathing-idle
  - state: special
    source: ""
specials:
  ember: fire-spin
enemies:
  wisp:
    - state: idle
      source: hovering
`)

	roster, err := ReadRoster(contents)

	if err != nil {
		t.Fatalf("ReadRoster: %v", err)
	}

	plan := roster.HeroPlan("ember")

	if got := plan[1].Source; got != "fire-spin" {
		t.Errorf("ember special source = %q, want %q", got, "fire-spin")
	}

	wisp, ok := roster.EnemyPlan("wisp")

	if !ok {
		t.Fatal("EnemyPlan(\"wisp\") not found")
	}

	if wisp[0].Source != "hovering" {
		t.Errorf("wisp idle source = %q, want %q",
			wisp[0].Source, "hovering")
	}
}

func TestReadRosterRejectsEmpty(t *testing.T) {
	if _, err := ReadRoster([]byte("specials: {}\n")); err == nil {
		t.Error("ReadRoster accepted a roster with no hero rows")
	}

	if _, err := ReadRoster([]byte("\t bad yaml")); err == nil {
		t.Error("ReadRoster accepted malformed YAML")
	}
}
