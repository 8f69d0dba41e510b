package curriculum

import "testing"

func TestTopicsPerGrade(t *testing.T) {
	c := Default()
	for _, g := range c.Grades() {
		topics := c.Topics(g)
		if len(topics) != 6 {
			t.Errorf("grade %d: %d topics, want 6", g, len(topics))
		}
	}
	if c.Topics(11) != nil {
		t.Error("unknown grade should have no topics")
	}
}

func TestCatalogAccessorsReturnCopies(t *testing.T) {
	c := Default()

	topics := c.Topics(5)
	topics[0] = "mutated"
	if c.Topics(5)[0] == "mutated" {
		t.Error("Topics must not expose the internal slice")
	}

	grades := c.Grades()
	grades[0] = 99
	if c.Grades()[0] == 99 {
		t.Error("Grades must not expose the internal slice")
	}

	badges := c.Badges()
	badges["bruche_starter"] = Badge{Name: "mutated"}
	if b, _ := c.Badge("bruche_starter"); b.Name == "mutated" {
		t.Error("Badges must not expose the internal map")
	}

	features := c.DefaultFeatures()
	features["parent_report"] = true
	if c.DefaultFeatures()["parent_report"] {
		t.Error("DefaultFeatures must not expose the internal map")
	}
}

func TestValidGrade(t *testing.T) {
	c := Default()
	for _, g := range []int{5, 10} {
		if !c.ValidGrade(g) {
			t.Errorf("grade %d should be valid", g)
		}
	}
	for _, g := range []int{0, 4, 11} {
		if c.ValidGrade(g) {
			t.Errorf("grade %d should be invalid", g)
		}
	}
}

func TestSeedContentWellFormed(t *testing.T) {
	c := Default()
	all := SeedTasks()
	all = append(all, AdditionalTasks()...)
	all = append(all, NRWTasks()...)

	if len(all) < 200 {
		t.Fatalf("seed content = %d tasks, want at least 200", len(all))
	}
	for i, task := range all {
		if !c.ValidGrade(task.Grade) {
			t.Errorf("task %d: invalid grade %d", i, task.Grade)
		}
		if task.Question == "" || task.CorrectAnswer == "" {
			t.Errorf("task %d: missing question or answer", i)
		}
		switch task.Difficulty {
		case "leicht", "mittel", "schwer":
		default:
			t.Errorf("task %d: difficulty %q", i, task.Difficulty)
		}
		if task.Type == "multiple_choice" && len(task.Options) < 2 {
			t.Errorf("task %d: multiple choice with %d options", i, len(task.Options))
		}
		if task.XPReward <= 0 {
			t.Errorf("task %d: xp reward %d", i, task.XPReward)
		}
	}
}

func TestNRWTasksTagged(t *testing.T) {
	for i, task := range NRWTasks() {
		if task.Curriculum != "NRW-Hauptschule" {
			t.Errorf("task %d: curriculum %q", i, task.Curriculum)
		}
	}
}

func TestBadgeCatalogComplete(t *testing.T) {
	c := Default()
	want := []string{
		"bruche_starter", "bruche_profi", "geometrie_starter", "geometrie_profi",
		"prozent_meister", "gleichungs_held", "fleissige_biene", "mathe_marathon",
		"wochen_champion", "perfektionist",
	}
	for _, id := range want {
		b, ok := c.Badge(id)
		if !ok {
			t.Errorf("missing badge %q", id)
			continue
		}
		if b.Name == "" || b.Icon == "" || b.Requirement == "" {
			t.Errorf("badge %q incomplete: %+v", id, b)
		}
	}
	if got := len(c.Badges()); got != len(want) {
		t.Errorf("badge catalog has %d entries, want %d", got, len(want))
	}
}

func TestDefaultFeaturesPremiumOff(t *testing.T) {
	f := Default().DefaultFeatures()
	for _, on := range []string{"explain_mistake", "adaptive_recommendations", "practice_mode", "test_readiness", "educational_badges", "weekly_challenge"} {
		if !f[on] {
			t.Errorf("%s should default on", on)
		}
	}
	for _, off := range []string{"parent_report", "class_mode"} {
		if f[off] {
			t.Errorf("%s should default off", off)
		}
	}
}
