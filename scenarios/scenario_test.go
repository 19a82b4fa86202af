package scenarios

import "testing"

func TestLoadEmbeddedScenarios(t *testing.T) {
	cases := []struct {
		name       string
		wantMode   string
		wantScript bool
	}{
		{"default", ModeRandom, false},
		{"moon", ModeRandom, false},
		{"fountain", ModeScript, true},
		{"rain", ModeScript, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s, err := Load(c.name)
			if err != nil {
				t.Fatalf("Load(%s): %v", c.name, err)
			}
			if s.Name != c.name {
				t.Fatalf("expected name %q, got %q", c.name, s.Name)
			}
			if s.Spawner.Mode != c.wantMode {
				t.Fatalf("expected mode %q, got %q", c.wantMode, s.Spawner.Mode)
			}
			if c.wantScript {
				if s.Spawner.Script == "" {
					t.Fatalf("script scenario missing script name")
				}
				if _, err := LoadScript(s.Spawner.Script); err != nil {
					t.Fatalf("LoadScript(%s): %v", s.Spawner.Script, err)
				}
			}
			if s.Spawner.MinRadius <= 0 || s.Spawner.MaxRadius < s.Spawner.MinRadius {
				t.Fatalf("bad radius range [%v, %v]", s.Spawner.MinRadius, s.Spawner.MaxRadius)
			}
		})
	}
}

func TestLoadExtensionOptional(t *testing.T) {
	withExt, err := Load("default.yaml")
	if err != nil {
		t.Fatalf("Load(default.yaml): %v", err)
	}
	withoutExt, err := Load("default")
	if err != nil {
		t.Fatalf("Load(default): %v", err)
	}
	if *withExt != *withoutExt {
		t.Fatalf("extension changed the result: %+v vs %+v", withExt, withoutExt)
	}
}

func TestLoadMissingScenario(t *testing.T) {
	if _, err := Load("does-not-exist"); err == nil {
		t.Fatalf("expected error for missing scenario")
	}
}

func TestScenarioValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Scenario)
		wantErr bool
	}{
		{"valid", func(s *Scenario) {}, false},
		{"bad_mode", func(s *Scenario) { s.Spawner.Mode = "burst" }, true},
		{"script_without_script", func(s *Scenario) { s.Spawner.Mode = ModeScript }, true},
		{"negative_interval", func(s *Scenario) { s.Spawner.Interval = -1 }, true},
		{"inverted_radii", func(s *Scenario) { s.Spawner.MinRadius = 20; s.Spawner.MaxRadius = 10 }, true},
		{"negative_max_bodies", func(s *Scenario) { s.Spawner.MaxBodies = -5 }, true},
		{"mode_none", func(s *Scenario) { s.Spawner.Mode = ModeNone }, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := Scenario{
				Name: "test",
				Spawner: Spawner{
					Mode:      ModeRandom,
					Interval:  0.5,
					MinRadius: 5,
					MaxRadius: 10,
					MaxBodies: 100,
				},
			}
			c.mutate(&s)
			err := s.validate()
			if c.wantErr && err == nil {
				t.Fatalf("expected validation error")
			}
			if !c.wantErr && err != nil {
				t.Fatalf("unexpected validation error: %v", err)
			}
		})
	}
}
