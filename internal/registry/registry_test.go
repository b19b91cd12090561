package registry

import (
	"testing"

	"github.com/vovakirdan/quick/internal/asset"
	"github.com/vovakirdan/quick/internal/config"
	"github.com/vovakirdan/quick/internal/engine"
)

type stubDemo struct {
	id         string
	difficulty config.DifficultyConfig
}

func (d stubDemo) ID() string { return d.id }

func (d stubDemo) Title() string { return "Stub " + d.id }

func (d stubDemo) Assets(*asset.Library) {}

func (d stubDemo) FirstScene() engine.SceneFactory {
	return func(e *engine.Engine) *engine.Scene { return e.NewScene() }
}

func stubFactory(id string) Factory {
	return func(difficulty config.DifficultyConfig) Demo {
		return stubDemo{id: id, difficulty: difficulty}
	}
}

func TestRegisterAndCreate(t *testing.T) {
	Register("zz-stub", stubFactory("zz-stub"))
	Register("aa-stub", stubFactory("aa-stub"))

	if !Exists("zz-stub") {
		t.Fatalf("Exists() = false after Register")
	}

	difficulty := config.Default().Difficulty
	difficulty.InitialLevel = 0.9
	d, err := Create("zz-stub", difficulty)
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if d.ID() != "zz-stub" || d.(stubDemo).difficulty.InitialLevel != 0.9 {
		t.Errorf("Create() = %+v, expected the configured stub", d)
	}

	list := List()
	var ids []string
	for _, info := range list {
		if info.ID == "aa-stub" || info.ID == "zz-stub" {
			ids = append(ids, info.ID)
		}
		if info.ID == "aa-stub" && info.Title != "Stub aa-stub" {
			t.Errorf("Title = %q, expected %q", info.Title, "Stub aa-stub")
		}
	}
	if len(ids) != 2 || ids[0] != "aa-stub" {
		t.Errorf("List() order = %v, expected aa-stub before zz-stub", ids)
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("does-not-exist", config.Default().Difficulty); err == nil {
		t.Errorf("Create() of an unknown demo succeeded")
	}
	if Exists("does-not-exist") {
		t.Errorf("Exists() = true for an unknown demo")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("dup-stub", stubFactory("dup-stub"))

	defer func() {
		if recover() == nil {
			t.Errorf("Register() of a duplicate id did not panic")
		}
	}()
	Register("dup-stub", stubFactory("dup-stub"))
}
