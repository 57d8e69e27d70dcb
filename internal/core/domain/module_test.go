package domain

import (
	"errors"
	"testing"
)

func styleRefs(styles []StyleFile) []string {
	out := make([]string, len(styles))
	for i, s := range styles {
		out[i] = s.Ref.Path
	}
	return out
}

func TestApplySkinOverride_Replace(t *testing.T) {
	m := &Module{
		Name: "site.base",
		SkinStyles: map[string][]StyleFile{
			DefaultSkin: {{Ref: NewFileRef("base.css")}},
		},
	}

	err := m.ApplySkinOverride("vector", "site.base", []StyleFile{{Ref: NewFileRef("skin.css")}})
	if err != nil {
		t.Fatalf("ApplySkinOverride failed: %v", err)
	}

	got := styleRefs(m.SkinStyles["vector"])
	if len(got) != 1 || got[0] != "skin.css" {
		t.Errorf("expected [skin.css], got %v", got)
	}
}

func TestApplySkinOverride_Append(t *testing.T) {
	m := &Module{
		Name: "site.base",
		SkinStyles: map[string][]StyleFile{
			DefaultSkin: {{Ref: NewFileRef("base.css")}},
		},
	}

	err := m.ApplySkinOverride("vector", "+site.base", []StyleFile{{Ref: NewFileRef("skin.css")}})
	if err != nil {
		t.Fatalf("ApplySkinOverride failed: %v", err)
	}

	got := styleRefs(m.SkinStyles["vector"])
	if len(got) != 2 || got[0] != "base.css" || got[1] != "skin.css" {
		t.Errorf("expected [base.css skin.css], got %v", got)
	}
}

func TestApplySkinOverride_ModuleDefinitionWins(t *testing.T) {
	m := &Module{
		Name: "site.base",
		SkinStyles: map[string][]StyleFile{
			"vector": {{Ref: NewFileRef("own.css")}},
		},
	}

	err := m.ApplySkinOverride("vector", "site.base", []StyleFile{{Ref: NewFileRef("skin.css")}})
	if err != nil {
		t.Fatalf("ApplySkinOverride failed: %v", err)
	}

	got := styleRefs(m.SkinStyles["vector"])
	if len(got) != 1 || got[0] != "own.css" {
		t.Errorf("module-defined styles must win, got %v", got)
	}
}

func TestApplySkinOverride_AfterSeal(t *testing.T) {
	m := &Module{Name: "site.base"}
	m.Seal()

	err := m.ApplySkinOverride("vector", "site.base", []StyleFile{{Ref: NewFileRef("skin.css")}})
	if !errors.Is(err, ErrOverrideAfterUse) {
		t.Errorf("expected ErrOverrideAfterUse, got %v", err)
	}
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	if err := r.Add(&Module{Name: "b"}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := r.Add(&Module{Name: "a"}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	if err := r.Add(&Module{Name: "a"}); !errors.Is(err, ErrModuleAlreadyExists) {
		t.Errorf("expected ErrModuleAlreadyExists, got %v", err)
	}

	if _, err := r.Get("missing"); !errors.Is(err, ErrModuleNotFound) {
		t.Errorf("expected ErrModuleNotFound, got %v", err)
	}

	names := r.Names()
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Errorf("expected sorted names, got %v", names)
	}
}
