package registry

import (
	"context"
	"errors"
	"testing"
)

func TestRegisterAndLookup(t *testing.T) {
	reset()
	t.Cleanup(reset)

	errRan := errors.New("ran")
	Register(BackendInfo{Name: "term", Title: "tcell", OwnsTerminal: true}, func(context.Context, Env) error {
		return errRan
	})
	Register(BackendInfo{Name: "window", Title: "ebiten"}, func(context.Context, Env) error {
		return nil
	})

	info, run, err := Lookup("term")
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	if !info.OwnsTerminal || info.Title != "tcell" {
		t.Errorf("Lookup() info = %+v", info)
	}
	if err := run(context.Background(), Env{Seed: 1}); !errors.Is(err, errRan) {
		t.Errorf("runner returned %v, expected the registered runner's error", err)
	}

	if _, _, err := Lookup("window"); err != nil {
		t.Errorf("Lookup(window) error = %v", err)
	}
	if _, _, err := Lookup("sdl"); err == nil {
		t.Error("expected error for unknown backend")
	}
}

func TestListSorted(t *testing.T) {
	reset()
	t.Cleanup(reset)

	for _, name := range []string{"window", "tui", "term"} {
		Register(BackendInfo{Name: name}, func(context.Context, Env) error { return nil })
	}

	list := List()
	expected := []string{"term", "tui", "window"}
	if len(list) != len(expected) {
		t.Fatalf("List() has %d entries, expected %d", len(list), len(expected))
	}
	for i, name := range expected {
		if list[i].Name != name {
			t.Errorf("List()[%d] = %q, expected %q", i, list[i].Name, name)
		}
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	reset()
	t.Cleanup(reset)

	Register(BackendInfo{Name: "tui"}, func(context.Context, Env) error { return nil })

	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register(BackendInfo{Name: "tui"}, func(context.Context, Env) error { return nil })
}
