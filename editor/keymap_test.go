package editor

import (
	"reflect"
	"strings"
	"testing"
)

func TestKeyMap_Override(t *testing.T) {
	km := DefaultKeyMap()
	if err := km.Override(map[string][]string{"quit": {"ctrl+q"}, "home": {"ctrl+b"}}); err != nil {
		t.Fatalf("override: %v", err)
	}
	if got, want := km.Quit.Keys(), []string{"ctrl+q"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("quit keys: got %v, want %v", got, want)
	}
	if got, want := km.Home.Keys(), []string{"ctrl+b"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("home keys: got %v, want %v", got, want)
	}
	if got, want := km.Left.Keys(), []string{"left"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("left keys changed: got %v, want %v", got, want)
	}
}

func TestKeyMap_OverrideUnknownAction(t *testing.T) {
	km := DefaultKeyMap()
	err := km.Override(map[string][]string{"undo": {"ctrl+z"}, "left": {"h"}})
	if err == nil || !strings.Contains(err.Error(), "undo") {
		t.Fatalf("err: got %v, want unknown action undo", err)
	}
	if got, want := km.Left.Keys(), []string{"h"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("known actions should still apply: got %v, want %v", got, want)
	}
}

func TestKeyMap_ZeroUsesDefaults(t *testing.T) {
	m := New(Config{})
	if got := m.cfg.KeyMap.Quit.Keys(); len(got) == 0 {
		t.Fatalf("zero key map should fall back to defaults")
	}
}
