package state

import (
	"reflect"
	"testing"
)

func TestToggleAddsAndRemoves(t *testing.T) {
	s := NewSelection[string](nil)
	if !s.Toggle("p1") {
		t.Fatal("expected first toggle to select")
	}
	if !s.Has("p1") {
		t.Fatal("expected membership after toggle")
	}
	if s.Toggle("p1") {
		t.Fatal("expected second toggle to deselect")
	}
	if s.Has("p1") || s.Len() != 0 {
		t.Fatal("expected empty set after double toggle")
	}
}

func TestDoubleToggleRestoresPriorContents(t *testing.T) {
	s := NewSelection([]string{"a", "b"})
	before := s.Values()
	s.Toggle("c")
	s.Toggle("c")
	if !reflect.DeepEqual(s.Values(), before) {
		t.Fatalf("expected %v restored, got %v", before, s.Values())
	}
}

func TestValuesKeepFirstSelectedOrder(t *testing.T) {
	s := NewSelection[string](nil)
	s.Toggle("b")
	s.Toggle("a")
	s.Toggle("c")
	s.Toggle("a")
	s.Toggle("a")
	want := []string{"b", "c", "a"}
	if !reflect.DeepEqual(s.Values(), want) {
		t.Fatalf("expected %v, got %v", want, s.Values())
	}
}

func TestSeedDeduplicates(t *testing.T) {
	s := NewSelection([]string{"x", "y", "x"})
	if s.Len() != 2 {
		t.Fatalf("expected 2 seeded values, got %d", s.Len())
	}
	if !reflect.DeepEqual(s.Values(), []string{"x", "y"}) {
		t.Fatalf("unexpected seed order %v", s.Values())
	}
}

func TestValuesReturnsCopy(t *testing.T) {
	s := NewSelection([]string{"x"})
	got := s.Values()
	got[0] = "mutated"
	if s.Values()[0] != "x" {
		t.Fatal("expected internal order unaffected by caller mutation")
	}
}
