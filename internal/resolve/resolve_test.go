package resolve

import (
	"reflect"
	"testing"
)

var artists = []string{"Tyla", "J. Cole", "The Weeknd", "Drake"}

func TestResolveLiteral(t *testing.T) {
	ix := NewIndex(artists)

	got, ok := ix.Resolve("drake")
	if !ok || got != "Drake" {
		t.Fatalf(`Resolve("drake") = %q, %v`, got, ok)
	}
}

func TestResolveSubstring(t *testing.T) {
	ix := NewIndex(artists)

	// Substring containment: "weeknd" is inside "The Weeknd".
	got, ok := ix.Resolve("weeknd")
	if !ok || got != "The Weeknd" {
		t.Fatalf(`Resolve("weeknd") = %q, %v`, got, ok)
	}
}

func TestResolveInitialVariation(t *testing.T) {
	ix := NewIndex(artists)

	// "j cole" only matches after the first word is reduced to an initial.
	got, ok := ix.Resolve("j cole")
	if !ok || got != "J. Cole" {
		t.Fatalf(`Resolve("j cole") = %q, %v`, got, ok)
	}
}

func TestResolveMiss(t *testing.T) {
	ix := NewIndex(artists)

	if got, ok := ix.Resolve("blue"); ok {
		t.Fatalf(`Resolve("blue") = %q, expected a miss`, got)
	}
	if _, ok := ix.Resolve(""); ok {
		t.Fatal("Resolve of empty string should miss")
	}
}

func TestResolveFirstMatchWins(t *testing.T) {
	ix := NewIndex([]string{"Sean Paul", "Sean Kingston"})

	got, ok := ix.Resolve("sean")
	if !ok || got != "Sean Paul" {
		t.Fatalf(`Resolve("sean") = %q, %v, want first indexed match`, got, ok)
	}
}

func TestVariations(t *testing.T) {
	got := Variations("j cole")
	want := []string{"J. cole", "J Cole", "J COLE", "The J Cole"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Variations(\"j cole\") = %v, want %v", got, want)
	}

	got = Variations("weeknd")
	want = []string{"Weeknd", "WEEKND", "The Weeknd"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Variations(\"weeknd\") = %v, want %v", got, want)
	}
}
