package cropindex

import "testing"

func TestMatchCrop(t *testing.T) {
	candidates := []string{"Wheat", "Rice", "Maize", "Sugarcane", "Cotton"}

	t.Run("typo resolves", func(t *testing.T) {
		name, score, ok := MatchCrop("whaet", candidates)
		if !ok {
			t.Fatalf("MatchCrop(whaet) not ok, score %d", score)
		}
		if name != "Wheat" {
			t.Errorf("name = %q, want Wheat", name)
		}
	})

	t.Run("exact match", func(t *testing.T) {
		name, score, ok := MatchCrop("Rice", candidates)
		if !ok || name != "Rice" {
			t.Fatalf("MatchCrop(Rice) = %q,%d,%v", name, score, ok)
		}
	})

	t.Run("case insensitive", func(t *testing.T) {
		name, _, ok := MatchCrop("cotton", candidates)
		if !ok || name != "Cotton" {
			t.Fatalf("MatchCrop(cotton) = %q,%v", name, ok)
		}
	})

	t.Run("below floor rejected", func(t *testing.T) {
		_, score, ok := MatchCrop("xyzzy", candidates)
		if ok {
			t.Fatalf("MatchCrop(xyzzy) ok with score %d", score)
		}
	})

	t.Run("no candidates", func(t *testing.T) {
		_, _, ok := MatchCrop("Wheat", nil)
		if ok {
			t.Fatal("MatchCrop with no candidates should not match")
		}
	})
}
