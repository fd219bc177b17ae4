package app

import (
	"encoding/json"
	"testing"
)

// The starter deck is the entire card supply when no generator is
// configured, and the supply serves it with a source = "seed" filter. Every
// card must match that filter and land in a starter domain.
func TestStarterCardsServeTheSeededSupply(t *testing.T) {
	domains := map[string]bool{}
	for _, d := range starterDomains() {
		domains[d.Name] = true
	}

	cards := starterCards()
	if len(cards) == 0 {
		t.Fatalf("starter deck is empty; degraded mode would have nothing to serve")
	}

	perDomain := map[string]int{}
	for _, card := range cards {
		if card.Source != "seed" {
			t.Fatalf("card %q source = %q, want seed", card.Title, card.Source)
		}
		if !domains[card.DomainName] {
			t.Fatalf("card %q domain %q is not a starter domain", card.Title, card.DomainName)
		}
		if card.Title == "" || card.Description == "" {
			t.Fatalf("card %q has empty display fields", card.Title)
		}
		var skills []string
		if err := json.Unmarshal(card.CoreSkills, &skills); err != nil || len(skills) == 0 {
			t.Fatalf("card %q core skills: err=%v skills=%v", card.Title, err, skills)
		}
		perDomain[card.DomainName]++
	}

	for name := range domains {
		if perDomain[name] == 0 {
			t.Fatalf("starter domain %q has no cards in the deck", name)
		}
	}
}
