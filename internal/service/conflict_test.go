package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/KashAmir418/Numerio-sub000/internal/domain"
)

func TestBuildConflict_OrderVsChaosVerbatim(t *testing.T) {
	// lp 4 y lp 5, en ambos órdenes.
	a := profileFor(t, "2000-01-01")
	b := profileFor(t, "2000-01-02")

	c1, err := buildConflict(a, b, "Leo", "Ana")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c2, err := buildConflict(b, a, "Ana", "Leo")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	const want = "Order vs Chaos: The Eternal War"
	if c1.StyleTitle != want || c2.StyleTitle != want {
		t.Fatalf("4/5 title must be verbatim in both orders: %q / %q", c1.StyleTitle, c2.StyleTitle)
	}
}

func TestBuildConflict_InstigatorByAggressionGap(t *testing.T) {
	// lp 1 ataca con 85; lp 7 con 25: brecha 60 > 20. buildConflict solo
	// lee el camino de vida, así que alcanza un perfil mínimo.
	fa := domain.NumericProfile{LifePath: 1}
	fb := domain.NumericProfile{LifePath: 7}
	c, err := buildConflict(fa, fb, "Leo", "Ana")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Instigator != "Leo" {
		t.Fatalf("instigator: got %q, want Leo", c.Instigator)
	}
	// La brecha chica deja "Both": lp 4 (60) vs lp 6 (50).
	c, err = buildConflict(domain.NumericProfile{LifePath: 4}, domain.NumericProfile{LifePath: 6}, "Leo", "Ana")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Instigator != "Both" {
		t.Fatalf("instigator: got %q, want Both", c.Instigator)
	}
}

func TestBuildConflict_GhostSpecialCase(t *testing.T) {
	c, err := buildConflict(domain.NumericProfile{LifePath: 7}, domain.NumericProfile{LifePath: 8}, "A", "B")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Intensity != "Silent Decay" {
		t.Fatalf("a Ghost in the pair forces Silent Decay, got %q", c.Intensity)
	}
}

func TestBuildConflict_NobodyApologizes(t *testing.T) {
	// lp 4 (recovery 30) y lp 7 (recovery 20): ambos muy bajos.
	c, err := buildConflict(domain.NumericProfile{LifePath: 4}, domain.NumericProfile{LifePath: 7}, "A", "B")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(c.Resolution, "Nobody apologizes") {
		t.Fatalf("expected stalemate resolution, got %q", c.Resolution)
	}
}

func TestLookupFightProfile_MasterFallback(t *testing.T) {
	p, err := lookupFightProfile(11)
	if err != nil {
		t.Fatalf("11 must fall back to 2: %v", err)
	}
	if p.Style != "The Silent Treatment" {
		t.Fatalf("11 must resolve to the profile of 2, got %q", p.Style)
	}
	p, err = lookupFightProfile(33)
	if err != nil {
		t.Fatalf("33 must fall back to 6: %v", err)
	}
	if p.Style != "The Guilt Weaver" {
		t.Fatalf("33 must resolve to the profile of 6, got %q", p.Style)
	}
}

func TestLookupFightProfile_MissingEntry(t *testing.T) {
	_, err := lookupFightProfile(0)
	if !errors.Is(err, domain.ErrMissingContentEntry) {
		t.Fatalf("expected ErrMissingContentEntry, got %v", err)
	}
}
