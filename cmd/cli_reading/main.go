package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/KashAmir418/Numerio-sub000/internal/service"
)

// Herramienta de terminal: imprime una lectura completa para dos fechas.
func main() {
	dateA := flag.String("a", "", "fecha de nacimiento A (YYYY-MM-DD)")
	dateB := flag.String("b", "", "fecha de nacimiento B (YYYY-MM-DD)")
	nameA := flag.String("name-a", "", "nombre de A (opcional)")
	nameB := flag.String("name-b", "", "nombre de B (opcional)")
	flag.Parse()

	if *dateA == "" || *dateB == "" {
		fmt.Fprintln(os.Stderr, "usage: cli_reading -a YYYY-MM-DD -b YYYY-MM-DD [-name-a N] [-name-b N]")
		os.Exit(2)
	}

	svc := service.NewCompatibilityService(zap.NewNop())
	res, err := svc.Compute(*dateA, *dateB, *nameA, *nameB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("=== %s + %s · %s ===\n", res.PersonA.Name, res.PersonB.Name, res.Day)
	fmt.Printf("Life paths: %d / %d\n\n", res.PersonA.LifePath, res.PersonB.LifePath)

	fmt.Printf("TOTAL %d — %s (%s)\n", res.Scores.Total, res.Scores.Label, res.Scores.Vibe)
	fmt.Printf("mental %d · emotional %d · physical %d · soul %d\n\n",
		res.Scores.Mental, res.Scores.Emotional, res.Scores.Physical, res.Scores.Soul)

	fmt.Printf("%s\n%s\n\n", res.Narrative.Title, res.Narrative.Description)
	fmt.Printf("Gift: %s\nChallenge: %s\nGrowth: %s\n\n",
		res.Narrative.Gift, res.Narrative.Challenge, res.Narrative.Growth)

	fmt.Printf("Viral: lust %d%% · logic %d%% · toxic %d%%\n  %s\n\n",
		res.Viral.Lust, res.Viral.Logic, res.Viral.Toxic, res.Viral.Insight)

	fmt.Println("Green flags:")
	for _, f := range res.Signals.GreenFlags {
		fmt.Printf("  + %s\n", f)
	}
	fmt.Println("Red flags:")
	for _, f := range res.Signals.RedFlags {
		fmt.Printf("  - %s\n", f)
	}

	fmt.Printf("\nBreakup: %d%% (%s)\n", res.Breakup.Chance, res.Breakup.RiskLevel)
	for _, r := range res.Breakup.Reasons {
		fmt.Printf("  %s\n", r)
	}

	if res.Conflict != nil {
		c := res.Conflict
		fmt.Printf("\n%s\n", c.StyleTitle)
		fmt.Printf("instigator: %s · intensity: %s\n", c.Instigator, c.Intensity)
		fmt.Printf("weapons: %s // %s\n", c.WeaponA, c.WeaponB)
		fmt.Printf("%s\nRecovery: %s\n", c.Resolution, c.RecoveryTime)
	}

	fmt.Printf("\nSynergy %d: %s\n", res.Synergy.Score, res.Synergy.Text)
	fmt.Printf("Timing %d: %s\n", res.Timing.Score, res.Timing.Text)
	fmt.Printf("Attitude %d: %s\n", res.Attitude.Score, res.Attitude.Text)
	fmt.Println(strings.Repeat("=", 40))
}
