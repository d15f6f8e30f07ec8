package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"go.uber.org/zap"

	"github.com/KashAmir418/Numerio-sub000/internal/domain"
	"github.com/KashAmir418/Numerio-sub000/internal/numerology"
	"github.com/KashAmir418/Numerio-sub000/internal/service"
)

const (
	colorGreen = "\033[32m"
	colorCyan  = "\033[36m"
	colorReset = "\033[0m"
)

// Verificador de determinismo: recorre un rango de fechas y falla en la
// primera violación de los contratos del motor.
func main() {
	svc := service.NewCompatibilityService(zap.NewNop())
	pinnedNow := time.Date(2024, time.June, 15, 10, 30, 0, 0, time.UTC)

	dates := sweepDates(time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC), 120, 31)
	fmt.Printf("%s[sweep]%s %d fechas, now fijado en %s\n",
		colorCyan, colorReset, len(dates), pinnedNow.Format("2006-01-02"))

	var checked int
	for i, a := range dates {
		for _, b := range dates[i:] {
			first, err := svc.ComputeAt(a, b, "Ana", "Leo", pinnedNow)
			if err != nil {
				log.Fatalf("compute %s/%s: %v", a, b, err)
			}
			second, err := svc.ComputeAt(a, b, "Ana", "Leo", pinnedNow)
			if err != nil {
				log.Fatalf("recompute %s/%s: %v", a, b, err)
			}

			fj, err := json.Marshal(first)
			if err != nil {
				log.Fatalf("marshal %s/%s: %v", a, b, err)
			}
			sj, err := json.Marshal(second)
			if err != nil {
				log.Fatalf("remarshal %s/%s: %v", a, b, err)
			}
			if !bytes.Equal(fj, sj) {
				log.Fatalf("non-deterministic result for %s/%s within the same day", a, b)
			}

			checkRanges(a, b, first)
			checked++
		}
	}
	fmt.Printf("%s[ok]%s %d pares recomputados byte a byte y dentro de rango\n",
		colorGreen, colorReset, checked)

	checkVariantSelector()
	fmt.Printf("%s[ok]%s selector de variantes estable por día y no constante\n",
		colorGreen, colorReset)
}

// sweepDates genera hasta n fechas válidas saltando de a stepDays desde start.
func sweepDates(start time.Time, n, stepDays int) []string {
	out := make([]string, 0, n)
	d := start
	for len(out) < n {
		out = append(out, d.Format("2006-01-02"))
		d = d.AddDate(0, 0, stepDays)
	}
	return out
}

func checkRanges(a, b string, res domain.CompatibilityResult) {
	in := func(field string, v, lo, hi int) {
		if v < lo || v > hi {
			log.Fatalf("%s/%s: %s=%d outside [%d,%d]", a, b, field, v, lo, hi)
		}
	}
	in("total", res.Scores.Total, 0, 100)
	in("mental", res.Scores.Mental, 0, 100)
	in("emotional", res.Scores.Emotional, 0, 100)
	in("physical", res.Scores.Physical, 0, 100)
	in("soul", res.Scores.Soul, 0, 100)
	in("lust", res.Viral.Lust, 10, 99)
	in("logic", res.Viral.Logic, 5, 99)
	in("toxic", res.Viral.Toxic, 5, 99)
	in("breakup", res.Breakup.Chance, 1, 99)
	in("timing", res.Timing.Score, 40, 95)
	if res.Scores.Label == "" || res.Scores.Vibe == "" {
		log.Fatalf("%s/%s: empty label or vibe", a, b)
	}
	if res.Narrative.Title == "" || res.Narrative.Description == "" {
		log.Fatalf("%s/%s: empty narrative", a, b)
	}
}

func checkVariantSelector() {
	// Mismo día, misma semilla: siempre la misma variante.
	for seed := 0; seed < 50; seed++ {
		v := numerology.SelectVariant(seed, "2024-06-15", 7)
		for rep := 0; rep < 10; rep++ {
			if numerology.SelectVariant(seed, "2024-06-15", 7) != v {
				log.Fatalf("variant selector unstable for seed %d", seed)
			}
		}
		if v < 0 || v >= 7 {
			log.Fatalf("variant %d out of range for seed %d", v, seed)
		}
	}

	// A lo largo de un año las variantes deben rotar, no quedarse clavadas.
	day := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	first := numerology.SelectVariant(3, day.Format("2006-01-02"), 7)
	rotated := false
	for i := 0; i < 365; i++ {
		day = day.AddDate(0, 0, 1)
		if numerology.SelectVariant(3, day.Format("2006-01-02"), 7) != first {
			rotated = true
			break
		}
	}
	if !rotated {
		log.Fatal("variant selector constant across a full year")
	}
}
