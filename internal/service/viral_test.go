package service

import "testing"

func TestComputeViral_SixNinePairMaxesLust(t *testing.T) {
	// 2001-01-02 -> lp 6; 2001-01-05 -> lp 9.
	a := profileFor(t, "2001-01-02")
	b := profileFor(t, "2001-01-05")
	_, parts := scorePair(a, b)
	v := computeViral(a, b, parts)
	if v.Lust < 80 {
		t.Fatalf("the 6/9 pair must score high lust, got %d", v.Lust)
	}
}

func TestComputeViral_Bounds(t *testing.T) {
	dates := []string{
		"1900-01-01", "1913-12-31", "1944-06-16", "1969-09-09",
		"1984-02-05", "1990-01-01", "2000-01-01", "2011-11-11",
	}
	for _, da := range dates {
		for _, db := range dates {
			a, b := profileFor(t, da), profileFor(t, db)
			_, parts := scorePair(a, b)
			v := computeViral(a, b, parts)
			if v.Lust < 10 || v.Lust > 99 {
				t.Fatalf("%s vs %s: lust %d outside [10,99]", da, db, v.Lust)
			}
			if v.Logic < 5 || v.Logic > 99 {
				t.Fatalf("%s vs %s: logic %d outside [5,99]", da, db, v.Logic)
			}
			if v.Toxic < 5 || v.Toxic > 99 {
				t.Fatalf("%s vs %s: toxic %d outside [5,99]", da, db, v.Toxic)
			}
			if v.Insight == "" {
				t.Fatalf("%s vs %s: empty insight", da, db)
			}
		}
	}
}

func TestViralInsight_FirstMatchingBranchWins(t *testing.T) {
	if got := viralInsight(90, 30, 75); got != "This is the pairing group chats were invented to discuss." {
		t.Fatalf("toxic branch must win first: %q", got)
	}
	if got := viralInsight(85, 30, 20); got != "The chemistry is writing checks the communication can't cash." {
		t.Fatalf("lust-over-logic branch: %q", got)
	}
	if got := viralInsight(30, 80, 20); got != "Reads like a board meeting that occasionally holds hands." {
		t.Fatalf("logic-over-lust branch: %q", got)
	}
	if got := viralInsight(75, 65, 20); got != "Dangerously functional: attraction with a project plan." {
		t.Fatalf("balanced-high branch: %q", got)
	}
	if got := viralInsight(50, 50, 20); got == "" {
		t.Fatalf("default branch must produce text")
	}
}
