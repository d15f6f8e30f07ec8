package content

import "testing"

func TestFriendly_SymmetricWithoutSelf(t *testing.T) {
	for a, friends := range Friendly {
		for _, b := range friends {
			if a == b {
				t.Fatalf("adjacency must not contain self: %d", a)
			}
			if !IsFriendly(b, a) {
				t.Fatalf("adjacency not symmetric: %d->%d", a, b)
			}
		}
	}
	if IsFriendly(4, 5) {
		t.Fatalf("4 and 5 must not be friendly (clash pair)")
	}
	if IsFriendly(1, 8) {
		t.Fatalf("1 and 8 must not be friendly (clash pair)")
	}
}

func TestTriads(t *testing.T) {
	if !SameTriad(1, 5) || !SameTriad(2, 8) || !SameTriad(3, 9) {
		t.Fatalf("expected triad membership to hold")
	}
	if SameTriad(1, 2) {
		t.Fatalf("1 and 2 share no triad")
	}
	if TriadOf(11) != -1 {
		t.Fatalf("11 belongs to no triad")
	}
}

func TestNarratives_EntriesComplete(t *testing.T) {
	for a, row := range Narratives {
		for b, blk := range row {
			if _, dup := Narratives[b][a]; dup && a != b {
				t.Fatalf("pair (%d,%d) stored in both directions", a, b)
			}
			if blk.Title == "" || len(blk.Descriptions) == 0 {
				t.Fatalf("pair (%d,%d): missing title or descriptions", a, b)
			}
			for i, s := range []string{blk.Gift, blk.Challenge, blk.Growth, blk.Interaction, blk.Truth, blk.SoulTeaching} {
				if s == "" {
					t.Fatalf("pair (%d,%d): empty core field %d", a, b, i)
				}
			}
			if len(blk.GreenFlags) < 3 || len(blk.RedFlags) < 3 {
				t.Fatalf("pair (%d,%d): flag lists too short for backfill", a, b)
			}
		}
	}
}

func TestFightProfiles_CoverSingleDigits(t *testing.T) {
	for n := 1; n <= 9; n++ {
		p, ok := FightProfiles[n]
		if !ok {
			t.Fatalf("missing fight profile for %d", n)
		}
		for _, v := range []int{p.Aggression, p.Volatility, p.Recovery} {
			if v < 0 || v > 100 {
				t.Fatalf("fight profile %d: score %d out of range", n, v)
			}
		}
		if p.Style == "" || p.Tactic == "" {
			t.Fatalf("fight profile %d incomplete", n)
		}
	}
}

func TestGossipArraysNonEmpty(t *testing.T) {
	if len(GossipArgumentStyles) == 0 || len(GossipApologyWho) == 0 || len(GossipNarratives) == 0 {
		t.Fatalf("gossip arrays must not be empty")
	}
	for n := 1; n <= 9; n++ {
		if LifePathTraits[n] == "" {
			t.Fatalf("missing trait epithet for %d", n)
		}
	}
}
