package vocational

import "testing"

func TestClampScore(t *testing.T) {
	tests := []struct{ in, want int }{
		{-50, 0},
		{0, 0},
		{640, 640},
		{1000, 1000},
		{2000, 1000},
	}
	for _, tt := range tests {
		if got := ClampScore(tt.in); got != tt.want {
			t.Errorf("ClampScore(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestRank_WeightedTotals(t *testing.T) {
	scores := map[string]int{
		"leng":     600,
		"m1":       700,
		"m2":       650,
		"ciencias": 500,
		"historia": 400,
	}

	rankings := Rank(scores)
	if len(rankings) != 3 {
		t.Fatalf("got %d careers, want 3", len(rankings))
	}

	// Ingeniería Civil: 700*0.25 + 650*0.35 + 600*0.15 + 500*0.25 = 617.5 -> 618
	// Derecho:          700*0.20 + 600*0.45 + 400*0.35 = 550
	// Medicina:         700*0.20 + 600*0.15 + 500*0.65 = 555
	want := []struct {
		name  string
		total int
	}{
		{"Ingeniería Civil", 618},
		{"Medicina", 555},
		{"Derecho", 550},
	}
	for i, w := range want {
		if rankings[i].Career.Name != w.name || rankings[i].Total != w.total {
			t.Errorf("rank %d = %s/%d, want %s/%d",
				i, rankings[i].Career.Name, rankings[i].Total, w.name, w.total)
		}
	}
}

func TestRank_MissingSectionsCountZero(t *testing.T) {
	rankings := Rank(map[string]int{"leng": 800})

	for _, r := range rankings {
		if r.Career.Name == "Derecho" {
			// 800 * 0.45, m1 and historia missing.
			if r.Total != 360 {
				t.Errorf("Derecho = %d, want 360", r.Total)
			}
		}
	}
}

func TestRank_ClampsInputs(t *testing.T) {
	rankings := Rank(map[string]int{"leng": 5000, "m1": -100})

	for _, r := range rankings {
		if r.Career.Name == "Derecho" {
			// leng clamps to 1000, m1 to 0: 1000*0.45 = 450.
			if r.Total != 450 {
				t.Errorf("Derecho = %d, want 450", r.Total)
			}
		}
	}
}

func TestRank_EmptyScores(t *testing.T) {
	rankings := Rank(nil)
	if len(rankings) != 3 {
		t.Fatalf("got %d careers, want 3", len(rankings))
	}
	for i, r := range rankings {
		if r.Total != 0 {
			t.Errorf("rank %d total = %d, want 0", i, r.Total)
		}
	}
}
