package leaderboard

import (
	"testing"
)

func TestIsHighScore(t *testing.T) {
	b := Board{}

	if !b.IsHighScore("easy", 0) {
		t.Error("Empty table should admit any score")
	}

	for i := 0; i < 10; i++ {
		b.Add("easy", "AAA", 20+i*10)
	}

	tests := []struct {
		score int
		want  bool
	}{
		{200, true},
		{21, true},
		{20, false},
		{19, false},
		{0, false},
	}
	for _, tc := range tests {
		if got := b.IsHighScore("easy", tc.score); got != tc.want {
			t.Errorf("IsHighScore(easy, %d) = %v, expected %v", tc.score, got, tc.want)
		}
	}

	// Other difficulties keep their own tables.
	if !b.IsHighScore("hard", 1) {
		t.Error("Empty hard table should admit any score")
	}
}

func TestAddRanksDescending(t *testing.T) {
	b := Board{}
	b.Add("medium", "LOW", 10)
	b.Add("medium", "HIGH", 90)
	b.Add("medium", "MID", 50)

	got := b.Top("medium", 10)
	want := []Entry{{"HIGH", 90}, {"MID", 50}, {"LOW", 10}}
	if len(got) != len(want) {
		t.Fatalf("Top returned %d entries, expected %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Top[%d] = %+v, expected %+v", i, got[i], want[i])
		}
	}
}

func TestAddTruncates(t *testing.T) {
	b := Board{}
	for i := 1; i <= 12; i++ {
		b.Add("hard", "P", i*10)
	}

	got := b.Top("hard", 20)
	if len(got) != 10 {
		t.Fatalf("Table holds %d entries, expected 10", len(got))
	}
	if got[0].Score != 120 || got[9].Score != 30 {
		t.Errorf("Table spans %d..%d, expected 120..30", got[0].Score, got[9].Score)
	}
}

func TestAddStableTies(t *testing.T) {
	b := Board{}
	b.Add("insane", "FIRST", 50)
	b.Add("insane", "SECOND", 50)
	b.Add("insane", "THIRD", 50)

	got := b.Top("insane", 3)
	if got[0].Name != "FIRST" || got[1].Name != "SECOND" || got[2].Name != "THIRD" {
		t.Errorf("Tied entries reordered: %+v", got)
	}
}

func TestTop(t *testing.T) {
	b := Board{}
	b.Add("easy", "A", 30)
	b.Add("easy", "B", 20)
	b.Add("easy", "C", 10)

	if got := b.Top("easy", 2); len(got) != 2 || got[1].Name != "B" {
		t.Errorf("Top(easy, 2) = %+v, expected the two best", got)
	}
	if got := b.Top("easy", 99); len(got) != 3 {
		t.Errorf("Top(easy, 99) returned %d entries, expected 3", len(got))
	}
	if got := b.Top("medium", 5); len(got) != 0 {
		t.Errorf("Top of a missing difficulty = %+v, expected empty", got)
	}
}

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"alice", "ALICE", false},
		{"Bob42", "BOB42", false},
		{"  carol  ", "CAROL", false},
		{"X", "X", false},
		{"ABCDEFGHIJKLMNOPQRST", "ABCDEFGHIJKLMNOPQRST", false},
		{"ABCDEFGHIJKLMNOPQRSTU", "", true},
		{"", "", true},
		{"   ", "", true},
		{"two words", "", true},
		{"dash-er", "", true},
		{"über", "", true},
	}

	for _, tc := range tests {
		got, err := NormalizeName(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("NormalizeName(%q) accepted an invalid name", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("NormalizeName(%q) failed: %v", tc.in, err)
		} else if got != tc.want {
			t.Errorf("NormalizeName(%q) = %q, expected %q", tc.in, got, tc.want)
		}
	}
}
