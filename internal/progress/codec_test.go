package progress

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/meltforce/gymtracker/internal/rank"
)

// TestCodecRoundTripEmpty verifies the zero ledger survives encode/decode with
// an empty (not null) history.
func TestCodecRoundTripEmpty(t *testing.T) {
	data, err := Encode(Snapshot{})
	if err != nil {
		t.Fatal(err)
	}
	want := `{"totalWorkouts":0,"streak":0,"lastWorkoutDate":null,"history":[]}`
	if string(data) != want {
		t.Errorf("encoded = %s, want %s", data, want)
	}

	s, err := Decode(data)
	if err != nil {
		t.Fatal(err)
	}
	if s.TotalWorkouts != 0 || s.Streak != 0 || s.LastWorkoutDate != nil || s.History == nil || len(s.History) != 0 {
		t.Errorf("decoded = %+v", s)
	}
}

// TestCodecRoundTrip verifies all four fields survive encode/decode.
func TestCodecRoundTrip(t *testing.T) {
	brt := time.FixedZone("BRT", -3*3600)
	s := Snapshot{}
	s = Advance(s, time.Date(2024, 1, 30, 21, 15, 0, 123000000, brt), brt)
	s = Advance(s, time.Date(2024, 1, 31, 6, 0, 0, 0, brt), brt)

	data, err := Encode(s)
	if err != nil {
		t.Fatal(err)
	}
	got, err := Decode(data)
	if err != nil {
		t.Fatal(err)
	}
	if got.TotalWorkouts != s.TotalWorkouts || got.Streak != s.Streak || *got.LastWorkoutDate != *s.LastWorkoutDate {
		t.Errorf("decoded = %+v, want %+v", got, s)
	}
	if len(got.History) != len(s.History) {
		t.Fatalf("history len = %d, want %d", len(got.History), len(s.History))
	}
	for i := range s.History {
		if !got.History[i].Equal(s.History[i]) {
			t.Errorf("history[%d] = %v, want %v", i, got.History[i], s.History[i])
		}
	}
}

// TestEncodeFieldNames verifies the persisted field names.
func TestEncodeFieldNames(t *testing.T) {
	data, err := Encode(Advance(Snapshot{}, time.Date(2024, 2, 29, 12, 0, 0, 0, time.UTC), time.UTC))
	if err != nil {
		t.Fatal(err)
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"totalWorkouts", "streak", "lastWorkoutDate", "history"} {
		if _, ok := raw[key]; !ok {
			t.Errorf("missing field %q in %s", key, data)
		}
	}
	if raw["lastWorkoutDate"] != "2024-02-29" {
		t.Errorf("lastWorkoutDate = %v", raw["lastWorkoutDate"])
	}
}

// TestDecodeAcceptsBrowserTimestamps verifies ISO strings with milliseconds and Z parse.
func TestDecodeAcceptsBrowserTimestamps(t *testing.T) {
	raw := `{"totalWorkouts":1,"streak":1,"lastWorkoutDate":"2024-05-01","history":["2024-05-01T13:45:12.345Z"]}`
	s, err := Decode([]byte(raw))
	if err != nil {
		t.Fatal(err)
	}
	want := time.Date(2024, 5, 1, 13, 45, 12, 345000000, time.UTC)
	if !s.History[0].Equal(want) {
		t.Errorf("history[0] = %v, want %v", s.History[0], want)
	}
}

// TestReportResolvesRank verifies the read model carries the derived standing.
func TestReportResolvesRank(t *testing.T) {
	s := Snapshot{}
	for d := 1; d <= 10; d++ {
		s = Advance(s, time.Date(2024, 3, d, 9, 0, 0, 0, time.UTC), time.UTC)
	}
	r := s.Report(rank.DefaultTable())
	if r.Rank.Tier.Name != "Em Evolução" || r.Rank.Progress != 0 {
		t.Errorf("rank = %s %.0f%%, want Em Evolução 0%%", r.Rank.Tier.Name, r.Rank.Progress)
	}
	if r.Streak != 10 || r.TotalWorkouts != 10 {
		t.Errorf("report = %+v", r)
	}
}

// TestDecodeLastDateMatchesHistory verifies lastWorkoutDate must be the day
// of the last history entry, give or take the writer's zone offset.
func TestDecodeLastDateMatchesHistory(t *testing.T) {
	tests := []struct {
		name    string
		last    string
		wantErr bool
	}{
		{"same day", "2024-03-01", false},
		{"zone ahead of UTC", "2024-03-02", false},
		{"zone behind UTC", "2024-02-29", false},
		{"two days off", "2024-03-03", true},
		{"different year", "2030-01-01", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := `{"totalWorkouts":1,"streak":1,"lastWorkoutDate":"` + tt.last + `","history":["2024-03-01T10:00:00Z"]}`
			_, err := Decode([]byte(raw))
			if (err != nil) != tt.wantErr {
				t.Errorf("Decode err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
