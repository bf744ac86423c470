package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/courtside/hoopsapi/dataset"
	"github.com/courtside/hoopsapi/stats"
)

const testGames = `[
  {"id": 20240112, "season": 2023, "opponent": "Riverside", "location": "home",
   "type": "region", "completed": true, "teamScore": 62, "opponentScore": 55, "result": "W"},
  {"id": 20240119, "season": 2023, "opponent": "Central", "location": "away",
   "type": "region", "completed": true, "teamScore": 48, "opponentScore": 51, "result": "L"},
  {"id": 20240126, "season": 2023, "opponent": "North", "location": "home",
   "type": "showcase", "completed": false}
]`

const testStats = `[
  {"playerId": "p1", "gameId": 20240112, "season": 2023, "minutes": 28,
   "points": 20, "rebounds": 5, "twoPM": 4, "twoPA": 8, "threePM": 3, "threePA": 5, "ftm": 3, "fta": 4},
  {"playerId": "p1", "gameId": 20240119, "season": 2023, "minutes": 30,
   "points": 10, "rebounds": 7, "threePM": 1, "threePA": 5, "twoPM": 2, "twoPA": 6, "ftm": 3, "fta": 3},
  {"playerId": "p2", "gameId": 20240112, "season": 2023, "minutes": 22,
   "points": 20, "rebounds": 10, "assists": 10},
  {"playerId": "p2", "gameId": 20240119, "season": 2023, "minutes": 0}
]`

const testPlayers = `[
  {"id": "p1", "firstName": "Jamie", "lastName": "Ortiz", "number": 23, "gradYear": 2025},
  {"id": "p2", "firstName": "Sam", "lastName": "Lee", "number": 4}
]`

func testHandler(t *testing.T) *Handler {
	t.Helper()
	dir := t.TempDir()
	for _, sport := range dataset.Sports {
		base := filepath.Join(dir, string(sport))
		if err := os.MkdirAll(base, 0o755); err != nil {
			t.Fatal(err)
		}
		files := map[string]string{
			"games.json":           `[]`,
			"playerGameStats.json": `[]`,
			"players.json":         `[]`,
		}
		if sport == dataset.Boys {
			files["games.json"] = testGames
			files["playerGameStats.json"] = testStats
			files["players.json"] = testPlayers
		}
		for name, body := range files {
			if err := os.WriteFile(filepath.Join(base, name), []byte(body), 0o644); err != nil {
				t.Fatal(err)
			}
		}
	}

	store := dataset.New(dir)
	if err := store.Load(context.Background()); err != nil {
		t.Fatal(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("go team"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	return New(store, []byte("test-signing-key"), hash)
}

func request(t *testing.T, h echo.HandlerFunc, method, target, body string, params ...string) (*httptest.ResponseRecorder, error) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	names := make([]string, 0, len(params)/2)
	values := make([]string, 0, len(params)/2)
	for i := 0; i+1 < len(params); i += 2 {
		names = append(names, params[i])
		values = append(values, params[i+1])
	}
	c.SetParamNames(names...)
	c.SetParamValues(values...)
	return rec, h(c)
}

func TestSeasons(t *testing.T) {
	h := testHandler(t)
	rec, err := request(t, h.Seasons, http.MethodGet, "/api/boys/seasons", "", "sport", "boys")
	if err != nil {
		t.Fatalf("Seasons() error = %v", err)
	}

	var got []seasonSummary
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Fatalf("seasons = %d, want 1", len(got))
	}
	s := got[0]
	if s.Season != 2023 || s.Label != "2023-24" || s.Wins != 1 || s.Losses != 1 || s.Games != 3 {
		t.Errorf("season summary = %+v, want 2023-24 at 1-1 over 3 games", s)
	}
}

func TestSeasonDetail(t *testing.T) {
	h := testHandler(t)
	rec, err := request(t, h.SeasonDetail, http.MethodGet, "/api/boys/seasons/2023", "",
		"sport", "boys", "year", "2023")
	if err != nil {
		t.Fatalf("SeasonDetail() error = %v", err)
	}

	var got seasonDetail
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if len(got.Schedule) != 3 {
		t.Fatalf("schedule = %d games, want 3", len(got.Schedule))
	}
	if got.Schedule[0].Margin == nil || *got.Schedule[0].Margin != 7 {
		t.Errorf("first game margin = %v, want 7", got.Schedule[0].Margin)
	}
	if got.Schedule[2].TeamScore != nil || got.Schedule[2].Result != nil {
		t.Error("future game leaked a score or result")
	}

	if len(got.PlayerTotals) != 2 {
		t.Fatalf("player totals = %d, want 2", len(got.PlayerTotals))
	}
	p1 := got.PlayerTotals[0]
	if p1.PlayerID != "p1" || p1.Points != 30 || p1.Games != 2 {
		t.Errorf("leading row = %+v, want p1 with 30 points in 2 games", p1)
	}
	if p1.Metrics.ThreePct == nil || *p1.Metrics.ThreePct != 40 {
		t.Errorf("p1 3P%% = %v, want 40", p1.Metrics.ThreePct)
	}
	// p2 sat out the second game (0 minutes), so one game played.
	p2 := got.PlayerTotals[1]
	if p2.PlayerID != "p2" || p2.Games != 1 {
		t.Errorf("second row = %+v, want p2 with 1 game", p2)
	}
}

func TestSeasonDetailUnknownYear(t *testing.T) {
	h := testHandler(t)
	_, err := request(t, h.SeasonDetail, http.MethodGet, "/api/boys/seasons/1901", "",
		"sport", "boys", "year", "1901")
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusNotFound {
		t.Fatalf("error = %v, want 404", err)
	}
}

func TestGameDetail(t *testing.T) {
	h := testHandler(t)
	rec, err := request(t, h.GameDetail, http.MethodGet, "/api/boys/games/20240112", "",
		"sport", "boys", "id", "20240112")
	if err != nil {
		t.Fatalf("GameDetail() error = %v", err)
	}

	var got boxScoreResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if got.Game.Opponent != "Riverside" || len(got.Box) != 2 {
		t.Fatalf("box score = %+v, want Riverside with 2 rows", got)
	}
	for _, row := range got.Box {
		if row.PlayerID != "p2" {
			continue
		}
		if !row.DoubleDouble || !row.TripleDouble {
			t.Errorf("p2 row = %+v, want double-double and triple-double", row)
		}
		if row.FGPct != nil {
			t.Errorf("p2 FG%% = %v, want nil with no attempts", *row.FGPct)
		}
	}
}

func TestPlayerDetail(t *testing.T) {
	h := testHandler(t)
	rec, err := request(t, h.PlayerDetail, http.MethodGet, "/api/boys/players/p1", "",
		"sport", "boys", "id", "p1")
	if err != nil {
		t.Fatalf("PlayerDetail() error = %v", err)
	}

	var got playerDetail
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if got.Player.Name != "Jamie Ortiz" {
		t.Errorf("player name = %q, want Jamie Ortiz", got.Player.Name)
	}
	if got.Career == nil || got.Career.Points != 30 || got.Career.Games != 2 {
		t.Fatalf("career = %+v, want 30 points in 2 games", got.Career)
	}
	if len(got.Seasons) != 1 || got.Seasons[0].SeasonLabel != "2023-24" {
		t.Errorf("seasons = %+v, want one 2023-24 split", got.Seasons)
	}
}

func TestSeasonRecordsPadded(t *testing.T) {
	h := testHandler(t)
	rec, err := request(t, h.SeasonRecords, http.MethodGet, "/api/boys/records/season", "",
		"sport", "boys")
	if err != nil {
		t.Fatalf("SeasonRecords() error = %v", err)
	}

	var boards []recordBoard
	if err := json.Unmarshal(rec.Body.Bytes(), &boards); err != nil {
		t.Fatal(err)
	}
	if len(boards) != len(stats.SeasonRecordDefs) {
		t.Fatalf("boards = %d, want %d", len(boards), len(stats.SeasonRecordDefs))
	}
	for _, b := range boards {
		if len(b.Entries) != stats.TopN {
			t.Errorf("board %s has %d entries, want %d", b.Key, len(b.Entries), stats.TopN)
		}
	}
}

func TestGameRecordsTiedForFirst(t *testing.T) {
	h := testHandler(t)
	rec, err := request(t, h.GameRecords, http.MethodGet, "/api/boys/records/game", "",
		"sport", "boys")
	if err != nil {
		t.Fatalf("GameRecords() error = %v", err)
	}

	var boards []gameRecordBoard
	if err := json.Unmarshal(rec.Body.Bytes(), &boards); err != nil {
		t.Fatal(err)
	}

	for _, b := range boards {
		if b.Key != "points" {
			continue
		}
		// p1 and p2 both scored 20 in the opener: both hold the record.
		if len(b.Entries) != 2 {
			t.Fatalf("points board = %+v, want 2 tied holders", b.Entries)
		}
		for _, e := range b.Entries {
			if e.Value != 20 || e.Opponent != "Riverside" {
				t.Errorf("entry = %+v, want 20 points vs Riverside", e)
			}
		}
		return
	}
	t.Fatal("no points board in game records")
}

func TestSigninFlow(t *testing.T) {
	h := testHandler(t)

	if _, err := request(t, h.Signin, http.MethodPost, "/signin", `{"passphrase": "wrong"}`); err == nil {
		t.Fatal("Signin with wrong passphrase succeeded")
	} else if httpErr, ok := err.(*echo.HTTPError); !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("error = %v, want 401", err)
	}

	rec, err := request(t, h.Signin, http.MethodPost, "/signin", `{"passphrase": "go team"}`)
	if err != nil {
		t.Fatalf("Signin() error = %v", err)
	}
	var got map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if got["token"] == "" {
		t.Error("no token in signin response")
	}
}

func TestSubmitBoxScore(t *testing.T) {
	h := testHandler(t)

	body := `{"gameId": 20240126, "rows": [
		{"playerId": "p1", "points": 12, "rebounds": 3, "twoPM": 6, "twoPA": 9},
		{"playerId": "p2", "points": 8, "assists": 5}
	]}`
	rec, err := request(t, h.SubmitBoxScore, http.MethodPost, "/admin/boys/boxscore", body,
		"sport", "boys")
	if err != nil {
		t.Fatalf("SubmitBoxScore() error = %v", err)
	}

	var merged []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &merged); err != nil {
		t.Fatal(err)
	}
	// 4 existing season rows plus 2 new ones.
	if len(merged) != 6 {
		t.Fatalf("merged rows = %d, want 6", len(merged))
	}
	last := merged[len(merged)-1]
	if last["gameId"].(float64) != 20240126 || last["season"].(float64) != 2023 {
		t.Errorf("submitted row = %+v, want gameId/season stamped from the game", last)
	}
}

func TestSubmitBoxScoreRejectsImpossibleShots(t *testing.T) {
	h := testHandler(t)

	body := `{"gameId": 20240126, "rows": [{"playerId": "p1", "threePM": 5, "threePA": 2}]}`
	_, err := request(t, h.SubmitBoxScore, http.MethodPost, "/admin/boys/boxscore", body,
		"sport", "boys")
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("error = %v, want 400", err)
	}
}

func TestExportSeasonRequiresParam(t *testing.T) {
	h := testHandler(t)
	_, err := request(t, h.ExportSeason, http.MethodGet, "/admin/boys/export", "",
		"sport", "boys")
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("error = %v, want 400", err)
	}
}
