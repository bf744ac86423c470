// Package dataset loads the static JSON archive files into immutable
// in-memory snapshots. A load either fully succeeds and the new snapshot is
// swapped in, or the previous snapshot stays, so aggregation never sees
// partial data.
package dataset

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/courtside/hoopsapi/models"
	"github.com/courtside/hoopsapi/stats"
)

// Sport selects one of the two programs in the archive.
type Sport string

const (
	Boys  Sport = "boys"
	Girls Sport = "girls"
)

// Sports lists every program the store loads.
var Sports = []Sport{Boys, Girls}

// ParseSport validates a sport path parameter.
func ParseSport(s string) (Sport, error) {
	switch Sport(s) {
	case Boys, Girls:
		return Sport(s), nil
	}
	return "", fmt.Errorf("unknown sport %q", s)
}

// Snapshot is the fully-loaded data for one sport. It is never mutated after
// load; every page view aggregates over it fresh.
type Snapshot struct {
	Sport   Sport
	Games   []models.Game
	Rows    []models.StatLine
	Players map[string]*models.Player
	Seasons map[int]*models.SeasonMeta
	Rosters []models.RosterEntry

	GamesByID map[int]*models.Game
}

// PlayerName resolves a player ID to a display name, falling back to the ID
// for rows referencing players missing from the reference file.
func (s *Snapshot) PlayerName(id string) string {
	if p, ok := s.Players[id]; ok {
		return p.FullName()
	}
	return id
}

// SeasonYears returns the distinct seasons present in the games file, newest
// first.
func (s *Snapshot) SeasonYears() []int {
	seen := make(map[int]struct{})
	for _, g := range s.Games {
		seen[g.Season] = struct{}{}
	}
	years := make([]int, 0, len(seen))
	for y := range seen {
		years = append(years, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years
}

// Store holds the current snapshot per sport and supports atomic reload.
type Store struct {
	dir string

	mu    sync.RWMutex
	snaps map[Sport]*Snapshot
}

// New creates a Store rooted at the data directory. Call Load before serving.
func New(dir string) *Store {
	return &Store{dir: dir, snaps: make(map[Sport]*Snapshot)}
}

// Load reads every sport's files and swaps the new snapshots in together.
// A cancelled context discards the in-flight load.
func (s *Store) Load(ctx context.Context) error {
	fresh := make(map[Sport]*Snapshot, len(Sports))
	for _, sport := range Sports {
		snap, err := loadSport(ctx, s.dir, sport)
		if err != nil {
			return fmt.Errorf("loading %s: %w", sport, err)
		}
		fresh[sport] = snap
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	s.snaps = fresh
	s.mu.Unlock()
	return nil
}

// Snapshot returns the current data for a sport.
func (s *Store) Snapshot(sport Sport) (*Snapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap, ok := s.snaps[sport]
	return snap, ok
}

func loadSport(ctx context.Context, dir string, sport Sport) (*Snapshot, error) {
	base := filepath.Join(dir, string(sport))
	snap := &Snapshot{
		Sport:   sport,
		Players: make(map[string]*models.Player),
		Seasons: make(map[int]*models.SeasonMeta),
	}

	if err := readJSON(ctx, filepath.Join(base, "games.json"), &snap.Games); err != nil {
		return nil, err
	}

	var raws []map[string]any
	if err := readJSON(ctx, filepath.Join(base, "playerGameStats.json"), &raws); err != nil {
		return nil, err
	}
	snap.Rows = stats.NormalizeRows(raws)
	warnImpossibleShots(sport, snap.Rows)

	var players []models.Player
	if err := readJSON(ctx, filepath.Join(base, "players.json"), &players); err != nil {
		return nil, err
	}
	for i := range players {
		snap.Players[players[i].ID] = &players[i]
	}

	// Seasons and rosters are display enrichment; older archives lack them.
	var seasons []models.SeasonMeta
	if err := readOptionalJSON(ctx, filepath.Join(base, "seasons.json"), &seasons); err != nil {
		return nil, err
	}
	for i := range seasons {
		snap.Seasons[seasons[i].Season] = &seasons[i]
	}
	if err := readOptionalJSON(ctx, filepath.Join(base, "rosters.json"), &snap.Rosters); err != nil {
		return nil, err
	}

	snap.GamesByID = make(map[int]*models.Game, len(snap.Games))
	for i := range snap.Games {
		snap.GamesByID[snap.Games[i].ID] = &snap.Games[i]
	}

	zap.L().Info("loaded sport data",
		zap.String("sport", string(sport)),
		zap.Int("games", len(snap.Games)),
		zap.Int("statRows", len(snap.Rows)),
		zap.Int("players", len(snap.Players)),
	)
	return snap, nil
}

func readJSON(ctx context.Context, path string, dst any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}
	return nil
}

func readOptionalJSON(ctx context.Context, path string, dst any) error {
	err := readJSON(ctx, path, dst)
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return err
}

// warnImpossibleShots flags rows where makes exceed attempts. The source data
// has no such guarantee, so this only logs; the aggregation contract is
// unchanged.
func warnImpossibleShots(sport Sport, rows []models.StatLine) {
	for _, r := range rows {
		if r.TwoPM > r.TwoPA || r.ThreePM > r.ThreePA || r.FTM > r.FTA {
			zap.L().Warn("stat row has more makes than attempts",
				zap.String("sport", string(sport)),
				zap.String("playerId", r.PlayerID),
				zap.Int("gameId", r.GameID),
			)
		}
	}
}
