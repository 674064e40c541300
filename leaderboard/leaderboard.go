package leaderboard

import (
	"cmp"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/lixenwraith/pixel-racer/config"
	"github.com/lixenwraith/pixel-racer/engine"
)

const (
	// FileName is the default board file in the working directory
	FileName = "leaderboard.json"

	MaxNameLen = 10
	MaxRecords = 10

	// DateLayout renders record dates as 03/07/2025 | 03:04 PM
	DateLayout = "01/02/2006 | 03:04 PM"

	defaultName = "PLAYER"
)

var ErrCorrupt = errors.New("leaderboard file is corrupt")

// SingleRecord is a solo race win
type SingleRecord struct {
	Name       string  `json:"name"`
	Time       float64 `json:"time"`
	Map        string  `json:"map"`
	Difficulty string  `json:"difficulty"`
	Laps       int     `json:"laps"`
	Date       string  `json:"date"`
	Session    string  `json:"session,omitempty"`
}

// MultiRecord is a two-player race result
type MultiRecord struct {
	Winner  string  `json:"winner"`
	Loser   string  `json:"loser"`
	Time    float64 `json:"time"`
	Map     string  `json:"map"`
	Laps    int     `json:"laps"`
	Date    string  `json:"date"`
	Session string  `json:"session,omitempty"`
}

// Board holds both categories, each sorted fastest first
type Board struct {
	SinglePlayer []SingleRecord `json:"single_player"`
	Multiplayer  []MultiRecord  `json:"multiplayer"`
}

// TopSingle returns up to limit solo records, optionally for one difficulty
func (b *Board) TopSingle(limit int, difficulty string) []SingleRecord {
	records := b.SinglePlayer
	if difficulty != "" {
		records = lo.Filter(records, func(r SingleRecord, _ int) bool {
			return strings.EqualFold(r.Difficulty, difficulty)
		})
	}
	return lo.Subset(records, 0, uint(max(limit, 0)))
}

// TopMulti returns up to limit two-player records
func (b *Board) TopMulti(limit int) []MultiRecord {
	return lo.Subset(b.Multiplayer, 0, uint(max(limit, 0)))
}

// Store reads and writes a board file
type Store struct {
	path string
	now  func() time.Time
}

func NewStore(path string) *Store {
	if path == "" {
		path = FileName
	}
	return &Store{path: path, now: time.Now}
}

func (s *Store) Path() string { return s.path }

// Load reads the board, a missing file is an empty board
// A corrupt file yields an empty board and ErrCorrupt
func (s *Store) Load() (*Board, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return &Board{}, nil
	}
	if err != nil {
		return &Board{}, fmt.Errorf("read leaderboard: %w", err)
	}

	var b Board
	if err := json.Unmarshal(data, &b); err != nil {
		return &Board{}, fmt.Errorf("%s: %w: %v", s.path, ErrCorrupt, err)
	}
	return &b, nil
}

// Save writes the board through a temp file rename
func (s *Store) Save(b *Board) error {
	if b.SinglePlayer == nil {
		b.SinglePlayer = []SingleRecord{}
	}
	if b.Multiplayer == nil {
		b.Multiplayer = []MultiRecord{}
	}
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return fmt.Errorf("encode leaderboard: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create leaderboard dir: %w", err)
		}
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write leaderboard: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("write leaderboard: %w", err)
	}
	return nil
}

// load opens the board for an update, a corrupt file is replaced
func (s *Store) load() (*Board, error) {
	b, err := s.Load()
	if err != nil && !errors.Is(err, ErrCorrupt) {
		return nil, err
	}
	return b, nil
}

// AddSingle records a solo win and keeps the fastest MaxRecords
func (s *Store) AddSingle(name string, elapsed time.Duration, track string, d config.Difficulty, laps int, session string) (SingleRecord, error) {
	b, err := s.load()
	if err != nil {
		return SingleRecord{}, err
	}

	rec := SingleRecord{
		Name:       cleanName(name),
		Time:       roundTime(elapsed),
		Map:        track,
		Difficulty: d.String(),
		Laps:       laps,
		Date:       s.date(),
		Session:    session,
	}
	b.SinglePlayer = keepFastest(append(b.SinglePlayer, rec), func(r SingleRecord) float64 { return r.Time })
	return rec, s.Save(b)
}

// AddMulti records a two-player result and keeps the fastest MaxRecords
func (s *Store) AddMulti(winner, loser string, elapsed time.Duration, track string, laps int, session string) (MultiRecord, error) {
	b, err := s.load()
	if err != nil {
		return MultiRecord{}, err
	}

	rec := MultiRecord{
		Winner:  cleanName(winner),
		Loser:   cleanName(loser),
		Time:    roundTime(elapsed),
		Map:     track,
		Laps:    laps,
		Date:    s.date(),
		Session: session,
	}
	b.Multiplayer = keepFastest(append(b.Multiplayer, rec), func(r MultiRecord) float64 { return r.Time })
	return rec, s.Save(b)
}

// Record stores a finished race under the player names of slots 1 and 2
// Only player wins are recorded, reports whether a record was written
func (s *Store) Record(res engine.Result, names [2]string) (bool, error) {
	var err error
	switch res.Outcome {
	case engine.OutcomeWin:
		_, err = s.AddSingle(names[0], res.Time, res.Track, res.Difficulty, res.Laps, res.SessionID)
	case engine.OutcomeP1Win:
		_, err = s.AddMulti(names[0], names[1], res.Time, res.Track, res.Laps, res.SessionID)
	case engine.OutcomeP2Win:
		_, err = s.AddMulti(names[1], names[0], res.Time, res.Track, res.Laps, res.SessionID)
	default:
		return false, nil
	}
	return err == nil, err
}

func (s *Store) date() string {
	return strings.ToUpper(s.now().Format(DateLayout))
}

func cleanName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return defaultName
	}
	r := []rune(name)
	return string(r[:min(len(r), MaxNameLen)])
}

func roundTime(d time.Duration) float64 {
	return math.Round(d.Seconds()*100) / 100
}

func keepFastest[T any](records []T, key func(T) float64) []T {
	slices.SortStableFunc(records, func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	})
	return records[:min(len(records), MaxRecords)]
}
