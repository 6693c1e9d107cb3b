package league

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/x1-ranking/internal/ranking"
)

// New creates a new LeagueStore.
func New(db *sql.DB) LeagueStore {
	return &store{
		db: db,
	}
}

// rankedPlayersQuery aggregates approved matches per player. winrate is NULL
// for players without approved matches.
const rankedPlayersQuery = `
	SELECT
		p.id,
		p.name,
		COUNT(CASE WHEN m.winner_player_id = p.id THEN 1 END) AS matches_won,
		COUNT(CASE WHEN m.loser_player_id = p.id THEN 1 END) AS matches_lost,
		CASE
			WHEN COUNT(m.id) = 0 THEN NULL
			ELSE CAST(ROUND(COUNT(CASE WHEN m.winner_player_id = p.id THEN 1 END) * 100.0 / COUNT(m.id)) AS INTEGER)
		END AS winrate
	FROM players p
	LEFT JOIN matches m
		ON (m.winner_player_id = p.id OR m.loser_player_id = p.id) AND m.approved = 1
	GROUP BY p.id, p.name
`

const matchColumns = `
	m.id,
	m.winner_player_id,
	COALESCE(winner.name, ''),
	m.winner_champion,
	m.loser_player_id,
	COALESCE(loser.name, ''),
	m.loser_champion,
	COALESCE(m.match_date, ''),
	m.approved,
	m.created_at
`

const matchJoins = `
	FROM matches m
	LEFT JOIN players winner ON winner.id = m.winner_player_id
	LEFT JOIN players loser ON loser.id = m.loser_player_id
`

// GetRankedPlayers returns one row per player in no particular order.
func (s *store) GetRankedPlayers(ctx context.Context) ([]ranking.RankedPlayer, error) {
	rows, err := s.db.QueryContext(ctx, rankedPlayersQuery)
	if err != nil {
		log.Error("Failed to query ranked players", "error", err)
		return nil, datastoreErr("query ranked players", err)
	}
	defer rows.Close()

	players := []ranking.RankedPlayer{}
	for rows.Next() {
		var (
			p       ranking.RankedPlayer
			winrate sql.NullInt64
		)
		if err := rows.Scan(&p.ID, &p.Name, &p.MatchesWon, &p.MatchesLost, &winrate); err != nil {
			return nil, datastoreErr("scan ranked player", err)
		}
		if winrate.Valid {
			v := int(winrate.Int64)
			p.Winrate = &v
		}
		players = append(players, p)
	}
	if err := rows.Err(); err != nil {
		return nil, datastoreErr("iterate ranked players", err)
	}
	return players, nil
}

// GetMatchHistory returns approved matches, most recent match date first.
// Rows whose date cannot be parsed sort last.
func (s *store) GetMatchHistory(ctx context.Context) ([]MatchRecord, error) {
	query := `SELECT ` + matchColumns + matchJoins + `
		WHERE m.approved = 1
		ORDER BY
			CASE WHEN date(m.match_date) IS NULL THEN 1 ELSE 0 END,
			date(m.match_date) DESC,
			m.created_at DESC,
			m.id DESC
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("Failed to query match history", "error", err)
		return nil, datastoreErr("query match history", err)
	}
	defer rows.Close()

	matches := []MatchRecord{}
	for rows.Next() {
		match, err := s.scanMatch(rows)
		if err != nil {
			return nil, datastoreErr("scan match", err)
		}
		matches = append(matches, *match)
	}
	if err := rows.Err(); err != nil {
		return nil, datastoreErr("iterate matches", err)
	}
	return matches, nil
}

// GetMatch retrieves a single approved match.
func (s *store) GetMatch(ctx context.Context, matchID int64) (*MatchRecord, error) {
	query := `SELECT ` + matchColumns + matchJoins + ` WHERE m.id = ? AND m.approved = 1`
	match, err := s.scanMatch(s.db.QueryRowContext(ctx, query, matchID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrMatchNotFound
	}
	if err != nil {
		return nil, datastoreErr("get match", err)
	}
	return match, nil
}

// scanMatch is a helper function to scan a single match row.
func (s *store) scanMatch(scanner interface{ Scan(...any) error }) (*MatchRecord, error) {
	var (
		match     MatchRecord
		createdAt int64
	)
	err := scanner.Scan(
		&match.ID, &match.WinnerPlayerID, &match.WinnerName, &match.WinnerChampion,
		&match.LoserPlayerID, &match.LoserName, &match.LoserChampion,
		&match.MatchDate, &match.Approved, &createdAt,
	)
	if err != nil {
		return nil, err
	}
	match.CreatedAt = time.Unix(createdAt, 0).UTC()
	return &match, nil
}

// InsertMatch records an approved match in a single statement. The row is only
// written when both players exist; otherwise ErrPlayerNotFound is returned.
func (s *store) InsertMatch(ctx context.Context, match NewMatch) (int64, error) {
	if match.WinnerPlayerID == match.LoserPlayerID {
		return 0, &ValidationError{Field: "loserPlayerId", Message: "winner and loser must be different players"}
	}

	var id int64
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO matches (winner_player_id, loser_player_id, winner_champion, loser_champion, match_date, approved, created_at)
		SELECT ?, ?, ?, ?, ?, 1, ?
		WHERE EXISTS (SELECT 1 FROM players WHERE id = ?)
			AND EXISTS (SELECT 1 FROM players WHERE id = ?)
		RETURNING id
	`,
		match.WinnerPlayerID, match.LoserPlayerID, match.WinnerChampion, match.LoserChampion,
		match.MatchDate.Format(DateLayout), time.Now().Unix(),
		match.WinnerPlayerID, match.LoserPlayerID,
	).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		log.Warn("Rejected match referencing unknown player", "winner", match.WinnerPlayerID, "loser", match.LoserPlayerID)
		return 0, ErrPlayerNotFound
	}
	if err != nil {
		log.Error("Failed to insert match", "error", err)
		return 0, datastoreErr("insert match", err)
	}

	log.Info("Recorded match", "matchID", id, "winner", match.WinnerPlayerID, "loser", match.LoserPlayerID)
	return id, nil
}

func (s *store) GetAllPlayers(ctx context.Context) ([]Player, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, name, created_at FROM players ORDER BY name COLLATE NOCASE, id")
	if err != nil {
		return nil, datastoreErr("query players", err)
	}
	defer rows.Close()
	return scanPlayers(rows)
}

// GetPlayers retrieves the players with the given ids. Unknown ids are skipped.
func (s *store) GetPlayers(ctx context.Context, playerIDs []int64) ([]Player, error) {
	if len(playerIDs) == 0 {
		return []Player{}, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(playerIDs)), ",")
	args := make([]any, len(playerIDs))
	for i, id := range playerIDs {
		args[i] = id
	}

	rows, err := s.db.QueryContext(ctx, "SELECT id, name, created_at FROM players WHERE id IN ("+placeholders+")", args...)
	if err != nil {
		log.Error("Failed to query players by ID", "error", err)
		return nil, datastoreErr("query players by id", err)
	}
	defer rows.Close()
	return scanPlayers(rows)
}

func scanPlayers(rows *sql.Rows) ([]Player, error) {
	players := []Player{}
	for rows.Next() {
		var (
			p         Player
			createdAt int64
		)
		if err := rows.Scan(&p.ID, &p.Name, &createdAt); err != nil {
			return nil, datastoreErr("scan player", err)
		}
		p.CreatedAt = time.Unix(createdAt, 0).UTC()
		players = append(players, p)
	}
	if err := rows.Err(); err != nil {
		return nil, datastoreErr("iterate players", err)
	}
	return players, nil
}

// AddPlayer creates a player. It is used by the seeder, not by the HTTP API.
func (s *store) AddPlayer(ctx context.Context, name string) (int64, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, &ValidationError{Field: "name", Message: "is required"}
	}

	var id int64
	err := s.db.QueryRowContext(ctx,
		"INSERT INTO players (name, created_at) VALUES (?, ?) RETURNING id",
		name, time.Now().Unix(),
	).Scan(&id)
	if err != nil {
		log.Error("Failed to add player", "error", err, "name", name)
		return 0, datastoreErr("add player", err)
	}
	log.Info("Added new player to the store", "playerID", id, "name", name)
	return id, nil
}

func (s *store) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return datastoreErr("ping", err)
	}
	return nil
}
