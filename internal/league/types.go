package league

import (
	"database/sql"
	"time"
)

// store handles all database operations for the league.
type store struct {
	db *sql.DB
}

// DateLayout is the canonical storage format of a match date.
const DateLayout = "2006-01-02"

// Player is a league member. Players are created out-of-band.
type Player struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// MatchRecord is a stored match joined with the names of both players.
type MatchRecord struct {
	ID             int64     `json:"id" msgpack:"id"`
	WinnerPlayerID int64     `json:"winner_player_id" msgpack:"winner_player_id"`
	WinnerName     string    `json:"winner_name" msgpack:"winner_name"`
	WinnerChampion string    `json:"winner_champion" msgpack:"winner_champion"`
	LoserPlayerID  int64     `json:"loser_player_id" msgpack:"loser_player_id"`
	LoserName      string    `json:"loser_name" msgpack:"loser_name"`
	LoserChampion  string    `json:"loser_champion" msgpack:"loser_champion"`
	MatchDate      string    `json:"match_date" msgpack:"match_date"`
	Approved       bool      `json:"approved" msgpack:"approved"`
	CreatedAt      time.Time `json:"created_at" msgpack:"created_at"`
}

// NewMatch is a validated match ready to be inserted.
type NewMatch struct {
	WinnerPlayerID int64
	WinnerChampion string
	LoserPlayerID  int64
	LoserChampion  string
	MatchDate      time.Time
}

// Submission is the add-match payload as sent by the form.
type Submission struct {
	WinnerPlayerID int64  `json:"winnerPlayerId" validate:"required,gt=0"`
	WinnerChampion string `json:"winnerChampion" validate:"required,max=64"`
	LoserPlayerID  int64  `json:"loserPlayerId" validate:"required,gt=0,nefield=WinnerPlayerID"`
	LoserChampion  string `json:"loserChampion" validate:"required,max=64"`
	MatchDate      string `json:"matchDate" validate:"required"`
}
