package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"time"

	"github.com/cbodonnell/grouphell/pkg/game/types"
	"github.com/cbodonnell/grouphell/pkg/messages"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository opens the database at dbPath and runs every
// migration found in dir of migrationsFS.
func NewSQLiteRepository(ctx context.Context, dbPath string, migrationsFS fs.FS, dir string) (Repository, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %v", err)
	}

	pending, err := readMigrations(migrationsFS, dir)
	if err != nil {
		db.Close()
		return nil, err
	}
	for _, m := range pending {
		if _, err := db.ExecContext(ctx, m.sql); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to execute migration %s: %v", m.name, err)
		}
	}

	return &SQLiteRepository{
		db: db,
	}, nil
}

func (r *SQLiteRepository) Close(ctx context.Context) error {
	return r.db.Close()
}

func (r *SQLiteRepository) SaveGame(ctx context.Context, game *types.GameRecord) error {
	players, roles, err := marshalRoster(game)
	if err != nil {
		return err
	}

	q := `
	INSERT OR REPLACE INTO games (game_id, started_at, players, roles, max_rounds)
	VALUES (?, ?, ?, ?, ?);
	`
	_, err = r.db.ExecContext(ctx, q, game.ID.String(), game.StartedAt.UnixMilli(), players, roles, game.MaxRounds)
	if err != nil {
		return fmt.Errorf("failed to insert game: %v", err)
	}

	return nil
}

func (r *SQLiteRepository) SaveRound(ctx context.Context, gameID uuid.UUID, round *types.RoundRecord) error {
	record, err := messages.SerializeRound(round)
	if err != nil {
		return err
	}

	q := `
	INSERT OR REPLACE INTO rounds (game_id, round, encoding, record)
	VALUES (?, ?, ?, ?);
	`
	_, err = r.db.ExecContext(ctx, q, gameID.String(), round.Round, messages.EncodingJSONZstd, record)
	if err != nil {
		return fmt.Errorf("failed to insert round: %v", err)
	}

	return nil
}

func (r *SQLiteRepository) SaveResult(ctx context.Context, result *types.GameResult) error {
	standings, err := messages.SerializeStandings(result.Standings)
	if err != nil {
		return err
	}

	q := `
	UPDATE games SET finished_at = ?, encoding = ?, standings = ?
	WHERE game_id = ?;
	`
	res, err := r.db.ExecContext(ctx, q, result.FinishedAt.UnixMilli(), messages.EncodingJSONZstd, standings, result.GameID.String())
	if err != nil {
		return fmt.Errorf("failed to update game: %v", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %v", err)
	}
	if n == 0 {
		return &ErrNotFound{Resource: "game", ID: result.GameID.String()}
	}

	return nil
}

func (r *SQLiteRepository) LoadRounds(ctx context.Context, gameID uuid.UUID) ([]*types.RoundRecord, error) {
	q := `
	SELECT encoding, record FROM rounds WHERE game_id = ? ORDER BY round;
	`
	rows, err := r.db.QueryContext(ctx, q, gameID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to query rounds: %v", err)
	}
	defer rows.Close()

	var rounds []*types.RoundRecord
	for rows.Next() {
		var encoding string
		var record []byte
		if err := rows.Scan(&encoding, &record); err != nil {
			return nil, fmt.Errorf("failed to scan round: %v", err)
		}
		round, err := decodeRound(encoding, record)
		if err != nil {
			return nil, err
		}
		rounds = append(rounds, round)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rounds: %v", err)
	}

	return rounds, nil
}

func (r *SQLiteRepository) LoadResult(ctx context.Context, gameID uuid.UUID) (*types.GameResult, error) {
	q := `
	SELECT finished_at, encoding, standings FROM games WHERE game_id = ?;
	`
	var finishedAt sql.NullInt64
	var encoding sql.NullString
	var standings []byte
	if err := r.db.QueryRowContext(ctx, q, gameID.String()).Scan(&finishedAt, &encoding, &standings); err != nil {
		if err == sql.ErrNoRows {
			return nil, &ErrNotFound{Resource: "game", ID: gameID.String()}
		}
		return nil, fmt.Errorf("failed to scan game: %v", err)
	}
	if !finishedAt.Valid {
		return nil, &ErrNotFound{Resource: "result", ID: gameID.String()}
	}

	return decodeResult(gameID, finishedAt.Int64, encoding.String, standings)
}

type migration struct {
	name string
	sql  string
}

// readMigrations returns every file in dir, sorted by file name.
func readMigrations(fsys fs.FS, dir string) ([]migration, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read migrations directory: %v", err)
	}

	migrations := make([]migration, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		migrationPath := path.Join(dir, entry.Name())
		contents, err := fs.ReadFile(fsys, migrationPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read migration %s: %v", migrationPath, err)
		}
		migrations = append(migrations, migration{name: entry.Name(), sql: string(contents)})
	}

	return migrations, nil
}

func marshalRoster(game *types.GameRecord) (string, string, error) {
	players, err := json.Marshal(game.Players)
	if err != nil {
		return "", "", fmt.Errorf("failed to marshal players: %v", err)
	}
	roles, err := json.Marshal(game.Roles)
	if err != nil {
		return "", "", fmt.Errorf("failed to marshal roles: %v", err)
	}
	return string(players), string(roles), nil
}

func decodeRound(encoding string, record []byte) (*types.RoundRecord, error) {
	if encoding != messages.EncodingJSONZstd {
		return nil, fmt.Errorf("unsupported round encoding %q", encoding)
	}
	return messages.DeserializeRound(record)
}

func decodeResult(gameID uuid.UUID, finishedAt int64, encoding string, record []byte) (*types.GameResult, error) {
	if encoding != messages.EncodingJSONZstd {
		return nil, fmt.Errorf("unsupported result encoding %q", encoding)
	}
	standings, err := messages.DeserializeStandings(record)
	if err != nil {
		return nil, err
	}
	return &types.GameResult{
		GameID:     gameID,
		FinishedAt: time.UnixMilli(finishedAt),
		Standings:  standings,
	}, nil
}
