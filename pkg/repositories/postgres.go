package repositories

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/cbodonnell/grouphell/pkg/game/types"
	"github.com/cbodonnell/grouphell/pkg/log"
	"github.com/cbodonnell/grouphell/pkg/messages"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PostgresRepository struct {
	conn *pgx.Conn
}

// NewPostgresRepository connects to connStr and runs every migration found
// in dir of migrationsFS.
// The caller is responsible for calling Close() on the repository.
func NewPostgresRepository(ctx context.Context, connStr string, migrationsFS fs.FS, dir string) (Repository, error) {
	conn, err := connectDb(ctx, connStr)
	if err != nil {
		return nil, err
	}

	pending, err := readMigrations(migrationsFS, dir)
	if err != nil {
		conn.Close(ctx)
		return nil, err
	}
	for _, m := range pending {
		if _, err := conn.Exec(ctx, m.sql); err != nil {
			conn.Close(ctx)
			return nil, fmt.Errorf("failed to execute migration %s: %v", m.name, err)
		}
	}

	return &PostgresRepository{
		conn: conn,
	}, nil
}

func connectDb(ctx context.Context, connStr string) (*pgx.Conn, error) {
	conn, err := pgx.Connect(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %v", err)
	}

	var username string
	var database string
	err = conn.QueryRow(ctx, "SELECT current_user, current_database()").Scan(&username, &database)
	if err != nil {
		conn.Close(ctx)
		return nil, fmt.Errorf("unable to query database: %v", err)
	}

	log.Info("Connected to %s as %s", database, username)

	return conn, nil
}

func (r *PostgresRepository) Close(ctx context.Context) error {
	return r.conn.Close(ctx)
}

func (r *PostgresRepository) SaveGame(ctx context.Context, game *types.GameRecord) error {
	players, roles, err := marshalRoster(game)
	if err != nil {
		return err
	}

	q := `
	INSERT INTO games (game_id, started_at, players, roles, max_rounds) VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (game_id) DO UPDATE SET started_at = $2, players = $3, roles = $4, max_rounds = $5;
	`
	_, err = r.conn.Exec(ctx, q, game.ID.String(), game.StartedAt.UnixMilli(), players, roles, game.MaxRounds)
	if err != nil {
		return fmt.Errorf("failed to insert game: %v", err)
	}

	return nil
}

func (r *PostgresRepository) SaveRound(ctx context.Context, gameID uuid.UUID, round *types.RoundRecord) error {
	record, err := messages.SerializeRound(round)
	if err != nil {
		return err
	}

	q := `
	INSERT INTO rounds (game_id, round, encoding, record) VALUES ($1, $2, $3, $4)
	ON CONFLICT (game_id, round) DO UPDATE SET encoding = $3, record = $4;
	`
	_, err = r.conn.Exec(ctx, q, gameID.String(), round.Round, messages.EncodingJSONZstd, record)
	if err != nil {
		return fmt.Errorf("failed to insert round: %v", err)
	}

	return nil
}

func (r *PostgresRepository) SaveResult(ctx context.Context, result *types.GameResult) error {
	standings, err := messages.SerializeStandings(result.Standings)
	if err != nil {
		return err
	}

	tx, err := r.conn.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback(ctx)

	q := `
	UPDATE games SET finished_at = $1, encoding = $2, standings = $3 WHERE game_id = $4;
	`
	tag, err := tx.Exec(ctx, q, result.FinishedAt.UnixMilli(), messages.EncodingJSONZstd, standings, result.GameID.String())
	if err != nil {
		return fmt.Errorf("failed to update game: %v", err)
	}
	if tag.RowsAffected() == 0 {
		return &ErrNotFound{Resource: "game", ID: result.GameID.String()}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %v", err)
	}

	return nil
}

func (r *PostgresRepository) LoadRounds(ctx context.Context, gameID uuid.UUID) ([]*types.RoundRecord, error) {
	rows, err := r.conn.Query(ctx, "SELECT encoding, record FROM rounds WHERE game_id = $1 ORDER BY round", gameID.String())
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

func (r *PostgresRepository) LoadResult(ctx context.Context, gameID uuid.UUID) (*types.GameResult, error) {
	q := `
	SELECT finished_at, encoding, standings FROM games WHERE game_id = $1;
	`
	var finishedAt *int64
	var encoding *string
	var standings []byte
	if err := r.conn.QueryRow(ctx, q, gameID.String()).Scan(&finishedAt, &encoding, &standings); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &ErrNotFound{Resource: "game", ID: gameID.String()}
		}
		return nil, fmt.Errorf("failed to scan game: %v", err)
	}
	if finishedAt == nil || encoding == nil {
		return nil, &ErrNotFound{Resource: "result", ID: gameID.String()}
	}

	return decodeResult(gameID, *finishedAt, *encoding, standings)
}
