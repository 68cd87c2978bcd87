package repositories

import (
	"context"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/cbodonnell/grouphell/migrations"
	"github.com/cbodonnell/grouphell/pkg/game/types"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLiteRepository(t *testing.T) Repository {
	t.Helper()
	ctx := context.Background()
	repository, err := NewSQLiteRepository(ctx, filepath.Join(t.TempDir(), "archive.db"), migrations.FS, migrations.SQLiteDir)
	require.NoError(t, err)
	t.Cleanup(func() { repository.Close(ctx) })
	return repository
}

func TestSQLiteRepository_Archive(t *testing.T) {
	ctx := context.Background()
	repository := newTestSQLiteRepository(t)

	game := &types.GameRecord{
		ID:        uuid.New(),
		StartedAt: time.UnixMilli(1700000000000),
		Players:   []string{"A", "B", "C"},
		Roles:     []types.Role{types.RoleSlacker, types.RoleThief, types.RoleSnitch},
		MaxRounds: 4,
	}
	require.NoError(t, repository.SaveGame(ctx, game))

	_, err := repository.LoadResult(ctx, game.ID)
	assert.True(t, IsNotFound(err), "result of an unfinished game")

	rounds := []*types.RoundRecord{
		{Round: 1, Picks: map[string]string{"A": "C", "B": "C", "C": "A"}, Pairs: []types.Pair{{A: "A", B: "C"}}, Scores: []int{0, 0, 0}},
		{Round: 0, Picks: map[string]string{"A": "B", "B": "A", "C": "A"}, Pairs: []types.Pair{{A: "A", B: "B"}}, Scores: []int{0, 0, 0}},
	}
	for _, round := range rounds {
		require.NoError(t, repository.SaveRound(ctx, game.ID, round))
	}

	gotRounds, err := repository.LoadRounds(ctx, game.ID)
	require.NoError(t, err)
	require.Len(t, gotRounds, 2)
	assert.Equal(t, rounds[1], gotRounds[0])
	assert.Equal(t, rounds[0], gotRounds[1])

	result := &types.GameResult{
		GameID:     game.ID,
		FinishedAt: time.UnixMilli(1700000600000),
		Standings: []types.Standing{
			{Rank: 1, Player: "A", Role: types.RoleSlacker, Score: 2},
			{Rank: 2, Player: "B", Role: types.RoleThief, Score: 0},
			{Rank: 3, Player: "C", Role: types.RoleSnitch, Score: 0},
		},
	}
	require.NoError(t, repository.SaveResult(ctx, result))

	gotResult, err := repository.LoadResult(ctx, game.ID)
	require.NoError(t, err)
	assert.Equal(t, result.GameID, gotResult.GameID)
	assert.True(t, result.FinishedAt.Equal(gotResult.FinishedAt))
	assert.Equal(t, result.Standings, gotResult.Standings)
}

func TestSQLiteRepository_NotFound(t *testing.T) {
	ctx := context.Background()
	repository := newTestSQLiteRepository(t)

	_, err := repository.LoadResult(ctx, uuid.New())
	assert.True(t, IsNotFound(err))

	err = repository.SaveResult(ctx, &types.GameResult{GameID: uuid.New(), FinishedAt: time.Now()})
	assert.True(t, IsNotFound(err))

	rounds, err := repository.LoadRounds(ctx, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, rounds)
}

func TestReadMigrations(t *testing.T) {
	fsys := fstest.MapFS{
		"db/002_second.sql": {Data: []byte("SELECT 2;")},
		"db/001_first.sql":  {Data: []byte("SELECT 1;")},
		"db/nested/x.sql":   {Data: []byte("SELECT 3;")},
	}

	got, err := readMigrations(fsys, "db")
	require.NoError(t, err)
	assert.Equal(t, []migration{
		{name: "001_first.sql", sql: "SELECT 1;"},
		{name: "002_second.sql", sql: "SELECT 2;"},
	}, got)

	_, err = readMigrations(fsys, "missing")
	assert.Error(t, err)
}

func TestOpen_UnknownScheme(t *testing.T) {
	_, err := Open(context.Background(), "mysql://localhost/archive")
	assert.Error(t, err)
}

func TestOpen_SQLite(t *testing.T) {
	ctx := context.Background()
	repository, err := Open(ctx, "sqlite://"+filepath.Join(t.TempDir(), "open.db"))
	require.NoError(t, err)
	assert.NoError(t, repository.Close(ctx))
}
