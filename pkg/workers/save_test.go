package workers

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cbodonnell/grouphell/pkg/game/types"
	"github.com/cbodonnell/grouphell/pkg/log"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	mockrepositories "github.com/cbodonnell/grouphell/mocks/github.com/cbodonnell/grouphell/pkg/repositories"
)

func TestSaveRecordWorker_Start(t *testing.T) {
	gameID := uuid.New()
	game := &types.GameRecord{ID: gameID, Players: []string{"A", "B", "C"}}
	round := &types.RoundRecord{Round: 0}
	result := &types.GameResult{GameID: gameID}

	repository := mockrepositories.NewRepository(t)
	saveGame := repository.EXPECT().SaveGame(mock.Anything, game).Return(nil).Once()
	saveRound := repository.EXPECT().SaveRound(mock.Anything, gameID, round).Return(errors.New("disk full")).Once().NotBefore(saveGame)
	saveResult := repository.EXPECT().SaveResult(mock.Anything, result).Return(nil).Once().NotBefore(saveRound)
	// the failed round is not expected back
	loadRounds := repository.EXPECT().LoadRounds(mock.Anything, gameID).Return([]*types.RoundRecord{}, nil).Once().NotBefore(saveResult)
	repository.EXPECT().LoadResult(mock.Anything, gameID).Return(result, nil).Once().NotBefore(loadRounds)

	ch := make(chan SaveRecordRequest, 4)
	worker := NewSaveRecordWorker(NewSaveRecordWorkerOptions{
		Repository:     repository,
		SaveRecordChan: ch,
	})
	go worker.Start(context.Background())

	ch <- SaveRecordRequest{GameID: gameID, Game: game}
	ch <- SaveRecordRequest{GameID: gameID, Round: round}
	ch <- SaveRecordRequest{GameID: gameID}
	ch <- SaveRecordRequest{GameID: gameID, Result: result}
	close(ch)

	select {
	case <-worker.Done():
	case <-time.After(time.Second):
		t.Fatal("worker did not stop after the channel was closed")
	}
}

func TestSaveRecordWorker_ContextCancelled(t *testing.T) {
	repository := mockrepositories.NewRepository(t)
	worker := NewSaveRecordWorker(NewSaveRecordWorkerOptions{
		Repository:     repository,
		SaveRecordChan: make(chan SaveRecordRequest),
	})

	ctx, cancel := context.WithCancel(context.Background())
	go worker.Start(ctx)
	cancel()

	select {
	case <-worker.Done():
	case <-time.After(time.Second):
		t.Fatal("worker did not stop after the context was cancelled")
	}
	assert.Empty(t, repository.Calls)
}

func TestSaveRecordWorker_VerifyArchive(t *testing.T) {
	tests := []struct {
		name     string
		archived []*types.RoundRecord
		wantWarn bool
	}{
		{
			name:     "every round archived",
			archived: []*types.RoundRecord{{Round: 0}, {Round: 1}},
		},
		{
			name:     "round missing from the archive",
			archived: []*types.RoundRecord{{Round: 0}},
			wantWarn: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			previous := log.Default()
			t.Cleanup(func() { log.SetDefaultLogger(previous) })
			buf := &bytes.Buffer{}
			log.SetDefaultLogger(log.New(buf, "", 0, log.LogLevelInfo))

			gameID := uuid.New()
			result := &types.GameResult{GameID: gameID, Standings: []types.Standing{{Rank: 1, Player: "A"}}}

			repository := mockrepositories.NewRepository(t)
			repository.EXPECT().SaveRound(mock.Anything, gameID, mock.Anything).Return(nil).Twice()
			repository.EXPECT().SaveResult(mock.Anything, result).Return(nil).Once()
			repository.EXPECT().LoadRounds(mock.Anything, gameID).Return(tt.archived, nil).Once()
			repository.EXPECT().LoadResult(mock.Anything, gameID).Return(result, nil).Once()

			ch := make(chan SaveRecordRequest, 3)
			worker := NewSaveRecordWorker(NewSaveRecordWorkerOptions{
				Repository:     repository,
				SaveRecordChan: ch,
			})
			ch <- SaveRecordRequest{GameID: gameID, Round: &types.RoundRecord{Round: 0}}
			ch <- SaveRecordRequest{GameID: gameID, Round: &types.RoundRecord{Round: 1}}
			ch <- SaveRecordRequest{GameID: gameID, Result: result}
			close(ch)
			worker.Start(context.Background())

			require.Contains(t, buf.String(), "winner A")
			if tt.wantWarn {
				assert.Contains(t, buf.String(), "holds 1 rounds, 2 were saved")
			} else {
				assert.NotContains(t, buf.String(), `"level":"warn"`)
			}
			assert.Empty(t, worker.savedRounds)
		})
	}
}
