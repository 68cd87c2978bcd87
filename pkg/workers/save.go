package workers

import (
	"context"

	"github.com/cbodonnell/grouphell/pkg/game/types"
	"github.com/cbodonnell/grouphell/pkg/log"
	"github.com/cbodonnell/grouphell/pkg/repositories"
	"github.com/google/uuid"
)

// SaveRecordRequest asks the archive worker to store one record. Exactly
// one of Game, Round and Result is set.
type SaveRecordRequest struct {
	GameID uuid.UUID
	Game   *types.GameRecord
	Round  *types.RoundRecord
	Result *types.GameResult
}

type SaveRecordWorker struct {
	repository     repositories.Repository
	saveRecordChan <-chan SaveRecordRequest
	done           chan struct{}
	// rounds stored per game that has no result yet
	savedRounds map[uuid.UUID]int
}

type NewSaveRecordWorkerOptions struct {
	Repository     repositories.Repository
	SaveRecordChan <-chan SaveRecordRequest
}

// NewSaveRecordWorker creates a new SaveRecordWorker.
// The worker stores the records produced by the game manager so that
// archive latency never stalls the narrator.
func NewSaveRecordWorker(opts NewSaveRecordWorkerOptions) *SaveRecordWorker {
	return &SaveRecordWorker{
		repository:     opts.Repository,
		saveRecordChan: opts.SaveRecordChan,
		done:           make(chan struct{}),
		savedRounds:    make(map[uuid.UUID]int),
	}
}

// Start processes requests until the channel is closed or ctx is done.
func (w *SaveRecordWorker) Start(ctx context.Context) {
	defer close(w.done)
	for {
		select {
		case <-ctx.Done():
			return
		case req, ok := <-w.saveRecordChan:
			if !ok {
				return
			}
			w.save(ctx, req)
		}
	}
}

// Done is closed once Start has returned.
func (w *SaveRecordWorker) Done() <-chan struct{} {
	return w.done
}

func (w *SaveRecordWorker) save(ctx context.Context, req SaveRecordRequest) {
	var err error
	switch {
	case req.Game != nil:
		err = w.repository.SaveGame(ctx, req.Game)
	case req.Round != nil:
		err = w.repository.SaveRound(ctx, req.GameID, req.Round)
		if err == nil {
			w.savedRounds[req.GameID]++
		}
	case req.Result != nil:
		err = w.repository.SaveResult(ctx, req.Result)
	default:
		log.Warn("Empty save request for game %s", req.GameID)
		return
	}
	if err != nil {
		log.Error("Failed to save record for game %s: %v", req.GameID, err)
		return
	}
	log.Trace("Saved record for game %s", req.GameID)

	if req.Result != nil {
		w.verify(ctx, req.GameID)
	}
}

// verify reads a finished game back from the archive and reports rounds
// that were stored by this worker but are missing from the archive.
func (w *SaveRecordWorker) verify(ctx context.Context, gameID uuid.UUID) {
	expected := w.savedRounds[gameID]
	delete(w.savedRounds, gameID)

	rounds, err := w.repository.LoadRounds(ctx, gameID)
	if err != nil {
		log.Error("Failed to load archived rounds of game %s: %v", gameID, err)
		return
	}
	result, err := w.repository.LoadResult(ctx, gameID)
	if err != nil {
		log.Error("Failed to load archived result of game %s: %v", gameID, err)
		return
	}
	if len(rounds) != expected {
		log.Warn("Archive of game %s holds %d rounds, %d were saved", gameID, len(rounds), expected)
	}
	winner, _ := result.Winner()
	log.Info("Archived game %s: %d rounds, winner %s", gameID, len(rounds), winner.Player)
}
