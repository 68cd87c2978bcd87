package game

import (
	"context"
	"fmt"
	"time"

	"github.com/cbodonnell/grouphell/pkg/game/roles"
	"github.com/cbodonnell/grouphell/pkg/game/types"
	"github.com/cbodonnell/grouphell/pkg/log"
	"github.com/cbodonnell/grouphell/pkg/narrator"
	"github.com/cbodonnell/grouphell/pkg/queue"
	"github.com/cbodonnell/grouphell/pkg/random"
	"github.com/cbodonnell/grouphell/pkg/workers"
	"github.com/google/uuid"
)

type GameManager struct {
	narrator          narrator.Narrator
	randomizer        random.Provider
	announcementQueue queue.Queue[types.Announcement]
	saveRecordChan    chan<- workers.SaveRecordRequest
	clock             func() time.Time
	logger            *log.Logger

	phase     types.Phase
	gameID    uuid.UUID
	gameState *types.GameState
	behaviors []roles.Behavior
	result    *types.GameResult
}

// NewGameManagerOptions contains options for creating a new GameManager.
type NewGameManagerOptions struct {
	Narrator   narrator.Narrator
	Randomizer random.Provider
	// AnnouncementQueue buffers announcements until they are handed to the
	// narrator. A default in-memory queue is used when nil.
	AnnouncementQueue queue.Queue[types.Announcement]
	// SaveRecordChan receives a copy of every record for the archive.
	// Records are not archived when nil.
	SaveRecordChan chan<- workers.SaveRecordRequest
	// Clock stamps archive records. Defaults to time.Now.
	Clock func() time.Time
	// Logger defaults to the package level logger. Entries carry the game
	// id once the game is set up.
	Logger *log.Logger
}

func NewGameManager(opts NewGameManagerOptions) *GameManager {
	announcementQueue := opts.AnnouncementQueue
	if announcementQueue == nil {
		announcementQueue = queue.NewInMemoryQueue[types.Announcement](queue.QueueBufferSize)
	}
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &GameManager{
		narrator:          opts.Narrator,
		randomizer:        opts.Randomizer,
		announcementQueue: announcementQueue,
		saveRecordChan:    opts.SaveRecordChan,
		clock:             clock,
		logger:            logger,
		phase:             types.PhaseSetup,
	}
}

// Phase returns the current phase of the game.
func (gm *GameManager) Phase() types.Phase {
	return gm.phase
}

// GameID returns the identifier assigned at setup, or uuid.Nil before.
func (gm *GameManager) GameID() uuid.UUID {
	return gm.gameID
}

// State returns a copy of the game state, or nil before setup.
func (gm *GameManager) State() *types.GameState {
	if gm.gameState == nil {
		return nil
	}
	return gm.gameState.Copy()
}

// Result returns the outcome of the final tally, or nil before Finish.
func (gm *GameManager) Result() *types.GameResult {
	return gm.result
}

// Start plays a whole game: setup, every round and the final tally.
func (gm *GameManager) Start(ctx context.Context) error {
	if err := gm.Setup(ctx); err != nil {
		return fmt.Errorf("failed to set up game: %w", err)
	}

	for gm.phase == types.PhaseInRound {
		if err := ctx.Err(); err != nil {
			return err
		}
		picks, err := gm.CollectPicks(ctx)
		if err != nil {
			return fmt.Errorf("failed to collect picks: %w", err)
		}
		if _, err := gm.PlayRound(ctx, picks); err != nil {
			return fmt.Errorf("failed to play round: %w", err)
		}
	}

	if _, err := gm.Finish(ctx); err != nil {
		return fmt.Errorf("failed to finish game: %w", err)
	}
	return nil
}

// Setup asks the narrator for the roster and draws a role for every
// player from the pool matching the player count.
func (gm *GameManager) Setup(ctx context.Context) error {
	if err := gm.expectSetup(); err != nil {
		return err
	}

	n, err := gm.narrator.RequestPlayerCount(ctx)
	if err != nil {
		return fmt.Errorf("failed to read player count: %w", err)
	}
	pool, err := roles.PoolFor(n)
	if err != nil {
		return err
	}

	players := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		name, err := gm.narrator.RequestPlayerName(ctx, i, players)
		if err != nil {
			return fmt.Errorf("failed to read name of player %d: %w", i, err)
		}
		players = append(players, name)
	}

	roleTags, err := gm.randomizer.Sample(pool, n)
	if err != nil {
		return fmt.Errorf("failed to draw roles: %w", err)
	}

	return gm.SetupWithRoles(ctx, players, roleTags)
}

// SetupWithRoles starts a game with the given roster and role assignment.
// Every player is told their role privately and the schadenfreuder is
// told their enemy.
func (gm *GameManager) SetupWithRoles(ctx context.Context, players []string, roleTags []types.Role) error {
	if err := gm.expectSetup(); err != nil {
		return err
	}

	gameState, err := types.NewGameState(players, roleTags)
	if err != nil {
		return err
	}

	behaviors := make([]roles.Behavior, len(gameState.Players))
	for i, name := range gameState.Players {
		behavior, err := roles.New(gameState.Roles[i], name)
		if err != nil {
			return err
		}
		behavior.OnInit()
		behaviors[i] = behavior
	}

	announcements := make([]types.Announcement, 0, len(behaviors)+1)
	for _, behavior := range behaviors {
		announcements = append(announcements, types.Announcement{
			Kind:   types.AnnouncementRoleAssigned,
			Player: behavior.Name(),
			Role:   behavior.Role(),
		})

		holder, ok := behavior.(roles.EnemyHolder)
		if !ok {
			continue
		}
		candidates := make([]string, 0, len(gameState.Players)-1)
		for _, name := range gameState.Players {
			if name != behavior.Name() {
				candidates = append(candidates, name)
			}
		}
		enemy, err := gm.randomizer.Choose(candidates)
		if err != nil {
			return fmt.Errorf("failed to choose enemy: %w", err)
		}
		if _, err := gameState.Index(enemy); err != nil {
			return err
		}
		if enemy == behavior.Name() {
			return types.NewIntegrityError("%s cannot be their own enemy", enemy)
		}
		holder.AssignEnemy(enemy)
		announcements = append(announcements, types.Announcement{
			Kind:    types.AnnouncementEnemyAssigned,
			Player:  behavior.Name(),
			Subject: enemy,
		})
	}
	for _, announcement := range announcements {
		if err := gm.announce(announcement); err != nil {
			gm.announcementQueue.ClearQueue()
			return err
		}
	}

	gm.gameID = uuid.New()
	gm.logger = gm.logger.With("game", gm.gameID.String())
	gm.gameState = gameState
	gm.behaviors = behaviors
	gm.phase = types.PhaseInRound

	gm.logger.Info("Game set up with %d players and %d rounds", len(gameState.Players), gameState.MaxRounds)

	gm.save(ctx, workers.SaveRecordRequest{
		GameID: gm.gameID,
		Game: &types.GameRecord{
			ID:        gm.gameID,
			StartedAt: gm.clock(),
			Players:   append([]string(nil), gameState.Players...),
			Roles:     append([]types.Role(nil), gameState.Roles...),
			MaxRounds: gameState.MaxRounds,
		},
	})
	gm.flushAnnouncements(ctx)

	return nil
}

// CollectPicks opens the current round and asks every player, in roster
// order, who they want to pair with.
func (gm *GameManager) CollectPicks(ctx context.Context) (map[string]string, error) {
	if err := gm.expectPhase(types.PhaseInRound); err != nil {
		return nil, err
	}

	gameState := gm.gameState
	if err := gm.announce(types.Announcement{
		Kind:     types.AnnouncementRoundStart,
		Round:    gameState.Round,
		Duration: gameState.RoundTimes[gameState.Round],
	}); err != nil {
		return nil, err
	}
	gm.flushAnnouncements(ctx)

	picks := make(map[string]string, len(gameState.Players))
	for _, name := range gameState.Players {
		pick, err := gm.narrator.RequestPick(ctx, name, gameState.Players)
		if err != nil {
			return nil, fmt.Errorf("failed to read pick of %s: %w", name, err)
		}
		picks[name] = pick
	}
	return picks, nil
}

// PlayRound scores one round from the picks of every player.
//
// Matched players receive the match point first. Round bonuses then run
// in roster order against the updated scores, followed by the unmatched
// hook of every player left without a partner, in roster order. Finally
// at most one role is revealed and the round counter advances. An error
// leaves the round partially scored.
func (gm *GameManager) PlayRound(ctx context.Context, picks map[string]string) (*types.RoundRecord, error) {
	if err := gm.expectPhase(types.PhaseInRound); err != nil {
		return nil, err
	}

	gameState := gm.gameState
	if err := ValidatePicks(gameState, picks); err != nil {
		return nil, err
	}

	pairs := ResolvePairs(gameState.Players, picks)
	partners := Partners(pairs)
	rejections := CountRejections(picks)

	for _, pair := range pairs {
		if err := gameState.AwardMatchPoint(pair.A); err != nil {
			return nil, err
		}
		if err := gameState.AwardMatchPoint(pair.B); err != nil {
			return nil, err
		}
	}

	if err := gm.announce(types.Announcement{
		Kind:  types.AnnouncementPairings,
		Round: gameState.Round,
		Pairs: pairs,
	}); err != nil {
		return nil, err
	}

	round := &roles.Round{
		Number:   gameState.Round,
		Partners: partners,
		Whispers: gm.announcementQueue,
	}

	for _, behavior := range gm.behaviors {
		if tracker, ok := behavior.(roles.RejectionTracker); ok {
			tracker.ReceiveRejections(rejections[behavior.Name()])
		}
	}

	for _, behavior := range gm.behaviors {
		partner, ok := partners[behavior.Name()]
		if !ok {
			continue
		}
		if err := behavior.RoundBonus(gameState, round, partner); err != nil {
			return nil, fmt.Errorf("round bonus of %s: %w", behavior.Name(), err)
		}
	}

	for _, behavior := range gm.behaviors {
		if round.IsMatched(behavior.Name()) {
			continue
		}
		if err := behavior.Unmatched(gameState, round); err != nil {
			return nil, fmt.Errorf("unmatched hook of %s: %w", behavior.Name(), err)
		}
	}

	revealed, ok, err := MaybeReveal(gameState)
	if err != nil {
		return nil, fmt.Errorf("failed to reveal role: %w", err)
	}
	if ok {
		if err := gm.announce(types.Announcement{
			Kind:    types.AnnouncementRoleRevealed,
			Subject: revealed.Player,
			Role:    revealed.Role,
			Rank:    revealed.Rank,
			Score:   revealed.Score,
			Round:   gameState.Round,
		}); err != nil {
			return nil, err
		}
	}

	record := &types.RoundRecord{
		Round:    gameState.Round,
		Picks:    copyPicks(picks),
		Pairs:    pairs,
		Scores:   gameState.Scores(),
		Revealed: revealed.Player,
	}

	gm.logger.Debug("Round %d: %d pairs, scores %v", record.Round, len(pairs), record.Scores)

	gameState.AdvanceRound()
	if gameState.Finished() {
		gm.phase = types.PhaseFinished
		gm.logger.Info("Played all %d rounds", gameState.MaxRounds)
	}

	gm.save(ctx, workers.SaveRecordRequest{
		GameID: gm.gameID,
		Round:  record,
	})
	gm.flushAnnouncements(ctx)

	return record, nil
}

// Finish runs every final bonus once and ranks the players by the returned
// scores. The closing announcement is followed by the standings from last
// place to the winner.
func (gm *GameManager) Finish(ctx context.Context) (*types.GameResult, error) {
	if err := gm.expectPhase(types.PhaseFinished); err != nil {
		return nil, err
	}
	if gm.result != nil {
		return nil, types.NewIntegrityError("game %s was already tallied", gm.gameID)
	}

	gameState := gm.gameState
	finalScores := make([]int, len(gm.behaviors))
	for i, behavior := range gm.behaviors {
		score, err := behavior.FinalBonus(gameState)
		if err != nil {
			return nil, fmt.Errorf("final bonus of %s: %w", behavior.Name(), err)
		}
		finalScores[i] = score
	}

	if err := gm.announce(types.Announcement{Kind: types.AnnouncementGameOver}); err != nil {
		return nil, err
	}
	standings := RankScores(gameState, finalScores)
	for i := len(standings) - 1; i >= 0; i-- {
		standing := standings[i]
		if err := gm.announce(types.Announcement{
			Kind:    types.AnnouncementStanding,
			Subject: standing.Player,
			Role:    standing.Role,
			Rank:    standing.Rank,
			Score:   standing.Score,
		}); err != nil {
			return nil, err
		}
	}

	result := &types.GameResult{
		GameID:     gm.gameID,
		FinishedAt: gm.clock(),
		Standings:  standings,
	}
	winner, _ := result.Winner()
	gm.result = result

	gm.logger.Info("Game won by %s with %d points", winner.Player, winner.Score)

	gm.save(ctx, workers.SaveRecordRequest{
		GameID: gm.gameID,
		Result: result,
	})
	gm.flushAnnouncements(ctx)

	return result, nil
}

func (gm *GameManager) expectSetup() error {
	if gm.phase != types.PhaseSetup || gm.gameState != nil {
		return types.NewIntegrityError("game is already set up")
	}
	return nil
}

func (gm *GameManager) expectPhase(phase types.Phase) error {
	if gm.phase != phase {
		return types.NewIntegrityError("operation requires phase %s, game is in phase %s", phase, gm.phase)
	}
	return nil
}

func (gm *GameManager) announce(announcement types.Announcement) error {
	if err := gm.announcementQueue.Enqueue(announcement); err != nil {
		return fmt.Errorf("failed to queue announcement: %w", err)
	}
	return nil
}

// flushAnnouncements hands every queued announcement to the narrator.
func (gm *GameManager) flushAnnouncements(ctx context.Context) {
	for _, announcement := range gm.announcementQueue.ReadAllMessages() {
		gm.narrator.Announce(ctx, announcement)
	}
}

// save sends a record to the archive worker, if there is one.
func (gm *GameManager) save(ctx context.Context, req workers.SaveRecordRequest) {
	if gm.saveRecordChan == nil {
		return
	}
	select {
	case gm.saveRecordChan <- req:
	case <-ctx.Done():
		gm.logger.Warn("Dropped archive record: %v", ctx.Err())
	}
}

func copyPicks(picks map[string]string) map[string]string {
	c := make(map[string]string, len(picks))
	for k, v := range picks {
		c[k] = v
	}
	return c
}

