package tictactoe

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/rocketscienceinc/tictactoe-despair/internal/achievement"
	"github.com/rocketscienceinc/tictactoe-despair/internal/ai"
	"github.com/rocketscienceinc/tictactoe-despair/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-despair/internal/clock"
	"github.com/rocketscienceinc/tictactoe-despair/internal/entity"
	"github.com/rocketscienceinc/tictactoe-despair/internal/event"
	"github.com/rocketscienceinc/tictactoe-despair/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-despair/internal/replay"
)

const (
	suddenDeathBudget = 10 * time.Second
	suddenDeathTick   = 100 * time.Millisecond

	saveTimeout = 3 * time.Second
)

type randSource interface {
	Intn(n int) int
	Float64() float64
}

type profileStore interface {
	Save(ctx context.Context, profile *entity.Profile) error
}

// GameController owns the live session and every timer scheduled for it.
// All state changes happen under mu, including the ones triggered by timers.
type GameController struct {
	mu     sync.Mutex
	logger *slog.Logger
	clock  clock.Clock
	rng    randSource
	sink   event.Sink
	store  profileStore

	ai           *ai.Engine
	achievements *achievement.Engine
	replay       *replay.Recorder

	profile    *entity.Profile
	session    entity.GameSession
	hidden     []int
	blindTicks int
	handles    []clock.Handle
}

func NewGameController(
	logger *slog.Logger,
	clk clock.Clock,
	rng randSource,
	sink event.Sink,
	store profileStore,
	profile *entity.Profile,
) *GameController {
	if profile == nil {
		profile = entity.DefaultProfile()
	}

	profile.Normalize()
	profile.Settings.MarkThemeApplied(profile.Settings.Theme)

	rec := replay.NewRecorder(clk)
	rec.OnStep(func(step int, entry replay.Entry) {
		board := entry.Board
		sink.Publish(event.Event{
			Kind:  event.KindReplayStep,
			Index: event.Cell(step),
			Mark:  entry.Mover,
			Board: &board,
		})
	})

	return &GameController{
		logger: logger.With("component", "game_controller"),
		clock:  clk,
		rng:    rng,
		sink:   sink,
		store:  store,

		ai:           ai.NewEngine(rng),
		achievements: achievement.NewEngine(),
		replay:       rec,

		profile: profile,
		session: entity.GameSession{Status: entity.StatusSetup},
	}
}

// Start begins a new session in mode against difficulty and returns its id.
// Unknown values fall back to the stored settings.
func (that *GameController) Start(mode entity.Mode, difficulty entity.Difficulty) string {
	that.mu.Lock()
	defer that.mu.Unlock()

	log := that.logger.With("method", "Start")

	if !mode.Valid() {
		log.Warn("unknown mode, keeping settings", "mode", mode)
		mode = that.profile.Settings.Mode
	}

	if !difficulty.Valid() {
		log.Warn("unknown difficulty, keeping settings", "difficulty", difficulty)
		difficulty = that.profile.Settings.Difficulty
	}

	that.profile.Settings.Mode = mode
	that.profile.Settings.Difficulty = difficulty

	return that.startLocked()
}

// Reset starts a new session with the current settings.
func (that *GameController) Reset() string {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.startLocked()
}

// Stop leaves the current session without an outcome and cancels its timers.
func (that *GameController) Stop() {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.cancelTimersLocked()
	that.revealCellsLocked()
	that.replay.Pause()

	that.session.Active = false
	that.session.Status = entity.StatusSetup
}

// Place applies the human move at cell.
func (that *GameController) Place(sessionID string, cell int) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	session := &that.session

	switch {
	case sessionID != session.ID:
		return apperror.ErrStaleSession
	case session.Status == entity.StatusSetup:
		return apperror.ErrGameIsNotStarted
	case !session.IsInProgress():
		return apperror.ErrGameFinished
	case session.CurrentPlayer != entity.X:
		return apperror.ErrNotYourTurn
	case !entity.ValidCell(cell):
		return fmt.Errorf("%w: %d", apperror.ErrInvalidCell, cell)
	case session.Board[cell] != entity.Empty:
		return apperror.ErrCellOccupied
	case that.turnExpiredLocked():
		that.timeoutLocked()
		return apperror.ErrGameFinished
	}

	that.applyMoveLocked(cell, entity.X)

	return nil
}

func (that *GameController) Session() entity.GameSession {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.session
}

// HiddenCells lists the cells currently hidden in blind play.
func (that *GameController) HiddenCells() []int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return append([]int(nil), that.hidden...)
}

func (that *GameController) Profile() *entity.Profile {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.profile.Clone()
}

func (that *GameController) Achievements() []entity.Achievement {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.achievements.Catalog(that.profile.Achievements)
}

func (that *GameController) Twist() string {
	that.mu.Lock()
	defer that.mu.Unlock()

	return TwistMessage(that.profile.Settings.Mode, that.profile.Stats)
}

func (that *GameController) Replay() *replay.Recorder {
	return that.replay
}

// PlayReplay plays the last session back at the configured animation pace.
func (that *GameController) PlayReplay() {
	that.mu.Lock()
	interval := that.animationSpeed() + 100*time.Millisecond
	that.mu.Unlock()

	that.replay.Play(interval)
}

// ApplyTheme switches the theme and records that it was used.
func (that *GameController) ApplyTheme(theme entity.Theme) error {
	if !theme.Valid() {
		return fmt.Errorf("%w: theme %q", apperror.ErrInvalidSetting, theme)
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	that.profile.Settings.Theme = theme
	that.profile.Settings.MarkThemeApplied(theme)
	that.unlockAchievementsLocked(nil)
	that.saveLocked()

	return nil
}

// UpdateSettings replaces the settings. Theme usage history is kept.
func (that *GameController) UpdateSettings(settings entity.Settings) error {
	switch {
	case !settings.Difficulty.Valid():
		return fmt.Errorf("%w: difficulty %q", apperror.ErrInvalidSetting, settings.Difficulty)
	case !settings.Mode.Valid():
		return fmt.Errorf("%w: mode %q", apperror.ErrInvalidSetting, settings.Mode)
	case !settings.Theme.Valid():
		return fmt.Errorf("%w: theme %q", apperror.ErrInvalidSetting, settings.Theme)
	case settings.AnimationSpeed < 0:
		return fmt.Errorf("%w: animation speed %d", apperror.ErrInvalidSetting, settings.AnimationSpeed)
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	settings.ThemesApplied = append([]entity.Theme(nil), that.profile.Settings.ThemesApplied...)
	settings.MarkThemeApplied(settings.Theme)
	that.profile.Settings = settings

	that.unlockAchievementsLocked(nil)
	that.saveLocked()

	return nil
}

// ResetProfile zeroes the statistics and locks every achievement again.
func (that *GameController) ResetProfile() {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.profile.Stats = entity.DefaultStats()
	that.profile.Achievements = map[string]bool{}
	that.saveLocked()

	that.notifyLocked("Stats Reset!", "Your game statistics and achievements have been reset.")
}

func (that *GameController) startLocked() string {
	that.cancelTimersLocked()
	that.replay.Reset()
	that.hidden = nil
	that.blindTicks = 0

	settings := that.profile.Settings
	now := that.clock.Now()

	that.session = entity.GameSession{
		ID:               pkg.GenerateNewSessionID(),
		Mode:             settings.Mode,
		Difficulty:       settings.Difficulty,
		Status:           entity.StatusInProgress,
		Active:           true,
		FlawlessPossible: true,
		TurnStartedAt:    now,
		StartedAt:        now,
	}
	that.profile.Stats.TotalGames++

	session := &that.session

	if session.Mode == entity.ModeDailyChallenge {
		index, fresh := that.pickDailyLocked(now)
		session.Board, session.DailyIndex = DailyBoard(index)
		session.FlawlessPossible = false

		if fresh {
			that.notifyLocked("Daily Challenge", "A new challenge awaits!")
		} else {
			that.notifyLocked("Daily Challenge", "Continuing today's challenge!")
		}
	}

	session.CurrentPlayer = entity.X
	if that.rng.Intn(2) == 1 {
		session.CurrentPlayer = entity.O
	}

	that.replay.Record(session.Board, entity.Empty, now)
	that.saveLocked()

	that.logger.Debug("session started",
		"session_id", session.ID,
		"mode", session.Mode,
		"difficulty", session.Difficulty,
		"first", session.CurrentPlayer,
	)

	that.publishLocked(event.Event{Kind: event.KindTurnChanged, Player: session.CurrentPlayer})
	that.startModeTimersLocked()

	if session.CurrentPlayer == entity.O {
		that.scheduleAILocked()
	}

	return session.ID
}

func (that *GameController) startModeTimersLocked() {
	id := that.session.ID

	switch that.session.Mode {
	case entity.ModeSuddenDeath:
		that.track(that.clock.Every(suddenDeathTick, that.guarded(id, that.suddenDeathTickLocked)))
	case entity.ModeBlindPlay:
		that.track(that.clock.Every(that.blindInterval(), that.guarded(id, that.blindTickLocked)))
	}
}

func (that *GameController) applyMoveLocked(cell int, mark entity.Mark) {
	session := &that.session
	now := that.clock.Now()
	remaining := suddenDeathBudget - now.Sub(session.TurnStartedAt)

	session.Board[cell] = mark
	session.Plies++

	if mark == entity.O {
		session.FlawlessPossible = false
	}

	that.replay.Record(session.Board, mark, now)
	that.publishLocked(event.Event{Kind: event.KindMoveApplied, Index: event.Cell(cell), Mark: mark})

	if win, ok := entity.WinnerOf(session.Board); ok {
		result := entity.ResultAIWin
		if win.Player == entity.X {
			result = entity.ResultPlayerWin
		}

		line := win.Line
		that.finishLocked(result, win.Player, &line, entity.Empty, remaining)

		return
	}

	if entity.IsFull(session.Board) {
		that.finishLocked(entity.ResultDraw, entity.Empty, nil, entity.Empty, remaining)
		return
	}

	session.CurrentPlayer = mark.Opponent()
	session.TurnStartedAt = now
	that.publishLocked(event.Event{Kind: event.KindTurnChanged, Player: session.CurrentPlayer})

	if session.CurrentPlayer == entity.O {
		that.scheduleAILocked()
	}
}

// scheduleAILocked plays O after the animation delay, or right away when the delay is zero.
func (that *GameController) scheduleAILocked() {
	delay := that.animationSpeed()
	if delay <= 0 {
		that.playAILocked()
		return
	}

	that.track(that.clock.AfterFunc(delay, that.guarded(that.session.ID, that.playAILocked)))
}

func (that *GameController) playAILocked() {
	session := &that.session
	if !session.IsInProgress() || session.CurrentPlayer != entity.O {
		return
	}

	if that.turnExpiredLocked() {
		that.timeoutLocked()
		return
	}

	cell, err := that.ai.ChooseMove(session.Board, session.Difficulty)
	if err != nil {
		that.logger.Error("failed to choose AI move",
			"method", "playAILocked",
			"session_id", session.ID,
			"error", err,
		)

		return
	}

	that.applyMoveLocked(cell, entity.O)
}

func (that *GameController) suddenDeathTickLocked() {
	if !that.session.IsInProgress() {
		return
	}

	elapsed := that.clock.Now().Sub(that.session.TurnStartedAt)
	if elapsed >= suddenDeathBudget {
		that.timeoutLocked()
		return
	}

	that.publishLocked(event.Event{
		Kind:             event.KindTimerTick,
		Player:           that.session.CurrentPlayer,
		SecondsRemaining: (suddenDeathBudget - elapsed).Seconds(),
	})
}

// turnExpiredLocked reports a sudden death turn past its budget, whether or not a tick noticed it yet.
func (that *GameController) turnExpiredLocked() bool {
	if that.session.Mode != entity.ModeSuddenDeath {
		return false
	}

	return that.clock.Now().Sub(that.session.TurnStartedAt) >= suddenDeathBudget
}

func (that *GameController) timeoutLocked() {
	timedOut := that.session.CurrentPlayer

	if timedOut == entity.X {
		that.notifyLocked("Time Out!", "You failed to make a move!")
	} else {
		that.notifyLocked("AI Timed Out!", "The Zen Master was too zen!")
	}

	that.finishLocked(entity.ResultTimeout, timedOut.Opponent(), nil, timedOut, 0)
}

// blindTickLocked hides cells on the third tick and every other tick after it, and reveals them in between.
func (that *GameController) blindTickLocked() {
	if !that.session.IsInProgress() {
		return
	}

	that.blindTicks++

	if that.blindTicks >= 3 && that.blindTicks%2 == 1 {
		that.hideCellsLocked()
		return
	}

	that.revealCellsLocked()
}

func (that *GameController) hideCellsLocked() {
	board := that.session.Board

	pool := entity.EmptyCells(board)
	if occupied := entity.OccupiedCells(board); len(occupied) > 3 {
		pool = occupied
	}

	if len(pool) == 0 {
		return
	}

	count := min(2, len(pool)/2)
	for i := 0; i < count; i++ {
		j := i + that.rng.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}

	that.hidden = append([]int(nil), pool[:count]...)
	that.publishLocked(event.Event{
		Kind:    event.KindBlindCellsChanged,
		Cells:   append([]int(nil), that.hidden...),
		Message: "The board shifts... what was there again?",
	})
}

func (that *GameController) revealCellsLocked() {
	if len(that.hidden) == 0 {
		return
	}

	that.hidden = nil
	that.publishLocked(event.Event{Kind: event.KindBlindCellsChanged})
}

func (that *GameController) finishLocked(
	result entity.Result,
	winner entity.Mark,
	line *[3]int,
	timedOut entity.Mark,
	remaining time.Duration,
) {
	session := &that.session
	now := that.clock.Now()

	session.Status = entity.StatusTerminal
	session.Active = false
	that.cancelTimersLocked()
	that.revealCellsLocked()

	stats := &that.profile.Stats
	priorLosses := stats.ConsecutivePlayerLosses

	switch {
	case result == entity.ResultPlayerWin:
		stats.PlayerWins++
		stats.ConsecutivePlayerWins++
		stats.ConsecutivePlayerLosses = 0
		stats.WinsByDifficulty[session.Difficulty]++
		stats.WinsByMode[session.Mode]++
		that.recordSuddenDeathTimeLocked(now)
	case result == entity.ResultDraw:
		stats.Draws++
		stats.ConsecutivePlayerWins = 0
		stats.ConsecutivePlayerLosses = 0
	case result == entity.ResultTimeout && timedOut == entity.O:
		stats.PlayerWins++
		stats.ConsecutivePlayerWins++
		stats.ConsecutivePlayerLosses = 0
	default:
		stats.AIWins++
		stats.ConsecutivePlayerLosses++
		stats.ConsecutivePlayerWins = 0
	}

	outcome := entity.GameOutcome{
		SessionID:              session.ID,
		Result:                 result,
		Winner:                 winner,
		Line:                   line,
		TimedOut:               timedOut,
		Mode:                   session.Mode,
		Difficulty:             session.Difficulty,
		Board:                  session.Board,
		FlawlessPossible:       session.FlawlessPossible,
		PriorConsecutiveLosses: priorLosses,
		DecidingTurnRemaining:  remaining,
		Duration:               now.Sub(session.StartedAt),
	}

	that.logger.Info("game ended",
		"session_id", session.ID,
		"result", result,
		"winner", winner,
		"plies", session.Plies,
	)

	that.publishLocked(event.Event{Kind: event.KindGameEnded, Outcome: &outcome})
	that.unlockAchievementsLocked(&outcome)
	that.saveLocked()
	that.scheduleAutoAdvanceLocked(result)
}

func (that *GameController) recordSuddenDeathTimeLocked(now time.Time) {
	if that.session.Mode != entity.ModeSuddenDeath {
		return
	}

	first, ok := that.replay.First()
	if !ok {
		return
	}

	elapsed := entity.Seconds(now.Sub(first.Timestamp).Seconds())
	if elapsed >= that.profile.Stats.FastestSuddenDeathWin {
		return
	}

	that.profile.Stats.FastestSuddenDeathWin = elapsed
	that.notifyLocked("New Record!", fmt.Sprintf("Fastest Sudden Death win: %.1fs", float64(elapsed)))
}

func (that *GameController) unlockAchievementsLocked(outcome *entity.GameOutcome) {
	ids := that.achievements.Evaluate(achievement.Input{
		Stats:    that.profile.Stats,
		Settings: that.profile.Settings,
		Outcome:  outcome,
	}, that.profile.Achievements)

	for _, id := range ids {
		that.profile.Achievements[id] = true

		unlocked, _ := that.achievements.Lookup(id)
		that.publishLocked(event.Event{
			Kind:          event.KindAchievementUnlocked,
			AchievementID: id,
			Title:         unlocked.Name,
			Message:       unlocked.Description,
		})
		that.notifyLocked("Achievement Unlocked: "+unlocked.Name, unlocked.Description)
	}
}

// scheduleAutoAdvanceLocked starts the next round once the end screen had its time.
func (that *GameController) scheduleAutoAdvanceLocked(result entity.Result) {
	if !that.profile.Settings.AutoPlayNextRound {
		return
	}

	speed := that.animationSpeed()
	endScreen := 2 * speed
	if result == entity.ResultDraw {
		endScreen = speed
	}

	that.track(that.clock.AfterFunc(endScreen+5*speed, that.guarded(that.session.ID, func() {
		if !that.session.IsTerminal() {
			return
		}

		that.startLocked()
	})))
}

// guarded wraps fn so it runs under the lock and only while the session it was scheduled for is live.
func (that *GameController) guarded(sessionID string, fn func()) func() {
	return func() {
		that.mu.Lock()
		defer that.mu.Unlock()

		if that.session.ID != sessionID {
			that.logger.Debug("dropping stale callback", "session_id", sessionID)
			return
		}

		fn()
	}
}

func (that *GameController) track(handle clock.Handle) {
	that.handles = append(that.handles, handle)
}

func (that *GameController) cancelTimersLocked() {
	for _, handle := range that.handles {
		handle.Stop()
	}

	that.handles = nil
}

func (that *GameController) publishLocked(e event.Event) {
	if e.SessionID == "" {
		e.SessionID = that.session.ID
	}

	that.sink.Publish(e)
}

func (that *GameController) notifyLocked(title, message string) {
	that.publishLocked(event.Event{Kind: event.KindNotificationRequested, Title: title, Message: message})
}

func (that *GameController) saveLocked() {
	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()

	if err := that.store.Save(ctx, that.profile.Clone()); err != nil {
		that.logger.Warn("failed to save profile", "error", err)
	}
}

func (that *GameController) animationSpeed() time.Duration {
	return time.Duration(that.profile.Settings.AnimationSpeed) * time.Millisecond
}

func (that *GameController) blindInterval() time.Duration {
	return 2*that.animationSpeed() + time.Second
}
