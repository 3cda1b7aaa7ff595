package websocket

import (
	"context"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-despair/internal/apperror"
)

var errCellIsRequired = errors.New("cell is required")

func (that *Server) handleNewGame(_ context.Context, client *Client, payload *Payload) error {
	sessionID := that.controller.Start(payload.Mode, payload.Difficulty)

	that.logger.Info("new game started", "session_id", sessionID, "mode", payload.Mode)
	that.sendState(client)

	return nil
}

// handleMove places the human mark. Rejections are expected input and only logged at debug.
func (that *Server) handleMove(_ context.Context, client *Client, payload *Payload) error {
	log := that.logger.With("method", "handleMove")

	if payload.Cell == nil {
		that.sendError(client, errCellIsRequired.Error())
		return errCellIsRequired
	}

	err := that.controller.Place(payload.SessionID, *payload.Cell)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, apperror.ErrStaleSession),
		errors.Is(err, apperror.ErrGameIsNotStarted),
		errors.Is(err, apperror.ErrGameFinished),
		errors.Is(err, apperror.ErrNotYourTurn),
		errors.Is(err, apperror.ErrInvalidCell),
		errors.Is(err, apperror.ErrCellOccupied):
		log.Debug("move rejected", "cell", *payload.Cell, "reason", err)
		return nil
	default:
		return fmt.Errorf("failed to place mark: %w", err)
	}
}

func (that *Server) handleReset(_ context.Context, client *Client, _ *Payload) error {
	that.controller.Reset()
	that.sendState(client)

	return nil
}

func (that *Server) handleLeave(_ context.Context, client *Client, _ *Payload) error {
	that.controller.Stop()
	that.sendState(client)

	return nil
}

func (that *Server) handleState(_ context.Context, client *Client, _ *Payload) error {
	that.sendState(client)

	return nil
}

func (that *Server) handleThemeApply(_ context.Context, client *Client, payload *Payload) error {
	if err := that.controller.ApplyTheme(payload.Theme); err != nil {
		that.sendError(client, err.Error())
		return fmt.Errorf("failed to apply theme: %w", err)
	}

	return nil
}

func (that *Server) handleSettings(_ context.Context, client *Client, payload *Payload) error {
	if payload.Settings == nil {
		that.sendError(client, "settings are required")
		return nil
	}

	if err := that.controller.UpdateSettings(*payload.Settings); err != nil {
		that.sendError(client, err.Error())
		return fmt.Errorf("failed to update settings: %w", err)
	}

	return nil
}

func (that *Server) handleStatsReset(_ context.Context, _ *Client, _ *Payload) error {
	that.controller.ResetProfile()

	return nil
}

func (that *Server) handleReplayPlay(_ context.Context, _ *Client, _ *Payload) error {
	that.controller.PlayReplay()

	return nil
}

func (that *Server) handleReplayNext(_ context.Context, _ *Client, _ *Payload) error {
	that.controller.Replay().StepForward()

	return nil
}

func (that *Server) handleReplayPrev(_ context.Context, _ *Client, _ *Payload) error {
	that.controller.Replay().StepBack()

	return nil
}

func (that *Server) handleReplayPause(_ context.Context, _ *Client, _ *Payload) error {
	that.controller.Replay().Pause()

	return nil
}
