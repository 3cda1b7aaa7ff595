package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/rocketscienceinc/tictactoe-despair/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-despair/internal/entity"
	"github.com/rocketscienceinc/tictactoe-despair/internal/replay"
)

type Handlers interface {
	GetSession(w http.ResponseWriter, r *http.Request)
	GetProfile(w http.ResponseWriter, r *http.Request)
	UpdateSettings(w http.ResponseWriter, r *http.Request)
	ResetProfile(w http.ResponseWriter, r *http.Request)
	GetAchievements(w http.ResponseWriter, r *http.Request)
	GetReplay(w http.ResponseWriter, r *http.Request)
	GetTwist(w http.ResponseWriter, r *http.Request)
}

type gameController interface {
	Session() entity.GameSession
	Profile() *entity.Profile
	Achievements() []entity.Achievement
	Twist() string
	Replay() *replay.Recorder

	UpdateSettings(settings entity.Settings) error
	ResetProfile()
}

type handlers struct {
	logger     *slog.Logger
	controller gameController
}

func NewHandlers(logger *slog.Logger, controller gameController) Handlers {
	return &handlers{
		logger:     logger.With("component", "rest"),
		controller: controller,
	}
}

type profileResponse struct {
	*entity.Profile
	WinRate *float64 `json:"winRate"`
}

type replayResponse struct {
	Entries []replay.Entry `json:"entries"`
	Cursor  int            `json:"cursor"`
	Playing bool           `json:"playing"`
}

type twistResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (that *handlers) GetSession(w http.ResponseWriter, _ *http.Request) {
	that.writeJSON(w, http.StatusOK, that.controller.Session())
}

func (that *handlers) GetProfile(w http.ResponseWriter, _ *http.Request) {
	that.writeJSON(w, http.StatusOK, newProfileResponse(that.controller.Profile()))
}

func (that *handlers) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "UpdateSettings")

	var settings entity.Settings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		log.Debug("failed to decode settings", "error", err)
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "malformed settings"})
		return
	}

	if err := that.controller.UpdateSettings(settings); err != nil {
		if errors.Is(err, apperror.ErrInvalidSetting) {
			that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}

		log.Error("failed to update settings", "error", err)
		that.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Internal Server Error"})
		return
	}

	that.writeJSON(w, http.StatusOK, newProfileResponse(that.controller.Profile()))
}

func (that *handlers) ResetProfile(w http.ResponseWriter, _ *http.Request) {
	that.controller.ResetProfile()

	that.writeJSON(w, http.StatusOK, newProfileResponse(that.controller.Profile()))
}

func (that *handlers) GetAchievements(w http.ResponseWriter, _ *http.Request) {
	that.writeJSON(w, http.StatusOK, that.controller.Achievements())
}

func (that *handlers) GetReplay(w http.ResponseWriter, _ *http.Request) {
	recorder := that.controller.Replay()

	entries := recorder.Entries()
	if entries == nil {
		entries = []replay.Entry{}
	}

	that.writeJSON(w, http.StatusOK, replayResponse{
		Entries: entries,
		Cursor:  recorder.Cursor(),
		Playing: recorder.IsPlaying(),
	})
}

func (that *handlers) GetTwist(w http.ResponseWriter, _ *http.Request) {
	that.writeJSON(w, http.StatusOK, twistResponse{Message: that.controller.Twist()})
}

func (that *handlers) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}

func newProfileResponse(profile *entity.Profile) profileResponse {
	resp := profileResponse{Profile: profile}

	if rate, ok := profile.Stats.WinRate(); ok {
		resp.WinRate = &rate
	}

	return resp
}
