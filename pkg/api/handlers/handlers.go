package handlers

import (
	"errors"
	"net/http"

	"github.com/cbodonnell/moralmaze/pkg/game"
	"github.com/cbodonnell/moralmaze/pkg/game/types"
	"github.com/cbodonnell/moralmaze/pkg/messages"
)

func HandlePing() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

func HandleGetState(session *game.SessionController) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, session.GetState(r.Context()))
	}
}

func HandleRestart(session *game.SessionController) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := session.Restart(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}

func HandleGetMaze(session *game.SessionController) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, session.GetMaze(r.Context()))
	}
}

func HandleMove(session *game.SessionController) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := &messages.PositionRequest{}
		if err := decode(r, req, false); err != nil {
			writeBadRequest(w, err)
			return
		}
		result, err := session.Move(r.Context(), coord(*req))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}

func HandleJump(session *game.SessionController) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := &messages.DirectionRequest{}
		if err := decode(r, req, false); err != nil {
			writeBadRequest(w, err)
			return
		}
		result, err := session.Jump(r.Context(), req.Direction)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}

func HandleSyncPosition(session *game.SessionController) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := &messages.PositionRequest{}
		if err := decode(r, req, false); err != nil {
			writeBadRequest(w, err)
			return
		}
		result, err := session.SyncPosition(r.Context(), coord(*req))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}

func HandleMutateWalls(session *game.SessionController) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := &messages.WallMutationsRequest{}
		if err := decode(r, req, false); err != nil {
			writeBadRequest(w, err)
			return
		}
		result, err := session.MutateWalls(r.Context(), req.Operations)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}

func HandleSetActiveDecisions(session *game.SessionController) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := &messages.ActiveDecisionsRequest{}
		if err := decode(r, req, false); err != nil {
			writeBadRequest(w, err)
			return
		}
		coords := make([]types.Coord, 0, len(req.Coords))
		for _, p := range req.Coords {
			coords = append(coords, coord(p))
		}
		result, err := session.SetActiveDecisions(r.Context(), coords)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}

func HandleLiftStart(session *game.SessionController) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := &messages.LiftStartRequest{}
		if err := decode(r, req, false); err != nil {
			writeBadRequest(w, err)
			return
		}
		result, err := session.LiftStart(r.Context(), coord(req.Hero), coord(req.Ally))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}

func HandleLiftThrow(session *game.SessionController) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := &messages.LiftThrowRequest{}
		if err := decode(r, req, false); err != nil {
			writeBadRequest(w, err)
			return
		}
		result, err := session.LiftThrow(r.Context(), coord(req.Ally), req.Direction)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}

func HandleDissolve(session *game.SessionController) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := &messages.PositionRequest{}
		if err := decode(r, req, false); err != nil {
			writeBadRequest(w, err)
			return
		}
		result, err := session.Dissolve(r.Context(), coord(*req))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}

func HandlePlaceTrap(session *game.SessionController) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := &messages.TrapRequest{}
		if err := decode(r, req, false); err != nil {
			writeBadRequest(w, err)
			return
		}
		result, err := session.PlaceTrap(r.Context(), req.Type, types.Coord{X: req.X, Y: req.Y})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}

func HandleFreezeHit(session *game.SessionController) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := &messages.FreezeHitRequest{}
		if err := decode(r, req, true); err != nil {
			writeBadRequest(w, err)
			return
		}
		result, err := session.FreezeHit(r.Context(), req.DamagePercent)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}

func HandleBlink(session *game.SessionController) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := session.Blink(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}

func HandleAllyJump(session *game.SessionController) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := &messages.DirectionRequest{}
		if err := decode(r, req, false); err != nil {
			writeBadRequest(w, err)
			return
		}
		result, err := session.AllyJump(r.Context(), req.Direction)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}

func HandleExpand(session *game.SessionController) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := session.Expand(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}

var errPartialPosition = errors.New("x and y must be given together")

func HandleEscape(session *game.SessionController) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := &messages.EscapeRequest{}
		if err := decode(r, req, true); err != nil {
			writeBadRequest(w, err)
			return
		}
		var target *types.Coord
		switch {
		case req.X != nil && req.Y != nil:
			target = &types.Coord{X: *req.X, Y: *req.Y}
		case req.X != nil || req.Y != nil:
			writeBadRequest(w, errPartialPosition)
			return
		}
		result, err := session.Escape(r.Context(), target)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}

func HandleActivateShield(session *game.SessionController) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := session.ActivateShield(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}

func HandleStartDecision(session *game.SessionController) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := &messages.PositionRequest{}
		if err := decode(r, req, false); err != nil {
			writeBadRequest(w, err)
			return
		}
		result, err := session.StartDecision(r.Context(), coord(*req))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}

func HandleSubmitDecision(session *game.SessionController) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := &messages.SubmitDecisionRequest{}
		if err := decode(r, req, false); err != nil {
			writeBadRequest(w, err)
			return
		}
		answer := types.Answer{ChoiceID: req.ChoiceID, FreeText: req.FreeText}
		result, err := session.SubmitDecision(r.Context(), req.QuestionID, answer)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}

func HandleGetTimeline(session *game.SessionController) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, session.GetTimeline(r.Context()))
	}
}
