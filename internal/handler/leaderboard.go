package handler

import (
	"net/http"

	"github.com/Sahillather002/challenge-fun-app/internal/domain"
	"github.com/Sahillather002/challenge-fun-app/internal/leaderboard"
	"github.com/Sahillather002/challenge-fun-app/internal/logger"
)

// HandleUpdateScore sets a user's score and notifies live clients
// @Summary Update score
// @Description Replace a user's ranking score with the submitted step count
// @Tags leaderboard
// @Accept json
// @Produce json
// @Param request body domain.ScoreUpdateRequest true "Score update"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/leaderboard/update [post]
func HandleUpdateScore(svc leaderboard.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.ScoreUpdateRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Update score"); err != nil {
			return
		}

		if err := svc.UpdateScore(r.Context(), &req); err != nil {
			respondServiceError(w, r, ErrMsgUpdateScoreFailed, err)
			return
		}

		logger.FromContext(r.Context()).Info(MsgScoreUpdatedSuccess,
			"user_id", req.UserID,
			"competition_id", req.CompetitionID,
			"steps", req.Steps)

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgScoreUpdatedSuccess})
	}
}

// HandleGetLeaderboard returns the top of a competition's ranking
// @Summary Get leaderboard
// @Tags leaderboard
// @Produce json
// @Param competitionId path string true "Competition ID"
// @Param limit query int false "Number of entries (default 100, max 1000)"
// @Success 200 {object} domain.Leaderboard
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/leaderboard/{competitionId} [get]
func HandleGetLeaderboard(svc leaderboard.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		competitionID, ok := GetPathParam(r, w, "competitionId")
		if !ok {
			return
		}
		limit := parseLimit(r)

		board, err := svc.GetLeaderboard(r.Context(), competitionID, limit)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetLeaderboardFailed, err)
			return
		}

		LogRequestFields(logger.FromContext(r.Context()),
			"competition_id", competitionID, "limit", limit, "entries", len(board.Entries))

		respondJSON(w, http.StatusOK, board)
	}
}

// HandleGetUserRank returns one user's standing
// @Summary Get user rank
// @Tags leaderboard
// @Produce json
// @Param competitionId path string true "Competition ID"
// @Param userId path string true "User ID"
// @Success 200 {object} domain.UserRank
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/leaderboard/{competitionId}/rank/{userId} [get]
func HandleGetUserRank(svc leaderboard.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		competitionID, ok := GetPathParam(r, w, "competitionId")
		if !ok {
			return
		}
		userID, ok := GetPathParam(r, w, "userId")
		if !ok {
			return
		}

		rank, err := svc.GetUserRank(r.Context(), competitionID, userID)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetUserRankFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, rank)
	}
}
