package handler

import (
	"net/http"

	"github.com/Sahillather002/challenge-fun-app/internal/activity"
	"github.com/Sahillather002/challenge-fun-app/internal/logger"
)

// HandleSubmitActivity syncs a sample and moves the user's ranking to the new totals
// @Summary Submit activity
// @Description Sync a day's activity then set the leaderboard score to the cumulative step count
// @Tags activity
// @Accept json
// @Produce json
// @Param request body activity.Submission true "Activity"
// @Success 201 {object} activity.Result
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/activity [post]
func HandleSubmitActivity(svc activity.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var sub activity.Submission
		if err := DecodeAndValidateRequest(r, w, &sub, "Submit activity"); err != nil {
			return
		}

		res, err := svc.Submit(r.Context(), &sub)
		if err != nil {
			respondServiceError(w, r, ErrMsgSubmitActivityFailed, err)
			return
		}

		logger.FromContext(r.Context()).Info("Activity submitted",
			"user_id", sub.UserID,
			"competition_id", sub.CompetitionID,
			"total_steps", res.Stats.TotalSteps)

		respondJSON(w, http.StatusCreated, res)
	}
}
