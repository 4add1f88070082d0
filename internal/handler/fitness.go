package handler

import (
	"net/http"
	"time"

	"github.com/Sahillather002/challenge-fun-app/internal/domain"
	"github.com/Sahillather002/challenge-fun-app/internal/fitness"
	"github.com/Sahillather002/challenge-fun-app/internal/logger"
)

// HandleSyncFitness stores a day's activity and adds it to the user's totals
// @Summary Sync fitness data
// @Description Store one day of activity for a user in a competition
// @Tags fitness
// @Accept json
// @Produce json
// @Param request body domain.FitnessSyncRequest true "Activity sample"
// @Success 201 {object} domain.FitnessSample
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/fitness/sync [post]
func HandleSyncFitness(svc fitness.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.FitnessSyncRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Sync fitness"); err != nil {
			return
		}

		sample, err := svc.SyncFitnessData(r.Context(), &req)
		if err != nil {
			respondServiceError(w, r, ErrMsgSyncFitnessFailed, err)
			return
		}

		logger.FromContext(r.Context()).Info(MsgFitnessSyncedSuccess,
			"user_id", sample.UserID,
			"competition_id", sample.CompetitionID,
			"steps", sample.Steps)

		respondJSON(w, http.StatusCreated, sample)
	}
}

// HandleGetFitnessStats returns a user's running totals
// @Summary Get fitness stats
// @Description Aggregated totals for a user in a competition; zeroes if nothing was synced
// @Tags fitness
// @Produce json
// @Param userId path string true "User ID"
// @Param competition_id query string true "Competition ID"
// @Success 200 {object} domain.AggregatedFitnessStats
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/fitness/stats/{userId} [get]
func HandleGetFitnessStats(svc fitness.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetPathParam(r, w, "userId")
		if !ok {
			return
		}
		competitionID, ok := GetQueryParam(r, w, "competition_id")
		if !ok {
			return
		}

		stats, err := svc.GetUserStats(r.Context(), userID, competitionID)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetStatsFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, stats)
	}
}

// HandleGetDailySample returns the stored sample for one day
// @Summary Get daily sample
// @Tags fitness
// @Produce json
// @Param userId path string true "User ID"
// @Param competition_id query string true "Competition ID"
// @Param date query string false "Day (YYYY-MM-DD, UTC); defaults to today"
// @Success 200 {object} domain.FitnessSample
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/fitness/daily/{userId} [get]
func HandleGetDailySample(svc fitness.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetPathParam(r, w, "userId")
		if !ok {
			return
		}
		competitionID, ok := GetQueryParam(r, w, "competition_id")
		if !ok {
			return
		}
		date, err := parseDate(r, "date", time.Now())
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidDate)
			return
		}

		sample, err := svc.GetDailySample(r.Context(), userID, competitionID, date)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetDailySampleFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, sample)
	}
}
