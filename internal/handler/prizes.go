package handler

import (
	"net/http"

	"github.com/Sahillather002/challenge-fun-app/internal/domain"
	"github.com/Sahillather002/challenge-fun-app/internal/leaderboard"
	"github.com/Sahillather002/challenge-fun-app/internal/logger"
)

// HandleCalculatePrizes splits a prize pool over the current top three
// @Summary Calculate prizes
// @Description Split the pool 60/30/10 over the current top three and cache the result
// @Tags prizes
// @Accept json
// @Produce json
// @Param competitionId path string true "Competition ID"
// @Param request body domain.PrizeCalculationRequest true "Prize pool"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /api/v1/prizes/calculate/{competitionId} [post]
func HandleCalculatePrizes(svc leaderboard.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		competitionID, ok := GetPathParam(r, w, "competitionId")
		if !ok {
			return
		}

		var req domain.PrizeCalculationRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Calculate prizes"); err != nil {
			return
		}

		prizes, err := svc.CalculatePrizes(r.Context(), competitionID, req.PrizePool)
		if err != nil {
			respondServiceError(w, r, ErrMsgCalculatePrizesFailed, err)
			return
		}

		logger.FromContext(r.Context()).Info(MsgPrizesCalculated,
			"competition_id", competitionID,
			"prize_pool", req.PrizePool,
			"winners", len(prizes))

		respondJSON(w, http.StatusOK, DataResponse{Message: MsgPrizesCalculated, Data: prizes})
	}
}

// HandleGetPrizes returns the last calculated prizes
// @Summary Get prizes
// @Tags prizes
// @Produce json
// @Param competitionId path string true "Competition ID"
// @Success 200 {array} domain.Prize
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/prizes/{competitionId} [get]
func HandleGetPrizes(svc leaderboard.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		competitionID, ok := GetPathParam(r, w, "competitionId")
		if !ok {
			return
		}

		prizes, err := svc.GetPrizes(r.Context(), competitionID)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetPrizesFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, prizes)
	}
}
