package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Dosada05/ladder-system/services"
	"github.com/go-chi/chi/v5"
)

type RoundHandler struct {
	roundService services.RoundService
}

func NewRoundHandler(rs services.RoundService) *RoundHandler {
	return &RoundHandler{roundService: rs}
}

// GenerateRound godoc
// @Summary Сгенерировать пары тура
// @Description Тур 1: random (по умолчанию) или manual. Туры 2 и 3: ranked по таблице.
// @Description regenerate=true пересоздает текущий тур, пока в нем нет результатов.
// @Tags rounds
// @Accept json
// @Produce json
// @Param tournamentID path int true "ID турнира"
// @Param round path int true "Номер тура (1-3)"
// @Param input body services.GenerateRoundInput false "Режим генерации"
// @Success 201 {array} models.Match
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]interface{}
// @Security BearerAuth
// @Router /tournaments/{tournamentID}/rounds/{round} [post]
func (h *RoundHandler) GenerateRound(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	round, err := strconv.Atoi(chi.URLParam(r, "round"))
	if err != nil {
		badRequestResponse(w, r, errors.New("invalid round format"))
		return
	}

	var input services.GenerateRoundInput
	// пустое тело допустимо: режим по умолчанию
	if err := readJSON(w, r, &input); err != nil && !errors.Is(err, errEmptyBody) {
		badRequestResponse(w, r, err)
		return
	}
	input.Round = round

	matches, err := h.roundService.GenerateRound(r.Context(), tournamentID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"round": round, "matches": matches}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ApplyFinalRanking godoc
// @Summary Применить итоговое распределение
// @Description Лучший из bottom поднимается в top, худший из top опускается. Турнир завершается.
// @Tags rounds
// @Produce json
// @Param tournamentID path int true "ID турнира"
// @Success 200 {object} services.FinalRankingResult
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /tournaments/{tournamentID}/final-ranking [post]
func (h *RoundHandler) ApplyFinalRanking(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	result, err := h.roundService.ApplyFinalRanking(r.Context(), tournamentID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"result": result}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
