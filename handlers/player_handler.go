package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Dosada05/ladder-system/models"
	"github.com/Dosada05/ladder-system/services"
)

const maxAvatarUploadSize = 5 << 20 // 5MB

type PlayerHandler struct {
	playerService services.PlayerService
}

func NewPlayerHandler(ps services.PlayerService) *PlayerHandler {
	return &PlayerHandler{playerService: ps}
}

// CreatePlayer godoc
// @Summary Создать игрока
// @Tags players
// @Accept json
// @Produce json
// @Param input body services.CreatePlayerInput true "Данные игрока"
// @Success 201 {object} models.Player
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]interface{}
// @Security BearerAuth
// @Router /players [post]
func (h *PlayerHandler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	var input services.CreatePlayerInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	player, err := h.playerService.CreatePlayer(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"player": player}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetPlayer godoc
// @Summary Получить игрока по ID
// @Tags players
// @Produce json
// @Param playerID path int true "ID игрока"
// @Success 200 {object} models.Player
// @Failure 404 {object} map[string]string
// @Router /players/{playerID} [get]
func (h *PlayerHandler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "playerID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	player, err := h.playerService.GetPlayer(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"player": player}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ListPlayers godoc
// @Summary Список игроков
// @Description Фильтры по группе и активности, q - нечеткий поиск по имени
// @Tags players
// @Produce json
// @Param group query string false "top или bottom"
// @Param active query bool false "Только активные / неактивные"
// @Param q query string false "Поиск по имени"
// @Success 200 {array} models.Player
// @Failure 400 {object} map[string]string
// @Router /players [get]
func (h *PlayerHandler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	var filter services.PlayerFilter
	query := r.URL.Query()

	if groupStr := query.Get("group"); groupStr != "" {
		group := models.Group(groupStr)
		if !group.Valid() {
			badRequestResponse(w, r, errors.New("invalid group query parameter"))
			return
		}
		filter.Group = &group
	}
	active, err := queryBool(r, "active")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	filter.Active = active
	filter.Query = strings.TrimSpace(query.Get("q"))

	players, err := h.playerService.ListPlayers(r.Context(), filter)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"players": players}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// UpdatePlayer godoc
// @Summary Изменить имя или группу игрока
// @Tags players
// @Accept json
// @Produce json
// @Param playerID path int true "ID игрока"
// @Param input body services.UpdatePlayerInput true "Изменения"
// @Success 200 {object} models.Player
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]interface{}
// @Security BearerAuth
// @Router /players/{playerID} [put]
func (h *PlayerHandler) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "playerID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.UpdatePlayerInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	player, err := h.playerService.UpdatePlayer(r.Context(), id, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"player": player}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

type setActiveInput struct {
	Active *bool `json:"active"`
}

// SetActive godoc
// @Summary Включить или выключить игрока
// @Tags players
// @Accept json
// @Produce json
// @Param playerID path int true "ID игрока"
// @Param input body setActiveInput true "Флаг активности"
// @Success 200 {object} models.Player
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /players/{playerID}/active [patch]
func (h *PlayerHandler) SetActive(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "playerID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input setActiveInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if input.Active == nil {
		failedValidationResponse(w, r, map[string]string{"active": "must be provided"})
		return
	}

	player, err := h.playerService.SetActive(r.Context(), id, *input.Active)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"player": player}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// DeletePlayer godoc
// @Summary Удалить игрока
// @Description Игрок, участвовавший в матчах, не удаляется (409)
// @Tags players
// @Param playerID path int true "ID игрока"
// @Success 204
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /players/{playerID} [delete]
func (h *PlayerHandler) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "playerID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.playerService.DeletePlayer(r.Context(), id); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// UploadAvatar godoc
// @Summary Загрузить аватар игрока
// @Tags players
// @Accept multipart/form-data
// @Produce json
// @Param playerID path int true "ID игрока"
// @Param avatar formData file true "Изображение (jpeg, png, gif, webp)"
// @Success 200 {object} models.Player
// @Failure 400 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Security BearerAuth
// @Router /players/{playerID}/avatar [post]
func (h *PlayerHandler) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "playerID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxAvatarUploadSize+1024)
	if err := r.ParseMultipartForm(maxAvatarUploadSize); err != nil {
		badRequestResponse(w, r, errors.New("avatar file is too large or the form is malformed"))
		return
	}

	file, header, err := r.FormFile("avatar")
	if err != nil {
		badRequestResponse(w, r, errors.New("avatar file is required"))
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	player, err := h.playerService.UploadAvatar(r.Context(), id, file, contentType)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"player": player}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
