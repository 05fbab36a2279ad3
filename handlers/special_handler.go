package handlers

import (
	"net/http"

	"github.com/Dosada05/ladder-system/services"
)

type SpecialTypeHandler struct {
	specialService services.SpecialTypeService
}

func NewSpecialTypeHandler(ss services.SpecialTypeService) *SpecialTypeHandler {
	return &SpecialTypeHandler{specialService: ss}
}

// List godoc
// @Summary Типы спецударов
// @Tags specials
// @Produce json
// @Param enabled query bool false "Только включенные"
// @Success 200 {array} models.SpecialType
// @Router /specials [get]
func (h *SpecialTypeHandler) List(w http.ResponseWriter, r *http.Request) {
	enabled, err := queryBool(r, "enabled")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	types, err := h.specialService.ListSpecialTypes(r.Context(), enabled != nil && *enabled)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"special_types": types}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Create godoc
// @Summary Создать тип спецудара
// @Tags specials
// @Accept json
// @Produce json
// @Param input body services.SpecialTypeInput true "Тип"
// @Success 201 {object} models.SpecialType
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]interface{}
// @Security BearerAuth
// @Router /specials [post]
func (h *SpecialTypeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input services.SpecialTypeInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	st, err := h.specialService.CreateSpecialType(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"special_type": st}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Update godoc
// @Summary Изменить тип спецудара
// @Tags specials
// @Accept json
// @Produce json
// @Param specialID path int true "ID типа"
// @Param input body services.UpdateSpecialTypeInput true "Изменения"
// @Success 200 {object} models.SpecialType
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /specials/{specialID} [put]
func (h *SpecialTypeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "specialID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.UpdateSpecialTypeInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	st, err := h.specialService.UpdateSpecialType(r.Context(), id, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"special_type": st}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Delete godoc
// @Summary Удалить тип спецудара
// @Tags specials
// @Param specialID path int true "ID типа"
// @Success 204
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /specials/{specialID} [delete]
func (h *SpecialTypeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "specialID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.specialService.DeleteSpecialType(r.Context(), id); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
