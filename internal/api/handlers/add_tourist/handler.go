package add_tourist

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/travelparadise/TP-VisitService/internal/api/handlers"
	addTourist "github.com/travelparadise/TP-VisitService/internal/usecase/add_tourist"
)

const (
	msgInvalidVisitID     = "некорректный ID визита"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgVisitNotFound      = "визит не найден"
	msgVisitNotActive     = "визит завершен или отменен"
	msgCapacityExceeded   = "группа визита заполнена"
	msgInvalidInput       = "некорректные данные туриста"
)

type Handler struct {
	useCase AddTouristUseCase
	logger  Logger
}

func NewHandler(useCase AddTouristUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/visits/{visitId}/tourists
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	visitID, err := strconv.ParseInt(vars["visitId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /visits/{id}/tourists - Invalid visit ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVisitID)
		return
	}

	var req AddTouristRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /visits/{id}/tourists - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(visitID))
	if err != nil {
		switch {
		case errors.Is(err, addTourist.ErrVisitNotFound):
			h.logger.Warn("POST /visits/{id}/tourists - Visit not found: visit_id=%d", visitID)
			handlers.RespondNotFound(w, msgVisitNotFound)

		case errors.Is(err, addTourist.ErrVisitNotActive):
			h.logger.Warn("POST /visits/{id}/tourists - Visit not active: visit_id=%d", visitID)
			handlers.RespondError(w, http.StatusConflict, msgVisitNotActive)

		case errors.Is(err, addTourist.ErrCapacityExceeded):
			h.logger.Warn("POST /visits/{id}/tourists - Capacity exceeded: visit_id=%d", visitID)
			handlers.RespondError(w, http.StatusConflict, msgCapacityExceeded)

		case errors.Is(err, addTourist.ErrInvalidInput):
			h.logger.Warn("POST /visits/{id}/tourists - Invalid input: visit_id=%d, error=%v", visitID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /visits/{id}/tourists - Failed to add tourist: visit_id=%d, error=%v",
				visitID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /visits/{id}/tourists - Tourist added: tourist_id=%d, visit_id=%d",
		result.ID, visitID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
