package find_replacements

import (
	"net/http"
	"strconv"
	"time"

	"github.com/travelparadise/TP-VisitService/internal/api/handlers"
	"github.com/travelparadise/TP-VisitService/internal/domain"
	"github.com/travelparadise/TP-VisitService/pkg/types"
)

const (
	msgDateRequired      = "параметр date обязателен"
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidStartTime  = "некорректный формат времени начала, ожидается HH:MM"
	msgInvalidDuration   = "некорректная длительность"
	msgInvalidExcludeID  = "некорректный ID исключаемого гида"
	msgStartTimeRequired = "параметр startTime обязателен"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/guides/replacements?date=YYYY-MM-DD&startTime=HH:MM&durationMinutes=90&excludeGuideId=7
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	rawDate := query.Get("date")
	if rawDate == "" {
		handlers.RespondBadRequest(w, msgDateRequired)
		return
	}
	date, err := time.Parse(domain.DateFormat, rawDate)
	if err != nil {
		h.logger.Warn("GET /guides/replacements - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	rawStart := query.Get("startTime")
	if rawStart == "" {
		handlers.RespondBadRequest(w, msgStartTimeRequired)
		return
	}
	startTime, err := types.NewTimeStringFromString(rawStart)
	if err != nil {
		h.logger.Warn("GET /guides/replacements - Invalid start time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStartTime)
		return
	}

	duration, err := strconv.Atoi(query.Get("durationMinutes"))
	if err != nil || duration <= 0 {
		h.logger.Warn("GET /guides/replacements - Invalid duration: %q", query.Get("durationMinutes"))
		handlers.RespondBadRequest(w, msgInvalidDuration)
		return
	}

	var excludeGuideID *int64
	if raw := query.Get("excludeGuideId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.logger.Warn("GET /guides/replacements - Invalid exclude guide ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidExcludeID)
			return
		}
		excludeGuideID = &id
	}

	window := domain.TimeWindow{Start: startTime, DurationMinutes: duration}

	result, err := h.service.FindReplacements(r.Context(), date, window, excludeGuideID)
	if err != nil {
		h.logger.Error("GET /guides/replacements - Failed to find replacements: date=%s, error=%v",
			rawDate, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /guides/replacements - Replacements found: date=%s, start=%s, count=%d",
		rawDate, rawStart, len(result.Guides))
	handlers.RespondJSON(w, http.StatusOK, result)
}
