package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/atvirokodosprendimai/recruitdash/internal/core/domain"
	"github.com/atvirokodosprendimai/recruitdash/internal/core/usecase"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const timeFormat = "2006-01-02T15:04:05.999999999Z07:00"

type Handler struct {
	characterService *usecase.CharacterService
	eventService     *usecase.EventService
}

func NewHandler(characterService *usecase.CharacterService, eventService *usecase.EventService) *Handler {
	return &Handler{characterService: characterService, eventService: eventService}
}

func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(instrument)

	r.Get("/healthz", h.healthz)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Get("/v1/users", h.listUsers)
	r.Get("/v1/users/{userID}/events", h.userEvents)
	r.Get("/v1/users/{userID}/dashboard", h.userDashboard)

	return r
}

type userResponse struct {
	UserID        int64  `json:"user_id"`
	Username      string `json:"username"`
	MainCharacter string `json:"main_character"`
	JoinedAt      string `json:"joined_at"`
}

type eventResponse struct {
	RecruitID          int64   `json:"recruit_id"`
	RecruitName        string  `json:"recruit_name"`
	OtherCharacterID   int64   `json:"other_character_id"`
	OtherCharacterName string  `json:"other_character_name"`
	Summary            string  `json:"summary,omitempty"`
	Details            string  `json:"details,omitempty"`
	Timestamp          *string `json:"timestamp,omitempty"`
	ISKValue           *string `json:"isk_value,omitempty"`
}

type groupResponse struct {
	CharacterID int64           `json:"character_id"`
	Name        string          `json:"name"`
	ProfileURL  string          `json:"profile_url"`
	Events      []eventResponse `json:"events"`
}

func (h *Handler) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.characterService.ListUsers(r.Context())
	if err != nil {
		handleDomainError(w, err)
		return
	}

	result := make([]userResponse, 0, len(users))
	for _, user := range users {
		result = append(result, userResponse{
			UserID:        user.UserID,
			Username:      user.Username,
			MainCharacter: user.MainCharacterName,
			JoinedAt:      user.JoinedAt.UTC().Format(timeFormat),
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"users": result})
}

func (h *Handler) userEvents(w http.ResponseWriter, r *http.Request) {
	events, ok := h.collectEvents(w, r)
	if !ok {
		return
	}

	result := make([]eventResponse, 0, len(events))
	for _, event := range events {
		result = append(result, toEventResponse(event))
	}
	writeJSON(w, http.StatusOK, map[string]any{"events": result})
}

func (h *Handler) userDashboard(w http.ResponseWriter, r *http.Request) {
	events, ok := h.collectEvents(w, r)
	if !ok {
		return
	}

	groups := usecase.GroupByCounterparty(events)
	result := make([]groupResponse, 0, len(groups))
	for _, group := range groups {
		groupEvents := make([]eventResponse, 0, len(group.Events))
		for _, event := range group.Events {
			groupEvents = append(groupEvents, toEventResponse(event))
		}
		result = append(result, groupResponse{
			CharacterID: group.CharacterID,
			Name:        group.Name,
			ProfileURL:  group.ProfileURL,
			Events:      groupEvents,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"groups": result})
}

// collectEvents resolves the owned-character set of the addressed
// user and runs the full aggregation pass. On failure the response
// has already been written.
func (h *Handler) collectEvents(w http.ResponseWriter, r *http.Request) ([]domain.CharacterEvent, bool) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "user id must be integer")
		return nil, false
	}

	owned, err := h.characterService.OwnedSet(r.Context(), userID)
	if err != nil {
		handleDomainError(w, err)
		return nil, false
	}

	events, err := h.eventService.AllEvents(r.Context(), owned)
	if err != nil {
		handleDomainError(w, err)
		return nil, false
	}
	return events, true
}

func toEventResponse(event domain.CharacterEvent) eventResponse {
	resp := eventResponse{
		RecruitID:          event.RecruitID,
		RecruitName:        event.RecruitName,
		OtherCharacterID:   event.OtherCharacterID,
		OtherCharacterName: event.OtherCharacterName,
		Summary:            event.Summary,
		Details:            event.Details,
	}
	if event.Timestamp != nil {
		ts := event.Timestamp.UTC().Format(timeFormat)
		resp.Timestamp = &ts
	}
	if event.ISKValue != nil {
		value := event.ISKValue.String()
		resp.ISKValue = &value
	}
	return resp
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	data, err := json.Marshal(body)
	if err != nil {
		log.Printf("encode json response: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(append(data, '\n')); err != nil {
		log.Printf("write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{"error": message})
}

func handleDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUnknownUser):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
