package http

import (
	"encoding/csv"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/shiftlog/duty-dashboard-go/internal/domain/duty"
	"github.com/shiftlog/duty-dashboard-go/internal/handler/http/response"
)

type DutyHandler interface {
	// ListEvents returns filtered raw events with paging
	ListEvents(w http.ResponseWriter, r *http.Request)
	// ListSessions returns reconstructed work sessions
	ListSessions(w http.ResponseWriter, r *http.Request)
	// ExportEventsCSV streams the filtered raw data as a CSV download
	ExportEventsCSV(w http.ResponseWriter, r *http.Request)
	// GetSnapshot returns the loaded fileset identity
	GetSnapshot(w http.ResponseWriter, r *http.Request)
	// RefreshSnapshot invalidates the cache and reloads the fileset
	RefreshSnapshot(w http.ResponseWriter, r *http.Request)
}

type dutyHandlerImpl struct {
	dutyService duty.DutyService
}

func NewDutyHandler(dutyService duty.DutyService) DutyHandler {
	return &dutyHandlerImpl{dutyService: dutyService}
}

// ListEvents handles GET /events
func (h *dutyHandlerImpl) ListEvents(w http.ResponseWriter, r *http.Request) {
	filter := duty.EventFilter{
		Filter: filterFromQuery(r),
		Page:   intQuery(r, "page"),
		Limit:  intQuery(r, "limit"),
	}

	result, err := h.dutyService.ListEvents(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Events, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalItems,
		TotalPages: result.TotalPages,
	})
}

// ListSessions handles GET /sessions
func (h *dutyHandlerImpl) ListSessions(w http.ResponseWriter, r *http.Request) {
	result, err := h.dutyService.ListSessions(r.Context(), filterFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ExportEventsCSV handles GET /exports/events.csv
func (h *dutyHandlerImpl) ExportEventsCSV(w http.ResponseWriter, r *http.Request) {
	events, err := h.dutyService.FilteredEvents(r.Context(), filterFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	filename := "duty_schedule_filtered_" + time.Now().Format("20060102_150405") + ".csv"
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)

	cw := csv.NewWriter(w)
	rows := [][]string{{"ID", "Name", "Status", "DateTime"}}
	for _, e := range events {
		rows = append(rows, []string{
			formatID(e.ID),
			e.Name,
			string(e.Status),
			e.Timestamp.Format("2006-01-02 15:04:05"),
		})
	}
	if err := cw.WriteAll(rows); err != nil {
		slog.Error("Failed to stream events CSV", "error", err)
	}
}

// GetSnapshot handles GET /snapshot
func (h *dutyHandlerImpl) GetSnapshot(w http.ResponseWriter, r *http.Request) {
	snap, err := h.dutyService.Snapshot(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, snapshotInfo(snap))
}

// RefreshSnapshot handles POST /snapshot/refresh
func (h *dutyHandlerImpl) RefreshSnapshot(w http.ResponseWriter, r *http.Request) {
	snap, err := h.dutyService.Refresh(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Snapshot reloaded", snapshotInfo(snap))
}

type snapshotResponse struct {
	ID       string          `json:"id"`
	Files    []duty.FileInfo `json:"files"`
	Events   int             `json:"events"`
	LoadedAt time.Time       `json:"loaded_at"`
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

func snapshotInfo(snap *duty.Snapshot) snapshotResponse {
	return snapshotResponse{
		ID:       snap.ID.String(),
		Files:    snap.Files,
		Events:   len(snap.Events),
		LoadedAt: snap.LoadedAt,
	}
}
