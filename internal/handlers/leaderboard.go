package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/crevo-hub/LeaderboardEngineService/internal/leaderboard"
	"github.com/crevo-hub/LeaderboardEngineService/internal/model"
	"github.com/gin-gonic/gin"
)

// Trigger fires one refresh run, reporting whether a run was started.
// Implemented by the scheduler so manual triggers share its run guard.
type Trigger interface {
	Trigger(ctx context.Context) bool
}

// Snapshots is the read/export surface of the snapshot manager.
type Snapshots interface {
	GetSnapshot(ctx context.Context, month, year int) (*model.MonthlyLeaderboard, error)
	ListAvailableMonths(ctx context.Context) ([]model.MonthKey, error)
	GetUserStatsView(ctx context.Context, uid string) (*leaderboard.UserStatsView, error)
}

type LeaderboardHandler struct {
	snapshots Snapshots
	trigger   Trigger
}

func NewLeaderboardHandler(snapshots Snapshots, trigger Trigger) *LeaderboardHandler {
	return &LeaderboardHandler{snapshots: snapshots, trigger: trigger}
}

func parseMonthParams(c *gin.Context) (month, year int, ok bool) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil || year < 2000 || year > 3000 {
		JSONError(c, http.StatusBadRequest, "invalid year")
		return 0, 0, false
	}
	month, err = strconv.Atoi(c.Param("month"))
	if err != nil || month < 1 || month > 12 {
		JSONError(c, http.StatusBadRequest, "invalid month")
		return 0, 0, false
	}
	return month, year, true
}

// GetSnapshot returns the snapshot for a month, 404 when none exists.
func (h *LeaderboardHandler) GetSnapshot(c *gin.Context) {
	month, year, ok := parseMonthParams(c)
	if !ok {
		return
	}

	lb, err := h.snapshots.GetSnapshot(c.Request.Context(), month, year)
	if err != nil {
		JSONError(c, http.StatusInternalServerError, "failed to load snapshot")
		return
	}
	if lb == nil {
		JSONError(c, http.StatusNotFound, "no snapshot for that month")
		return
	}
	JSONSuccess(c, http.StatusOK, lb)
}

// ExportCSV returns the snapshot for a month as a CSV attachment.
func (h *LeaderboardHandler) ExportCSV(c *gin.Context) {
	month, year, ok := parseMonthParams(c)
	if !ok {
		return
	}

	lb, err := h.snapshots.GetSnapshot(c.Request.Context(), month, year)
	if err != nil {
		JSONError(c, http.StatusInternalServerError, "failed to load snapshot")
		return
	}
	if lb == nil {
		JSONError(c, http.StatusNotFound, "no snapshot for that month")
		return
	}

	c.Header("Content-Disposition", "attachment; filename=leaderboard.csv")
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(leaderboard.ExportSnapshotCSV(lb)))
}

// ListMonths returns all months with a stored snapshot, newest first.
func (h *LeaderboardHandler) ListMonths(c *gin.Context) {
	keys, err := h.snapshots.ListAvailableMonths(c.Request.Context())
	if err != nil {
		JSONError(c, http.StatusInternalServerError, "failed to list months")
		return
	}
	JSONSuccess(c, http.StatusOK, keys)
}

// RefreshNow manually triggers a refresh cycle and waits for it. Returns
// 409 when a run for the current month is already in flight. The cycle
// runs on a background context so a dropped request cannot abort a
// half-written snapshot.
func (h *LeaderboardHandler) RefreshNow(c *gin.Context) {
	if started := h.trigger.Trigger(context.Background()); !started {
		JSONError(c, http.StatusConflict, "refresh already in progress")
		return
	}
	JSONSuccess(c, http.StatusOK, gin.H{"message": "refresh completed"})
}

// GetUserStats returns the dashboard stats view for one user.
func (h *LeaderboardHandler) GetUserStats(c *gin.Context) {
	uid := c.Param("id")
	if uid == "" {
		JSONError(c, http.StatusBadRequest, "missing user id")
		return
	}

	view, err := h.snapshots.GetUserStatsView(c.Request.Context(), uid)
	if err != nil {
		JSONError(c, http.StatusInternalServerError, "failed to load user stats")
		return
	}
	if view == nil {
		JSONError(c, http.StatusNotFound, "user not found")
		return
	}
	JSONSuccess(c, http.StatusOK, view)
}
