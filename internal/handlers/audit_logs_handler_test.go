package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-marketplace/internal/domain/account"
)

func auditRouter(h *AuditLogsHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/barber/audit-logs",
		asCaller(account.Identity{UserID: 3, Role: account.RoleBarber}),
		h.List)
	return r
}

func TestAuditLogsHandler_FiltersAndPages(t *testing.T) {
	db, mock := newMockDB(t)

	from := time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC)
	toExclusive := time.Date(2026, time.October, 16, 0, 0, 0, 0, time.UTC)

	const where = `WHERE barber_id = \$1 AND action = \$2 AND created_at >= \$3 AND created_at < \$4`

	mock.ExpectQuery(`SELECT count\(\*\) FROM "audit_logs" ` + where).
		WithArgs(3, "payout_recorded", sameInstant(from), sameInstant(toExclusive)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))

	mock.ExpectQuery(`SELECT \* FROM "audit_logs" ` + where + ` ORDER BY created_at DESC LIMIT \$5 OFFSET \$6`).
		WithArgs(3, "payout_recorded", sameInstant(from), sameInstant(toExclusive), 10, 10).
		WillReturnRows(sqlmock.NewRows([]string{"id", "barber_id", "action", "entity", "created_at"}).
			AddRow(2, 3, "payout_recorded", "barber_payment", from.Add(time.Hour)).
			AddRow(1, 3, "payout_recorded", "barber_payment", from))

	w := httptest.NewRecorder()
	url := "/api/barber/audit-logs?action=payout_recorded&from=2026-10-01&to=2026-10-15&page=2&limit=10"
	auditRouter(NewAuditLogsHandler(db)).ServeHTTP(w, httptest.NewRequest(http.MethodGet, url, nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}

	data := decode(t, w)["data"].(map[string]any)
	if data["page"] != 2.0 || data["limit"] != 10.0 || data["total"] != 12.0 {
		t.Fatalf("unexpected page %v", data)
	}
	if logs := data["logs"].([]any); len(logs) != 2 {
		t.Fatalf("want 2 logs, got %d", len(logs))
	}
	expectationsMet(t, mock)
}

func TestAuditLogsHandler_AlwaysScopedToCaller(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "audit_logs" WHERE barber_id = \$1`).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`SELECT \* FROM "audit_logs" WHERE barber_id = \$1 ORDER BY created_at DESC LIMIT \$2`).
		WithArgs(3, 50).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	w := httptest.NewRecorder()
	url := "/api/barber/audit-logs?page=-4&limit=5000&from=yesterday"
	auditRouter(NewAuditLogsHandler(db)).ServeHTTP(w, httptest.NewRequest(http.MethodGet, url, nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}
	data := decode(t, w)["data"].(map[string]any)
	if data["page"] != 1.0 || data["limit"] != 50.0 {
		t.Fatalf("bad paging not normalised: %v", data)
	}
	if logs := data["logs"].([]any); len(logs) != 0 {
		t.Fatalf("want empty list, got %v", logs)
	}
	expectationsMet(t, mock)
}
