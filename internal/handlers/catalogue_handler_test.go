package handlers

import (
	"database/sql/driver"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-marketplace/internal/domain/account"
)

var serviceColumns = []string{"id", "barber_id", "name", "duration_min", "price", "category", "active"}

func TestServiceHandler_UpdateIsScopedToOwner(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name  string
		rows  *sqlmock.Rows
		write bool
		want  int
	}{
		{
			name: "another barber's service",
			rows: sqlmock.NewRows(serviceColumns),
			want: http.StatusNotFound,
		},
		{
			name:  "own service",
			rows:  sqlmock.NewRows(serviceColumns).AddRow(5, 3, "Fade", 30, "250.00", "hair", true),
			write: true,
			want:  http.StatusOK,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := newMockDB(t)

			mock.ExpectQuery(`SELECT \* FROM "services" WHERE id = \$1 AND barber_id = \$2`).
				WithArgs(5, 3, 1).
				WillReturnRows(tc.rows)
			if tc.write {
				mock.ExpectExec(`UPDATE "services" SET .* WHERE "id" = \$\d+`).
					WillReturnResult(sqlmock.NewResult(0, 1))
			}

			r := gin.New()
			r.PATCH("/api/barber/services/:id",
				asCaller(account.Identity{UserID: 3, Role: account.RoleBarber}),
				NewServiceHandler(db).Update)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPatch, "/api/barber/services/5", strings.NewReader(`{"price":"300"}`))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			if w.Code != tc.want {
				t.Fatalf("status %d want %d: %s", w.Code, tc.want, w.Body.String())
			}
			if tc.want == http.StatusNotFound && decode(t, w)["error_code"] != "service_not_found" {
				t.Fatalf("unexpected body %s", w.Body.String())
			}
			expectationsMet(t, mock)
		})
	}
}

func TestPublicHandler_ListServicesActiveOnly(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name  string
		url   string
		query string
		args  []driver.Value
	}{
		{
			name:  "all categories",
			url:   "/api/barbers/7/services",
			query: `SELECT \* FROM "services" WHERE \(?barber_id = \$1 AND active = \$2\)? ORDER BY name ASC`,
			args:  []driver.Value{7, true},
		},
		{
			name:  "category filter",
			url:   "/api/barbers/7/services?category=Beard",
			query: `SELECT \* FROM "services" WHERE \(?barber_id = \$1 AND active = \$2\)? AND LOWER\(category\) = \$3 ORDER BY name ASC`,
			args:  []driver.Value{7, true, "beard"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := newMockDB(t)

			mock.ExpectQuery(tc.query).
				WithArgs(tc.args...).
				WillReturnRows(sqlmock.NewRows(serviceColumns).
					AddRow(2, 7, "Beard trim", 20, "150.00", "beard", true))

			r := gin.New()
			r.GET("/api/barbers/:id/services", NewPublicHandler(db, nil).ListServices)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.url, nil))

			if w.Code != http.StatusOK {
				t.Fatalf("status %d: %s", w.Code, w.Body.String())
			}
			if body := decode(t, w); body["total"] != 1.0 {
				t.Fatalf("unexpected body %v", body)
			}
			expectationsMet(t, mock)
		})
	}
}
