package http

import (
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoSim-25-26J-441/color-picker-backend/internal/palettes/repository"
	"github.com/GoSim-25-26J-441/color-picker-backend/internal/palettes/service"
	projectrepo "github.com/GoSim-25-26J-441/color-picker-backend/internal/projects/repository"
)

var paletteCols = []string{"id", "project_id", "palette_name", "color_1", "color_2", "color_3", "color_4", "color_5", "created_at", "updated_at"}

const missingPrefix = "Expected { project_id: <int>, palette_name: <string>, color_1: <string>, color_2: <string>, color_3: <string>, color_4: <string>, color_5: <string> } "

func setupRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	gin.SetMode(gin.TestMode)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	svc := service.NewPaletteService(repository.NewPaletteRepository(db), projectrepo.NewProjectRepository(db))
	h := New(svc)

	r := gin.New()
	api := r.Group("/api/v1")
	h.Register(api.Group("/palettes"))
	h.RegisterProjectSubroutes(api.Group("/projects"))
	return r, mock
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestList(t *testing.T) {
	r, mock := setupRouter(t)
	now := time.Now()

	mock.ExpectQuery(`FROM palettes ORDER BY id`).
		WillReturnRows(sqlmock.NewRows(paletteCols).
			AddRow(1, 1, "Beach", "#1", "#2", "#3", "#4", "#5", now, now).
			AddRow(2, 1, "Night", "#6", "#7", "#8", "#9", "#0", now, now))

	rr := do(r, http.MethodGet, "/api/v1/palettes", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"palette_name":"Night"`)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGet(t *testing.T) {
	r, mock := setupRouter(t)
	now := time.Now()

	mock.ExpectQuery(`FROM palettes WHERE id = \$1`).WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(paletteCols).AddRow(1, 3, "Beach", "#1", "#2", "#3", "#4", "#5", now, now))
	mock.ExpectQuery(`FROM palettes WHERE id = \$1`).WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows(paletteCols))

	rr := do(r, http.MethodGet, "/api/v1/palettes/1", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"project_id":3`)

	rr = do(r, http.MethodGet, "/api/v1/palettes/2", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"error":"Could not find matching palette!"}`, rr.Body.String())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate(t *testing.T) {
	r, mock := setupRouter(t)

	mock.ExpectQuery(`INSERT INTO palettes`).
		WithArgs(int64(1), "Sea", "#a", "#b", "#c", "#d", "#e").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(14))

	rr := do(r, http.MethodPost, "/api/v1/palettes",
		`{"project_id":1,"palette_name":"Sea","color_1":"#a","color_2":"#b","color_3":"#c","color_4":"#d","color_5":"#e"}`)
	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.JSONEq(t, `{"id":14}`, rr.Body.String())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_FirstMissingField(t *testing.T) {
	r, mock := setupRouter(t)

	cases := map[string]string{
		`{"palette_name":"Sea","color_1":"#a","color_2":"#b","color_3":"#c","color_4":"#d"}`:          "project_id",
		`{"project_id":1,"color_1":"#a","color_2":"#b","color_3":"#c","color_4":"#d","color_5":"#e"}`: "palette_name",
		`{"project_id":1,"palette_name":"Sea","color_1":"#a","color_2":"#b","color_3":"#c","color_4":"#d"}`: "color_5",
		`{}`: "project_id",
		``:   "project_id",
	}

	for body, field := range cases {
		rr := do(r, http.MethodPost, "/api/v1/palettes", body)
		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code, body)
		assert.JSONEq(t, `{"error":"`+missingPrefix+`Missing `+field+`!"}`, rr.Body.String(), body)
	}
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_InvalidBody(t *testing.T) {
	r, mock := setupRouter(t)

	for _, body := range []string{
		`{"project_id":"one","palette_name":"Sea","color_1":"#a","color_2":"#b","color_3":"#c","color_4":"#d","color_5":"#e"}`,
		`{"project_id":1,"palette_name":"Sea","color_1":"#a","color_2":"#b","color_3":"#c","color_4":"#d","color_5":5}`,
		`[1,2,3]`,
		`{"project_id":`,
	} {
		rr := do(r, http.MethodPost, "/api/v1/palettes", body)
		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code, body)
		assert.JSONEq(t, `{"error":"`+missingPrefix+`Invalid body!"}`, rr.Body.String(), body)
	}
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_MissingFieldReportedBeforeWrongType(t *testing.T) {
	r, mock := setupRouter(t)

	cases := []struct {
		body  string
		field string
	}{
		{`{"color_5":5}`, "project_id"},
		{`{"project_id":"one"}`, "palette_name"},
		{`{"project_id":1,"palette_name":7,"color_1":"#a"}`, "color_2"},
	}

	for _, tc := range cases {
		rr := do(r, http.MethodPost, "/api/v1/palettes", tc.body)
		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code, tc.body)
		assert.JSONEq(t, `{"error":"`+missingPrefix+`Missing `+tc.field+`!"}`, rr.Body.String(), tc.body)
	}
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPatchColors_OneUpdateOneResponse(t *testing.T) {
	r, mock := setupRouter(t)

	mock.ExpectQuery(`SELECT EXISTS \(SELECT 1 FROM palettes`).WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE palettes SET color_2 = $1, color_3 = $2, updated_at = now() WHERE id = $3;`)).
		WithArgs("#bbbbbb", "#cccccc", int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	rr := do(r, http.MethodPatch, "/api/v1/palettes/5", `{"color_2":"#bbbbbb","color_3":"#cccccc"}`)
	assert.Equal(t, http.StatusAccepted, rr.Code)
	assert.JSONEq(t, `{"message":"Color updated"}`, rr.Body.String())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPatchColors_Errors(t *testing.T) {
	t.Run("unknown palette", func(t *testing.T) {
		r, mock := setupRouter(t)
		mock.ExpectQuery(`SELECT EXISTS \(SELECT 1 FROM palettes`).WithArgs(int64(6)).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

		rr := do(r, http.MethodPatch, "/api/v1/palettes/6", `{"color_1":"#ffffff"}`)
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.JSONEq(t, `{"error":"No existing palette with id of 6"}`, rr.Body.String())
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("non numeric id", func(t *testing.T) {
		r, _ := setupRouter(t)

		rr := do(r, http.MethodPatch, "/api/v1/palettes/sunny", `{"color_1":"#ffffff"}`)
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.JSONEq(t, `{"error":"No existing palette with id of sunny"}`, rr.Body.String())
	})

	t.Run("no colors", func(t *testing.T) {
		r, mock := setupRouter(t)
		mock.ExpectQuery(`SELECT EXISTS \(SELECT 1 FROM palettes`).WithArgs(int64(5)).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

		rr := do(r, http.MethodPatch, "/api/v1/palettes/5", `{"palette_name":"ignored"}`)
		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
		assert.JSONEq(t, `{"error":"Expected at least one of color_1, color_2, color_3, color_4, color_5!"}`, rr.Body.String())
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestListByProject(t *testing.T) {
	r, mock := setupRouter(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT EXISTS \(SELECT 1 FROM projects`).WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery(`FROM palettes WHERE project_id = \$1`).WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(paletteCols).AddRow(1, 3, "Beach", "#1", "#2", "#3", "#4", "#5", now, now))
	mock.ExpectQuery(`SELECT EXISTS \(SELECT 1 FROM projects`).WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	rr := do(r, http.MethodGet, "/api/v1/projects/3/palettes", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"palette_name":"Beach"`)

	rr = do(r, http.MethodGet, "/api/v1/projects/4/palettes", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"error":"Could not find matching project!"}`, rr.Body.String())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete_AlwaysAccepted(t *testing.T) {
	r, mock := setupRouter(t)

	mock.ExpectExec(`DELETE FROM palettes`).WithArgs(int64(8)).WillReturnResult(sqlmock.NewResult(0, 0))

	for _, path := range []string{"/api/v1/palettes/8", "/api/v1/palettes/x"} {
		rr := do(r, http.MethodDelete, path, "")
		assert.Equal(t, http.StatusAccepted, rr.Code, path)
		assert.JSONEq(t, `{"message":"Palette successfully deleted"}`, rr.Body.String(), path)
	}
	require.NoError(t, mock.ExpectationsWereMet())
}
