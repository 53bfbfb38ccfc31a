package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"barbertrack-backend/config"
	"barbertrack-backend/models"
	"barbertrack-backend/routes"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	os.Setenv("JWT_SECRET", "test-secret")
	os.Setenv("VIEW_TIMEZONE", "UTC")
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// setupRouter wires the full router against a fresh in-memory database.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.ServiceRecord{},
		&models.SummaryLog{},
	))

	config.DB = db
	return routes.SetupRouter()
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// registerUser creates an account through the API and returns its token and id.
func registerUser(t *testing.T, r *gin.Engine, email string) (token, userID string) {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/auth/register", "", gin.H{
		"email":    email,
		"password": "barber-secret",
		"name":     "Fz",
		"shopName": "Peluquería El Estilo",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	body := decode(t, w)
	token = body["token"].(string)
	userID = body["user"].(map[string]interface{})["id"].(string)
	return token, userID
}

func TestRecordLifecycle(t *testing.T) {
	r := setupRouter(t)
	token, _ := registerUser(t, r, "owner@fzbarber.cl")

	// Log a service from the catalog
	w := doJSON(t, r, http.MethodPost, "/api/records", token, gin.H{
		"name":  "Corte",
		"price": 6500,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode(t, w)
	recordID := created["ID"].(string)

	// It shows up in the owner's list
	w = doJSON(t, r, http.MethodGet, "/api/records", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "Corte", list[0]["Name"])

	// Delete it by its assigned id
	w = doJSON(t, r, http.MethodDelete, "/api/records/"+recordID, token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodGet, "/api/records", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Empty(t, list)
}

func TestCreateRecord_RejectsNegativePrice(t *testing.T) {
	r := setupRouter(t)
	token, _ := registerUser(t, r, "owner@fzbarber.cl")

	w := doJSON(t, r, http.MethodPost, "/api/records", token, gin.H{
		"name":  "Corte",
		"price": -100,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteRecord_ForbiddenForOtherOwner(t *testing.T) {
	r := setupRouter(t)
	ownerToken, _ := registerUser(t, r, "owner@fzbarber.cl")
	otherToken, _ := registerUser(t, r, "intruder@fzbarber.cl")

	w := doJSON(t, r, http.MethodPost, "/api/records", ownerToken, gin.H{
		"name":  "Barba",
		"price": 3000,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	recordID := decode(t, w)["ID"].(string)

	// The other account cannot delete it, and the record survives
	w = doJSON(t, r, http.MethodDelete, "/api/records/"+recordID, otherToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/records", ownerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list, 1)
}

func TestDeleteRecord_UnknownID(t *testing.T) {
	r := setupRouter(t)
	token, _ := registerUser(t, r, "owner@fzbarber.cl")

	w := doJSON(t, r, http.MethodDelete, "/api/records/"+uuid.NewString(), token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRecordsRequireAuth(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/records", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// seedRecord inserts a record with a pinned timestamp directly through gorm.
func seedRecord(t *testing.T, ownerID string, name string, price int64, ts time.Time) {
	t.Helper()
	owner, err := uuid.Parse(ownerID)
	require.NoError(t, err)
	require.NoError(t, config.DB.Create(&models.ServiceRecord{
		UserID:    owner,
		Name:      name,
		Price:     price,
		Timestamp: ts,
	}).Error)
}

func TestDashboard_WindowTotals(t *testing.T) {
	r := setupRouter(t)
	token, userID := registerUser(t, r, "owner@fzbarber.cl")

	// Monday 2024-03-04; the week started Sunday 2024-03-03
	seedRecord(t, userID, "Corte", 6500, time.Date(2024, time.March, 4, 10, 0, 0, 0, time.UTC))
	seedRecord(t, userID, "Barba", 3000, time.Date(2024, time.March, 4, 15, 0, 0, 0, time.UTC))

	w := doJSON(t, r, http.MethodGet, "/api/dashboard?at=2024-03-04T18:00:00Z", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := decode(t, w)
	for _, window := range []string{"today", "week", "month", "year"} {
		s := body[window].(map[string]interface{})
		assert.Equal(t, float64(9500), s["total"], window)
		assert.Equal(t, float64(2), s["count"], window)
	}
}

func TestDashboard_WindowsOverlap(t *testing.T) {
	r := setupRouter(t)
	token, userID := registerUser(t, r, "owner@fzbarber.cl")

	seedRecord(t, userID, "Corte", 6500, time.Date(2024, time.March, 20, 11, 0, 0, 0, time.UTC))
	seedRecord(t, userID, "Corte y barba", 7500, time.Date(2024, time.March, 2, 16, 0, 0, 0, time.UTC))
	seedRecord(t, userID, "Barba", 3000, time.Date(2024, time.January, 5, 12, 0, 0, 0, time.UTC))

	w := doJSON(t, r, http.MethodGet, "/api/dashboard?at=2024-03-20T18:00:00Z", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := decode(t, w)
	total := func(window string) float64 {
		return body[window].(map[string]interface{})["total"].(float64)
	}
	assert.Equal(t, float64(6500), total("today"))
	assert.Equal(t, float64(6500), total("week"))
	assert.Equal(t, float64(14000), total("month"))
	assert.Equal(t, float64(17000), total("year"))
}

func TestCalendarEndpoints(t *testing.T) {
	r := setupRouter(t)
	token, userID := registerUser(t, r, "owner@fzbarber.cl")

	seedRecord(t, userID, "Corte", 6500, time.Date(2024, time.February, 10, 10, 0, 0, 0, time.UTC))
	seedRecord(t, userID, "Barba", 3000, time.Date(2024, time.February, 10, 17, 30, 0, 0, time.UTC))

	// Leap February: 4 leading blanks + 29 dated cells
	w := doJSON(t, r, http.MethodGet, "/api/calendar/month/2024/2", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decode(t, w)
	cells := body["cells"].([]interface{})
	assert.Len(t, cells, 4+29)
	assert.Equal(t, "2024-01", body["previous"])
	assert.Equal(t, "2024-03", body["next"])

	day10 := cells[4+9].(map[string]interface{})
	assert.Equal(t, float64(9500), day10["total"])
	assert.Equal(t, float64(2), day10["count"])

	// Detail pane for the selected date, most recent first
	w = doJSON(t, r, http.MethodGet, "/api/calendar/day/2024-02-10", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body = decode(t, w)
	assert.Equal(t, float64(9500), body["total"])
	records := body["records"].([]interface{})
	require.Len(t, records, 2)
	assert.Equal(t, "Barba", records[0].(map[string]interface{})["Name"])
}

func TestCatalog(t *testing.T) {
	r := setupRouter(t)
	token, _ := registerUser(t, r, "owner@fzbarber.cl")

	w := doJSON(t, r, http.MethodGet, "/api/catalog", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var catalog []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &catalog))
	require.Len(t, catalog, 5)
	assert.Equal(t, "Corte", catalog[0]["name"])
	assert.Equal(t, float64(6500), catalog[0]["price"])
}
