package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/thereayou/geotrack/internal/database"
	"github.com/thereayou/geotrack/internal/models"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Location{}))

	d := database.NewDatabase(db)
	authH := NewAuthHandler(d)
	locH := NewLocationHandler(d)

	r := gin.New()
	r.POST("/register", authH.Register)
	r.POST("/login", authH.Login)
	r.POST("/update-location", locH.UpdateLocation)
	r.GET("/my-location", locH.GetLocation)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func registerUser(t *testing.T, r *gin.Engine, username, pass string) {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/register", gin.H{
		"username":         username,
		"password":         pass,
		"confirm_password": pass,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}
