package share

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"cloudpix/files-api/internal"
	"cloudpix/files-api/internal/model"
	"cloudpix/files-api/internal/service"
	"cloudpix/files-api/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newShareDeps(t *testing.T) *internal.Deps {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(model.User{}, model.File{}, model.ShareLink{}))

	require.NoError(t, db.Create(&model.File{
		FileID:    "f1",
		UserID:    "u1",
		Name:      "photo.png",
		BlobURL:   "https://blobs.test/bucket/u1/f1/photo.png",
		Status:    model.FileStatusActive,
		CreatedAt: time.Now(),
	}).Error)

	files := store.NewFileStore(db)
	links := store.NewShareLinkStore(db)

	return &internal.Deps{
		DB:         db,
		ShareLinks: service.NewShareLinks(files, links, nil),
	}
}

func shareCreateRequest(t *testing.T, d *internal.Deps, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest(http.MethodPost, "/api/files/f1/share", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: "f1"}}
	c.Set("requestID", "req1")
	c.Set("userID", "u1")

	ShareCreate(c, d)
	return w
}

func TestShareCreateEmptyBody(t *testing.T) {
	d := newShareDeps(t)

	// No body at all means no expirationDays
	w := shareCreateRequest(t, d, "")
	require.Equal(t, http.StatusCreated, w.Code)

	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))

	assert.NotEmpty(t, out["linkId"])
	assert.Contains(t, out["shareUrl"], out["linkId"])
	assert.NotContains(t, out, "ttl")
}

func TestShareCreateWithExpirationDays(t *testing.T) {
	d := newShareDeps(t)

	w := shareCreateRequest(t, d, `{"expirationDays": 7}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.NotEmpty(t, out["ttl"])
}

func TestShareCreateMalformedBody(t *testing.T) {
	d := newShareDeps(t)

	w := shareCreateRequest(t, d, `{"expirationDays":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
