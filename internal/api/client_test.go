package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nmil1484-source/the-wild-share/internal/config"
	"github.com/nmil1484-source/the-wild-share/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestClient(t *testing.T, handler http.Handler, token string) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	cfg := &config.Config{APIBaseURL: server.URL, RequestTimeout: 5 * time.Second}
	source := TokenSource(nil)
	if token != "" {
		source = func() string { return token }
	}
	return NewClient(cfg, source)
}

func TestClient_AttachesBearerAndRequestID(t *testing.T) {
	r := gin.New()
	var gotAuth, gotRequestID string
	r.GET("/auth/me", func(c *gin.Context) {
		gotAuth = c.GetHeader("Authorization")
		gotRequestID = c.GetHeader("X-Request-ID")
		c.JSON(http.StatusOK, models.User{ID: 1})
	})

	client := newTestClient(t, r, "tok-123")
	_, err := client.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.NotEmpty(t, gotRequestID)
}

func TestClient_NoTokenMeansNoAuthHeader(t *testing.T) {
	r := gin.New()
	var gotAuth string
	sawHeader := false
	r.GET("/equipment", func(c *gin.Context) {
		gotAuth = c.GetHeader("Authorization")
		_, sawHeader = c.Request.Header["Authorization"]
		c.JSON(http.StatusOK, []models.EquipmentItem{})
	})

	client := newTestClient(t, r, "")
	_, err := client.ListEquipment(context.Background(), models.CategoryAll)
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
	assert.False(t, sawHeader)
}

func TestClient_ServerErrorMessageVerbatim(t *testing.T) {
	r := gin.New()
	r.POST("/auth/login", func(c *gin.Context) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
	})

	client := newTestClient(t, r, "")
	_, err := client.Login(context.Background(), "a@b.c", "wrong")
	require.Error(t, err)
	assert.True(t, IsUnauthorized(err))
	assert.Equal(t, "Invalid email or password", ErrorMessage(err, "fallback"))
}

func TestClient_UnstructuredErrorGetsFallback(t *testing.T) {
	r := gin.New()
	r.GET("/auth/me", func(c *gin.Context) {
		c.String(http.StatusBadGateway, "<html>bad gateway</html>")
	})

	client := newTestClient(t, r, "tok")
	_, err := client.Me(context.Background())
	require.Error(t, err)
	assert.True(t, IsStatus(err, http.StatusBadGateway))
	assert.Equal(t, "Could not load profile", ErrorMessage(err, "Could not load profile"))
}

func TestListEquipment_BareArray(t *testing.T) {
	r := gin.New()
	r.GET("/equipment", func(c *gin.Context) {
		c.JSON(http.StatusOK, []models.EquipmentItem{{ID: 1, Name: "Kayak"}})
	})

	client := newTestClient(t, r, "")
	items, err := client.ListEquipment(context.Background(), models.CategoryAll)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Kayak", items[0].Name)
}

func TestListEquipment_Envelope(t *testing.T) {
	r := gin.New()
	r.GET("/equipment", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"equipment":   []models.EquipmentItem{{ID: 2, Name: "Tent"}},
			"total_count": 1,
		})
	})

	client := newTestClient(t, r, "")
	items, err := client.ListEquipment(context.Background(), models.CategoryAll)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Tent", items[0].Name)
}

func TestListEquipment_CategoryQueryOmittedForAll(t *testing.T) {
	r := gin.New()
	var gotCategory string
	var hasCategory bool
	r.GET("/equipment", func(c *gin.Context) {
		gotCategory, hasCategory = c.GetQuery("category")
		c.JSON(http.StatusOK, []models.EquipmentItem{})
	})

	client := newTestClient(t, r, "")
	_, err := client.ListEquipment(context.Background(), models.CategoryAll)
	require.NoError(t, err)
	assert.False(t, hasCategory)

	_, err = client.ListEquipment(context.Background(), models.CategoryWater)
	require.NoError(t, err)
	assert.True(t, hasCategory)
	assert.Equal(t, "water", gotCategory)
}

func TestUploadImages_MultipartFieldNames(t *testing.T) {
	r := gin.New()
	var filenames []string
	r.POST("/upload/images", func(c *gin.Context) {
		form, err := c.MultipartForm()
		require.NoError(t, err)
		for _, file := range form.File["files"] {
			filenames = append(filenames, file.Filename)
		}
		c.JSON(http.StatusCreated, gin.H{
			"message":    "uploaded",
			"image_urls": []string{"/static/a.jpg", "/static/b.jpg"},
		})
	})

	client := newTestClient(t, r, "tok")
	urls, err := client.UploadImages(context.Background(), []UploadFile{
		{Filename: "a.jpg", Content: strings.NewReader("aa")},
		{Filename: "b.jpg", Content: strings.NewReader("bb")},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"/static/a.jpg", "/static/b.jpg"}, urls)
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, filenames)
}

func TestUploadImage_SingleFileField(t *testing.T) {
	r := gin.New()
	r.POST("/upload/image", func(c *gin.Context) {
		file, err := c.FormFile("file")
		require.NoError(t, err)
		c.JSON(http.StatusCreated, gin.H{"image_url": "/static/" + file.Filename})
	})

	client := newTestClient(t, r, "tok")
	url, err := client.UploadImage(context.Background(), UploadFile{
		Filename: "avatar.png", Content: strings.NewReader("png"),
	})
	require.NoError(t, err)
	assert.Equal(t, "/static/avatar.png", url)
}

func TestCanReview_ReasonPassthrough(t *testing.T) {
	r := gin.New()
	r.GET("/bookings/5/can-review", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"can_review": false, "reason": "Booking not completed yet"})
	})

	client := newTestClient(t, r, "tok")
	ok, reason, err := client.CanReview(context.Background(), 5)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, "Booking not completed yet", reason)
}

func TestContractURLs(t *testing.T) {
	cfg := &config.Config{APIBaseURL: "https://api.example.com/", RequestTimeout: time.Second}
	client := NewClient(cfg, nil)
	assert.Equal(t, "https://api.example.com/contracts/rental-agreement/12", client.RentalAgreementURL(12))
	assert.Equal(t, "https://api.example.com/contracts/liability-waiver/12", client.LiabilityWaiverURL(12))
	assert.Equal(t, "https://api.example.com/contracts/all/12", client.AllContractsURL(12))
}
