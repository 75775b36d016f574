package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"civicsync-reporter/controllers"
	"civicsync-reporter/models"
	"civicsync-reporter/repository/mocks"
	"civicsync-reporter/utils"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testSecret = "routes-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

type memCounter map[string]int64

func (m memCounter) Incr(ctx context.Context, key string) *redis.IntCmd {
	m[key]++
	cmd := redis.NewIntCmd(ctx, "incr", key)
	cmd.SetVal(m[key])
	return cmd
}

func (m memCounter) Decr(ctx context.Context, key string) *redis.IntCmd {
	m[key]--
	cmd := redis.NewIntCmd(ctx, "decr", key)
	cmd.SetVal(m[key])
	return cmd
}

func (m memCounter) Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd {
	cmd := redis.NewBoolCmd(ctx, "expire", key, expiration)
	cmd.SetVal(true)
	return cmd
}

func (m memCounter) TTL(ctx context.Context, key string) *redis.DurationCmd {
	cmd := redis.NewDurationCmd(ctx, time.Second, "ttl", key)
	cmd.SetVal(time.Hour)
	return cmd
}

type noImages struct{}

func (noImages) Save(context.Context, *multipart.FileHeader) (string, error) {
	return "", nil
}

func setup(t *testing.T, daily int) (*gin.Engine, *mocks.MockReportStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	reports := mocks.NewMockReportStore(ctrl)
	users := mocks.NewMockUserStore(ctrl)

	r := gin.New()
	HealthRoutes(r)
	AuthRoutes(r, controllers.NewAuthController(users, testSecret, "", false), testSecret)
	ReportRoutes(r, controllers.NewReportController(reports, noImages{}, 5), testSecret, ReportLimit{
		Counter:     memCounter{},
		QueuePrefix: "report_limit",
		Daily:       daily,
	})
	return r, reports
}

func newReportRequest(t *testing.T, token string) *http.Request {
	t.Helper()
	raw, err := json.Marshal(map[string]any{
		"report_type": "pothole",
		"description": "Right outside the school gate",
		"latitude":    24.92,
		"longitude":   67.03,
		"priority":    4,
	})
	require.NoError(t, err)
	req := httptest.NewRequest("POST", "/api/reports", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func TestPing(t *testing.T) {
	r, _ := setup(t, 1)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/ping", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"pong"}`, w.Body.String())
}

func TestReadsArePublic(t *testing.T) {
	r, reports := setup(t, 1)
	reports.EXPECT().FetchAll(gomock.Any()).Return([]models.Report{}, nil).Times(3)

	for _, path := range []string{"/api/reports", "/api/reports/paginated?page=1", "/api/reports/map", "/api/reports/options"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("GET", path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestCreateRequiresAuth(t *testing.T) {
	r, _ := setup(t, 1)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, newReportRequest(t, ""))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateIsRateLimited(t *testing.T) {
	r, reports := setup(t, 1)
	reports.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	token, err := utils.GenerateToken("user-42", testSecret)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, newReportRequest(t, token))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, newReportRequest(t, token))
	require.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), `"retry_after":3600`)
}
