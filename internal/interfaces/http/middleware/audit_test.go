package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	auditapp "github.com/RaminduDJay/supply-chain-management/internal/application/audit"
	"github.com/RaminduDJay/supply-chain-management/internal/domain/audit"
)

// captureAuditRepo records the context each write arrived with.
type captureAuditRepo struct {
	ctx     context.Context
	entries []*audit.Entry
}

func (r *captureAuditRepo) Create(ctx context.Context, entry *audit.Entry) error {
	r.ctx = ctx
	r.entries = append(r.entries, entry)
	return nil
}

func (r *captureAuditRepo) FindByUser(ctx context.Context, userID uuid.UUID, from, to time.Time, limit int) ([]*audit.Entry, error) {
	return nil, nil
}

func (r *captureAuditRepo) FindByResource(ctx context.Context, resource, targetID string, limit int) ([]*audit.Entry, error) {
	return nil, nil
}

func auditTestEngine(repo *captureAuditRepo) *gin.Engine {
	service := auditapp.NewService(repo, zap.NewNop())
	engine := gin.New()
	engine.POST("/orders/:id/cancel", AuditLog(service, "order"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	engine.GET("/orders/:id", AuditLog(service, "order"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return engine
}

func TestAuditLogRecordsMutation(t *testing.T) {
	repo := &captureAuditRepo{}
	engine := auditTestEngine(repo)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/orders/abc/cancel", nil))

	require.Len(t, repo.entries, 1)
	assert.Equal(t, "POST /orders/:id/cancel", repo.entries[0].Action)
	assert.Equal(t, "order", repo.entries[0].Resource)
	assert.Equal(t, "abc", repo.entries[0].TargetID)
}

func TestAuditLogSkipsReads(t *testing.T) {
	repo := &captureAuditRepo{}
	engine := auditTestEngine(repo)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/orders/abc", nil))

	assert.Empty(t, repo.entries)
}

func TestAuditLogSurvivesClientDisconnect(t *testing.T) {
	repo := &captureAuditRepo{}
	engine := auditTestEngine(repo)

	ctx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest(http.MethodPost, "/orders/abc/cancel", nil).WithContext(ctx)
	cancel()

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	require.Len(t, repo.entries, 1)
	require.NotNil(t, repo.ctx)
	assert.NoError(t, repo.ctx.Err())
}
