package testkit

import (
	"bytes"
	"context"
	"io"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/campus-exchange/config"
	"github.com/oksasatya/campus-exchange/internal/container"
	"github.com/oksasatya/campus-exchange/internal/domain/entity"
	"github.com/oksasatya/campus-exchange/internal/domain/repository/repositoryfakes"
	"github.com/oksasatya/campus-exchange/internal/router"
	"github.com/oksasatya/campus-exchange/pkg/helpers"
	"github.com/oksasatya/campus-exchange/pkg/mailer/mailerfakes"
)

const AdminReviewEmail = "id-review@campus-exchange.test"

// Upload is one object written to a MemoryObjectStore.
type Upload struct {
	Path        string
	ContentType string
	Content     []byte
}

// MemoryObjectStore records uploads and returns a fake public URL.
type MemoryObjectStore struct {
	mu      sync.Mutex
	Uploads []Upload
	Err     error
}

func (s *MemoryObjectStore) Upload(_ context.Context, objectPath, contentType string, r io.Reader) (string, error) {
	if s.Err != nil {
		return "", s.Err
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Uploads = append(s.Uploads, Upload{Path: objectPath, ContentType: contentType, Content: buf.Bytes()})
	return helpers.PublicURL("test-bucket", objectPath), nil
}

// App is the HTTP stack wired to in-memory collaborators.
type App struct {
	Engine    *gin.Engine
	Config    *config.Config
	JWT       *helpers.JWTManager
	Store     *MemoryStore
	Repo      *repositoryfakes.FakeUserRepository
	Publisher *mailerfakes.FakePublisher
	Objects   *MemoryObjectStore
}

// TestConfig is config.Load with test-friendly overrides.
func TestConfig() *config.Config {
	cfg := config.Load()
	cfg.Env = "test"
	cfg.GinMode = gin.TestMode
	cfg.MailSendEnabled = true
	cfg.AdminReviewEmail = AdminReviewEmail
	cfg.RateLimitEnabled = false
	cfg.DebugMetricsEnabled = true
	cfg.HTTPLogEnabled = false
	return cfg
}

// NewApp builds the router over a MemoryStore seeded with users.
func NewApp(users ...*entity.User) *App {
	gin.SetMode(gin.TestMode)
	container.Reset()

	cfg := TestConfig()
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	store := NewMemoryStore(users...)
	repo := &repositoryfakes.FakeUserRepository{}
	store.Wire(repo)

	app := &App{
		Config:    cfg,
		JWT:       helpers.NewJWTManager("test-access", "test-refresh", cfg.AccessTTL, cfg.RefreshTTL),
		Store:     store,
		Repo:      repo,
		Publisher: &mailerfakes.FakePublisher{},
		Objects:   &MemoryObjectStore{},
	}

	container.SetConfig(cfg)
	container.SetLogger(logger)
	container.SetJWT(app.JWT)
	container.SetUserRepo(repo)
	container.SetPublisher(app.Publisher)
	container.SetObjectStore(app.Objects)

	app.Engine = router.NewEngine()
	return app
}
