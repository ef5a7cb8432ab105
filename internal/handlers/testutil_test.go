package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/oguzk/teamhub-api/internal/auth"
	"github.com/oguzk/teamhub-api/internal/database"
	"github.com/oguzk/teamhub-api/internal/middleware"
	"github.com/oguzk/teamhub-api/internal/models"
	"github.com/oguzk/teamhub-api/internal/repository"
	"github.com/oguzk/teamhub-api/internal/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testEnv struct {
	db          *gorm.DB
	tokens      *auth.TokenManager
	userRepo    repository.UserRepository
	taskRepo    repository.TaskRepository
	authService *services.AuthService
	taskService *services.TaskService
	email       *services.ConsoleEmailService
	uploadDir   string
	router      *gin.Engine
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A single connection keeps every query on the same in-memory database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	err = db.AutoMigrate(
		&models.User{},
		&models.Task{},
		&models.Announcement{},
		&models.Meeting{},
		&models.UserReport{},
		&models.Setting{},
	)
	require.NoError(t, err)

	database.SetDB(db)

	env := &testEnv{
		db:        db,
		tokens:    auth.NewTokenManager("test-secret", 1),
		uploadDir: t.TempDir(),
		email:     services.NewConsoleEmailService(zap.NewNop()),
	}
	env.userRepo = repository.NewUserRepository(db)
	env.taskRepo = repository.NewTaskRepository(db)
	env.authService = services.NewAuthService(env.userRepo, env.tokens)
	env.taskService = services.NewTaskService(env.taskRepo, env.userRepo)
	env.router = buildRouter(env)
	return env
}

// buildRouter registers the same route groups and middleware chains as the
// server entrypoint.
func buildRouter(env *testEnv) *gin.Engine {
	authHandler := NewAuthHandler(env.authService)
	taskHandler := NewTaskHandler(env.taskService)
	userHandler := NewUserHandler(env.userRepo)
	announcementHandler := NewAnnouncementHandler()
	meetingHandler := NewMeetingHandler()
	reportHandler := NewReportHandler()
	dashboardHandler := NewDashboardHandler(env.taskService)
	uploadHandler := NewUploadHandler(env.userRepo, env.uploadDir)
	emailHandler := NewEmailHandler(env.email)
	settingsHandler := NewSettingsHandler(services.NewSettingsService(env.db))

	requireAuth := middleware.RequireAuth(env.tokens)

	r := gin.New()
	api := r.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/member-login", authHandler.MemberLogin)
	authGroup.POST("/admin-login", authHandler.AdminLogin)
	authGroup.GET("/me", requireAuth, authHandler.GetCurrentUser)

	tasks := api.Group("/tasks")
	tasks.Use(requireAuth)
	tasks.GET("", taskHandler.ListTasks)
	tasks.GET("/my-tasks", taskHandler.MyTasks)
	tasks.GET("/:id", taskHandler.GetTask)
	tasks.POST("", middleware.RequireAdmin(), taskHandler.CreateTask)
	tasks.PUT("/:id", taskHandler.UpdateTask)
	tasks.DELETE("/:id", middleware.RequireAdmin(), taskHandler.DeleteTask)

	announcements := api.Group("/announcements")
	announcements.Use(requireAuth)
	announcements.GET("", announcementHandler.ListAnnouncements)
	announcements.GET("/:id", announcementHandler.GetAnnouncement)
	announcements.POST("", middleware.RequireManager(), announcementHandler.CreateAnnouncement)
	announcements.PUT("/:id", middleware.RequireManager(), announcementHandler.UpdateAnnouncement)
	announcements.DELETE("/:id", middleware.RequireManager(), announcementHandler.DeleteAnnouncement)

	meetings := api.Group("/meetings")
	meetings.Use(requireAuth)
	meetings.GET("", meetingHandler.ListMeetings)
	meetings.GET("/:id", meetingHandler.GetMeeting)
	meetings.POST("", middleware.RequireManager(), meetingHandler.CreateMeeting)
	meetings.PUT("/:id", middleware.RequireManager(), meetingHandler.UpdateMeeting)
	meetings.DELETE("/:id", middleware.RequireManager(), meetingHandler.DeleteMeeting)

	users := api.Group("/users")
	users.Use(requireAuth)
	users.GET("", middleware.RequireManager(), userHandler.ListUsers)
	users.GET("/:id", userHandler.GetUser)
	users.POST("", middleware.RequireAdmin(), userHandler.CreateUser)
	users.PUT("/:id", userHandler.UpdateUser)
	users.DELETE("/:id", middleware.RequireAdmin(), userHandler.DeleteUser)

	reports := api.Group("/user-reports")
	reports.Use(requireAuth)
	reports.GET("", reportHandler.ListReports)
	reports.GET("/:id", reportHandler.GetReport)
	reports.POST("", reportHandler.CreateReport)
	reports.PUT("/:id", middleware.RequireManager(), reportHandler.UpdateReport)
	reports.DELETE("/:id", middleware.RequireAdmin(), reportHandler.DeleteReport)

	upload := api.Group("/upload")
	upload.Use(requireAuth)
	upload.POST("/profile-picture/:userId", uploadHandler.UploadProfilePicture)

	email := api.Group("/email")
	email.Use(requireAuth, middleware.RequireManager())
	email.POST("/send-notification", emailHandler.SendNotification)
	email.POST("/send-meeting-invitation", emailHandler.SendMeetingInvitation)

	dashboard := api.Group("/dashboard")
	dashboard.Use(requireAuth)
	dashboard.GET("/stats", middleware.RequireManager(), dashboardHandler.GetStats)
	dashboard.GET("/member", dashboardHandler.GetMemberDashboard)
	dashboard.GET("/activities", dashboardHandler.GetActivities)

	settings := api.Group("/settings")
	settings.Use(requireAuth)
	settings.GET("", settingsHandler.GetSettings)
	settings.PUT("", middleware.RequireAdmin(), settingsHandler.UpdateSettings)

	return r
}

// createUser inserts a user directly and returns it with a signed token.
func (env *testEnv) createUser(t *testing.T, firstName, lastName, email string, role models.UserRole, department string) (models.User, string) {
	t.Helper()

	hash, err := auth.HashPassword("supersecret")
	require.NoError(t, err)

	user := models.User{
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		Department:   department,
		IsActive:     true,
	}
	require.NoError(t, env.db.Create(&user).Error)

	token, err := env.tokens.Sign(&user)
	require.NoError(t, err)
	return user, token
}

// doJSON performs a JSON request against the test router.
func (env *testEnv) doJSON(t *testing.T, method, path, token string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

// decodeData unmarshals the envelope's data field into out.
func decodeData(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()

	var envelope struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
		Message string          `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.True(t, envelope.Success, "expected success envelope, got message: %s", envelope.Message)
	if out != nil {
		require.NoError(t, json.Unmarshal(envelope.Data, out))
	}
}

func requireFailure(t *testing.T, w *httptest.ResponseRecorder, wantStatus int) {
	t.Helper()

	require.Equal(t, wantStatus, w.Code, "body: %s", w.Body.String())
	var envelope struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.False(t, envelope.Success)
	require.NotEmpty(t, envelope.Message)
}
