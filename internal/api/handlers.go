package api

import (
	"net/http"

	"localevents-backend/internal/auth"
	"localevents-backend/internal/config"
	"localevents-backend/internal/database"
	"localevents-backend/internal/events"
	"localevents-backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Server struct {
	repo       *events.Repository
	db         *database.Database
	jwtManager *auth.JWTManager
	config     *config.Config
}

func NewServer(repo *events.Repository, db *database.Database, cfg *config.Config) *Server {
	return &Server{
		repo:       repo,
		db:         db,
		jwtManager: auth.NewJWTManager(cfg),
		config:     cfg,
	}
}

// Auth Handlers
func (s *Server) Register(c *gin.Context) {
	if s.db == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "User database not configured"})
		return
	}

	var req models.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	ctx := c.Request.Context()
	query := `
		INSERT INTO users (email, password_hash, name)
		VALUES ($1, $2, $3)
		RETURNING id, email, name, created_at, updated_at
	`

	var user models.User
	err = s.db.QueryRow(ctx, query, req.Email, hashedPassword, req.Name).Scan(
		&user.ID, &user.Email, &user.Name, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	token, err := s.jwtManager.GenerateToken(&user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusCreated, models.LoginResponse{User: user, Token: token})
}

func (s *Server) Login(c *gin.Context) {
	if s.db == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "User database not configured"})
		return
	}

	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	var user models.User

	query := `
		SELECT id, email, password_hash, name, created_at, updated_at
		FROM users
		WHERE email = $1
	`

	err := s.db.QueryRow(ctx, query, req.Email).Scan(
		&user.ID, &user.Email, &user.PasswordHash, &user.Name, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	if !auth.CheckPassword(req.Password, user.PasswordHash) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := s.jwtManager.GenerateToken(&user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, models.LoginResponse{User: user, Token: token})
}

// Event Handlers

// GetEvents refreshes the collection from storage, then applies the
// optional sort and search/filter query parameters.
func (s *Server) GetEvents(c *gin.Context) {
	s.repo.Fetch(c.Request.Context())
	if msg := s.repo.Err(); msg != "" {
		c.JSON(http.StatusBadGateway, gin.H{"error": msg})
		return
	}

	if field := c.Query("sort"); field != "" {
		direction := events.SortDirection(c.DefaultQuery("direction", "asc"))
		s.repo.Sort(events.SortField(field), direction)
	}

	list := s.repo.Events()
	criteria := events.Criteria{
		SearchTerm: c.Query("search"),
		Filter:     events.FilterMode(c.DefaultQuery("filter", "all")),
	}
	list = events.Apply(list, criteria)

	c.JSON(http.StatusOK, gin.H{"events": list, "count": len(list)})
}

func (s *Server) CreateEvent(c *gin.Context) {
	var req models.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.EventDate.IsZero() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "event_date is required"})
		return
	}

	result := s.repo.Create(c.Request.Context(), req)
	if !result.Success {
		c.JSON(http.StatusBadGateway, gin.H{"error": result.Error})
		return
	}

	c.JSON(http.StatusCreated, result.Event)
}

func (s *Server) UpdateEvent(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID"})
		return
	}

	var req models.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := s.repo.Update(c.Request.Context(), eventID, req)
	if !result.Success {
		c.JSON(http.StatusBadGateway, gin.H{"error": result.Error})
		return
	}

	c.JSON(http.StatusOK, result.Event)
}

// DeleteEvent soft-deletes: the row stays in storage with is_active
// flipped off.
func (s *Server) DeleteEvent(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID"})
		return
	}

	result := s.repo.SoftDelete(c.Request.Context(), eventID)
	if !result.Success {
		c.JSON(http.StatusBadGateway, gin.H{"error": result.Error})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Event deleted successfully"})
}
