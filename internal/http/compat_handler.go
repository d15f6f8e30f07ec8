package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/KashAmir418/Numerio-sub000/internal/domain"
	"github.com/KashAmir418/Numerio-sub000/internal/repository"
	"github.com/KashAmir418/Numerio-sub000/internal/service"
)

// CompatHandler mantiene dependencias para los endpoints de compatibilidad.
type CompatHandler struct {
	logger   *zap.Logger
	svc      *service.CompatibilityService
	cache    service.ResultCache
	readings repository.ReadingRepository
}

// NewCompatHandler crea una instancia de CompatHandler con las dependencias
// necesarias.
func NewCompatHandler(
	logger *zap.Logger,
	svc *service.CompatibilityService,
	cache service.ResultCache,
	readings repository.ReadingRepository,
) *CompatHandler {
	return &CompatHandler{
		logger:   logger,
		svc:      svc,
		cache:    cache,
		readings: readings,
	}
}

type compatRequest struct {
	DateA string `json:"date_a" binding:"required"`
	DateB string `json:"date_b" binding:"required"`
	NameA string `json:"name_a"`
	NameB string `json:"name_b"`
}

// Compute maneja POST /compatibility. El resultado es determinista dentro
// del día ambiente, así que se cachea hasta medianoche.
func (h *CompatHandler) Compute(c *gin.Context) {
	var req compatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid compatibility request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	now := time.Now()
	key := service.CacheKey(req.DateA, req.DateB, req.NameA, req.NameB, now.Format("2006-01-02"))
	if h.cache != nil {
		if cached, ok, err := h.cache.Get(key); err != nil {
			h.logger.Warn("result cache get failed", zap.Error(err))
		} else if ok {
			c.JSON(http.StatusOK, gin.H{"result": cached})
			return
		}
	}

	result, err := h.svc.ComputeAt(req.DateA, req.DateB, req.NameA, req.NameB, now)
	if err != nil {
		h.writeComputeError(c, err)
		return
	}

	if h.cache != nil {
		if err := h.cache.Set(key, result, service.TTLUntilMidnight(now)); err != nil {
			h.logger.Warn("result cache set failed", zap.Error(err))
		}
	}
	c.JSON(http.StatusOK, gin.H{"result": result})
}

// Profile maneja GET /profile?date=YYYY-MM-DD.
func (h *CompatHandler) Profile(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date is required"})
		return
	}
	profile, err := h.svc.Profile(date)
	if err != nil {
		h.writeComputeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

// CreateReading maneja POST /readings: calcula y persiste la lectura para
// compartirla por id.
func (h *CompatHandler) CreateReading(c *gin.Context) {
	var req compatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid reading request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	result, err := h.svc.Compute(req.DateA, req.DateB, req.NameA, req.NameB)
	if err != nil {
		h.writeComputeError(c, err)
		return
	}

	reading := domain.Reading{
		ID:        uuid.NewString(),
		DateA:     req.DateA,
		DateB:     req.DateB,
		NameA:     req.NameA,
		NameB:     req.NameB,
		Result:    result,
		CreatedAt: time.Now().UTC(),
	}
	if err := h.readings.Create(c.Request.Context(), reading); err != nil {
		h.logger.Error("create reading failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save reading"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"reading": reading})
}

// GetReading maneja GET /readings/:id.
func (h *CompatHandler) GetReading(c *gin.Context) {
	id := c.Param("id")
	reading, err := h.readings.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "reading not found"})
			return
		}
		h.logger.Error("get reading failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch reading"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reading": reading})
}

// writeComputeError mapea los errores de validación del motor a 400.
func (h *CompatHandler) writeComputeError(c *gin.Context, err error) {
	if errors.Is(err, domain.ErrInvalidDateFormat) || errors.Is(err, domain.ErrDateOutOfRange) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.logger.Error("compute failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "could not compute result"})
}
