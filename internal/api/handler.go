// Package api exposes one appliance over a small JSON REST interface.
package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jattkaim/daikinhttp"
)

// Device is the subset of *daikinhttp.Client the handlers use.
type Device interface {
	GetGeneralInfo(ctx context.Context) (*daikinhttp.GeneralInfo, error)
	GetSensorInfo(ctx context.Context) (*daikinhttp.SensorInfo, error)
	GetControlInfo(ctx context.Context) (*daikinhttp.ControlInfo, error)
	SetControlInfo(ctx context.Context, settings daikinhttp.ControlSettings) error
	Reboot(ctx context.Context) error
}

// Handler wires HTTP layer to the appliance client and logging.
type Handler struct {
	device Device
	log    *zap.SugaredLogger
}

func NewHandler(device Device, log *zap.SugaredLogger) *Handler {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Handler{device: device, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/health", h.health)

	api := router.Group("/api/v1")
	{
		api.GET("/info", h.getInfo)
		api.GET("/sensor", h.getSensor)
		api.GET("/control", h.getControl)
		api.PUT("/control", h.setControl)
		api.POST("/reboot", h.reboot)
	}

	return router
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) getInfo(c *gin.Context) {
	info, err := h.device.GetGeneralInfo(c.Request.Context())
	if err != nil {
		h.fail(c, "failed to get basic info", err)
		return
	}
	c.JSON(http.StatusOK, info)
}

func (h *Handler) getSensor(c *gin.Context) {
	info, err := h.device.GetSensorInfo(c.Request.Context())
	if err != nil {
		h.fail(c, "failed to get sensor info", err)
		return
	}
	c.JSON(http.StatusOK, info)
}

func (h *Handler) getControl(c *gin.Context) {
	info, err := h.device.GetControlInfo(c.Request.Context())
	if err != nil {
		h.fail(c, "failed to get control info", err)
		return
	}
	c.JSON(http.StatusOK, info)
}

// controlRequest is the body of PUT /api/v1/control. Omitted fields are left unchanged.
type controlRequest struct {
	Power          *bool    `json:"power"`
	Mode           *string  `json:"mode"`
	TargetTemp     *float64 `json:"target_temp"`
	TargetHumidity *float64 `json:"target_humidity"`
	FanRate        *string  `json:"fan_rate"`
	FanDir         *string  `json:"fan_dir"`
}

func (r controlRequest) settings() (daikinhttp.ControlSettings, error) {
	s := daikinhttp.ControlSettings{
		Power:          r.Power,
		TargetTemp:     r.TargetTemp,
		TargetHumidity: r.TargetHumidity,
	}
	if r.Mode != nil {
		mode, err := daikinhttp.ParseMode(*r.Mode)
		if err != nil {
			return s, err
		}
		s.Mode = daikinhttp.Int(mode)
	}
	if r.FanRate != nil {
		s.FanRate = daikinhttp.String(daikinhttp.ParseFanRate(*r.FanRate))
	}
	if r.FanDir != nil {
		s.FanDir = daikinhttp.String(daikinhttp.ParseFanDir(*r.FanDir))
	}
	return s, nil
}

func (h *Handler) setControl(c *gin.Context) {
	var req controlRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body: " + err.Error()})
		return
	}

	settings, err := req.settings()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if settings.IsEmpty() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no settings given"})
		return
	}

	ctx := c.Request.Context()
	if err := h.device.SetControlInfo(ctx, settings); err != nil {
		h.fail(c, "failed to set control info", err)
		return
	}

	info, err := h.device.GetControlInfo(ctx)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"status": "updated"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated", "control": info})
}

func (h *Handler) reboot(c *gin.Context) {
	if err := h.device.Reboot(c.Request.Context()); err != nil {
		h.fail(c, "failed to reboot", err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"status": "rebooting"})
}

// fail logs err and maps it to an HTTP status.
func (h *Handler) fail(c *gin.Context, msg string, err error) {
	code := statusFor(err)
	h.log.Errorw(msg, "err", err, "status", code)
	c.JSON(code, gin.H{"error": msg, "detail": err.Error()})
}

func statusFor(err error) int {
	var (
		paramErr *daikinhttp.ParameterError
		authErr  *daikinhttp.AuthenticationError
		connErr  *daikinhttp.ConnectionError
	)
	switch {
	case errors.As(err, &paramErr):
		return http.StatusUnprocessableEntity
	case errors.As(err, &authErr):
		return http.StatusForbidden
	case errors.As(err, &connErr):
		return http.StatusGatewayTimeout
	default:
		return http.StatusBadGateway
	}
}
