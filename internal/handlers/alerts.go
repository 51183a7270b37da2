package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"typewise_alert/internal/models"
	"typewise_alert/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	statusOK = "ok"

	errMissingTarget  = "target is required"
	errMissingCooling = "battery.cooling_type is required"
	errMissingTemp    = "temperature_c is required"
)

type batteryRequest struct {
	CoolingType *models.CoolingType `json:"cooling_type"`
	Brand       string              `json:"brand,omitempty"`
}

// alertRequest is shared by the HTTP and WebSocket endpoints.
type alertRequest struct {
	Target       *models.AlertTarget `json:"target"`
	Battery      batteryRequest      `json:"battery"`
	TemperatureC *float64            `json:"temperature_c"`
}

type classifyRequest struct {
	CoolingType  *models.CoolingType `json:"cooling_type" binding:"required"`
	TemperatureC *float64            `json:"temperature_c" binding:"required"`
}

// AlertRequest is an exported model for Swagger docs of the alert payload.
type AlertRequest struct {
	// Sink to notify. Allowed: TO_CONTROLLER, TO_EMAIL
	Target string `json:"target" example:"TO_EMAIL"`
	// Battery descriptor
	Battery struct {
		CoolingType string `json:"cooling_type" example:"HI_ACTIVE_COOLING"`
		Brand       string `json:"brand" example:"SampleBrand"`
	} `json:"battery"`
	// Reading in Celsius
	TemperatureC float64 `json:"temperature_c" example:"50"`
}

func (r alertRequest) validate() error {
	switch {
	case r.Target == nil:
		return errors.New(errMissingTarget)
	case r.Battery.CoolingType == nil:
		return errors.New(errMissingCooling)
	case r.TemperatureC == nil:
		return errors.New(errMissingTemp)
	}
	return nil
}

func (r alertRequest) battery() models.BatteryCharacter {
	return models.NewBatteryCharacter(*r.Battery.CoolingType, r.Battery.Brand)
}

// statusFor maps an error to its HTTP status and response message.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrInvalidCoolingType), errors.Is(err, models.ErrUnknownCoolingType):
		return http.StatusBadRequest, service.Diagnostic(service.ErrInvalidCoolingType)
	case errors.Is(err, service.ErrInvalidAlertTarget), errors.Is(err, models.ErrUnknownAlertTarget):
		return http.StatusUnprocessableEntity, service.Diagnostic(service.ErrInvalidAlertTarget)
	case errors.Is(err, service.ErrInvalidBreachType):
		return http.StatusUnprocessableEntity, service.Diagnostic(err)
	default:
		return http.StatusInternalServerError, service.Diagnostic(err)
	}
}

func (h *Handler) respondError(c *gin.Context, err error, logKey string, kv ...interface{}) {
	code, msg := statusFor(err)
	if h.log != nil {
		fields := append([]interface{}{"err", err, "status", code}, kv...)
		if sub, ok := c.Get(ctxSubject); ok {
			fields = append(fields, "subject", sub)
		}
		if code >= http.StatusInternalServerError {
			h.log.Errorw(logKey, fields...)
		} else {
			h.log.Infow(logKey, fields...)
		}
	}
	c.JSON(code, gin.H{"error": msg})
}

// bindJSON decodes the body into dst; decoding errors of enum fields keep
// their taxonomy status, anything else is a 400.
func (h *Handler) bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		code, msg := statusFor(err)
		if code == http.StatusInternalServerError {
			code, msg = http.StatusBadRequest, "invalid body: "+err.Error()
		}
		if h.log != nil {
			h.log.Infow("bad_request_body", "err", err)
		}
		c.JSON(code, gin.H{"error": msg})
		return false
	}
	return true
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": statusOK})
}

// @Summary      List temperature limits
// @Tags         limits
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "count, limits"
// @Router       /api/v1/limits [get]
// @Security     BearerAuth
func (h *Handler) listLimits(c *gin.Context) {
	table := h.services.Limits.Table()
	c.JSON(http.StatusOK, gin.H{"count": len(table), "limits": table})
}

// @Summary      Get limits for one cooling type
// @Tags         limits
// @Produce      json
// @Param        cooling  path  string  true  "Cooling type"  Enums(PASSIVE_COOLING,HI_ACTIVE_COOLING,MED_ACTIVE_COOLING)
// @Success      200  {object}  service.LimitEntry
// @Failure      400  {object}  map[string]string
// @Router       /api/v1/limits/{cooling} [get]
// @Security     BearerAuth
func (h *Handler) getLimits(c *gin.Context) {
	coolingType, err := models.ParseCoolingType(c.Param("cooling"))
	if err != nil {
		h.respondError(c, err, "limits_bad_cooling_type", "cooling", c.Param("cooling"))
		return
	}
	limits, err := h.services.Limits.GetLimits(coolingType)
	if err != nil {
		h.respondError(c, err, "limits_lookup_failed", "cooling", coolingType.String())
		return
	}
	c.JSON(http.StatusOK, service.LimitEntry{CoolingType: coolingType, Limits: limits})
}

// @Summary      Classify a reading
// @Tags         alerts
// @Accept       json
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "cooling_type, temperature_c, breach"
// @Failure      400  {object}  map[string]string
// @Router       /api/v1/classify [post]
// @Security     BearerAuth
func (h *Handler) classify(c *gin.Context) {
	var req classifyRequest
	if !h.bindJSON(c, &req) {
		return
	}
	breach, err := h.services.Classifier.ClassifyBreach(*req.CoolingType, *req.TemperatureC)
	if err != nil {
		h.respondError(c, err, "classify_failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"cooling_type":  *req.CoolingType,
		"temperature_c": *req.TemperatureC,
		"breach":        breach,
	})
}

// @Summary      Classify a reading and notify the target sink
// @Description  Invalid cooling type is rejected before any sink runs (400). Unknown targets are reported with 422.
// @Tags         alerts
// @Accept       json
// @Produce      json
// @Param        body  body      AlertRequest  true  "Alert payload"
// @Success      200   {object}  models.Alert
// @Failure      400   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /api/v1/alerts [post]
// @Security     BearerAuth
func (h *Handler) checkAndAlert(c *gin.Context) {
	var req alertRequest
	if !h.bindJSON(c, &req) {
		return
	}
	if err := req.validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	alert, err := h.services.Alerter.CheckAndAlert(c.Request.Context(), *req.Target, req.battery(), *req.TemperatureC)
	if err != nil {
		h.respondError(c, err, "alert_failed", "alert_id", alert.ID)
		return
	}
	c.JSON(http.StatusOK, alert)
}

func decodeAlertRequest(data []byte, dst *alertRequest) error {
	return json.Unmarshal(data, dst)
}
