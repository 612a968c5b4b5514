package handlers

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/SscSPs/travel_desk_backend/internal/core/domain"
	portssvc "github.com/SscSPs/travel_desk_backend/internal/core/ports/services"
	"github.com/SscSPs/travel_desk_backend/internal/dto"
	"github.com/SscSPs/travel_desk_backend/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

const maxUploadBytes = 10 << 20

// residenceHandler handles HTTP requests for residence cases.
type residenceHandler struct {
	residenceService portssvc.ResidenceSvcFacade
}

func newResidenceHandler(rs portssvc.ResidenceSvcFacade) *residenceHandler {
	return &residenceHandler{residenceService: rs}
}

// RegisterResidenceRoutes registers the residence workflow routes on rg.
func RegisterResidenceRoutes(rg *gin.RouterGroup, residenceService portssvc.ResidenceSvcFacade) {
	h := newResidenceHandler(residenceService)

	residences := rg.Group("/residences")
	{
		residences.POST("", h.openResidence)
		residences.GET("/steps/:kind", h.listSteps)

		record := residences.Group("/:recordID")
		record.GET("", h.getRecordState)
		record.PUT("/remarks", h.updateRemarks)
		record.GET("/steps/:stepCode/eligibility", h.evaluateEligibility)
		record.POST("/steps/:stepCode/commit", h.commitStep)
		record.GET("/destinations", h.listDestinations)
		record.POST("/transitions", h.transition)
		record.GET("/transitions", h.listTransitions)
		record.PUT("/checkpoints/:stepCode", h.setCheckpointStatus)
	}
}

// requestContext returns the request logger and the authenticated actor. It
// writes the 401 itself when no actor is present.
func requestContext(c *gin.Context) (*slog.Logger, string, bool) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Actor ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return logger, "", false
	}
	return logger, actorID, true
}

func recordIDParam(c *gin.Context, logger *slog.Logger) (int64, bool) {
	raw := c.Param("recordID")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		logger.Warn("Invalid record ID", slog.String("record_id", raw))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "record ID must be a positive integer"})
		return 0, false
	}
	return id, true
}

// openResidence godoc
// @Summary Open a residence case
// @Description Creates a primary or family residence case positioned on the first step of its kind
// @Tags residences
// @Accept  json
// @Produce  json
// @Param   residence body dto.OpenResidenceRequest true "Case details"
// @Success 201 {object} dto.ApplicationResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to open residence"
// @Security BearerAuth
// @Router /residences [post]
func (h *residenceHandler) openResidence(c *gin.Context) {
	logger, actorID, ok := requestContext(c)
	if !ok {
		return
	}
	var req dto.OpenResidenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	app, err := h.residenceService.OpenRecord(c.Request.Context(), req, actorID)
	if err != nil {
		respondServiceError(c, logger, err, "open residence")
		return
	}

	logger.Info("Residence opened", slog.Int64("record_id", app.ID), slog.String("kind", string(app.Kind)))
	c.JSON(http.StatusCreated, dto.ToApplicationResponse(app))
}

// listSteps godoc
// @Summary List the steps of a residence kind
// @Description Returns the ordered step catalog with field schemas and default costs
// @Tags residences
// @Produce  json
// @Param   kind path string true "Residence kind" Enums(primary, family)
// @Success 200 {array} dto.StepResponse
// @Failure 400 {object} dto.ErrorResponse "Unknown kind"
// @Security BearerAuth
// @Router /residences/steps/{kind} [get]
func (h *residenceHandler) listSteps(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	steps, err := h.residenceService.ListSteps(c.Request.Context(), domain.ResidenceKind(c.Param("kind")))
	if err != nil {
		respondServiceError(c, logger, err, "list steps")
		return
	}
	c.JSON(http.StatusOK, dto.ToStepResponses(steps))
}

// getRecordState godoc
// @Summary Get a residence case
// @Description Returns the case with its ledger ordered by step position
// @Tags residences
// @Produce  json
// @Param   recordID path int true "Record ID"
// @Success 200 {object} dto.RecordStateResponse
// @Failure 404 {object} dto.ErrorResponse "Record not found"
// @Security BearerAuth
// @Router /residences/{recordID} [get]
func (h *residenceHandler) getRecordState(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := recordIDParam(c, logger)
	if !ok {
		return
	}
	state, err := h.residenceService.GetRecordState(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, logger, err, "get residence")
		return
	}
	c.JSON(http.StatusOK, dto.ToRecordStateResponse(state))
}

// evaluateEligibility godoc
// @Summary Check the payment threshold of a step
// @Description Advisory check of the paid amount against the step's threshold
// @Tags residences
// @Produce  json
// @Param   recordID path int true "Record ID"
// @Param   stepCode path string true "Step code"
// @Success 200 {object} dto.EligibilityResponse
// @Failure 400 {object} dto.ErrorResponse "Unknown step"
// @Failure 404 {object} dto.ErrorResponse "Record not found"
// @Security BearerAuth
// @Router /residences/{recordID}/steps/{stepCode}/eligibility [get]
func (h *residenceHandler) evaluateEligibility(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := recordIDParam(c, logger)
	if !ok {
		return
	}
	result, err := h.residenceService.EvaluateEligibility(c.Request.Context(), id, c.Param("stepCode"))
	if err != nil {
		respondServiceError(c, logger, err, "evaluate eligibility")
		return
	}
	c.JSON(http.StatusOK, dto.ToEligibilityResponse(result))
}

// commitStep godoc
// @Summary Record the transaction of the current step
// @Description Accepts JSON, or multipart/form-data when a document is attached. Every invalid field is reported at once.
// @Tags residences
// @Accept  json,mpfd
// @Produce  json
// @Param   recordID path int true "Record ID"
// @Param   stepCode path string true "Step code"
// @Param   transaction body dto.CommitStepRequest false "Step transaction (JSON form)"
// @Param   file formData file false "Step document (multipart form)"
// @Success 200 {object} dto.CommitStepResponse
// @Failure 400 {object} dto.ErrorResponse "Field errors"
// @Failure 404 {object} dto.ErrorResponse "Record not found"
// @Failure 409 {object} dto.ErrorResponse "Not the current step, or concurrent change"
// @Failure 422 {object} dto.ErrorResponse "Payment threshold not met"
// @Security BearerAuth
// @Router /residences/{recordID}/steps/{stepCode}/commit [post]
func (h *residenceHandler) commitStep(c *gin.Context) {
	logger, actorID, ok := requestContext(c)
	if !ok {
		return
	}
	id, ok := recordIDParam(c, logger)
	if !ok {
		return
	}
	stepCode := c.Param("stepCode")

	var payload domain.StepPayload
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		p, fieldErrs, err := payloadFromForm(c)
		if err != nil {
			respondBindError(c, logger, err)
			return
		}
		if len(fieldErrs) > 0 {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "validation failed", Fields: fieldErrs})
			return
		}
		payload = p
	} else {
		var req dto.CommitStepRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, logger, err)
			return
		}
		payload = req.ToStepPayload()
	}

	result, err := h.residenceService.CommitStep(c.Request.Context(), id, stepCode, payload, actorID)
	if err != nil {
		respondServiceError(c, logger, err, "commit step")
		return
	}

	logger.Info("Step committed", slog.Int64("record_id", id), slog.String("step", stepCode), slog.Int("completed_step", result.CompletedStep))
	c.JSON(http.StatusOK, dto.ToCommitStepResponse(result))
}

// payloadFromForm reads a multipart step transaction. Malformed numbers are
// returned as field errors, keyed like the step's field schema.
func payloadFromForm(c *gin.Context) (domain.StepPayload, map[string]string, error) {
	var p domain.StepPayload
	fieldErrs := make(map[string]string)

	if raw := c.PostForm("cost"); raw != "" {
		d, err := decimal.NewFromString(raw)
		if err != nil {
			fieldErrs["cost"] = "must be a number"
		} else {
			p.Cost = &d
		}
	}
	p.CurrencyID = formInt(c, "currencyId", "currency_id", fieldErrs)
	p.ChargeTargetID = formInt(c, "chargeTargetId", "charge_target", fieldErrs)
	if raw := c.PostForm("chargeTargetType"); raw != "" {
		t := domain.ChargeTargetType(raw)
		p.ChargeTargetType = &t
	}
	if details := c.PostFormMap("details"); len(details) > 0 {
		p.Details = details
	}
	p.MarkComplete, _ = strconv.ParseBool(c.PostForm("markComplete"))

	fh, err := c.FormFile("file")
	if err == http.ErrMissingFile {
		return p, fieldErrs, nil
	}
	if err != nil {
		return p, nil, err
	}
	if fh.Size > maxUploadBytes {
		fieldErrs["file"] = fmt.Sprintf("must be at most %d bytes", maxUploadBytes)
		return p, fieldErrs, nil
	}
	f, err := fh.Open()
	if err != nil {
		return p, nil, err
	}
	defer f.Close()
	content, err := io.ReadAll(io.LimitReader(f, maxUploadBytes+1))
	if err != nil {
		return p, nil, err
	}
	p.File = &domain.Attachment{
		FileName:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Content:     content,
	}
	return p, fieldErrs, nil
}

func formInt(c *gin.Context, name, field string, fieldErrs map[string]string) *int64 {
	raw := c.PostForm(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		fieldErrs[field] = "must be an integer"
		return nil
	}
	return &v
}

// listDestinations godoc
// @Summary List legal cursor destinations
// @Description Returns every step the cursor may move to, split into backward and forward of the current step
// @Tags residences
// @Produce  json
// @Param   recordID path int true "Record ID"
// @Success 200 {object} dto.DestinationsResponse
// @Failure 404 {object} dto.ErrorResponse "Record not found"
// @Security BearerAuth
// @Router /residences/{recordID}/destinations [get]
func (h *residenceHandler) listDestinations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := recordIDParam(c, logger)
	if !ok {
		return
	}
	dests, err := h.residenceService.ListLegalDestinations(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, logger, err, "list destinations")
		return
	}
	c.JSON(http.StatusOK, dto.ToDestinationsResponse(dests))
}

// transition godoc
// @Summary Move the working cursor
// @Description Moves the cursor to a legal destination. Send the version returned with the destinations to detect concurrent changes.
// @Tags residences
// @Accept  json
// @Produce  json
// @Param   recordID path int true "Record ID"
// @Param   transition body dto.TransitionRequest true "Target step"
// @Success 200 {object} dto.CursorResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Record not found"
// @Failure 409 {object} dto.ErrorResponse "Illegal move, or concurrent change"
// @Security BearerAuth
// @Router /residences/{recordID}/transitions [post]
func (h *residenceHandler) transition(c *gin.Context) {
	logger, actorID, ok := requestContext(c)
	if !ok {
		return
	}
	id, ok := recordIDParam(c, logger)
	if !ok {
		return
	}
	var req dto.TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	app, err := h.residenceService.TransitionTo(c.Request.Context(), id, domain.TransitionRequest{
		TargetStep:      req.TargetStep,
		ExpectedVersion: req.ExpectedVersion,
	}, actorID)
	if err != nil {
		respondServiceError(c, logger, err, "move cursor")
		return
	}

	logger.Info("Cursor moved", slog.Int64("record_id", id), slog.String("to", app.CurrentStep))
	c.JSON(http.StatusOK, dto.ToCursorResponse(app))
}

// listTransitions godoc
// @Summary List the cursor-move history
// @Tags residences
// @Produce  json
// @Param   recordID path int true "Record ID"
// @Success 200 {array} dto.TransitionEntryResponse
// @Failure 404 {object} dto.ErrorResponse "Record not found"
// @Security BearerAuth
// @Router /residences/{recordID}/transitions [get]
func (h *residenceHandler) listTransitions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := recordIDParam(c, logger)
	if !ok {
		return
	}
	entries, err := h.residenceService.ListTransitions(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, logger, err, "list transitions")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransitionEntryResponses(entries))
}

// setCheckpointStatus godoc
// @Summary Accept or reject a checkpoint
// @Description Accepting moves the cursor to the checkpoint's next step, rejecting moves it back to its origin step
// @Tags residences
// @Accept  json
// @Produce  json
// @Param   recordID path int true "Record ID"
// @Param   stepCode path string true "Checkpoint step code"
// @Param   decision body dto.CheckpointStatusRequest true "Decision"
// @Success 200 {object} dto.CursorResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Record not found"
// @Failure 409 {object} dto.ErrorResponse "Not a checkpoint, or not the current step"
// @Security BearerAuth
// @Router /residences/{recordID}/checkpoints/{stepCode} [put]
func (h *residenceHandler) setCheckpointStatus(c *gin.Context) {
	logger, actorID, ok := requestContext(c)
	if !ok {
		return
	}
	id, ok := recordIDParam(c, logger)
	if !ok {
		return
	}
	var req dto.CheckpointStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	app, err := h.residenceService.SetCheckpointStatus(c.Request.Context(), id, c.Param("stepCode"), domain.CheckpointStatus(req.Status), actorID)
	if err != nil {
		respondServiceError(c, logger, err, "set checkpoint status")
		return
	}

	logger.Info("Checkpoint decided", slog.Int64("record_id", id), slog.String("status", req.Status), slog.String("to", app.CurrentStep))
	c.JSON(http.StatusOK, dto.ToCursorResponse(app))
}

// updateRemarks godoc
// @Summary Update the remarks of a case
// @Tags residences
// @Accept  json
// @Produce  json
// @Param   recordID path int true "Record ID"
// @Param   remarks body dto.UpdateRemarksRequest true "Remarks"
// @Success 200 {object} dto.ApplicationResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Record not found"
// @Failure 409 {object} dto.ErrorResponse "Concurrent change"
// @Security BearerAuth
// @Router /residences/{recordID}/remarks [put]
func (h *residenceHandler) updateRemarks(c *gin.Context) {
	logger, actorID, ok := requestContext(c)
	if !ok {
		return
	}
	id, ok := recordIDParam(c, logger)
	if !ok {
		return
	}
	var req dto.UpdateRemarksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	app, err := h.residenceService.UpdateRemarks(c.Request.Context(), id, req, actorID)
	if err != nil {
		respondServiceError(c, logger, err, "update remarks")
		return
	}
	c.JSON(http.StatusOK, dto.ToApplicationResponse(app))
}
