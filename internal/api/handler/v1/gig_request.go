package v1

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gleeclub/grease-api/internal/api/handler/v1/request"
	"github.com/gleeclub/grease-api/internal/api/handler/v1/response"
	"github.com/gleeclub/grease-api/internal/domain"
)

type GigRequestService interface {
	Submit(ctx context.Context, newRequest domain.NewGigRequest) (domain.GigRequest, error)
	Load(ctx context.Context, id uint) (domain.GigRequest, error)
	LoadAll(ctx context.Context) ([]domain.GigRequest, error)
	LoadAllForSemesterAndPending(ctx context.Context) ([]domain.GigRequest, error)
	SetStatus(ctx context.Context, id uint, status domain.GigRequestStatus) error
	CreateEventForRequest(ctx context.Context, id uint, newEvent domain.NewEvent, newGig domain.NewGig) (uint, error)
}

type GigRequestHandler struct {
	svc GigRequestService
}

func NewGigRequestHandler(svc GigRequestService) *GigRequestHandler {
	return &GigRequestHandler{
		svc: svc,
	}
}

// HandleSubmitGigRequest godoc
// @Summary      Ask the club to perform
// @Tags         gig requests
// @Accept       json
// @Produce      json
// @Param        request  body      request.SubmitGigRequestRequest  true  "request body"
// @Success      201      {object}  domain.GigRequest
// @Failure      400      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /gig_requests [post]
func (h *GigRequestHandler) HandleSubmitGigRequest(ctx *gin.Context) {
	var req request.SubmitGigRequestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.svc.Submit(ctx.Request.Context(), req.NewGigRequest())
	if err != nil {
		response.RenderErr(ctx, response.FromError(fmt.Errorf("v1.HandleSubmitGigRequest -> h.svc.Submit -> %w", err)))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleGetGigRequests godoc
// @Summary      List gig requests
// @Description  By default, the requests of the current semester and any still pending.
// @Tags         gig requests
// @Produce      json
// @Param        all  query     bool  false  "every request ever submitted"
// @Success      200  {array}   domain.GigRequest
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /gig_requests [get]
// @Security BearerAuth
func (h *GigRequestHandler) HandleGetGigRequests(ctx *gin.Context) {
	var (
		requests []domain.GigRequest
		err      error
	)
	if ctx.Query("all") == "true" {
		requests, err = h.svc.LoadAll(ctx.Request.Context())
	} else {
		requests, err = h.svc.LoadAllForSemesterAndPending(ctx.Request.Context())
	}
	if err != nil {
		response.RenderErr(ctx, response.FromError(fmt.Errorf("v1.HandleGetGigRequests -> %w", err)))
		return
	}

	ctx.JSON(http.StatusOK, requests)
}

// HandleGetGigRequest godoc
// @Summary      Get a gig request
// @Tags         gig requests
// @Produce      json
// @Param        requestID  path      int  true  "gig request ID"
// @Success      200        {object}  domain.GigRequest
// @Failure      400        {object}  response.Err
// @Failure      404        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /gig_requests/{requestID} [get]
// @Security BearerAuth
func (h *GigRequestHandler) HandleGetGigRequest(ctx *gin.Context) {
	id, respErr := parseID(ctx, "requestID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	gigRequest, err := h.svc.Load(ctx.Request.Context(), id)
	if err != nil {
		response.RenderErr(ctx, response.FromError(fmt.Errorf("v1.HandleGetGigRequest -> h.svc.Load -> %w", err)))
		return
	}

	ctx.JSON(http.StatusOK, gigRequest)
}

// HandleSetGigRequestStatus godoc
// @Summary      Move a gig request to another status
// @Tags         gig requests
// @Param        requestID  path      int     true  "gig request ID"
// @Param        status     path      string  true  "pending, accepted or dismissed"
// @Success      204
// @Failure      400        {object}  response.Err
// @Failure      403        {object}  response.Err
// @Failure      404        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /gig_requests/{requestID}/status/{status} [post]
// @Security BearerAuth
func (h *GigRequestHandler) HandleSetGigRequestStatus(ctx *gin.Context) {
	id, respErr := parseID(ctx, "requestID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	status, err := domain.ParseGigRequestStatus(ctx.Param("status"))
	if err != nil {
		response.RenderErr(ctx, response.FromError(err))
		return
	}

	if err = h.svc.SetStatus(ctx.Request.Context(), id, status); err != nil {
		response.RenderErr(ctx, response.FromError(fmt.Errorf("v1.HandleSetGigRequestStatus -> h.svc.SetStatus -> %w", err)))
		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleCreateEventForGigRequest godoc
// @Summary      Accept a gig request by creating its event
// @Description  Returns the id of the last occurrence created, which the request is linked to.
// @Tags         gig requests
// @Accept       json
// @Produce      json
// @Param        requestID  path      int                                       true  "gig request ID"
// @Param        request    body      request.CreateEventFromGigRequestRequest  true  "request body"
// @Success      201        {object}  response.CreatedResponse
// @Failure      400        {object}  response.Err
// @Failure      403        {object}  response.Err
// @Failure      404        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /gig_requests/{requestID}/event [post]
// @Security BearerAuth
func (h *GigRequestHandler) HandleCreateEventForGigRequest(ctx *gin.Context) {
	id, respErr := parseID(ctx, "requestID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.CreateEventFromGigRequestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	eventID, err := h.svc.CreateEventForRequest(ctx.Request.Context(), id, req.Event.NewEvent(), req.NewGig())
	if err != nil {
		response.RenderErr(ctx, response.FromError(fmt.Errorf("v1.HandleCreateEventForGigRequest -> %w", err)))
		return
	}

	ctx.JSON(http.StatusCreated, response.CreatedResponse{ID: eventID})
}
