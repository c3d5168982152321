package v1

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gleeclub/grease-api/internal/api/handler/v1/request"
	"github.com/gleeclub/grease-api/internal/api/handler/v1/response"
	"github.com/gleeclub/grease-api/internal/domain"
	"github.com/gleeclub/grease-api/internal/service"
)

type EventService interface {
	Create(ctx context.Context, newEvent domain.NewEvent, origin *service.GigOrigin) (uint, error)
	Update(ctx context.Context, id uint, update domain.EventUpdate) error
	Load(ctx context.Context, id uint) (domain.EventWithGig, error)
	LoadFull(ctx context.Context, id uint, member string) (service.FullEvent, error)
	LoadAll(ctx context.Context) ([]domain.EventWithGig, error)
	LoadAllForCurrentSemester(ctx context.Context) ([]domain.EventWithGig, error)
	LoadAllOfTypeForCurrentSemester(ctx context.Context, eventType string) ([]domain.EventWithGig, error)
	LoadSectionalsTheWeekOf(ctx context.Context, id uint) ([]domain.Event, error)
	Delete(ctx context.Context, id uint) error
	WentToEventTypeDuringWeekOf(ctx context.Context, id uint, member, eventType string) (went bool, ok bool, err error)
}

type EventHandler struct {
	svc EventService
}

func NewEventHandler(svc EventService) *EventHandler {
	return &EventHandler{
		svc: svc,
	}
}

// HandleGetEvents godoc
// @Summary      List the events of the current semester
// @Tags         events
// @Produce      json
// @Param        type  query     string  false  "only events of this type"
// @Success      200   {array}   response.EventResponse
// @Failure      401   {object}  response.Err
// @Failure      500   {object}  response.Err
// @Router       /events [get]
// @Security BearerAuth
func (h *EventHandler) HandleGetEvents(ctx *gin.Context) {
	var (
		events []domain.EventWithGig
		err    error
	)
	if eventType := ctx.Query("type"); eventType != "" {
		events, err = h.svc.LoadAllOfTypeForCurrentSemester(ctx.Request.Context(), eventType)
	} else {
		events, err = h.svc.LoadAllForCurrentSemester(ctx.Request.Context())
	}
	if err != nil {
		response.RenderErr(ctx, response.FromError(fmt.Errorf("v1.HandleGetEvents -> %w", err)))
		return
	}

	ctx.JSON(http.StatusOK, response.NewEventResponses(events))
}

// HandleGetAllEvents godoc
// @Summary      List the events of every semester
// @Tags         events
// @Produce      json
// @Success      200  {array}   response.EventResponse
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /events/all [get]
// @Security BearerAuth
func (h *EventHandler) HandleGetAllEvents(ctx *gin.Context) {
	events, err := h.svc.LoadAll(ctx.Request.Context())
	if err != nil {
		response.RenderErr(ctx, response.FromError(fmt.Errorf("v1.HandleGetAllEvents -> h.svc.LoadAll -> %w", err)))
		return
	}

	ctx.JSON(http.StatusOK, response.NewEventResponses(events))
}

// HandleGetEvent godoc
// @Summary      Get an event
// @Description  With full=true the uniform is resolved and the caller's attendance is attached.
// @Tags         events
// @Produce      json
// @Param        eventID  path      int   true   "event ID"
// @Param        full     query     bool  false  "full form"
// @Success      200      {object}  response.FullEventResponse
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/{eventID} [get]
// @Security BearerAuth
func (h *EventHandler) HandleGetEvent(ctx *gin.Context) {
	member, respErr := getMemberFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	id, respErr := parseID(ctx, "eventID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if ctx.Query("full") == "true" {
		full, err := h.svc.LoadFull(ctx.Request.Context(), id, member.Email)
		if err != nil {
			response.RenderErr(ctx, response.FromError(fmt.Errorf("v1.HandleGetEvent -> h.svc.LoadFull -> %w", err)))
			return
		}

		ctx.JSON(http.StatusOK, response.NewFullEventResponse(full))
		return
	}

	event, err := h.svc.Load(ctx.Request.Context(), id)
	if err != nil {
		response.RenderErr(ctx, response.FromError(fmt.Errorf("v1.HandleGetEvent -> h.svc.Load -> %w", err)))
		return
	}

	ctx.JSON(http.StatusOK, response.NewEventResponse(event))
}

// HandleGetSectionals godoc
// @Summary      Sectionals in the week of an event
// @Tags         events
// @Produce      json
// @Param        eventID  path      int  true  "event ID"
// @Success      200      {array}   domain.Event
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/{eventID}/sectionals [get]
// @Security BearerAuth
func (h *EventHandler) HandleGetSectionals(ctx *gin.Context) {
	id, respErr := parseID(ctx, "eventID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	sectionals, err := h.svc.LoadSectionalsTheWeekOf(ctx.Request.Context(), id)
	if err != nil {
		response.RenderErr(ctx, response.FromError(fmt.Errorf("v1.HandleGetSectionals -> %w", err)))
		return
	}

	ctx.JSON(http.StatusOK, sectionals)
}

// HandleCreateEvent godoc
// @Summary      Create an event, repeating it if asked to
// @Description  Returns the id of the last occurrence created.
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateEventRequest  true  "request body"
// @Success      201      {object}  response.CreatedResponse
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events [post]
// @Security BearerAuth
func (h *EventHandler) HandleCreateEvent(ctx *gin.Context) {
	var req request.CreateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	id, err := h.svc.Create(ctx.Request.Context(), req.NewEvent(), nil)
	if err != nil {
		response.RenderErr(ctx, response.FromError(fmt.Errorf("v1.HandleCreateEvent -> h.svc.Create -> %w", err)))
		return
	}

	ctx.JSON(http.StatusCreated, response.CreatedResponse{ID: id})
}

// HandleUpdateEvent godoc
// @Summary      Update an event
// @Description  Supplying gig fields on a plain event turns it into a gig.
// @Tags         events
// @Accept       json
// @Param        eventID  path      int                         true  "event ID"
// @Param        request  body      request.UpdateEventRequest  true  "request body"
// @Success      204
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/{eventID} [put]
// @Security BearerAuth
func (h *EventHandler) HandleUpdateEvent(ctx *gin.Context) {
	id, respErr := parseID(ctx, "eventID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.UpdateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := h.svc.Update(ctx.Request.Context(), id, req.EventUpdate()); err != nil {
		response.RenderErr(ctx, response.FromError(fmt.Errorf("v1.HandleUpdateEvent -> h.svc.Update -> %w", err)))
		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleDeleteEvent godoc
// @Summary      Delete an event
// @Tags         events
// @Param        eventID  path      int  true  "event ID"
// @Success      204
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/{eventID} [delete]
// @Security BearerAuth
func (h *EventHandler) HandleDeleteEvent(ctx *gin.Context) {
	id, respErr := parseID(ctx, "eventID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if err := h.svc.Delete(ctx.Request.Context(), id); err != nil {
		response.RenderErr(ctx, response.FromError(fmt.Errorf("v1.HandleDeleteEvent -> h.svc.Delete -> %w", err)))
		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleWentToEventType godoc
// @Summary      Whether the caller went to an event of a type in the week of an event
// @Description  went_to is null when no such event has finished yet.
// @Tags         events
// @Produce      json
// @Param        eventID    path      int     true  "event ID"
// @Param        eventType  path      string  true  "event type"
// @Success      200        {object}  response.WentToResponse
// @Failure      400        {object}  response.Err
// @Failure      404        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /events/{eventID}/went_to/{eventType} [get]
// @Security BearerAuth
func (h *EventHandler) HandleWentToEventType(ctx *gin.Context) {
	member, respErr := getMemberFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	id, respErr := parseID(ctx, "eventID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	went, ok, err := h.svc.WentToEventTypeDuringWeekOf(ctx.Request.Context(), id, member.Email, ctx.Param("eventType"))
	if err != nil {
		response.RenderErr(ctx, response.FromError(fmt.Errorf("v1.HandleWentToEventType -> %w", err)))
		return
	}

	resp := response.WentToResponse{}
	if ok {
		resp.WentTo = &went
	}
	ctx.JSON(http.StatusOK, resp)
}
