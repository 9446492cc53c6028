package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/charity-events/fundraiser-api/internal/api/handler/v1/request"
	"github.com/charity-events/fundraiser-api/internal/api/handler/v1/response"
	"github.com/charity-events/fundraiser-api/internal/domain"
)

type AllocationService interface {
	AllocateDinnerSeat(ctx context.Context, tableID uint, p domain.Purchaser) (domain.DinnerEntry, error)
	AllocateRaffleTicket(ctx context.Context, raffleID uint, p domain.Purchaser) (domain.RaffleTicket, error)
	AllocateWalkBib(ctx context.Context, walkID uint, p domain.Purchaser, shirtSize string) (domain.WalkBib, error)
	AllocateConcertSeat(ctx context.Context, concertID uint, p domain.Purchaser, row, seat int) (domain.ConcertEntry, error)
}

type AllocationHandler struct {
	svc AllocationService
}

func NewAllocationHandler(svc AllocationService) *AllocationHandler {
	return &AllocationHandler{
		svc: svc,
	}
}

// HandleDinnerSeat godoc
// @Summary      Book a dinner seat
// @Description  Seats the purchaser at the table and credits the dinner with one cover.
// @Tags         dinners
// @Accept       json
// @Produce      json
// @Param        tableID  path      int                      true  "Table ID"
// @Param        input    body      request.PurchaseRequest  true  "Purchaser"
// @Success      201      {object}  domain.DinnerEntry
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /tables/{tableID}/entries [post]
func (h *AllocationHandler) HandleDinnerSeat(ctx *gin.Context) {
	tableID, ok := paramID(ctx, "tableID")
	if !ok {
		return
	}

	var input request.PurchaseRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	entry, err := h.svc.AllocateDinnerSeat(ctx, tableID, input.Purchaser())
	if err != nil {
		renderServiceErr(ctx, "HandleDinnerSeat -> h.svc.AllocateDinnerSeat", err, "table", "id", tableID)
		return
	}

	ctx.JSON(http.StatusCreated, entry)
}

// HandleRaffleTicket godoc
// @Summary      Buy a raffle ticket
// @Tags         raffles
// @Accept       json
// @Produce      json
// @Param        raffleID  path      int                      true  "Raffle ID"
// @Param        input     body      request.PurchaseRequest  true  "Purchaser"
// @Success      201       {object}  domain.RaffleTicket
// @Failure      400       {object}  response.Err
// @Failure      404       {object}  response.Err
// @Failure      409       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /raffles/{raffleID}/tickets [post]
func (h *AllocationHandler) HandleRaffleTicket(ctx *gin.Context) {
	raffleID, ok := paramID(ctx, "raffleID")
	if !ok {
		return
	}

	var input request.PurchaseRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	ticket, err := h.svc.AllocateRaffleTicket(ctx, raffleID, input.Purchaser())
	if err != nil {
		renderServiceErr(ctx, "HandleRaffleTicket -> h.svc.AllocateRaffleTicket", err, "raffle", "id", raffleID)
		return
	}

	ctx.JSON(http.StatusCreated, ticket)
}

// HandleWalkBib godoc
// @Summary      Register for a walk
// @Tags         walks
// @Accept       json
// @Produce      json
// @Param        walkID  path      int                     true  "Walk ID"
// @Param        input   body      request.WalkBibRequest  true  "Purchaser and shirt size"
// @Success      201     {object}  domain.WalkBib
// @Failure      400     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      409     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /walks/{walkID}/bibs [post]
func (h *AllocationHandler) HandleWalkBib(ctx *gin.Context) {
	walkID, ok := paramID(ctx, "walkID")
	if !ok {
		return
	}

	var input request.WalkBibRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	bib, err := h.svc.AllocateWalkBib(ctx, walkID, input.Purchaser(), input.ShirtSize)
	if err != nil {
		renderServiceErr(ctx, "HandleWalkBib -> h.svc.AllocateWalkBib", err, "walk", "id", walkID)
		return
	}

	ctx.JSON(http.StatusCreated, bib)
}

// HandleConcertSeat godoc
// @Summary      Book a concert seat
// @Tags         concerts
// @Accept       json
// @Produce      json
// @Param        concertID  path      int                          true  "Concert ID"
// @Param        input      body      request.ConcertEntryRequest  true  "Purchaser and seat"
// @Success      201        {object}  domain.ConcertEntry
// @Failure      400        {object}  response.Err
// @Failure      404        {object}  response.Err
// @Failure      409        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /concerts/{concertID}/entries [post]
func (h *AllocationHandler) HandleConcertSeat(ctx *gin.Context) {
	concertID, ok := paramID(ctx, "concertID")
	if !ok {
		return
	}

	var input request.ConcertEntryRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	entry, err := h.svc.AllocateConcertSeat(ctx, concertID, input.Purchaser(), input.Row, input.Seat)
	if err != nil {
		renderServiceErr(ctx, "HandleConcertSeat -> h.svc.AllocateConcertSeat", err, "concert", "id", concertID)
		return
	}

	ctx.JSON(http.StatusCreated, entry)
}
