package v1

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/charity-events/fundraiser-api/internal/api/handler/v1/request"
	"github.com/charity-events/fundraiser-api/internal/api/handler/v1/response"
	"github.com/charity-events/fundraiser-api/internal/domain"
)

type EventService interface {
	Overview(ctx context.Context) (domain.Overview, error)
	ListDinners(ctx context.Context) ([]domain.Dinner, error)
	ListRaffles(ctx context.Context) ([]domain.Raffle, error)
	ListWalks(ctx context.Context) ([]domain.Walk, error)
	ListConcerts(ctx context.Context) ([]domain.Concert, error)
	GetDinner(ctx context.Context, id uint) (domain.Dinner, error)
	Tables(ctx context.Context, dinnerID uint, onlyAvailable bool) (domain.Dinner, error)
	GetRaffle(ctx context.Context, id uint) (domain.Raffle, error)
	GetWalk(ctx context.Context, id uint) (domain.Walk, error)
	GetConcert(ctx context.Context, id uint) (domain.Concert, error)
	OccupiedSeats(ctx context.Context, concertID uint) ([]domain.SeatPosition, error)
	ShirtSizes() []domain.ShirtSizeOption
	CreateDinner(ctx context.Context, d domain.Dinner) (domain.Dinner, error)
	CreateRaffle(ctx context.Context, r domain.Raffle) (domain.Raffle, error)
	CreateWalk(ctx context.Context, w domain.Walk) (domain.Walk, error)
	CreateConcert(ctx context.Context, c domain.Concert) (domain.Concert, error)
}

type EventHandler struct {
	svc EventService
}

func NewEventHandler(svc EventService) *EventHandler {
	return &EventHandler{
		svc: svc,
	}
}

// HandleOverview godoc
// @Summary      Upcoming events
// @Description  Returns up to three upcoming events of each kind.
// @Tags         events
// @Produce      json
// @Success      200  {object}  response.Overview
// @Failure      500  {object}  response.Err
// @Router       /events/upcoming [get]
func (h *EventHandler) HandleOverview(ctx *gin.Context) {
	overview, err := h.svc.Overview(ctx)
	if err != nil {
		renderServiceErr(ctx, "HandleOverview -> h.svc.Overview", err, "event", "kind", "any")
		return
	}

	ctx.JSON(http.StatusOK, response.NewOverview(overview))
}

// HandleListDinners godoc
// @Summary      List upcoming dinners
// @Tags         dinners
// @Produce      json
// @Success      200  {array}   response.DinnerDetail
// @Failure      500  {object}  response.Err
// @Router       /dinners [get]
func (h *EventHandler) HandleListDinners(ctx *gin.Context) {
	dinners, err := h.svc.ListDinners(ctx)
	if err != nil {
		renderServiceErr(ctx, "HandleListDinners -> h.svc.ListDinners", err, "dinner", "date", "upcoming")
		return
	}

	ctx.JSON(http.StatusOK, response.NewDinnerDetails(dinners))
}

// HandleListRaffles godoc
// @Summary      List upcoming raffles
// @Tags         raffles
// @Produce      json
// @Success      200  {array}   response.RaffleDetail
// @Failure      500  {object}  response.Err
// @Router       /raffles [get]
func (h *EventHandler) HandleListRaffles(ctx *gin.Context) {
	raffles, err := h.svc.ListRaffles(ctx)
	if err != nil {
		renderServiceErr(ctx, "HandleListRaffles -> h.svc.ListRaffles", err, "raffle", "date", "upcoming")
		return
	}

	ctx.JSON(http.StatusOK, response.NewRaffleDetails(raffles))
}

// HandleListWalks godoc
// @Summary      List upcoming walks
// @Tags         walks
// @Produce      json
// @Success      200  {array}   response.WalkDetail
// @Failure      500  {object}  response.Err
// @Router       /walks [get]
func (h *EventHandler) HandleListWalks(ctx *gin.Context) {
	walks, err := h.svc.ListWalks(ctx)
	if err != nil {
		renderServiceErr(ctx, "HandleListWalks -> h.svc.ListWalks", err, "walk", "date", "upcoming")
		return
	}

	ctx.JSON(http.StatusOK, response.NewWalkDetails(walks))
}

// HandleListConcerts godoc
// @Summary      List upcoming concerts
// @Tags         concerts
// @Produce      json
// @Success      200  {array}   response.ConcertDetail
// @Failure      500  {object}  response.Err
// @Router       /concerts [get]
func (h *EventHandler) HandleListConcerts(ctx *gin.Context) {
	concerts, err := h.svc.ListConcerts(ctx)
	if err != nil {
		renderServiceErr(ctx, "HandleListConcerts -> h.svc.ListConcerts", err, "concert", "date", "upcoming")
		return
	}

	ctx.JSON(http.StatusOK, response.NewConcertDetails(concerts))
}

// HandleGetDinner godoc
// @Summary      Get a dinner
// @Description  Returns the dinner with its tables and the seats left.
// @Tags         dinners
// @Produce      json
// @Param        dinnerID  path      int  true  "Dinner ID"
// @Success      200       {object}  response.DinnerDetail
// @Failure      400       {object}  response.Err
// @Failure      404       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /dinners/{dinnerID} [get]
func (h *EventHandler) HandleGetDinner(ctx *gin.Context) {
	id, ok := paramID(ctx, "dinnerID")
	if !ok {
		return
	}

	dinner, err := h.svc.GetDinner(ctx, id)
	if err != nil {
		renderServiceErr(ctx, "HandleGetDinner -> h.svc.GetDinner", err, "dinner", "id", id)
		return
	}

	ctx.JSON(http.StatusOK, response.NewDinnerDetail(dinner))
}

// HandleGetTables godoc
// @Summary      List the tables of a dinner
// @Tags         dinners
// @Produce      json
// @Param        dinnerID   path      int   true   "Dinner ID"
// @Param        available  query     bool  false  "Only tables with free seats"
// @Success      200        {array}   response.TableDetail
// @Failure      400        {object}  response.Err
// @Failure      404        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /dinners/{dinnerID}/tables [get]
func (h *EventHandler) HandleGetTables(ctx *gin.Context) {
	id, ok := paramID(ctx, "dinnerID")
	if !ok {
		return
	}

	onlyAvailable, err := strconv.ParseBool(ctx.DefaultQuery("available", "false"))
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("available must be a boolean")))
		return
	}

	dinner, err := h.svc.Tables(ctx, id, onlyAvailable)
	if err != nil {
		renderServiceErr(ctx, "HandleGetTables -> h.svc.Tables", err, "dinner", "id", id)
		return
	}

	ctx.JSON(http.StatusOK, response.NewTableDetails(dinner.Tables, dinner.SeatsPerTable))
}

// HandleGetRaffle godoc
// @Summary      Get a raffle
// @Tags         raffles
// @Produce      json
// @Param        raffleID  path      int  true  "Raffle ID"
// @Success      200       {object}  response.RaffleDetail
// @Failure      400       {object}  response.Err
// @Failure      404       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /raffles/{raffleID} [get]
func (h *EventHandler) HandleGetRaffle(ctx *gin.Context) {
	id, ok := paramID(ctx, "raffleID")
	if !ok {
		return
	}

	raffle, err := h.svc.GetRaffle(ctx, id)
	if err != nil {
		renderServiceErr(ctx, "HandleGetRaffle -> h.svc.GetRaffle", err, "raffle", "id", id)
		return
	}

	ctx.JSON(http.StatusOK, response.NewRaffleDetail(raffle))
}

// HandleGetWalk godoc
// @Summary      Get a walk
// @Tags         walks
// @Produce      json
// @Param        walkID  path      int  true  "Walk ID"
// @Success      200     {object}  response.WalkDetail
// @Failure      400     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /walks/{walkID} [get]
func (h *EventHandler) HandleGetWalk(ctx *gin.Context) {
	id, ok := paramID(ctx, "walkID")
	if !ok {
		return
	}

	walk, err := h.svc.GetWalk(ctx, id)
	if err != nil {
		renderServiceErr(ctx, "HandleGetWalk -> h.svc.GetWalk", err, "walk", "id", id)
		return
	}

	ctx.JSON(http.StatusOK, response.NewWalkDetail(walk))
}

// HandleGetConcert godoc
// @Summary      Get a concert
// @Description  Returns the concert with the entries left and the seats already taken.
// @Tags         concerts
// @Produce      json
// @Param        concertID  path      int  true  "Concert ID"
// @Success      200        {object}  response.ConcertDetail
// @Failure      400        {object}  response.Err
// @Failure      404        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /concerts/{concertID} [get]
func (h *EventHandler) HandleGetConcert(ctx *gin.Context) {
	id, ok := paramID(ctx, "concertID")
	if !ok {
		return
	}

	concert, err := h.svc.GetConcert(ctx, id)
	if err != nil {
		renderServiceErr(ctx, "HandleGetConcert -> h.svc.GetConcert", err, "concert", "id", id)
		return
	}

	seats, err := h.svc.OccupiedSeats(ctx, id)
	if err != nil {
		renderServiceErr(ctx, "HandleGetConcert -> h.svc.OccupiedSeats", err, "concert", "id", id)
		return
	}

	ctx.JSON(http.StatusOK, response.NewConcertDetail(concert, seats))
}

// HandleGetOccupiedSeats godoc
// @Summary      List taken concert seats
// @Tags         concerts
// @Produce      json
// @Param        concertID  path      int  true  "Concert ID"
// @Success      200        {array}   domain.SeatPosition
// @Failure      400        {object}  response.Err
// @Failure      404        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /concerts/{concertID}/seats [get]
func (h *EventHandler) HandleGetOccupiedSeats(ctx *gin.Context) {
	id, ok := paramID(ctx, "concertID")
	if !ok {
		return
	}

	seats, err := h.svc.OccupiedSeats(ctx, id)
	if err != nil {
		renderServiceErr(ctx, "HandleGetOccupiedSeats -> h.svc.OccupiedSeats", err, "concert", "id", id)
		return
	}
	if seats == nil {
		seats = []domain.SeatPosition{}
	}

	ctx.JSON(http.StatusOK, seats)
}

// HandleShirtSizes godoc
// @Summary      List shirt sizes
// @Tags         walks
// @Produce      json
// @Success      200  {array}  domain.ShirtSizeOption
// @Router       /walks/shirt-sizes [get]
func (h *EventHandler) HandleShirtSizes(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, h.svc.ShirtSizes())
}

// HandleCreateDinner godoc
// @Summary      Create a dinner
// @Description  Creates the dinner and its tables numbered from 1.
// @Tags         dinners
// @Accept       json
// @Produce      json
// @Param        input  body      request.CreateDinnerRequest  true  "Dinner details"
// @Success      201    {object}  response.DinnerDetail
// @Failure      400    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /dinners [post]
func (h *EventHandler) HandleCreateDinner(ctx *gin.Context) {
	var input request.CreateDinnerRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	dinner, err := h.svc.CreateDinner(ctx, input.ToDomain())
	if err != nil {
		renderServiceErr(ctx, "HandleCreateDinner -> h.svc.CreateDinner", err, "dinner", "id", 0)
		return
	}

	ctx.JSON(http.StatusCreated, response.NewDinnerDetail(dinner))
}

// HandleCreateRaffle godoc
// @Summary      Create a raffle
// @Tags         raffles
// @Accept       json
// @Produce      json
// @Param        input  body      request.CreateRaffleRequest  true  "Raffle details"
// @Success      201    {object}  response.RaffleDetail
// @Failure      400    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /raffles [post]
func (h *EventHandler) HandleCreateRaffle(ctx *gin.Context) {
	var input request.CreateRaffleRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	raffle, err := h.svc.CreateRaffle(ctx, input.ToDomain())
	if err != nil {
		renderServiceErr(ctx, "HandleCreateRaffle -> h.svc.CreateRaffle", err, "raffle", "id", 0)
		return
	}

	ctx.JSON(http.StatusCreated, response.NewRaffleDetail(raffle))
}

// HandleCreateWalk godoc
// @Summary      Create a walk
// @Tags         walks
// @Accept       json
// @Produce      json
// @Param        input  body      request.CreateWalkRequest  true  "Walk details"
// @Success      201    {object}  response.WalkDetail
// @Failure      400    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /walks [post]
func (h *EventHandler) HandleCreateWalk(ctx *gin.Context) {
	var input request.CreateWalkRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	walk, err := h.svc.CreateWalk(ctx, input.ToDomain())
	if err != nil {
		renderServiceErr(ctx, "HandleCreateWalk -> h.svc.CreateWalk", err, "walk", "id", 0)
		return
	}

	ctx.JSON(http.StatusCreated, response.NewWalkDetail(walk))
}

// HandleCreateConcert godoc
// @Summary      Create a concert
// @Tags         concerts
// @Accept       json
// @Produce      json
// @Param        input  body      request.CreateConcertRequest  true  "Concert details"
// @Success      201    {object}  response.ConcertDetail
// @Failure      400    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /concerts [post]
func (h *EventHandler) HandleCreateConcert(ctx *gin.Context) {
	var input request.CreateConcertRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	concert, err := h.svc.CreateConcert(ctx, input.ToDomain())
	if err != nil {
		renderServiceErr(ctx, "HandleCreateConcert -> h.svc.CreateConcert", err, "concert", "id", 0)
		return
	}

	ctx.JSON(http.StatusCreated, response.NewConcertDetail(concert, nil))
}
