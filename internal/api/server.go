package api

import (
	"context"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/charity-events/fundraiser-api/docs"
	v1 "github.com/charity-events/fundraiser-api/internal/api/handler/v1"
	"github.com/charity-events/fundraiser-api/internal/api/handler/v1/feed"
	"github.com/charity-events/fundraiser-api/internal/api/middleware"
	"github.com/charity-events/fundraiser-api/internal/clock"
	"github.com/charity-events/fundraiser-api/internal/config"
	"github.com/charity-events/fundraiser-api/internal/repository"
	"github.com/charity-events/fundraiser-api/internal/repository/dao"
	"github.com/charity-events/fundraiser-api/internal/service"
)

// Dependencies are the outside resources the handlers are built on.
// Listings and Publisher may be nil. Without Feed, a hub is started for
// the lifetime of the process.
type Dependencies struct {
	DB        *gorm.DB
	Listings  service.ListingCache
	Publisher service.Publisher
	Feed      *feed.Hub
}

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, deps Dependencies) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	if deps.Feed == nil {
		deps.Feed = feed.NewHub()
		go deps.Feed.Run(context.Background())
	}

	repo := repository.NewEventRepository(dao.NewEventDAO(deps.DB))
	eventHandler := s.initEventHandler(repo, deps)
	allocationHandler := s.initAllocationHandler(repo, deps)
	ticketHandler := v1.NewTicketHandler(service.NewTicketService(repo))
	liveHandler := v1.NewLiveHandler(deps.Feed)
	s.MountHandlers(eventHandler, allocationHandler, ticketHandler, liveHandler)

	return s
}

func (s *Server) initEventHandler(repo *repository.EventRepository, deps Dependencies) *v1.EventHandler {
	svc := service.NewEventService(repo, clock.NewSystem(), deps.Listings)
	handler := v1.NewEventHandler(svc)

	return handler
}

func (s *Server) initAllocationHandler(repo *repository.EventRepository, deps Dependencies) *v1.AllocationHandler {
	svc := service.NewAllocationService(repo,
		service.WithPublisher(deps.Publisher),
		service.WithBroadcaster(deps.Feed),
		service.WithListingCache(deps.Listings),
	)
	handler := v1.NewAllocationHandler(svc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(eventHandler *v1.EventHandler, allocationHandler *v1.AllocationHandler, ticketHandler *v1.TicketHandler, liveHandler *v1.LiveHandler) {
	const basePath = "/api/v1"

	api := s.Router.Group(basePath)
	{
		api.GET("/", v1.HandleHealthcheck)
		api.GET("/events/upcoming", eventHandler.HandleOverview)
		api.GET("/events/:kind/:eventID/live", liveHandler.HandleLive)
	}

	dinners := s.Router.Group(basePath)
	{
		dinners.GET("/dinners", eventHandler.HandleListDinners)
		dinners.POST("/dinners", eventHandler.HandleCreateDinner)
		dinners.GET("/dinners/:dinnerID", eventHandler.HandleGetDinner)
		dinners.GET("/dinners/:dinnerID/tables", eventHandler.HandleGetTables)
		dinners.POST("/tables/:tableID/entries", allocationHandler.HandleDinnerSeat)
	}

	raffles := s.Router.Group(basePath)
	{
		raffles.GET("/raffles", eventHandler.HandleListRaffles)
		raffles.POST("/raffles", eventHandler.HandleCreateRaffle)
		raffles.GET("/raffles/:raffleID", eventHandler.HandleGetRaffle)
		raffles.POST("/raffles/:raffleID/tickets", allocationHandler.HandleRaffleTicket)
	}

	walks := s.Router.Group(basePath)
	{
		walks.GET("/walks", eventHandler.HandleListWalks)
		walks.POST("/walks", eventHandler.HandleCreateWalk)
		walks.GET("/walks/shirt-sizes", eventHandler.HandleShirtSizes)
		walks.GET("/walks/:walkID", eventHandler.HandleGetWalk)
		walks.POST("/walks/:walkID/bibs", allocationHandler.HandleWalkBib)
	}

	concerts := s.Router.Group(basePath)
	{
		concerts.GET("/concerts", eventHandler.HandleListConcerts)
		concerts.POST("/concerts", eventHandler.HandleCreateConcert)
		concerts.GET("/concerts/:concertID", eventHandler.HandleGetConcert)
		concerts.GET("/concerts/:concertID/seats", eventHandler.HandleGetOccupiedSeats)
		concerts.POST("/concerts/:concertID/entries", allocationHandler.HandleConcertSeat)
	}

	tickets := s.Router.Group(basePath)
	{
		tickets.POST("/tickets/:reference/redeem", ticketHandler.HandleRedeem)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Charity fundraiser API"
	docs.SwaggerInfo.Description = "Dinners, raffles, walks and concerts raising funds for charity."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
