package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/gleeclub/grease-api/docs"
	v1 "github.com/gleeclub/grease-api/internal/api/handler/v1"
	"github.com/gleeclub/grease-api/internal/api/middleware"
	"github.com/gleeclub/grease-api/internal/config"
	"github.com/gleeclub/grease-api/internal/domain"
	"github.com/gleeclub/grease-api/internal/repository"
	"github.com/gleeclub/grease-api/internal/repository/dao"
	"github.com/gleeclub/grease-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	semesterSvc := service.NewSemesterService(repository.NewSemesterRepository(dao.NewSemesterDAO(db)))
	eventSvc := s.initEventService(db, semesterSvc)
	authenticator := s.initAuthenticator(db)
	eventHandler := v1.NewEventHandler(eventSvc)
	gigRequestHandler := s.initGigRequestHandler(db, eventSvc, semesterSvc)
	s.MountHandlers(authenticator, eventHandler, gigRequestHandler)

	return s
}

func (s *Server) initEventService(db *gorm.DB, semesters service.CurrentSemester) *service.EventService {
	attendanceDAO := dao.NewAttendanceDAO(db)
	eventDAO := dao.NewEventDAO(db, attendanceDAO)

	return service.NewEventService(
		repository.NewEventRepository(eventDAO),
		semesters,
		repository.NewAttendanceRepository(attendanceDAO),
		repository.NewUniformRepository(dao.NewUniformDAO(db)),
	)
}

func (s *Server) initGigRequestHandler(
	db *gorm.DB,
	events service.EventCreator,
	semesters service.CurrentSemester,
) *v1.GigRequestHandler {
	repo := repository.NewGigRequestRepository(dao.NewGigRequestDAO(db))
	svc := service.NewGigRequestService(repo, events, semesters)
	handler := v1.NewGigRequestHandler(svc)

	return handler
}

func (s *Server) initAuthenticator(db *gorm.DB) *middleware.Authenticator {
	repo := repository.NewMemberRepository(dao.NewMemberDAO(db))
	svc := service.NewMemberService(repo)

	return middleware.NewAuthenticator(s.Config.API.JWTSigningKey, svc)
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(
	authenticator *middleware.Authenticator,
	eventHandler *v1.EventHandler,
	gigRequestHandler *v1.GigRequestHandler,
) {
	const basePath = "/api/v1"

	public := s.Router.Group(basePath)
	{
		public.POST("/gig_requests", gigRequestHandler.HandleSubmitGigRequest)
	}

	events := s.Router.Group(basePath+"/events", authenticator.VerifyJWT())
	{
		events.GET("", eventHandler.HandleGetEvents)
		events.GET("/all", eventHandler.HandleGetAllEvents)
		events.GET("/:eventID", eventHandler.HandleGetEvent)
		events.GET("/:eventID/sectionals", eventHandler.HandleGetSectionals)
		events.GET("/:eventID/went_to/:eventType", eventHandler.HandleWentToEventType)
		events.POST("", middleware.RequirePermission(domain.PermissionCreateEvent), eventHandler.HandleCreateEvent)
		events.PUT("/:eventID", middleware.RequirePermission(domain.PermissionModifyEvent), eventHandler.HandleUpdateEvent)
		events.DELETE("/:eventID", middleware.RequirePermission(domain.PermissionDeleteEvent), eventHandler.HandleDeleteEvent)
	}

	gigRequests := s.Router.Group(basePath+"/gig_requests",
		authenticator.VerifyJWT(),
		middleware.RequirePermission(domain.PermissionProcessGigRequests),
	)
	{
		gigRequests.GET("", gigRequestHandler.HandleGetGigRequests)
		gigRequests.GET("/:requestID", gigRequestHandler.HandleGetGigRequest)
		gigRequests.POST("/:requestID/status/:status", gigRequestHandler.HandleSetGigRequestStatus)
		gigRequests.POST("/:requestID/event", gigRequestHandler.HandleCreateEventForGigRequest)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Grease API"
	docs.SwaggerInfo.Description = "Events, gigs and gig requests of the glee club."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
