package routes

import (
	"github.com/otterable/minifitna/config"
	"github.com/otterable/minifitna/controllers"
	"github.com/otterable/minifitna/middlewares"
	"github.com/otterable/minifitna/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB, cfg config.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestLogger())
	r.Use(middlewares.CORSMiddleware())

	authCtl := controllers.NewAuthController(services.NewAuthService(db, cfg.Secret))
	userCtl := controllers.NewUserController(services.NewProfileService(db))
	recordCtl := controllers.NewRecordController(services.NewRecordService(db))
	summaryCtl := controllers.NewSummaryController(services.NewSummaryService(db))
	devCtl := controllers.NewDevController(db)

	r.GET("/", devCtl.Root)
	r.GET("/health", devCtl.Health)

	api := r.Group("/api")
	{
		api.GET("/ping", devCtl.Ping)
		api.POST("/debug/echo", devCtl.Echo)
		api.POST("/register", authCtl.Register)
		api.POST("/login", authCtl.Login)
	}

	authed := api.Group("")
	authed.Use(middlewares.AuthMiddleware(cfg.Secret))
	{
		authed.GET("/me", userCtl.GetMe)
		authed.PUT("/me", userCtl.UpdateMe)
		authed.GET("/weights", recordCtl.ListWeights)
		authed.POST("/weights", recordCtl.AddWeight)
		authed.GET("/runs", recordCtl.ListRuns)
		authed.POST("/runs", recordCtl.AddRun)
		authed.GET("/summary", summaryCtl.Get)
	}

	return r
}
