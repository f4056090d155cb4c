package routes

import (
	"log"
	"strconv"

	_ "lapor_publik/docs" // This will be auto-generated
	"lapor_publik/internal/adapter/http/handlers"
	"lapor_publik/internal/adapter/persistence/repository"
	"lapor_publik/internal/infrastructure/database"
	"lapor_publik/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	reportRepo := repository.NewReportDynamoRepository(ddb)
	supportRepo := repository.NewSupportDynamoRepository(ddb)
	citizenRepo := repository.NewCitizenDynamoRepository(ddb)
	agencyRepo := repository.NewAgencyDynamoRepository(ddb)

	reportUseCase := usecase.NewReportUseCase(reportRepo, agencyRepo, supportRepo)
	supportUseCase := usecase.NewSupportUseCase(supportRepo, reportRepo)
	agencyUseCase := usecase.NewAgencyUseCase(agencyRepo)
	smsUseCase := usecase.NewSMSIntakeUseCase(reportUseCase, citizenRepo, smsDefaultsFromEnv())

	reportHandler := handlers.NewReportHandler(reportUseCase)
	supportHandler := handlers.NewSupportHandler(supportUseCase)
	agencyHandler := handlers.NewAgencyHandler(agencyUseCase)
	smsHandler := handlers.NewSMSHandler(smsUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addReportRoutes(v1, reportHandler, supportHandler)
	addAgencyRoutes(v1, agencyHandler)
	addSMSRoutes(v1, smsHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
