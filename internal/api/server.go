package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/supplyline/planning-api/docs"
	v1 "github.com/supplyline/planning-api/internal/api/handler/v1"
	"github.com/supplyline/planning-api/internal/api/middleware"
	"github.com/supplyline/planning-api/internal/config"
	"github.com/supplyline/planning-api/internal/repository"
	"github.com/supplyline/planning-api/internal/repository/dao"
	"github.com/supplyline/planning-api/internal/service"
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

	skuHandler := s.initSkuHandler(db)
	warehouseHandler := s.initWarehouseHandler(db)
	materialHandler := s.initMaterialHandler(db)
	dashboardHandler := s.initDashboardHandler(db)
	salesHandler := s.initSalesHandler(db)
	distributionHandler := s.initDistributionHandler(db)
	s.MountHandlers(skuHandler, warehouseHandler, materialHandler, dashboardHandler, salesHandler, distributionHandler)

	return s
}

func (s *Server) initSkuHandler(db *gorm.DB) *v1.SkuHandler {
	repo := repository.NewSkuRepository(dao.NewSkuDAO(db))
	warehouseRepo := repository.NewWarehouseRepository(dao.NewWarehouseDAO(db))
	activityRepo := repository.NewActivityRepository(dao.NewActivityDAO(db))
	svc := service.NewSkuService(repo, warehouseRepo, activityRepo)
	handler := v1.NewSkuHandler(svc)

	return handler
}

func (s *Server) initWarehouseHandler(db *gorm.DB) *v1.WarehouseHandler {
	repo := repository.NewWarehouseRepository(dao.NewWarehouseDAO(db))
	activityRepo := repository.NewActivityRepository(dao.NewActivityDAO(db))
	svc := service.NewWarehouseService(repo, activityRepo)
	handler := v1.NewWarehouseHandler(svc)

	return handler
}

func (s *Server) initMaterialHandler(db *gorm.DB) *v1.MaterialHandler {
	repo := repository.NewMaterialRepository(dao.NewMaterialDAO(db))
	activityRepo := repository.NewActivityRepository(dao.NewActivityDAO(db))
	svc := service.NewMaterialService(repo, activityRepo)
	handler := v1.NewMaterialHandler(svc)

	return handler
}

func (s *Server) initDashboardHandler(db *gorm.DB) *v1.DashboardHandler {
	skuRepo := repository.NewSkuRepository(dao.NewSkuDAO(db))
	salesRepo := repository.NewSalesRepository(dao.NewSalesDAO(db))
	distributionRepo := repository.NewDistributionRepository(dao.NewDistributionDAO(db))
	activityRepo := repository.NewActivityRepository(dao.NewActivityDAO(db))
	svc := service.NewDashboardService(skuRepo, salesRepo, distributionRepo, activityRepo)
	handler := v1.NewDashboardHandler(svc)

	return handler
}

func (s *Server) initSalesHandler(db *gorm.DB) *v1.SalesHandler {
	repo := repository.NewSalesRepository(dao.NewSalesDAO(db))
	svc := service.NewSalesService(repo)
	handler := v1.NewSalesHandler(svc)

	return handler
}

func (s *Server) initDistributionHandler(db *gorm.DB) *v1.DistributionHandler {
	repo := repository.NewDistributionRepository(dao.NewDistributionDAO(db))
	activityRepo := repository.NewActivityRepository(dao.NewActivityDAO(db))
	svc := service.NewDistributionService(repo, activityRepo)
	handler := v1.NewDistributionHandler(svc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(
	skuHandler *v1.SkuHandler,
	warehouseHandler *v1.WarehouseHandler,
	materialHandler *v1.MaterialHandler,
	dashboardHandler *v1.DashboardHandler,
	salesHandler *v1.SalesHandler,
	distributionHandler *v1.DistributionHandler,
) {
	const basePath = "/api/v1"

	routes := s.Router.Group(basePath)
	{
		routes.GET("/skus", skuHandler.HandleListSkus)
		routes.POST("/skus", skuHandler.HandleCreateSku)
		routes.POST("/skus/bulk-assign-warehouses", skuHandler.HandleBulkAssignWarehouses)

		routes.GET("/warehouses", warehouseHandler.HandleListWarehouses)
		routes.POST("/warehouses", warehouseHandler.HandleCreateWarehouse)
		routes.DELETE("/warehouses/:warehouseID", warehouseHandler.HandleDeleteWarehouse)

		routes.GET("/materials", materialHandler.HandleListMaterials)
		routes.POST("/materials", materialHandler.HandleSaveMaterial)
		routes.PUT("/materials/:productID", materialHandler.HandleUpdateMaterial)
		routes.DELETE("/materials/:productID", materialHandler.HandleDeleteMaterial)
		routes.POST("/materials/import", materialHandler.HandleImportMaterials)

		routes.GET("/dashboard", dashboardHandler.HandleGetStats)

		routes.GET("/sales-history", salesHandler.HandleGetHistory)
		routes.GET("/sales-history/forecast", salesHandler.HandleGetForecast)

		routes.GET("/distributions", distributionHandler.HandleListPlans)
		routes.POST("/distributions", distributionHandler.HandleCreatePlan)
		routes.POST("/distributions/:planID/execute", distributionHandler.HandleExecutePlan)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Supply Planning API"
	docs.SwaggerInfo.Description = "Backend for the supply-chain planning dashboard."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
