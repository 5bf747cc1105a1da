package main

import (
	"flag"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/remiges-tech/numbername/config"
	"github.com/remiges-tech/numbername/internal/infra"
	"github.com/remiges-tech/numbername/internal/webservices/numbername"
	"github.com/remiges-tech/numbername/numname"
	"github.com/remiges-tech/numbername/router"
	"github.com/remiges-tech/numbername/service"
)

func main() {
	configSystem := flag.String("configSource", "file", "The configuration system to use (file or rigel)")
	configFilePath := flag.String("configFile", "./config.json", "The path to the configuration file")
	etcdEndpoints := flag.String("etcdEndpoints", "localhost:2379", "Comma-separated etcd endpoints used by Rigel")
	rigelApp := flag.String("app", "numbername", "The Rigel app name")
	rigelModule := flag.String("module", "server", "The Rigel module name")
	rigelVersion := flag.Int("version", 1, "The Rigel schema version")
	rigelConfigName := flag.String("configName", "dev", "The Rigel config name")
	flag.Parse()

	appConfig := config.DefaultAppConfig()
	var configSource config.Config
	var err error
	switch *configSystem {
	case "file":
		configSource, err = config.LoadConfigFromFile(*configFilePath, &appConfig)
	case "rigel":
		configSource, err = config.LoadConfigFromRigel(config.RigelOptions{
			EtcdEndpoints: *etcdEndpoints,
			App:           *rigelApp,
			Module:        *rigelModule,
			Version:       *rigelVersion,
			ConfigName:    *rigelConfigName,
		}, &appConfig)
	default:
		log.Fatalf("Unknown configuration system: %s", *configSystem)
	}
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	infraServices, err := infra.InitInfraServices(appConfig)
	if err != nil {
		log.Fatalf("Error initialising infrastructure: %v", err)
	}
	defer infraServices.Close()

	r := router.SetupRouter(infraServices.Logger, appConfig.Timeout())
	if appConfig.EnableMetrics {
		r.GET("/metrics", gin.WrapH(infraServices.Metrics.Handler()))
	}

	s := service.NewService(r).
		WithConfig(configSource).
		WithLogHarbour(infraServices.Logger).
		WithMetrics(infraServices.Metrics).
		WithDependency(numbername.DepConverter, numname.NewEnglishConverter()).
		WithDependency(numbername.DepNameCache, infraServices.Cache)

	if _, err := numbername.RegisterHandlers(s); err != nil {
		log.Fatalf("Failed to register handlers: %v", err)
	}

	if err := r.Run(":" + appConfig.AppServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
