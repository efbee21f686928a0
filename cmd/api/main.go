// @title Performator API
// @description API for the gamified kanban app "Performator"
// @BasePath /api/v1
// @schemes http
package main

import (
	"log"
	"math/rand/v2"

	"github.com/kanquest/performator/internal/api"
	"github.com/kanquest/performator/internal/repository"
	"github.com/kanquest/performator/internal/service"
	"github.com/kanquest/performator/pkg/cleanup"
	"github.com/kanquest/performator/pkg/config"
	jwtservice "github.com/kanquest/performator/pkg/jwt_service"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	usersRepo := repository.NewUsersRepo(&dbCfg)
	tasksRepo := repository.NewTasksRepo(&dbCfg)
	itemsRepo := repository.NewItemsRepo(&dbCfg)
	inventoryRepo := repository.NewInventoryRepo(&dbCfg)

	serv := api.New(&api.ServicesList{
		UserService:         service.NewUserService(usersRepo),
		TaskService:         service.NewTaskService(tasksRepo, usersRepo, nil),
		GamificationService: service.NewGamificationService(usersRepo, tasksRepo, itemsRepo, inventoryRepo, rand.Float64, nil),
		EquipmentService:    service.NewEquipmentService(usersRepo, itemsRepo, inventoryRepo),
		JwtService:          jwtservice.New(cfg.GetString("JWT_SECRET")),
	})
	err := serv.Run(cfg.GetString("API_ADDRESS"))
	if err != nil {
		log.Println("Server error: " + err.Error())
	}
	cleanup.CleanUp()
}
