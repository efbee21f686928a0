package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kanquest/performator/internal/service"
)

type Server struct {
	mx           *chi.Mux
	userService  service.UserServiceI
	taskService  service.TaskServiceI
	gameService  service.GamificationServiceI
	equipService service.EquipmentServiceI
	jwtService   JWTServiceI
}

type ServicesList struct {
	UserService         service.UserServiceI
	TaskService         service.TaskServiceI
	GamificationService service.GamificationServiceI
	EquipmentService    service.EquipmentServiceI
	JwtService          JWTServiceI
}

func New(servicesOptions *ServicesList) *Server {
	return &Server{
		mx:           chi.NewMux(),
		userService:  servicesOptions.UserService,
		taskService:  servicesOptions.TaskService,
		gameService:  servicesOptions.GamificationService,
		equipService: servicesOptions.EquipmentService,
		jwtService:   servicesOptions.JwtService,
	}
}

func (s *Server) Run(addr string) error {
	s.mx.Use(s.RequestIDMiddleware)
	s.mx.Use(s.SettingUpLoggerMiddleware)
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", s.Register)
		r.Post("/auth/login", s.Login)
		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware)
			r.Use(s.LoggerExtensionMiddleware)

			r.Get("/users/me", s.GetMe)
			r.Put("/users/me/difficulty", s.SetDifficulty)
			r.Delete("/users/me", s.DeleteAccount)

			r.Post("/tasks", s.CreateTask)
			r.Get("/tasks", s.GetTasks)
			r.Get("/tasks/{id}", s.GetTask)
			r.Put("/tasks/{id}", s.UpdateTask)
			r.Delete("/tasks/{id}", s.DeleteTask)
			r.Patch("/tasks/{id}/status", s.ChangeTaskStatus)
			r.Patch("/tasks/{id}/complete", s.ToggleTaskComplete)
			r.Post("/tasks/{id}/pomodoro", s.RecordPomodoro)

			r.Post("/game/daily-check", s.DailyCheck)
			r.Get("/game/goals", s.GetGoals)
			r.Post("/game/goals/{period}/claim", s.ClaimGoal)

			r.Get("/items", s.GetItems)
			r.Get("/inventory", s.GetInventory)
			r.Post("/inventory/{id}/equip", s.EquipItem)
			r.Post("/inventory/{id}/unequip", s.UnequipItem)
		})
	})
	return http.ListenAndServe(addr, s.mx)
}
