package main

import (
	bookingshandler "roomdesk/internal/bookings/handler"
	bookingsrepo "roomdesk/internal/bookings/repository"
	bookingsservice "roomdesk/internal/bookings/service"
	"roomdesk/internal/bookings/validator"
	roomshandler "roomdesk/internal/rooms/handler"
	roomsrepo "roomdesk/internal/rooms/repository"
	roomsservice "roomdesk/internal/rooms/service"
	usersrepo "roomdesk/internal/users/repository"
	"roomdesk/pkg/app"
	"roomdesk/pkg/config"
	"roomdesk/pkg/events"
)

const ServiceName = "roomdesk"

func main() {
	cfg := config.Load(ServiceName)
	cfg.SetMongo()

	cfg.Log.Info("Starting room booking service")

	bookingRepo := bookingsrepo.NewMongoBookingRepository(cfg)
	lockRepo := bookingsrepo.NewRoomLockRepository(cfg)
	roomRepo := roomsrepo.NewMongoRoomRepository(cfg)
	userRepo := usersrepo.NewMongoUserRepository(cfg)

	publisher := events.NewPublisher(cfg.KafkaBrokers, cfg.KafkaTopic, cfg.Log)

	bookingService := bookingsservice.NewBookingService(
		bookingRepo,
		lockRepo,
		roomRepo,
		userRepo,
		validator.NewBookingValidator(),
		publisher,
		cfg,
	)
	roomService := roomsservice.NewRoomService(roomRepo, bookingRepo, cfg)

	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(
		bookingshandler.NewBookingHandler(bookingService, cfg.Log),
		roomshandler.NewRoomHandler(roomService, cfg.Log),
	)
	serverApp.OnShutdown(func() {
		if err := publisher.Close(); err != nil {
			cfg.Log.Error("Failed to close event publisher", "error", err)
		}
	})
	serverApp.Run()
}
