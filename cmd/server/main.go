package main

import (
	"log"
	"os"
	"runtime/debug"

	"github.com/ghazalrb98/sep/modules/sponsorship"
	"github.com/ghazalrb98/sep/pkg/application"
	"github.com/ghazalrb98/sep/pkg/configuration"
	"github.com/ghazalrb98/sep/pkg/eventbus"
	"github.com/ghazalrb98/sep/pkg/middleware"
	"github.com/ghazalrb98/sep/pkg/server"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			log.Println(r)
			debug.PrintStack()
			os.Exit(1)
		}
	}()

	conf := configuration.Use()
	logger := conf.Logger()

	app := application.New(&application.ApplicationOptions{
		EventPublisher: eventbus.NewEventPublisher(logger),
		Logger:         logger,
	})
	app.RegisterMiddleware(middleware.WithLogger(logger))

	if err := sponsorship.NewModule().Register(app); err != nil {
		logger.WithError(err).Fatal("failed to register sponsorship module")
	}

	logger.WithField("address", conf.Address()).Info("starting server")
	if err := server.NewHTTPServer(app).Start(conf.Address()); err != nil {
		logger.WithError(err).Fatal("server stopped")
	}
}
