package main

import (
	"context"
	"log"

	"booking-gateway/config"
	"booking-gateway/internal/module/booking/handler"
	"booking-gateway/internal/module/booking/repositories"
	"booking-gateway/internal/module/booking/usecases"
	"booking-gateway/internal/pkg/bokadirekt"
	"booking-gateway/internal/pkg/http"
	"booking-gateway/internal/pkg/httpclient"
	log_internal "booking-gateway/internal/pkg/log"
	"booking-gateway/internal/pkg/messagestream"
	"booking-gateway/internal/pkg/middleware"
	router "booking-gateway/internal/route"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

func main() {
	cfg := config.InitConfig()

	app, messageRouters := initService(cfg)

	for _, router := range messageRouters {
		ctx := context.Background()
		go func(router *message.Router) {
			err := router.Run(ctx)
			if err != nil {
				log.Fatal(err)
			}
		}(router)
	}

	// start http server
	http.StartHttpServer(app, cfg.HttpServer.Port)
}

func initService(cfg *config.Config) (*fiber.App, []*message.Router) {
	// init logger
	logZap := log_internal.SetupLogger()
	log_internal.Init(logZap)
	logger := log_internal.GetLogger()
	// init http client
	cb := httpclient.InitCircuitBreaker(&cfg.HttpClient, cfg.HttpClient.Type)
	httpClient := httpclient.InitHttpClient(&cfg.HttpClient, cb)

	ctx := context.Background()
	// init message stream
	amqp := messagestream.NewAmpq(&cfg.MessageStream)

	// Init Subscriber
	subscriber, err := amqp.NewSubscriber()
	if err != nil {
		logger.Error(ctx, "Failed to create subscriber", err)
	}

	// Init Publisher
	publisher, err := amqp.NewPublisher()
	if err != nil {
		logger.Error(ctx, "Failed to create publisher", err)
	}

	// the Bokadirekt mirror is optional, enabled by configuring a key
	var bokadirektClient *bokadirekt.Client
	if cfg.Bokadirekt.APIKey != "" {
		bokadirektClient, err = bokadirekt.New(cfg.Bokadirekt.BaseURL, cfg.Bokadirekt.APIKey, httpClient)
		if err != nil {
			logger.Error(ctx, "Failed to create bokadirekt client", err)
		}
	}

	bookingRepo := repositories.New(logger, httpClient, &cfg.Webhook, bokadirektClient)
	bookingUsecase := usecases.New(bookingRepo, logger, publisher)
	middleware := middleware.Middleware{
		Log: logZap,
	}

	validator := validator.New()
	bookingHandler := handler.BookingHandler{
		Log:       logZap,
		Validator: validator,
		Usecase:   bookingUsecase,
		Publish:   publisher,
	}

	var messageRouters []*message.Router

	if bokadirektClient != nil {
		consumeForwardedRouter, err := messagestream.NewRouter(publisher, "booking_forwarded_poisoned", "booking_forwarded_handler", usecases.TopicBookingForwarded, subscriber, bookingHandler.ConsumeBookingForwarded)
		if err != nil {
			logger.Error(ctx, "Failed to create consume_booking_forwarded router", err)
		}

		messageRouters = append(messageRouters, consumeForwardedRouter)
	}

	serverHttp := http.SetupHttpEngine()

	r := router.Initialize(serverHttp, &bookingHandler, &middleware)

	return r, messageRouters
}
