package http

import (
	"log"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"go.elastic.co/apm/module/apmfiber"
)

func SetupHttpEngine() *fiber.App {
	app := fiber.New(fiber.Config{
		JSONEncoder: json.Marshal,
		JSONDecoder: json.Unmarshal,
	})
	app.Use(apmfiber.Middleware())

	return app
}

func StartHttpServer(app *fiber.App, port string) {
	err := app.Listen(":" + port)
	if err != nil {
		log.Fatal(err)
	}
}
