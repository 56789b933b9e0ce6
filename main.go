package main

import (
	"registro/config"
	"registro/routes"
	"registro/store"

	"github.com/gofiber/fiber/v2/log"
)

func main() {
	config.LoadConfig()
	store.Init(config.FormTTL)

	app := routes.NewApp()

	if err := app.Listen(config.AppAddr); err != nil {
		log.Fatal(err)
	}
}
