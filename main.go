package main

import (
	_ "github.com/joho/godotenv/autoload" // Autoload .env file.

	"github.com/charity-events/fundraiser-api/cmd/app"
)

// @title          Charity fundraiser API
// @version        1.0
// @description    Dinners, raffles, walks and concerts raising funds for charity.
//
// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html
//
// @host      localhost:8080
// @BasePath  /api/v1
func main() {
	if err := app.Start(); err != nil {
		panic(err)
	}
}
