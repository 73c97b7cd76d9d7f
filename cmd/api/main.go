package main

import (
	_ "surface_rejuvenators/docs"
	"surface_rejuvenators/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Surface Rejuvenators Field Service API
// @version         1.0
// @description     Quotes, jobs, customer approval, job sheets, and inventory for an eco-friendly pressure washing company.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
