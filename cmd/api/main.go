package main

import (
	_ "lapor_publik/docs"
	"lapor_publik/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Lapor Publik API
// @version         1.0
// @description     Citizen infrastructure report service (lifecycle, budget ledger, timeline, SMS intake) backed by DynamoDB.

// @contact.name   API Support

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	routes.Run()
}
