package main

import (
	"github.com/SundayYogurt/signup_service/config"
	"github.com/SundayYogurt/signup_service/internal/api"
)

func main() {
	cfg := config.LoadConfig()
	api.StartServer(cfg)
}
