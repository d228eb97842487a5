package main

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/voxtelecom/vendas-cli/internal/stubapi"
)

// vendas-stub runs an in-memory stand-in for the sales backend, for local
// development of the dashboard client.
func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	storage := stubapi.NewLocalStorage()
	if err := stubapi.Seed(storage); err != nil {
		panic(fmt.Errorf("error seeding stub storage: %v", err))
	}

	r := gin.Default()
	stubapi.InitRoutes(r, storage, logger)

	addr := os.Getenv("VENDAS_STUB_ADDR")
	if addr == "" {
		addr = ":8081"
	}

	logger.Info("stub backend listening", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		panic(fmt.Errorf("error trying to start server: %v", err))
	}
}
