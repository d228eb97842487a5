package stubapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/voxtelecom/vendas-cli/internal/vendas"
)

// InitRoutes registers the sale CRUD endpoints on the given Gin engine and
// binds each method and path to the appropriate handler function.
func InitRoutes(e *gin.Engine, storage Storage, logger *zap.Logger) {
	handler := NewSalesHandler(storage, logger)

	e.GET("/sales", handler.handleListSales)
	e.GET("/sales/:id", handler.handleGetSale)
	e.POST("/sales", handler.handleCreateSale)
	e.PUT("/sales/:id", handler.handleUpdateSale)
	e.DELETE("/sales/:id", handler.handleDeleteSale)

	e.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})
}

// Seed fills the storage with a handful of sample records covering every
// visual state, so the TUI has something to show out of the box.
func Seed(storage Storage) error {
	obs := "Cliente pediu instalação pela manhã"
	saleDate := time.Date(2026, 8, 12, 14, 30, 0, 0, time.UTC)
	installDate := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)

	samples := []*vendas.Sale{
		{
			ID:                uuid.NewString(),
			CpfCnpj:           "123.456.789-00",
			Region:            "SP",
			Ticket:            "T-1043",
			CallerIDPhone:     "11 98888-0001",
			Phone:             "11 97777-0001",
			SaleDate:          &saleDate,
			InternetPlanSpeed: "500MB",
			PaymentMethod:     "Cartão",
			InternetType:      "Fibra",
			InstallationDate:  &installDate,
			InstallationShift: "Manhã",
			CustomerName:      "Maria Souza",
			ServiceOrder:      "OS-2201",
			Extension:         "104",
			Status:            vendas.StatusInstalada,
			Observation:       &obs,
			User:              vendas.Agent{Name: "Carlos Lima", EmployeeID: "E100"},
		},
		{
			ID:                uuid.NewString(),
			CpfCnpj:           "12.345.678/0001-99",
			Region:            "RJ",
			Ticket:            "T-1044",
			CallerIDPhone:     "21 98888-0002",
			Phone:             "21 97777-0002",
			SaleDate:          &saleDate,
			InternetPlanSpeed: "700MB",
			PaymentMethod:     "Boleto",
			InternetType:      "Fibra",
			InstallationShift: "Tarde",
			CustomerName:      "Padaria Central LTDA",
			ServiceOrder:      "OS-2202",
			Extension:         "105",
			Status:            vendas.StatusComPendencia,
			User:              vendas.Agent{Name: "Carlos Lima", EmployeeID: "E100"},
		},
		{
			ID:                uuid.NewString(),
			CpfCnpj:           "987.654.321-00",
			Region:            "MG",
			Ticket:            "T-1045",
			CallerIDPhone:     "31 98888-0003",
			Phone:             "31 97777-0003",
			InternetPlanSpeed: "300MB",
			PaymentMethod:     "Débito",
			InternetType:      "Rádio",
			InstallationShift: "Manhã",
			CustomerName:      "João Pereira",
			ServiceOrder:      "OS-2203",
			Extension:         "106",
			Status:            vendas.StatusCancelada,
			User:              vendas.Agent{Name: "Ana Castro", EmployeeID: "E200"},
		},
		{
			ID:                uuid.NewString(),
			CpfCnpj:           "456.789.123-00",
			Region:            "RS",
			Ticket:            "T-1046",
			CallerIDPhone:     "51 98888-0004",
			Phone:             "51 97777-0004",
			SaleDate:          &saleDate,
			InternetPlanSpeed: "1GB",
			PaymentMethod:     "Cartão",
			InternetType:      "Fibra",
			InstallationShift: "Tarde",
			CustomerName:      "Paulo Mendes",
			ServiceOrder:      "OS-2204",
			Extension:         "107",
			Status:            vendas.StatusEmAprovisionamento,
			User:              vendas.Agent{Name: "Ana Castro", EmployeeID: "E200"},
		},
	}

	for _, sale := range samples {
		if err := storage.Set(sale); err != nil {
			return err
		}
	}
	return nil
}
