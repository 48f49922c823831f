// @title        PDV API
// @version      1.0
// @description  API do ponto de venda: clientes, produtos e emissão de cupons.
// @host         localhost:8080
// @BasePath     /
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/jhoicas/pdv-api/docs"
	"github.com/jhoicas/pdv-api/internal/application/billing"
	"github.com/jhoicas/pdv-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/pdv-api/internal/infrastructure/pdf"
	"github.com/jhoicas/pdv-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/pdv-api/internal/interfaces/http"
	"github.com/jhoicas/pdv-api/pkg/config"
	"github.com/jhoicas/pdv-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	st, err := storage.Open(context.Background(), cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacenamiento")
	}
	defer st.Close()

	customerUC := usecase.NewCustomerUseCase(st.Customers, cfg.Store.Timeout)
	productUC := usecase.NewProductUseCase(st.Products, cfg.Store.Timeout)
	saleUC := billing.NewSaleUseCase(st.Customers, st.Products, st.Sales, cfg.Store.Timeout)

	// PDF: representación gráfica del cupón
	pdfGenerator := infrapdf.NewMarotoReceiptGenerator(cfg.App.Name)
	receiptPDFUC := billing.NewPDFUseCase(st.Sales, pdfGenerator, cfg.Store.Timeout)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.HTTP.AllowOrigin,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "PDV API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CustomerUC: customerUC,
		ProductUC:  productUC,
		SaleUC:     saleUC,
		ReceiptPDF: receiptPDFUC,
		Logger:     log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
