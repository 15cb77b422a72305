package main

import (
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"PhotoMarketAPI/external/resend"
	extstripe "PhotoMarketAPI/external/stripe"

	"PhotoMarketAPI/internal/cart"
	"PhotoMarketAPI/internal/checkout"
	"PhotoMarketAPI/internal/db"
	"PhotoMarketAPI/internal/events"
	"PhotoMarketAPI/internal/repository"
	"PhotoMarketAPI/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
)

func main() {
	_ = godotenv.Load()

	// ======================
	// INFRA
	// ======================
	pool, err := db.Connect()
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal(err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr: envOr("REDIS_ADDR", "localhost:6379"),
	})
	cartStore := cart.NewStore(cart.NewRedisPersistence(redisClient))

	// ======================
	// EXTERNALS
	// ======================
	gateway, err := extstripe.NewClient()
	if err != nil {
		log.Fatal(err)
	}

	var mailer services.ReceiptMailer
	if os.Getenv("RESEND_API_KEY") != "" {
		m, err := resend.NewResendMailer("PhotoMarket<receipts@resend.dev>")
		if err != nil {
			log.Fatal(err)
		}
		mailer = m
	}

	var publisher services.OrderEventPublisher
	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		p, err := events.NewProducer(strings.Split(brokers, ","))
		if err != nil {
			log.Fatal(err)
		}
		defer p.Close()
		publisher = p
	} else {
		slog.Info("KAFKA_BROKERS not set, order events disabled")
	}

	// ======================
	// REPOSITORIES
	// ======================
	authRepo := repository.NewAuthRepository(pool)
	albumRepo := repository.NewAlbumRepository(pool)
	packageRepo := repository.NewPricingPackageRepository(pool)
	photographerRepo := repository.NewPhotographerRepository(pool)
	orderRepo := repository.NewOrderRepository(pool)
	paymentRepo := repository.NewPaymentRepository(pool)
	adminRepo := repository.NewAdminRepository(pool)

	// ======================
	// SERVICES
	// ======================
	commission := checkout.PercentCommission(envInt("PLATFORM_COMMISSION_BPS", 1500))

	authSvc := services.NewAuthService(authRepo)
	albumSvc := services.NewAlbumService(albumRepo, packageRepo)
	photographerSvc := services.NewPhotographerService(photographerRepo)
	cartSvc := services.NewCartService(cartStore, albumRepo, packageRepo, photographerRepo)
	checkoutSvc := services.NewCheckoutService(
		cartStore, photographerRepo, orderRepo, paymentRepo, gateway, commission,
		envOr("CHECKOUT_SUCCESS_URL", "http://localhost:3000/checkout/success"),
		envOr("CHECKOUT_CANCEL_URL", "http://localhost:3000/checkout/cancel"),
	)
	orderSvc := services.NewOrderService(orderRepo)
	paymentSvc := services.NewPaymentService(paymentRepo, orderRepo, albumRepo, cartStore, publisher, mailer)
	adminSvc := services.NewAdminService(adminRepo)

	// ======================
	// ECHO
	// ======================
	e := echo.New()
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	api := e.Group("/photo-market")

	// ======================
	// ROUTES (ONLY REGISTRATION)
	// ======================
	registerAuthRoutes(api, authSvc)
	registerAlbumRoutes(api, albumSvc)
	registerPhotographerRoutes(api, photographerSvc)
	registerCartRoutes(api, cartSvc)
	registerCheckoutRoutes(api, checkoutSvc)
	registerOrderRoutes(api, orderSvc)
	registerPaymentRoutes(api, paymentSvc)
	registerAdminRoutes(api, adminSvc)

	// ======================
	// SERVER
	// ======================
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	e.Logger.Fatal(e.Start(":" + port))
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}
