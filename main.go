package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/SergeyKozyr/star-burger/config"
	httpapi "github.com/SergeyKozyr/star-burger/internal/api/http"
	"github.com/SergeyKozyr/star-burger/internal/geo"
	"github.com/SergeyKozyr/star-burger/internal/service"
	"github.com/SergeyKozyr/star-burger/internal/storage"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	db := config.MustInitPostgres()
	defer db.Close()

	redisClient := config.MustInitRedis()
	defer redisClient.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(); err != nil {
		log.Fatal("Failed to create database schema:", err)
	}

	var publisher service.OrderPublisher
	if os.Getenv("KAFKA_BROKER") != "" {
		writer := config.NewKafkaWriter("orders")
		defer writer.Close()
		publisher = storage.NewKafkaPublisher(writer)
	} else {
		log.Println("KAFKA_BROKER not set, order events disabled")
	}

	cache := storage.NewCoordinateCache(redisClient)
	geocoder := geo.NewYandexGeocoder(os.Getenv("YANDEX_API_KEY"))
	resolver := service.NewCoordinateResolver(cache, geocoder)

	baseURL := config.Getenv("BASE_URL", "http://localhost:8080")
	qrGenerator := &service.DefaultQRGenerator{BaseURL: baseURL}

	restaurantSvc := service.NewRestaurantService(repo)
	productSvc := service.NewProductService(repo)
	orderSvc := service.NewOrderService(repo, publisher, qrGenerator)
	matcherSvc := service.NewMatcherService(repo, repo, repo, resolver)

	handler := httpapi.NewHandler(restaurantSvc, productSvc, orderSvc, matcherSvc)
	router := httpapi.NewRouter(handler)

	port := config.Getenv("PORT", "8080")
	httpapi.StartServer(":"+port, router)
}
