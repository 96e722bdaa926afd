package main

import (
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/chittyos/chittyconcierge/internal/infra/cache"
	"github.com/chittyos/chittyconcierge/internal/infra/database"
	"github.com/chittyos/chittyconcierge/internal/infra/http/handlers"
	"github.com/chittyos/chittyconcierge/internal/infra/http/middleware"
	"github.com/chittyos/chittyconcierge/internal/infra/integration/chittyid"
	"github.com/chittyos/chittyconcierge/internal/infra/integration/openai"
	"github.com/chittyos/chittyconcierge/internal/infra/integration/twilio"
	"github.com/chittyos/chittyconcierge/internal/infra/mail"
	"github.com/chittyos/chittyconcierge/internal/infra/queue"
	"github.com/chittyos/chittyconcierge/internal/usecase"
)

func main() {
	godotenv.Load()

	db, err := database.NewDBConnection(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     getenv("REDIS_ADDR", "localhost:6379"),
		Password: os.Getenv("REDIS_PASSWORD"),
	})
	defer redisClient.Close()

	rabbitMQ, err := queue.NewRabbitMQ(
		getenv("RABBITMQ_USER", "guest"),
		getenv("RABBITMQ_PASS", "guest"),
		getenv("RABBITMQ_HOST", "localhost"),
		getenv("RABBITMQ_PORT", "5672"),
	)
	if err != nil {
		log.Fatal(err)
	}
	defer rabbitMQ.Conn.Close()
	defer rabbitMQ.Ch.Close()

	chittyID := getenv("CHITTY_ID", "CHITTY-CONCIERGE-001")

	// 1. Repositories and stores
	leadRepo := database.NewLeadRepository(db)
	credCache := cache.NewRedisStore(redisClient)

	// 2. Integrations
	idClient := chittyid.NewClient(os.Getenv("CHITTYID_SERVICE_URL"), handlers.ServiceName, chittyID)
	modelClient := openai.NewClient(os.Getenv("OPENAI_API_KEY"), os.Getenv("OPENAI_MODEL"))
	smsGateway := twilio.NewClient()
	producer := queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)
	alertSender := mail.NewEmailSender(
		os.Getenv("MAIL_HOST"),
		getenvInt("MAIL_PORT", 587),
		os.Getenv("MAIL_USER"),
		os.Getenv("MAIL_PASS"),
		getenv("ALERT_FROM", "concierge@chitty.cc"),
		os.Getenv("MANAGER_EMAIL"),
	)

	// 3. Worker (consumes lead events, emails the manager for urgent ones)
	worker := queue.NewWorker(rabbitMQ.Ch, alertSender)
	go worker.Start(queue.QueueName)

	// 4. UseCases
	categorizeUC := usecase.NewCategorizeMessageUseCase(modelClient)
	credentialsUC := usecase.NewGetCredentialsUseCase(credCache, idClient)
	ingestUC := usecase.NewIngestMessageUseCase(categorizeUC, credentialsUC, leadRepo, smsGateway, producer)
	sendSMSUC := usecase.NewSendSMSUseCase(credentialsUC, smsGateway)

	// 5. Handlers
	webhookHandler := handlers.NewWebhookHandler(ingestUC)
	leadHandler := handlers.NewLeadHandler(leadRepo)
	smsHandler := handlers.NewSMSHandler(sendSMSUC)
	healthHandler := handlers.NewHealthHandler(chittyID)
	statusHandler := handlers.NewStatusHandler(chittyID)

	// 6. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "OPTIONS"},
	}))

	r.Get("/health", healthHandler.Handle)
	r.Get("/api/v1/status", statusHandler.Handle)
	r.Post("/webhook/sms", webhookHandler.Handle)
	r.Get("/api/leads", leadHandler.HandleList)
	r.Patch("/api/leads/{id}", leadHandler.HandleUpdateStatus)
	r.Post("/api/sms/send", smsHandler.HandleSend)
	r.Handle("/metrics", promhttp.Handler())

	port := ":" + getenv("PORT", "8080")
	log.Printf("🔥 ChittyConcierge listening on %s", port)
	http.ListenAndServe(port, r)
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
