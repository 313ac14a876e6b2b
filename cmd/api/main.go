package main

import (
	"context"
	"encoding/json"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"tiendapanel/internal/adapter/api"
	"tiendapanel/internal/adapter/api/handler"
	apimiddleware "tiendapanel/internal/adapter/api/middleware"
	"tiendapanel/internal/adapter/api/router"
	"tiendapanel/internal/adapter/repository"
	"tiendapanel/internal/infrastructure/firebase"
	"tiendapanel/internal/infrastructure/realtime"
	"tiendapanel/internal/infrastructure/storage"
	"tiendapanel/internal/infrastructure/websocket"
	"tiendapanel/internal/usecase"
	"tiendapanel/pkg/config"
	"tiendapanel/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opt option.ClientOption
	credentialsPath := ""

	serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON")
	if serviceAccountJSON != "" {
		opt = option.WithCredentialsJSON([]byte(serviceAccountJSON))
	} else {
		credentialsPath = os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH")
		if credentialsPath == "" {
			credentialsPath = "./service-account.json"
		}
		if _, err := os.Stat(credentialsPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", credentialsPath)
		}
		opt = option.WithCredentialsFile(credentialsPath)
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opt)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	fbAuth, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opt)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	storageClient, err := storage.NewCloudStorageClient(ctx, cfg.StorageBucket, credentialsPath)
	if err != nil {
		log.Fatalf("Failed to initialize Cloud Storage: %v", err)
	}
	defer storageClient.Close()

	productRepo := repository.NewFirestoreProductRepository(firestoreClient)
	categoryRepo := repository.NewFirestoreCategoryRepository(firestoreClient)
	orderRepo := repository.NewFirestoreOrderRepository(firestoreClient)
	testimonialRepo := repository.NewFirestoreTestimonialRepository(firestoreClient)
	newsletterRepo := repository.NewFirestoreNewsletterRepository(firestoreClient)
	settingsRepo := repository.NewFirestoreSettingsRepository(firestoreClient)
	statsRepo := repository.NewFirestoreStatsRepository(firestoreClient)

	authClient := firebase.NewAuthClient(fbAuth)

	catalogUseCase := usecase.NewCatalogUseCase(productRepo, categoryRepo, storageClient)
	orderUseCase := usecase.NewOrderUseCase(orderRepo)
	testimonialUseCase := usecase.NewTestimonialUseCase(testimonialRepo)
	newsletterUseCase := usecase.NewNewsletterUseCase(newsletterRepo)
	settingsUseCase := usecase.NewSettingsUseCase(settingsRepo)
	dashboardUseCase := usecase.NewDashboardUseCase(statsRepo, orderRepo)

	handler.Setup(catalogUseCase, orderUseCase, testimonialUseCase, newsletterUseCase, settingsUseCase, dashboardUseCase)

	wsManager := websocket.NewManager()
	wsManager.Start(ctx)

	// Every change to products or orders is pushed to connected admin
	// sessions as a reload hint.
	bridge := realtime.NewBridge(firestoreClient)
	for _, collection := range []string{"products", "orders"} {
		sub := bridge.Subscribe(ctx, collection)
		go forwardEvents(sub, wsManager)
	}

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(authClient)
	authHandler := handler.NewAuthHandler(authClient)
	wsHandler := handler.NewWebSocketHandler(wsManager)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	router.Setup(e, authMiddleware, authHandler, wsHandler)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}

func forwardEvents(sub *realtime.Subscription, wsManager *websocket.Manager) {
	for ev := range sub.Events() {
		payload, err := json.Marshal(ev)
		if err != nil {
			logger.Error("Failed to encode realtime event: %v", err)
			continue
		}

		select {
		case wsManager.Broadcast <- payload:
		default:
			logger.Warn("Broadcast queue full, dropping %s event for %s", ev.Type, ev.Collection)
		}
	}
}
