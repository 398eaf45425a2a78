package main

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	fbapp "firebase.google.com/go/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	"rentify/internal/adapter/api"
	"rentify/internal/adapter/api/handler"
	"rentify/internal/adapter/api/router"
	"rentify/internal/adapter/repository"
	"rentify/internal/infrastructure/mail"
	"rentify/internal/infrastructure/storage"
	"rentify/internal/usecase"
	"rentify/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opts []option.ClientOption
	if serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON"); serviceAccountJSON != "" {
		log.Printf("Using Firebase service account from environment variable")
		opts = append(opts, option.WithCredentialsJSON([]byte(serviceAccountJSON)))
	} else if serviceAccountPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH"); serviceAccountPath != "" {
		log.Printf("Using Firebase service account from file: %s", serviceAccountPath)
		opts = append(opts, option.WithCredentialsFile(serviceAccountPath))
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{
		ProjectID:     cfg.FirebaseProject,
		StorageBucket: cfg.StorageBucket,
	}, opts...)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opts...)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	storageClient, err := firebaseApp.Storage(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Cloud Storage: %v", err)
	}

	bucket, err := storageClient.DefaultBucket()
	if err != nil {
		log.Fatalf("Failed to get storage bucket: %v", err)
	}

	photoStorage := storage.NewCloudStorageClient(bucket, cfg.StorageBucket)
	mailer := mail.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)

	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	propertyRepo := repository.NewFirestorePropertyRepository(firestoreClient)

	authUseCase := usecase.NewAuthUseCase(userRepo)
	propertyUseCase := usecase.NewPropertyUseCase(propertyRepo, userRepo, photoStorage)
	enquiryUseCase := usecase.NewEnquiryUseCase(userRepo, mailer)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	router.Setup(
		e,
		handler.NewAuthHandler(authUseCase),
		handler.NewPropertyHandler(propertyUseCase),
		handler.NewEnquiryHandler(enquiryUseCase),
		handler.NewHealthHandler(),
	)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
