package main

import (
	"database/sql"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"

	"rentacar/internal/api"
	"rentacar/internal/auth"
	"rentacar/internal/repository"
	"rentacar/internal/service"
)

func main() {
	godotenv.Load()
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL not set")
	}
	database, err := sql.Open("postgres", dbURL)
	if err != nil {
		log.Fatalf("Failed to open DB: %v", err)
	}
	if err := database.Ping(); err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}

	// The fleet is loaded once; the catalog never changes while running.
	vehicles, err := repository.NewCatalogRepository(database).LoadVehicles()
	if err != nil {
		log.Fatalf("Failed to load vehicle catalog: %v", err)
	}
	catalogSvc, err := service.NewCatalogService(vehicles)
	if err != nil {
		log.Fatalf("Invalid vehicle catalog: %v", err)
	}
	log.Printf("Loaded %d vehicles into the catalog", len(vehicles))

	bookingRepo := repository.NewBookingRepository(database)
	userRepo := repository.NewUserRepository(database)
	profileRepo := repository.NewProfileRepository(database)

	storageSvc, err := service.NewStorageServiceFromEnv()
	if err != nil {
		log.Fatalf("Failed to set up object storage: %v", err)
	}

	notifyClient := service.NewNotifyClient(os.Getenv("NOTIFY_API_BASE_URL"))
	bookingSvc := service.NewBookingService(catalogSvc, bookingRepo, notifyClient)
	authSvc := service.NewAuthService(userRepo)
	notifySvc := service.NewNotifyService()
	jobSvc := service.NewJobService(bookingRepo)

	catalogHandler := api.NewCatalogHandler(catalogSvc)
	bookingHandler := api.NewBookingHandler(bookingSvc)
	authHandler := api.NewAuthHandler(authSvc)
	profileHandler := api.NewProfileHandler(profileRepo, storageSvc)
	notifyHandler := api.NewNotifyHandler(notifySvc)

	r := mux.NewRouter()

	// Public endpoints
	r.HandleFunc("/api/cars", catalogHandler.ListCars).Methods("GET")
	r.HandleFunc("/api/cars/{slug}", catalogHandler.GetCar).Methods("GET")
	r.HandleFunc("/api/cars/{slug}/quote", catalogHandler.GetQuote).Methods("GET")
	r.HandleFunc("/api/send-booking-email", notifyHandler.SendBookingEmail).Methods("POST")
	r.HandleFunc("/api/test-email", notifyHandler.SendTestEmail).Methods("POST")

	r.HandleFunc("/api/auth/signup", authHandler.Signup).Methods("POST")
	r.HandleFunc("/api/auth/login", authHandler.Login).Methods("POST")
	r.HandleFunc("/api/auth/google", authHandler.GoogleSignIn).Methods("POST")
	r.HandleFunc("/api/auth/logout", authHandler.Logout).Methods("POST")
	r.HandleFunc("/api/auth/verify", authHandler.VerifyEmail).Methods("GET")
	r.HandleFunc("/api/auth/forgot-password", authHandler.ForgotPassword).Methods("POST")
	r.HandleFunc("/api/auth/reset-password", authHandler.ResetPassword).Methods("POST")

	// Guests may book; a valid token links the booking to the account
	r.Handle("/api/bookings", auth.OptionalAuth(http.HandlerFunc(bookingHandler.CreateBooking))).Methods("POST")

	// Account area (protected)
	my := r.PathPrefix("/api/my").Subrouter()
	my.Use(auth.RequireAuth)
	my.HandleFunc("/bookings", bookingHandler.ListMyBookings).Methods("GET")
	my.HandleFunc("/bookings/{code}/cancel", bookingHandler.CancelBooking).Methods("PUT")
	my.HandleFunc("/profile", profileHandler.GetProfile).Methods("GET")
	my.HandleFunc("/profile", profileHandler.UpdateProfile).Methods("PUT")
	my.HandleFunc("/addresses", profileHandler.ListAddresses).Methods("GET")
	my.HandleFunc("/addresses", profileHandler.AddAddress).Methods("POST")
	my.HandleFunc("/addresses/{id}/default", profileHandler.SetDefaultAddress).Methods("PUT")
	my.HandleFunc("/addresses/{id}", profileHandler.DeleteAddress).Methods("DELETE")
	my.HandleFunc("/documents", profileHandler.ListDocuments).Methods("GET")
	my.HandleFunc("/documents", profileHandler.AddDocument).Methods("POST")
	my.HandleFunc("/documents/{id}", profileHandler.UpdateDocument).Methods("PUT")
	my.HandleFunc("/documents/{id}", profileHandler.DeleteDocument).Methods("DELETE")

	c := cron.New()
	if _, err := c.AddFunc("@every 10m", jobSvc.Run); err != nil {
		log.Fatalf("Failed to schedule booking status job: %v", err)
	}
	c.Start()
	defer c.Stop()

	corsOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
	if corsOrigins == "" {
		corsOrigins = "*"
	}
	cors := handlers.CORS(
		handlers.AllowedOrigins(strings.Split(corsOrigins, ",")),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, handlers.CombinedLoggingHandler(os.Stdout, cors(r))))
}
