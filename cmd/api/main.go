package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	graphqlgo "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"

	"blogql/cmd/app"
	"blogql/internal/config"
	gql "blogql/internal/graphql"
	handlers "blogql/internal/handler"
	"blogql/internal/middleware"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	if cfg.JWTSecretKey == "" {
		log.Fatal("JWT_SECRET_KEY is not set")
	}

	db, repo, services, store := app.App(cfg)
	defer db.CloseDB()

	handler := handlers.NewHandlers(store, cfg)

	schema := graphqlgo.MustParseSchema(gql.Schema, gql.NewResolver(services, repo))

	// setting up routes
	router := mux.NewRouter()
	router.HandleFunc("/", handlers.HomeHandler)
	router.HandleFunc("/health", handlers.HealthHandler)
	router.Handle("/graphql", &relay.Handler{Schema: schema}).Methods(http.MethodPost)
	router.HandleFunc("/put-image", handler.UploadImage).Methods(http.MethodPut)

	handlerChain := middleware.Chain(
		router,
		middleware.LoggingMiddleware,
		middleware.Identity(services.Auth),
		middleware.CORSMiddleware,
	)

	// Starting the server
	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	log.Printf("Server started on %s", addr)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
