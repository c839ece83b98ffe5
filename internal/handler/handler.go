package handlers

import (
	"net/http"

	"blogql/internal/config"
	"blogql/internal/storage"
)

type Handlers struct {
	Storage storage.Storage
	Cfg     *config.Config
}

func NewHandlers(storage storage.Storage, config *config.Config) *Handlers {
	return &Handlers{
		Storage: storage,
		Cfg:     config,
	}
}

func HomeHandler(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, map[string]string{"message": "blogql API"}, http.StatusOK)
}

func HealthHandler(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, map[string]string{"status": "ok"}, http.StatusOK)
}
