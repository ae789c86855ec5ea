package api

import (
	"log/slog"

	"github.com/alexanderramin/cockpit/internal/app"
	"github.com/gorilla/mux"
)

// Services is the set of use cases the HTTP surface drives.
type Services struct {
	Flights app.FlightUseCase
	Rewards app.RewardsUseCase
	Status  app.StatusUseCase
}

// NewRouter creates and configures a new router with all API endpoints.
func NewRouter(svc Services, logger *slog.Logger) *mux.Router {
	h := &handlers{svc: svc}

	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()
	api.Use(requestLogger(logger))

	api.HandleFunc("/status", h.getStatus).Methods("GET")

	// Flight lifecycle
	api.HandleFunc("/flight", h.startFlight).Methods("POST")
	api.HandleFunc("/flight/pause", h.pauseFlight).Methods("POST")
	api.HandleFunc("/flight/resume", h.resumeFlight).Methods("POST")
	api.HandleFunc("/flight/land", h.landFlight).Methods("POST")
	api.HandleFunc("/flight/abort", h.abortFlight).Methods("POST")
	api.HandleFunc("/flight/note", h.updateNote).Methods("PUT")
	api.HandleFunc("/draft", h.saveDraft).Methods("PUT")

	// Logbook
	api.HandleFunc("/log", h.listLog).Methods("GET")
	api.HandleFunc("/log/{id}", h.deleteLogEntry).Methods("DELETE")

	// Rewards
	api.HandleFunc("/cabins", h.listCabins).Methods("GET")
	api.HandleFunc("/cabins/{id}/purchase", h.purchaseCabin).Methods("POST")
	api.HandleFunc("/cabins/{id}/select", h.selectCabin).Methods("POST")
	api.HandleFunc("/goal", h.setGoal).Methods("PUT")
	api.HandleFunc("/bonus/claim", h.claimBonus).Methods("POST")
	api.HandleFunc("/notes", h.setNotes).Methods("PUT")
	api.HandleFunc("/reset", h.reset).Methods("POST")

	return r
}
