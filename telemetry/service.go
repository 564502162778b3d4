// Package telemetry streams observation frames from a running skirmish to
// websocket viewers. Frames travel through the process-wide notify bus so the
// simulation never holds a reference to any viewer.
package telemetry

import (
	"log"
	"net/http"
	"os"
	"time"

	notify "github.com/bitly/go-notify"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

// EventFrame is the notify topic observation frames are published on.
const EventFrame = "telemetry:frame"

// PublishFrame hands one frame to whoever is watching. The tiny timeout keeps
// the simulation loop from ever blocking on a slow viewer.
func PublishFrame(frame []byte) {
	notify.PostTimeout(EventFrame, string(frame), time.Millisecond)
}

// StatusFetcher answers the /status endpoint.
type StatusFetcher func() interface{}

type TelemetryService struct {
	addr        string
	fetchStatus StatusFetcher
}

func NewTelemetryService(addr string, fetchStatus StatusFetcher) *TelemetryService {
	return &TelemetryService{
		addr:        addr,
		fetchStatus: fetchStatus,
	}
}

func (service *TelemetryService) ListenAndServe() error {
	logger := os.Stdout
	router := mux.NewRouter()

	router.Handle("/status", handlers.CombinedLoggingHandler(logger,
		http.HandlerFunc(Status(service.fetchStatus)),
	)).Methods("GET")

	router.Handle("/ws", handlers.CombinedLoggingHandler(logger,
		http.HandlerFunc(Websocket()),
	)).Methods("GET")

	log.Println("Telemetry listening on " + service.addr)

	return http.ListenAndServe(service.addr, router)
}
