package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"photo-studio-server/modules/catalog"
	"photo-studio-server/modules/common/config"
	"photo-studio-server/modules/events"
	"photo-studio-server/modules/gateway"
	"photo-studio-server/modules/history"
	"photo-studio-server/modules/mirror"
	"photo-studio-server/modules/session"
	"photo-studio-server/modules/studio"
)

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "ok",
		"service": "photo-studio-server",
	})
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}

	gw, err := gateway.NewService(context.Background())
	if err != nil {
		log.Fatalf("❌ Failed to initialize generation gateway: %v", err)
	}

	sessions := session.NewStore()
	sessions.StartCleanup()

	hist := history.NewStore(history.NewSnapshotter())
	hub := events.NewHub()
	m := mirror.New(mirror.NewDiskStorage())

	service := studio.NewService(sessions, hist, gw, m, hub)

	r := mux.NewRouter()
	r.HandleFunc("/", healthCheck).Methods("GET")
	r.HandleFunc("/health", healthCheck).Methods("GET")
	r.HandleFunc("/ws", hub.HandleWebSocket)

	catalog.NewHandler().RegisterRoutes(r)
	studio.NewHandler(service).RegisterRoutes(r)

	handler := enableCORS(r)

	log.Printf("🚀 Photo Studio Server starting on port %s", cfg.Port)
	log.Printf("📡 WebSocket endpoint: ws://localhost:%s/ws", cfg.Port)
	log.Printf("❤️  Health check: http://localhost:%s/health", cfg.Port)

	if err := http.ListenAndServe(":"+cfg.Port, handler); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
