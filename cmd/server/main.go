// File: cmd/server/main.go
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/bizchat-labs/bizchat/internal/config"
	"github.com/bizchat-labs/bizchat/internal/domain"
	"github.com/bizchat-labs/bizchat/internal/handlers"
	"github.com/bizchat-labs/bizchat/internal/middleware"
	"github.com/bizchat-labs/bizchat/internal/ratelimit"
	"github.com/bizchat-labs/bizchat/internal/repository/business"
	"github.com/bizchat-labs/bizchat/internal/repository/chunk"
	"github.com/bizchat-labs/bizchat/internal/repository/conversation"
	"github.com/bizchat-labs/bizchat/internal/repository/document"
	"github.com/bizchat-labs/bizchat/internal/repository/message"
	"github.com/bizchat-labs/bizchat/internal/services"
	"github.com/bizchat-labs/bizchat/internal/services/ai"
	"github.com/bizchat-labs/bizchat/internal/services/extract"
	"github.com/bizchat-labs/bizchat/internal/services/ingest"
	"github.com/bizchat-labs/bizchat/internal/services/reply"
	"github.com/bizchat-labs/bizchat/internal/services/retrieval"
)

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Max-Age", "86400")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func main() {
	cfg := config.Load()

	db, err := gorm.Open(sqlite.Open(cfg.DatabasePath), &gorm.Config{})
	if err != nil {
		log.Fatalf("DB Error: %v", err)
	}

	if err := db.AutoMigrate(
		&domain.Business{},
		&domain.Document{},
		&domain.Chunk{},
		&domain.Conversation{},
		&domain.Message{},
	); err != nil {
		log.Fatalf("DB Migration Error: %v", err)
	}

	// --- Repositories ---
	businessRepo := business.NewBusinessRepository(db)
	documentRepo := document.NewDocumentRepository(db)
	chunkRepo := chunk.NewChunkRepository(db)
	conversationRepo := conversation.NewConversationRepository(db)
	messageRepo := message.NewMessageRepository(db)

	// --- Services ---
	aiConfig := ai.DefaultConfig()
	aiConfig.EmbeddingKey = cfg.EmbeddingAPIKey
	aiConfig.EmbeddingBaseURL = cfg.EmbeddingBaseURL
	aiConfig.EmbeddingModel = cfg.EmbeddingModel
	aiConfig.LLMKey = cfg.LLMAPIKey
	aiConfig.LLMBaseURL = cfg.LLMBaseURL
	aiConfig.ChatModel = cfg.ChatModel

	aiProvider, err := ai.NewOpenAIProvider(aiConfig, services.NewLogger("ai"))
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize AI provider: %v", err)
	}

	extractService := extract.NewService(services.NewLogger("extract"))

	ingestService, err := ingest.NewService(
		ingest.DefaultConfig(),
		extractService,
		aiProvider,
		documentRepo,
		chunkRepo,
		services.NewLogger("ingest"),
	)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize ingest service: %v", err)
	}

	retrievalConfig := retrieval.DefaultConfig()
	retrievalConfig.TopK = cfg.RetrievalTopK
	retrievalService, err := retrieval.NewService(retrievalConfig, aiProvider, chunkRepo, services.NewLogger("retrieval"))
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize retrieval service: %v", err)
	}

	replyService, err := reply.NewService(reply.DefaultConfig(), aiProvider, services.NewLogger("reply"))
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize reply service: %v", err)
	}

	// --- Handlers ---
	authHandler := handlers.NewAuthHandler(businessRepo, []byte(cfg.JWTSecretKey))
	businessHandler := handlers.NewBusinessHandler(businessRepo, documentRepo, chunkRepo, conversationRepo, messageRepo)
	uploadHandler := handlers.NewUploadHandler(ingestService)
	chatHandler := handlers.NewChatHandler(businessRepo, conversationRepo, messageRepo, retrievalService, replyService, services.NewLogger("chat"))
	analyticsHandler := handlers.NewAnalyticsHandler(conversationRepo, messageRepo)
	widgetHandler := handlers.NewWidgetHandler(businessRepo)

	// --- Rate Limiters ---
	chatLimiter := ratelimit.NewMemoryRateLimiter(ratelimit.DefaultChatConfig())
	defer chatLimiter.Stop()
	authLimiter := ratelimit.NewMemoryRateLimiter(ratelimit.DefaultAuthConfig())
	defer authLimiter.Stop()

	// --- Router Setup ---
	r := mux.NewRouter()
	authMiddleware := middleware.NewJWTMiddleware([]byte(cfg.JWTSecretKey))
	chatRateLimit := middleware.NewRateLimitMiddleware(chatLimiter)
	authRateLimit := middleware.NewRateLimitMiddleware(authLimiter)

	r.Use(corsMiddleware)
	r.Use(middleware.RecoverPanic)
	r.Use(middleware.LoggingMiddleware)

	// --- Public Routes ---
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK); _, _ = w.Write([]byte("OK")) }).Methods("GET")
	r.Handle("/register", authRateLimit(http.HandlerFunc(authHandler.Register))).Methods("POST")
	r.Handle("/login", authRateLimit(http.HandlerFunc(authHandler.Login))).Methods("POST")
	r.HandleFunc("/logout", authHandler.Logout).Methods("POST")

	// --- Public Chat Routes (token-addressed) ---
	r.HandleFunc("/chat/{token}", widgetHandler.ServeWidget).Methods("GET")
	r.Handle("/chat/{token}/message", chatRateLimit(http.HandlerFunc(chatHandler.HandleMessage))).Methods("POST")
	r.HandleFunc("/chat/{token}/history", chatHandler.GetHistory).Methods("GET")

	// --- Protected Owner Routes ---
	api := r.PathPrefix("/api").Subrouter()
	api.Use(authMiddleware)
	api.HandleFunc("/business", businessHandler.GetBusiness).Methods("GET")
	api.HandleFunc("/business", businessHandler.DeleteBusiness).Methods("DELETE")
	api.HandleFunc("/business/documents", businessHandler.ListDocuments).Methods("GET")
	api.HandleFunc("/business/documents", uploadHandler.UploadDocuments).Methods("POST")
	api.HandleFunc("/business/documents/{id:[0-9]+}", businessHandler.DeleteDocument).Methods("DELETE")
	api.HandleFunc("/business/analytics", analyticsHandler.GetAnalytics).Methods("GET")

	// --- Server Configuration ---
	port := ":" + cfg.ServerPort
	srv := &http.Server{
		Addr:    port,
		Handler: r,
	}

	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Printf("Server starting on port %s", port)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server startup failed: %v", err)
		}
	}()

	// --- Graceful Shutdown ---
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Println("Shutting down server gracefully...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
	log.Println("Server stopped.")
}
