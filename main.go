// @title           Maintenance Log API
// @version         1.0
// @description     Backend for maintenance-shift log submissions backed by a spreadsheet store.

// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

// @schemes http https
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "maintlog/docs"
	"maintlog/handlers"
	"maintlog/services"
	"maintlog/storage"
)

func CORSConfig(frontendOrigin string) cors.Config {
	corsConfig := cors.DefaultConfig()
	if frontendOrigin == "" || frontendOrigin == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = []string{frontendOrigin}
		corsConfig.AllowCredentials = true
	}
	corsConfig.AllowHeaders = []string{
		"Content-Type", "Content-Length", "Accept-Encoding",
		"Accept", "Origin", "X-Requested-With", "Authorization", "Cache-Control",
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.MaxAge = 12 * time.Hour
	return corsConfig
}

func main() {
	cfg := storage.LoadConfig()

	store, err := storage.NewStore(cfg)
	if err != nil {
		log.Fatalf("Failed to configure log store: %v", err)
	}

	notifier := services.NewEmailNotifier(
		cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.NotifyEmail)

	// Nightly workbook snapshot; only meaningful for the local store.
	scheduler := cron.New()
	if wb, ok := store.(*storage.WorkbookStore); ok && cfg.BackupDir != "" {
		if _, err := scheduler.AddFunc("0 2 * * *", func() {
			dst, err := wb.Backup(cfg.BackupDir)
			if err != nil {
				log.Printf("Workbook backup failed: %v", err)
				return
			}
			log.Printf("Workbook backed up to %s", dst)
		}); err != nil {
			log.Fatalf("Failed to schedule backup job: %v", err)
		}
		scheduler.Start()
	}

	r := gin.Default()
	r.Use(cors.New(CORSConfig(cfg.FrontendOrigin)))

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Maintenance API is running...")
	})

	// One submit at a time per process; see SubmitMaintenanceLog.
	var submitMu sync.Mutex

	r.POST("/api/login", handlers.AdminLogin(cfg.AdminPasswordHash, cfg.JWTSecret))

	r.POST("/api/maintenance-log", handlers.SubmitMaintenanceLog(store, &submitMu, notifier))
	r.GET("/api/maintenance-log", handlers.GetMaintenanceLogs(store))
	r.GET("/api/maintenance-log/status", handlers.CheckSubmissionStatus(store))
	r.GET("/api/maintenance-log/report", handlers.GenerateDayReport(store, publicBaseURL(cfg)))
	r.DELETE("/api/maintenance-log/:timestamp/:shift",
		handlers.AdminAuthMiddleware(cfg.JWTSecret), handlers.DeleteMaintenanceLog(store))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	port := cfg.Port
	if _, err := strconv.Atoi(port); err != nil {
		log.Fatalf("Invalid PORT environment variable: %s. Must be a number.", port)
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("Maintenance log API listening on :%s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	scheduler.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exiting")
}

// publicBaseURL is what the report QR codes point at.
func publicBaseURL(cfg storage.Config) string {
	if base := os.Getenv("PUBLIC_BASE_URL"); base != "" {
		return base
	}
	return "http://localhost:" + cfg.Port
}
