package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"example.com/clothify/internal/config"
	"example.com/clothify/internal/infra/media"
	"example.com/clothify/internal/infra/persistence/mysql"
	"example.com/clothify/internal/infra/security"
	httpapi "example.com/clothify/internal/interface/http"
	authuc "example.com/clothify/internal/usecase/auth"
	categoryuc "example.com/clothify/internal/usecase/category"
	productuc "example.com/clothify/internal/usecase/product"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("mysql open: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := db.PingContext(ctx); err != nil {
		cancel()
		log.Fatalf("mysql ping: %v", err)
	}
	cancel()

	mediaStore, err := media.NewStore(cfg.UploadDir, cfg.MaxUploadBytes)
	if err != nil {
		log.Fatalf("media store: %v", err)
	}

	userRepo := mysql.NewUserRepository(db)
	categoryRepo := mysql.NewCategoryRepository(db)
	productRepo := mysql.NewProductRepository(db)

	hasher := security.NewBcryptService(0)
	tokenSvc := security.NewJWTService(cfg.JWTSecret, cfg.JWTExpiration())

	api := httpapi.NewAPI(httpapi.Dependencies{
		AuthService:     authuc.NewService(userRepo, hasher, tokenSvc),
		CategoryService: categoryuc.NewService(categoryRepo, productRepo),
		ProductService:  productuc.NewService(productRepo, mediaStore),
		TokenService:    tokenSvc,
		UploadDir:       mediaStore.Dir(),
		MaxUploadBytes:  cfg.MaxUploadBytes,
		AllowedOrigins:  cfg.CORSOrigins,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      api.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		log.Printf("listening on :%s ...", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("serve: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Println("shutting down ...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
