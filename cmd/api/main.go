package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/alazarbeyenenew2/fileshare/internal/auth"
	"github.com/alazarbeyenenew2/fileshare/internal/config"
	"github.com/alazarbeyenenew2/fileshare/internal/file"
	"github.com/alazarbeyenenew2/fileshare/internal/folder"
	"github.com/alazarbeyenenew2/fileshare/internal/logger"
	"github.com/alazarbeyenenew2/fileshare/internal/server"
	"github.com/alazarbeyenenew2/fileshare/internal/share"
	"github.com/alazarbeyenenew2/fileshare/internal/storage"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	logg, err := logger.Init()
	if err != nil {
		panic("init logger: " + err.Error())
	}
	defer logg.Sync()

	cfg, err := config.Load()
	if err != nil {
		logg.Fatal("load config", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// A corrupt metadata document is fatal here, not silently treated as
	// an empty store.
	folderDoc, err := storage.OpenDocument[folder.Folder](cfg.Storage.FolderDocument())
	if err != nil {
		logg.Fatal("open folder metadata", zap.Error(err))
	}
	fileDoc, err := storage.OpenDocument[file.Metadata](cfg.Storage.FileDocument())
	if err != nil {
		logg.Fatal("open file metadata", zap.Error(err))
	}
	blobs, err := storage.NewBlobStore(cfg.Storage.UploadDir)
	if err != nil {
		logg.Fatal("open blob store", zap.Error(err))
	}

	authService := auth.NewService(cfg.Auth)

	folderRepo := folder.NewRepository(folderDoc)
	fileRepo := file.NewRepository(fileDoc)

	fileService := file.NewService(fileRepo, folderRepo, blobs, cfg.Storage.MaxUploadSize)
	folderService := folder.NewService(folderRepo, fileService)
	shareService := share.NewService(cfg.Share)

	router := server.NewRouter(server.Dependencies{
		Config:        cfg,
		AuthService:   authService,
		FolderService: folderService,
		FileService:   fileService,
		ShareService:  shareService,
		FolderStore:   folderDoc,
		FileStore:     fileDoc,
		BlobStore:     blobs,
	})

	httpServer := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logg.Info("fileshare API listening", zap.String("address", cfg.Server.Address()))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logg.Fatal("http server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	logg.Info("shutting down gracefully")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logg.Error("shutdown error", zap.Error(err))
	}
}
