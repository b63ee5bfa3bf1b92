package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"memorymap"
	"memorymap/config"
	"memorymap/internal/application/usecase"
	"memorymap/internal/infrastructure/database"
	"memorymap/internal/infrastructure/keyvalue"
	"memorymap/internal/infrastructure/minio"
	"memorymap/internal/presentation"
	"memorymap/internal/presentation/handler"
	"memorymap/pkg/logger"
)

func HandleRun(args []string) {
	if len(args) < 3 {
		ExitOnError(errors.New("at least 1 arguments expected\nuse help command for more information"))
	}

	cfg, err := config.Load(args[2])
	if err != nil {
		ExitOnError(err)
	}

	logger.InitGlobalLogger(&cfg.Logger)

	logger.Info("running memorymap", "version", memorymap.StringVersion())

	kv, err := keyvalue.Connect(cfg.KVConfig)
	if err != nil {
		ExitOnError(err)
	}
	defer kv.Close()

	db, err := database.Connect(cfg.DBConfig)
	if err != nil {
		ExitOnError(err)
	}
	defer func() {
		if err := db.Stop(); err != nil {
			logger.Error("disconnecting database failed", "err", err)
		}
	}()

	minioClient, err := minio.New(&cfg.MinIOClient)
	if err != nil {
		ExitOnError(err)
	}

	blobs := usecase.NewBlobService(
		database.NewMediaWriter(db),
		database.NewMediaRetriever(db),
		database.NewMediaRemover(db),
		minio.NewUploader(minioClient.MinioClient, &cfg.MinIOUploader),
		minio.NewGetter(minioClient.MinioClient, &cfg.MinIOGetter),
		minio.NewRemover(minioClient.MinioClient, &cfg.MinIORemover),
		cfg.MinIOClient.Bucket,
	)

	pins := usecase.NewPinService(kv, blobs)
	trips := usecase.NewTripService(kv)

	loadCtx, cancelLoad := context.WithTimeout(context.Background(), 30*time.Second)
	pins.Load(loadCtx)
	trips.Load(loadCtx)
	cancelLoad()

	pinHandler := handler.NewPinHandler(pins)
	mediaHandler := handler.NewMediaHandler(pins, blobs)
	tripHandler := handler.NewTripHandler(trips)

	e := echo.New()
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType, echo.HeaderContentLength},
		AllowMethods: []string{http.MethodGet, http.MethodPut, http.MethodPost,
			http.MethodPatch, http.MethodDelete, http.MethodHead, http.MethodOptions},
		MaxAge: 86400,
	}))
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.Secure())
	e.Use(echoMiddleware.BodyLimit(cfg.Default.BodyLimit))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	e.GET("/pins", pinHandler.HandleList)
	e.POST("/pins", pinHandler.HandleCreate)
	e.GET(fmt.Sprintf("/pins/:%s", presentation.IDParam), pinHandler.HandleGet)
	e.PATCH(fmt.Sprintf("/pins/:%s", presentation.IDParam), pinHandler.HandleUpdate)
	e.DELETE(fmt.Sprintf("/pins/:%s", presentation.IDParam), pinHandler.HandleDelete)

	e.POST(fmt.Sprintf("/pins/:%s/media", presentation.IDParam), mediaHandler.HandleUpload)
	e.DELETE(fmt.Sprintf("/pins/:%s/media/:%s", presentation.IDParam, presentation.MediaIDParam),
		mediaHandler.HandleRemove)
	e.GET(fmt.Sprintf("/media/:%s", presentation.IDParam), mediaHandler.HandleGetBlob)

	e.GET("/trips", tripHandler.HandleList)
	e.POST("/trips", tripHandler.HandleCreate)
	e.GET(fmt.Sprintf("/trips/:%s", presentation.IDParam), tripHandler.HandleGet)
	e.PUT(fmt.Sprintf("/trips/:%s", presentation.IDParam), tripHandler.HandleRename)
	e.DELETE(fmt.Sprintf("/trips/:%s", presentation.IDParam), tripHandler.HandleDelete)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := e.Start(cfg.Default.Address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			ExitOnError(fmt.Errorf("shutting down server: %w", err))
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		ExitOnError(err)
	}
}
