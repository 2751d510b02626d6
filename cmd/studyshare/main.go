package main

import (
	"context"

	"github.com/go-chi/chi/v5"
	"github.com/nats-io/nats.go"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/example/studyshare-platform/internal/handlers"
	"github.com/example/studyshare-platform/internal/platform/analytics"
	"github.com/example/studyshare-platform/internal/platform/config"
	"github.com/example/studyshare-platform/internal/platform/httpserver"
	"github.com/example/studyshare-platform/internal/platform/logging"
	"github.com/example/studyshare-platform/internal/platform/metrics"
	"github.com/example/studyshare-platform/internal/platform/natsconn"
	"github.com/example/studyshare-platform/internal/platform/run"
	"github.com/example/studyshare-platform/internal/store"
	"github.com/example/studyshare-platform/internal/upload"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	log, err := logging.New(cfg.ServiceName, cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	seed := store.Seed()
	catalog := store.NewInMemoryCatalogStore(seed)
	notes := store.NewInMemoryNoteStore(seed.Notes)
	comments := store.NewInMemoryCommentStore(seed.Comments)
	uploads := upload.NewManager(&upload.Simulator{
		StepInterval: cfg.Upload.StepInterval,
		StepPercent:  cfg.Upload.StepPercent,
	})
	m := metrics.New()

	// Analytics are best-effort; without NATS the publisher is a no-op stub.
	pub, closeNATS := initAnalytics(cfg, log)
	if closeNATS != nil {
		defer closeNATS()
	}

	r := chi.NewRouter()
	httpserver.SetupRouter(r)
	r.Handle("/metrics", promhttp.Handler())

	r.Get("/v1/videos", handlers.ListVideos(catalog, m, pub))
	r.Get("/v1/videos/{video_id}", handlers.GetVideo(catalog, pub))
	r.Post("/v1/videos/{video_id}/bookmark", handlers.ToggleBookmark(catalog, m))

	r.Get("/v1/videos/{video_id}/notes", handlers.ListNotes(notes))
	r.Post("/v1/videos/{video_id}/notes", handlers.CreateNote(notes, catalog, m, pub))
	r.Delete("/v1/notes/{note_id}", handlers.DeleteNote(notes))

	r.Get("/v1/videos/{video_id}/comments", handlers.GetThread(comments))
	r.Post("/v1/videos/{video_id}/comments", handlers.CreateComment(comments, catalog, m, pub))
	r.Post("/v1/comments/{comment_id}/replies", handlers.CreateReply(comments, catalog, m, pub))
	r.Post("/v1/comments/{comment_id}/like", handlers.LikeComment(comments))

	r.Get("/v1/categories", handlers.Categories(catalog))
	r.Get("/v1/me", handlers.Me(catalog))

	r.Post("/v1/uploads", handlers.CreateUpload(uploads, m, pub))
	r.Get("/v1/uploads/{task_id}", handlers.GetUpload(uploads))
	r.Delete("/v1/uploads/{task_id}", handlers.CancelUpload(uploads))

	srv := httpserver.New(httpserver.Options{Addr: cfg.HTTP.Addr, ServiceName: cfg.ServiceName, Logger: log, Router: r})

	runner := run.New(log)
	code := runner.WithSignals(func(ctx context.Context) error {
		go func() {
			<-ctx.Done()
			_ = srv.Shutdown(context.Background())
		}()
		return srv.Start(log)
	})

	log.Info("exit", zap.Int("code", code))
	run.Exit(code)
}

// initAnalytics connects to NATS and prepares the JetStream publisher.
// A missing or unreachable NATS is non-fatal: events are simply dropped.
func initAnalytics(cfg config.AppConfig, log *zap.Logger) (*analytics.Publisher, func()) {
	nc, err := natsconn.Connect(natsconn.Options{URL: cfg.NATS.URL})
	if err != nil {
		log.Warn("nats unavailable, analytics disabled", zap.Error(err))
		return analytics.New(nil, log), nil
	}

	js, err := nc.JetStream()
	if err != nil {
		log.Warn("jetstream unavailable, analytics disabled", zap.Error(err))
		nc.Close()
		return analytics.New(nil, log), nil
	}
	if _, err := js.AddStream(&nats.StreamConfig{
		Name:     "ANALYTICS",
		Subjects: []string{"analytics.>"},
	}); err != nil && err != nats.ErrStreamNameAlreadyInUse {
		log.Warn("analytics stream setup failed", zap.Error(err))
	}

	log.Info("analytics publisher: jetstream")
	return analytics.New(js, log), nc.Close
}
