package app

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/niksmo/storefront/config"
	"github.com/niksmo/storefront/internal/adapter"
	"github.com/niksmo/storefront/internal/adapter/httphandler"
	"github.com/niksmo/storefront/internal/adapter/kafka"
	"github.com/niksmo/storefront/internal/adapter/storage"
	"github.com/niksmo/storefront/internal/core/port"
	"github.com/niksmo/storefront/internal/core/service"
	"github.com/niksmo/storefront/pkg/schema"
	"github.com/twmb/franz-go/pkg/sr"
)

type coreServices struct {
	catalog service.CatalogService
	cart    *service.CartService
}

type App struct {
	ctx            context.Context
	cfg            config.Config
	db             storage.Bolt
	services       coreServices
	eventsProducer port.CartEventsProducer
	httpServer     httphandler.HTTPServer
}

func New(ctx context.Context, cfg config.Config) *App {
	app := &App{ctx: ctx, cfg: cfg}

	app.initLogger()
	app.initStorage()
	app.initCoreServices()
	app.initEvents()
	app.initHTTPServer()

	return app
}

func (app *App) initLogger() {
	opts := &slog.HandlerOptions{Level: app.cfg.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

func (app *App) initStorage() {
	const op = "App.initStorage"

	db, err := storage.NewBolt(app.cfg.Storage.Path)
	if err != nil {
		app.fallDown(op, err)
	}
	app.db = db
}

func (app *App) initCoreServices() {
	const op = "App.initCoreServices"

	slots := storage.NewSlotRepository(app.db)

	catalog := service.NewCatalogService(slots, app.cfg.Storage.ProductsSlot)
	err := catalog.Seed(app.ctx, app.cfg.Catalog.ForceReseed)
	if err != nil {
		app.fallDown(op, err)
	}

	cart := service.NewCartService(
		slots, catalog, app.cfg.Storage.CartSlot, app.cfg.Cart.TaxRate,
	)

	app.services = coreServices{catalog: catalog, cart: cart}
}

func (app *App) initEvents() {
	const op = "App.initEvents"

	eventsCfg := app.cfg.Events
	if !eventsCfg.Enabled {
		slog.Debug("cart events are disabled")
		return
	}

	srClient, err := sr.NewClient(sr.URLs(eventsCfg.SchemaRegistryURLs...))
	if err != nil {
		app.fallDown(op, err)
	}
	schemaCreater := schema.NewSchemaCreater(srClient)

	subject := eventsCfg.Topic + "-value"
	serde, err := schema.NewSerdeCartEventV1(
		app.ctx,
		schema.SubjectOpt(subject),
		schema.SchemaIdentifierOpt(schemaCreater),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	var tlsConfig *tls.Config
	if eventsCfg.TLS.CA != "" {
		tlsConfig = adapter.MakeTLSConfig(
			eventsCfg.TLS.CA, eventsCfg.TLS.Cert, eventsCfg.TLS.Key,
		)
	}

	producer, err := kafka.NewCartEventsProducer(
		kafka.ProducerClientOpt(
			app.ctx, eventsCfg.SeedBrokers, eventsCfg.Topic, tlsConfig,
		),
		kafka.ProducerEncoderOpt(serde),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	app.eventsProducer = producer
	app.services.cart.Subscribe(kafka.NewEventsRecorder(producer))
}

func (app *App) initHTTPServer() {
	addr := app.cfg.HTTPServerAddr
	mux := http.NewServeMux()
	httphandler.RegisterCatalog(mux, app.services.catalog)
	httphandler.RegisterCart(
		mux, app.services.cart, app.services.cart, app.services.cart,
	)
	httphandler.RegisterAdmin(mux, app.services.catalog)

	handler := httphandler.AllowJSON(mux)
	app.httpServer = httphandler.NewHTTPServer(addr, handler)
}

func (app *App) Run(stopFn context.CancelFunc) {
	go app.httpServer.Run(stopFn)

	slog.Info("application is running")
}

func (app *App) Close(ctx context.Context) {
	slog.Info("application is closing...")

	app.httpServer.Close(ctx)
	if app.eventsProducer != nil {
		app.eventsProducer.Close()
	}
	app.db.Close()

	slog.Info("application is closed")
}

func (app *App) fallDown(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}
