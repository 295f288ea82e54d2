package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"causematch-backend/internal/accounts"
	"causematch-backend/internal/llm"
	openai "causematch-backend/internal/llm/openai"
	"causematch-backend/internal/profiles"
	"causematch-backend/internal/resumes"
	"causematch-backend/internal/shared/config"
	"causematch-backend/internal/shared/server"
	"causematch-backend/internal/shared/storage/db"
	"causematch-backend/internal/shared/storage/object"
	localstore "causematch-backend/internal/shared/storage/object/local"
	s3store "causematch-backend/internal/shared/storage/object/s3"
	"causematch-backend/internal/swipes"
	"causematch-backend/internal/uploads"
)

// App holds shared dependencies.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Store  object.Store
	LLM    llm.Client

	AccountsRepo accounts.Repo
	ProfilesRepo profiles.Repo
	SwipesRepo   swipes.Repo
	ResumesRepo  resumes.Repo

	AccountsService *accounts.Service
	ProfilesService *profiles.Service
	SwipesService   *swipes.Service
	ResumesService  *resumes.Service
}

// Build prepares dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	llmClient, err := buildLLM(cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  store,
		LLM:    llmClient,
	}
	buildServices(app)

	accountsHandler := accounts.NewHandler(app.AccountsService, cfg.IsProduction())
	app.Router = server.NewRouter(server.RouterDeps{
		Config: cfg,
		Handlers: []server.RouteRegistrar{
			accountsHandler,
			uploads.NewHandler(app.Store),
			profiles.NewHandler(app.ProfilesService),
			swipes.NewHandler(app.SwipesService),
			resumes.NewHandler(app.ResumesService),
		},
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if cfg.IsProduction() {
			return nil, fmt.Errorf("DATABASE_URL is required in production")
		}
		log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
		return nil, nil
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if cfg.IsProduction() {
			return nil, err
		}
		log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
		return nil, nil
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.Store, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

func buildLLM(cfg config.Config) (llm.Client, error) {
	if cfg.LLMProvider != "openai" {
		return llm.PlaceholderClient{}, nil
	}
	apiKey := strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
	if apiKey == "" {
		log.Printf("bootstrap: OPENAI_API_KEY empty; extraction endpoints will report unconfigured")
		return llm.PlaceholderClient{}, nil
	}
	return openai.NewClient(apiKey, cfg.LLMModel)
}

func buildServices(app *App) {
	if app.DB != nil {
		app.AccountsRepo = &accounts.PGRepo{DB: app.DB}
		app.ProfilesRepo = &profiles.PGRepo{DB: app.DB}
		app.SwipesRepo = &swipes.PGRepo{DB: app.DB}
		app.ResumesRepo = &resumes.PGRepo{DB: app.DB}
	} else {
		app.AccountsRepo = accounts.NewMemoryRepo()
		app.ProfilesRepo = profiles.NewMemoryRepo()
		app.SwipesRepo = swipes.NewMemoryRepo()
		app.ResumesRepo = resumes.NewMemoryRepo()
	}

	app.AccountsService = &accounts.Service{Repo: app.AccountsRepo}
	app.ProfilesService = &profiles.Service{Repo: app.ProfilesRepo, LLM: app.LLM}
	app.SwipesService = &swipes.Service{
		Repo:     app.SwipesRepo,
		Profiles: app.ProfilesRepo,
		Accounts: app.AccountsRepo,
	}
	app.ResumesService = &resumes.Service{Repo: app.ResumesRepo, LLM: app.LLM}
}
