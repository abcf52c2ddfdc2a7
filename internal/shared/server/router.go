package server

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	googleauth "github.com/rajan170/ai-resume-analyzer/internal/auth"
	"github.com/rajan170/ai-resume-analyzer/internal/candidates"
	"github.com/rajan170/ai-resume-analyzer/internal/jobs"
	"github.com/rajan170/ai-resume-analyzer/internal/llm"
	llmopenai "github.com/rajan170/ai-resume-analyzer/internal/llm/openai"
	"github.com/rajan170/ai-resume-analyzer/internal/matcher"
	"github.com/rajan170/ai-resume-analyzer/internal/nlp"
	nlpopenai "github.com/rajan170/ai-resume-analyzer/internal/nlp/openai"
	"github.com/rajan170/ai-resume-analyzer/internal/nlp/spacyserver"
	"github.com/rajan170/ai-resume-analyzer/internal/parser"
	"github.com/rajan170/ai-resume-analyzer/internal/shared/config"
	"github.com/rajan170/ai-resume-analyzer/internal/shared/server/middleware"
	"github.com/rajan170/ai-resume-analyzer/internal/shared/server/respond"
	"github.com/rajan170/ai-resume-analyzer/internal/shared/storage/db"
	localstore "github.com/rajan170/ai-resume-analyzer/internal/shared/storage/object/local"
)

const rateLimitGroupNLP = "NLP"

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
		middleware.Auth(cfg.Env),
		middleware.RateLimit(middleware.RateLimitConfig{
			Rules: map[string]middleware.RateLimitRule{
				rateLimitGroupNLP: {Rate: 1, Burst: 5},
			},
			GroupFor: nlpRateLimitGroup,
		}),
	)

	// Dependencies
	store := localstore.New(cfg.LocalStoreDir)
	var sqlDB *sql.DB
	if cfg.DatabaseURL != "" {
		dbConn, err := db.Connect(context.Background(), cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
		if err != nil {
			log.Printf("failed to connect database, falling back to memory: %v", err)
		} else {
			if err := db.RunMigrations(context.Background(), dbConn); err != nil {
				log.Printf("failed to run migrations, falling back to memory: %v", err)
				dbConn = nil
			}
		}
		sqlDB = dbConn
	}

	var recognizer nlp.Recognizer = nlp.UnavailableRecognizer{}
	if cfg.NERServerURL != "" {
		if client, err := spacyserver.New(cfg.NERServerURL); err != nil {
			log.Printf("NER server misconfigured, name recognition degraded: %v", err)
		} else {
			recognizer = client
		}
	}

	var embedder nlp.Embedder = nlp.UnavailableEmbedder{}
	if cfg.OpenAIAPIKey != "" {
		if client, err := nlpopenai.NewEmbedder(cfg.OpenAIAPIKey, cfg.EmbeddingModel); err != nil {
			log.Printf("embeddings misconfigured, semantic matching degraded: %v", err)
		} else {
			embedder = client
		}
	}

	critic := llm.Client(llm.PlaceholderClient{})
	if cfg.OpenAIAPIKey != "" && cfg.LLMModel != "" {
		if client, err := llmopenai.NewClient(cfg.OpenAIAPIKey, cfg.LLMModel); err != nil {
			log.Printf("LLM misconfigured, critique disabled: %v", err)
		} else {
			critic = client
		}
	}

	var candidateRepo candidates.Repo
	var jobRepo jobs.Repo
	if sqlDB != nil {
		candidateRepo = &candidates.PGRepo{DB: sqlDB}
		jobRepo = &jobs.PGRepo{DB: sqlDB}
	} else {
		candidateRepo = candidates.NewMemoryRepo()
		jobRepo = jobs.NewMemoryRepo()
	}

	candidateSvc := &candidates.Service{
		Store:  store,
		Repo:   candidateRepo,
		Parser: parser.New(recognizer),
		Critic: critic,
	}
	candidateHandler := candidates.NewHandler(candidateSvc)

	jobSvc := &jobs.Service{
		Repo:       jobRepo,
		Candidates: candidateRepo,
		Matcher:    matcher.New(embedder),
	}
	jobHandler := jobs.NewHandler(jobSvc)

	googleAuthSvc := googleauth.NewGoogleService(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleRedirectURL, cfg.UIRedirectURL)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	googleAuthSvc.RegisterRoutes(api)
	registerMeRoutes(api)
	candidateHandler.RegisterRoutes(api)
	jobHandler.RegisterRoutes(api)

	return r
}

// nlpRateLimitGroup throttles endpoints that call out to embedding or
// chat-completion backends.
func nlpRateLimitGroup(c *gin.Context) string {
	path := c.Request.URL.Path
	if strings.HasSuffix(path, "/critique") || strings.HasSuffix(path, "/match") {
		return rateLimitGroupNLP
	}
	return ""
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
