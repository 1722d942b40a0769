package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/carevo/platform/internal/ai/studentsearch"
	"github.com/carevo/platform/pkg/fsx"
	"github.com/carevo/platform/pkg/fsx/fsxs3"
	"github.com/carevo/platform/pkg/iam/auth"
	"github.com/carevo/platform/pkg/iam/otp/otpinfra"
	"github.com/carevo/platform/pkg/iam/otp/otpsrv"
	"github.com/carevo/platform/pkg/logx"
	"github.com/carevo/platform/placement/aisearch/aisearchapi"
	"github.com/carevo/platform/placement/aisearch/aisearchsrv"
	"github.com/carevo/platform/placement/application/applicationapi"
	"github.com/carevo/platform/placement/application/applicationinfra"
	"github.com/carevo/platform/placement/application/applicationsrv"
	"github.com/carevo/platform/placement/ats/atsapi"
	"github.com/carevo/platform/placement/ats/atsinfra"
	"github.com/carevo/platform/placement/ats/atssrv"
	"github.com/carevo/platform/placement/chat/chatapi"
	"github.com/carevo/platform/placement/chat/chatinfra"
	"github.com/carevo/platform/placement/chat/chatsrv"
	"github.com/carevo/platform/placement/help/helpapi"
	"github.com/carevo/platform/placement/help/helpinfra"
	"github.com/carevo/platform/placement/help/helpsrv"
	"github.com/carevo/platform/placement/opportunity/opportunityapi"
	"github.com/carevo/platform/placement/opportunity/opportunityinfra"
	"github.com/carevo/platform/placement/opportunity/opportunitysrv"
	"github.com/carevo/platform/placement/user/userapi"
	"github.com/carevo/platform/placement/user/userauth"
	"github.com/carevo/platform/placement/user/userinfra"
	"github.com/carevo/platform/placement/user/usersrv"
)

// Container holds all application dependencies
type Container struct {
	// Config
	AuthConfig auth.Config

	// Infrastructure
	DB            *sqlx.DB
	Redis         *redis.Client
	ResumeArchive fsx.FileWriter
	S3Client      *s3.Client

	// Services
	TokenService       auth.TokenService
	OTPService         *otpsrv.OTPService
	AuthService        *userauth.AuthService
	UserService        *usersrv.Service
	OpportunityService *opportunitysrv.Service
	ApplicationService *applicationsrv.Service
	HelpService        *helpsrv.Service
	ChatService        *chatsrv.Service
	ATSService         *atssrv.Service
	AISearchService    *aisearchsrv.Service

	// API Handlers
	AuthHandlers        *userauth.AuthHandlers
	UserHandlers        *userapi.UserHandlers
	OpportunityHandlers *opportunityapi.OpportunityHandlers
	ApplicationHandlers *applicationapi.ApplicationHandlers
	HelpHandlers        *helpapi.HelpHandlers
	ChatHandlers        *chatapi.ChatHandlers
	ATSHandlers         *atsapi.ATSHandlers
	AISearchHandlers    *aisearchapi.AISearchHandlers

	// Middleware
	AuthMiddleware *auth.Middleware
}

// NewContainer initializes the dependency injection container
func NewContainer() *Container {
	c := &Container{}
	c.initInfrastructure()
	c.initServices()
	return c
}

func (c *Container) initInfrastructure() {
	// 1. Database Connection
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbUser := os.Getenv("DB_USER")
	dbPass := os.Getenv("DB_PASS")
	dbName := os.Getenv("DB_NAME")
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		dbHost, dbPort, dbUser, dbPass, dbName)

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		logx.Fatalf("Failed to connect to database: %v", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	c.DB = db

	// 2. Redis Connection
	c.Redis = redis.NewClient(&redis.Options{
		Addr:     os.Getenv("REDIS_ADDR"),
		Password: os.Getenv("REDIS_PASS"),
		DB:       0,
	})
	if _, err := c.Redis.Ping(context.Background()).Result(); err != nil {
		logx.Warnf("Failed to connect to Redis: %v", err)
	}

	// 3. S3 resume archive (optional)
	if bucket := os.Getenv("AWS_BUCKET"); bucket != "" {
		cfg, err := config.LoadDefaultConfig(context.TODO(),
			config.WithRegion(os.Getenv("AWS_REGION")))
		if err != nil {
			logx.Fatalf("unable to load SDK config, %v", err)
		}
		c.S3Client = s3.NewFromConfig(cfg)
		c.ResumeArchive = fsxs3.NewS3FileSystem(c.S3Client, bucket, "uploads")
	} else {
		logx.Warn("AWS_BUCKET is not set, resume uploads will not be archived")
	}

	// 4. Auth Config
	c.AuthConfig = auth.DefaultConfig()
}

func (c *Container) initServices() {
	// --- Repositories ---
	userRepo := userinfra.NewPostgresUserRepository(c.DB)
	projectRepo := userinfra.NewPostgresProjectRepository(c.DB)
	opportunityRepo := opportunityinfra.NewPostgresOpportunityRepository(c.DB)
	applicationRepo := applicationinfra.NewPostgresApplicationRepository(c.DB)
	helpRepo := helpinfra.NewPostgresHelpRepository(c.DB)
	conversationRepo := chatinfra.NewPostgresConversationRepository(c.DB)
	messageRepo := chatinfra.NewPostgresMessageRepository(c.DB)

	// --- Auth / OTP ---
	c.TokenService = auth.NewJWTService(c.AuthConfig.Secret, c.AuthConfig.TokenTTL)
	hasher := auth.NewBcryptHasher()

	otpStore := otpinfra.NewRedisStore(c.Redis)
	otpNotifier := otpinfra.NewSMTPNotifier(otpinfra.SMTPConfigFromEnv())
	c.OTPService = otpsrv.NewOTPService(otpStore, otpNotifier)

	// --- Domain Services ---
	c.ApplicationService = applicationsrv.NewService(applicationRepo, userRepo, opportunityRepo)
	c.UserService = usersrv.NewService(userRepo, projectRepo, c.ApplicationService)
	c.AuthService = userauth.NewAuthService(userRepo, hasher, c.TokenService, c.OTPService)
	c.OpportunityService = opportunitysrv.NewService(opportunityRepo, c.ApplicationService)
	c.HelpService = helpsrv.NewService(helpRepo, userRepo)
	c.ChatService = chatsrv.NewService(conversationRepo, messageRepo)
	c.ATSService = atssrv.NewService(c.UserService, atsinfra.NewHTTPResumeFetcher(), c.ResumeArchive)

	if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
		searcher, err := studentsearch.NewSearcher(context.Background(), apiKey)
		if err != nil {
			logx.Warnf("Failed to initialize student search: %v", err)
		} else {
			c.AISearchService = aisearchsrv.NewService(searcher, userRepo)
		}
	} else {
		logx.Warn("GEMINI_API_KEY is not set, AI student search disabled")
	}

	// --- Handlers ---
	c.AuthHandlers = userauth.NewAuthHandlers(c.AuthService)
	c.UserHandlers = userapi.NewUserHandlers(c.UserService)
	c.OpportunityHandlers = opportunityapi.NewOpportunityHandlers(c.OpportunityService)
	c.ApplicationHandlers = applicationapi.NewApplicationHandlers(c.ApplicationService)
	c.HelpHandlers = helpapi.NewHelpHandlers(c.HelpService)
	c.ChatHandlers = chatapi.NewChatHandlers(c.ChatService)
	c.ATSHandlers = atsapi.NewATSHandlers(c.ATSService)
	if c.AISearchService != nil {
		c.AISearchHandlers = aisearchapi.NewAISearchHandlers(c.AISearchService)
	}

	// --- Middleware ---
	c.AuthMiddleware = auth.NewMiddleware(c.TokenService)
}
