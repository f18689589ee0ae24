package main

import (
	"context"
	"time"

	"github.com/Abraxas-365/recruitboard/analytics/daterange"
	"github.com/Abraxas-365/recruitboard/internal/config"
	"github.com/Abraxas-365/recruitboard/pkg/iam/auth"
	"github.com/Abraxas-365/recruitboard/pkg/iam/auth/authinfra"
	"github.com/Abraxas-365/recruitboard/pkg/iam/user/userinfra"
	"github.com/Abraxas-365/recruitboard/pkg/iam/user/usersrv"
	"github.com/Abraxas-365/recruitboard/pkg/logx"
	"github.com/Abraxas-365/recruitboard/recruitment/applicant/applicantapi"
	"github.com/Abraxas-365/recruitboard/recruitment/applicant/applicantinfra"
	"github.com/Abraxas-365/recruitboard/recruitment/applicant/applicantsrv"
	"github.com/Abraxas-365/recruitboard/recruitment/dashboard"
	"github.com/Abraxas-365/recruitboard/recruitment/dashboard/dashboardapi"
	"github.com/Abraxas-365/recruitboard/recruitment/dashboard/dashboardinfra"
	"github.com/Abraxas-365/recruitboard/recruitment/dashboard/dashboardsrv"
	"github.com/Abraxas-365/recruitboard/recruitment/posting/postingapi"
	"github.com/Abraxas-365/recruitboard/recruitment/posting/postinginfra"
	"github.com/Abraxas-365/recruitboard/recruitment/posting/postingsrv"
	"github.com/Abraxas-365/recruitboard/recruitment/setting/settingapi"
	"github.com/Abraxas-365/recruitboard/recruitment/setting/settinginfra"
	"github.com/Abraxas-365/recruitboard/recruitment/setting/settingsrv"
	"github.com/Abraxas-365/recruitboard/recruitment/viewrecord/viewrecordapi"
	"github.com/Abraxas-365/recruitboard/recruitment/viewrecord/viewrecordinfra"
	"github.com/Abraxas-365/recruitboard/recruitment/viewrecord/viewrecordsrv"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// Container holds all application dependencies
type Container struct {
	// Config
	Config     *config.Config
	AuthConfig auth.Config
	Clock      daterange.Clock
	Location   *time.Location

	// Infrastructure
	DB       *sqlx.DB
	Redis    *redis.Client
	S3Client *s3.Client
	Archive  dashboard.ReportArchive

	// Core IAM Services
	AuthService  *auth.AuthService
	TokenService auth.TokenService
	UserService  *usersrv.UserService

	// Recruitment Services
	PostingService    *postingsrv.PostingService
	ApplicantService  *applicantsrv.ApplicantService
	ViewRecordService *viewrecordsrv.ViewRecordService
	SettingService    *settingsrv.SettingService
	DashboardService  *dashboardsrv.DashboardService

	// API Handlers
	AuthHandlers       *auth.AuthHandlers
	PostingHandlers    *postingapi.Handlers
	ApplicantHandlers  *applicantapi.Handlers
	ViewRecordHandlers *viewrecordapi.Handlers
	SettingHandlers    *settingapi.Handlers
	DashboardHandlers  *dashboardapi.Handlers

	// Middleware
	AuthMiddleware *auth.TokenMiddleware
}

// NewContainer initializes the dependency injection container
func NewContainer(cfg *config.Config) *Container {
	c := &Container{Config: cfg}
	c.initInfrastructure()
	c.initServices()
	return c
}

// Close releases the database and Redis connections
func (c *Container) Close() {
	if err := c.DB.Close(); err != nil {
		logx.Warnf("close database: %v", err)
	}
	if err := c.Redis.Close(); err != nil {
		logx.Warnf("close redis: %v", err)
	}
}

func (c *Container) initInfrastructure() {
	cfg := c.Config

	// 1. Database Connection
	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logx.Fatalf("Failed to connect to database: %v", err)
	}
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)
	c.DB = db

	// 2. Redis Connection
	c.Redis = redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if _, err := c.Redis.Ping(context.Background()).Result(); err != nil {
		logx.Warnf("Failed to connect to Redis: %v", err)
	}

	// 3. AWS S3 Report Archive
	if cfg.AWS.Bucket == "" {
		logx.Warn("AWS_BUCKET is not set, report export and snapshots are disabled")
	} else {
		awsCfg, err := awsconfig.LoadDefaultConfig(context.TODO(), awsconfig.WithRegion(cfg.AWS.Region))
		if err != nil {
			logx.Fatalf("unable to load SDK config, %v", err)
		}
		c.S3Client = s3.NewFromConfig(awsCfg)
		c.Archive = dashboardinfra.NewS3Archive(c.S3Client, cfg.AWS.Bucket, cfg.AWS.Prefix)
	}

	// 4. Auth Config
	c.AuthConfig = auth.DefaultConfig()
	c.AuthConfig.JWT.SecretKey = cfg.Auth.JWTSecret
	c.AuthConfig.JWT.Issuer = cfg.Auth.Issuer
	c.AuthConfig.JWT.AccessTokenTTL = cfg.Auth.AccessTokenTTL

	// 5. Clock
	loc, err := cfg.App.Location()
	if err != nil {
		logx.Fatalf("invalid timezone %q: %v", cfg.App.Timezone, err)
	}
	c.Location = loc
	c.Clock = daterange.SystemClock{Location: loc}
}

func (c *Container) initServices() {
	// --- IAM Repositories ---
	userRepo := userinfra.NewPostgresUserRepository(c.DB)

	// --- Recruitment Repositories ---
	postingRepo := postinginfra.NewPostgresPostingRepository(c.DB)
	applicantRepo := applicantinfra.NewPostgresApplicantRepository(c.DB)
	viewRecordRepo := viewrecordinfra.NewPostgresViewRecordRepository(c.DB)
	goalRepo := settinginfra.NewPostgresGoalRepository(c.DB)
	siteSettingRepo := settinginfra.NewPostgresSiteSettingRepository(c.DB)

	// --- Infrastructure Services ---
	passwordSvc := authinfra.NewBcryptPasswordService()
	denylist := authinfra.NewRedisTokenDenylist(c.Redis)
	prefStore := dashboardinfra.NewRedisPreferenceStore(c.Redis)

	// Token Service
	c.TokenService = auth.NewJWTService(
		c.AuthConfig.JWT.SecretKey,
		c.AuthConfig.JWT.AccessTokenTTL,
		c.AuthConfig.JWT.Issuer,
	)

	// --- Domain Services ---

	// 1. IAM Domain Services
	c.UserService = usersrv.NewUserService(userRepo, passwordSvc)
	c.AuthService = auth.NewAuthService(userRepo, c.TokenService, passwordSvc, denylist)

	// 2. Recruitment Domain Services
	c.PostingService = postingsrv.NewPostingService(postingRepo)
	c.ApplicantService = applicantsrv.NewApplicantService(applicantRepo, postingRepo, c.Clock)
	c.ViewRecordService = viewrecordsrv.NewViewRecordService(viewRecordRepo, postingRepo, c.Clock)
	c.SettingService = settingsrv.NewSettingService(goalRepo, siteSettingRepo)
	c.DashboardService = dashboardsrv.NewDashboardService(dashboardsrv.Sources{
		Postings:     postingRepo,
		Applicants:   applicantRepo,
		ViewRecords:  viewRecordRepo,
		Goals:        goalRepo,
		SiteSettings: siteSettingRepo,
	}, prefStore, c.Archive, c.Clock)

	// --- Middleware ---
	c.AuthMiddleware = auth.NewTokenMiddleware(c.TokenService, denylist)

	// --- API Handlers ---
	c.AuthHandlers = auth.NewAuthHandlers(c.AuthService, c.AuthMiddleware)
	c.PostingHandlers = postingapi.NewHandlers(c.PostingService)
	c.ApplicantHandlers = applicantapi.NewHandlers(c.ApplicantService)
	c.ViewRecordHandlers = viewrecordapi.NewHandlers(c.ViewRecordService)
	c.SettingHandlers = settingapi.NewHandlers(c.SettingService)
	c.DashboardHandlers = dashboardapi.NewHandlers(c.DashboardService)
}
