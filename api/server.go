package api

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	db "github.com/merchantops/backoffice/db/sqlc"
	basemodels "github.com/merchantops/backoffice/models"
	"github.com/merchantops/backoffice/services/account"
	"github.com/merchantops/backoffice/services/cache"
	"github.com/merchantops/backoffice/services/monitoring/logging"
	"github.com/merchantops/backoffice/services/notification"
	"github.com/merchantops/backoffice/services/redis"
	"github.com/merchantops/backoffice/services/transfer"
	"github.com/merchantops/backoffice/utils"
)

type Server struct {
	router          *gin.Engine
	store           *db.Store
	config          *utils.Config
	logger          *logging.Logger
	accountService  *account.AccountService
	transferService *transfer.TransferService
}

func NewServer(envPath string) *Server {
	c, err := utils.LoadConfig(envPath)
	if err != nil {
		panic(fmt.Sprintf("Could not load config: %v", err))
	}

	conn, err := sql.Open(c.DBDriver, utils.GetDBSource(c, c.DBName))
	if err != nil {
		panic(fmt.Sprintf("Could not load DB: %v", err))
	}

	m, err := migrate.New(
		"file://db/migrations",
		utils.GetDBSource(c, c.DBName),
	)
	if err != nil {
		log.Fatalf("Unable to instantiate the database schema migrator - %v", err)
	}

	if err := m.Up(); err != nil {
		if err != migrate.ErrNoChange {
			log.Fatalf("Unable to migrate up to the latest database schema - %v", err)
		}
	}

	store := db.NewStore(conn)
	g := gin.Default()
	l := logging.NewLogger()

	g.Use(CORSMiddleware())
	g.Use(l.LoggingMiddleWare())

	// Listing reads tolerate a short staleness window; writes invalidate.
	listCache := cache.NewCache(5*time.Minute, 10*time.Minute)

	accountService := account.NewAccountService(store, listCache, l)

	// Daily volume tracking is informational; run without it if Redis is down.
	var tracker transfer.VolumeTracker
	redisService, err := redis.NewRedisService(&redis.RedisConfig{
		Host:     c.RedisHost,
		Port:     c.RedisPort,
		Password: c.RedisPassword,
	})
	if err != nil {
		l.Error(fmt.Sprintf("redis unavailable, daily transfer tracking disabled: %v", err))
	} else {
		tracker = redisService
	}

	refs, err := utils.NewReferenceCodec(c.ReferenceSalt)
	if err != nil {
		panic(fmt.Sprintf("Could not initialise reference codec: %v", err))
	}

	notifier := notification.NewTransferNotifier(notification.NewPlunk(c), l)
	transferService := transfer.NewTransferService(store, accountService, notifier, tracker, listCache, refs, l)

	return &Server{
		router:          g,
		store:           store,
		config:          c,
		logger:          l,
		accountService:  accountService,
		transferService: transferService,
	}
}

func (s *Server) Start() {

	dr := basemodels.SuccessResponse{
		Status:  "success",
		Message: "Welcome to the Merchant Back-Office API!",
		Version: utils.REVISION,
	}

	s.router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, dr)
	})

	/// Register Object Routers Below
	Accounts{}.router(s)
	Transfers{}.router(s)

	s.router.Run(fmt.Sprintf(":%v", s.config.ServerPort))
}
