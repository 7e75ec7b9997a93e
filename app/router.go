// Package app wires the HTTP routes to their handlers
package app

import (
	"strings"
	"time"

	"cloudpix/files-api/app/file"
	"cloudpix/files-api/app/root"
	"cloudpix/files-api/app/share"
	"cloudpix/files-api/app/user"
	"cloudpix/files-api/aws"
	"cloudpix/files-api/db"
	"cloudpix/files-api/internal"
	"cloudpix/files-api/internal/service"
	"cloudpix/files-api/internal/store"
	"cloudpix/files-api/pkg/middleware"
	"cloudpix/files-api/pkg/security"

	cache "github.com/chenyahui/gin-cache"
	"github.com/chenyahui/gin-cache/persist"
	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var cacheStore = persist.NewMemoryStore(time.Minute)

func NewRouter() (*gin.Engine, error) {
	d := &internal.Deps{}

	database, err := db.New()
	if err != nil {
		return nil, err
	}
	d.DB = database

	d.Argon = security.New()

	s3, err := aws.NewS3()
	if err != nil {
		return nil, err
	}
	d.S3 = s3

	files := store.NewFileStore(database)
	links := store.NewShareLinkStore(database)

	d.ShareLinks = service.NewShareLinks(files, links, s3)
	d.Files = service.NewFiles(files, d.ShareLinks, s3)

	router := gin.New()

	origins := strings.Split(viper.GetString("host.cors"), ",")

	router.Use(
		cors.New(cors.Config{
			AllowOrigins:     origins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
		gin.Recovery(),
		middleware.NewRequestIDMiddleware(),
		ginzap.GinzapWithConfig(zap.L(), &ginzap.Config{
			TimeFormat: "15:04:05.000",
			UTC:        true,
			Skipper: func(c *gin.Context) bool {
				return c.Request.Method == "HEAD"
			},
			Context: func(c *gin.Context) []zapcore.Field {
				fields := []zapcore.Field{}

				if v := c.GetString("requestID"); v != "" {
					fields = append(fields, zap.String("requestID", v))
				}

				if v := c.GetString("userID"); v != "" {
					fields = append(fields, zap.String("userID", v))
				}

				return fields
			},
		}),
	)

	router.HandleMethodNotAllowed = true
	router.MaxMultipartMemory = 5 << 20

	rateLimit := viper.GetInt("security.rate_limit")
	maxUploadSize := viper.GetInt64("upload.max_size")

	jwt := middleware.NewJWTMiddleware(database)
	rateLimiter := middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
		RequestsPerSecond: rateLimit,
		Burst:             rateLimit * 2,
	})

	m := router.Group("/api", rateLimiter)
	{
		// HEAD /api/heartbeat 		-> Used to check if the server is alive
		m.HEAD("/heartbeat", root.Heartbeat)
	}

	a := m.Group("/auth", middleware.BodySizeLimiter(1<<20))
	{
		// POST /api/auth/register	-> Registers a new user
		a.POST("/register", func(c *gin.Context) { user.UserRegister(c, d) })

		// POST /api/auth/login 	-> Logs in a user and returns a JWT token
		a.POST("/login", func(c *gin.Context) { user.UserLogin(c, d) })

		// GET /api/auth/profile	-> Returns the authenticated user's profile
		a.GET("/profile", jwt, func(c *gin.Context) { user.UserFetch(c, d) })
	}

	f := m.Group("/files", jwt)
	{
		// GET /api/files		-> Returns the user's files
		f.GET("", cacheFor(15), func(c *gin.Context) { file.FileFetchBulk(c, d) })

		// POST /api/files         	-> Uploads a new file and stores its metadata
		f.POST("", middleware.BodySizeLimiter(maxUploadSize), func(c *gin.Context) { file.FileUpload(c, d) })

		// GET /api/files/:id		-> Returns a file by its ID if the user owns it
		f.GET("/:id", func(c *gin.Context) { file.FileFetch(c, d) })

		// DELETE /api/files/:id	-> Deletes a file owned by a user along with its share links
		f.DELETE("/:id", func(c *gin.Context) { file.FileDelete(c, d) })

		// POST /api/files/:id/share		-> Creates a share link for a file
		f.POST("/:id/share", func(c *gin.Context) { share.ShareCreate(c, d) })

		// GET /api/files/:id/share-links	-> Lists a file's share links
		f.GET("/:id/share-links", func(c *gin.Context) { share.ShareList(c, d) })
	}

	s := m.Group("/share")
	{
		// GET /api/share/:linkId		-> Resolves a share link, no auth needed
		s.GET("/:linkId", func(c *gin.Context) { share.ShareResolve(c, d) })

		// POST /api/share/:linkId/revoke	-> Revokes a share link
		s.POST("/:linkId/revoke", jwt, func(c *gin.Context) { share.ShareRevoke(c, d) })
	}

	return router, nil
}

func cacheFor(sec int) gin.HandlerFunc {
	return cache.CacheByRequestURI(cacheStore, time.Second*time.Duration(sec))
}
