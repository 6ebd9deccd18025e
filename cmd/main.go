package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/Kishor-Irnak/wave.v0.1/config"
	"github.com/Kishor-Irnak/wave.v0.1/internal/api/blog"
	"github.com/Kishor-Irnak/wave.v0.1/internal/api/community"
	"github.com/Kishor-Irnak/wave.v0.1/internal/api/system"
	"github.com/Kishor-Irnak/wave.v0.1/internal/api/user"
	"github.com/Kishor-Irnak/wave.v0.1/internal/errors"
	"github.com/Kishor-Irnak/wave.v0.1/internal/middleware"
	"github.com/Kishor-Irnak/wave.v0.1/internal/repository/interfaces"
	"github.com/Kishor-Irnak/wave.v0.1/internal/repository/memory"
	"github.com/Kishor-Irnak/wave.v0.1/internal/repository/mysql"
	"github.com/Kishor-Irnak/wave.v0.1/internal/service"
	"github.com/Kishor-Irnak/wave.v0.1/internal/storage"
	"github.com/Kishor-Irnak/wave.v0.1/internal/store"
	"github.com/Kishor-Irnak/wave.v0.1/internal/util"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	_ "github.com/go-sql-driver/mysql"
	"go.uber.org/zap"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			util.Logger.Error("程序发生严重错误", zap.Any("error", r))
		}
	}()

	// 初始化配置
	config.Init()

	// 初始化日志
	util.InitLogger(config.AppConfig.LogLevel)
	defer util.Logger.Sync()

	util.Logger.Info("应用程序启动")

	// 注册自定义验证器
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("handle", util.ValidateHandle)
	}

	// 按配置选择存储引擎
	userRepo, blogRepo, communityRepo, cleanup := buildRepositories()
	defer cleanup()

	// 初始化文件存储
	fileStorage := buildFileStorage()

	// 初始化服务和处理器
	userService := service.NewUserService(userRepo)
	blogService := service.NewBlogService(blogRepo)
	communityService := service.NewCommunityService(communityRepo)

	userHandler := user.NewUserHandler(userService)
	uploadHandler := user.NewUploadHandler(fileStorage)
	blogHandler := blog.NewBlogHandler(blogService)
	communityHandler := community.NewCommunityHandler(communityService)

	// 初始化错误监控
	analytics := errors.NewErrorAnalytics()
	statsHandler := system.NewStatsHandler(userRepo, blogRepo, analytics)

	// 设置 Gin 路由
	r := gin.Default()

	// 添加中间件
	r.Use(middleware.RecoveryMiddleware())
	r.Use(middleware.ErrorMonitorMiddleware(analytics))

	// 配置 CORS
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{config.AppConfig.FrontendURL}
	corsConfig.AllowCredentials = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"}
	corsConfig.AllowHeaders = []string{
		"Origin",
		"Content-Length",
		"Content-Type",
		"Authorization",
	}
	r.Use(cors.New(corsConfig))

	// 静态文件的CORS处理
	r.Use(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/uploads/") {
			c.Header("Access-Control-Allow-Origin", config.AppConfig.FrontendURL)
			c.Header("Access-Control-Allow-Methods", "GET, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Origin, Content-Type")

			if c.Request.Method == "OPTIONS" {
				c.AbortWithStatus(200)
				return
			}
		}
		c.Next()
	})

	// 配置静态文件服务
	r.Static("/uploads", config.AppConfig.LocalStoragePath)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// 定义 API 路由
	api := r.Group("/api")
	{
		// 用户相关路由
		api.GET("/users/:id", userHandler.GetUserByID)
		api.GET("/users/uid/:uid", userHandler.GetUserByUID)
		api.GET("/users/username/:username", userHandler.GetUserByUsername)
		api.POST("/users", userHandler.CreateUser)
		api.PUT("/users/:id", userHandler.UpdateUser)

		// 博客相关路由
		api.GET("/blogs", blogHandler.ListBlogs)
		api.GET("/blogs/:id", blogHandler.GetBlog)
		api.GET("/blogs/user/:userId", blogHandler.ListBlogsByUser)
		api.GET("/blogs/category/:category", blogHandler.ListBlogsByCategory)
		api.POST("/blogs", blogHandler.CreateBlog)
		api.PUT("/blogs/:id", blogHandler.UpdateBlog)
		api.DELETE("/blogs/:id", blogHandler.DeleteBlog)

		// 点赞相关路由
		api.GET("/likes/blog/:blogId", communityHandler.ListLikesByBlog)
		api.GET("/likes/user/:userId", communityHandler.ListLikesByUser)
		api.POST("/likes", communityHandler.CreateLike)
		api.DELETE("/likes/:id", communityHandler.DeleteLike)

		// 关注相关路由
		api.GET("/followers/:userId", communityHandler.ListFollowers)
		api.GET("/following/:userId", communityHandler.ListFollowing)
		api.POST("/followers", communityHandler.CreateFollow)
		api.DELETE("/followers/:id", communityHandler.DeleteFollow)

		// 评论相关路由
		api.GET("/comments/blog/:blogId", communityHandler.ListCommentsByBlog)
		api.GET("/comments/user/:userId", communityHandler.ListCommentsByUser)
		api.POST("/comments", communityHandler.CreateComment)
		api.PUT("/comments/:id", communityHandler.UpdateComment)
		api.DELETE("/comments/:id", communityHandler.DeleteComment)

		// 需要认证的路由
		authorized := api.Group("/")
		authorized.Use(middleware.AuthMiddleware())
		{
			authorized.GET("/me", userHandler.Me)
			authorized.POST("/uploads", uploadHandler.Upload)
		}

		// 调试统计
		if config.AppConfig.Debug {
			api.GET("/stats", statsHandler.GetStats)
		}
	}

	// 创建一个带有超时的 http.Server
	srv := &http.Server{
		Addr:    ":" + config.AppConfig.Port,
		Handler: r,
	}

	// 在一个新的 goroutine 中启动服务器
	go func() {
		util.Logger.Info("服务器正在启动", zap.String("port", config.AppConfig.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			util.Logger.Fatal("启动服务器失败", zap.Error(err))
		}
	}()

	// 等待中断信号以优雅地关闭服务器
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	util.Logger.Info("正在关闭服务器...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		util.Logger.Fatal("服务器强制关闭", zap.Error(err))
	}

	util.Logger.Info("服务器已优雅关闭")
}

// buildRepositories 按 DB_DRIVER 构建存储库，返回清理函数
func buildRepositories() (interfaces.UserRepository, interfaces.BlogRepository, interfaces.CommunityRepository, func()) {
	if config.AppConfig.DBDriver == "mysql" {
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			config.AppConfig.DBUser,
			config.AppConfig.DBPassword,
			config.AppConfig.DBHost,
			config.AppConfig.DBPort,
			config.AppConfig.DBName)

		db, err := sql.Open("mysql", dsn)
		if err != nil {
			util.Logger.Fatal("连接数据库失败", zap.Error(err))
		}
		if err := db.Ping(); err != nil {
			util.Logger.Fatal("数据库连接测试失败", zap.Error(err))
		}

		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(25)
		db.SetConnMaxLifetime(5 * time.Minute)
		util.Logger.Info("数据库连接成功")

		return mysql.NewUserRepository(db),
			mysql.NewBlogRepository(db),
			mysql.NewCommunityRepository(db),
			func() { db.Close() }
	}

	util.Logger.Info("使用内存存储引擎")
	s := store.New()
	return memory.NewUserRepository(s),
		memory.NewBlogRepository(s),
		memory.NewCommunityRepository(s),
		func() {}
}

// buildFileStorage 按 STORAGE_DRIVER 构建文件存储
func buildFileStorage() storage.FileStorage {
	if config.AppConfig.StorageDriver == "s3" {
		s3Client, err := storage.NewS3Client(config.AppConfig.S3Region, config.AppConfig.S3Bucket)
		if err != nil {
			util.Logger.Fatal("初始化S3客户端失败", zap.Error(err))
		}
		return s3Client
	}

	localStorage, err := storage.NewLocalStorage(config.AppConfig.LocalStoragePath)
	if err != nil {
		util.Logger.Fatal("初始化本地存储失败", zap.Error(err))
	}
	return localStorage
}
