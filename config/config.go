package config

import (
	"log"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

// Config 结构体用于存储应用程序的配置信息
type Config struct {
	DBDriver         string // memory 或 mysql
	DBHost           string
	DBPort           string
	DBUser           string
	DBPassword       string
	DBName           string
	AuthSecret       string
	LogLevel         string
	FrontendURL      string
	Port             string
	StorageDriver    string // local 或 s3
	S3Region         string
	S3Bucket         string
	LocalStoragePath string
	Debug            bool // 是否开启调试模式
}

// AppConfig 是全局配置变量
var AppConfig Config

// Init 函数用于初始化配置
func Init() {
	// 加载 .env 文件
	err := godotenv.Load()
	if err != nil {
		log.Printf("警告：无法加载 .env 文件: %v", err)
	}

	// 从环境变量中读取配置
	AppConfig = Config{
		DBDriver:         getEnv("DB_DRIVER", "memory"),
		DBHost:           getEnv("DB_HOST", ""),
		DBPort:           getEnv("DB_PORT", ""),
		DBUser:           getEnv("DB_USER", ""),
		DBPassword:       getEnv("DB_PASSWORD", ""),
		DBName:           getEnv("DB_NAME", ""),
		AuthSecret:       getEnv("AUTH_SECRET", ""),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		FrontendURL:      getEnv("FRONTEND_URL", "http://localhost:5173"),
		Port:             getEnv("PORT", "8080"),
		StorageDriver:    getEnv("STORAGE_DRIVER", "local"),
		S3Region:         getEnv("S3_REGION", "us-west-2"),
		S3Bucket:         getEnv("S3_BUCKET", ""),
		LocalStoragePath: getEnv("LOCAL_STORAGE_PATH", "./uploads"),
		Debug:            getEnvAsBool("DEBUG", true),
	}

	validateConfig()

	// 如果是调试模式，打印更详细的路由信息
	if AppConfig.Debug {
		gin.SetMode(gin.DebugMode)
		log.Println("应用程序运行在调试模式")
	} else {
		gin.SetMode(gin.ReleaseMode)
		log.Println("应用程序运行在生产模式")
	}

	log.Printf("配置加载完成。存储引擎：%s", AppConfig.DBDriver)
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultVal bool) bool {
	valStr := getEnv(key, "")
	if val, err := strconv.ParseBool(valStr); err == nil {
		return val
	}
	return defaultVal
}

func validateConfig() {
	if AppConfig.DBDriver != "memory" && AppConfig.DBDriver != "mysql" {
		log.Fatalf("错误：未知的存储引擎 %q", AppConfig.DBDriver)
	}
	if AppConfig.DBDriver == "mysql" {
		if AppConfig.DBHost == "" || AppConfig.DBPort == "" || AppConfig.DBUser == "" || AppConfig.DBName == "" {
			log.Fatal("错误：数据库配置不完整")
		}
	}
	if AppConfig.StorageDriver != "local" && AppConfig.StorageDriver != "s3" {
		log.Fatalf("错误：未知的文件存储驱动 %q", AppConfig.StorageDriver)
	}
	if AppConfig.StorageDriver == "s3" && AppConfig.S3Bucket == "" {
		log.Fatal("错误：S3存储桶未设置")
	}
	if AppConfig.AuthSecret == "" {
		log.Println("警告：AUTH_SECRET 未设置，需要认证的路由将全部拒绝")
	}
}
