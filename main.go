package main

import (
	"flag"
	"log"
	"os"
	"strings"

	"budgetapp/config"
	"budgetapp/database"
	"budgetapp/logger"
	"budgetapp/router"
)

// @title 记账本 API
// @version 1.0
// @description 多用户记账服务：收支记录、类别、月度预算和月度概览
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

const version = "1.0.0"

var (
	configFile  string
	port        string
	showVersion bool
	migrateMode string
)

func init() {
	flag.StringVar(&configFile, "config", "", "外部配置文件路径（可选）")
	flag.StringVar(&configFile, "c", "", "外部配置文件路径（简写）")
	flag.StringVar(&port, "port", "", "监听端口，如: 8080 或 :8080")
	flag.StringVar(&port, "p", "", "监听端口（简写）")
	flag.BoolVar(&showVersion, "version", false, "显示版本信息")
	flag.BoolVar(&showVersion, "v", false, "显示版本信息（简写）")
	flag.StringVar(&migrateMode, "migrate", database.MigrateUp, "启动时执行的迁移: up / down / none")
}

func main() {
	flag.Parse()

	if showVersion {
		log.Printf("记账本 v%s", version)
		return
	}

	// 加载配置（内置配置 + 可选的外部配置覆盖）
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	// 命令行参数覆盖端口配置
	if port != "" {
		// 自动添加冒号前缀
		if !strings.HasPrefix(port, ":") {
			port = ":" + port
		}
		cfg.Server.Port = port
	}

	appLog := logger.New(cfg.Log)
	logger.SetDefault(appLog)
	config.PrintConfig(appLog.Logger)

	// 执行数据库迁移
	if err := database.Migrate(cfg.Database, migrateMode); err != nil {
		appLog.Error("数据库迁移失败", logger.FieldError, err.Error(), "direction", migrateMode)
		os.Exit(1)
	}
	if migrateMode == database.MigrateDown {
		appLog.Info("已回退一个迁移版本")
		return
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		appLog.Error("数据库初始化失败", logger.FieldError, err.Error())
		os.Exit(1)
	}
	defer database.Close(db)

	r := router.SetupRouter(cfg, db, appLog)

	appLog.Info("记账本已启动",
		"addr", cfg.Server.Port,
		"swagger", "http://localhost"+cfg.Server.Port+"/swagger/index.html",
		"api", "http://localhost"+cfg.Server.Port+"/api/")

	if err := r.Run(cfg.Server.Port); err != nil {
		appLog.Error("服务器启动失败", logger.FieldError, err.Error())
		os.Exit(1)
	}
}
