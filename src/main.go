package main

import (
	"BikeShare/src/config"
	"BikeShare/src/console"
	"BikeShare/src/datasource/file"
	"BikeShare/src/storage"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron"
)

func main() {
	configPath := flag.String("config", "config/config.json", "配置文件路径 (.json/.yaml)")
	dataDir := flag.String("data", "", "数据目录，覆盖配置中的 data_dir")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}
	if *dataDir != "" {
		cfg.DataDir = *dataDir
	}

	// 初始化日志系统
	logger, err := storage.NewLogger(cfg.LogName)
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer logger.Close()

	c, err := startRotation(cfg, logger)
	if err != nil {
		logger.Error("创建定时任务失败: " + err.Error())
		return
	}
	defer c.Stop()

	go handleSignals(logger)

	cache := file.NewCache(cfg)
	if cfg.Watch {
		monitor, err := watchData(cfg, cache, logger)
		if err != nil {
			// 监控失败不影响交互，只是缓存不会自动失效
			logger.Warning("数据目录监控启动失败: " + err.Error())
		} else {
			defer monitor.Close()
		}
	}

	logger.Info(fmt.Sprintf("会话开始(数据目录: %s)", cfg.DataDir))
	session := console.NewSession(os.Stdin, os.Stdout, cache, logger, cfg)
	if err := session.Run(); err != nil {
		logger.Error("会话异常结束: " + err.Error())
		fmt.Fprintln(os.Stderr, err)
	}
}

// startRotation 按配置的间隔定时检查日志大小
func startRotation(cfg *config.Config, logger *storage.Logger) (*cron.Cron, error) {
	c := cron.New()

	interval := time.Duration(cfg.RotateInterval).String() // 例如 "1m0s"
	cronSpec := fmt.Sprintf("@every %s", interval)

	err := c.AddFunc(cronSpec, func() {
		if err := logger.CheckRotate(cfg); err != nil {
			logger.Error("日志轮转失败: " + err.Error())
		}
	})
	if err != nil {
		return nil, err
	}

	c.Start()
	return c, nil
}

// watchData 数据文件变化时让对应城市的缓存失效
func watchData(cfg *config.Config, cache *file.Cache, logger *storage.Logger) (*file.FileMonitor, error) {
	monitor, err := file.NewFileMonitor(cfg.DataDir)
	if err != nil {
		return nil, err
	}

	go monitor.Watch(func(filePath string) {
		if city, ok := cache.InvalidateFile(filePath); ok {
			logger.Info(fmt.Sprintf("数据文件 %s 已变化，%s 缓存失效", filePath, city))
		}
	}, func(err error) {
		logger.Error("File monitoring error:" + err.Error())
	})
	return monitor, nil
}

// handleSignals SIGHUP 重新打开日志文件，SIGINT/SIGTERM 关闭日志后退出
func handleSignals(logger *storage.Logger) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM)

	for sig := range sigChan {
		if sig == syscall.SIGHUP {
			if err := logger.Reopen(""); err != nil {
				fmt.Fprintln(os.Stderr, "Failed to reopen log:", err)
			}
			continue
		}

		logger.Info("Received signal: " + sig.String() + ", shutting down...")
		logger.Close()
		os.Exit(0)
	}
}
