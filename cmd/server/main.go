package main

import (
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"bomby/internal/config"
	"bomby/internal/server"
)

func main() {
	cfg, err := config.LoadServer(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatalf("配置错误: %v", err)
	}

	gameServer, err := server.NewGameServer(cfg)
	if err != nil {
		log.Fatalf("创建服务器失败: %v", err)
	}

	go func() {
		if err := gameServer.Start(); err != nil {
			log.Fatalf("服务器启动失败: %v", err)
		}
	}()

	log.Println("========================================")
	log.Println("  Bomby 联机服务器")
	log.Println("========================================")
	log.Printf("监听地址: %s (%s)", cfg.Addr, cfg.Proto)
	if cfg.AdminAddr != "" {
		log.Printf("管理接口: %s", cfg.AdminAddr)
	}
	log.Printf("最大玩家数: %d，电脑玩家: %d", server.MaxPlayers, cfg.Bots)
	log.Printf("服务器 TPS: %d", server.ServerTPS)
	log.Println("========================================")
	log.Println("按 Ctrl+C 停止服务器")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Println("正在关闭服务器...")
	gameServer.Shutdown()
	log.Println("服务器已关闭，再见！")
}
