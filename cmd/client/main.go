package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"bomby/internal/client"
	"bomby/internal/client/remote"
	"bomby/internal/config"
	"bomby/pkg/core"
)

func main() {
	cfg, err := config.LoadClient(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatalf("配置错误: %v", err)
	}

	character, err := core.ParseCharacter(cfg.Character)
	if err != nil {
		log.Fatalf("配置错误: %v", err)
	}

	audio := client.NewCuePlayer(cfg.SFXVolume, cfg.BGMVolume)
	defer audio.Close()

	var (
		game  ebiten.Game
		level *core.GameMap
		title string
	)
	if cfg.Online {
		c := remote.New(remote.Options{
			Addr:      cfg.Addr,
			Proto:     cfg.Proto,
			Name:      cfg.Name,
			Character: character,
			RoomID:    cfg.RoomID,
		}, nil)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		session, err := c.Join(ctx)
		cancel()
		if err != nil {
			log.Fatalf("加入游戏失败: %v", err)
		}
		ng := client.NewNetworkGame(c, session, client.ControlWASD, audio)
		defer ng.Close()

		game, level = ng, session.Map
		title = "Bomby - 联机 [" + character.String() + "] [" + client.ControlWASD.String() + "]"
	} else {
		level, err = core.LoadLevelFile(cfg.LevelFile)
		if err != nil {
			log.Fatalf("配置错误: %v", err)
		}
		if level == nil {
			level = core.NewGameMap()
		}
		lg, err := client.NewLocalGame(level, character, cfg.Bots, audio)
		if err != nil {
			log.Fatalf("创建游戏失败: %v", err)
		}
		game = lg
		title = "Bomby - 本地双人 [" + client.ControlWASD.String() + " / " + client.ControlArrow.String() + "]"
	}

	w, h := client.ScreenSize(level)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(title)
	if cfg.ResizableWindow {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	} else {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	}
	ebiten.SetTPS(core.TPS)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
