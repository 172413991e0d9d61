package client

import (
	"bytes"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"bomby/internal/client/fx"
	"bomby/pkg/core"
)

// CuePlayer 播放提示音和背景循环，实现 core.Feedback（震动事件忽略）
type CuePlayer struct {
	ctx       *audio.Context
	bank      *fx.Bank
	sfxVolume float64
	bgm       *audio.Player
	playing   []*audio.Player
}

// NewCuePlayer 创建音频播放器。音量为 0 时对应的声音不会播放
func NewCuePlayer(sfxVolume, bgmVolume float64) *CuePlayer {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(int(fx.SampleRate))
	}
	p := &CuePlayer{
		ctx:       ctx,
		bank:      fx.NewBank(time.Now().UnixNano()),
		sfxVolume: sfxVolume,
	}
	if bgmVolume > 0 {
		loop := audio.NewInfiniteLoop(bytes.NewReader(fx.MusicLoop()), fx.MusicLoopLength())
		bgm, err := ctx.NewPlayer(loop)
		if err != nil {
			log.Printf("警告: 创建背景音乐播放器失败: %v", err)
		} else {
			bgm.SetVolume(bgmVolume)
			bgm.Play()
			p.bgm = bgm
		}
	}
	return p
}

func (p *CuePlayer) EmitTrauma(float32) {}

// EmitCue 随机挑一个变体播放
func (p *CuePlayer) EmitCue(cue core.Cue) {
	if p.sfxVolume <= 0 {
		return
	}
	pcm := p.bank.Pick(cue)
	if pcm == nil {
		return
	}
	player := p.ctx.NewPlayerFromBytes(pcm)
	player.SetVolume(p.sfxVolume)
	player.Play()
	p.playing = append(p.playing, player)
}

// Update 回收播放完的提示音
func (p *CuePlayer) Update() {
	alive := p.playing[:0]
	for _, player := range p.playing {
		if player.IsPlaying() {
			alive = append(alive, player)
			continue
		}
		player.Close()
	}
	clear(p.playing[len(alive):])
	p.playing = alive
}

// Close 停止所有声音
func (p *CuePlayer) Close() {
	for _, player := range p.playing {
		player.Close()
	}
	p.playing = nil
	if p.bgm != nil {
		p.bgm.Close()
		p.bgm = nil
	}
}
