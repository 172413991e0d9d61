package fx

import (
	"encoding/binary"
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"bomby/pkg/core"
)

// SampleRate 合成和播放使用的采样率
const SampleRate = beep.SampleRate(48000)

// Bank 每种提示音预先合成好的 PCM 数据（16 位小端立体声），
// 爆炸和死亡各有两个变体，播放时随机挑一个
type Bank struct {
	sounds map[core.Cue][][]byte
	rnd    *rand.Rand
}

// NewBank 合成所有提示音
func NewBank(seed int64) *Bank {
	b := &Bank{
		sounds: make(map[core.Cue][][]byte),
		rnd:    rand.New(rand.NewSource(seed)),
	}
	b.sounds[core.CueBombFuse] = [][]byte{
		render(fuse(seed)),
	}
	b.sounds[core.CueBombExplosion] = [][]byte{
		render(blast(seed+1, 55, 600*time.Millisecond)),
		render(blast(seed+2, 40, 800*time.Millisecond)),
	}
	b.sounds[core.CuePlayerDeath] = [][]byte{
		render(sweep(440, 110, 500*time.Millisecond)),
		render(sweep(520, 90, 650*time.Millisecond)),
	}
	return b
}

// Variants 某个提示音的变体数量
func (b *Bank) Variants(cue core.Cue) int {
	return len(b.sounds[cue])
}

// Pick 随机挑选一个变体，未知提示音返回 nil
func (b *Bank) Pick(cue core.Cue) []byte {
	variants := b.sounds[cue]
	if len(variants) == 0 {
		return nil
	}
	return variants[b.rnd.Intn(len(variants))]
}

// fuse 点燃引线：高频噪声，逐渐减弱
func fuse(seed int64) beep.Streamer {
	d := 400 * time.Millisecond
	n := SampleRate.N(d)
	return envelope(&noiseGen{rnd: rand.New(rand.NewSource(seed)), gain: 0.25}, n, 0.01)
}

// blast 爆炸：低频正弦加噪声，快速衰减
func blast(seed int64, freq float64, d time.Duration) beep.Streamer {
	n := SampleRate.N(d)
	mix := beep.Mix(
		&noiseGen{rnd: rand.New(rand.NewSource(seed)), gain: 0.5},
		&toneGen{freq: freq, gain: 0.6},
	)
	return &effects.Volume{
		Streamer: envelope(mix, n, 0.005),
		Base:     2,
		Volume:   -0.5,
	}
}

// sweep 死亡：频率从 from 滑到 to
func sweep(from, to float64, d time.Duration) beep.Streamer {
	n := SampleRate.N(d)
	return envelope(&sweepGen{from: from, to: to, total: n, gain: 0.4}, n, 0.01)
}

// envelope 截取 n 个采样，起音 attack 秒后线性衰减到 0
func envelope(s beep.Streamer, n int, attack float64) beep.Streamer {
	attackN := max(SampleRate.N(time.Duration(attack*float64(time.Second))), 1)
	pos := 0
	return beep.Take(n, beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		m, ok := s.Stream(samples)
		for i := range samples[:m] {
			var g float64
			if pos < attackN {
				g = float64(pos) / float64(attackN)
			} else {
				g = 1 - float64(pos-attackN)/float64(max(n-attackN, 1))
			}
			samples[i][0] *= g
			samples[i][1] *= g
			pos++
		}
		return m, ok
	}))
}

// render 把流读完，转换成 16 位 PCM
func render(s beep.Streamer) []byte {
	var out []byte
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for _, frame := range buf[:n] {
			for _, v := range frame {
				out = binary.LittleEndian.AppendUint16(out, uint16(int16(clamp(v, -1, 1)*math.MaxInt16)))
			}
		}
		if !ok {
			return out
		}
	}
}

type noiseGen struct {
	rnd  *rand.Rand
	gain float64
}

func (g *noiseGen) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		v := (g.rnd.Float64()*2 - 1) * g.gain
		samples[i] = [2]float64{v, v}
	}
	return len(samples), true
}

func (g *noiseGen) Err() error { return nil }

type toneGen struct {
	freq float64
	gain float64
	pos  int
}

func (g *toneGen) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		t := float64(g.pos) / float64(SampleRate)
		v := math.Sin(2*math.Pi*g.freq*t) * g.gain
		samples[i] = [2]float64{v, v}
		g.pos++
	}
	return len(samples), true
}

func (g *toneGen) Err() error { return nil }

type sweepGen struct {
	from, to float64
	total    int
	gain     float64
	pos      int
	phase    float64
}

func (g *sweepGen) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		k := min(float64(g.pos)/float64(g.total), 1)
		freq := g.from + (g.to-g.from)*k
		g.phase += 2 * math.Pi * freq / float64(SampleRate)
		v := math.Sin(g.phase) * g.gain
		samples[i] = [2]float64{v, v}
		g.pos++
	}
	return len(samples), true
}

func (g *sweepGen) Err() error { return nil }
