// Package fx 客户端的画面和声音反馈：镜头震动、深度排序、音效合成。
// 不依赖窗口和音频设备，可以直接测试。
package fx

import (
	"math"
	"time"

	"bomby/pkg/core"
)

const (
	traumaDecay = 0.5 // 每秒衰减量
	shakeSpeed  = 3.0 // 噪声采样速度

	DefaultMaxAngle  = 6 * math.Pi / 180 // 弧度
	DefaultMaxOffset = 12.0              // 像素
)

// Camera 带震动的镜头。实现 core.Feedback，只响应 trauma
type Camera struct {
	MaxAngle  float64
	MaxOffset float64

	trauma  float64 // [0, 1]
	elapsed float64 // 秒
	noise   *Noise
}

// NewCamera 创建镜头，seed 决定震动噪声
func NewCamera(seed int64) *Camera {
	return &Camera{
		MaxAngle:  DefaultMaxAngle,
		MaxOffset: DefaultMaxOffset,
		noise:     NewNoise(seed),
	}
}

// AddTrauma 增加震动强度，上限为 1
func (c *Camera) AddTrauma(v float64) {
	c.trauma = min(c.trauma+v, 1)
}

func (c *Camera) EmitTrauma(magnitude float32) { c.AddTrauma(float64(magnitude)) }
func (c *Camera) EmitCue(core.Cue)             {}

// Update 线性衰减 trauma 并推进噪声时间
func (c *Camera) Update(dt time.Duration) {
	s := dt.Seconds()
	c.elapsed += s
	c.trauma = max(c.trauma-traumaDecay*s, 0)
}

func (c *Camera) Trauma() float64 { return c.trauma }

// Shake 当前帧的偏移和旋转，幅度与 trauma 的平方成正比
func (c *Camera) Shake() (dx, dy, angle float64) {
	if c.trauma <= 0 {
		return 0, 0, 0
	}
	k := c.trauma * c.trauma
	t := c.elapsed * shakeSpeed
	angle = k * c.noise.At(t) * c.MaxAngle
	dx = k * c.noise.At(t+100) * c.MaxOffset
	dy = k * c.noise.At(t+200) * c.MaxOffset
	return dx, dy, angle
}
