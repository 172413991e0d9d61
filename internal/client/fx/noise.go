package fx

import (
	"math"
	"math/rand"
)

const noiseSize = 256

// Noise 一维梯度噪声，输出 [-1, 1]，相邻采样连续变化
type Noise struct {
	grad [noiseSize]float64
	perm [noiseSize]int
}

func NewNoise(seed int64) *Noise {
	rnd := rand.New(rand.NewSource(seed))
	n := &Noise{}
	for i := range n.grad {
		n.grad[i] = rnd.Float64()*2 - 1
	}
	for i, p := range rnd.Perm(noiseSize) {
		n.perm[i] = p
	}
	return n
}

// At 在 t 处采样
func (n *Noise) At(t float64) float64 {
	i0 := int(math.Floor(t))
	f := t - float64(i0)
	g0 := n.gradient(i0)
	g1 := n.gradient(i0 + 1)

	// 每个整数点的梯度贡献，用 quintic 曲线混合
	v0 := g0 * f
	v1 := g1 * (f - 1)
	u := f * f * f * (f*(f*6-15) + 10)
	// 一维梯度噪声的范围是 [-0.5, 0.5]
	return clamp((v0+(v1-v0)*u)*2, -1, 1)
}

func (n *Noise) gradient(i int) float64 {
	return n.grad[n.perm[i&(noiseSize-1)]]
}

func clamp(v, lo, hi float64) float64 {
	return max(lo, min(v, hi))
}
