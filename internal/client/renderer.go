package client

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"bomby/internal/client/fx"
	"bomby/pkg/core"
)

// Renderer 把快照画到屏幕上：地图、按深度排序的炸弹和玩家、镜头震动
type Renderer struct {
	Camera *fx.Camera

	world   *ebiten.Image
	anim    *walkAnimator
	localID map[int]bool
	sprites []fx.Sprite[func(*ebiten.Image)]
}

// NewRenderer 创建渲染器，localIDs 是本机控制的玩家
func NewRenderer(camera *fx.Camera, localIDs ...int) *Renderer {
	r := &Renderer{
		Camera:  camera,
		anim:    newWalkAnimator(),
		localID: make(map[int]bool),
	}
	for _, id := range localIDs {
		r.localID[id] = true
	}
	return r
}

// SetLocal 标记本机玩家（联机模式在加入后才知道自己的 ID）
func (r *Renderer) SetLocal(id int) {
	clear(r.localID)
	r.localID[id] = true
}

// Update 推进动画和镜头
func (r *Renderer) Update(snap core.Snapshot, dt time.Duration) {
	r.anim.Update(snap.Players, dt)
	r.Camera.Update(dt)
}

// Draw 绘制一帧。世界先画到离屏图像，再整体施加镜头偏移和旋转
func (r *Renderer) Draw(screen *ebiten.Image, snap core.Snapshot) {
	if snap.Map == nil {
		return
	}
	w, h := worldSize(snap.Map)
	if r.world == nil || r.world.Bounds().Dx() != w || r.world.Bounds().Dy() != h {
		if r.world != nil {
			r.world.Deallocate()
		}
		r.world = ebiten.NewImage(w, h)
	}
	r.world.Clear()
	drawMap(r.world, snap.Map)

	r.sprites = r.sprites[:0]
	for _, e := range snap.Explosions {
		r.sprites = append(r.sprites, fx.Sprite[func(*ebiten.Image)]{
			Layer: fx.LayerGround,
			Y:     core.ToWorld(e.Cell).Y,
			Item:  func(dst *ebiten.Image) { drawExplosion(dst, e) },
		})
	}
	for _, b := range snap.Bombs {
		r.sprites = append(r.sprites, fx.Sprite[func(*ebiten.Image)]{
			Layer: fx.LayerActors,
			Y:     core.ToWorld(b.Cell).Y,
			Item:  func(dst *ebiten.Image) { drawBomb(dst, b) },
		})
	}
	for _, p := range snap.Players {
		frame, local := r.anim.Frame(p.ID), r.localID[p.ID]
		r.sprites = append(r.sprites, fx.Sprite[func(*ebiten.Image)]{
			Layer: fx.LayerActors,
			Y:     p.Pos.Y,
			Item:  func(dst *ebiten.Image) { drawPlayer(dst, p, frame, local) },
		})
	}
	fx.SortByDepth(r.sprites)
	for _, s := range r.sprites {
		s.Item(r.world)
	}

	dx, dy, angle := r.Camera.Shake()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(w)/2, -float64(h)/2)
	op.GeoM.Rotate(angle)
	op.GeoM.Translate(float64(w)/2+dx, float64(h)/2+dy+hudHeight)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(r.world, op)
}

func worldSize(m *core.GameMap) (int, int) {
	return m.Width * core.TileSize, m.Height * core.TileSize
}

// ScreenSize 地图加上顶部状态栏的逻辑尺寸
func ScreenSize(m *core.GameMap) (int, int) {
	w, h := worldSize(m)
	return w, h + hudHeight
}
