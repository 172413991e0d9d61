package core

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"strings"
)

// ErrInvalidLevel 关卡数据格式错误
var ErrInvalidLevel = errors.New("关卡格式错误")

// 默认关卡：W=墙壁, B=砖块, .=空地, P=出生点
var defaultLevel = []string{
	"P.B.B.W.W.W.W.B.B..P",
	"..W.W.B...B...W.W...",
	".W.W.W.W.W.W.W.W.W..",
	"B..B..BBB.BBB..B..B.",
	".W.W.WBW.W.WBW.W.W..",
	"B....B...B...B....B.",
	".WBWBW.W.W.W.WBWBW..",
	"W.B..B...B...B..B.WW",
	".WBWBW.W.W.W.WBWBW..",
	"B....B...B...B....B.",
	".W.W.WBW.W.WBW.W.W..",
	"B..B..BBB.BBB..B..B.",
	".W.W.W.W.W.W.W.W.W..",
	"..W.W.B...B...W.W...",
	"P.B.B.W.W.W.W.B.B..P",
}

// GameMap 游戏地图，实现 TileProvider
type GameMap struct {
	Width  int
	Height int
	Spawns []GridCell // 出生点，按关卡中出现的顺序

	tiles [][]TileType
}

// NewGameMap 使用默认关卡创建地图
func NewGameMap() *GameMap {
	m, err := ParseLevel(defaultLevel)
	if err != nil {
		panic(fmt.Sprintf("默认关卡无效: %v", err))
	}
	return m
}

// NewEmptyMap 创建没有任何地图块的地图
func NewEmptyMap(width, height int) *GameMap {
	m := &GameMap{Width: width, Height: height, tiles: make([][]TileType, height)}
	for y := range m.tiles {
		m.tiles[y] = make([]TileType, width)
	}
	return m
}

// LoadLevel 从文本读取关卡，空行被忽略
func LoadLevel(r io.Reader) (*GameMap, error) {
	var rows []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r ")
		if line == "" {
			continue
		}
		rows = append(rows, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("读取关卡失败: %w", err)
	}
	return ParseLevel(rows)
}

// LoadLevelFile 读取关卡文件，path 为空时返回 nil（使用默认关卡）
func LoadLevelFile(path string) (*GameMap, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("打开关卡文件失败: %w", err)
	}
	defer f.Close()

	m, err := LoadLevel(f)
	if err != nil {
		return nil, fmt.Errorf("加载关卡 %s 失败: %w", path, err)
	}
	return m, nil
}

// ParseLevel 解析关卡模板。未知字符生成无法分类的地图块
func ParseLevel(rows []string) (*GameMap, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: 关卡为空", ErrInvalidLevel)
	}
	width := len([]rune(rows[0]))
	if width == 0 {
		return nil, fmt.Errorf("%w: 第 1 行为空", ErrInvalidLevel)
	}

	m := NewEmptyMap(width, len(rows))
	for y, row := range rows {
		runes := []rune(row)
		if len(runes) != width {
			return nil, fmt.Errorf("%w: 第 %d 行长度 %d，期望 %d", ErrInvalidLevel, y+1, len(runes), width)
		}
		for x, r := range runes {
			switch r {
			case 'W':
				m.tiles[y][x] = TileWall
			case 'B':
				m.tiles[y][x] = TileBrick
			case '.':
				m.tiles[y][x] = TileEmpty
			case 'P':
				m.tiles[y][x] = TileEmpty
				m.Spawns = append(m.Spawns, GridCell{X: x, Y: y})
			default:
				m.tiles[y][x] = TileUnknown
			}
		}
	}
	return m, nil
}

// GetTile 获取指定位置的地图块，越界视为墙壁
func (m *GameMap) GetTile(x, y int) TileType {
	if x < 0 || x >= m.Width || y < 0 || y >= m.Height {
		return TileWall
	}
	return m.tiles[y][x]
}

// SetTile 设置指定位置的地图块
func (m *GameMap) SetTile(x, y int, tile TileType) {
	if x >= 0 && x < m.Width && y >= 0 && y < m.Height {
		m.tiles[y][x] = tile
	}
}

// Classify 实现 TileProvider
func (m *GameMap) Classify(cell GridCell) (TileType, error) {
	tile := m.GetTile(cell.X, cell.Y)
	if tile == TileUnknown {
		return TileUnknown, fmt.Errorf("%w: (%d, %d)", ErrUnclassifiedTile, cell.X, cell.Y)
	}
	return tile, nil
}

// DestroyTile 实现 TileProvider，墙壁不会被摧毁
func (m *GameMap) DestroyTile(cell GridCell) {
	if m.GetTile(cell.X, cell.Y) == TileBrick {
		m.SetTile(cell.X, cell.Y, TileEmpty)
	}
}

// AllTiles 实现 TileProvider
func (m *GameMap) AllTiles() iter.Seq2[GridCell, TileType] {
	return func(yield func(GridCell, TileType) bool) {
		for y := 0; y < m.Height; y++ {
			for x := 0; x < m.Width; x++ {
				tile := m.tiles[y][x]
				if tile == TileEmpty {
					continue
				}
				if !yield(GridCell{X: x, Y: y}, tile) {
					return
				}
			}
		}
	}
}

// Clone 深拷贝地图
func (m *GameMap) Clone() *GameMap {
	c := NewEmptyMap(m.Width, m.Height)
	for y := range m.tiles {
		copy(c.tiles[y], m.tiles[y])
	}
	c.Spawns = append([]GridCell(nil), m.Spawns...)
	return c
}

// String 以关卡模板格式输出地图
func (m *GameMap) String() string {
	var sb strings.Builder
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			switch m.tiles[y][x] {
			case TileWall:
				sb.WriteByte('W')
			case TileBrick:
				sb.WriteByte('B')
			case TileEmpty:
				sb.WriteByte('.')
			default:
				sb.WriteByte('?')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
