package core

import (
	"errors"
	"fmt"
)

var (
	// ErrBombCountUnderflow 炸弹计数减到负数，说明炸弹与所有者的对应关系出错
	ErrBombCountUnderflow = errors.New("炸弹计数下溢")
	// ErrBombCountOverflow 炸弹计数超过上限
	ErrBombCountOverflow = errors.New("炸弹计数超过上限")
)

// BombCounter 记录玩家场上未爆炸的炸弹数量，范围 [0, capacity]
type BombCounter struct {
	count    int
	capacity int
}

// NewBombCounter 创建计数器
func NewBombCounter(capacity int) BombCounter {
	return BombCounter{capacity: capacity}
}

func (c *BombCounter) Count() int    { return c.count }
func (c *BombCounter) Capacity() int { return c.capacity }

// Full 是否已达到上限
func (c *BombCounter) Full() bool {
	return c.count >= c.capacity
}

// Increment 放置炸弹时调用
func (c *BombCounter) Increment() {
	if c.count >= c.capacity {
		panic(fmt.Errorf("%w: %d/%d", ErrBombCountOverflow, c.count, c.capacity))
	}
	c.count++
}

// Decrement 炸弹爆炸时调用
func (c *BombCounter) Decrement() {
	if c.count <= 0 {
		panic(fmt.Errorf("%w: %d", ErrBombCountUnderflow, c.count))
	}
	c.count--
}
