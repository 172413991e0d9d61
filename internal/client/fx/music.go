package fx

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// 背景循环的音符（Hz），每个音符一拍
var bassLine = []float64{
	110, 110, 165, 110, 147, 110, 131, 123,
	98, 98, 147, 98, 131, 98, 123, 110,
}

const beat = 250 * time.Millisecond

// MusicLoop 合成一段可以无缝循环的低音伴奏
func MusicLoop() []byte {
	n := SampleRate.N(beat)
	notes := make([]beep.Streamer, 0, len(bassLine))
	for _, freq := range bassLine {
		notes = append(notes, envelope(&toneGen{freq: freq, gain: 0.3}, n, 0.02))
	}
	return render(&effects.Volume{
		Streamer: beep.Seq(notes...),
		Base:     2,
		Volume:   -1,
	})
}

// MusicLoopLength 循环的字节长度
func MusicLoopLength() int64 {
	return int64(SampleRate.N(beat)) * int64(len(bassLine)) * 4
}
