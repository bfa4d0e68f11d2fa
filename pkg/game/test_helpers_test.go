package game

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"

	"github.com/decker502/catchthemall/pkg/embedded"
)

// testWAV 生成一段 16-bit 立体声 PCM WAV 数据
func testWAV(t *testing.T, sampleRate, frames int) []byte {
	t.Helper()

	var buf bytes.Buffer
	dataSize := frames * 4
	write := func(v interface{}) {
		if err := binary.Write(&buf, binary.LittleEndian, v); err != nil {
			t.Fatalf("failed to write wav: %v", err)
		}
	}

	buf.WriteString("RIFF")
	write(uint32(36 + dataSize))
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	write(uint32(16))
	write(uint16(1)) // PCM
	write(uint16(2)) // channels
	write(uint32(sampleRate))
	write(uint32(sampleRate * 4))
	write(uint16(4))
	write(uint16(16))
	buf.WriteString("data")
	write(uint32(dataSize))
	for i := 0; i < frames; i++ {
		v := int16((i % 64) * 256)
		write(v)
		write(v)
	}
	return buf.Bytes()
}

// testPNG 生成一张纯色 PNG
func testPNG(t *testing.T, w, h int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 160, B: 40, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode png: %v", err)
	}
	return buf.Bytes()
}

const testManifest = `version: "1.0"
base_path: assets
groups:
  session:
    images:
      - id: IMAGE_PLAYER
        path: images/player
    sounds:
      - id: SOUND_COIN_PICKED
        path: sounds/coin_picked.wav
  broken:
    sounds:
      - id: SOUND_BROKEN
        path: sounds/broken.wav
`

// initTestEmbedded 用内存文件系统初始化 embedded 包
func initTestEmbedded(t *testing.T) {
	t.Helper()

	assets := fstest.MapFS{
		"assets/images/player.png":      &fstest.MapFile{Data: testPNG(t, 40, 30)},
		"assets/sounds/coin_picked.wav": &fstest.MapFile{Data: testWAV(t, 44100, 441)},
		"assets/sounds/broken.wav":      &fstest.MapFile{Data: []byte("not a wav")},
	}
	data := fstest.MapFS{
		"data/resources.yaml": &fstest.MapFile{Data: []byte(testManifest)},
		"data/invalid.yaml":   &fstest.MapFile{Data: []byte("groups: [")},
	}
	embedded.Init(assets, data)
}
