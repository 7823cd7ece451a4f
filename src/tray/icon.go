package tray

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"image/png"
)

const iconSize = 16

// Icon returns a 16x16 .ico: a dark frame with an inset panel, drawn to
// suggest a window embedded in another. The image is stored as PNG inside
// the ICO container, which Windows accepts since Vista.
func Icon() ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, iconSize, iconSize))
	frame := color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}
	panel := color.RGBA{R: 0x00, G: 0x78, B: 0xd4, A: 0xff}
	for y := 0; y < iconSize; y++ {
		for x := 0; x < iconSize; x++ {
			switch {
			case x >= 4 && x < 13 && y >= 5 && y < 13:
				img.Set(x, y, panel)
			case x == 1 || x == iconSize-2 || y == 1 || y == 3 || y == iconSize-2:
				img.Set(x, y, frame)
			}
		}
	}

	var pngBuf bytes.Buffer
	if err := png.Encode(&pngBuf, img); err != nil {
		return nil, err
	}

	var out bytes.Buffer
	// ICONDIR
	_ = binary.Write(&out, binary.LittleEndian, [3]uint16{0, 1, 1})
	// ICONDIRENTRY
	out.Write([]byte{iconSize, iconSize, 0, 0})
	_ = binary.Write(&out, binary.LittleEndian, struct {
		Planes, BitCount uint16
		Size, Offset     uint32
	}{1, 32, uint32(pngBuf.Len()), 6 + 16})
	out.Write(pngBuf.Bytes())
	return out.Bytes(), nil
}
