// Command chrdump renders an NES CHR-ROM (either standalone, or extracted
// from an iNES image) as a 16x16-tile PNG sheet, the standard "pattern
// table" debug view.
package main

import (
	"flag"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"log"
	"math/bits"
	"os"

	xdraw "golang.org/x/image/draw"

	"github.com/cryowatt/nes2a03/ines"
)

var (
	inPath  = flag.String("in", "", "Path to a .chr file or an .nes image to extract CHR-ROM from")
	outPath = flag.String("out", "chr.png", "Path to write the rendered PNG to")
	scale   = flag.Int("scale", 2, "Integer scale factor applied to the 128x128-per-bank sheet")
)

// grayscale is the default 4-shade palette chrdump uses absent a real NES
// palette file -- one shade per 2bpp pixel value, darkest for 0 (background).
var grayscale = [4]color.RGBA{
	{0x00, 0x00, 0x00, 0xFF},
	{0x60, 0x60, 0x60, 0xFF},
	{0xB0, 0xB0, 0xB0, 0xFF},
	{0xFF, 0xFF, 0xFF, 0xFF},
}

func main() {
	flag.Parse()
	if *inPath == "" {
		log.Fatal("-in is required")
	}

	chr, err := loadCHR(*inPath)
	if err != nil {
		log.Fatalf("loading CHR data: %v", err)
	}
	if len(chr) == 0 {
		log.Fatal("input has no CHR-ROM data")
	}

	sheet := renderSheet(chr)

	if *scale > 1 {
		bounds := sheet.Bounds()
		factor := *scale
		scaled := image.NewRGBA(image.Rect(0, 0, bounds.Dx()*factor, bounds.Dy()*factor))
		xdraw.NearestNeighbor.Scale(scaled, scaled.Bounds(), sheet, bounds, xdraw.Over, nil)
		sheet = scaled
	}

	out, err := os.Create(*outPath)
	if err != nil {
		log.Fatalf("creating -out: %v", err)
	}
	defer out.Close()
	if err := png.Encode(out, sheet); err != nil {
		log.Fatalf("encoding PNG: %v", err)
	}
}

// loadCHR reads path as either a raw .chr file or a full .nes image,
// returning just the CHR-ROM bytes either way.
func loadCHR(path string) ([]uint8, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if rom, err := ines.Load(f); err == nil {
		return rom.CHRROM, nil
	}

	if _, err := f.Seek(0, 0); err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	buf := make([]uint8, info.Size())
	if _, err := f.Read(buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// renderSheet draws every 16-byte tile in chr into a 16-tiles-wide sheet,
// one 4KB pattern table per 128 pixel rows, 2bpp-plane-pair decoded
// MSB-first per row.
func renderSheet(chr []uint8) *image.RGBA {
	const tilesPerRow = 16
	const tileSize = 8
	const bankBytes = 16 * 16 * tileSize * 2 // 16 bytes/tile * 256 tiles

	banks := (len(chr) + bankBytes - 1) / bankBytes
	img := image.NewRGBA(image.Rect(0, 0, tilesPerRow*tileSize, banks*tilesPerRow*tileSize))
	draw.Draw(img, img.Bounds(), &image.Uniform{grayscale[0]}, image.Point{}, draw.Src)

	for tileIndex := 0; tileIndex*16+16 <= len(chr); tileIndex++ {
		bank := tileIndex / (16 * 16)
		within := tileIndex % (16 * 16)
		tx := within % tilesPerRow
		ty := within / tilesPerRow

		tile := chr[tileIndex*16 : tileIndex*16+16]
		plane0 := tile[0:8]
		plane1 := tile[8:16]
		for row := 0; row < 8; row++ {
			lo := bits.Reverse8(plane0[row])
			hi := bits.Reverse8(plane1[row])
			for col := 0; col < 8; col++ {
				bit0 := (lo >> uint(col)) & 1
				bit1 := (hi >> uint(col)) & 1
				pixel := bit0 | bit1<<1
				img.Set(tx*tileSize+col, (bank*tilesPerRow+ty)*tileSize+row, grayscale[pixel])
			}
		}
	}
	return img
}
