package qr1

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"math"
	"strings"

	svgo "github.com/ajstarks/svgo"
	"github.com/signintech/gopdf"
)

// marginBitmap returns the module matrix surrounded by a Margin-wide quiet
// zone of white modules.
func (q *QRCode) marginBitmap() ([][]bool, error) {
	bitmap, err := q.Bitmap()
	if err != nil {
		return nil, err
	}

	if q.Margin <= 0 {
		return bitmap, nil
	}

	size := symbolSize + 2*q.Margin

	result := make([][]bool, size)
	for y := range result {
		result[y] = make([]bool, size)
	}

	for y, row := range bitmap {
		copy(result[y+q.Margin][q.Margin:], row)
	}

	return result, nil
}

func (q *QRCode) image(size int) (image.Image, error) {
	bitmap, err := q.marginBitmap()
	if err != nil {
		return nil, err
	}

	// Minimum pixels (both width and height) required.
	realSize := len(bitmap)

	// Variable size support.
	if size < 0 {
		size = size * -1 * realSize
	}

	// Actual pixels available to draw the symbol. Automatically increase the
	// image size if it's not large enough.
	if size < realSize {
		size = realSize
	}

	// Output image.
	rect := image.Rectangle{Min: image.Point{}, Max: image.Point{X: size, Y: size}}

	// Saves a few bytes to have them in this order.
	p := color.Palette([]color.Color{q.BackgroundColor, q.ForegroundColor})
	img := image.NewPaletted(rect, p)

	// Map each image pixel to the nearest QR code module.
	modulesPerPixel := float64(realSize) / float64(size)

	for y := 0; y < size; y++ {
		y2 := int(float64(y) * modulesPerPixel)

		for x := 0; x < size; x++ {
			x2 := int(float64(x) * modulesPerPixel)

			if bitmap[y2][x2] {
				img.Set(x, y, q.ForegroundColor)
			}
		}
	}

	return img, nil
}

func (q *QRCode) PNG(size int) ([]byte, error) {
	img, err := q.image(size)
	if err != nil {
		return nil, err
	}

	encoder := png.Encoder{CompressionLevel: png.BestCompression}

	var b bytes.Buffer

	if err := encoder.Encode(&b, img); err != nil {
		return nil, err
	}

	bts := b.Bytes()

	if q.Base64 {
		bts = []byte(fmt.Sprintf("data:image/png;base64,%s", base64.StdEncoding.EncodeToString(bts)))
	}

	return bts, nil
}

func (q *QRCode) JPEG(size int) ([]byte, error) {
	img, err := q.image(size)
	if err != nil {
		return nil, err
	}

	var b bytes.Buffer

	if err := jpeg.Encode(&b, img, &jpeg.Options{Quality: jpeg.DefaultQuality}); err != nil {
		return nil, err
	}

	bts := b.Bytes()

	if q.Base64 {
		bts = []byte(fmt.Sprintf("data:image/jpeg;base64,%s", base64.StdEncoding.EncodeToString(bts)))
	}

	return bts, nil
}

func (q *QRCode) PDF(size int) ([]byte, error) {
	img, err := q.image(size)
	if err != nil {
		return nil, err
	}

	var b bytes.Buffer

	pdf := gopdf.GoPdf{}

	rect := gopdf.Rect{W: float64(size), H: float64(size)}

	pdf.Start(gopdf.Config{Unit: gopdf.UnitPT, PageSize: rect})
	pdf.AddPage()

	if err := pdf.ImageFrom(img, 0, 0, &rect); err != nil {
		return nil, err
	}

	if err := pdf.Write(&b); err != nil {
		return nil, err
	}

	bts := b.Bytes()

	if q.Base64 {
		bts = []byte(fmt.Sprintf("data:application/pdf;base64,%s", base64.StdEncoding.EncodeToString(bts)))
	}

	return bts, nil
}

func (q *QRCode) SVG(size int) ([]byte, error) {
	bitmap, err := q.marginBitmap()
	if err != nil {
		return nil, err
	}

	realSize := len(bitmap)

	var b bytes.Buffer

	bgR, bgG, bgB, bgA := q.BackgroundColor.RGBA()
	bgStyle := fmt.Sprintf("fill: rgb(%d, %d, %d); fill-opacity: %.2f",
		bgR>>8, bgG>>8, bgB>>8, float64(bgA>>8)/255,
	)

	fgR, fgG, fgB, fgA := q.ForegroundColor.RGBA()
	fgStyle := fmt.Sprintf("fill: rgb(%d, %d, %d); fill-opacity: %.2f",
		fgR>>8, fgG>>8, fgB>>8, float64(fgA>>8)/255,
	)

	scale := math.Floor(float64(size)/float64(realSize)) + float64(1)
	size = int(scale) * realSize

	svg := svgo.New(&b)

	svg.Start(size, size)
	svg.Rect(0, 0, size, size, bgStyle)
	svg.Group(fgStyle)
	svg.Scale(scale)

	for y := 0; y < realSize; y++ {
		for x := 0; x < realSize; x++ {
			if bitmap[y][x] {
				svg.Rect(x, y, 1, 1)
			}
		}
	}

	svg.Gend()
	svg.Gend()
	svg.End()

	bts := b.Bytes()

	if q.Base64 {
		bts = []byte(fmt.Sprintf("data:image/svg+xml;base64,%s", base64.StdEncoding.EncodeToString(bts)))
	}

	return bts, nil
}

const (
	blankBlock = " "
	fullBlock  = "█"
	downBlock  = "▄"
	upBlock    = "▀"
)

// Terminal renders the code as Unicode half blocks, two module rows per text
// line, dark terminal text on the light background convention (white modules
// are drawn as blocks).
func (q *QRCode) Terminal() (string, error) {
	bitmap, err := q.marginBitmap()
	if err != nil {
		return "", err
	}

	var sb strings.Builder

	size := len(bitmap)

	for y := 0; y < size-1; y += 2 {
		for x := 0; x < size; x++ {
			switch {
			case bitmap[y][x] == bitmap[y+1][x] && bitmap[y][x]:
				sb.WriteString(blankBlock)
			case bitmap[y][x] == bitmap[y+1][x]:
				sb.WriteString(fullBlock)
			case bitmap[y][x]:
				sb.WriteString(downBlock)
			default:
				sb.WriteString(upBlock)
			}
		}

		sb.WriteString("\n")
	}

	if size%2 == 1 {
		y := size - 1

		for x := 0; x < size; x++ {
			if bitmap[y][x] {
				sb.WriteString(blankBlock)
			} else {
				sb.WriteString(upBlock)
			}
		}

		sb.WriteString("\n")
	}

	return sb.String(), nil
}
