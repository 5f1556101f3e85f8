package main

import (
	"fmt"
	"image/color"
	"log"
	"os"

	"github.com/qrwire/qr1"
)

func main() {
	qr, err := qr1.New("HELLO WORLD")
	if err != nil {
		log.Fatal(err.Error())
	}

	opacity := 100
	a := (float64(opacity) / float64(100)) * float64(255)
	qr.ForegroundColor = color.RGBA{R: 0, G: 0, B: 0, A: uint8(a)}

	writeToFile("qr.png", qr.PNG)
	writeToFile("qr.jpeg", qr.JPEG)
	writeToFile("qr.svg", qr.SVG)
	writeToFile("qr.pdf", qr.PDF)

	text, err := qr.Terminal()
	if err != nil {
		log.Fatal(err.Error())
	}

	fmt.Println(text)

	mask, err := qr.Mask()
	if err != nil {
		log.Fatal(err.Error())
	}

	fmt.Println("selected mask:", mask)
}

func writeToFile(fileName string, formatFunc func(_ int) ([]byte, error)) {
	size := 500
	fileMode := os.FileMode(0644)

	bytes, err := formatFunc(size)
	if err != nil {
		log.Fatal(err.Error())
	}

	if err := os.WriteFile(fileName, bytes, fileMode); err != nil {
		log.Fatal(err.Error())
	}
}
