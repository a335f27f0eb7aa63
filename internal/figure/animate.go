package figure

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/color/palette"
	imagedraw "image/draw"
	"image/gif"
	"io"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

// DefaultDelay is the per-frame delay in 100ths of a second.
const DefaultDelay = 120

type frameResult struct {
	Index    int
	Paletted *image.Paletted
}

// Animate renders each figure as one frame and encodes them as a looping
// GIF. The palette is taken from the last frame.
func Animate(w io.Writer, frames []*Figure, dpi, delay int) error {
	if len(frames) == 0 {
		return errors.New("figure: no frames to animate")
	}

	images := make([]image.Image, len(frames))
	for i, f := range frames {
		c, err := f.Render(dpi)
		if err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
		images[i] = c.Image()
	}

	// Use the last frame to generate the palette
	pal := generatePalette(images[len(images)-1])

	resultCh := make(chan frameResult, len(images))
	var wg sync.WaitGroup
	for index, img := range images {
		wg.Add(1)
		go convertToPaletted(index, img, pal, resultCh, &wg)
	}
	wg.Wait()
	close(resultCh)

	var frameResults []frameResult
	for result := range resultCh {
		frameResults = append(frameResults, result)
	}
	sort.Slice(frameResults, func(i, j int) bool {
		return frameResults[i].Index < frameResults[j].Index
	})

	anim := &gif.GIF{}
	for _, result := range frameResults {
		anim.Image = append(anim.Image, result.Paletted)
		anim.Delay = append(anim.Delay, delay)
	}
	return gif.EncodeAll(w, anim)
}

// SaveGIF writes the animation to dir/name and returns its path.
func SaveGIF(frames []*Figure, dir, name string, dpi, delay int) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	path := filepath.Join(dir, name)
	file, err := os.Create(path)
	if err != nil {
		return "", err
	}

	w := bufio.NewWriter(file)
	if err := Animate(w, frames, dpi, delay); err != nil {
		file.Close()
		return "", err
	}
	if err := w.Flush(); err != nil {
		file.Close()
		return "", err
	}
	return path, file.Close()
}

func convertToPaletted(
	index int,
	img image.Image,
	pal []color.Color,
	resultCh chan<- frameResult,
	wg *sync.WaitGroup,
) {
	defer wg.Done()
	paletted := image.NewPaletted(img.Bounds(), pal)
	imagedraw.Draw(paletted, img.Bounds(), img, img.Bounds().Min, imagedraw.Over)
	resultCh <- frameResult{Index: index, Paletted: paletted}
}

func generatePalette(img image.Image) []color.Color {
	paletted := image.NewPaletted(img.Bounds(), palette.Plan9)
	imagedraw.Draw(paletted, img.Bounds(), img, img.Bounds().Min, imagedraw.Over)
	return paletted.Palette
}
