package summary

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"time"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Artifact dimensions, matching the published summary card format.
const (
	imageWidth  = 800
	imageHeight = 600
)

var (
	backgroundColor = color.RGBA{R: 26, G: 26, B: 46, A: 255}
	titleColor      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	subtitleColor   = color.RGBA{R: 168, G: 218, B: 220, A: 255}
	accentColor     = color.RGBA{R: 230, G: 57, B: 70, A: 255}
	bodyColor       = color.RGBA{R: 241, G: 250, B: 238, A: 255}
)

// TopCountry is one row of the top-5-by-GDP list.
type TopCountry struct {
	Name         string
	EstimatedGDP *float64
}

// Data is everything the summary card displays.
type Data struct {
	TotalCountries  int64
	Top             []TopCountry
	LastRefreshedAt time.Time
}

// render draws the summary card and returns it PNG-encoded.
func render(data Data) ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, imageWidth, imageHeight))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: backgroundColor}, image.Point{}, draw.Src)

	drawText(img, 50, 60, titleColor, "Country Currency & Exchange API")
	drawText(img, 50, 90, subtitleColor, "Data Summary")

	drawText(img, 50, 180, bodyColor, fmt.Sprintf("Total Countries: %d", data.TotalCountries))
	drawText(img, 50, 230, accentColor, "Top 5 Countries by GDP:")

	y := 270
	for i, country := range data.Top {
		drawText(img, 70, y, titleColor, fmt.Sprintf("%d. %s - %s", i+1, country.Name, formatGDP(country.EstimatedGDP)))
		y += 30
	}

	drawText(img, 50, imageHeight-50, subtitleColor, "Last Refreshed: "+data.LastRefreshedAt.UTC().Format(time.RFC1123))

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode summary png: %w", err)
	}
	return buf.Bytes(), nil
}

// formatGDP renders a GDP value in billions, or N/A when absent.
func formatGDP(gdp *float64) string {
	if gdp == nil {
		return "N/A"
	}
	return fmt.Sprintf("$%.2fB", *gdp/1e9)
}

func drawText(img *image.RGBA, x, y int, c color.Color, text string) {
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}
