package sdlhost

import (
	"bytes"
	_ "embed"
	"image"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/glide/pkg/glide"
)

//go:embed arrow_up.svg
var arrowUpSVG []byte

// rasterizeSVG renders an SVG document into a size x size RGBA image.
func rasterizeSVG(data []byte, size int) (*image.RGBA, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, rgba, rgba.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)
	icon.Draw(raster, 1.0)

	return rgba, nil
}

// iconTexture uploads an SVG icon to the renderer.
func iconTexture(renderer *sdl.Renderer, data []byte, size int) (*sdl.Texture, error) {
	rgba, err := rasterizeSVG(data, size)
	if err != nil {
		return nil, glide.NewInfrastructureError("rasterize_icon", err)
	}

	surface, err := sdl.CreateRGBSurfaceWithFormat(0, int32(size), int32(size), 32, uint32(sdl.PIXELFORMAT_ABGR8888))
	if err != nil {
		return nil, glide.NewInfrastructureError("create_surface", err)
	}
	defer surface.Free()

	pixels := surface.Pixels()
	rowBytes := size * 4
	for y := 0; y < size; y++ {
		copy(pixels[y*int(surface.Pitch):y*int(surface.Pitch)+rowBytes], rgba.Pix[y*rgba.Stride:y*rgba.Stride+rowBytes])
	}

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, glide.NewInfrastructureError("create_texture", err)
	}
	texture.SetBlendMode(sdl.BLENDMODE_BLEND)
	return texture, nil
}
