// Command camdemo builds a perspective camera and previews it as a
// wireframe cube rendered to PNG.
package main

import (
	"flag"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"log"
	"log/slog"
	"os"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/gogpu/cam3d"
	"github.com/gogpu/cam3d/internal/wireframe"
)

func main() {
	var (
		config   = flag.String("config", "", "YAML settings file (camera: [fov, aspect, near, far])")
		fov      = flag.Float64("fov", 75, "vertical field of view in degrees")
		aspect   = flag.Float64("aspect", 16.0/9.0, "aspect ratio")
		near     = flag.Float64("near", 0.1, "near clipping plane")
		far      = flag.Float64("far", 1000, "far clipping plane")
		distance = flag.Float64("distance", 4, "camera distance from the cube")
		height   = flag.Int("height", 540, "image height; width follows the aspect")
		output   = flag.String("output", "camera.png", "output file")
		verbose  = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *verbose {
		cam3d.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	settings := cam3d.NewSettings(*fov, *aspect, *near, *far)
	if *config != "" {
		var err error
		if settings, err = loadSettings(*config); err != nil {
			log.Fatalf("Failed to load settings: %v", err)
		}
	}

	cam, err := cam3d.InitCamera(settings,
		cam3d.WithPosition(mgl64.Vec3{*distance * 0.6, *distance * 0.5, *distance}),
		cam3d.WithLookAt(mgl64.Vec3{}),
	)
	if err != nil {
		log.Fatalf("Failed to create camera: %v", err)
	}

	w := int(float64(*height) * cam.Aspect)
	img := image.NewRGBA(image.Rect(0, 0, w, *height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.RGBA{20, 24, 32, 255}), image.Point{}, draw.Src)

	edges := wireframe.Cube(mgl64.Vec3{}, 2)
	drawn := wireframe.Render(img, cam, edges, color.RGBA{120, 200, 255, 255}, 2)

	if err := savePNG(*output, img); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Camera fov=%.1f aspect=%.3f near=%g far=%g focal=%.1fmm",
		cam.FOV, cam.Aspect, cam.Near, cam.Far, cam.FocalLength())
	log.Printf("Preview saved to %s (%dx%d, %d/%d edges)\n", *output, w, *height, drawn, len(edges))
}

func loadSettings(path string) (cam3d.Settings, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return cam3d.LoadSettings(f)
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
