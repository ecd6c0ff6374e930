//go:build !rp2040 && !rp2350

package main

import (
	"context"
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"

	"gaugecode-go/services/gauge"
	"gaugecode-go/x/framebuf"
)

// runWindow shows fb in a window and runs svc until the window closes or ctx
// is done. Fyne owns the main goroutine; the gauge loop runs beside it.
func runWindow(ctx context.Context, svc *gauge.Service, fb *framebuf.Buffer, scale float32) error {
	if scale <= 0 {
		scale = 1
	}
	a := app.NewWithID("gaugecode.sim")
	w := a.NewWindow("Gauge simulator")

	img := canvas.NewImageFromImage(fb.Snapshot())
	img.FillMode = canvas.ImageFillContain
	img.ScaleMode = canvas.ImageScalePixels
	w.SetContent(img)

	width, height := fb.Size()
	w.Resize(fyne.NewSize(float32(width)*scale, float32(height)*scale))
	w.SetFixedSize(true)

	fb.OnDisplay = func(frame *image.RGBA) {
		fyne.Do(func() {
			img.Image = frame
			img.Refresh()
		})
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- svc.Run(ctx)
		fyne.Do(a.Quit)
	}()

	w.SetOnClosed(cancel)
	w.ShowAndRun()

	cancel()
	return <-done
}
