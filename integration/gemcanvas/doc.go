// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package gemcanvas presents a rendered diamond in a GPU window.
//
// A Canvas owns a gemstone.Surface and a gemstone.Renderer. Update derives
// visual parameters from a grading input and renders them; RenderTo uploads
// the pixels into a host texture and draws it. The data flow is:
//
//	GradeInput -> Derive -> Renderer -> Surface (CPU) -> GPU texture -> window
//
// # Usage
//
//	canvas, err := gemcanvas.New(app.GPUContextProvider(), shader.New(src), 340)
//	if err != nil {
//	    return err
//	}
//	defer canvas.Close()
//
//	canvas.Update(gemstone.GradeInput{Carat: 1, Cut: gemstone.CutExcellent})
//	app.OnDraw(func(dc *gogpu.Context) {
//	    canvas.Redraw() // animated backends advance one frame
//	    canvas.RenderTo(dc.AsTextureDrawer())
//	})
//
// # Texture formats
//
// Surface pixels are RGBA. When the provider reports a BGRA surface format
// Flush swizzles the data before upload.
//
// # Integration Without Circular Imports
//
// The package depends only on gpucontext: DeviceProvider for the device,
// TextureDrawer and TextureCreator for presentation, and TextureUpdater for
// in-place uploads. It does not import any windowing library.
//
// Canvas is NOT safe for concurrent use.
package gemcanvas
