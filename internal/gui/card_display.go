package gui

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// CardDisplay is a custom widget showing one face of the current card.
type CardDisplay struct {
	widget.BaseWidget

	container  *fyne.Container
	cardCanvas *canvas.Image
	faceLabel  *widget.Label
}

// NewCardDisplay creates a new card display widget.
func NewCardDisplay() *CardDisplay {
	d := &CardDisplay{}

	d.cardCanvas = canvas.NewImageFromImage(nil)
	d.cardCanvas.FillMode = canvas.ImageFillContain
	d.cardCanvas.SetMinSize(fyne.NewSize(600, 394))

	d.faceLabel = widget.NewLabel("")
	d.faceLabel.Alignment = fyne.TextAlignCenter
	d.faceLabel.TextStyle = fyne.TextStyle{Italic: true}

	d.container = container.NewBorder(
		nil,
		d.faceLabel,
		nil, nil,
		d.cardCanvas,
	)

	d.ExtendBaseWidget(d)
	return d
}

// CreateRenderer implements fyne.Widget
func (d *CardDisplay) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(d.container)
}

// SetFace shows the given rendered face image and its label.
func (d *CardDisplay) SetFace(img image.Image, faceName string) {
	d.cardCanvas.Image = img
	d.cardCanvas.Refresh()
	d.faceLabel.SetText(faceName)
}
