package ui

import (
	"bytes"
	"fmt"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// TitleUI is the start panel shown over the title screen.
type TitleUI struct {
	UI *ebitenui.UI

	OnStart func()

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

func NewTitleUI(backend string, onStart func()) *TitleUI {
	ui := &TitleUI{OnStart: onStart}
	ui.loadFonts()
	ui.buildUI(backend)
	return ui
}

func (ui *TitleUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}

	ui.titleFace = &text.GoTextFace{Source: fontSource, Size: 32}
	ui.normalFace = &text.GoTextFace{Source: fontSource, Size: 14}
	ui.smallFace = &text.GoTextFace{Source: fontSource, Size: 10}
}

func (ui *TitleUI) buildUI(backend string) {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 220})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("COYOTE", &ui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 220, 0, 255},
		}),
	))
	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("Arrows or WASD to move, up to jump", &ui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{220, 220, 220, 255},
		}),
	))
	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(fmt.Sprintf("physics: %s", backend), &ui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{150, 150, 170, 255},
		}),
	))

	startBtn := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(140, 28)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(color.RGBA{80, 80, 120, 255}),
			Hover:   image.NewNineSliceColor(color.RGBA{100, 100, 150, 255}),
			Pressed: image.NewNineSliceColor(color.RGBA{60, 60, 90, 255}),
		}),
		widget.ButtonOpts.Text("Start (Enter)", &ui.normalFace, &widget.ButtonTextColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if ui.OnStart != nil {
				ui.OnStart()
			}
		}),
	)
	contentContainer.AddChild(startBtn)

	rootContainer.AddChild(contentContainer)

	ui.UI = &ebitenui.UI{Container: rootContainer}
}
