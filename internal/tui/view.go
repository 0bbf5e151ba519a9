package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/plantetyven/internal/app"
	"github.com/Makepad-fr/plantetyven/internal/asset"
	"github.com/Makepad-fr/plantetyven/internal/game"
	"github.com/Makepad-fr/plantetyven/internal/model"
	"github.com/Makepad-fr/plantetyven/internal/ui"
)

const (
	spriteWidth  = 5
	spriteHeight = 3
	slotGap      = "   "
	armGutter    = 14
)

// frame is what one View call needs besides the scene.
type frame struct {
	scene  app.Scene
	assets *asset.Lazy
	cursor int
	qr     string
	shop   string
}

func (f frame) render() string {
	t := ui.Current()
	s := f.scene

	var b strings.Builder
	b.WriteString(t.Title.Render("Plantetyven"))
	b.WriteString("   ")
	b.WriteString(t.Accent.Render(fmt.Sprintf("%s %d", t.SymStreak, s.Streak)))
	b.WriteString("\n\n")

	switch {
	case s.Dark:
		b.WriteString(f.night())
	case s.Mode == app.ModeResult && s.Outcome != nil:
		b.WriteString(f.endPanel(*s.Outcome))
	default:
		b.WriteString(t.Title.Render(s.Caption))
		b.WriteString("\n\n")
		if !s.ShelvesHidden {
			b.WriteString(f.shelves())
			b.WriteString("\n")
		}
		b.WriteString(f.controls())
	}

	if s.Err != "" {
		b.WriteString("\n")
		b.WriteString(t.Error.Render(t.SymFail + " " + s.Err))
	}
	return b.String()
}

func (f frame) night() string {
	t := ui.Current()
	eyes := "  ◉   ◉  "
	if f.scene.EyesClosed {
		eyes = "  ─   ─  "
	}
	lines := []string{
		t.Night.Render(" " + f.scene.Caption + " "),
		"",
	}
	if f.scene.Eyes {
		lines = append(lines, t.Eyes.Render(eyes))
	}
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

// sprite returns the lines drawn for one shelf slot. Hidden and unknown
// plants leave a gap of the same size.
func (f frame) sprite(sl app.Slot) []string {
	blank := strings.Repeat(" ", spriteWidth)
	out := []string{blank, blank, blank}
	if sl.Hidden || sl.ID == "" {
		return out
	}
	sp, ok := f.assets.Visible(sl.ID)
	if !ok {
		return out
	}
	style := lipgloss.NewStyle()
	if !ui.Current().Mono {
		style = style.Foreground(lipgloss.Color(sp.Color))
	}
	for i := 0; i < spriteHeight && i < len(sp.Glyph); i++ {
		g := padRight(sp.Glyph[i], spriteWidth)
		if sl.Wiggle {
			if i%2 == 0 {
				g = " " + g[:len(g)-1]
			} else {
				g = g[1:] + " "
			}
		}
		out[i] = style.Render(g)
	}
	return out
}

func (f frame) row(slots []app.Slot) []string {
	lines := make([]string, spriteHeight)
	for i, sl := range slots {
		sp := f.sprite(sl)
		for j := range lines {
			if i > 0 {
				lines[j] += slotGap
			}
			lines[j] += sp[j]
		}
	}
	return lines
}

func (f frame) shelves() string {
	t := ui.Current()
	s := f.scene
	shelfWidth := 3*spriteWidth + 2*len(slotGap)

	var b strings.Builder
	top := f.row(s.Top)
	for i, ln := range top {
		arm := strings.Repeat(" ", armGutter)
		if i == 1 && s.TopArm > 0 {
			arm = padLeft(strings.Repeat(t.ArmRight, min(s.TopArm, armGutter-1))+t.Hand, armGutter)
		}
		b.WriteString(arm + ln + "\n")
	}
	b.WriteString(strings.Repeat(" ", armGutter) + t.Dim.Render(strings.Repeat(t.Shelf, shelfWidth)) + "\n")

	bottom := f.row(s.Bottom)
	for i, ln := range bottom {
		right := ""
		if i == 1 {
			if s.BottomArm > 0 {
				right = " " + t.Hand + strings.Repeat(t.ArmLeft, s.BottomArm)
			}
			if s.SwitchVisible {
				right += " " + t.Accent.Render(t.Switch)
			}
		}
		b.WriteString(strings.Repeat(" ", armGutter) + ln + right + "\n")
	}
	b.WriteString(strings.Repeat(" ", armGutter) + t.Dim.Render(strings.Repeat(t.Shelf, shelfWidth)) + "\n")
	return b.String()
}

func (f frame) controls() string {
	t := ui.Current()
	s := f.scene
	switch s.Mode {
	case app.ModeIntro:
		if s.StartVisible {
			return ui.Box(t.Title.Render("Start"))
		}
	case app.ModeTransition:
		return t.Muted.Render(ui.ProgressBar(s.PhaseIndex, s.PhaseCount, 28))
	case app.ModeChoosing:
		return f.choices()
	}
	return ""
}

func (f frame) choices() string {
	t := ui.Current()
	cells := make([]string, 0, len(f.scene.Choices))
	for i, id := range f.scene.Choices {
		sp := f.sprite(app.Slot{ID: id})
		label := fmt.Sprintf("%d", i+1)
		box := ui.Box(strings.Join(sp, "\n") + "\n" + padCenter(label, spriteWidth))
		if i == f.cursor {
			box = t.Selected.Render(box)
		}
		cells = append(cells, box)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func (f frame) endPanel(o game.Outcome) string {
	t := ui.Current()
	head := t.Success.Render(o.Panel.Headline)
	if !o.Correct {
		head = t.Error.Render(o.Panel.Headline)
	}
	lines := []string{
		head,
		"",
		strings.Join(f.sprite(app.Slot{ID: o.ChosenID}), "\n"),
		t.Muted.Render(plantName(f.assets, o.ChosenID)),
		"",
		ui.Box(t.Title.Render(o.Panel.Primary)),
		t.Accent.Render(o.Panel.Link),
	}
	if o.Panel.PrimaryDo == game.ActionVisitShop && f.qr != "" {
		lines = append(lines, "", f.qr, t.Muted.Render(f.shop))
	}
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

func plantName(l *asset.Lazy, id model.PlantID) string {
	if sp, ok := l.Visible(id); ok {
		return sp.Name
	}
	return id
}

func padRight(s string, w int) string {
	if n := lipgloss.Width(s); n < w {
		return s + strings.Repeat(" ", w-n)
	}
	return s
}

func padLeft(s string, w int) string {
	if n := lipgloss.Width(s); n < w {
		return strings.Repeat(" ", w-n) + s
	}
	return s
}

func padCenter(s string, w int) string {
	n := lipgloss.Width(s)
	if n >= w {
		return s
	}
	left := (w - n) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", w-n-left)
}
