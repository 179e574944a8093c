package ui

import (
	"image/color"
	"testing"

	"bullet-bunny/internal/component"
	"bullet-bunny/internal/interfaces"
)

type textCall struct {
	s     string
	x, y  float64
	align interfaces.Align
}

type fakeRenderer struct {
	texts []textCall
}

func (f *fakeRenderer) Clear(color.Color)                                  {}
func (f *fakeRenderer) DrawSprite(interfaces.SpriteID, int, component.Box) {}
func (f *fakeRenderer) FillRect(component.Box, color.Color)                {}
func (f *fakeRenderer) DrawText(s string, x, y float64, _ interfaces.TextSize, _ color.Color, a interfaces.Align) {
	f.texts = append(f.texts, textCall{s, x, y, a})
}

func TestHitTest(t *testing.T) {
	buttons := MenuLayout(1000)
	testCases := []struct {
		name   string
		x, y   float64
		want   ButtonID
		wantOK bool
	}{
		{"Start centre", 500, 270, ButtonStart, true},
		{"Instructions left edge", 500 - 169, 351, ButtonInstructions, true},
		{"Quit", 500, 499, ButtonQuit, true},
		{"Between buttons", 500, 320, 0, false},
		{"Outside horizontally", 100, 270, 0, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := HitTest(buttons, tc.x, tc.y)
			if ok != tc.wantOK || (ok && got != tc.want) {
				t.Errorf("HitTest(%v, %v) = (%v, %v), want (%v, %v)", tc.x, tc.y, got, ok, tc.want, tc.wantOK)
			}
		})
	}
}

func TestDrawHUD(t *testing.T) {
	r := &fakeRenderer{}
	DrawHUD(r, &component.Session{Score: 3, Wave: 2, HighScore: 9})

	want := []string{"Score: 3", "Wave: 2", "High Score: 9"}
	if len(r.texts) != len(want) {
		t.Fatalf("Expected %d lines, got %d", len(want), len(r.texts))
	}
	for i, w := range want {
		if r.texts[i].s != w {
			t.Errorf("Line %d: expected %q, got %q", i, w, r.texts[i].s)
		}
		if r.texts[i].x != 10 || r.texts[i].align != interfaces.AlignLeft {
			t.Errorf("Line %d: expected left-aligned at x=10", i)
		}
	}
}

func TestMenuButtonDrawCentresLabel(t *testing.T) {
	r := &fakeRenderer{}
	MenuLayout(1000)[2].Draw(r)
	if len(r.texts) != 1 || r.texts[0].s != "QUIT" || r.texts[0].x != 500 || r.texts[0].align != interfaces.AlignCenter {
		t.Errorf("Unexpected draw call: %+v", r.texts)
	}
}
