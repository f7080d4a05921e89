package views

import (
	"strings"
	"testing"
)

func TestRenderAppShowsPanesAndStatus(t *testing.T) {
	out := RenderApp(AppData{
		Header:     "remindlist",
		ListPane:   "Buy milk",
		FormPane:   "name: Buy milk",
		StatusLine: "status: reminder added",
		Footer:     "q quit",
	})
	for _, want := range []string{"remindlist", "Buy milk", "status: reminder added", "q quit"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output: %q", want, out)
		}
	}
}

func TestRenderAppOverlayHidesPanes(t *testing.T) {
	out := RenderApp(AppData{
		ListPane: "hidden list",
		Overlay:  RenderAlert("Reminder B has been deleted by another user."),
	})
	if strings.Contains(out, "hidden list") {
		t.Fatalf("overlay should replace panes: %q", out)
	}
	if !strings.Contains(out, "Reminder B has been deleted") {
		t.Fatalf("expected alert text: %q", out)
	}
}

func TestRenderFormPanelMarksFocus(t *testing.T) {
	out := RenderFormPanel(FormPanelData{
		Fields: []FormField{
			{Label: "name", View: "Buy milk"},
			{Label: "priority", View: "2", Focused: true},
		},
	})
	if !strings.Contains(out, "> priority") {
		t.Fatalf("expected focus marker on priority: %q", out)
	}
	if !strings.Contains(out, "selected: (none)") {
		t.Fatalf("expected empty selection marker: %q", out)
	}
}

func TestRenderListPanelEmpty(t *testing.T) {
	out := RenderListPanel(ListPanelData{})
	if !strings.Contains(out, "no reminders yet") {
		t.Fatalf("expected empty hint: %q", out)
	}
}

func TestRenderCommandPaletteInactive(t *testing.T) {
	if got := RenderCommandPalette(false, "x"); got != "" {
		t.Fatalf("expected empty palette, got %q", got)
	}
}
