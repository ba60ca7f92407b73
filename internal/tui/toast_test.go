package tui

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func TestToast_ShowDisplaysMessage(t *testing.T) {
	toast := NewToast()

	cmd := toast.Show("Meeting link copied")

	if !toast.IsVisible() {
		t.Error("expected toast to be visible after Show()")
	}
	if toast.GetMessage() != "Meeting link copied" {
		t.Errorf("expected message 'Meeting link copied', got %q", toast.GetMessage())
	}
	if cmd == nil {
		t.Error("expected Show() to return a command for dismissal")
	}
}

func TestToast_ViewReturnsEmptyWhenNotVisible(t *testing.T) {
	toast := NewToast()

	if view := toast.View(); view != "" {
		t.Errorf("expected empty view when not visible, got %q", view)
	}
}

func TestToast_ViewRendersMessageWhenVisible(t *testing.T) {
	toast := NewToast()
	toast.ShowError("clipboard unavailable")

	view := toast.View()
	if !strings.Contains(view, "clipboard unavailable") {
		t.Errorf("expected view to contain message, got %q", view)
	}
}

func TestToast_DismissMsgHidesToast(t *testing.T) {
	toast := NewToast()
	cmd := toast.Show("test message")

	dismiss, ok := cmd().(ToastDismissMsg)
	if !ok {
		t.Fatalf("expected ToastDismissMsg from Show command")
	}

	if cmd := toast.Update(dismiss); cmd != nil {
		t.Error("expected no command after dismiss")
	}
	if toast.IsVisible() {
		t.Error("expected toast to be hidden after ToastDismissMsg")
	}
	if toast.GetMessage() != "" {
		t.Error("expected message to be cleared after dismiss")
	}
}

func TestToast_StaleDismissIsIgnored(t *testing.T) {
	toast := NewToast()
	first := toast.Show("first")
	toast.Show("second")

	toast.Update(first())

	if !toast.IsVisible() {
		t.Error("dismissal for the first toast must not hide the second")
	}
	if toast.GetMessage() != "second" {
		t.Errorf("expected 'second', got %q", toast.GetMessage())
	}
}

func TestToast_UpdateIgnoresOtherMessages(t *testing.T) {
	toast := NewToast()
	toast.Show("test")

	if cmd := toast.Update(tea.KeyPressMsg{}); cmd != nil {
		t.Error("expected no command for unrelated message")
	}
	if !toast.IsVisible() {
		t.Error("expected toast to remain visible after unrelated message")
	}
}
