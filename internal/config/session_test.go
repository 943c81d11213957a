package config

import (
	"testing"

	"github.com/vidscope/vidscope-desktop/internal/model"
)

func TestSessionLifecycle(t *testing.T) {
	session := NewSession()

	if session.Active() {
		t.Error("Fresh session should not be active")
	}
	if session.Token() != "" {
		t.Error("Fresh session should carry no token")
	}
	if session.UserID() != "" {
		t.Error("Fresh session should carry no user id")
	}

	session.Begin("token-123", &model.User{ID: "u1", Username: "ada"})

	if !session.Active() {
		t.Error("Session should be active after Begin")
	}
	if session.Token() != "token-123" {
		t.Errorf("Expected token 'token-123', got '%s'", session.Token())
	}
	user, ok := session.User()
	if !ok || user.Username != "ada" {
		t.Errorf("Expected user 'ada', got %+v (ok=%v)", user, ok)
	}
	if session.UserID() != "u1" {
		t.Errorf("Expected user id 'u1', got '%s'", session.UserID())
	}

	session.End()

	if session.Active() {
		t.Error("Session should be inactive after End")
	}
	if session.Token() != "" {
		t.Error("Token should be cleared after End")
	}
	if _, ok := session.User(); ok {
		t.Error("User should be cleared after End")
	}
}

func TestSessionMobileView(t *testing.T) {
	session := NewSession()

	if session.MobileView() {
		t.Error("Mobile view should default to false")
	}

	session.SetMobileView(true)
	if !session.MobileView() {
		t.Error("Expected mobile view to be enabled")
	}
}
