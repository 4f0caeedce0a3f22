package session

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

// fakeAuth implements Authenticator for testing.
type fakeAuth struct {
	token string
	err   error
	calls int
}

func (f *fakeAuth) Login(ctx context.Context, username, password string) (string, error) {
	f.calls++
	return f.token, f.err
}

func newTestStore(t *testing.T) (*Store, *TokenFile) {
	t.Helper()
	file := NewTokenFile(filepath.Join(t.TempDir(), "session.json"))
	return NewStore(file, nil), file
}

// checkInvariant asserts that the authenticated flag agrees with token
// presence, both in memory and on disk.
func checkInvariant(t *testing.T, s *Store, file *TokenFile) {
	t.Helper()
	if s.IsAuthenticated() != (s.Token() != "") {
		t.Fatalf("invariant broken: authenticated=%v token=%q", s.IsAuthenticated(), s.Token())
	}
	persisted, err := file.Load()
	if err != nil {
		t.Fatalf("token file unreadable: %v", err)
	}
	if s.IsAuthenticated() != (persisted != "") {
		t.Fatalf("invariant broken against disk: authenticated=%v persisted=%q", s.IsAuthenticated(), persisted)
	}
}

func TestStoreLoginSuccess(t *testing.T) {
	s, file := newTestStore(t)
	auth := &fakeAuth{token: "tok"}

	if err := s.Login(context.Background(), auth, "admin", "senha"); err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if s.State() != StateAuthenticated {
		t.Errorf("expected authenticated state, got %v", s.State())
	}
	if s.Token() != "tok" {
		t.Errorf("expected token %q, got %q", "tok", s.Token())
	}
	checkInvariant(t, s, file)
}

func TestStoreLoginFailureIsGeneric(t *testing.T) {
	s, file := newTestStore(t)
	auth := &fakeAuth{err: errors.New("401: Invalid credentials")}

	err := s.Login(context.Background(), auth, "admin", "errada")
	if !errors.Is(err, ErrLoginFailed) {
		t.Fatalf("expected ErrLoginFailed, got %v", err)
	}
	// The backend detail must not leak through the error.
	if errText := err.Error(); errText != ErrLoginFailed.Error() {
		t.Errorf("login error leaked detail: %q", errText)
	}
	if s.State() != StateAnonymous {
		t.Errorf("expected anonymous state, got %v", s.State())
	}
	checkInvariant(t, s, file)
}

func TestStoreLoginEmptyTokenIsFailure(t *testing.T) {
	s, file := newTestStore(t)
	auth := &fakeAuth{token: ""}

	if err := s.Login(context.Background(), auth, "admin", "senha"); !errors.Is(err, ErrLoginFailed) {
		t.Fatalf("expected ErrLoginFailed for empty token, got %v", err)
	}
	checkInvariant(t, s, file)
}

func TestStoreLogout(t *testing.T) {
	s, file := newTestStore(t)
	if err := s.Login(context.Background(), &fakeAuth{token: "tok"}, "a", "b"); err != nil {
		t.Fatal(err)
	}

	s.Logout()
	if s.IsAuthenticated() {
		t.Error("expected anonymous after logout")
	}
	checkInvariant(t, s, file)
}

func TestStoreInvalidate(t *testing.T) {
	s, file := newTestStore(t)
	if err := s.Login(context.Background(), &fakeAuth{token: "tok"}, "a", "b"); err != nil {
		t.Fatal(err)
	}

	// The global 401 path.
	s.Invalidate()
	if s.IsAuthenticated() {
		t.Error("expected anonymous after invalidation")
	}
	checkInvariant(t, s, file)
}

func TestStoreRehydration(t *testing.T) {
	file := NewTokenFile(filepath.Join(t.TempDir(), "session.json"))
	if err := file.Save("persisted"); err != nil {
		t.Fatal(err)
	}

	s := NewStore(file, nil)
	if err := s.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	// Rehydration is optimistic: no server validation happens here.
	if s.State() != StateAuthenticated {
		t.Errorf("expected authenticated after rehydration, got %v", s.State())
	}
	if s.Token() != "persisted" {
		t.Errorf("expected persisted token, got %q", s.Token())
	}
	checkInvariant(t, s, file)
}

func TestStoreRehydrationEmpty(t *testing.T) {
	s, file := newTestStore(t)
	if err := s.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.State() != StateAnonymous {
		t.Errorf("expected anonymous with no persisted token, got %v", s.State())
	}
	checkInvariant(t, s, file)
}

func TestStoreEventSequences(t *testing.T) {
	// The invariant must hold across arbitrary login/logout/401 sequences.
	s, file := newTestStore(t)
	good := &fakeAuth{token: "tok"}
	bad := &fakeAuth{err: errors.New("rejected")}

	steps := []func(){
		func() { _ = s.Login(context.Background(), good, "a", "b") },
		func() { s.Logout() },
		func() { _ = s.Login(context.Background(), bad, "a", "b") },
		func() { _ = s.Login(context.Background(), good, "a", "b") },
		func() { s.Invalidate() },
		func() { s.Invalidate() },
		func() { _ = s.Login(context.Background(), good, "a", "b") },
		func() { s.Logout() },
		func() { s.Logout() },
	}
	for i, step := range steps {
		step()
		if t.Failed() {
			t.Fatalf("invariant broken at step %d", i)
		}
		checkInvariant(t, s, file)
	}
}
