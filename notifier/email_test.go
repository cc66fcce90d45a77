package notifier

import (
	"cine-match/catalog"
	"cine-match/recommend"
	"strings"
	"testing"
	"time"
)

func TestRenderRecommendations(t *testing.T) {
	n, err := NewEmailNotifier(EmailConfig{SMTPHost: "localhost", SMTPPort: 2525, RecipientEmail: "me@example.com"})
	if err != nil {
		t.Fatalf("Failed to create notifier: %v", err)
	}

	prefs := recommend.NewPreferences([]string{"Comedy"}, 5, 2005, 2023)
	movies := []catalog.Movie{
		{Title: "B <Director's Cut>", Year: 2010, Genre: catalog.Multiple("Drama", "Comedy"), Rating: 6.0},
	}
	now := time.Date(2024, time.March, 5, 15, 4, 0, 0, time.UTC)

	plain, html, err := n.RenderRecommendations(prefs, movies, now)
	if err != nil {
		t.Fatalf("Failed to render: %v", err)
	}

	if !strings.Contains(plain, "Recommended Movies:\nB <Director's Cut> (2010) - Drama,Comedy - Rating: 6\n") {
		t.Errorf("Plain body missing recommendation line:\n%s", plain)
	}
	if !strings.Contains(plain, "Genres: Comedy, minimum rating: 5, years: 2005-2023") {
		t.Errorf("Plain body missing criteria:\n%s", plain)
	}
	if !strings.Contains(plain, "March 5, 2024 at 3:04 PM") {
		t.Errorf("Plain body missing date:\n%s", plain)
	}

	if !strings.Contains(html, "B &lt;Director&#39;s Cut&gt;") {
		t.Errorf("HTML body should escape titles:\n%s", html)
	}
	if !strings.Contains(html, "<td>Drama,Comedy</td>") {
		t.Errorf("HTML body missing genre:\n%s", html)
	}
}

func TestRenderNoRecommendations(t *testing.T) {
	n, err := NewEmailNotifier(EmailConfig{})
	if err != nil {
		t.Fatalf("Failed to create notifier: %v", err)
	}

	plain, html, err := n.RenderRecommendations(recommend.DefaultPreferences(), nil, time.Now())
	if err != nil {
		t.Fatalf("Failed to render: %v", err)
	}

	if !strings.Contains(plain, "Genres: any") {
		t.Errorf("Expected empty genre list rendered as any:\n%s", plain)
	}
	if !strings.Contains(html, "No movies in the catalog match your preferences.") {
		t.Errorf("Expected empty-state message:\n%s", html)
	}
}

func TestNotifyWithoutRecipientIsNoop(t *testing.T) {
	n, err := NewEmailNotifier(EmailConfig{SMTPHost: "127.0.0.1", SMTPPort: 1})
	if err != nil {
		t.Fatalf("Failed to create notifier: %v", err)
	}

	if err := n.NotifyRecommendations(recommend.DefaultPreferences(), nil); err != nil {
		t.Errorf("Expected no error without recipient, got %v", err)
	}
}

func TestGetEmailConfigFromEnv(t *testing.T) {
	t.Setenv("EMAIL_SMTP_HOST", "smtp.example.com")
	t.Setenv("EMAIL_SMTP_PORT", "not-a-port")
	t.Setenv("EMAIL_RECIPIENT", "me@example.com")
	t.Setenv("EMAIL_PASSWORD", "")

	config := GetEmailConfigFromEnv()
	if config.SMTPPort != 587 {
		t.Errorf("Expected default port 587, got %d", config.SMTPPort)
	}
	if !config.Enabled() {
		t.Error("Expected config with host and recipient to be enabled")
	}

	t.Setenv("EMAIL_SMTP_PORT", "2525")
	if got := GetEmailConfigFromEnv().SMTPPort; got != 2525 {
		t.Errorf("Expected port 2525, got %d", got)
	}
}

func TestMaskSecret(t *testing.T) {
	tests := map[string]string{
		"":                 "",
		"short":            "***",
		"0123456789abcdef": "0123...cdef",
	}
	for in, want := range tests {
		if got := MaskSecret(in); got != want {
			t.Errorf("MaskSecret(%q) = %q, want %q", in, got, want)
		}
	}
}
