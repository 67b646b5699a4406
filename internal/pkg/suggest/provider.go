// Package suggest isolates the optional AI text-generation collaborator
// behind a narrow interface. Providers are best-effort: every call returns a
// usable string, failures degrade to fixed fallback lines and no error ever
// crosses this boundary. No core invariant depends on a provider.
package suggest

import "context"

// Fallback lines returned when the collaborator fails or is not configured.
var (
	// FallbackVibeDescription is used when the description call fails outright.
	FallbackVibeDescription = "Curadoria de momentos para quem não espera o tempo passar."
	// DefaultVibeDescription is used when the collaborator answers with empty text.
	DefaultVibeDescription = "Uma experiência curada para mulheres que dominam sua própria agenda."
	// FallbackIcebreaker is the fixed opening line for group chats.
	FallbackIcebreaker = "Oi meninas! Animadas pro nosso ritual?"
)

// SuggestionProvider generates short natural-language texts for activity
// creation and chat flows.
type SuggestionProvider interface {
	// GenerateVibeDescription produces a short editorial description for a
	// new activity with the given title and category.
	GenerateVibeDescription(ctx context.Context, title, category string) string
	// GenerateIcebreaker produces a single opening line for an activity's
	// empty group chat.
	GenerateIcebreaker(ctx context.Context, activityTitle string) string
}

// StaticProvider always answers with the fixed fallback lines. It is the
// active provider when no API key is configured and the deterministic
// substitute used in tests.
type StaticProvider struct{}

// NewStaticProvider creates a new StaticProvider
func NewStaticProvider() *StaticProvider {
	return &StaticProvider{}
}

// GenerateVibeDescription returns the default description line
func (p *StaticProvider) GenerateVibeDescription(ctx context.Context, title, category string) string {
	return DefaultVibeDescription
}

// GenerateIcebreaker returns the fixed icebreaker line
func (p *StaticProvider) GenerateIcebreaker(ctx context.Context, activityTitle string) string {
	return FallbackIcebreaker
}
