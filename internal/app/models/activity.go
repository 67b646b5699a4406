package models

// Domain policy bounds for user-created activities. Anchors are seeded with
// the same bounds; the general invariant is only 0 < min <= max.
const (
	MinActivityCapacity = 3
	MaxActivityCapacity = 8
)

// Activity represents a hosted, capacity-bounded social gathering with its
// own chat. The activity aggregate exclusively owns its participant list and
// message log; user entries inside it are read-only snapshots.
type Activity struct {
	ID              string        `json:"id"`
	Title           string        `json:"title"`
	Category        Category      `json:"category"`
	Description     string        `json:"description"`
	Date            string        `json:"date"`
	Time            string        `json:"time"`
	Location        string        `json:"location"`
	Address         string        `json:"address"`
	Host            User          `json:"host"`
	Participants    []User        `json:"participants"`
	MinParticipants int           `json:"minParticipants"`
	MaxParticipants int           `json:"maxParticipants"`
	ImageURL        string        `json:"imageUrl"`
	IsAnchor        bool          `json:"isAnchor"`
	Messages        []ChatMessage `json:"messages"`
}

// IsFull reports whether the activity reached its capacity. Derived from the
// current snapshot, never stored.
func (a *Activity) IsFull() bool {
	return len(a.Participants) >= a.MaxParticipants
}

// HasQuorum reports whether enough participants joined for the gathering to
// likely proceed. Derived from the current snapshot, never stored.
func (a *Activity) HasQuorum() bool {
	return len(a.Participants) >= a.MinParticipants
}

// HasParticipant reports whether the user with the given ID already joined
func (a *Activity) HasParticipant(userID string) bool {
	for _, p := range a.Participants {
		if p.ID == userID {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the activity. Repositories hand out clones so
// callers can never mutate stored state through a returned snapshot.
func (a *Activity) Clone() *Activity {
	cp := *a
	cp.Participants = make([]User, len(a.Participants))
	copy(cp.Participants, a.Participants)
	cp.Messages = make([]ChatMessage, len(a.Messages))
	copy(cp.Messages, a.Messages)
	for i := range cp.Participants {
		cp.Participants[i].Interests = append([]string(nil), a.Participants[i].Interests...)
	}
	cp.Host.Interests = append([]string(nil), a.Host.Interests...)
	return &cp
}
