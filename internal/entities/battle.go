package entities

import "time"

// SceneExit is what the host should do once a battle is over
type SceneExit string

const (
	SceneReturnToMenu SceneExit = "return_to_menu"
	SceneQuit         SceneExit = "quit"
)

// CreatureSummary captures a creature's state at the end of a battle
type CreatureSummary struct {
	ID        string `json:"id"`
	SpeciesID string `json:"species_id"`
	Name      string `json:"name"`
	HP        int    `json:"hp"`
	MaxHP     int    `json:"max_hp"`
}

// BattleResult is the recorded outcome of a finished battle
type BattleResult struct {
	ID         string            `json:"id"`
	PlayerName string            `json:"player_name"`
	BotName    string            `json:"bot_name"`
	WinnerID   string            `json:"winner_id"`
	WinnerName string            `json:"winner_name"`
	LoserName  string            `json:"loser_name"`
	Turns      int               `json:"turns"`
	Seed       int64             `json:"seed,omitempty"`
	Survivors  []CreatureSummary `json:"survivors"`
	StartedAt  time.Time         `json:"started_at"`
	EndedAt    time.Time         `json:"ended_at"`
}

// SummarizeRoster snapshots every roster member
func SummarizeRoster(a *Actor) []CreatureSummary {
	out := make([]CreatureSummary, 0, len(a.Roster))
	for _, c := range a.Roster {
		out = append(out, CreatureSummary{
			ID:        c.ID,
			SpeciesID: c.SpeciesID,
			Name:      c.Name,
			HP:        c.HP,
			MaxHP:     c.MaxHP,
		})
	}
	return out
}
