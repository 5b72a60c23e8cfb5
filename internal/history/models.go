package history

import "time"

// Record describes one completed render.
type Record struct {
	ID         int64         `json:"id"`
	Template   string        `json:"template"`
	OutputPath string        `json:"output_path"`
	Width      int           `json:"width"`
	Height     int           `json:"height"`
	Duration   time.Duration `json:"duration_ns"`
	CreatedAt  time.Time     `json:"created_at"`
}
