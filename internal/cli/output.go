package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to w (stdout when nil)
func NewOutput(format string, w io.Writer) *Output {
	if w == nil {
		w = os.Stdout
	}
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == FormatJSON {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == FormatJSON {
		data, _ := json.Marshal(map[string]string{"message": msg})
		_, _ = fmt.Fprintln(o.w, string(data))
	} else {
		_, _ = fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Player:
		o.printPlayer(v)
	case []Player:
		o.printPlayerTable(v)
	case CountResult:
		_, _ = fmt.Fprintf(o.w, "Count: %d\n", v.Count)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Player response type (matches API)
type Player struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Title          string `json:"title"`
	Race           string `json:"race"`
	Profession     string `json:"profession"`
	Birthday       int64  `json:"birthday"`
	Banned         bool   `json:"banned"`
	Experience     int    `json:"experience"`
	Level          int    `json:"level"`
	UntilNextLevel int    `json:"untilNextLevel"`
}

// BirthdayTime converts the wire milliseconds into a UTC time
func (p Player) BirthdayTime() time.Time {
	return time.UnixMilli(p.Birthday).UTC()
}

// CountResult wraps the count endpoint's bare integer
type CountResult struct {
	Count int `json:"count"`
}

// HealthResult response type
type HealthResult struct {
	Status  string `json:"status"`
	Storage string `json:"storage,omitempty"`
}

func (o *Output) printPlayer(p Player) {
	bannedStr := "no"
	if p.Banned {
		bannedStr = "yes"
	}
	_, _ = fmt.Fprintf(o.w, "Player: %s, %s (%d)\n", p.Name, p.Title, p.ID)
	_, _ = fmt.Fprintf(o.w, "Race: %s\n", p.Race)
	_, _ = fmt.Fprintf(o.w, "Profession: %s\n", p.Profession)
	_, _ = fmt.Fprintf(o.w, "Birthday: %s\n", p.BirthdayTime().Format(time.DateOnly))
	_, _ = fmt.Fprintf(o.w, "Level: %d (%d XP, %d to next)\n", p.Level, p.Experience, p.UntilNextLevel)
	_, _ = fmt.Fprintf(o.w, "Banned: %s\n", bannedStr)
}

func (o *Output) printPlayerTable(players []Player) {
	if len(players) == 0 {
		_, _ = fmt.Fprintln(o.w, "No players")
		return
	}

	tw := tabwriter.NewWriter(o.w, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "ID\tNAME\tTITLE\tRACE\tPROFESSION\tBIRTHDAY\tLEVEL\tXP\tBANNED")
	for _, p := range players {
		_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%d\t%d\t%t\n",
			p.ID, p.Name, p.Title, p.Race, p.Profession,
			p.BirthdayTime().Format(time.DateOnly), p.Level, p.Experience, p.Banned)
	}
	_ = tw.Flush()
}

func (o *Output) printHealthResult(h HealthResult) {
	_, _ = fmt.Fprintf(o.w, "Status: %s\n", h.Status)
	if h.Storage != "" {
		_, _ = fmt.Fprintf(o.w, "Storage: %s\n", h.Storage)
	}
}
