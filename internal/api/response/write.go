package response

import (
	"encoding/json"
	"net/http"

	"github.com/mcoot/gameplayers/internal/model"
)

// JSON writes data as the JSON body with the given status
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// OK writes data as a 200 JSON body
func OK(w http.ResponseWriter, data any) {
	JSON(w, http.StatusOK, data)
}

// WritePlayer writes the wire view of p as a 200 JSON body
func WritePlayer(w http.ResponseWriter, p *model.Player) {
	OK(w, PlayerFromModel(p))
}

// WritePlayers writes a JSON array of players, empty rather than null
func WritePlayers(w http.ResponseWriter, players []model.Player) {
	OK(w, PlayersFromModel(players))
}
