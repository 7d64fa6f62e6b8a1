package response

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/gameplayers/internal/model"
)

func TestPlayerFromModelJSON(t *testing.T) {
	p := &model.Player{
		ID:                       4,
		Name:                     "Ash",
		Title:                    "Novice",
		Race:                     model.RaceHuman,
		Profession:               model.ProfessionWarrior,
		Birthday:                 time.Date(2020, 6, 1, 0, 0, 0, 0, time.UTC),
		Experience:               100,
		Level:                    1,
		ExperienceUntilNextLevel: 200,
	}

	b, err := json.Marshal(PlayerFromModel(p))
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": 4,
		"name": "Ash",
		"title": "Novice",
		"race": "HUMAN",
		"profession": "WARRIOR",
		"birthday": 1590969600000,
		"banned": false,
		"experience": 100,
		"level": 1,
		"untilNextLevel": 200
	}`, string(b))
}

func TestPlayersFromModelEmptyIsArray(t *testing.T) {
	b, err := json.Marshal(PlayersFromModel(nil))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(b))
}
