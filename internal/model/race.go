package model

import "strings"

// Race is a character's ancestry
type Race string

const (
	RaceHuman  Race = "HUMAN"
	RaceDwarf  Race = "DWARF"
	RaceElf    Race = "ELF"
	RaceGiant  Race = "GIANT"
	RaceOrc    Race = "ORC"
	RaceTroll  Race = "TROLL"
	RaceHobbit Race = "HOBBIT"
)

// Races lists every valid Race in declaration order
var Races = []Race{RaceHuman, RaceDwarf, RaceElf, RaceGiant, RaceOrc, RaceTroll, RaceHobbit}

// IsValid returns true if r is one of the known races
func (r Race) IsValid() bool {
	for _, known := range Races {
		if r == known {
			return true
		}
	}
	return false
}

// ParseRace converts a case-insensitive name into a Race
func ParseRace(s string) (Race, bool) {
	r := Race(strings.ToUpper(strings.TrimSpace(s)))
	return r, r.IsValid()
}

// Profession is a character's class
type Profession string

const (
	ProfessionWarrior  Profession = "WARRIOR"
	ProfessionRogue    Profession = "ROGUE"
	ProfessionSorcerer Profession = "SORCERER"
	ProfessionCleric   Profession = "CLERIC"
	ProfessionPaladin  Profession = "PALADIN"
	ProfessionNazgul   Profession = "NAZGUL"
	ProfessionWarlock  Profession = "WARLOCK"
	ProfessionDruid    Profession = "DRUID"
)

// Professions lists every valid Profession in declaration order
var Professions = []Profession{
	ProfessionWarrior, ProfessionRogue, ProfessionSorcerer, ProfessionCleric,
	ProfessionPaladin, ProfessionNazgul, ProfessionWarlock, ProfessionDruid,
}

// IsValid returns true if p is one of the known professions
func (p Profession) IsValid() bool {
	for _, known := range Professions {
		if p == known {
			return true
		}
	}
	return false
}

// ParseProfession converts a case-insensitive name into a Profession
func ParseProfession(s string) (Profession, bool) {
	p := Profession(strings.ToUpper(strings.TrimSpace(s)))
	return p, p.IsValid()
}
