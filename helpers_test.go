package main

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
)

// testClub builds a club with a uniform squad: count players of the given
// role with identical batting/bowling skills.
func testClub(name, division string, count int, role Role, batting, bowling int) *Club {
	club := &Club{
		ID:              uuid.NewString(),
		Name:            name,
		Division:        division,
		Fanbase:         100,
		StadiumLevel:    1,
		AcademyLevel:    1,
		MedicalLevel:    1,
		StadiumCapacity: 2000,
		YouthRating:     50,
		Tactics:         defaultTactics(),
	}
	for i := 0; i < count; i++ {
		club.Squad = append(club.Squad, &Player{
			ID:              uuid.NewString(),
			Name:            fmt.Sprintf("%s Player %d", name, i+1),
			Age:             25,
			Role:            role,
			Batting:         batting,
			Bowling:         bowling,
			Fielding:        50,
			Fitness:         100,
			Potential:       90,
			WorkEthic:       10,
			InjuryProneness: 10,
			Wage:            20,
			ContractYears:   2,
		})
	}
	return club
}

// mixedClub builds a realistic 18-player squad spread across all roles
func mixedClub(name, division string, skill int) *Club {
	club := testClub(name, division, 0, RoleBatsman, 0, 0)
	roles := []Role{
		RoleBatsman, RoleBatsman, RoleBatsman, RoleBatsman, RoleBatsman, RoleBatsman,
		RolePaceBowler, RolePaceBowler, RolePaceBowler, RolePaceBowler,
		RoleSpinBowler, RoleSpinBowler, RoleSpinBowler,
		RoleAllrounder, RoleAllrounder, RoleAllrounder,
		RoleWicketkeeper, RoleWicketkeeper,
	}
	for i, role := range roles {
		club.Squad = append(club.Squad, &Player{
			ID:              uuid.NewString(),
			Name:            fmt.Sprintf("%s Player %d", name, i+1),
			Age:             25,
			Role:            role,
			Batting:         skill,
			Bowling:         skill,
			Fielding:        skill,
			Fitness:         100,
			Potential:       min(100, skill+10),
			WorkEthic:       10,
			InjuryProneness: 10,
			Wage:            20,
			ContractYears:   2,
		})
	}
	return club
}

func testRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func initializedEngine(seed int64) (*GameEngine, error) {
	e := newGameEngine(seed)
	if err := e.initializeWorld(); err != nil {
		return nil, err
	}
	return e, nil
}
