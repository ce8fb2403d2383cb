package main

import (
	"math/rand"
)

// developPlayer ages a player by one season and applies stochastic growth or
// decline depending on where they sit on their role's career curve. Skills
// never exceed potential and never drop below the skill floor.
func developPlayer(rng *rand.Rand, p *Player, club *Club) {
	p.Age++
	p.ContractYears--

	curve, ok := agingCurves[p.Role]
	if !ok {
		curve = agingCurves[RoleBatsman]
	}

	switch {
	case p.Age < curve.PeakStart:
		avgCoaching := club.avgStaffSkill(StaffCoach)
		growthChance := float64(p.Potential-p.Overall()) / 10.0
		growthChance *= (avgCoaching / 100.0) * DevelopmentFactor
		growthChance *= float64(p.WorkEthic) / 10.0

		if rng.Float64() < growthChance {
			p.Batting = min(p.Potential, p.Batting+randBetween(rng, 1, 3))
			p.Bowling = min(p.Potential, p.Bowling+randBetween(rng, 1, 3))
			p.Fitness = min(MaxFitness, p.Fitness+2)
		}

	case p.Age >= curve.Decline:
		// Physios can halve the decline probability
		avgPhysio := club.avgStaffSkill(StaffPhysio)
		declineChance := float64(p.Age-curve.Decline) / 10.0
		declineChance *= DeclineFactor * (1.0 - avgPhysio/200.0)

		if rng.Float64() < declineChance {
			p.Batting = max(MinSkill, p.Batting-randBetween(rng, 1, 3))
			p.Bowling = max(MinSkill, p.Bowling-randBetween(rng, 1, 3))
			p.Fitness = max(50, p.Fitness-randBetween(rng, 1, 5))
		}
	}
}

// rollMatchInjury gives one random squad member a small injury chance after
// a match, scaled by injury proneness. Pace bowlers stay out longer.
func rollMatchInjury(rng *rand.Rand, club *Club) {
	if len(club.Squad) == 0 {
		return
	}
	victim := club.Squad[rng.Intn(len(club.Squad))]
	chance := 0.02 * float64(victim.InjuryProneness) / 10.0
	if chance > 1 {
		chance = 1
	}
	if rng.Float64() < chance {
		victim.IsInjured = true
		durMult := 1.0
		if victim.Role == RolePaceBowler {
			durMult = 1.5
		}
		victim.InjuryDuration = int(float64(randBetween(rng, 1, 4)) * durMult)
	}
}

// processRecovery runs every two weeks: injured players shed duration
// (faster with better physios) and healthy players regain fitness toward
// 100, faster with better medical staff.
func processRecovery(rng *rand.Rand, club *Club) {
	avgPhysio := club.avgStaffSkill(StaffPhysio)

	for _, p := range club.Squad {
		if p.IsInjured {
			reduction := 1
			if rng.Float64() < avgPhysio/100.0 {
				reduction = 2
			}
			p.InjuryDuration -= reduction
			if p.InjuryDuration <= 0 {
				p.IsInjured = false
				p.InjuryDuration = 0
				p.Fitness = 80
			}
		} else {
			p.Fitness = min(MaxFitness, p.Fitness+5+int(avgPhysio/20))
		}
	}
}

// runYouthIntake generates 2-4 new age-16 players at season end, biased
// toward the club's thinnest role, with quality driven by academy level and
// youth rating.
func runYouthIntake(rng *rand.Rand, club *Club) []*Player {
	numYouths := randBetween(rng, 2, 4)
	if club.AcademyLevel > 5 {
		numYouths++
	}

	var intake []*Player
	for i := 0; i < numYouths; i++ {
		roleCounts := make(map[Role]int, len(allRoles))
		for _, r := range allRoles {
			roleCounts[r] = 0
		}
		for _, p := range club.Squad {
			roleCounts[p.Role]++
		}
		neededRole := allRoles[0]
		for _, r := range allRoles {
			if roleCounts[r] < roleCounts[neededRole] {
				neededRole = r
			}
		}
		if rng.Float64() < 0.3 {
			neededRole = allRoles[rng.Intn(len(allRoles))]
		}

		baseSkill := float64(club.YouthRating)/2 + 20 + float64(club.AcademyLevel)*2

		batting := int(baseSkill) + randBetween(rng, -10, 10)
		bowling := int(baseSkill) + randBetween(rng, -10, 10)
		fielding := int(baseSkill) + randBetween(rng, -10, 10)
		batting, bowling, fielding = applyRoleBias(neededRole, batting, bowling, fielding)

		potential := int(baseSkill) + randBetween(rng, 10, 40)

		workEthic := randBetween(rng, 1, 15)
		if rng.Float64() < float64(club.YouthRating)/100.0 {
			workEthic = randBetween(rng, 5, 20)
		}

		p := newPlayer(rng, randomName(rng), YouthAge, neededRole, batting, bowling, fielding)
		p.Potential = min(100, potential)
		p.Wage = MinWage
		p.ContractYears = 3
		p.WorkEthic = workEthic
		p.InjuryProneness = randBetween(rng, 1, 20)
		p.updateStartSkills()

		club.Squad = append(club.Squad, p)
		intake = append(intake, p)
	}
	return intake
}

// applyRoleBias skews raw generated skills toward the player's role
func applyRoleBias(role Role, batting, bowling, fielding int) (int, int, int) {
	switch role {
	case RoleBatsman:
		batting += 20
		bowling -= 15
	case RolePaceBowler, RoleSpinBowler:
		bowling += 20
		batting -= 15
	case RoleWicketkeeper:
		fielding += 15
		batting += 10
		bowling -= 15
	case RoleAllrounder:
		batting += 5
		bowling += 5
	}
	return batting, bowling, fielding
}

// retirementAge draws the stochastic threshold a player must exceed to retire
func retirementAge(rng *rand.Rand) int {
	return RetirementMean + randBetween(rng, -2, 2)
}
