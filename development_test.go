package main

import "testing"

func TestDevelopPlayerAlwaysAges(t *testing.T) {
	club := mixedClub("Club", DivisionOne, 50)
	p := club.Squad[0]
	p.Age = 28 // between peak start and decline, no skill change expected
	p.ContractYears = 3
	bat, bowl := p.Batting, p.Bowling

	developPlayer(testRNG(1), p, club)

	if p.Age != 29 || p.ContractYears != 2 {
		t.Fatalf("age/contract wrong: %d / %d", p.Age, p.ContractYears)
	}
	if p.Batting != bat || p.Bowling != bowl {
		t.Fatal("peak-age player's skills changed")
	}
}

func TestDevelopPlayerGrowthCappedAtPotential(t *testing.T) {
	club := mixedClub("Club", DivisionOne, 50)
	club.Staff = []*Staff{{Role: StaffCoach, Skill: 99}}
	p := club.Squad[0]
	p.Age = 18
	p.WorkEthic = 20
	p.Batting = 58
	p.Bowling = 58
	p.Potential = 60

	for i := int64(0); i < 50; i++ {
		p.Age = 18
		developPlayer(testRNG(i), p, club)
		if p.Batting > p.Potential || p.Bowling > p.Potential {
			t.Fatalf("skills %d/%d passed potential %d", p.Batting, p.Bowling, p.Potential)
		}
	}
}

func TestDevelopPlayerDeclineHasFloor(t *testing.T) {
	club := mixedClub("Club", DivisionOne, 50)
	p := club.Squad[0]
	p.Batting = MinSkill
	p.Bowling = MinSkill

	for i := int64(0); i < 50; i++ {
		p.Age = 40
		developPlayer(testRNG(i), p, club)
		if p.Batting < MinSkill || p.Bowling < MinSkill {
			t.Fatalf("skills %d/%d fell below floor %d", p.Batting, p.Bowling, MinSkill)
		}
		if p.Fitness < 50 {
			t.Fatalf("fitness %d fell below decline floor", p.Fitness)
		}
	}
}

func TestRollMatchInjurySetsDuration(t *testing.T) {
	club := testClub("Fragile", DivisionOne, 11, RolePaceBowler, 50, 50)
	for _, p := range club.Squad {
		p.InjuryProneness = 500 // force the roll
	}

	rollMatchInjury(testRNG(1), club)

	injured := 0
	for _, p := range club.Squad {
		if p.IsInjured {
			injured++
			if p.InjuryDuration < 1 || p.InjuryDuration > 6 {
				t.Fatalf("pace bowler injury duration %d outside 1-6", p.InjuryDuration)
			}
		}
	}
	if injured != 1 {
		t.Fatalf("expected exactly one injury per roll, got %d", injured)
	}
}

func TestProcessRecoveryHealsAndRestoresFitness(t *testing.T) {
	club := mixedClub("Club", DivisionOne, 50)
	club.Staff = []*Staff{{Role: StaffPhysio, Skill: 0}}
	hurt := club.Squad[0]
	hurt.IsInjured = true
	hurt.InjuryDuration = 1
	hurt.Fitness = 60
	fit := club.Squad[1]
	fit.Fitness = 90

	processRecovery(testRNG(1), club)

	if hurt.IsInjured || hurt.InjuryDuration != 0 {
		t.Fatalf("player did not heal: injured=%v duration=%d", hurt.IsInjured, hurt.InjuryDuration)
	}
	if hurt.Fitness != 80 {
		t.Fatalf("healed fitness %d, expected 80", hurt.Fitness)
	}
	if fit.Fitness <= 90 || fit.Fitness > MaxFitness {
		t.Fatalf("healthy player fitness %d", fit.Fitness)
	}
}

func TestProcessRecoveryCapsFitness(t *testing.T) {
	club := mixedClub("Club", DivisionOne, 50)
	club.Staff = []*Staff{{Role: StaffPhysio, Skill: 99}}
	for _, p := range club.Squad {
		p.Fitness = 99
	}

	processRecovery(testRNG(1), club)

	for _, p := range club.Squad {
		if p.Fitness > MaxFitness {
			t.Fatalf("fitness %d over the cap", p.Fitness)
		}
	}
}

func TestYouthIntakeProducesSixteenYearOlds(t *testing.T) {
	club := mixedClub("Academy", DivisionOne, 50)
	before := len(club.Squad)

	intake := runYouthIntake(testRNG(1), club)

	if len(intake) < 2 || len(intake) > 4 {
		t.Fatalf("intake of %d players, expected 2-4 at academy level %d", len(intake), club.AcademyLevel)
	}
	if len(club.Squad) != before+len(intake) {
		t.Fatal("intake not added to the squad")
	}
	for _, p := range intake {
		if p.Age != YouthAge {
			t.Fatalf("youth player aged %d", p.Age)
		}
		if p.Wage != MinWage || p.ContractYears != 3 {
			t.Fatalf("youth terms wrong: wage=%d contract=%d", p.Wage, p.ContractYears)
		}
		if p.Potential > 100 {
			t.Fatalf("potential %d over the cap", p.Potential)
		}
		if p.StartBatting != p.Batting || p.StartBowling != p.Bowling {
			t.Fatal("start skills not snapshotted at intake")
		}
	}
}

func TestYouthIntakeBonusForEliteAcademy(t *testing.T) {
	for i := int64(0); i < 20; i++ {
		club := mixedClub("Elite", DivisionOne, 50)
		club.AcademyLevel = 8
		if n := len(runYouthIntake(testRNG(i), club)); n < 3 || n > 5 {
			t.Fatalf("elite academy intake of %d, expected 3-5", n)
		}
	}
}

func TestRetirementAgeStaysNearMean(t *testing.T) {
	for i := int64(0); i < 50; i++ {
		age := retirementAge(testRNG(i))
		if age < RetirementMean-2 || age > RetirementMean+2 {
			t.Fatalf("retirement threshold %d outside %d±2", age, RetirementMean)
		}
	}
}
