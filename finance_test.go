package main

import "testing"

func TestMatchRevenueCappedByCapacity(t *testing.T) {
	home := mixedClub("Home", DivisionOne, 60)
	away := mixedClub("Away", DivisionOne, 60)
	home.Fanbase = 100 // demand far beyond any ground
	home.StadiumCapacity = 2000
	home.Cash = 0
	away.Cash = 0

	processMatchRevenue(home, away)

	fee := int(float64(len(home.Squad)) * MatchFee)
	wantGate := int(float64(home.StadiumCapacity) * TicketPriceBase / 1000)
	if home.Cash != wantGate-fee {
		t.Fatalf("home cash %d, expected gate %d minus fee %d", home.Cash, wantGate, fee)
	}
	if away.Cash != -fee {
		t.Fatalf("away cash %d, expected match fee deduction %d", away.Cash, -fee)
	}
}

func TestMatchRevenueBelowCapacityScalesWithFanbase(t *testing.T) {
	home := mixedClub("Home", DivisionThree, 60)
	away := mixedClub("Away", DivisionThree, 60)
	home.Fanbase = 1
	home.StadiumLevel = 1
	home.StadiumCapacity = 100000
	home.Cash = 0

	processMatchRevenue(home, away)

	// 1 * 1000 * 0.5 demand, no division bonus, 1.1 appeal
	attendance := 550
	want := int(float64(attendance)*TicketPriceBase/1000) - int(float64(len(home.Squad))*MatchFee)
	if home.Cash != want {
		t.Fatalf("home cash %d, expected %d", home.Cash, want)
	}
}

func TestPayWagesDeductsSquadStaffAndMaintenance(t *testing.T) {
	club := mixedClub("Club", DivisionOne, 60)
	club.Cash = 1000
	bill := 0
	for _, p := range club.Squad {
		bill += p.Wage
	}
	for _, s := range club.Staff {
		bill += s.Wage
	}
	maintenance := club.StadiumLevel*10 + club.AcademyLevel*5 + club.MedicalLevel*5

	payWages(club)

	if club.Cash != 1000-bill-maintenance {
		t.Fatalf("cash %d after wages, expected %d", club.Cash, 1000-bill-maintenance)
	}
}

func TestPayWagesAllowsNegativeCash(t *testing.T) {
	club := mixedClub("Broke", DivisionThree, 60)
	club.Cash = 1

	payWages(club)

	if club.Cash >= 0 {
		t.Fatalf("expected overdraft, cash is %d", club.Cash)
	}
}

func TestPrizeMoneyPaysTopThreePlusStreaming(t *testing.T) {
	league := newLeague()
	var clubs []*Club
	for i := 0; i < 5; i++ {
		c := mixedClub("Club", DivisionOne, 60)
		c.Cash = 0
		c.Points = 10 - i*2 // fixed table order
		league.addClub(c)
		clubs = append(clubs, c)
	}

	awardPrizeMoney(league)

	prizes := prizeMoney[DivisionOne]
	base := ottRevenueBase[DivisionOne]
	for i, c := range clubs {
		want := base
		if i < len(prizes) {
			want += prizes[i]
		}
		if c.Cash != want {
			t.Fatalf("position %d got %d, expected %d", i+1, c.Cash, want)
		}
	}
	if clubs[3].Cash != base || clubs[4].Cash != base {
		t.Fatal("positions outside the top 3 should only receive streaming revenue")
	}
}
