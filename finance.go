package main

// processMatchRevenue applies the weekly cash flows of one fixture: the home
// club earns gate receipts capped by stadium capacity, and both clubs pay a
// small per-player match fee. Balances may go negative; that is a modeling
// choice, not an error.
func processMatchRevenue(home, away *Club) {
	baseDemand := float64(home.Fanbase) * 1000 * 0.5
	divisionMultiplier := 1.0
	if home.Division == DivisionOne {
		divisionMultiplier = 1.5
	}

	// Stadium level affects capacity utilization and appeal
	facilityAppeal := 1.0 + float64(home.StadiumLevel)*0.1

	attendance := int(baseDemand * divisionMultiplier * facilityAppeal)
	if attendance > home.StadiumCapacity {
		attendance = home.StadiumCapacity
	}
	ticketRevenue := float64(attendance) * TicketPriceBase / 1000

	home.Cash += int(ticketRevenue)

	home.Cash -= int(float64(len(home.Squad)) * MatchFee)
	away.Cash -= int(float64(len(away.Squad)) * MatchFee)
}

// payWages deducts the season's player and staff wage bill plus facility
// maintenance at season end
func payWages(club *Club) {
	bill := 0
	for _, p := range club.Squad {
		bill += p.Wage
	}
	for _, s := range club.Staff {
		bill += s.Wage
	}
	club.Cash -= bill

	maintenance := club.StadiumLevel*10 + club.AcademyLevel*5 + club.MedicalLevel*5
	club.Cash -= maintenance
}

// awardPrizeMoney pays rank-based prizes (top 3 only) plus the flat
// streaming-revenue base for the division
func awardPrizeMoney(league *League) {
	for _, div := range divisions {
		standings := league.standingsFor(div)
		prizes := prizeMoney[div]
		for i, club := range standings {
			if i < len(prizes) {
				club.Cash += prizes[i]
			}
			club.Cash += ottRevenueBase[div]
		}
	}
}
