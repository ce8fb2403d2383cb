package main

import "math/rand"

// generateTransferList builds the between-season market: each overstocked
// club lists one of its three weakest players, chosen at random.
func generateTransferList(rng *rand.Rand, allClubs []*Club) []*Player {
	var market []*Player
	for _, club := range allClubs {
		if len(club.Squad) <= TransferListMinSquad {
			continue
		}
		candidates := make([]*Player, len(club.Squad))
		copy(candidates, club.Squad)
		sortByOverallAsc(candidates)
		if len(candidates) > 3 {
			candidates = candidates[:3]
		}
		if len(candidates) > 0 {
			market = append(market, candidates[rng.Intn(len(candidates))])
		}
	}
	return market
}

func sortByOverallAsc(players []*Player) {
	for i := 1; i < len(players); i++ {
		for j := i; j > 0 && players[j].Overall() < players[j-1].Overall(); j-- {
			players[j], players[j-1] = players[j-1], players[j]
		}
	}
}

// evaluateTransfer is the AI buyer heuristic: never self-deal, never buy
// beyond means, and only buy a player clearly better than the buyer's
// current options in that role.
func evaluateTransfer(buyer, seller *Club, player *Player) bool {
	if buyer == seller {
		return false
	}
	cost := int(float64(player.Value()) * TransferMarketMarkup)
	if buyer.Cash < cost {
		return false
	}

	var roleOveralls []int
	for _, p := range buyer.BestXI() {
		if p.Role == player.Role {
			roleOveralls = append(roleOveralls, p.Overall())
		}
	}
	if len(roleOveralls) == 0 {
		return true
	}

	sum := 0
	for _, o := range roleOveralls {
		sum += o
	}
	avgRoleSkill := float64(sum) / float64(len(roleOveralls))
	return float64(player.Overall()) > avgRoleSkill+5
}

// executeTransfer moves a player between squads atomically: the buyer is
// debited, the seller credited, the player changes hands and gets a fresh
// contract. A failed affordability check is a silent no-op.
func executeTransfer(buyer, seller *Club, player *Player, price int) bool {
	if buyer.Cash < price {
		return false
	}
	moved, ok := seller.removePlayer(player.ID)
	if !ok {
		return false
	}
	buyer.Cash -= price
	seller.Cash += price
	buyer.Squad = append(buyer.Squad, moved)
	moved.ContractYears = 2
	return true
}

// runTransferWindow lets every solvent club shop the market once. Sellers
// are resolved by lookup at evaluation time, so a player already sold this
// window cannot be bought back from the wrong club.
func runTransferWindow(rng *rand.Rand, league *League) int {
	allClubs := league.allClubs()
	market := generateTransferList(rng, allClubs)

	completed := 0
	for _, buyer := range allClubs {
		if buyer.Cash < TransferBuyerFloor {
			continue
		}
		for _, player := range market {
			seller := league.findOwner(player.ID)
			if seller == nil || !evaluateTransfer(buyer, seller, player) {
				continue
			}
			price := int(float64(player.Value()) * TransferMarketMarkup)
			if executeTransfer(buyer, seller, player, price) {
				completed++
			}
		}
	}
	return completed
}
