package scratchcard

import (
	"fmt"
	"math/big"

	"github.com/cespare/wait"
)

// MatchCount returns how many distinct held numbers are winning numbers.
func MatchCount(c Card) int {
	var seen map[int]struct{}
	n := 0
	for _, v := range c.Held {
		if !c.Winning.Has(v) {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		if seen == nil {
			seen = make(map[int]struct{})
		}
		seen[v] = struct{}{}
		n++
	}
	return n
}

// Score is the point value of a card with m matches: 0 for no matches,
// otherwise 1 doubled for each match after the first. There is no upper
// bound on m, so the result is a big.Int.
func Score(m int) *big.Int {
	if m <= 0 {
		return new(big.Int)
	}
	return new(big.Int).Lsh(big.NewInt(1), uint(m-1))
}

// TotalScore sums the scores of cards.
func TotalScore(cards []Card) *big.Int {
	total := new(big.Int)
	for _, c := range cards {
		total.Add(total, Score(MatchCount(c)))
	}
	return total
}

// MatchCounts computes MatchCount for every card, splitting the cards
// across up to workers goroutines. The result is index-aligned with cards.
func MatchCounts(cards []Card, workers int) []int {
	matches := make([]int, len(cards))
	if workers <= 1 || len(cards) < 2*workers {
		for i, c := range cards {
			matches[i] = MatchCount(c)
		}
		return matches
	}
	chunk := (len(cards) + workers - 1) / workers
	var wg wait.Group
	for lo := 0; lo < len(cards); lo += chunk {
		hi := min(lo+chunk, len(cards))
		wg.Go(func(quit <-chan struct{}) error {
			for i := lo; i < hi; i++ {
				matches[i] = MatchCount(cards[i])
			}
			return nil
		})
	}
	wg.Wait() // workers don't fail
	return matches
}

// A CopyTable holds, for each card, how many instances of it you have.
// Counts are unbounded; a long run of high-match cards passes 2^63.
type CopyTable []*big.Int

// Total returns the total number of card instances.
func (t CopyTable) Total() *big.Int {
	n := new(big.Int)
	for _, c := range t {
		n.Add(n, c)
	}
	return n
}

func (t CopyTable) String() string {
	return fmt.Sprint([]*big.Int(t))
}

// PropagateMatches runs the copying process over per-card match counts.
//
// Every card starts with one instance. Going forward through the cards,
// each instance of card i wins one copy of each of the next matches[i]
// cards, so those cards gain table[i] instances. Wins past the last card
// are dropped. Since copies only go forward, table[i] is final by the
// time card i is reached.
func PropagateMatches(matches []int) CopyTable {
	table := make(CopyTable, len(matches))
	for i := range table {
		table[i] = big.NewInt(1)
	}
	for i, m := range matches {
		end := min(len(table), i+1+m)
		for j := i + 1; j < end; j++ {
			table[j].Add(table[j], table[i])
		}
	}
	return table
}

// Propagate returns the total number of card instances after copying.
func Propagate(cards []Card) *big.Int {
	return PropagateMatches(MatchCounts(cards, 1)).Total()
}

// A Result holds both answers for a set of cards.
type Result struct {
	Score     *big.Int
	Instances *big.Int
	Copies    CopyTable
}

// Evaluate computes the total score and the propagated instance count,
// computing match counts with up to workers goroutines.
func Evaluate(cards []Card, workers int) Result {
	matches := MatchCounts(cards, workers)
	r := Result{Score: new(big.Int)}
	for _, m := range matches {
		r.Score.Add(r.Score, Score(m))
	}
	r.Copies = PropagateMatches(matches)
	r.Instances = r.Copies.Total()
	return r
}
