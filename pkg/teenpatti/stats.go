package teenpatti

// HandStats describes how a hand ranks against every possible hand
type HandStats struct {
	Hand          []string `json:"hand"`
	Category      string   `json:"category"`
	Rank          int      `json:"rank"`
	TotalHands    int      `json:"totalHands"`
	PercentBetter float64  `json:"percentBetter"`
}

// Stats returns the stats for a hand
func (t *RankingTable) Stats(hand Hand) (*HandStats, error) {
	rank, total, err := t.Rank(hand)
	if err != nil {
		return nil, err
	}

	return &HandStats{
		Hand:          hand.Strings(),
		Category:      Classify(hand).String(),
		Rank:          rank,
		TotalHands:    total,
		PercentBetter: PercentileOfBetter(rank, total),
	}, nil
}
