package command

// Rank is an ordinal quality grade, ordered from worst to best
type Rank uint8

const (
	RankNone Rank = iota
	RankNiceM2
	RankNiceM1
	RankNice
	RankGood
	RankGreat
	RankWonderful
	RankExcellent
)

var rankNames = [...]string{
	RankNone:      "None",
	RankNiceM2:    "NiceM2",
	RankNiceM1:    "NiceM1",
	RankNice:      "Nice",
	RankGood:      "Good",
	RankGreat:     "Great",
	RankWonderful: "Wonderful",
	RankExcellent: "Excellent",
}

func (r Rank) String() string {
	if int(r) < len(rankNames) {
		return rankNames[r]
	}
	return "Unknown"
}

// ParseRank resolves a rank name, RankNone and false when unknown
func ParseRank(name string) (Rank, bool) {
	for i, n := range rankNames {
		if n == name {
			return Rank(i), true
		}
	}
	return RankNone, false
}

// UnmarshalText lets ranks decode from config strings
func (r *Rank) UnmarshalText(text []byte) error {
	parsed, ok := ParseRank(string(text))
	if !ok {
		return &ConfigurationError{Reason: "unknown rank " + string(text), Err: ErrInvalidArgument}
	}
	*r = parsed
	return nil
}

// Result is the terminal verdict of a run
type Result uint8

const (
	Success Result = iota
	Failure
)

func (r Result) String() string {
	if r == Success {
		return "Success"
	}
	return "Failure"
}
