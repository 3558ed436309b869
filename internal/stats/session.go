package stats

// Session tracks one player's running figures across the rounds of a
// session.
type Session struct {
	Rounds   int     `json:"rounds"`
	Bets     int     `json:"bets"`
	Wins     int     `json:"wins"`
	Losses   int     `json:"losses"`
	Wagered  float64 `json:"wagered"`
	Stake    float64 `json:"stake"`
	StartBal float64 `json:"startBal"`

	WinStreak  int `json:"winStreak"`
	LoseStreak int `json:"loseStreak"`

	HighestStake float64 `json:"highestStake"`
	HighestBet   float64 `json:"highestBet"`
	PreviousBet  float64 `json:"previousBet"`
	// LastWin is true when the most recent bet won.
	LastWin bool `json:"lastWin"`
}

// NewSession creates a Session with a starting stake.
func NewSession(stake float64) *Session {
	return &Session{
		Stake:        stake,
		StartBal:     stake,
		HighestStake: stake,
	}
}

// Reset clears all figures and starts over from stake.
func (s *Session) Reset(stake float64) {
	*s = *NewSession(stake)
}

// Profit returns the stake change since the session started.
func (s *Session) Profit() float64 {
	return s.Stake - s.StartBal
}

// RecordBet settles one bet: amount was deducted at placement and
// returned is what came back to the player.
func (s *Session) RecordBet(amount, returned float64, win bool) {
	s.Bets++
	s.Wagered += amount
	s.PreviousBet = amount
	s.Stake += returned - amount
	s.LastWin = win

	if win {
		s.Wins++
		s.WinStreak++
		s.LoseStreak = 0
	} else {
		s.Losses++
		s.LoseStreak++
		s.WinStreak = 0
	}

	if amount > s.HighestBet {
		s.HighestBet = amount
	}
	if s.Stake > s.HighestStake {
		s.HighestStake = s.Stake
	}
}

// RecordRound counts one spin, bet or not.
func (s *Session) RecordRound() {
	s.Rounds++
}
