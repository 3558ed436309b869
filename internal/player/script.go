package player

import (
	"fmt"
	"time"

	"github.com/dop251/goja"
	"go.uber.org/zap"

	"github.com/MJE43/roulette-sim/internal/roulette"
	"github.com/MJE43/roulette-sim/internal/scripting"
	"github.com/MJE43/roulette-sim/internal/stats"
)

// ScriptBettor delegates bet selection to a JavaScript strategy. The
// top-level program runs before the first round of each session and sets
// nextbet and outcome for it; dobet() updates them before every later
// round. stop() ends the session.
type ScriptBettor struct {
	bankroll

	prog        *goja.Program
	logger      *zap.Logger
	callTimeout time.Duration

	vm      *scripting.VM
	vars    *scripting.Variables
	session *stats.Session
	stopped bool
	begun   bool
}

// NewScriptBettor compiles source and checks that it defines dobet().
func NewScriptBettor(table *roulette.Table, source string, callTimeout time.Duration, logger *zap.Logger) (*ScriptBettor, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	prog, err := scripting.Compile("strategy.js", source)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScript, err)
	}
	s := &ScriptBettor{
		bankroll:    bankroll{table: table},
		prog:        prog,
		logger:      logger,
		callTimeout: callTimeout,
	}

	// Dry run in a throwaway VM; sessions run the program again once their
	// budgets are known.
	s.start()
	if err := s.begin(); err != nil {
		return nil, err
	}
	if !s.vm.HasFunc("dobet") {
		return nil, fmt.Errorf("%w: dobet() function is not defined", ErrScript)
	}
	s.start()
	return s, nil
}

func (s *ScriptBettor) Name() string { return "script" }

// Session returns the running figures of the current session.
func (s *ScriptBettor) Session() *stats.Session { return s.session }

// start prepares a fresh VM so no globals leak between sessions. The
// program itself runs in begin.
func (s *ScriptBettor) start() {
	s.session = stats.NewSession(s.stake)
	s.vars = scripting.NewVariables(s.session)
	s.vm = scripting.NewVM(s.logger, s.callTimeout)
	s.stopped = false
	s.begun = false
}

// begin runs the top-level program with the current budgets visible.
func (s *ScriptBettor) begin() error {
	s.begun = true
	s.pushVariables()
	if err := s.vm.Execute(s.prog); err != nil {
		return fmt.Errorf("%w: %w", ErrScript, err)
	}
	s.vm.SyncVariables(s.vars)
	s.stopped = s.vm.IsStopRequested()
	return nil
}

func (s *ScriptBettor) Reset() {
	s.bankroll.Reset()
	s.start()
}

func (s *ScriptBettor) SetStake(stake float64) {
	s.bankroll.SetStake(stake)
	s.session.Reset(stake)
	s.vars.Stake = stake
}

func (s *ScriptBettor) Playing() bool {
	return !s.stopped && s.bankroll.Playing()
}

func (s *ScriptBettor) pushVariables() {
	s.vars.Stake = s.stake
	s.vars.Rounds = s.rounds
	s.vars.Limit = s.table.Limit
	s.vars.PreviousBet = s.session.PreviousBet
	s.vars.Win = s.session.LastWin
	s.vm.SetVariables(s.vars)
}

func (s *ScriptBettor) PlaceBets() error {
	if !s.begun {
		if err := s.begin(); err != nil {
			return err
		}
	} else {
		s.pushVariables()
		if err := s.vm.CallDobet(); err != nil {
			return fmt.Errorf("%w: %w", ErrScript, err)
		}
		s.vm.SyncVariables(s.vars)
		s.stopped = s.vm.IsStopRequested()
	}
	if s.stopped {
		return nil
	}

	if s.vars.NextBet <= 0 {
		return nil
	}
	o, err := s.outcome(s.vars.Outcome)
	if err != nil {
		return err
	}
	return s.place(o, s.vars.NextBet)
}

func (s *ScriptBettor) Winners(bin *roulette.Bin) {
	s.bankroll.Winners(bin)
	s.session.RecordRound()

	names := make([]string, 0, bin.Len())
	for _, o := range bin.Outcomes() {
		names = append(names, o.Name)
	}
	s.vars.LastBin = names
}

func (s *ScriptBettor) Win(bet *roulette.Bet) float64 {
	v := s.settleWin(bet)
	s.session.RecordBet(bet.Amount, bet.Amount+v, true)
	return v
}

func (s *ScriptBettor) Lose(bet *roulette.Bet) float64 {
	v := s.settleLoss(bet)
	s.session.RecordBet(bet.Amount, v, false)
	return v
}
