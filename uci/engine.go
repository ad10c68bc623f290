/*
Package uci is a line-oriented reader of UCI commands that drives a
corvid/game.Game and prints bestmove exactly once per go. The goroutine
that prints bestmove holds the best-move slot's lock until the write
completes, so a concurrent stop can never observe a half-written slot.
*/
package uci

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	corvid "github.com/augurchess/corvid"
	"github.com/augurchess/corvid/boardfmt"
	"github.com/augurchess/corvid/game"
	"github.com/augurchess/corvid/internal/config"
	logging "github.com/op/go-logging"
)

var log = logging.MustGetLogger("corvid/uci")

const (
	engineName   = "corvid"
	engineAuthor = "the corvid contributors"
)

// Engine holds the mutable session state for one UCI connection: the
// current game, the move table it searches with, and the running flag a
// search goroutine and a timer goroutine race to flip.
type Engine struct {
	mt      *corvid.MoveTable
	g       *game.Game
	cfg     config.Config
	out     *bufio.Writer
	outMu   sync.Mutex // guards out: the command loop and the search goroutine both write to it
	running atomic.Bool
	done    bool
}

// New builds an Engine writing UCI responses to out.
func New(out io.Writer, cfg config.Config) *Engine {
	if level, err := logging.LogLevel(cfg.LogLevel); err == nil {
		corvid.SetLogLevel(level)
	}
	mt := corvid.BuildMoveTable()
	return &Engine{
		mt:  mt,
		g:   game.New(mt),
		cfg: cfg,
		out: bufio.NewWriter(out),
	}
}

// Run reads newline-delimited UCI commands from in until quit or EOF,
// dispatching each to its handler.
func (e *Engine) Run(in io.Reader) {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for !e.done && scanner.Scan() {
		e.handleLine(scanner.Text())
	}
}

// writeln writes one response line and flushes immediately: a search
// goroutine's bestmove must reach the GUI the moment it is ready, not wait
// for Run's own end-of-command flush on the main goroutine. outMu
// serializes this against the command loop's own writes, since both can run
// concurrently once go has spawned a search.
func (e *Engine) writeln(format string, args ...interface{}) {
	e.outMu.Lock()
	defer e.outMu.Unlock()
	fmt.Fprintf(e.out, format+"\n", args...)
	e.out.Flush()
}

func (e *Engine) handleLine(line string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return
	}
	switch fields[0] {
	case "uci":
		e.writeln("id name %s", engineName)
		e.writeln("id author %s", engineAuthor)
		e.writeln("uciok")
	case "isready":
		e.writeln("readyok")
	case "ucinewgame":
		e.g = game.New(e.mt)
	case "position":
		e.handlePosition(fields[1:])
	case "go":
		e.handleGo(fields[1:])
	case "stop":
		e.running.Store(false)
	case "d":
		// Not part of the UCI standard, but conventional among engines
		// (Stockfish, among others) as a human-readable board dump.
		e.writeln("%s", strings.TrimRight(boardfmt.Position(e.g.Position()), "\n"))
	case "quit":
		e.running.Store(false)
		e.done = true
	default:
		log.Debugf("ignoring unrecognized command %q", fields[0])
	}
}

// handlePosition implements "position {startpos | fen <FEN>} [moves ...]".
// An unresolvable move string in the history is fatal -- unlike a malformed
// FEN string, which falls back gracefully to the start position, a move
// list that doesn't replay means the GUI and engine have desynchronized,
// which is unrecoverable.
func (e *Engine) handlePosition(args []string) {
	if len(args) == 0 {
		return
	}

	var pos corvid.Position
	rest := args
	switch args[0] {
	case "startpos":
		pos = corvid.NewStartPosition()
		rest = args[1:]
	case "fen":
		rest = args[1:]
		var fenFields []string
		for len(rest) > 0 && rest[0] != "moves" {
			fenFields = append(fenFields, rest[0])
			rest = rest[1:]
		}
		pos = corvid.ParseFEN(strings.Join(fenFields, " "))
	default:
		log.Warningf("position: unrecognized subcommand %q", args[0])
		return
	}

	e.g = game.FromPosition(e.mt, pos)

	if len(rest) == 0 || rest[0] != "moves" {
		return
	}
	for _, s := range rest[1:] {
		m, ok := corvid.MoveFromUCI(s, e.g.LegalMoves())
		if !ok {
			log.Fatalf("position: move %q does not resolve against the legal move list", s)
		}
		if _, err := e.g.Push(m); err != nil {
			log.Fatalf("position: %v", err)
		}
	}
}

// handleGo implements "go [movetime <ms> | wtime <ms> btime <ms> winc <ms>
// binc <ms> [movestogo <n>] | infinite]". It starts the timer goroutine (if
// any) and the iterative-deepening search goroutine, and returns
// immediately: the adapter must keep reading commands (in particular
// stop) while a search is in flight.
func (e *Engine) handleGo(args []string) {
	budget, infinite := parseTimeControl(args, e.g.Position().SideToMove, e.cfg.MoveOverheadMillis)

	e.running.Store(true)
	if !infinite {
		time.AfterFunc(budget, func() { e.running.Store(false) })
	}

	maxDepth := e.cfg.DefaultDepth
	if infinite {
		maxDepth = e.cfg.MaxInfiniteDepth
	}

	go e.search(maxDepth)
}

// search runs iterative deepening, depth 1 upward, stopping when running
// flips false or maxDepth is reached, then prints bestmove exactly once.
// It keeps the deepest slot holding a valid move and holds that slot's lock
// from reading the move until the bestmove line has been written -- the root
// search itself holds the lock for the whole of its run, so a reader never
// observes a slot mid-update.
func (e *Engine) search(maxDepth int) {
	var best *corvid.BestMoveSlot

	for depth := 1; depth <= maxDepth; depth++ {
		slot := corvid.RootSearch(e.g.Position(), e.mt, depth, &e.running, e.cfg.Threads)
		if _, valid := slot.Read(); valid {
			best = slot
		}
		if !e.running.Load() {
			break
		}
	}
	e.running.Store(false)

	if best == nil {
		e.writeln("bestmove 0000")
		return
	}
	best.Lock()
	defer best.Unlock()
	e.writeln("bestmove %s", corvid.MoveToUCI(best.Move))
}

func parseTimeControl(args []string, side corvid.Color, overheadMillis int) (budget time.Duration, infinite bool) {
	var movetime, wtime, btime, winc, binc, movestogo int
	haveMovetime, haveTimePerSide := false, false

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "infinite":
			return 0, true
		case "movetime":
			if i+1 < len(args) {
				movetime, _ = strconv.Atoi(args[i+1])
				haveMovetime = true
				i++
			}
		case "wtime":
			if i+1 < len(args) {
				wtime, _ = strconv.Atoi(args[i+1])
				haveTimePerSide = true
				i++
			}
		case "btime":
			if i+1 < len(args) {
				btime, _ = strconv.Atoi(args[i+1])
				i++
			}
		case "winc":
			if i+1 < len(args) {
				winc, _ = strconv.Atoi(args[i+1])
				i++
			}
		case "binc":
			if i+1 < len(args) {
				binc, _ = strconv.Atoi(args[i+1])
				i++
			}
		case "movestogo":
			if i+1 < len(args) {
				movestogo, _ = strconv.Atoi(args[i+1])
				i++
			}
		}
	}
	_ = movestogo

	switch {
	case haveMovetime:
		ms := movetime - overheadMillis
		if ms < 1 {
			ms = 1
		}
		return time.Duration(ms) * time.Millisecond, false
	case haveTimePerSide:
		remaining, inc := wtime, winc
		if side == corvid.Black {
			remaining, inc = btime, binc
		}
		ms := remaining/20 + inc - overheadMillis
		if ms < 1 {
			ms = 1
		}
		return time.Duration(ms) * time.Millisecond, false
	default:
		return 0, true
	}
}
