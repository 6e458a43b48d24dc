package sat

import (
	"fmt"
	"io"
	"time"
)

// Stats is a snapshot of solver progress.
type Stats struct {
	Restarts       int64
	Variables      int
	ConstrClauses  int
	ConstrLiterals int
	LearntClauses  int
	LearntLiterals int
	Conflicts      int64
	Decisions      int64
	Propagations   int64
	ConflictLimit  int64
	LearntLimit    int
	AvgLBD         float64
	Elapsed        time.Duration
}

// MessageHandler receives progress reports during Solve.
// RegisterMessageHandler installs one on a Solver; the zero value Solver
// uses no handler at all (silent).
type MessageHandler interface {
	Header()
	Message(Stats)
	Footer(Stats)
}

// TextMessageHandler is the default MessageHandler: a tabular progress
// report written to W.
type TextMessageHandler struct {
	W io.Writer
}

func (h TextMessageHandler) separator() {
	fmt.Fprintln(h.W, "c ---------------------------------------------------------------------------")
}

func (h TextMessageHandler) Header() {
	h.separator()
	fmt.Fprintln(h.W, "c       time     restarts      conflicts      decisions       learnts     avg lbd")
	h.separator()
}

func (h TextMessageHandler) Message(st Stats) {
	fmt.Fprintf(h.W, "c %9.3fs %12d %14d %14d %13d %11.2f\n",
		st.Elapsed.Seconds(), st.Restarts, st.Conflicts, st.Decisions, st.LearntClauses, st.AvgLBD)
}

func (h TextMessageHandler) Footer(st Stats) {
	h.separator()
	h.Message(st)
}
