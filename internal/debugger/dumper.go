package debugger

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/jcorbin/rpnvm/internal/machine"
)

// WriteTo writes a multi-line dump of the snapshot to w.
func (snap Snapshot) WriteTo(w io.Writer) (int64, error) {
	dump := snapDumper{snap: snap}
	dump.dump()
	return dump.buf.WriteTo(w)
}

func (snap Snapshot) String() string {
	var buf bytes.Buffer
	snap.WriteTo(&buf)
	return buf.String()
}

type snapDumper struct {
	snap Snapshot
	buf  bytes.Buffer

	addrWidth int
}

func (dump *snapDumper) dump() {
	snap := dump.snap
	fmt.Fprintf(&dump.buf, "# Snapshot\n")
	if snap.Current < len(snap.Lines) {
		fmt.Fprintf(&dump.buf, "  line: %v/%v %v\n", snap.Current, len(snap.Lines), snap.Lines[snap.Current].Loc)
	} else {
		fmt.Fprintf(&dump.buf, "  line: %v/%v\n", snap.Current, len(snap.Lines))
	}
	fmt.Fprintf(&dump.buf, "  complete: %v\n", snap.Complete)
	switch {
	case !snap.Stepped:
	case snap.Result != nil:
		fmt.Fprintf(&dump.buf, "  result: %v\n", snap.Result)
	default:
		fmt.Fprintf(&dump.buf, "  result: ok\n")
	}

	n := len(snap.Stack)
	if m := len(snap.Lines); m > n {
		n = m
	}
	if snap.Context != nil {
		if m := len(snap.Context.Variables); m > n {
			n = m
		}
	}
	dump.addrWidth = len(strconv.Itoa(n))

	dump.dumpStack()
	dump.dumpVariables()
	dump.dumpLines()
}

func (dump *snapDumper) dumpStack() {
	fmt.Fprintf(&dump.buf, "# Stack\n")
	for i := len(dump.snap.Stack) - 1; i >= 0; i-- {
		tok := dump.snap.Stack[i]
		fmt.Fprintf(&dump.buf, "  @% *v %v %v\n", dump.addrWidth, i, machine.Kind(tok), tok)
	}
}

func (dump *snapDumper) dumpVariables() {
	if dump.snap.Context == nil {
		return
	}
	fmt.Fprintf(&dump.buf, "# Variables\n")
	for i, v := range dump.snap.Context.Variables {
		fmt.Fprintf(&dump.buf, "  @% *v %v\n", dump.addrWidth, i, v)
	}
}

func (dump *snapDumper) dumpLines() {
	fmt.Fprintf(&dump.buf, "# Lines\n")
	for i, line := range dump.snap.Lines {
		mark := ' '
		if i == dump.snap.Current {
			mark = '>'
		}
		fmt.Fprintf(&dump.buf, "%c @% *v %v\n", mark, dump.addrWidth, i, line)
	}
}
