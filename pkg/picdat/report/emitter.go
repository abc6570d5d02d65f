package report

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"github.com/chainguard-dev/clog"

	"github.com/TrellixVulnTeam/picdat-KKDF/pkg/picdat/chart"
	"github.com/TrellixVulnTeam/picdat-KKDF/pkg/picdat/models"
)

// State is the lifecycle state of an Emitter.
type State int

const (
	// StateOpened means the output stream is acquired and nothing is written.
	StateOpened State = iota
	// StateWriting means at least one step has been written.
	StateWriting
	// StateClosed means the stream is released.
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateOpened:
		return "opened"
	case StateWriting:
		return "writing"
	case StateClosed:
		return "closed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

var captionTmpl = template.Must(template.New("caption").Parse(
	"    <h2> {{html .Title}} </h2>\n" +
		"    <h2> timezone:{{html .Timezone}} </h2>\n"))

var chartTmpl = template.Must(template.New("chart").Parse(
	`<div id="{{.LegendID}}" class="legend"></div>
<script> {{.ID}} = makeChart("{{.ID}}", "{{js .TableRef}}", "{{js .Title}}", "{{js .XLabel}}", "{{js .YLabel}}", {{.IsBarChart}}); </script>
<p>
    <button type="button" onclick="selectAll(this, {{.ID}}, '{{.ID}}')">select all</button>
    <button type="button" onclick="deselectAll(this, {{.ID}}, '{{.ID}}')">deselect all</button>
</p>
`))

// chartView is the data of one chart block.
type chartView struct {
	models.ChartDescriptor
	LegendID string
}

const trailer = "</body>\n</html>\n"

// Emitter writes one report document. Output goes to a temporary file next
// to the destination, which only replaces the destination on Commit; Close
// without a successful Commit removes it.
type Emitter struct {
	path     string
	tableDir string
	tmp      *os.File
	w        *bufio.Writer
	state    State
	next     StepKind
	done     bool
}

// Open acquires the output stream for path. Chart steps check their backing
// tables relative to tableDir.
func Open(path, tableDir string) (*Emitter, error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return nil, models.NewIOError("create", path, err)
	}
	return &Emitter{
		path:     path,
		tableDir: tableDir,
		tmp:      tmp,
		w:        bufio.NewWriter(tmp),
		state:    StateOpened,
		next:     StepHead,
	}, nil
}

// State returns the current lifecycle state.
func (e *Emitter) State() State {
	return e.state
}

// Write emits s. Steps must arrive as head, caption, charts, trailer.
func (e *Emitter) Write(s Step) error {
	if e.state == StateClosed {
		return fmt.Errorf("emitter for %s is closed", e.path)
	}
	if !e.accepts(s.Kind) {
		return fmt.Errorf("unexpected %s step, want %s", s.Kind, e.next)
	}

	var err error
	switch s.Kind {
	case StepHead:
		_, err = e.w.Write(s.Head)
		e.next = StepCaption
	case StepCaption:
		err = captionTmpl.Execute(e.w, s)
		e.next = StepChart
	case StepChart:
		if err := e.checkTable(s.Chart); err != nil {
			return err
		}
		err = chartTmpl.Execute(e.w, chartView{
			ChartDescriptor: s.Chart,
			LegendID:        chart.LegendID(s.Chart.ID),
		})
	case StepTrailer:
		_, err = e.w.WriteString(trailer)
		e.done = true
	}
	if err != nil {
		return models.NewIOError("write", e.path, err)
	}
	e.state = StateWriting
	return nil
}

func (e *Emitter) accepts(k StepKind) bool {
	if e.done {
		return false
	}
	if e.next == StepChart {
		return k == StepChart || k == StepTrailer
	}
	return k == e.next
}

// checkTable verifies the backing table of d can be read.
func (e *Emitter) checkTable(d models.ChartDescriptor) error {
	path := filepath.Join(e.tableDir, d.TableRef)
	f, err := os.Open(path)
	if err != nil {
		return models.NewIOError("read", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return models.NewIOError("stat", path, err)
	}
	if info.IsDir() {
		return models.NewIOError("read", path, fmt.Errorf("is a directory"))
	}
	return nil
}

// Commit flushes the document and moves it into place. The trailer must
// have been written.
func (e *Emitter) Commit() error {
	if e.state == StateClosed {
		return fmt.Errorf("emitter for %s is closed", e.path)
	}
	if !e.done {
		return fmt.Errorf("document %s has no trailer", e.path)
	}

	tmpName := e.tmp.Name()
	if err := e.w.Flush(); err != nil {
		e.Close()
		return models.NewIOError("write", e.path, err)
	}
	if err := e.tmp.Chmod(0644); err != nil {
		e.Close()
		return models.NewIOError("write", e.path, err)
	}
	if err := e.tmp.Close(); err != nil {
		os.Remove(tmpName)
		e.state = StateClosed
		return models.NewIOError("write", e.path, err)
	}
	e.state = StateClosed
	if err := os.Rename(tmpName, e.path); err != nil {
		os.Remove(tmpName)
		return models.NewIOError("rename", e.path, err)
	}
	return nil
}

// Close releases the stream. An uncommitted document is discarded.
// Close is safe to call after Commit.
func (e *Emitter) Close() error {
	if e.state == StateClosed {
		return nil
	}
	e.state = StateClosed
	err := e.tmp.Close()
	os.Remove(e.tmp.Name())
	return err
}

// Emit writes steps to path as one document. On failure nothing is left at
// path and the previous content, if any, is untouched.
func Emit(ctx context.Context, path, tableDir string, steps []Step) error {
	e, err := Open(path, tableDir)
	if err != nil {
		return err
	}
	defer e.Close()

	log := clog.FromContext(ctx)
	for _, s := range steps {
		if err := e.Write(s); err != nil {
			return err
		}
		if s.Kind == StepChart {
			log.Debugf("emitted chart block %s", s.Chart.ID)
		}
	}
	if err := e.Commit(); err != nil {
		return err
	}

	log.Infof("Generated html file at %s", path)
	return nil
}
