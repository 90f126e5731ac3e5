package uci

import (
	"bufio"
	"context"
	"errors"
	"evilboard/src/engine"
	"evilboard/src/logx"
	"fmt"
	"io"
	"os/exec"
	"strconv"
	"strings"
	"sync"
	"time"
)

var errExited = errors.New("engine process exited")

// Info is the latest search report of the engine
type Info struct {
	Depth   int
	ScoreCP int // side to move
	MateIn  int // plies, 0 if none
	PV      []string
}

type UCIExecutor struct {
	// init
	path string
	args []string
	prm  engine.SearchParams

	// process
	cmd *exec.Cmd
	in  io.WriteCloser
	out io.ReadCloser

	// read stdout
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	lines  chan string
	eof    chan struct{}

	// runtime
	wmu    sync.Mutex // stdin
	mu     sync.Mutex // one search at a time
	imu    sync.RWMutex
	info   Info
	closed sync.Once
	logx   logx.Logger
}

// to open a process, need to call Init()
func NewUCIExec(logger logx.Logger, prm engine.SearchParams, enginePath string, engineArgs ...string) *UCIExecutor {
	if logger == nil {
		logger = logx.NewNop()
	}
	return &UCIExecutor{path: enginePath, args: engineArgs, prm: prm, logx: logger}
}

// Init starts the process and runs the uci/isready handshake
func (e *UCIExecutor) Init() error {
	if e.path == "" {
		return errors.New("engine path is empty")
	}

	cmd := exec.Command(e.path, e.args...)
	in, err := cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("error connect to stdin of engine %s: %w", e.path, err)
	}
	out, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("error connect to stdout of engine %s: %w", e.path, err)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("error open %s engine: %w", e.path, err)
	}

	e.cmd, e.in, e.out = cmd, in, out
	e.lines = make(chan string, 256)
	e.eof = make(chan struct{})
	e.ctx, e.cancel = context.WithCancel(context.Background())
	e.wg.Add(1)
	go e.stdoutLoop()

	if err := e.handshake(); err != nil {
		e.Close()
		return err
	}
	return nil
}

func (e *UCIExecutor) handshake() error {
	if err := e.exec("uci"); err != nil {
		return err
	}
	title := e.path
	_, err := e.waitFor(context.Background(), engine.UCIHandshakeTimeout, func(line string) bool {
		if name, ok := strings.CutPrefix(line, "id name "); ok {
			title = name
		}
		return strings.HasPrefix(line, "uciok")
	})
	if err != nil {
		return fmt.Errorf("error read uciok: %w", err)
	}
	e.logx.Infof("open engine: %s", title)
	if err := e.exec("ucinewgame"); err != nil {
		return err
	}
	return e.ready()
}

func (e *UCIExecutor) ready() error {
	if err := e.exec("isready"); err != nil {
		return err
	}
	_, err := e.waitFor(context.Background(), engine.UCIHandshakeTimeout, func(line string) bool {
		return strings.HasPrefix(line, "readyok")
	})
	if err != nil {
		return fmt.Errorf("error read readyok: %w", err)
	}
	return nil
}

func (e *UCIExecutor) exec(cmd string) error {
	e.wmu.Lock()
	defer e.wmu.Unlock()
	if e.in == nil {
		return errors.New("stdin not available")
	}
	e.logx.Debugf("GUI: %s", cmd)
	_, err := io.WriteString(e.in, cmd+"\n")
	return err
}

// BestMove searches fen with the executor's params. A cancelled ctx stops
// the search and returns ctx's error.
func (e *UCIExecutor) BestMove(ctx context.Context, fen string) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.cmd == nil {
		return "", errors.New("no running uci-process")
	}

	e.drain()
	if err := e.exec("position fen " + fen); err != nil {
		return "", err
	}
	if err := e.ready(); err != nil {
		return "", err
	}
	e.setInfo(Info{})
	cmd := e.prm.GoCommand()
	e.logx.Infof("start analyze: %s", cmd)
	if err := e.exec(cmd); err != nil {
		return "", err
	}

	line, err := e.waitFor(ctx, engine.UCIBestMoveTimeout, e.searchLine)
	if err != nil {
		e.logx.Warnf("search interrupted: %v", err)
		if !errors.Is(err, errExited) {
			_ = e.exec("stop")
			_, _ = e.waitFor(context.Background(), engine.StopAnalyzeTimeout, e.searchLine)
		}
		return "", err
	}

	f := strings.Fields(line)
	if len(f) < 2 || f[1] == "(none)" || f[1] == "0000" {
		return "", errors.New("engine has no move")
	}
	info := e.Info()
	e.logx.Infof("engine best %s depth %d score %d", f[1], info.Depth, info.ScoreCP)
	return f[1], nil
}

// searchLine records info lines and reports the bestmove line
func (e *UCIExecutor) searchLine(line string) bool {
	if strings.HasPrefix(line, "info ") {
		if info, ok := parseInfo(line); ok {
			e.setInfo(info)
		}
		return false
	}
	return strings.HasPrefix(line, "bestmove")
}

func (e *UCIExecutor) Info() Info {
	e.imu.RLock()
	defer e.imu.RUnlock()
	return e.info
}

func (e *UCIExecutor) setInfo(info Info) {
	e.imu.Lock()
	e.info = info
	e.imu.Unlock()
}

// Close terminates the process, killing it if quit is ignored
func (e *UCIExecutor) Close() {
	e.closed.Do(func() {
		if e.cmd == nil {
			return
		}
		_ = e.exec("quit")
		e.cancel()

		done := make(chan struct{})
		go func() {
			e.wg.Wait()
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(engine.QuitTimeout):
			if e.cmd.Process != nil {
				_ = e.cmd.Process.Kill()
			}
			<-done
		}
		_ = e.cmd.Wait()
		e.logx.Info("uci-process terminated")
	})
}

// drain drops lines left from an earlier search
func (e *UCIExecutor) drain() {
	for {
		select {
		case <-e.lines:
		default:
			return
		}
	}
}

func (e *UCIExecutor) waitFor(ctx context.Context, timeout time.Duration, done func(string) bool) (string, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	for {
		select {
		case line := <-e.lines:
			if done(line) {
				return line, nil
			}
		case <-e.eof:
			// lines read before EOF are still buffered
			for {
				select {
				case line := <-e.lines:
					if done(line) {
						return line, nil
					}
				default:
					return "", errExited
				}
			}
		case <-timer.C:
			return "", fmt.Errorf("timeout after %v", timeout)
		case <-ctx.Done():
			return "", ctx.Err()
		case <-e.ctx.Done():
			return "", errors.New("stopped")
		}
	}
}

func (e *UCIExecutor) stdoutLoop() {
	defer e.wg.Done()
	defer close(e.eof)
	scr := bufio.NewScanner(e.out)
	for scr.Scan() {
		line := strings.TrimSpace(scr.Text())
		if line == "" {
			continue
		}
		e.logx.Debugf("ENGINE: %s", line)
		select {
		case e.lines <- line:
		default:
			e.logx.Debug("drop engine line (buffer full)")
		}
	}
}

// parseInfo reads depth, score and pv from an info line; lines without a
// depth (currmove, string) are skipped
func parseInfo(line string) (Info, bool) {
	var info Info
	fld := strings.Fields(line)
	n := len(fld)
	for i := 1; i < n; i++ {
		switch fld[i] {
		case "depth":
			if i+1 < n {
				info.Depth, _ = strconv.Atoi(fld[i+1])
				i++
			}
		case "score":
			if i+2 < n {
				v, err := strconv.Atoi(fld[i+2])
				if err == nil {
					switch fld[i+1] {
					case "cp":
						info.ScoreCP = v
					case "mate":
						info.MateIn = v
					}
				}
				i += 2
			}
		case "pv":
			// pv is always last
			info.PV = append([]string(nil), fld[i+1:]...)
			i = n
		case "string":
			return Info{}, false
		default:
			// seldepth, nodes, nps, time, currmove etc
		}
	}
	return info, info.Depth > 0
}
