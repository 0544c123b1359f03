// watch.go - Terminal viewer that plays a single game one turn per tick
package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/config"
	"github.com/lgbarn/chess-engine-go/internal/game"
	"github.com/lgbarn/chess-engine-go/internal/output"
	"github.com/lgbarn/chess-engine-go/internal/selfplay"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	panelStyle = lipgloss.NewStyle().PaddingLeft(3)
)

type tickMsg time.Time

// watchModel drives one game from the bubbletea event loop.
type watchModel struct {
	game     *game.Game
	style    output.BoardStyle
	delay    time.Duration
	maxPlies int

	last      game.TurnResult
	moves     []string
	err       error
	done      bool
	truncated bool
}

func newWatchModel(g *game.Game, cfg *config.Config, style output.BoardStyle) watchModel {
	return watchModel{
		game:     g,
		style:    style,
		delay:    cfg.Play.Delay,
		maxPlies: cfg.Play.MaxPlies,
		done:     !g.State().InProgress(),
	}
}

func (m watchModel) tick() tea.Cmd {
	return tea.Tick(m.delay, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m watchModel) Init() tea.Cmd {
	if m.done {
		return nil
	}
	return m.tick()
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tickMsg:
		if m.done {
			return m, nil
		}
		return m.step()
	}
	return m, nil
}

// step plays one turn and schedules the next tick while the game is on.
func (m watchModel) step() (tea.Model, tea.Cmd) {
	res, err := m.game.TakeTurn()
	if err != nil {
		m.err = err
		m.done = true
		return m, nil
	}
	m.last = res
	m.moves = append(m.moves, res.Move.String())
	if m.maxPlies > 0 && m.game.Plies() >= m.maxPlies && res.Continue {
		m.truncated = true
		m.done = true
		return m, nil
	}
	if !res.Continue {
		m.done = true
		return m, nil
	}
	return m, m.tick()
}

func (m watchModel) View() string {
	b := m.game.Board()
	board := output.RenderBoard(b, m.style)

	var info strings.Builder
	info.WriteString(titleStyle.Render("chess-selfplay") + "\n\n")
	fmt.Fprintf(&info, "%s %d\n", labelStyle.Render("turn:   "), b.Turn())
	fmt.Fprintf(&info, "%s %s\n", labelStyle.Render("to move:"), b.ActiveColour())
	fmt.Fprintf(&info, "%s %s\n", labelStyle.Render("state:  "), b.State())
	fmt.Fprintf(&info, "%s %d\n", labelStyle.Render("plies:  "), m.game.Plies())
	if m.last.Move.IsValid() {
		fmt.Fprintf(&info, "%s %s (%v)\n", labelStyle.Render("last:   "), m.last.Move, m.last.Duration.Round(time.Microsecond))
	}
	if n := len(m.moves); n > 0 {
		recent := m.moves[max(0, n-6):]
		fmt.Fprintf(&info, "\n%s\n", strings.Join(recent, " "))
	}
	if m.done {
		info.WriteString("\n" + m.outcome() + "\n")
	}

	view := lipgloss.JoinHorizontal(lipgloss.Top, board, panelStyle.Render(info.String()))
	return view + "\n\n" + labelStyle.Render(b.Snapshot().String()) + "\n" + labelStyle.Render("q: quit") + "\n"
}

// outcome describes how the game ended.
func (m watchModel) outcome() string {
	if m.err != nil {
		return errorStyle.Render(m.err.Error())
	}
	if m.truncated {
		return "stopped at the ply limit"
	}
	rec := selfplay.Record{Outcome: m.game.State(), Final: m.game.Board()}
	if winner, ok := rec.Winner(); ok {
		return fmt.Sprintf("%s wins %s", winner, rec.Result())
	}
	if rec.Outcome == chess.Checkmate {
		return "stalemate " + rec.Result()
	}
	return fmt.Sprintf("%s %s", rec.Outcome, rec.Result())
}

// runWatch plays one game in the terminal viewer and prints the final
// status line once the viewer exits.
func runWatch(ctx context.Context, cfg *config.Config) error {
	b, err := cfg.Play.NewBoard()
	if err != nil {
		return err
	}
	g, err := selfplay.NewRandomGame(b, cfg.Play.EffectiveSeed())
	if err != nil {
		return err
	}

	p := tea.NewProgram(newWatchModel(g, cfg, boardStyle()), tea.WithAltScreen())
	go func() {
		<-ctx.Done()
		p.Quit()
	}()

	final, err := p.Run()
	if err != nil {
		return err
	}
	m := final.(watchModel)
	fmt.Fprintf(cfg.OutputFile, "%s\n%s after %d plies\n", output.StatusLine(g.Board()), m.outcome(), g.Plies())
	return m.err
}
