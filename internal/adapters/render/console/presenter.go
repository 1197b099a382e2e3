package console

import (
	"fmt"
	"io"
	"sync"

	"github.com/bnema/spidy/internal/domain"
	"github.com/bnema/spidy/internal/ports"
	"github.com/charmbracelet/lipgloss"
)

var statusGlyphs = map[domain.StatusIcon]string{
	domain.IconMicrophone:      "●",
	domain.IconMicrophoneSlash: "○",
	domain.IconError:           "!",
	domain.IconMoon:            "☾",
}

// Presenter writes conversation output as one line per update.
type Presenter struct {
	mu       sync.Mutex
	out      io.Writer
	renderer *lipgloss.Renderer
	styles   styles
	speaker  string
	last     domain.Status
}

var _ ports.Presenter = (*Presenter)(nil)

func NewPresenter(out io.Writer, speaker string) *Presenter {
	r := lipgloss.NewRenderer(out)
	return &Presenter{out: out, renderer: r, styles: newStyles(r), speaker: speaker}
}

// ShowStatus prints status changes; repeating the current status is a no-op.
func (p *Presenter) ShowStatus(status domain.Status) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if status == p.last {
		return
	}
	p.last = status

	glyph := statusGlyphs[status.Icon]
	if glyph == "" {
		glyph = "-"
	}
	style := p.renderer.NewStyle().Bold(true).Foreground(lipgloss.Color(status.Color))
	p.println(style.Render(fmt.Sprintf("%s %s", glyph, status.Text)))
}

func (p *Presenter) ShowTranscript(text string, final bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if final {
		p.println(p.styles.transcript.Render("> " + text))
		return
	}
	p.println(p.styles.interim.Render("… " + text))
}

func (p *Presenter) ShowResponse(text string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.println(p.styles.speaker.Render(p.speaker+":") + " " + p.styles.response.Render(text))
}

func (p *Presenter) Scroll(delta int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.println(p.styles.faint.Render(fmt.Sprintf("scroll %+d", delta)))
}

func (p *Presenter) println(line string) {
	_, _ = fmt.Fprintln(p.out, line)
}
