package ports

import "github.com/bnema/spidy/internal/domain"

type Presenter interface {
	ShowStatus(status domain.Status)
	ShowTranscript(text string, final bool)
	ShowResponse(text string)
	Scroll(delta int)
}
