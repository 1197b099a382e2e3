package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bnema/spidy/internal/domain"
	"github.com/bnema/spidy/internal/ports/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedbackChannelDropsNormalSpeechWhileBusy(t *testing.T) {
	synth := &recordingSynth{speaking: true}
	presenter := &recordingPresenter{}
	clock := newFakeClock()
	activity := &domain.Activity{}
	activity.Touch(clock.Now())
	log, hook := testLogger()

	f := NewFeedbackChannel(synth, presenter, clock, activity, 30*time.Second, log)
	clock.Advance(10 * time.Second)

	issued := f.Speak(context.Background(), "Opening youtube", false)

	assert.False(t, issued)
	assert.Empty(t, synth.texts())
	assert.Empty(t, presenter.responses)
	assert.Equal(t, clock.Now().Add(-10*time.Second), activity.Last)

	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.DebugLevel, hook.LastEntry().Level)
}

func TestFeedbackChannelPriorityCancelsAndReplaces(t *testing.T) {
	synth := &recordingSynth{}
	presenter := &recordingPresenter{}
	clock := newFakeClock()
	activity := &domain.Activity{}
	log, _ := testLogger()
	f := NewFeedbackChannel(synth, presenter, clock, activity, 30*time.Second, log)

	require.True(t, f.Speak(context.Background(), "Hello! Say 'Spidy' to activate me.", false))
	first := f.Current()
	synth.setSpeaking(true)

	require.True(t, f.Speak(context.Background(), "Yes? How can I help?", true))
	second := f.Current()

	assert.Equal(t, 1, synth.cancels)
	assert.NotEqual(t, first, second)
	assert.Equal(t, []string{"Hello! Say 'Spidy' to activate me.", "Yes? How can I help?"}, synth.texts())
	assert.Equal(t, clock.Now(), activity.Last)

	// The canceled utterance completes late and must not clear the new one.
	f.Complete(first)
	assert.Equal(t, second, f.Current())

	f.Complete(second)
	assert.Equal(t, domain.UtteranceID(0), f.Current())
}

func TestFeedbackChannelCompletionShowsSleepingWhenIdle(t *testing.T) {
	synth := &recordingSynth{}
	presenter := &recordingPresenter{}
	clock := newFakeClock()
	activity := &domain.Activity{}
	log, _ := testLogger()
	f := NewFeedbackChannel(synth, presenter, clock, activity, 30*time.Second, log)

	require.True(t, f.Speak(context.Background(), "a long story", false))
	id := f.Current()

	clock.Advance(20 * time.Second)
	f.Complete(id)
	assert.Empty(t, presenter.statuses)

	clock.Advance(15 * time.Second)
	f.Complete(id)
	assert.Equal(t, domain.StatusSleeping, presenter.lastStatus())
}

func TestFeedbackChannelSynthFailureStillCountsAsActivity(t *testing.T) {
	synth := mocks.NewMockSpeechSynthesizer(t)
	presenter := mocks.NewMockPresenter(t)
	clock := newFakeClock()
	activity := &domain.Activity{}
	log, hook := testLogger()

	synth.EXPECT().Speaking().Return(false)
	synth.EXPECT().Speak(mockAnyContext(), domain.Utterance{ID: 1, Text: "Scrolled down"}).Return(errors.New("espeak-ng: not found"))
	presenter.EXPECT().ShowResponse("Scrolled down").Return()

	f := NewFeedbackChannel(synth, presenter, clock, activity, 30*time.Second, log)

	assert.True(t, f.Speak(context.Background(), "Scrolled down", false))
	assert.Equal(t, domain.UtteranceID(0), f.Current())
	assert.Equal(t, clock.Now(), activity.Last)
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
}
