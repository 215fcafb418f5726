package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
)

type MockmoveSource struct {
	mock.Mock
}

func NewMockmoveSource(t *testing.T) *MockmoveSource {
	m := &MockmoveSource{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockmoveSource) NextMove(ctx context.Context, player entity.Player) (int, error) {
	args := m.Called(ctx, player)
	return args.Int(0), args.Error(1)
}

// expectMoves queues positions alternating X and O starting from first.
func (m *MockmoveSource) expectMoves(first entity.Player, positions ...int) {
	player := first
	for _, position := range positions {
		m.On("NextMove", mock.Anything, player).Return(position, nil).Once()
		player = player.Opponent()
	}
}

type Mockpresenter struct {
	mock.Mock
}

// NewMockpresenter accepts every call; tests assert on the recorded calls.
func NewMockpresenter(t *testing.T) *Mockpresenter {
	m := &Mockpresenter{}
	m.Test(t)
	m.On("ShowWelcome").Return(nil).Maybe()
	m.On("ShowBoard", mock.Anything).Return(nil).Maybe()
	m.On("ShowAccepted").Return(nil).Maybe()
	m.On("ShowRejected", mock.Anything).Return(nil).Maybe()
	m.On("ShowOutcome", mock.Anything).Return(nil).Maybe()
	m.On("ShowSummary", mock.Anything).Return(nil).Maybe()
	return m
}

func (m *Mockpresenter) ShowWelcome() error {
	return m.Called().Error(0)
}

func (m *Mockpresenter) ShowBoard(game entity.Game) error {
	return m.Called(game).Error(0)
}

func (m *Mockpresenter) ShowAccepted() error {
	return m.Called().Error(0)
}

func (m *Mockpresenter) ShowRejected(err error) error {
	return m.Called(err).Error(0)
}

func (m *Mockpresenter) ShowOutcome(outcome tictactoe.Outcome) error {
	return m.Called(outcome).Error(0)
}

func (m *Mockpresenter) ShowSummary(scoreboard entity.Scoreboard) error {
	return m.Called(scoreboard).Error(0)
}

type MockroundPrompter struct {
	mock.Mock
}

func NewMockroundPrompter(t *testing.T) *MockroundPrompter {
	m := &MockroundPrompter{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockroundPrompter) AskPlayAgain(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}
